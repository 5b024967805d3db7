// Package engine implements the evaluator (C5): a recursive interpreter
// over the ast package's node set, wired to an Environment, a function
// Registry, an evaluation Cache, and a Tracer. The Engine struct is
// grounded on the teacher's eval.Evaluator (eval/eval.go) — an ordinary
// object owning its env/registry/store-equivalents, never a package
// singleton (§5, §9).
package engine

import (
	"github.com/riverside/logicengine/cache"
	"github.com/riverside/logicengine/registry"
	"github.com/riverside/logicengine/trace"
)

// Engine owns the mutable state a single evaluation session needs: the
// function registry, the evaluation cache, and the tracer/metrics. An
// Environment is supplied per Eval call rather than owned by the Engine,
// matching eval(expr, env) in spec.md §4.5 — callers choose which
// environment a given expression runs against (the driver, for example,
// builds a fresh one per unit test).
type Engine struct {
	Registry *registry.Registry
	Cache    *cache.Cache
	Tracer   *trace.Tracer
}

// New creates an Engine with caching enabled and tracing disabled,
// matching the documented defaults (§6).
func New(reg *registry.Registry) *Engine {
	return &Engine{
		Registry: reg,
		Cache:    cache.New(),
		Tracer:   trace.New(),
	}
}

// EnableCaching toggles the evaluation cache (§6).
func (e *Engine) EnableCaching(enabled bool) { e.Cache.Enable(enabled) }

// EnableTracing toggles the trace log (§6).
func (e *Engine) EnableTracing(enabled bool) { e.Tracer.Enable(enabled) }

// ClearCache empties the cache without disabling it (§6).
func (e *Engine) ClearCache() { e.Cache.Clear() }

// ResetMetrics zeroes the call/hit/miss counters (§6).
func (e *Engine) ResetMetrics() { e.Tracer.Reset() }

// Metrics returns a snapshot of {function_calls, cache_hits, cache_misses}
// (§6).
func (e *Engine) Metrics() trace.Metrics { return e.Tracer.Metrics() }

// ExecutionTrace returns the ordered trace log (§6).
func (e *Engine) ExecutionTrace() []string { return e.Tracer.Entries() }
