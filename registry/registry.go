// Package registry implements the function registry (C4): registration
// and dispatch of named external functions with declared parameter/
// return tags, grounded on the teacher's builtins.Registry
// (builtins/registry.go) — a name-to-func map populated at setup time and
// read without locking thereafter (§5: hosts that register concurrently
// with eval must synchronize externally).
package registry

import (
	"fmt"

	"github.com/riverside/logicengine/value"
)

// Func is a registered external function. Errors returned here surface
// to the evaluator as the function's own failure (e.g. division by
// zero); the registry does not distinguish that from any other callable
// failure.
type Func func(args []value.Value) (value.Value, error)

// Signature declares a function's expected parameter tags and its return
// tag. An empty ParamTags means "any" (arity is still checked against
// len(ParamTags) only when it is non-empty). ReturnTag is declarative:
// Call does not check the tag of the value a function returns.
type Signature struct {
	ParamTags []value.Tag
	ReturnTag value.Tag
	HasReturn bool // false means no return tag is declared
}

type entry struct {
	sig Signature
	fn  Func
}

// Registry is the engine-owned map of named functions (§4.4).
type Registry struct {
	entries map[string]entry
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register adds fn under name with the given signature, overwriting any
// previous registration of the same name.
func (r *Registry) Register(name string, sig Signature, fn Func) {
	r.entries[name] = entry{sig: sig, fn: fn}
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// Names returns every registered function name, in no particular order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for n := range r.entries {
		names = append(names, n)
	}
	return names
}

// ArityError reports that a function was called with the wrong number of
// arguments.
type ArityError struct {
	Name     string
	Expected int
	Got      int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("function %q expects %d argument(s), got %d", e.Name, e.Expected, e.Got)
}

// UnknownFunctionError reports a Call to an unregistered name.
type UnknownFunctionError struct {
	Name string
}

func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("unknown function %q", e.Name)
}

// FuncTypeError reports an argument whose tag does not match the
// function's declared signature.
type FuncTypeError struct {
	Name     string
	Index    int
	Expected value.Tag
	Got      value.Tag
}

func (e *FuncTypeError) Error() string {
	return fmt.Sprintf("function %q argument %d: expected %s, got %s", e.Name, e.Index, e.Expected, e.Got)
}

// DivisionByZeroError is a reusable classification registered arithmetic
// functions can return when given a zero divisor (§7: DivisionByZero).
// It lives here, not in a specific function package, so the evaluator
// can recognize it without depending on any particular registrar.
type DivisionByZeroError struct {
	Op string
}

func (e *DivisionByZeroError) Error() string { return e.Op + ": division by zero" }

// Call dispatches to the named function after checking arity and, when
// the signature declares param tags, each argument's tag (§4.4). An empty
// ParamTags list skips tag checking entirely.
func (r *Registry) Call(name string, args []value.Value) (value.Value, error) {
	e, ok := r.entries[name]
	if !ok {
		return nil, &UnknownFunctionError{Name: name}
	}
	if len(e.sig.ParamTags) > 0 {
		if len(args) != len(e.sig.ParamTags) {
			return nil, &ArityError{Name: name, Expected: len(e.sig.ParamTags), Got: len(args)}
		}
		for i, wantTag := range e.sig.ParamTags {
			if args[i].Tag() != wantTag {
				return nil, &FuncTypeError{Name: name, Index: i, Expected: wantTag, Got: args[i].Tag()}
			}
		}
	}
	return e.fn(args)
}
