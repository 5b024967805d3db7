package engine

import (
	"fmt"

	"github.com/riverside/logicengine/ast"
	"github.com/riverside/logicengine/env"
	"github.com/riverside/logicengine/value"
)

const (
	defaultMaxIterations = 1000
	oscillationHistoryN  = 10
)

// evalFixpoint iteratively approximates x = f(x) (§4.5). Var is bound
// within Expr only, alongside the diagnostic bindings __iteration and
// __strategy; __converged_at / __oscillating are written into the outer
// environment once the loop finishes (§9 open question 3: kept as
// environment bindings per the explicit contract in §4.5, in addition to
// being surfaced through the trace channel below).
func (e *Engine) evalFixpoint(n ast.Fixpoint, environment *env.Environment, depth int) (value.Value, error) {
	maxIter := n.MaxIterations
	if maxIter <= 0 {
		maxIter = defaultMaxIterations
	}

	current, err := e.fixpointInitial(n, environment, depth)
	if err != nil {
		return nil, err
	}

	environment.Push()
	defer environment.Pop()

	history := make([]value.Value, 0, oscillationHistoryN)

	for i := 0; i < maxIter; i++ {
		environment.Bind(n.Var, current)
		environment.Bind("__iteration", value.Int{V: int64(i)})
		environment.Bind("__strategy", value.Str{V: n.Strategy.String()})

		next, err := e.eval(n.Expr, environment, depth+1)
		if err != nil {
			if i == 0 {
				return nil, err
			}
			return nil, newLogicError(KindFixpointIterFail,
				ast.RenderTruncated(n, 120),
				fmt.Sprintf("Fixpoint evaluation failed at iteration %d", i), err)
		}

		if fixpointConverged(n.Strategy, current, next, n.Tolerance) {
			environment.BindOuter("__converged_at", value.Int{V: int64(i)})
			e.Tracer.Result(depth, fmt.Sprintf("fixpoint converged at iteration %d: %s", i, next.Display()))
			return next, nil
		}

		if n.Strategy == ast.StrategyStandard || n.Strategy == 0 {
			if osc, at := detectOscillation(history, next); osc {
				environment.BindOuter("__oscillating", value.Bool{V: true})
				e.Tracer.Result(depth, fmt.Sprintf("fixpoint oscillating (period %d), returning %s", at, current.Display()))
				return current, nil
			}
		}

		history = append(history, current)
		if len(history) > oscillationHistoryN {
			history = history[1:]
		}
		current = next
	}

	return nil, newLogicError(KindFixpointDiverge,
		ast.RenderTruncated(n, 120),
		fmt.Sprintf("Fixpoint did not converge after %d iterations (last value: %s)", maxIter, current.Display()), nil)
}

func (e *Engine) fixpointInitial(n ast.Fixpoint, environment *env.Environment, depth int) (value.Value, error) {
	if n.Initial != nil {
		return e.eval(n.Initial, environment, depth+1)
	}
	switch n.Strategy {
	case ast.StrategyLeast:
		return value.Bool{V: false}, nil
	case ast.StrategyGreatest:
		return value.Bool{V: true}, nil
	default:
		return value.Null{}, nil
	}
}

// fixpointConverged implements the two convergence disciplines (§4.5):
// exact/standard use structural equality; numeric compares int magnitude
// against tolerance. Any other tag pairing under "numeric" falls back to
// structural equality since the core carries no floating-point tag (§3,
// §9: tolerance is reserved for future numeric-tag support).
func fixpointConverged(strategy ast.FixpointStrategy, current, next value.Value, tolerance int64) bool {
	if strategy == ast.StrategyNumeric {
		ci, cOk := current.(value.Int)
		ni, nOk := next.(value.Int)
		if cOk && nOk {
			diff := ci.V - ni.V
			if diff < 0 {
				diff = -diff
			}
			return diff <= tolerance
		}
	}
	return value.Equal(current, next)
}

// detectOscillation reports whether next repeats a value the iteration
// already passed through two steps ago (period 2), four steps ago
// (period 4), and so on — the standard-strategy oscillation guard (§4.5,
// §8 property 8). history holds the approximation bound at the start of
// each prior iteration, so the entry one step before next's own
// predecessor sits at len(history)-1 (back=1, period 2); back=3 reaches
// period 4, and so on.
func detectOscillation(history []value.Value, next value.Value) (bool, int) {
	for back := 1; back <= len(history); back += 2 {
		idx := len(history) - back
		if idx < 0 {
			break
		}
		if value.Equal(history[idx], next) {
			return true, back + 1
		}
	}
	return false, 0
}
