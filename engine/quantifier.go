package engine

import (
	"github.com/riverside/logicengine/ast"
	"github.com/riverside/logicengine/env"
	"github.com/riverside/logicengine/value"
)

// evalQuantifier evaluates Domain, then iterates it in list order binding
// Var in a fresh frame for Condition — forall exits early on the first
// false, exists on the first true (§4.5). The frame is popped on every
// exit path, including errors, so a quantifier never leaks its binding
// into the caller's environment (§8 property 3).
func (e *Engine) evalQuantifier(n ast.Quantifier, environment *env.Environment, depth int) (value.Value, error) {
	domainVal, err := e.eval(n.Domain, environment, depth+1)
	if err != nil {
		return nil, err
	}
	elems, err := value.AsList(domainVal)
	if err != nil {
		return nil, newLogicError(KindTypeError, n.Render(), "quantifier domain must be a list: "+err.Error(), err)
	}

	environment.Push()
	defer environment.Pop()

	for _, elem := range elems {
		environment.Bind(n.Var, elem)
		condVal, err := e.eval(n.Condition, environment, depth+1)
		if err != nil {
			return nil, err
		}
		cond, err := value.AsBool(condVal)
		if err != nil {
			return nil, newLogicError(KindTypeError, n.Render(), "quantifier condition must be bool: "+err.Error(), err)
		}

		if n.Kind == ast.Forall && !cond {
			return value.Bool{V: false}, nil
		}
		if n.Kind == ast.Exists && cond {
			return value.Bool{V: true}, nil
		}
	}

	return value.Bool{V: n.Kind == ast.Forall}, nil
}
