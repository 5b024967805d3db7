package engine

import (
	"github.com/riverside/logicengine/ast"
	"github.com/riverside/logicengine/cache"
	"github.com/riverside/logicengine/env"
	"github.com/riverside/logicengine/value"
)

// Eval evaluates an expression against env, dispatching by the node's
// concrete constructor (§4.5). It is the engine's sole entry point; every
// recursive call inside the evaluator goes through the unexported eval so
// tracing depth and cache lookups stay consistent.
func (e *Engine) Eval(node ast.Node, environment *env.Environment) (value.Value, error) {
	return e.eval(node, environment, 0)
}

func (e *Engine) eval(node ast.Node, environment *env.Environment, depth int) (value.Value, error) {
	if node == nil {
		return nil, newLogicError(KindMalformed, "<nil>", "expression node is nil", nil)
	}

	key, closed := cache.Key(node)
	if closed {
		if v, ok := e.Cache.Get(key); ok {
			e.Tracer.CacheHit(depth)
			return v, nil
		}
	}

	e.Tracer.Eval(depth, node.Render())

	v, err := e.dispatch(node, environment, depth)
	if err != nil {
		return nil, wrap(err, ast.RenderTruncated(node, 120))
	}

	e.Tracer.Result(depth, v.Display())

	if closed {
		e.Tracer.CacheMiss()
		e.Cache.Put(key, v)
	}

	return v, nil
}

func (e *Engine) dispatch(node ast.Node, environment *env.Environment, depth int) (value.Value, error) {
	switch n := node.(type) {
	case ast.Literal:
		return n.Val, nil
	case ast.Var:
		return e.evalVar(n, environment)
	case ast.Operator:
		return e.evalOperator(n, environment, depth)
	case ast.Call:
		return e.evalCall(n, environment, depth)
	case ast.Quantifier:
		return e.evalQuantifier(n, environment, depth)
	case ast.If:
		return e.evalIf(n, environment, depth)
	case ast.Fixpoint:
		return e.evalFixpoint(n, environment, depth)
	case ast.GetField:
		return e.evalGetField(n, environment, depth)
	case ast.HasField:
		return e.evalHasField(n, environment, depth)
	default:
		return nil, newLogicError(KindMalformed, node.Render(), "unrecognized expression constructor", nil)
	}
}

func (e *Engine) evalVar(n ast.Var, environment *env.Environment) (value.Value, error) {
	v, ok := environment.Lookup(n.Name)
	if !ok {
		return nil, newLogicError(KindNameError, n.Render(), "unbound variable "+n.Name, nil)
	}
	return v, nil
}

func (e *Engine) evalGetField(n ast.GetField, environment *env.Environment, depth int) (value.Value, error) {
	objVal, err := e.eval(n.Obj, environment, depth+1)
	if err != nil {
		return nil, err
	}
	m, err := value.AsMap(objVal)
	if err != nil {
		return nil, newLogicError(KindTypeError, n.Render(), err.Error(), err)
	}
	if v, ok := m.Get(n.Key); ok {
		return v, nil
	}
	return value.Null{}, nil
}

func (e *Engine) evalHasField(n ast.HasField, environment *env.Environment, depth int) (value.Value, error) {
	objVal, err := e.eval(n.Obj, environment, depth+1)
	if err != nil {
		return nil, err
	}
	m, err := value.AsMap(objVal)
	if err != nil {
		return nil, newLogicError(KindTypeError, n.Render(), err.Error(), err)
	}
	_, ok := m.Get(n.Key)
	return value.Bool{V: ok}, nil
}

func (e *Engine) evalIf(n ast.If, environment *env.Environment, depth int) (value.Value, error) {
	condVal, err := e.eval(n.Cond, environment, depth+1)
	if err != nil {
		return nil, err
	}
	cond, err := value.AsBool(condVal)
	if err != nil {
		return nil, newLogicError(KindTypeError, n.Render(), "if condition must be bool: "+err.Error(), err)
	}
	if cond {
		return e.eval(n.Then, environment, depth+1)
	}
	if n.Else != nil {
		return e.eval(n.Else, environment, depth+1)
	}
	return value.Null{}, nil
}

func (e *Engine) evalCall(n ast.Call, environment *env.Environment, depth int) (value.Value, error) {
	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.eval(a, environment, depth+1)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	e.Tracer.FunctionCall()
	result, err := e.Registry.Call(n.Name, args)
	if err != nil {
		return nil, translateRegistryError(err, n.Render())
	}
	return result, nil
}
