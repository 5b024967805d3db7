package engine

import (
	"github.com/riverside/logicengine/ast"
	"github.com/riverside/logicengine/env"
	"github.com/riverside/logicengine/value"
)

// evalOperator evaluates operands strictly and left-to-right before
// combining them — and/or do NOT short-circuit (§4.5, §9 open question
// 1, resolved: preserve strict evaluation). This can raise a TypeError
// from a branch whose result the combinator would have discarded; that
// is documented behavior, not a bug to paper over.
func (e *Engine) evalOperator(n ast.Operator, environment *env.Environment, depth int) (value.Value, error) {
	if n.Op == ast.OpNot {
		if len(n.Args) != 1 {
			return nil, newLogicError(KindMalformed, n.Render(), "not requires exactly one operand", nil)
		}
		v, err := e.eval(n.Args[0], environment, depth+1)
		if err != nil {
			return nil, err
		}
		b, err := value.AsBool(v)
		if err != nil {
			return nil, newLogicError(KindTypeError, n.Render(), err.Error(), err)
		}
		return value.Bool{V: !b}, nil
	}

	if len(n.Args) != 2 {
		return nil, newLogicError(KindMalformed, n.Render(), n.Op.String()+" requires exactly two operands", nil)
	}

	left, err := e.eval(n.Args[0], environment, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := e.eval(n.Args[1], environment, depth+1)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case ast.OpAnd:
		lb, err := value.AsBool(left)
		if err != nil {
			return nil, newLogicError(KindTypeError, n.Render(), err.Error(), err)
		}
		rb, err := value.AsBool(right)
		if err != nil {
			return nil, newLogicError(KindTypeError, n.Render(), err.Error(), err)
		}
		return value.Bool{V: lb && rb}, nil
	case ast.OpOr:
		lb, err := value.AsBool(left)
		if err != nil {
			return nil, newLogicError(KindTypeError, n.Render(), err.Error(), err)
		}
		rb, err := value.AsBool(right)
		if err != nil {
			return nil, newLogicError(KindTypeError, n.Render(), err.Error(), err)
		}
		return value.Bool{V: lb || rb}, nil
	case ast.OpImplies:
		// a implies b ≡ (not a) or b (§9 open question 2, resolved: add
		// the operator rather than reject documents that use it).
		lb, err := value.AsBool(left)
		if err != nil {
			return nil, newLogicError(KindTypeError, n.Render(), err.Error(), err)
		}
		rb, err := value.AsBool(right)
		if err != nil {
			return nil, newLogicError(KindTypeError, n.Render(), err.Error(), err)
		}
		return value.Bool{V: !lb || rb}, nil
	case ast.OpEquals:
		return value.Bool{V: value.Equal(left, right)}, nil
	case ast.OpLessThan:
		b, err := value.Less(left, right)
		if err != nil {
			return nil, newLogicError(KindTypeError, n.Render(), err.Error(), err)
		}
		return value.Bool{V: b}, nil
	case ast.OpLessEqual:
		b, err := value.LessEqual(left, right)
		if err != nil {
			return nil, newLogicError(KindTypeError, n.Render(), err.Error(), err)
		}
		return value.Bool{V: b}, nil
	case ast.OpGreaterThan:
		b, err := value.Greater(left, right)
		if err != nil {
			return nil, newLogicError(KindTypeError, n.Render(), err.Error(), err)
		}
		return value.Bool{V: b}, nil
	case ast.OpGreaterEqual:
		b, err := value.GreaterEqual(left, right)
		if err != nil {
			return nil, newLogicError(KindTypeError, n.Render(), err.Error(), err)
		}
		return value.Bool{V: b}, nil
	default:
		return nil, newLogicError(KindUnknownOp, n.Render(), "unknown operator", nil)
	}
}
