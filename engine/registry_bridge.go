package engine

import "github.com/riverside/logicengine/registry"

// translateRegistryError maps the registry's plain Go errors onto the
// evaluator's LogicError taxonomy (§7) so hosts see one consistent error
// shape regardless of whether a function call failed at dispatch
// (unknown name, bad arity/tag) or inside the callable itself.
func translateRegistryError(err error, node string) error {
	switch e := err.(type) {
	case *registry.UnknownFunctionError:
		return newLogicError(KindUnknownFunc, node, e.Error(), err)
	case *registry.ArityError:
		return newLogicError(KindArityError, node, e.Error(), err)
	case *registry.FuncTypeError:
		return newLogicError(KindTypeError, node, e.Error(), err)
	case *registry.DivisionByZeroError:
		return newLogicError(KindDivByZero, node, e.Error(), err)
	default:
		return wrap(err, node)
	}
}
