package functions

import (
	"github.com/riverside/logicengine/registry"
	"github.com/riverside/logicengine/value"
)

// RegisterArithmetic adds add/subtract/multiply/divide/modulo/power over
// int×int→int, grounded on builtins/math.go's argument-validation idiom
// (builtinAbs, builtinMin) — divide and modulo fail with DivisionByZero
// on a zero divisor (§4.4).
func RegisterArithmetic(r *registry.Registry) {
	intPair := registry.Signature{ParamTags: []value.Tag{value.TagInt, value.TagInt}, ReturnTag: value.TagInt, HasReturn: true}

	r.Register("add", intPair, func(args []value.Value) (value.Value, error) {
		return value.Int{V: args[0].(value.Int).V + args[1].(value.Int).V}, nil
	})
	r.Register("subtract", intPair, func(args []value.Value) (value.Value, error) {
		return value.Int{V: args[0].(value.Int).V - args[1].(value.Int).V}, nil
	})
	r.Register("multiply", intPair, func(args []value.Value) (value.Value, error) {
		return value.Int{V: args[0].(value.Int).V * args[1].(value.Int).V}, nil
	})
	r.Register("divide", intPair, func(args []value.Value) (value.Value, error) {
		divisor := args[1].(value.Int).V
		if divisor == 0 {
			return nil, &registry.DivisionByZeroError{Op: "divide"}
		}
		return value.Int{V: args[0].(value.Int).V / divisor}, nil
	})
	r.Register("modulo", intPair, func(args []value.Value) (value.Value, error) {
		divisor := args[1].(value.Int).V
		if divisor == 0 {
			return nil, &registry.DivisionByZeroError{Op: "modulo"}
		}
		return value.Int{V: args[0].(value.Int).V % divisor}, nil
	})
	r.Register("power", intPair, func(args []value.Value) (value.Value, error) {
		base, exp := args[0].(value.Int).V, args[1].(value.Int).V
		result := int64(1)
		for i := int64(0); i < exp; i++ {
			result *= base
		}
		return value.Int{V: result}, nil
	})
}
