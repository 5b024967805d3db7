package functions

import (
	"github.com/riverside/logicengine/registry"
	"github.com/riverside/logicengine/value"
)

// RegisterPeano adds successor, predecessor, is_zero — grounded on the
// same per-argument validation idiom as builtins/math.go, applied to the
// Peano-style recursion patterns rule/philosophy documents use to walk
// counts down to a base case.
func RegisterPeano(r *registry.Registry) {
	intUnary := registry.Signature{ParamTags: []value.Tag{value.TagInt}, ReturnTag: value.TagInt, HasReturn: true}

	r.Register("successor", intUnary, func(args []value.Value) (value.Value, error) {
		return value.Int{V: args[0].(value.Int).V + 1}, nil
	})

	r.Register("predecessor", intUnary, func(args []value.Value) (value.Value, error) {
		n := args[0].(value.Int).V
		if n == 0 {
			return value.Int{V: 0}, nil
		}
		return value.Int{V: n - 1}, nil
	})

	r.Register("is_zero", registry.Signature{ParamTags: []value.Tag{value.TagInt}, ReturnTag: value.TagBool, HasReturn: true},
		func(args []value.Value) (value.Value, error) {
			return value.Bool{V: args[0].(value.Int).V == 0}, nil
		})
}
