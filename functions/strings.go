package functions

import (
	"fmt"
	"strings"

	"github.com/riverside/logicengine/registry"
	"github.com/riverside/logicengine/value"
)

// RegisterStrings adds length, concat, starts_with, and string_of_int
// (string contains is served by RegisterCollection's contains) — grounded on builtins/strings.go's per-tag switch idiom
// (builtinUpcase, builtinStrsub), narrowed to the logic engine's single
// string tag.
func RegisterStrings(r *registry.Registry) {
	r.Register("length", registry.Signature{ParamTags: []value.Tag{value.TagString}, ReturnTag: value.TagInt, HasReturn: true},
		func(args []value.Value) (value.Value, error) {
			return value.Int{V: int64(len(args[0].(value.Str).V))}, nil
		})

	r.Register("concat", registry.Signature{}, func(args []value.Value) (value.Value, error) {
		var sb strings.Builder
		for i, a := range args {
			s, ok := a.(value.Str)
			if !ok {
				return nil, &registry.FuncTypeError{Name: "concat", Index: i, Expected: value.TagString, Got: a.Tag()}
			}
			sb.WriteString(s.V)
		}
		return value.Str{V: sb.String()}, nil
	})

	r.Register("starts_with", registry.Signature{ParamTags: []value.Tag{value.TagString, value.TagString}, ReturnTag: value.TagBool, HasReturn: true},
		func(args []value.Value) (value.Value, error) {
			return value.Bool{V: strings.HasPrefix(args[0].(value.Str).V, args[1].(value.Str).V)}, nil
		})

	// "contains" is shared between string and collection callers (§4.1
	// defines it for both list and string); RegisterCollection registers
	// it once so the two groupings don't fight over the same name.

	r.Register("string_of_int", registry.Signature{ParamTags: []value.Tag{value.TagInt}, ReturnTag: value.TagString, HasReturn: true},
		func(args []value.Value) (value.Value, error) {
			return value.Str{V: fmt.Sprintf("%d", args[0].(value.Int).V)}, nil
		})
}
