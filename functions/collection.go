// Package functions ships the registered-function groupings §4.4
// recommends as "illustrative, not prescriptive" — collection,
// arithmetic, peano, string, reflective, and meta builtins, plus a small
// filesystem/YAML bridge proving the registry can host real domain
// functions without logic/engine importing them itself. Grounded
// file-by-file on the teacher's builtins/*.go, adapted from MOO's
// argument-validation idiom to this engine's Signature-checked
// registry.Call.
package functions

import (
	"sort"

	"github.com/riverside/logicengine/registry"
	"github.com/riverside/logicengine/value"
)

// RegisterCollection adds count, contains, is_member, sort, unique,
// reverse, and slice — grounded on builtins/lists.go's per-builtin
// argument-count and tag checks (builtinListappend, builtinSort, ...),
// reworked against the six logic tags instead of MOO's list/object mix.
func RegisterCollection(r *registry.Registry) {
	r.Register("count", registry.Signature{ParamTags: []value.Tag{value.TagList}, ReturnTag: value.TagInt, HasReturn: true},
		func(args []value.Value) (value.Value, error) {
			l := args[0].(value.List)
			return value.Int{V: int64(len(l.Elems))}, nil
		})

	r.Register("contains", registry.Signature{}, func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, &registry.ArityError{Name: "contains", Expected: 2, Got: len(args)}
		}
		ok, err := value.Contains(args[0], args[1])
		if err != nil {
			return nil, err
		}
		return value.Bool{V: ok}, nil
	})

	r.Register("is_member", registry.Signature{}, func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, &registry.ArityError{Name: "is_member", Expected: 2, Got: len(args)}
		}
		ok, err := value.Contains(args[1], args[0])
		if err != nil {
			return nil, err
		}
		return value.Bool{V: ok}, nil
	})

	r.Register("sort", registry.Signature{ParamTags: []value.Tag{value.TagList}, ReturnTag: value.TagList, HasReturn: true},
		func(args []value.Value) (value.Value, error) {
			l := args[0].(value.List)
			sorted := append([]value.Value(nil), l.Elems...)
			var sortErr error
			sort.SliceStable(sorted, func(i, j int) bool {
				lt, err := value.Less(sorted[i], sorted[j])
				if err != nil {
					sortErr = err
				}
				return lt
			})
			if sortErr != nil {
				return nil, sortErr
			}
			return value.List{Elems: sorted}, nil
		})

	r.Register("unique", registry.Signature{ParamTags: []value.Tag{value.TagList}, ReturnTag: value.TagList, HasReturn: true},
		func(args []value.Value) (value.Value, error) {
			l := args[0].(value.List)
			var out []value.Value
			for _, e := range l.Elems {
				dup := false
				for _, seen := range out {
					if value.Equal(e, seen) {
						dup = true
						break
					}
				}
				if !dup {
					out = append(out, e)
				}
			}
			return value.List{Elems: out}, nil
		})

	r.Register("reverse", registry.Signature{ParamTags: []value.Tag{value.TagList}, ReturnTag: value.TagList, HasReturn: true},
		func(args []value.Value) (value.Value, error) {
			l := args[0].(value.List)
			out := make([]value.Value, len(l.Elems))
			for i, e := range l.Elems {
				out[len(l.Elems)-1-i] = e
			}
			return value.List{Elems: out}, nil
		})

	r.Register("slice", registry.Signature{}, func(args []value.Value) (value.Value, error) {
		if len(args) != 3 {
			return nil, &registry.ArityError{Name: "slice", Expected: 3, Got: len(args)}
		}
		l, ok := args[0].(value.List)
		if !ok {
			return nil, &registry.FuncTypeError{Name: "slice", Index: 0, Expected: value.TagList, Got: args[0].Tag()}
		}
		start, ok := args[1].(value.Int)
		if !ok {
			return nil, &registry.FuncTypeError{Name: "slice", Index: 1, Expected: value.TagInt, Got: args[1].Tag()}
		}
		end, ok := args[2].(value.Int)
		if !ok {
			return nil, &registry.FuncTypeError{Name: "slice", Index: 2, Expected: value.TagInt, Got: args[2].Tag()}
		}
		s, eIdx := clamp(int(start.V), len(l.Elems)), clamp(int(end.V), len(l.Elems))
		if s > eIdx {
			return value.List{}, nil
		}
		return value.List{Elems: append([]value.Value(nil), l.Elems[s:eIdx]...)}, nil
	})
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
