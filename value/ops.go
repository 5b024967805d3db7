package value

import "strings"

// Equal is structural and type-strict: values of different tags are
// never equal (§3, §4.1).
func Equal(a, b Value) bool {
	if a.Tag() != b.Tag() {
		return false
	}
	switch av := a.(type) {
	case Null:
		return true
	case Bool:
		return av.V == b.(Bool).V
	case Int:
		return av.V == b.(Int).V
	case Str:
		return av.V == b.(Str).V
	case List:
		bv := b.(List)
		if len(av.Elems) != len(bv.Elems) {
			return false
		}
		for i := range av.Elems {
			if !Equal(av.Elems[i], bv.Elems[i]) {
				return false
			}
		}
		return true
	case Map:
		bv := b.(Map)
		if av.Len() != bv.Len() {
			return false
		}
		for _, k := range av.keys {
			aVal := av.values[k]
			bVal, ok := bv.values[k]
			if !ok || !Equal(aVal, bVal) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Less reports whether a < b. Defined only for int×int and string×string
// (§3, §4.1); any other pairing is a TypeError.
func Less(a, b Value) (bool, error) {
	switch av := a.(type) {
	case Int:
		bv, ok := b.(Int)
		if !ok {
			return false, newTypeError("less_than", "int", b.Tag())
		}
		return av.V < bv.V, nil
	case Str:
		bv, ok := b.(Str)
		if !ok {
			return false, newTypeError("less_than", "string", b.Tag())
		}
		return av.V < bv.V, nil
	default:
		return false, newTypeError("less_than", "int or string", a.Tag())
	}
}

// LessEqual, Greater, GreaterEqual are derived from Less and Equal so the
// ordering semantics live in exactly one place.
func LessEqual(a, b Value) (bool, error) {
	lt, err := Less(a, b)
	if err != nil {
		return false, err
	}
	return lt || Equal(a, b), nil
}

func Greater(a, b Value) (bool, error) {
	le, err := LessEqual(a, b)
	if err != nil {
		return false, err
	}
	return !le, nil
}

func GreaterEqual(a, b Value) (bool, error) {
	lt, err := Less(a, b)
	if err != nil {
		return false, err
	}
	return !lt, nil
}

// Contains holds for list if any element equals v, and for string when v
// is itself a string occurring as a substring (§4.1).
func Contains(coll, v Value) (bool, error) {
	switch c := coll.(type) {
	case List:
		for _, e := range c.Elems {
			if Equal(e, v) {
				return true, nil
			}
		}
		return false, nil
	case Str:
		sv, ok := v.(Str)
		if !ok {
			return false, newTypeError("contains", "string", v.Tag())
		}
		return strings.Contains(c.V, sv.V), nil
	default:
		return false, newTypeError("contains", "list or string", coll.Tag())
	}
}

// Size is defined for list, map, string (§4.1).
func Size(v Value) (int, error) {
	switch c := v.(type) {
	case List:
		return len(c.Elems), nil
	case Map:
		return c.Len(), nil
	case Str:
		return len(c.V), nil
	default:
		return 0, newTypeError("size", "list, map, or string", v.Tag())
	}
}

// AsBool, AsInt, AsString, AsList, AsMap fail with TypeError if the tag
// does not match — the coercion primitives used by the evaluator and
// registered functions when a declared parameter tag demands it.
func AsBool(v Value) (bool, error) {
	b, ok := v.(Bool)
	if !ok {
		return false, newTypeError("as_bool", "bool", v.Tag())
	}
	return b.V, nil
}

func AsInt(v Value) (int64, error) {
	i, ok := v.(Int)
	if !ok {
		return 0, newTypeError("as_int", "int", v.Tag())
	}
	return i.V, nil
}

func AsString(v Value) (string, error) {
	s, ok := v.(Str)
	if !ok {
		return "", newTypeError("as_string", "string", v.Tag())
	}
	return s.V, nil
}

func AsList(v Value) ([]Value, error) {
	l, ok := v.(List)
	if !ok {
		return nil, newTypeError("as_list", "list", v.Tag())
	}
	return l.Elems, nil
}

func AsMap(v Value) (Map, error) {
	m, ok := v.(Map)
	if !ok {
		return Map{}, newTypeError("as_map", "map", v.Tag())
	}
	return m, nil
}
