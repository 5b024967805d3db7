package functions

import (
	"github.com/riverside/logicengine/registry"
	"github.com/riverside/logicengine/value"
)

// RegisterMeta adds the two meta-functions spec.md §4.4 names:
// logic.is_well_formed and logic.all_functions_exist. Both operate on
// the AST-as-value encoding ast.ToValue produces (a "kind"-tagged
// value.Map), not on a Go ast.Node directly — the registry only ever
// sees Values, so "walking an AST" here means walking that encoding,
// grounded on conformance/loader.go's recursive tree-walk-and-validate
// idiom applied to a Value tree instead of a YAML document tree.
func RegisterMeta(r *registry.Registry) {
	r.Register("logic.is_well_formed", registry.Signature{}, func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, &registry.ArityError{Name: "logic.is_well_formed", Expected: 1, Got: len(args)}
		}
		return value.Bool{V: isWellFormed(args[0])}, nil
	})

	r.Register("logic.all_functions_exist", registry.Signature{}, func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, &registry.ArityError{Name: "logic.all_functions_exist", Expected: 1, Got: len(args)}
		}
		return value.Bool{V: allFunctionsExist(args[0], r)}, nil
	})
}

func fieldString(m value.Map, key string) (string, bool) {
	v, ok := m.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(value.Str)
	return s.V, ok
}

func requireFields(m value.Map, keys ...string) bool {
	for _, k := range keys {
		if _, ok := m.Get(k); !ok {
			return false
		}
	}
	return true
}

// isWellFormed checks that node is a "kind"-tagged map with the fields
// that kind requires, recursively. A nil/non-map/unknown-kind node is
// malformed (§3: a well-formed expression has no constructor missing
// required fields — §7 MalformedExpression).
func isWellFormed(node value.Value) bool {
	m, ok := node.(value.Map)
	if !ok {
		return false
	}
	kind, ok := fieldString(m, "kind")
	if !ok {
		return false
	}

	switch kind {
	case "literal":
		return requireFields(m, "value")
	case "var":
		return requireFields(m, "name")
	case "operator":
		if !requireFields(m, "op", "args") {
			return false
		}
		return wellFormedList(m, "args")
	case "call":
		if !requireFields(m, "name", "args") {
			return false
		}
		return wellFormedList(m, "args")
	case "quantifier":
		if !requireFields(m, "quantifier_kind", "var", "domain", "condition") {
			return false
		}
		return wellFormedField(m, "domain", false) && wellFormedField(m, "condition", false)
	case "if":
		if !requireFields(m, "cond", "then") {
			return false
		}
		return wellFormedField(m, "cond", false) && wellFormedField(m, "then", false) && wellFormedField(m, "else", true)
	case "fixpoint":
		if !requireFields(m, "var", "expr") {
			return false
		}
		return wellFormedField(m, "expr", false) && wellFormedField(m, "initial", true)
	case "get_field", "has_field":
		if !requireFields(m, "obj", "key") {
			return false
		}
		return wellFormedField(m, "obj", false)
	default:
		return false
	}
}

func wellFormedField(m value.Map, key string, optional bool) bool {
	v, ok := m.Get(key)
	if !ok {
		return optional
	}
	if _, isNull := v.(value.Null); isNull {
		return optional // optional children (If.Else, Fixpoint.Initial) encode as null
	}
	return isWellFormed(v)
}

func wellFormedList(m value.Map, key string) bool {
	v, _ := m.Get(key)
	l, ok := v.(value.List)
	if !ok {
		return false
	}
	for _, e := range l.Elems {
		if !isWellFormed(e) {
			return false
		}
	}
	return true
}

// allFunctionsExist walks node and requires every "call" kind's name to
// be registered in reg.
func allFunctionsExist(node value.Value, reg *registry.Registry) bool {
	m, ok := node.(value.Map)
	if !ok {
		return true
	}
	kind, _ := fieldString(m, "kind")
	if kind == "call" {
		name, _ := fieldString(m, "name")
		if !reg.Has(name) {
			return false
		}
	}
	for _, key := range m.Keys() {
		v, _ := m.Get(key)
		switch child := v.(type) {
		case value.Map:
			if !allFunctionsExist(child, reg) {
				return false
			}
		case value.List:
			for _, e := range child.Elems {
				if !allFunctionsExist(e, reg) {
					return false
				}
			}
		}
	}
	return true
}
