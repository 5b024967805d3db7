package ast

import "github.com/riverside/logicengine/value"

// ToValue converts a Node into an introspectable value.Map so logic
// expressions can reason about other expressions: the driver binds a
// rule's own logic as "rule_logic" this way (§4.8), and the
// logic.is_well_formed / logic.all_functions_exist meta-functions (§4.4)
// walk the result rather than the Go Node tree directly, keeping the
// registry's view of an expression expressible in the same Value
// vocabulary as everything else it handles.
func ToValue(n Node) value.Value {
	if n == nil {
		return value.Null{}
	}
	switch v := n.(type) {
	case Literal:
		return mapOf("kind", "literal", "value", v.Val)
	case Var:
		return mapOf("kind", "var", "name", value.Str{V: v.Name})
	case Operator:
		return mapOf("kind", "operator", "op", value.Str{V: v.Op.String()}, "args", nodesToValue(v.Args))
	case Call:
		return mapOf("kind", "call", "name", value.Str{V: v.Name}, "args", nodesToValue(v.Args))
	case Quantifier:
		return mapOf("kind", "quantifier", "quantifier_kind", value.Str{V: v.Kind.String()},
			"var", value.Str{V: v.Var}, "domain", ToValue(v.Domain), "condition", ToValue(v.Condition))
	case If:
		elseVal := value.Value(value.Null{})
		if v.Else != nil {
			elseVal = ToValue(v.Else)
		}
		return mapOf("kind", "if", "cond", ToValue(v.Cond), "then", ToValue(v.Then), "else", elseVal)
	case Fixpoint:
		initVal := value.Value(value.Null{})
		if v.Initial != nil {
			initVal = ToValue(v.Initial)
		}
		return mapOf("kind", "fixpoint", "var", value.Str{V: v.Var}, "expr", ToValue(v.Expr),
			"initial", initVal, "strategy", value.Str{V: v.Strategy.String()})
	case GetField:
		return mapOf("kind", "get_field", "obj", ToValue(v.Obj), "key", value.Str{V: v.Key})
	case HasField:
		return mapOf("kind", "has_field", "obj", ToValue(v.Obj), "key", value.Str{V: v.Key})
	default:
		return value.Null{}
	}
}

func nodesToValue(nodes []Node) value.Value {
	elems := make([]value.Value, len(nodes))
	for i, n := range nodes {
		elems[i] = ToValue(n)
	}
	return value.List{Elems: elems}
}

// mapOf builds a value.Map from alternating key/value-ish pairs, where a
// plain string gets wrapped as value.Str and a value.Value passes through.
// Keeps the ToValue cases above terse without sacrificing readability.
func mapOf(pairs ...interface{}) value.Value {
	keys := make([]string, 0, len(pairs)/2)
	values := make(map[string]value.Value, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key := pairs[i].(string)
		var v value.Value
		switch raw := pairs[i+1].(type) {
		case string:
			v = value.Str{V: raw}
		case value.Value:
			v = raw
		default:
			v = value.Null{}
		}
		keys = append(keys, key)
		values[key] = v
	}
	return value.NewMap(keys, values)
}
