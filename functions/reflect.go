package functions

import (
	"github.com/riverside/logicengine/registry"
	"github.com/riverside/logicengine/value"
)

// RegisterReflective adds has_field and get_field as callable functions
// (distinct from the ast.GetField/HasField node forms, which the
// evaluator dispatches directly) — grounded on builtins/maps.go
// (builtinMaphaskey, builtinMapkeys). get_field returns null for an
// absent key rather than failing, per §4.4.
func RegisterReflective(r *registry.Registry) {
	r.Register("has_field", registry.Signature{}, func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, &registry.ArityError{Name: "has_field", Expected: 2, Got: len(args)}
		}
		m, err := value.AsMap(args[0])
		if err != nil {
			return nil, err
		}
		key, err := value.AsString(args[1])
		if err != nil {
			return nil, err
		}
		_, ok := m.Get(key)
		return value.Bool{V: ok}, nil
	})

	r.Register("get_field", registry.Signature{}, func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, &registry.ArityError{Name: "get_field", Expected: 2, Got: len(args)}
		}
		m, err := value.AsMap(args[0])
		if err != nil {
			return nil, err
		}
		key, err := value.AsString(args[1])
		if err != nil {
			return nil, err
		}
		if v, ok := m.Get(key); ok {
			return v, nil
		}
		return value.Null{}, nil
	})
}
