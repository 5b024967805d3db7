package functions

import (
	"testing"

	"github.com/riverside/logicengine/ast"
	"github.com/riverside/logicengine/registry"
	"github.com/riverside/logicengine/value"
)

func newTestRegistry() *registry.Registry {
	r := registry.New()
	RegisterCore(r)
	return r
}

func TestArithmeticDivisionByZero(t *testing.T) {
	r := newTestRegistry()
	_, err := r.Call("divide", []value.Value{value.Int{V: 10}, value.Int{V: 0}})
	if err == nil {
		t.Fatal("expected division-by-zero error")
	}
	if _, ok := err.(*registry.DivisionByZeroError); !ok {
		t.Errorf("expected DivisionByZeroError, got %T", err)
	}
}

func TestArithmeticBasics(t *testing.T) {
	r := newTestRegistry()
	cases := []struct {
		name string
		args []value.Value
		want int64
	}{
		{"add", []value.Value{value.Int{V: 2}, value.Int{V: 3}}, 5},
		{"subtract", []value.Value{value.Int{V: 5}, value.Int{V: 3}}, 2},
		{"multiply", []value.Value{value.Int{V: 4}, value.Int{V: 3}}, 12},
		{"modulo", []value.Value{value.Int{V: 10}, value.Int{V: 3}}, 1},
		{"power", []value.Value{value.Int{V: 2}, value.Int{V: 5}}, 32},
	}
	for _, c := range cases {
		got, err := r.Call(c.name, c.args)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", c.name, err)
		}
		if got.(value.Int).V != c.want {
			t.Errorf("%s = %v, want %d", c.name, got, c.want)
		}
	}
}

func TestPeano(t *testing.T) {
	r := newTestRegistry()
	if v, _ := r.Call("predecessor", []value.Value{value.Int{V: 0}}); v.(value.Int).V != 0 {
		t.Errorf("predecessor(0) should be 0, got %v", v)
	}
	if v, _ := r.Call("successor", []value.Value{value.Int{V: 4}}); v.(value.Int).V != 5 {
		t.Errorf("successor(4) should be 5, got %v", v)
	}
	if v, _ := r.Call("is_zero", []value.Value{value.Int{V: 0}}); !v.(value.Bool).V {
		t.Error("is_zero(0) should be true")
	}
}

func TestCountAndContains(t *testing.T) {
	r := newTestRegistry()
	list := value.List{Elems: []value.Value{value.Int{V: 1}, value.Int{V: 1}, value.Int{V: 1}}}
	count, err := r.Call("count", []value.Value{list})
	if err != nil || count.(value.Int).V != 3 {
		t.Errorf("count([1,1,1]) = %v, %v; want 3", count, err)
	}
	ok, err := r.Call("contains", []value.Value{list, value.Int{V: 1}})
	if err != nil || !ok.(value.Bool).V {
		t.Errorf("contains should find 1 in list, got %v, %v", ok, err)
	}
}

func TestIsWellFormed(t *testing.T) {
	expr := ast.Operator{Op: ast.OpEquals, Args: []ast.Node{
		ast.Literal{Val: value.Int{V: 1}}, ast.Literal{Val: value.Int{V: 1}},
	}}
	v := ast.ToValue(expr)
	if ok := isWellFormed(v); !ok {
		t.Error("well-formed expression should report true")
	}

	malformed := value.NewMap([]string{"kind"}, map[string]value.Value{"kind": value.Str{V: "operator"}})
	if isWellFormed(malformed) {
		t.Error("operator missing op/args should be malformed")
	}
}

func TestAllFunctionsExist(t *testing.T) {
	r := newTestRegistry()
	known := ast.Call{Name: "count", Args: []ast.Node{ast.Literal{Val: value.List{}}}}
	unknown := ast.Call{Name: "definitely_not_registered", Args: nil}

	if !allFunctionsExist(ast.ToValue(known), r) {
		t.Error("expected known function to pass all_functions_exist")
	}
	if allFunctionsExist(ast.ToValue(unknown), r) {
		t.Error("expected unknown function to fail all_functions_exist")
	}
}
