package registry

import (
	"testing"

	"github.com/riverside/logicengine/value"
)

func TestCallDispatchesRegisteredFunction(t *testing.T) {
	r := New()
	r.Register("double", Signature{ParamTags: []value.Tag{value.TagInt}, ReturnTag: value.TagInt, HasReturn: true},
		func(args []value.Value) (value.Value, error) {
			return value.Int{V: args[0].(value.Int).V * 2}, nil
		})

	got, err := r.Call("double", []value.Value{value.Int{V: 21}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.(value.Int).V != 42 {
		t.Errorf("double(21) = %v, want 42", got)
	}
}

func TestCallUnknownFunction(t *testing.T) {
	r := New()
	if _, err := r.Call("nope", nil); err == nil {
		t.Error("expected UnknownFunctionError")
	} else if _, ok := err.(*UnknownFunctionError); !ok {
		t.Errorf("expected UnknownFunctionError, got %T", err)
	}
}

func TestCallArityMismatch(t *testing.T) {
	r := New()
	r.Register("add", Signature{ParamTags: []value.Tag{value.TagInt, value.TagInt}},
		func(args []value.Value) (value.Value, error) { return value.Null{}, nil })
	if _, err := r.Call("add", []value.Value{value.Int{V: 1}}); err == nil {
		t.Error("expected ArityError")
	} else if _, ok := err.(*ArityError); !ok {
		t.Errorf("expected ArityError, got %T", err)
	}
}

func TestCallTagMismatch(t *testing.T) {
	r := New()
	r.Register("add", Signature{ParamTags: []value.Tag{value.TagInt, value.TagInt}},
		func(args []value.Value) (value.Value, error) { return value.Null{}, nil })
	if _, err := r.Call("add", []value.Value{value.Int{V: 1}, value.Str{V: "x"}}); err == nil {
		t.Error("expected FuncTypeError")
	} else if _, ok := err.(*FuncTypeError); !ok {
		t.Errorf("expected FuncTypeError, got %T", err)
	}
}

func TestEmptySignatureSkipsChecking(t *testing.T) {
	r := New()
	r.Register("anything", Signature{}, func(args []value.Value) (value.Value, error) {
		return value.Int{V: int64(len(args))}, nil
	})
	got, err := r.Call("anything", []value.Value{value.Int{V: 1}, value.Str{V: "x"}, value.Bool{V: true}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.(value.Int).V != 3 {
		t.Errorf("expected arity-unchecked call to pass through, got %v", got)
	}
}
