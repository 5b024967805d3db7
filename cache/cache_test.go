package cache

import (
	"testing"

	"github.com/riverside/logicengine/ast"
	"github.com/riverside/logicengine/value"
)

func TestKeyClosedness(t *testing.T) {
	closedExpr := ast.Operator{Op: ast.OpEquals, Args: []ast.Node{
		ast.Literal{Val: value.Int{V: 1}}, ast.Literal{Val: value.Int{V: 1}},
	}}
	if _, closed := Key(closedExpr); !closed {
		t.Error("expression with no Var should be closed")
	}

	openExpr := ast.Operator{Op: ast.OpEquals, Args: []ast.Node{
		ast.Var{Name: "x"}, ast.Literal{Val: value.Int{V: 1}},
	}}
	if _, closed := Key(openExpr); closed {
		t.Error("expression containing a free Var should not be closed")
	}
}

func TestGetPutRoundtrip(t *testing.T) {
	c := New()
	c.Put("k", value.Int{V: 42})
	v, ok := c.Get("k")
	if !ok || v.(value.Int).V != 42 {
		t.Errorf("expected cache hit with 42, got %v, %v", v, ok)
	}
}

func TestDisableEmptiesStorage(t *testing.T) {
	c := New()
	c.Put("k", value.Int{V: 1})
	c.Enable(false)
	if _, ok := c.Get("k"); ok {
		t.Error("disabling caching should empty storage and stop lookups")
	}
	c.Enable(true)
	if _, ok := c.Get("k"); ok {
		t.Error("storage should remain empty after re-enabling, not resurrect old entries")
	}
}

func TestClear(t *testing.T) {
	c := New()
	c.Put("k", value.Int{V: 1})
	c.Clear()
	if _, ok := c.Get("k"); ok {
		t.Error("Clear should empty storage")
	}
}
