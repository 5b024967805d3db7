package value

import "testing"

func TestEqualTypeStrict(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"int_int_equal", Int{V: 3}, Int{V: 3}, true},
		{"int_int_diff", Int{V: 3}, Int{V: 4}, false},
		{"int_string_never_equal", Int{V: 3}, Str{V: "3"}, false},
		{"bool_bool", Bool{V: true}, Bool{V: true}, true},
		{"null_null", Null{}, Null{}, true},
		{"null_bool", Null{}, Bool{V: false}, false},
		{"list_equal", List{Elems: []Value{Int{V: 1}, Int{V: 2}}}, List{Elems: []Value{Int{V: 1}, Int{V: 2}}}, true},
		{"list_len_mismatch", List{Elems: []Value{Int{V: 1}}}, List{Elems: []Value{Int{V: 1}, Int{V: 2}}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLessOrdering(t *testing.T) {
	if lt, err := Less(Int{V: 1}, Int{V: 2}); err != nil || !lt {
		t.Errorf("1 < 2 should hold, got %v err=%v", lt, err)
	}
	if lt, err := Less(Str{V: "a"}, Str{V: "b"}); err != nil || !lt {
		t.Errorf("\"a\" < \"b\" should hold, got %v err=%v", lt, err)
	}
	if _, err := Less(Bool{V: true}, Bool{V: false}); err == nil {
		t.Error("ordering bool should fail with TypeError")
	}
	if _, err := Less(Int{V: 1}, Str{V: "x"}); err == nil {
		t.Error("ordering across tags should fail with TypeError")
	}
}

func TestContains(t *testing.T) {
	list := List{Elems: []Value{Int{V: 1}, Int{V: 2}, Int{V: 3}}}
	if ok, err := Contains(list, Int{V: 2}); err != nil || !ok {
		t.Errorf("list should contain 2, got %v err=%v", ok, err)
	}
	if ok, err := Contains(Str{V: "hello"}, Str{V: "ell"}); err != nil || !ok {
		t.Errorf("string should contain substring, got %v err=%v", ok, err)
	}
	if _, err := Contains(Int{V: 1}, Int{V: 1}); err == nil {
		t.Error("contains on int should fail")
	}
}

func TestSize(t *testing.T) {
	cases := []struct {
		v    Value
		want int
	}{
		{List{Elems: []Value{Int{V: 1}, Int{V: 2}}}, 2},
		{Str{V: "hello"}, 5},
		{NewMap([]string{"a"}, map[string]Value{"a": Int{V: 1}}), 1},
	}
	for _, c := range cases {
		got, err := Size(c.v)
		if err != nil || got != c.want {
			t.Errorf("Size(%v) = %d, %v; want %d", c.v, got, err, c.want)
		}
	}
	if _, err := Size(Int{V: 1}); err == nil {
		t.Error("size on int should fail")
	}
}

func TestNumericLiteral(t *testing.T) {
	if v := NewNumericLiteral(true, 42, "42"); v.Tag() != TagInt {
		t.Errorf("whole literal should be int, got %s", v.Tag())
	}
	if v := NewNumericLiteral(false, 0, "3.14"); v.Tag() != TagString {
		t.Errorf("non-whole literal should be string, got %s", v.Tag())
	} else if s, _ := AsString(v); s != "3.14" {
		t.Errorf("non-whole literal should preserve token, got %q", s)
	}
}

func TestMapWith(t *testing.T) {
	m := NewMap(nil, map[string]Value{})
	m = m.With("a", Int{V: 1})
	m = m.With("b", Int{V: 2})
	m2 := m.With("a", Int{V: 99})
	if got, _ := m.Get("a"); !Equal(got, Int{V: 1}) {
		t.Error("original map should be unmodified (copy-on-write)")
	}
	if got, _ := m2.Get("a"); !Equal(got, Int{V: 99}) {
		t.Error("updated map should reflect new value")
	}
	if len(m2.Keys()) != 2 {
		t.Errorf("overwriting an existing key should not grow key order, got %v", m2.Keys())
	}
}
