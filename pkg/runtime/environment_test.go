package runtime

import (
	"errors"
	"reflect"
	"testing"
)

func TestGlobalLookupFirstMatchWins(t *testing.T) {
	g := NewGlobalEnv()
	g.AddBinding("x", 3)
	g.AddBinding("y", 4)
	g.AddBinding("x", 9)

	addr, err := Lookup(g, "x")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if addr != 3 {
		t.Fatalf("expected first binding address 3, got %d", addr)
	}
	if got, want := g.Names(), []string{"x", "y", "x"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("names mismatch: got %v, want %v", got, want)
	}
}

func TestLookupWalksParents(t *testing.T) {
	g := NewGlobalEnv()
	g.AddBinding("g", 0)
	outer := NewExtEnv([]string{"a", "b"}, []Address{1, 2}, g)
	inner := NewExtEnv([]string{"a"}, []Address{3}, outer)

	cases := map[string]Address{"a": 3, "b": 2, "g": 0}
	for name, want := range cases {
		got, err := Lookup(inner, name)
		if err != nil {
			t.Fatalf("lookup %s failed: %v", name, err)
		}
		if got != want {
			t.Fatalf("lookup %s: got %d, want %d", name, got, want)
		}
	}
	if inner.Parent() != outer {
		t.Fatalf("expected parent to be the outer frame")
	}
}

func TestLookupMissingName(t *testing.T) {
	g := NewGlobalEnv()
	env := NewExtEnv([]string{"a"}, []Address{0}, g)
	_, err := Lookup(env, "missing")
	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("expected LookupError, got %v", err)
	}
	if lookupErr.Name != "missing" {
		t.Fatalf("unexpected name in error: %q", lookupErr.Name)
	}
}

func TestNewExtEnvRejectsMismatchedLengths(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for mismatched frame")
		}
	}()
	NewExtEnv([]string{"a", "b"}, []Address{0}, NewGlobalEnv())
}

func TestInspectValues(t *testing.T) {
	cases := []struct {
		val  Value
		want string
	}{
		{BoolValue{Val: true}, "#t"},
		{BoolValue{Val: false}, "#f"},
		{StringValue{Val: "hi"}, `"hi"`},
		{SymbolValue{Name: "sym"}, "sym"},
		{EmptyValue{}, "()"},
		{List(SymbolValue{Name: "a"}, List(SymbolValue{Name: "b"})), "(a (b))"},
		{&PairValue{Car: SymbolValue{Name: "a"}, Cdr: SymbolValue{Name: "b"}}, "(a . b)"},
		{PrimOpValue{Op: "+"}, "#<primitive +>"},
		{&Closure{Params: []string{"x", "y"}}, "#<procedure (x y)>"},
		{VoidValue{}, "#<void>"},
	}
	for _, tc := range cases {
		if got := Inspect(tc.val); got != tc.want {
			t.Fatalf("Inspect(%#v) = %q, want %q", tc.val, got, tc.want)
		}
	}
}
