package minimatic

import (
	"errors"
	"testing"
)

func Test_Context_GetSetHas(t *testing.T) {
	ctx := NewContext()

	if ctx.Has("x") {
		t.Fatal("fresh Context reports x bound")
	}
	ctx.Set("x", Int(1))
	if !ctx.Has("x") {
		t.Fatal("x not reported bound after Set")
	}

	v, err := ctx.Get("x")
	if err != nil {
		t.Fatalf("Get(x): %v", err)
	}
	wantEqual(t, v, Int(1))

	// Rebinding overwrites.
	ctx.Set("x", Str("two"))
	v, err = ctx.Get("x")
	if err != nil {
		t.Fatalf("Get(x): %v", err)
	}
	wantEqual(t, v, Str("two"))
}

func Test_Context_GetUnbound(t *testing.T) {
	ctx := NewContext()
	_, err := ctx.Get("ghost")
	var unbound *UnboundSymbolError
	if !errors.As(err, &unbound) {
		t.Fatalf("want *UnboundSymbolError, got %v", err)
	}
	if unbound.Name != "ghost" {
		t.Fatalf("want ghost, got %q", unbound.Name)
	}
}

func Test_Context_Unset(t *testing.T) {
	ctx := NewContext()
	ctx.Set("x", Int(1))
	ctx.Unset("x")
	if ctx.Has("x") {
		t.Fatal("x still bound after Unset")
	}
	// Unsetting an absent name is fine.
	ctx.Unset("x")
}

func Test_Context_SingleNamespace(t *testing.T) {
	ctx := NewContext()
	noop := func(args []Element) (Element, error) { return Null, nil }

	// Registering a function shadows a variable of the same name.
	ctx.Set("f", Int(1))
	ctx.Register("f", noop)
	if _, err := ctx.Get("f"); err == nil {
		t.Fatal("variable binding survived function registration")
	}
	if _, ok := ctx.Function("f"); !ok {
		t.Fatal("function not registered")
	}
	if !ctx.Has("f") {
		t.Fatal("f not reported bound while a function")
	}

	// And the other way around.
	ctx.Set("f", Int(2))
	if _, ok := ctx.Function("f"); ok {
		t.Fatal("function binding survived Set")
	}
	v, err := ctx.Get("f")
	if err != nil {
		t.Fatalf("Get(f): %v", err)
	}
	wantEqual(t, v, Int(2))
}

func Test_Context_CopyIsolation(t *testing.T) {
	ctx := NewContext()
	ctx.Set("shared", Int(1))

	cp := ctx.Copy()

	// Mutations to the copy never show in the original.
	cp.Set("shared", Int(2))
	cp.Set("fresh", Int(3))
	v, err := ctx.Get("shared")
	if err != nil {
		t.Fatalf("Get(shared): %v", err)
	}
	wantEqual(t, v, Int(1))
	if ctx.Has("fresh") {
		t.Fatal("copy's binding leaked into the original")
	}

	// And mutations to the original never show in the copy.
	ctx.Set("shared", Int(9))
	v, err = cp.Get("shared")
	if err != nil {
		t.Fatalf("copy Get(shared): %v", err)
	}
	wantEqual(t, v, Int(2))
}

func Test_Context_CopyCarriesFunctions(t *testing.T) {
	ctx := NewContext()
	RegisterArithmetic(ctx)

	cp := ctx.Copy()
	fn, ok := cp.Function("Plus")
	if !ok {
		t.Fatal("copy lost registered function")
	}
	out, err := fn([]Element{Int(1), Int(2)})
	if err != nil {
		t.Fatalf("Plus via copy: %v", err)
	}
	wantEqual(t, out, Int(3))
}
