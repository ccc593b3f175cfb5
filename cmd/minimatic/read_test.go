package main

import (
	"testing"

	minimatic "github.com/gabrielebaez/minimatic"
)

func read(t *testing.T, src string) minimatic.Element {
	t.Helper()
	el, err := readElement(src)
	if err != nil {
		t.Fatalf("readElement(%q): %v", src, err)
	}
	return el
}

func Test_Read_Roundtrip(t *testing.T) {
	cases := []struct {
		src  string
		want minimatic.Element
	}{
		{"42", minimatic.Int(42)},
		{"-7", minimatic.Int(-7)},
		{"2.5", minimatic.Real(2.5)},
		{"1e3", minimatic.Real(1000)},
		{`"hi there"`, minimatic.Str("hi there")},
		{"True", minimatic.Bool(true)},
		{"False", minimatic.Bool(false)},
		{"Null", minimatic.Null},
		{"x", minimatic.Sym("x")},
		{"Nil()", minimatic.Expr("Nil")},
		{"Add(x, 10)", minimatic.Expr("Add", minimatic.Sym("x"), minimatic.Int(10))},
		{" Add( Square( x ) , y ) ",
			minimatic.Expr("Add",
				minimatic.Expr("Square", minimatic.Sym("x")),
				minimatic.Sym("y"))},
		{`If(Less(n, 0), "neg", "pos")`,
			minimatic.Expr("If",
				minimatic.Expr("Less", minimatic.Sym("n"), minimatic.Int(0)),
				minimatic.Str("neg"), minimatic.Str("pos"))},
	}
	for _, tc := range cases {
		got := read(t, tc.src)
		if !minimatic.Equal(got, tc.want) {
			t.Fatalf("readElement(%q) = %s, want %s", tc.src, got, tc.want)
		}
	}
}

func Test_Read_Errors(t *testing.T) {
	for _, src := range []string{
		"",
		"Add(1",
		"Add(1,)",
		"1 2",
		`"open`,
		"Add(1; 2)",
		"@x",
	} {
		if _, err := readElement(src); err == nil {
			t.Fatalf("readElement(%q): want error", src)
		}
	}
}

func Test_Read_EvalLine(t *testing.T) {
	s, err := newSession("error")
	if err != nil {
		t.Fatalf("newSession: %v", err)
	}

	out, err := s.evalLine("Plus(2, 3)")
	if err != nil {
		t.Fatalf("evalLine: %v", err)
	}
	if out != "5" {
		t.Fatalf("want 5, got %q", out)
	}

	// Bindings persist across lines.
	if _, err := s.evalLine("Set(x, 4)"); err != nil {
		t.Fatalf("evalLine Set: %v", err)
	}
	out, err = s.evalLine("Times(x, x)")
	if err != nil {
		t.Fatalf("evalLine Times: %v", err)
	}
	if out != "16" {
		t.Fatalf("want 16, got %q", out)
	}

	// Comments and blank lines are silent.
	if out, err := s.evalLine("# note"); err != nil || out != "" {
		t.Fatalf("comment line: %q, %v", out, err)
	}
}
