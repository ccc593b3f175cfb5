package minimatic

import (
	"errors"
	"testing"
)

// reduceOK reduces e against a fresh standard setup and asserts the result.
func reduceOK(t *testing.T, e Element, want Element) {
	t.Helper()
	ev, ctx := newStdEval()
	r := mustReduce(t, ev, e, ctx)
	if r.Stuck {
		t.Fatalf("%s: unexpectedly stuck at %s", e, r.Elem)
	}
	wantEqual(t, r.Elem, want)
}

// reduceErr reduces e and asserts an *EvaluationError carrying head.
func reduceErr(t *testing.T, e Element, head string) {
	t.Helper()
	ev, ctx := newStdEval()
	_, err := ev.Reduce(e, ctx)
	var evalErr *EvaluationError
	if !errors.As(err, &evalErr) {
		t.Fatalf("%s: want *EvaluationError, got %v", e, err)
	}
	if evalErr.Head != head {
		t.Fatalf("%s: want error from %s, got %s", e, head, evalErr.Head)
	}
}

func Test_Builtins_Arithmetic(t *testing.T) {
	cases := []struct {
		name string
		in   Element
		want Element
	}{
		{"plus ints", Expr("Plus", Int(1), Int(2), Int(3)), Int(6)},
		{"plus single", Expr("Plus", Int(7)), Int(7)},
		{"plus widens", Expr("Plus", Int(1), Real(0.5)), Real(1.5)},
		{"plus reals", Expr("Plus", Real(0.25), Real(0.25)), Real(0.5)},
		{"subtract", Expr("Subtract", Int(10), Int(3)), Int(7)},
		{"subtract widens", Expr("Subtract", Real(1.5), Int(1)), Real(0.5)},
		{"times", Expr("Times", Int(2), Int(3), Int(4)), Int(24)},
		{"divide exact", Expr("Divide", Int(6), Int(3)), Int(2)},
		{"divide inexact", Expr("Divide", Int(7), Int(2)), Real(3.5)},
		{"divide reals", Expr("Divide", Real(1), Real(4)), Real(0.25)},
		{"mod", Expr("Mod", Int(7), Int(3)), Int(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reduceOK(t, tc.in, tc.want)
		})
	}
}

func Test_Builtins_ArithmeticErrors(t *testing.T) {
	reduceErr(t, Expr("Divide", Int(1), Int(0)), "Divide")
	reduceErr(t, Expr("Divide", Real(1), Real(0)), "Divide")
	reduceErr(t, Expr("Mod", Int(1), Int(0)), "Mod")
	reduceErr(t, Expr("Mod", Real(1), Int(2)), "Mod")
	reduceErr(t, Expr("Plus", Int(1), Str("two")), "Plus")
	reduceErr(t, Expr("Subtract", Int(1)), "Subtract")
}

func Test_Builtins_Comparison(t *testing.T) {
	cases := []struct {
		name string
		in   Element
		want Element
	}{
		{"equal ints", Expr("Equal", Int(3), Expr("Plus", Int(1), Int(2))), Bool(true)},
		{"equal structural", Expr("Equal", HoldExpr(Sym("x")), HoldExpr(Sym("x"))), Bool(true)},
		{"equal kinds differ", Expr("Equal", Int(1), Real(1)), Bool(false)},
		{"less", Expr("Less", Int(1), Int(2)), Bool(true)},
		{"less mixed", Expr("Less", Real(1.5), Int(2)), Bool(true)},
		{"greater", Expr("Greater", Int(1), Int(2)), Bool(false)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reduceOK(t, tc.in, tc.want)
		})
	}
	reduceErr(t, Expr("Less", Str("a"), Int(1)), "Less")
}

func Test_Builtins_Logic(t *testing.T) {
	reduceOK(t, Expr("And", Bool(true), Bool(true), Bool(false)), Bool(false))
	reduceOK(t, Expr("And"), Bool(true))
	reduceOK(t, Expr("Or", Bool(false), Bool(true)), Bool(true))
	reduceOK(t, Expr("Or"), Bool(false))
	reduceOK(t, Expr("Not", Bool(false)), Bool(true))

	reduceErr(t, Expr("Not", Int(1)), "Not")
	reduceErr(t, Expr("And", Bool(true), Int(1)), "And")
}

func Test_Builtins_ListOps(t *testing.T) {
	nums := ListOf(Int(1), Int(2), Int(3))

	reduceOK(t, Expr("Length", nums), Int(3))
	reduceOK(t, Expr("Length", ListOf()), Int(0))
	reduceOK(t, Expr("First", nums), Int(1))
	reduceOK(t, Expr("Rest", nums), ListOf(Int(2), Int(3)))
	reduceOK(t, Expr("AppendTo", nums, Int(4)), ListOf(Int(1), Int(2), Int(3), Int(4)))
	reduceOK(t, Expr("Reverse", nums), ListOf(Int(3), Int(2), Int(1)))

	reduceErr(t, Expr("First", ListOf()), "First")
	reduceErr(t, Expr("Rest", ListOf()), "Rest")
	reduceErr(t, Expr("Length", Int(1)), "Length")
}

func Test_Builtins_ListIsAValue(t *testing.T) {
	// The List constructor is bound, so list terms reduce to values with
	// their children evaluated instead of getting stuck.
	reduceOK(t,
		ListOf(Expr("Plus", Int(1), Int(1)), Int(2)),
		ListOf(Int(2), Int(2)))
	reduceOK(t,
		Expr("First", ListOf(Expr("Plus", Int(1), Int(1)), Int(5))),
		Int(2))
}
