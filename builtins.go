// builtins.go
//
// Standard eager builtins. The core engine treats every one of these as an
// opaque registered function: pure, data-in/data-out, no Context access.
// Hosts opt in per group, or install everything with RegisterStandard.
//
// Numeric operations follow the original numeric tower: a computation stays
// Integer while every operand is an Integer and widens to Real otherwise.
package minimatic

// RegisterStandard installs every builtin group into ctx.
func RegisterStandard(ctx *Context) {
	RegisterArithmetic(ctx)
	RegisterComparison(ctx)
	RegisterLogic(ctx)
	RegisterListOps(ctx)
}

// ---- arithmetic ----------------------------------------------------------

// RegisterArithmetic installs Plus, Subtract, Times, Divide and Mod.
func RegisterArithmetic(ctx *Context) {
	ctx.Register("Plus", func(args []Element) (Element, error) {
		return foldNumeric("Plus", args, 1, func(a, b int64) int64 { return a + b },
			func(a, b float64) float64 { return a + b })
	})
	ctx.Register("Subtract", func(args []Element) (Element, error) {
		return foldNumeric("Subtract", args, 2, func(a, b int64) int64 { return a - b },
			func(a, b float64) float64 { return a - b })
	})
	ctx.Register("Times", func(args []Element) (Element, error) {
		return foldNumeric("Times", args, 1, func(a, b int64) int64 { return a * b },
			func(a, b float64) float64 { return a * b })
	})
	ctx.Register("Divide", func(args []Element) (Element, error) {
		a, b, err := numericPair("Divide", args)
		if err != nil {
			return nil, err
		}
		if bi, ok := b.IntVal(); ok {
			if bi == 0 {
				return nil, EvalErrorf("Divide", "division by zero")
			}
			if ai, ok := a.IntVal(); ok {
				if ai%bi == 0 {
					return Int(ai / bi), nil
				}
				return Real(float64(ai) / float64(bi)), nil
			}
		}
		af, _ := a.RealVal()
		bf, _ := b.RealVal()
		if bf == 0 {
			return nil, EvalErrorf("Divide", "division by zero")
		}
		return Real(af / bf), nil
	})
	ctx.Register("Mod", func(args []Element) (Element, error) {
		a, b, err := numericPair("Mod", args)
		if err != nil {
			return nil, err
		}
		ai, aok := a.IntVal()
		bi, bok := b.IntVal()
		if !aok || !bok {
			return nil, EvalErrorf("Mod", "both arguments must be Integers")
		}
		if bi == 0 {
			return nil, EvalErrorf("Mod", "division by zero")
		}
		return Int(ai % bi), nil
	})
}

// ---- comparison -----------------------------------------------------------

// RegisterComparison installs Equal (structural, over any Elements) and the
// numeric orderings Less and Greater.
func RegisterComparison(ctx *Context) {
	ctx.Register("Equal", func(args []Element) (Element, error) {
		if len(args) != 2 {
			return nil, EvalErrorf("Equal", "want 2 arguments, got %d", len(args))
		}
		return Bool(Equal(args[0], args[1])), nil
	})
	ctx.Register("Less", func(args []Element) (Element, error) {
		a, b, err := numericPair("Less", args)
		if err != nil {
			return nil, err
		}
		af, _ := a.RealVal()
		bf, _ := b.RealVal()
		return Bool(af < bf), nil
	})
	ctx.Register("Greater", func(args []Element) (Element, error) {
		a, b, err := numericPair("Greater", args)
		if err != nil {
			return nil, err
		}
		af, _ := a.RealVal()
		bf, _ := b.RealVal()
		return Bool(af > bf), nil
	})
}

// ---- logic ----------------------------------------------------------------

// RegisterLogic installs And, Or and Not over Boolean literals. And and Or
// are variadic; being eager builtins they do not short-circuit evaluation
// of their arguments (use If for control flow).
func RegisterLogic(ctx *Context) {
	ctx.Register("And", func(args []Element) (Element, error) {
		for _, a := range args {
			b, err := boolArg("And", a)
			if err != nil {
				return nil, err
			}
			if !b {
				return Bool(false), nil
			}
		}
		return Bool(true), nil
	})
	ctx.Register("Or", func(args []Element) (Element, error) {
		for _, a := range args {
			b, err := boolArg("Or", a)
			if err != nil {
				return nil, err
			}
			if b {
				return Bool(true), nil
			}
		}
		return Bool(false), nil
	})
	ctx.Register("Not", func(args []Element) (Element, error) {
		if len(args) != 1 {
			return nil, EvalErrorf("Not", "want 1 argument, got %d", len(args))
		}
		b, err := boolArg("Not", args[0])
		if err != nil {
			return nil, err
		}
		return Bool(!b), nil
	})
}

// ---- list operations --------------------------------------------------------

// RegisterListOps installs the List constructor plus Length, First, Rest,
// AppendTo and Reverse over List(...) expressions.
func RegisterListOps(ctx *Context) {
	// List is an identity constructor. Binding it keeps List(...) terms
	// from getting stuck on the unresolved-head path, so a list whose
	// children all reduce is a value.
	ctx.Register(ListHead, func(args []Element) (Element, error) {
		return ListOf(args...), nil
	})
	ctx.Register("Length", func(args []Element) (Element, error) {
		l, err := listArg("Length", args, 1)
		if err != nil {
			return nil, err
		}
		return Int(int64(l.Len())), nil
	})
	ctx.Register("First", func(args []Element) (Element, error) {
		l, err := listArg("First", args, 1)
		if err != nil {
			return nil, err
		}
		if l.Len() == 0 {
			return nil, EvalErrorf("First", "empty list")
		}
		return l.At(0), nil
	})
	ctx.Register("Rest", func(args []Element) (Element, error) {
		l, err := listArg("Rest", args, 1)
		if err != nil {
			return nil, err
		}
		if l.Len() == 0 {
			return nil, EvalErrorf("Rest", "empty list")
		}
		return ListOf(l.Tail()[1:]...), nil
	})
	ctx.Register("AppendTo", func(args []Element) (Element, error) {
		if len(args) != 2 {
			return nil, EvalErrorf("AppendTo", "want 2 arguments, got %d", len(args))
		}
		l, err := listArg("AppendTo", args[:1], 1)
		if err != nil {
			return nil, err
		}
		return l.Append(args[1]), nil
	})
	ctx.Register("Reverse", func(args []Element) (Element, error) {
		l, err := listArg("Reverse", args, 1)
		if err != nil {
			return nil, err
		}
		tail := l.Tail()
		for i, j := 0, len(tail)-1; i < j; i, j = i+1, j-1 {
			tail[i], tail[j] = tail[j], tail[i]
		}
		return ListOf(tail...), nil
	})
}

// ---- helpers ----------------------------------------------------------------

func numericArg(head string, el Element) (Literal, error) {
	l, ok := el.(Literal)
	if !ok || (l.Kind() != KindInt && l.Kind() != KindReal) {
		return Literal{}, EvalErrorf(head, "not a numeric literal: %s", el)
	}
	return l, nil
}

func numericPair(head string, args []Element) (Literal, Literal, error) {
	if len(args) != 2 {
		return Literal{}, Literal{}, EvalErrorf(head, "want 2 arguments, got %d", len(args))
	}
	a, err := numericArg(head, args[0])
	if err != nil {
		return Literal{}, Literal{}, err
	}
	b, err := numericArg(head, args[1])
	if err != nil {
		return Literal{}, Literal{}, err
	}
	return a, b, nil
}

func boolArg(head string, el Element) (bool, error) {
	l, ok := el.(Literal)
	if !ok {
		return false, EvalErrorf(head, "not a Boolean literal: %s", el)
	}
	b, ok := l.BoolVal()
	if !ok {
		return false, EvalErrorf(head, "not a Boolean literal: %s", el)
	}
	return b, nil
}

func listArg(head string, args []Element, arity int) (*Expression, error) {
	if len(args) != arity {
		return nil, EvalErrorf(head, "want %d argument(s), got %d", arity, len(args))
	}
	e, ok := args[0].(*Expression)
	if !ok || e.Head() != ListHead {
		return nil, EvalErrorf(head, "not a List: %s", args[0])
	}
	return e, nil
}

// foldNumeric reduces args with the int/real operation pair, widening to
// Real as soon as any operand is Real. minArgs guards arity.
func foldNumeric(head string, args []Element, minArgs int,
	iop func(a, b int64) int64, fop func(a, b float64) float64) (Element, error) {

	if len(args) < minArgs {
		return nil, EvalErrorf(head, "want at least %d argument(s), got %d", minArgs, len(args))
	}
	first, err := numericArg(head, args[0])
	if err != nil {
		return nil, err
	}
	exact := first.Kind() == KindInt
	accI, _ := first.IntVal()
	accF, _ := first.RealVal()

	for _, raw := range args[1:] {
		l, err := numericArg(head, raw)
		if err != nil {
			return nil, err
		}
		if exact && l.Kind() == KindInt {
			n, _ := l.IntVal()
			accI = iop(accI, n)
			accF = float64(accI)
			continue
		}
		if exact {
			// Widen the exact accumulator once.
			accF = float64(accI)
			exact = false
		}
		f, _ := l.RealVal()
		accF = fop(accF, f)
	}
	if exact {
		return Int(accI), nil
	}
	return Real(accF), nil
}
