// forms.go
//
// The standard special forms: the lazy half of the extension model. Each
// form receives its call site unevaluated and decides per its own logic
// which children to evaluate and how to touch the Context. They are a
// fixed, explicitly registered enumeration (see NewEvaluator), not an open
// inheritance surface.
//
// Set, Unset and Let are the only operations in this package that mutate a
// Context; the generic dispatch path and all eager functions never do.
package minimatic

// Reserved special-form head names.
const (
	HeadIf    = "If"
	HeadWhile = "While"
	HeadSeq   = "Seq"
	HeadSet   = "Set"
	HeadUnset = "Unset"
	HeadLet   = "Let"
	HeadHold  = "Hold"
)

func registerStandardForms(ev *Evaluator) {
	ev.RegisterForm(HeadIf, FormFunc(evalIf))
	ev.RegisterForm(HeadWhile, FormFunc(evalWhile))
	ev.RegisterForm(HeadSeq, FormFunc(evalSeq))
	ev.RegisterForm(HeadSet, FormFunc(evalSet))
	ev.RegisterForm(HeadUnset, FormFunc(evalUnset))
	ev.RegisterForm(HeadLet, FormFunc(evalLet))
	ev.RegisterForm(HeadHold, FormFunc(evalHold))
}

// ---- constructors ------------------------------------------------------

// IfExpr builds If(cond, then, else).
func IfExpr(cond, then, els Element) *Expression {
	return Expr(HeadIf, cond, then, els)
}

// WhileExpr builds While(cond, body).
func WhileExpr(cond, body Element) *Expression {
	return Expr(HeadWhile, cond, body)
}

// SeqExpr builds Seq(exprs...).
func SeqExpr(exprs ...Element) *Expression {
	return Expr(HeadSeq, exprs...)
}

// SetExpr builds Set(name, value).
func SetExpr(name string, value Element) *Expression {
	return Expr(HeadSet, Sym(name), value)
}

// UnsetExpr builds Unset(name).
func UnsetExpr(name string) *Expression {
	return Expr(HeadUnset, Sym(name))
}

// LetExpr builds Let(name, value, body).
func LetExpr(name string, value, body Element) *Expression {
	return Expr(HeadLet, Sym(name), value, body)
}

// HoldExpr builds Hold(exprs...).
func HoldExpr(exprs ...Element) *Expression {
	return Expr(HeadHold, exprs...)
}

// ---- implementations ---------------------------------------------------

// If(cond, then, else?) evaluates the condition and then exactly one
// branch; the untaken branch is never evaluated. A missing else yields
// Null. A stuck condition leaves the whole form stuck, with the condition
// kept in its reduced shape.
func evalIf(ev *Evaluator, e *Expression, ctx *Context) (Result, error) {
	if e.Len() != 2 && e.Len() != 3 {
		return Result{}, EvalErrorf(HeadIf, "want 2 or 3 arguments, got %d", e.Len())
	}
	cond, err := ev.Reduce(e.At(0), ctx)
	if err != nil {
		return Result{}, err
	}
	if cond.Stuck {
		rest := append([]Element{cond.Elem}, e.Tail()[1:]...)
		return Result{Elem: Expr(HeadIf, rest...), Stuck: true}, nil
	}
	b, ok := truth(cond.Elem)
	if !ok {
		return Result{}, EvalErrorf(HeadIf, "condition is not a Boolean: %s", cond.Elem)
	}
	if b {
		return ev.Reduce(e.At(1), ctx)
	}
	if e.Len() == 3 {
		return ev.Reduce(e.At(2), ctx)
	}
	return Result{Elem: Null}, nil
}

// While(cond, body) re-evaluates cond before every pass and stops on
// Boolean false; yields Null. A stuck condition on the first pass leaves
// the form stuck.
func evalWhile(ev *Evaluator, e *Expression, ctx *Context) (Result, error) {
	if e.Len() != 2 {
		return Result{}, EvalErrorf(HeadWhile, "want 2 arguments, got %d", e.Len())
	}
	for {
		cond, err := ev.Reduce(e.At(0), ctx)
		if err != nil {
			return Result{}, err
		}
		if cond.Stuck {
			return Result{Elem: Expr(HeadWhile, cond.Elem, e.At(1)), Stuck: true}, nil
		}
		b, ok := truth(cond.Elem)
		if !ok {
			return Result{}, EvalErrorf(HeadWhile, "condition is not a Boolean: %s", cond.Elem)
		}
		if !b {
			return Result{Elem: Null}, nil
		}
		if _, err := ev.Reduce(e.At(1), ctx); err != nil {
			return Result{}, err
		}
	}
}

// Seq(e1, ..., en) evaluates left to right and yields the last result
// (Null when empty).
func evalSeq(ev *Evaluator, e *Expression, ctx *Context) (Result, error) {
	last := Result{Elem: Null}
	for i := 0; i < e.Len(); i++ {
		r, err := ev.Reduce(e.At(i), ctx)
		if err != nil {
			return Result{}, err
		}
		last = r
	}
	return last, nil
}

// Set(name, value) evaluates value, binds it to name in the current
// Context, and yields the bound value.
func evalSet(ev *Evaluator, e *Expression, ctx *Context) (Result, error) {
	name, err := formSymbol(HeadSet, e, 2)
	if err != nil {
		return Result{}, err
	}
	v, err := ev.Reduce(e.At(1), ctx)
	if err != nil {
		return Result{}, err
	}
	ctx.Set(name, v.Elem)
	return v, nil
}

// Unset(name) removes the binding for name and yields Null.
func evalUnset(ev *Evaluator, e *Expression, ctx *Context) (Result, error) {
	name, err := formSymbol(HeadUnset, e, 1)
	if err != nil {
		return Result{}, err
	}
	ctx.Unset(name)
	return Result{Elem: Null}, nil
}

// Let(name, value, body) evaluates value in the current Context, then
// evaluates body in an isolated Copy carrying the binding. The caller's
// Context is never touched.
func evalLet(ev *Evaluator, e *Expression, ctx *Context) (Result, error) {
	name, err := formSymbol(HeadLet, e, 3)
	if err != nil {
		return Result{}, err
	}
	v, err := ev.Reduce(e.At(1), ctx)
	if err != nil {
		return Result{}, err
	}
	scope := ctx.Copy()
	scope.Set(name, v.Elem)
	return ev.Reduce(e.At(2), scope)
}

// Hold(exprs...) yields its expression unchanged; evaluation stops here.
func evalHold(_ *Evaluator, e *Expression, _ *Context) (Result, error) {
	return Result{Elem: e}, nil
}

// ---- helpers -----------------------------------------------------------

// truth extracts a Boolean literal payload.
func truth(el Element) (bool, bool) {
	l, ok := el.(Literal)
	if !ok {
		return false, false
	}
	return l.BoolVal()
}

// formSymbol checks the form's arity and extracts the leading Symbol name.
func formSymbol(head string, e *Expression, arity int) (string, error) {
	if e.Len() != arity {
		return "", EvalErrorf(head, "want %d arguments, got %d", arity, e.Len())
	}
	s, ok := e.At(0).(Symbol)
	if !ok {
		return "", EvalErrorf(head, "first argument must be a Symbol, got %s", e.At(0))
	}
	return s.Name(), nil
}
