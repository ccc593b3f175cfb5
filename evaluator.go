// evaluator.go
//
// The recursive reduction algorithm. Given an Element and a Context, the
// Evaluator produces a normal-form Element by dispatching on the head of
// each Expression it meets:
//
//  1. Head names a registered special form (lazy path): control transfers
//     entirely to that Form. The generic algorithm never touches the tail;
//     the Form decides which children to evaluate, in what order, and
//     whether to read or mutate the Context.
//  2. Head names an eager function in the Context: every tail element is
//     evaluated strictly left to right against the same Context, then the
//     function is invoked on the evaluated argument list. The order is
//     observable when special forms nested inside arguments mutate shared
//     state, so it must never be reordered.
//  3. Head resolves to nothing: the expression "gets stuck". The children
//     are reduced best-effort and the partially reduced Expression comes
//     back as a valid, non-error result.
//
// The special-form registry is closed and explicit: a map from head name to
// Form, populated by NewEvaluator and extended only through RegisterForm.
// There is no reflection and no subclass discovery.
//
// Recursion is direct, on the calling goroutine, with no suspension points
// and no depth cap beyond the host stack; depth equals tree depth.
package minimatic

import "errors"

// Result is the explicit outcome variant of a reduction. Stuck marks a
// partially reduced Expression: a valid steady state meaning "not enough
// information to reduce further", not a failure.
type Result struct {
	Elem  Element
	Stuck bool
}

// Form is a lazy special form: an operation that receives its call site
// unevaluated and drives evaluation itself through the Evaluator it is
// handed. Forms are the only code allowed to mutate a Context during
// evaluation.
type Form interface {
	Eval(ev *Evaluator, expr *Expression, ctx *Context) (Result, error)
}

// FormFunc adapts a plain function to the Form interface.
type FormFunc func(ev *Evaluator, expr *Expression, ctx *Context) (Result, error)

func (f FormFunc) Eval(ev *Evaluator, expr *Expression, ctx *Context) (Result, error) {
	return f(ev, expr, ctx)
}

// SymbolPolicy controls what happens when an unbound symbol is forced
// during eager-path argument evaluation.
type SymbolPolicy int

const (
	// SymbolError raises *UnboundSymbolError (the default).
	SymbolError SymbolPolicy = iota
	// SymbolKeep leaves the symbol in place; the argument, and therefore
	// the surrounding call, stays stuck.
	SymbolKeep
)

// Evaluator reduces Elements to normal form under a Context it borrows per
// call. An Evaluator is safe for concurrent use only if its registry is no
// longer being mutated and each call gets its own Context.
type Evaluator struct {
	forms map[string]Form

	// Policy selects the unbound-symbol behavior on the eager path.
	// The resolution policy for unresolved heads is not configurable:
	// those always produce stuck terms.
	Policy SymbolPolicy
}

// stdEvaluator backs Expression.Evaluate. It carries the standard forms
// and the default policy.
var stdEvaluator = NewEvaluator()

// NewEvaluator returns an Evaluator with the standard special forms
// registered (If, While, Seq, Set, Unset, Let, Hold) and SymbolError
// policy.
func NewEvaluator() *Evaluator {
	ev := &Evaluator{forms: make(map[string]Form)}
	registerStandardForms(ev)
	return ev
}

// RegisterForm installs f as the special form named name, overwriting any
// prior registration. Registration must finish before the Evaluator is
// shared across goroutines.
func (ev *Evaluator) RegisterForm(name string, f Form) {
	ev.forms[name] = f
}

// Eval reduces el under ctx and returns the normal-form Element. A stuck
// expression is returned as-is; use Reduce when the caller needs to tell
// stuck terms from fully reduced ones.
func (ev *Evaluator) Eval(el Element, ctx *Context) (Element, error) {
	r, err := ev.Reduce(el, ctx)
	if err != nil {
		return nil, err
	}
	return r.Elem, nil
}

// Reduce is Eval with an explicit outcome variant.
func (ev *Evaluator) Reduce(el Element, ctx *Context) (Result, error) {
	switch n := el.(type) {
	case Literal:
		return Result{Elem: n}, nil

	case Symbol:
		resolved, err := n.Evaluate(ctx)
		if err != nil {
			var unbound *UnboundSymbolError
			if ev.Policy == SymbolKeep && errors.As(err, &unbound) {
				return Result{Elem: n, Stuck: true}, nil
			}
			return Result{}, err
		}
		return Result{Elem: resolved}, nil

	case *Expression:
		return ev.reduceExpr(n, ctx)

	default:
		// Foreign Element implementations define their own reduction.
		out, err := el.Evaluate(ctx)
		if err != nil {
			return Result{}, err
		}
		return Result{Elem: out}, nil
	}
}

func (ev *Evaluator) reduceExpr(e *Expression, ctx *Context) (Result, error) {
	// Lazy path: the form owns the tail from here on.
	if form, ok := ev.forms[e.head]; ok {
		return form.Eval(ev, e, ctx)
	}

	// Eager path: strict left-to-right argument evaluation, then apply.
	if fn, ok := ctx.Function(e.head); ok {
		args := make([]Element, len(e.tail))
		anyStuck := false
		for i, child := range e.tail {
			r, err := ev.Reduce(child, ctx)
			if err != nil {
				return Result{}, err
			}
			args[i] = r.Elem
			if r.Stuck {
				anyStuck = true
			}
		}
		if anyStuck {
			// A stuck argument means the call cannot run; keep the
			// reduced portions and stay stuck.
			return Result{Elem: Expr(e.head, args...), Stuck: true}, nil
		}
		out, err := fn(args)
		if err != nil {
			var evalErr *EvaluationError
			if errors.As(err, &evalErr) {
				return Result{}, err
			}
			// Unclassified function failure: degrade to a stuck term
			// carrying the evaluated arguments.
			return Result{Elem: Expr(e.head, args...), Stuck: true}, nil
		}
		return Result{Elem: out}, nil
	}

	// Unresolved head: best-effort reduction of the children. Unbound
	// symbols among them are kept in place unevaluated; other failures
	// still propagate.
	args := make([]Element, len(e.tail))
	for i, child := range e.tail {
		r, err := ev.Reduce(child, ctx)
		if err != nil {
			var unbound *UnboundSymbolError
			if errors.As(err, &unbound) {
				args[i] = child
				continue
			}
			return Result{}, err
		}
		args[i] = r.Elem
	}
	return Result{Elem: Expr(e.head, args...), Stuck: true}, nil
}
