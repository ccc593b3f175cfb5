// errors.go: the two first-class failure kinds of the evaluation core.
//
// Both are local, recoverable conditions: callers driving top-level
// evaluation catch them and report them as language-level errors, never as
// process-fatal ones. Stuck (partially reduced) expressions are NOT errors:
// they come back as ordinary Elements with Result.Stuck set (see
// evaluator.go) and are distinguishable from failures by type alone.
package minimatic

import "fmt"

// UnboundSymbolError reports that a Symbol could not be resolved where
// resolution was mandatory (eager-path argument evaluation, Context.Get).
type UnboundSymbolError struct {
	Name string
}

func (e *UnboundSymbolError) Error() string {
	return fmt.Sprintf("unbound symbol: %s", e.Name)
}

// EvaluationError reports that a registered eager function or a special
// form could not execute against its evaluated arguments: wrong arity,
// wrong payload kind, or an operation-specific fault such as division by
// zero. Head names the operation that rejected its input.
type EvaluationError struct {
	Head string
	Msg  string
}

func (e *EvaluationError) Error() string {
	if e.Head != "" {
		return fmt.Sprintf("%s: %s", e.Head, e.Msg)
	}
	return e.Msg
}

// EvalErrorf builds an *EvaluationError for the operation named head.
// Builtin implementations use it to surface arity/kind mismatches.
func EvalErrorf(head, format string, args ...any) *EvaluationError {
	return &EvaluationError{Head: head, Msg: fmt.Sprintf(format, args...)}
}
