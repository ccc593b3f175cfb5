// printer.go: canonical textual rendering of Elements.
//
// The form is deterministic and side-effect-free: symbols render as their
// names, literals as their payloads (strings quoted, booleans as True/False,
// null as Null), expressions as Head(child, child, ...). It is a diagnostic
// format for logs, tests and REPL echo, not a guaranteed-parseable syntax.
package minimatic

import (
	"strconv"
	"strings"
)

// FormatElement renders el in the canonical text form.
func FormatElement(el Element) string {
	var b strings.Builder
	writeElement(&b, el)
	return b.String()
}

func writeElement(b *strings.Builder, el Element) {
	switch n := el.(type) {
	case Symbol:
		b.WriteString(n.Name())
	case Literal:
		writeLiteral(b, n)
	case *Expression:
		b.WriteString(n.Head())
		b.WriteByte('(')
		for i := 0; i < n.Len(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			writeElement(b, n.At(i))
		}
		b.WriteByte(')')
	default:
		b.WriteString(el.String())
	}
}

func writeLiteral(b *strings.Builder, l Literal) {
	switch l.Kind() {
	case KindNull:
		b.WriteString("Null")
	case KindBool:
		if v, _ := l.BoolVal(); v {
			b.WriteString("True")
		} else {
			b.WriteString("False")
		}
	case KindInt:
		n, _ := l.IntVal()
		b.WriteString(strconv.FormatInt(n, 10))
	case KindReal:
		f, _ := l.RealVal()
		s := strconv.FormatFloat(f, 'g', -1, 64)
		// Keep reals visually distinct from integers.
		if !strings.ContainsAny(s, ".eE") {
			s += "."
		}
		b.WriteString(s)
	case KindString:
		s, _ := l.StrVal()
		b.WriteString(strconv.Quote(s))
	}
}
