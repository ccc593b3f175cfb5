// element.go
//
// Immutable symbolic expression trees.
//
// OVERVIEW
// ========
// This file defines the data model of the language: the Element interface and
// its three concrete variants.
//
//   - Symbol     : a bare name. Evaluating it looks the name up in a Context.
//   - Literal    : one opaque payload (integer, real, string, boolean, null).
//     Literals are fixed points of evaluation.
//   - Expression : an n-ary node: a head naming an operator plus an ordered
//     tail of child Elements. Evaluation delegates to the Evaluator's
//     dispatch (see evaluator.go).
//
// Every Element is immutable after construction. There are no setters; every
// transformation (see structural.go) returns a new instance. Because of that,
// Elements are safe to share across goroutines, cache, and use as map keys
// via their structural hash.
//
// EQUALITY & HASHING
// ------------------
// Equality is structural, never identity-based. Two Symbols are equal iff
// their names are equal; two Literals are equal iff kind and payload are
// equal; two Expressions are equal iff their heads match and their tails are
// element-wise equal (order matters: Pair(x, y) != Pair(y, x)).
//
// Hash is a 64-bit FNV-1a digest consistent with Equal: a.Equal(b) implies
// a.Hash() == b.Hash(). Expression hashes are computed bottom-up at
// construction time and cached, so hashing a deep tree is O(tail) per node.
//
// RENDERING
// ---------
// String() produces the canonical diagnostic form, e.g. `Add(x, 10)`. It is
// deterministic and side-effect-free but not guaranteed to be parseable.
package minimatic

import "math"

// Element is any node in a symbolic tree: Symbol, Literal, or Expression.
//
// Implementations must be immutable and must keep Equal and Hash consistent:
// Equal(a, b) implies a.Hash() == b.Hash().
type Element interface {
	// Head is the leading identifier: the operator name for an Expression,
	// a type tag ("Integer", "String", ...) for a Literal, and "Symbol"
	// for a Symbol.
	Head() string

	// Tail returns the ordered children. Symbols and Literals have none.
	// The returned slice is a copy; mutating it never affects the Element.
	Tail() []Element

	// Evaluate reduces the Element under ctx. Literals return themselves,
	// Symbols resolve their name, Expressions go through the standard
	// Evaluator's dispatch. The Context is borrowed, never owned.
	Evaluate(ctx *Context) (Element, error)

	// Equal reports deterministic structural equality with other.
	Equal(other Element) bool

	// Hash returns the stable structural hash.
	Hash() uint64

	// String renders the canonical text form.
	String() string
}

// ---- FNV-1a helpers ----------------------------------------------------

const (
	fnvOffset uint64 = 14695981039346656037
	fnvPrime  uint64 = 1099511628211
)

func fnvByte(h uint64, b byte) uint64 {
	return (h ^ uint64(b)) * fnvPrime
}

func fnvString(h uint64, s string) uint64 {
	for i := 0; i < len(s); i++ {
		h = fnvByte(h, s[i])
	}
	// Terminator so "ab"+"c" and "a"+"bc" cannot collide across fields.
	return fnvByte(h, 0)
}

func fnvUint64(h uint64, v uint64) uint64 {
	for i := 0; i < 8; i++ {
		h = fnvByte(h, byte(v>>(8*i)))
	}
	return h
}

// ---- Symbol ------------------------------------------------------------

// Symbol is a name, not a cell: it carries no value of its own. Evaluating a
// Symbol resolves the name against the Context.
type Symbol struct {
	name string
}

// Sym returns the Symbol named name.
func Sym(name string) Symbol { return Symbol{name: name} }

// Name returns the symbol's identifier string.
func (s Symbol) Name() string { return s.name }

func (s Symbol) Head() string    { return "Symbol" }
func (s Symbol) Tail() []Element { return nil }

// Evaluate resolves the symbol:
//   - bound to an Element  → that Element (no automatic re-evaluation),
//   - registered as an eager function → the symbol itself (operator names
//     are fixed points),
//   - otherwise → *UnboundSymbolError.
func (s Symbol) Evaluate(ctx *Context) (Element, error) {
	if v, ok := ctx.lookupVar(s.name); ok {
		return v, nil
	}
	if _, ok := ctx.Function(s.name); ok {
		return s, nil
	}
	return nil, &UnboundSymbolError{Name: s.name}
}

func (s Symbol) Equal(other Element) bool {
	o, ok := other.(Symbol)
	return ok && o.name == s.name
}

func (s Symbol) Hash() uint64 {
	return fnvString(fnvString(fnvOffset, "sym"), s.name)
}

func (s Symbol) String() string { return s.name }

// ---- Literal -----------------------------------------------------------

// LitKind enumerates the payload kinds a Literal may carry.
type LitKind int

const (
	KindNull   LitKind = iota // no payload
	KindBool                  // bool
	KindInt                   // int64
	KindReal                  // float64
	KindString                // string
)

// Literal wraps one concrete, opaque payload value. Its Head is a type tag
// derived from the payload kind; its Tail is empty; it evaluates to itself.
type Literal struct {
	kind LitKind
	data any
}

// Null is the null Literal (kind KindNull, no payload).
var Null = Literal{kind: KindNull}

// Primitive constructors.
func Int(n int64) Literal    { return Literal{kind: KindInt, data: n} }
func Real(f float64) Literal { return Literal{kind: KindReal, data: f} }
func Str(s string) Literal   { return Literal{kind: KindString, data: s} }
func Bool(b bool) Literal    { return Literal{kind: KindBool, data: b} }

// Kind returns the payload kind.
func (l Literal) Kind() LitKind { return l.kind }

// Value returns the wrapped payload (nil for Null). The payload's dynamic
// type follows Kind: int64, float64, string, or bool.
func (l Literal) Value() any { return l.data }

// IntVal returns the integer payload; ok is false for non-integer literals.
func (l Literal) IntVal() (int64, bool) {
	n, ok := l.data.(int64)
	return n, ok
}

// RealVal returns the payload as float64, widening integers; ok is false
// for non-numeric literals.
func (l Literal) RealVal() (float64, bool) {
	switch v := l.data.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// BoolVal returns the boolean payload; ok is false for non-boolean literals.
func (l Literal) BoolVal() (bool, bool) {
	b, ok := l.data.(bool)
	return b, ok
}

// StrVal returns the string payload; ok is false for non-string literals.
func (l Literal) StrVal() (string, bool) {
	s, ok := l.data.(string)
	return s, ok
}

// Head maps the payload kind to its tag symbol name.
func (l Literal) Head() string {
	switch l.kind {
	case KindBool:
		return "Boolean"
	case KindInt:
		return "Integer"
	case KindReal:
		return "Real"
	case KindString:
		return "String"
	default:
		return "Null"
	}
}

func (l Literal) Tail() []Element { return nil }

// Evaluate returns the literal unchanged: literals are fixed points.
func (l Literal) Evaluate(_ *Context) (Element, error) { return l, nil }

func (l Literal) Equal(other Element) bool {
	o, ok := other.(Literal)
	if !ok || o.kind != l.kind {
		return false
	}
	switch l.kind {
	case KindNull:
		return true
	case KindBool:
		return l.data.(bool) == o.data.(bool)
	case KindInt:
		return l.data.(int64) == o.data.(int64)
	case KindReal:
		return l.data.(float64) == o.data.(float64)
	case KindString:
		return l.data.(string) == o.data.(string)
	}
	return false
}

func (l Literal) Hash() uint64 {
	h := fnvByte(fnvString(fnvOffset, "lit"), byte(l.kind))
	switch l.kind {
	case KindBool:
		if l.data.(bool) {
			return fnvByte(h, 1)
		}
		return fnvByte(h, 0)
	case KindInt:
		return fnvUint64(h, uint64(l.data.(int64)))
	case KindReal:
		return fnvUint64(h, math.Float64bits(l.data.(float64)))
	case KindString:
		return fnvString(h, l.data.(string))
	}
	return h
}

func (l Literal) String() string { return FormatElement(l) }

// ---- Expression --------------------------------------------------------

// Expression is an n-ary node: a head naming an operator/function applied to
// an ordered tail of child Elements. Trees are built bottom-up and can never
// reference an ancestor, so depth is always finite.
type Expression struct {
	head string
	tail []Element
	hash uint64 // computed once at construction
}

// Expr constructs an Expression with the given head and children. The tail
// is copied, so later mutation of the argument slice has no effect.
func Expr(head string, tail ...Element) *Expression {
	t := make([]Element, len(tail))
	copy(t, tail)

	h := fnvString(fnvString(fnvOffset, "expr"), head)
	for _, child := range t {
		h = fnvUint64(h, child.Hash())
	}
	return &Expression{head: head, tail: t, hash: h}
}

func (e *Expression) Head() string { return e.head }

// Tail returns a copy of the ordered children.
func (e *Expression) Tail() []Element {
	out := make([]Element, len(e.tail))
	copy(out, e.tail)
	return out
}

// Len returns the number of children.
func (e *Expression) Len() int { return len(e.tail) }

// At returns the child at position i.
func (e *Expression) At(i int) Element { return e.tail[i] }

// Evaluate reduces the expression through the standard Evaluator's dispatch.
// Hosts that register their own special forms should construct an Evaluator
// and call its Eval/Reduce directly.
func (e *Expression) Evaluate(ctx *Context) (Element, error) {
	return stdEvaluator.Eval(e, ctx)
}

// Equal reports structural equality: equal heads and element-wise equal
// tails of equal length. Tail order matters.
func (e *Expression) Equal(other Element) bool {
	o, ok := other.(*Expression)
	if !ok || o.head != e.head || len(o.tail) != len(e.tail) {
		return false
	}
	for i, child := range e.tail {
		if !child.Equal(o.tail[i]) {
			return false
		}
	}
	return true
}

func (e *Expression) Hash() uint64 { return e.hash }

func (e *Expression) String() string { return FormatElement(e) }

// Equal reports structural equality between two arbitrary Elements,
// tolerating nils (two nils are equal).
func Equal(a, b Element) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}
