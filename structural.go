// structural.go: purely structural tree transformations. None of these
// evaluate anything, none can fail on well-typed input, and none mutate the
// receiver.
package minimatic

// ListHead is the reserved head of the language's native ordered-collection
// literal (see ListOf).
const ListHead = "List"

// Map returns a new Expression with the same head and a tail obtained by
// applying transform to each child independently.
func (e *Expression) Map(transform func(Element) Element) *Expression {
	out := make([]Element, len(e.tail))
	for i, child := range e.tail {
		out[i] = transform(child)
	}
	return Expr(e.head, out...)
}

// MapIndexed is Map with the child's position passed alongside it.
func (e *Expression) MapIndexed(transform func(int, Element) Element) *Expression {
	out := make([]Element, len(e.tail))
	for i, child := range e.tail {
		out[i] = transform(i, child)
	}
	return Expr(e.head, out...)
}

// Replace returns a new Expression identical to the receiver except for the
// explicitly supplied fields: an empty head keeps the receiver's head, a nil
// tail keeps the receiver's tail (a non-nil empty tail clears it).
func (e *Expression) Replace(head string, tail []Element) *Expression {
	if head == "" {
		head = e.head
	}
	if tail == nil {
		tail = e.tail
	}
	return Expr(head, tail...)
}

// WithHead returns a new Expression with head replaced.
func (e *Expression) WithHead(head string) *Expression {
	return Expr(head, e.tail...)
}

// WithTail returns a new Expression with the tail replaced.
func (e *Expression) WithTail(tail ...Element) *Expression {
	return Expr(e.head, tail...)
}

// Append returns a new Expression with elems added after the current tail.
func (e *Expression) Append(elems ...Element) *Expression {
	out := make([]Element, 0, len(e.tail)+len(elems))
	out = append(out, e.tail...)
	out = append(out, elems...)
	return Expr(e.head, out...)
}

// Prepend returns a new Expression with elems added before the current tail.
func (e *Expression) Prepend(elems ...Element) *Expression {
	out := make([]Element, 0, len(e.tail)+len(elems))
	out = append(out, elems...)
	out = append(out, e.tail...)
	return Expr(e.head, out...)
}

// ListOf builds the canonical sequence Expression List(elements...).
func ListOf(elements ...Element) *Expression {
	return Expr(ListHead, elements...)
}

// FromFunction builds Expression(head, args...). It is identical to Expr
// and exists so programmatically generated trees read as calls.
func FromFunction(head string, args ...Element) *Expression {
	return Expr(head, args...)
}
