// read.go: a minimal front-end reader turning Head(arg, ...) notation into
// Element trees. The core package defines no syntax; this reader exists only
// so the command line has a way to hand trees to the engine, playing the
// "parser" collaborator role.
//
// Grammar (whitespace-insensitive):
//
//	element := number | string | ident | ident '(' [element {',' element}] ')'
//
// Idents followed by '(' become Expression heads; bare True/False/Null read
// as literals; every other bare ident reads as a Symbol.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	minimatic "github.com/gabrielebaez/minimatic"
)

type reader struct {
	src string
	pos int
}

// readElement parses a single element from src, requiring the whole input
// to be consumed.
func readElement(src string) (minimatic.Element, error) {
	r := &reader{src: src}
	el, err := r.element()
	if err != nil {
		return nil, err
	}
	r.skipSpace()
	if r.pos != len(r.src) {
		return nil, r.errf("trailing input")
	}
	return el, nil
}

func (r *reader) errf(format string, args ...any) error {
	return fmt.Errorf("read error at offset %d: %s", r.pos, fmt.Sprintf(format, args...))
}

func (r *reader) skipSpace() {
	for r.pos < len(r.src) && unicode.IsSpace(rune(r.src[r.pos])) {
		r.pos++
	}
}

func (r *reader) peek() byte {
	if r.pos >= len(r.src) {
		return 0
	}
	return r.src[r.pos]
}

func (r *reader) element() (minimatic.Element, error) {
	r.skipSpace()
	c := r.peek()
	switch {
	case c == 0:
		return nil, r.errf("unexpected end of input")
	case c == '"':
		return r.string()
	case c == '-' || c == '+' || (c >= '0' && c <= '9'):
		return r.number()
	case isIdentStart(c):
		return r.identOrCall()
	default:
		return nil, r.errf("unexpected character %q", c)
	}
}

func (r *reader) string() (minimatic.Element, error) {
	start := r.pos
	r.pos++ // opening quote
	for r.pos < len(r.src) {
		switch r.src[r.pos] {
		case '\\':
			r.pos += 2
		case '"':
			r.pos++
			s, err := strconv.Unquote(r.src[start:r.pos])
			if err != nil {
				return nil, r.errf("bad string literal: %v", err)
			}
			return minimatic.Str(s), nil
		default:
			r.pos++
		}
	}
	return nil, r.errf("unterminated string")
}

func (r *reader) number() (minimatic.Element, error) {
	start := r.pos
	if c := r.peek(); c == '-' || c == '+' {
		r.pos++
	}
	real := false
	for r.pos < len(r.src) {
		c := r.src[r.pos]
		if c >= '0' && c <= '9' {
			r.pos++
			continue
		}
		if c == '.' || c == 'e' || c == 'E' {
			real = true
			r.pos++
			if c != '.' && r.pos < len(r.src) && (r.src[r.pos] == '-' || r.src[r.pos] == '+') {
				r.pos++
			}
			continue
		}
		break
	}
	text := r.src[start:r.pos]
	if real {
		f, err := strconv.ParseFloat(strings.TrimSuffix(text, "."), 64)
		if err != nil {
			return nil, r.errf("bad number %q", text)
		}
		return minimatic.Real(f), nil
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, r.errf("bad number %q", text)
	}
	return minimatic.Int(n), nil
}

func (r *reader) identOrCall() (minimatic.Element, error) {
	start := r.pos
	for r.pos < len(r.src) && isIdentPart(r.src[r.pos]) {
		r.pos++
	}
	name := r.src[start:r.pos]

	r.skipSpace()
	if r.peek() != '(' {
		switch name {
		case "True":
			return minimatic.Bool(true), nil
		case "False":
			return minimatic.Bool(false), nil
		case "Null":
			return minimatic.Null, nil
		}
		return minimatic.Sym(name), nil
	}

	r.pos++ // '('
	var args []minimatic.Element
	r.skipSpace()
	if r.peek() == ')' {
		r.pos++
		return minimatic.Expr(name), nil
	}
	for {
		arg, err := r.element()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		r.skipSpace()
		switch r.peek() {
		case ',':
			r.pos++
		case ')':
			r.pos++
			return minimatic.Expr(name, args...), nil
		default:
			return nil, r.errf("want ',' or ')' in %s(...)", name)
		}
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
