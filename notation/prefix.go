// Package notation converts single-digit infix arithmetic into prefix
// notation.
package notation

import "strings"

// Mode selects how the converter lays out its output and resolves ties.
type Mode int

const (
	// Standard separates every token with a single space, honours
	// parentheses and keeps equal-priority operators left associative.
	Standard Mode = iota

	// Legacy reproduces the historical console program byte for byte:
	// adjacent digits are not separated, ties are emitted eagerly (which
	// makes chains like 8-3-2 right associative) and parentheses are copied
	// into the output as plain characters.
	Legacy
)

func (m Mode) String() string {
	switch m {
	case Standard:
		return "standard"
	case Legacy:
		return "legacy"
	default:
		return "unknown"
	}
}

type Option func(*converter)

func WithMode(m Mode) Option {
	return func(c *converter) {
		c.mode = m
	}
}

// converter holds the state of a single conversion. A new one is created for
// every call, so conversions never share an accumulator or operator stack.
type converter struct {
	mode Mode
	out  strings.Builder
	ops  stack[Token]
}

func newConverter(opts ...Option) *converter {
	c := &converter{mode: Standard}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ToPrefix converts an infix expression, as typed by a user, to prefix
// notation.
func ToPrefix(infix string, opts ...Option) string {
	return InfixToPrefix(Reverse(infix), opts...)
}

// InfixToPrefix converts an already reversed infix expression to prefix
// notation. Scanning the reversed text left to right with a postfix style
// operator stack and reversing the result yields the prefix form.
//
// Malformed input is not reported; it produces some prefix string that the
// tree builder may or may not accept.
func InfixToPrefix(reversed string, opts ...Option) string {
	c := newConverter(opts...)

	for i := 0; i < len(reversed); i++ {
		tk := Token(reversed[i])
		if c.mode == Legacy {
			c.scanLegacy(tk)
		} else {
			c.scan(tk)
		}
	}

	for tk, ok := c.ops.pop(); ok; tk, ok = c.ops.pop() {
		if tk == RightParenthesis {
			continue
		}
		c.emitOperator(tk)
	}

	return Reverse(c.out.String())
}

func (c *converter) scan(tk Token) {
	switch {
	case tk.IsOperand():
		c.emit(tk)
	case tk.IsOperator():
		c.addOperator(tk)
	case tk.IsParenthesis():
		// a closing parenthesis of the reversed text opens a group
		if tk == RightParenthesis {
			c.ops.push(tk)
		} else {
			c.closeGroup()
		}
	}
}

func (c *converter) scanLegacy(tk Token) {
	if tk.IsOperator() {
		c.addOperator(tk)
		return
	}

	c.out.WriteByte(byte(tk))
}

// addOperator emits every stacked operator that outranks tk, stopping at the
// first one that does not or at a group sentinel, then stacks tk.
func (c *converter) addOperator(tk Token) {
	for top, ok := c.ops.pop(); ok; top, ok = c.ops.pop() {
		if top == RightParenthesis || !top.outranks(tk.Priority(), c.mode == Legacy) {
			c.ops.push(top)
			break
		}
		c.emitOperator(top)
	}

	c.ops.push(tk)
}

// closeGroup emits operators until the matching sentinel. Without one the
// whole stack is drained.
func (c *converter) closeGroup() {
	for top, ok := c.ops.pop(); ok; top, ok = c.ops.pop() {
		if top == RightParenthesis {
			return
		}
		c.emitOperator(top)
	}
}

func (c *converter) emit(tk Token) {
	if c.out.Len() > 0 {
		c.out.WriteByte(' ')
	}
	c.out.WriteByte(byte(tk))
}

func (c *converter) emitOperator(tk Token) {
	if c.mode == Legacy {
		c.out.WriteByte(' ')
		c.out.WriteByte(byte(tk))
		return
	}

	c.emit(tk)
}
