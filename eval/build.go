package eval

import (
	"errors"
	"fmt"

	"github.com/Jeff-Rowell/Expression-Tree/notation"
)

// ErrInvalidExpression is wrapped by every error returned from Build and
// BuildStrict.
var ErrInvalidExpression = errors.New("invalid expression")

// BuildError describes why a prefix string could not be turned into a tree.
// Pos is the index of the offending symbol, or -1 when the problem concerns
// the expression as a whole.
type BuildError struct {
	Pos    int
	Symbol byte
	Reason string
}

func (e *BuildError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("%s: %s", ErrInvalidExpression, e.Reason)
	}

	return fmt.Sprintf("%s: %s at %d ('%c')", ErrInvalidExpression, e.Reason, e.Pos, e.Symbol)
}

func (e *BuildError) Unwrap() error {
	return ErrInvalidExpression
}

// Build constructs an expression tree from a prefix string, scanning it from
// the last character to the first. Digits become leaves; an operator takes
// the most recent subtree as its left child and the one before as its right
// child. Characters that are neither are skipped.
//
// If more than one subtree is left at the end the most recent one is
// returned and the rest are dropped. Use BuildStrict to reject that.
func Build(prefix string) (*Expression, error) {
	return build(prefix, false)
}

// BuildStrict is like Build but also fails when the expression leaves more
// than one subtree behind.
func BuildStrict(prefix string) (*Expression, error) {
	return build(prefix, true)
}

func build(prefix string, strict bool) (*Expression, error) {
	s := stack[*Expression]{}

	for i := len(prefix) - 1; i >= 0; i-- {
		tk := notation.Token(prefix[i])

		if tk.IsOperand() {
			s.push(&Expression{
				Type:  Operand,
				Value: float64(tk.ToDigit()),
			})
		} else if IsOperator(prefix[i : i+1]) {
			left, ok := s.pop()
			if !ok {
				return nil, &BuildError{Pos: i, Symbol: prefix[i], Reason: "operator is missing its left operand"}
			}

			right, ok := s.pop()
			if !ok {
				return nil, &BuildError{Pos: i, Symbol: prefix[i], Reason: "operator is missing its right operand"}
			}

			s.push(&Expression{
				Type:     Operator,
				Operator: OperatorType(prefix[i : i+1]),
				Left:     left,
				Right:    right,
			})
		}
	}

	if len(s) == 0 {
		return nil, &BuildError{Pos: -1, Reason: "empty expression"}
	}

	if strict && len(s) > 1 {
		return nil, &BuildError{Pos: -1, Reason: fmt.Sprintf("%d operands left without an operator", len(s)-1)}
	}

	root, _ := s.pop()

	return root, nil
}
