package notation

import "slices"

// Token is a single character of an arithmetic expression.
type Token byte

const (
	Add      Token = '+'
	Subtract Token = '-'
	Multiply Token = '*'
	Divide   Token = '/'

	LeftParenthesis  Token = '('
	RightParenthesis Token = ')'
)

var operators = []Token{Add, Subtract, Multiply, Divide}

var priority = map[Token]int{
	Add:      1,
	Subtract: 1,
	Multiply: 2,
	Divide:   2,
}

func (tk Token) IsOperand() bool {
	return tk >= '0' && tk <= '9'
}

func (tk Token) IsOperator() bool {
	return slices.Contains(operators, tk)
}

func (tk Token) IsParenthesis() bool {
	return tk == LeftParenthesis || tk == RightParenthesis
}

// Priority returns 1 for + and -, 2 for * and /, and 0 for anything that
// is not an operator.
func (tk Token) Priority() int {
	return priority[tk]
}

// ToDigit returns the numeric value of an operand token. The result is
// meaningless for tokens that are not operands.
func (tk Token) ToDigit() int {
	return int(tk - '0')
}

// outranks reports whether tk should be emitted before an incoming operator
// of priority p. With orEqual set, ties are emitted too.
func (tk Token) outranks(p int, orEqual bool) bool {
	if orEqual {
		return tk.Priority() >= p
	}

	return tk.Priority() > p
}
