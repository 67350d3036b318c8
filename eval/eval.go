// Package eval builds binary expression trees from prefix notation and
// reduces them to a number.
package eval

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

type OperatorType string
type ExpressionType string

const (
	Add      OperatorType = "+"
	Subtract OperatorType = "-"
	Multiply OperatorType = "*"
	Divide   OperatorType = "/"
)

var operators = []OperatorType{Add, Subtract, Multiply, Divide}

func IsOperator(operator string) bool {
	return slices.Contains(operators, OperatorType(operator))
}

const (
	Operator ExpressionType = "operator"
	Operand  ExpressionType = "operand"
)

// Expression is a node of a binary expression tree. Operands are leaves
// holding Value; operators hold Operator and exactly two children.
type Expression struct {
	Type     ExpressionType
	Operator OperatorType

	Value float64

	Left  *Expression
	Right *Expression
}

func (expr *Expression) Evaluate() float64 {
	return Evaluate(expr)
}

// Evaluate reduces the tree rooted at expr in post-order. Division by zero
// follows IEEE-754 and an operator it does not know is treated as addition.
// A missing node evaluates to NaN.
func Evaluate(expr *Expression) float64 {
	if expr == nil {
		return math.NaN()
	}

	if expr.Type == Operand {
		return expr.Value
	}

	switch expr.Operator {
	case Subtract:
		return expr.evaluateSubtract()
	case Multiply:
		return expr.evaluateMultiply()
	case Divide:
		return expr.evaluateDivide()
	default:
		return expr.evaluateAdd()
	}
}

// Leaves counts the operand nodes of the tree.
func (expr *Expression) Leaves() int {
	if expr == nil {
		return 0
	}
	if expr.Type == Operand {
		return 1
	}

	return expr.Left.Leaves() + expr.Right.Leaves()
}

// Operators counts the operator nodes of the tree.
func (expr *Expression) Operators() int {
	if expr == nil || expr.Type == Operand {
		return 0
	}

	return 1 + expr.Left.Operators() + expr.Right.Operators()
}

// Prefix renders the tree in prefix notation with single spaces between
// tokens.
func (expr *Expression) Prefix() string {
	var sb strings.Builder
	expr.writePrefix(&sb)

	return sb.String()
}

func (expr *Expression) writePrefix(sb *strings.Builder) {
	if sb.Len() > 0 {
		sb.WriteByte(' ')
	}

	if expr == nil {
		sb.WriteString("?")
		return
	}

	if expr.Type == Operand {
		sb.WriteString(formatValue(expr.Value))
		return
	}

	sb.WriteString(string(expr.Operator))
	expr.Left.writePrefix(sb)
	expr.Right.writePrefix(sb)
}

// String renders the tree as fully parenthesized infix.
func (expr *Expression) String() string {
	var sb strings.Builder
	expr.writeInfix(&sb)

	return sb.String()
}

func (expr *Expression) writeInfix(sb *strings.Builder) {
	if expr == nil {
		sb.WriteString("?")
		return
	}

	if expr.Type == Operand {
		sb.WriteString(formatValue(expr.Value))
		return
	}

	sb.WriteByte('(')
	expr.Left.writeInfix(sb)
	sb.WriteString(" " + string(expr.Operator) + " ")
	expr.Right.writeInfix(sb)
	sb.WriteByte(')')
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
