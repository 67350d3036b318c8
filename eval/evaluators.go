package eval

func (expr *Expression) evaluateAdd() float64 {
	left := Evaluate(expr.Left)
	right := Evaluate(expr.Right)

	return left + right
}

func (expr *Expression) evaluateSubtract() float64 {
	left := Evaluate(expr.Left)
	right := Evaluate(expr.Right)

	return left - right
}

func (expr *Expression) evaluateMultiply() float64 {
	left := Evaluate(expr.Left)
	right := Evaluate(expr.Right)

	return left * right
}

func (expr *Expression) evaluateDivide() float64 {
	left := Evaluate(expr.Left)
	right := Evaluate(expr.Right)

	return left / right
}
