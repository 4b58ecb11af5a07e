package strix

// Interpreter exposes methods for evaluating then given syntax tree. This
// struct implements ExprVisitor.
//
// Runtime values are represented with Go values: nil, float64, string and
// bool. There is no implicit conversion between them.
type Interpreter struct{}

// NewInterpreter creates a new interpreter
func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

// Evaluate computes the value of the expression. A type mismatch aborts the
// evaluation with a *RuntimeError.
func (in *Interpreter) Evaluate(expr Expr) (interface{}, error) {
	return expr.Accept(in)
}

func (in *Interpreter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	lhs, err := in.Evaluate(expr.Left)
	if err != nil {
		return nil, err
	}
	rhs, err := in.Evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Typ {
	case BANG_EQUAL:
		return !isEqual(lhs, rhs), nil

	case EQUAL_EQUAL:
		return isEqual(lhs, rhs), nil

	case GREATER:
		return numberOp(expr.Op, lhs, rhs, func(l, r float64) interface{} { return l > r })

	case GREATER_EQUAL:
		return numberOp(expr.Op, lhs, rhs, func(l, r float64) interface{} { return l >= r })

	case LESS:
		return numberOp(expr.Op, lhs, rhs, func(l, r float64) interface{} { return l < r })

	case LESS_EQUAL:
		return numberOp(expr.Op, lhs, rhs, func(l, r float64) interface{} { return l <= r })

	case MINUS:
		return numberOp(expr.Op, lhs, rhs, func(l, r float64) interface{} { return l - r })

	case SLASH:
		// division by zero follows IEEE 754 and yields an infinity or NaN
		return numberOp(expr.Op, lhs, rhs, func(l, r float64) interface{} { return l / r })

	case STAR:
		return numberOp(expr.Op, lhs, rhs, func(l, r float64) interface{} { return l * r })

	case PLUS:
		leftNum, okLeftNum := lhs.(float64)
		rightNum, okRightNum := rhs.(float64)
		if okLeftNum && okRightNum {
			return leftNum + rightNum, nil
		}
		leftStr, okLeftStr := lhs.(string)
		rightStr, okRightStr := rhs.(string)
		if okLeftStr && okRightStr {
			return leftStr + rightStr, nil
		}
		return nil, NewRuntimeError(
			expr.Op,
			"The operands must be two numbers or two strings.",
		)
	}
	return nil, NewRuntimeError(expr.Op, "Unknown operator.")
}

func (in *Interpreter) VisitGroupingExpr(expr *GroupingExpr) (interface{}, error) {
	return in.Evaluate(expr.Inner)
}

func (in *Interpreter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	return expr.Value, nil
}

func (in *Interpreter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	rhs, err := in.Evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Typ {
	case BANG:
		return !isTruthy(rhs), nil
	case MINUS:
		if num, ok := rhs.(float64); ok {
			return -num, nil
		}
		return nil, NewRuntimeError(expr.Op, "The operator must be a number")
	}
	return nil, NewRuntimeError(expr.Op, "Unknown operator.")
}

// numberOp applies fn when both operands are numbers.
func numberOp(
	op *Token,
	lhs, rhs interface{},
	fn func(l, r float64) interface{},
) (interface{}, error) {
	leftNum, okLeftNum := lhs.(float64)
	rightNum, okRightNum := rhs.(float64)
	if okLeftNum && okRightNum {
		return fn(leftNum, rightNum), nil
	}
	return nil, NewRuntimeError(op, "Operands must be numbers.")
}
