package main

import (
	"fmt"

	"github.com/ltungv/lox/strix/internal/strix"
)

// Prints the tree of "-123 * (45.67)" built by hand.
func main() {
	expression := strix.NewBinaryExpr(
		strix.NewUnaryExpr(
			strix.NewToken(strix.MINUS, "-", nil, 1),
			strix.NewLiteralExpr(123.0),
		),
		strix.NewToken(strix.STAR, "*", nil, 1),
		strix.NewGroupingExpr(strix.NewLiteralExpr(45.67)),
	)

	astPrinter := new(strix.AstPrinter)
	sourcePrinter := new(strix.SourcePrinter)
	fmt.Println(astPrinter.Print(expression))
	fmt.Println(sourcePrinter.Print(expression))
}
