package strix

import (
	"fmt"
	"strings"
)

// AstPrinter renders a syntax tree as a fully parenthesized prefix expression,
// e.g. "(* (- 123) (group 45.67))". It is used for debugging.
type AstPrinter struct{}

func (printer *AstPrinter) Print(expr Expr) string {
	s, _ := expr.Accept(printer)
	return s.(string)
}

func (printer *AstPrinter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	return printer.parenthesize(expr.Op.Lexeme, expr.Left, expr.Right), nil
}

func (printer *AstPrinter) VisitGroupingExpr(expr *GroupingExpr) (interface{}, error) {
	return printer.parenthesize("group", expr.Inner), nil
}

func (printer *AstPrinter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	return stringify(expr.Value), nil
}

func (printer *AstPrinter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	return printer.parenthesize(expr.Op.Lexeme, expr.Right), nil
}

func (printer *AstPrinter) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(name)
	for _, expr := range exprs {
		b.WriteString(" ")
		b.WriteString(printer.Print(expr))
	}
	b.WriteString(")")
	return b.String()
}

// SourcePrinter renders a syntax tree back into source text where every
// compound expression is wrapped in parentheses. Scanning and parsing the
// output yields a tree that evaluates to the same value.
type SourcePrinter struct{}

func (printer *SourcePrinter) Print(expr Expr) string {
	s, _ := expr.Accept(printer)
	return s.(string)
}

func (printer *SourcePrinter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	return fmt.Sprintf(
		"(%s %s %s)",
		printer.Print(expr.Left),
		expr.Op.Lexeme,
		printer.Print(expr.Right),
	), nil
}

func (printer *SourcePrinter) VisitGroupingExpr(expr *GroupingExpr) (interface{}, error) {
	return fmt.Sprintf("(%s)", printer.Print(expr.Inner)), nil
}

func (printer *SourcePrinter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	if s, ok := expr.Value.(string); ok {
		return fmt.Sprintf("\"%s\"", s), nil
	}
	return stringify(expr.Value), nil
}

func (printer *SourcePrinter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	return fmt.Sprintf("(%s %s)", expr.Op.Lexeme, printer.Print(expr.Right)), nil
}
