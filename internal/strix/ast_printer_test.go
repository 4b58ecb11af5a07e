package strix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func parseSource(t *testing.T, src string) Expr {
	report := newMockReporter()
	toks := NewScanner([]rune(src), report).Scan()
	if !assert.False(t, report.HadError(), src) {
		t.FailNow()
	}
	expr, err := NewParser(toks).Parse()
	if !assert.Nil(t, err, src) {
		t.FailNow()
	}
	return expr
}

func TestAstPrinterHandBuiltTree(t *testing.T) {
	expr := NewBinaryExpr(
		NewUnaryExpr(
			NewToken(MINUS, "-", nil, 1),
			NewLiteralExpr(123.0),
		),
		NewToken(STAR, "*", nil, 1),
		NewGroupingExpr(NewLiteralExpr(45.67)),
	)

	printer := new(AstPrinter)
	assert.Equal(t, "(* (- 123) (group 45.67))", printer.Print(expr))
}

func TestAstPrinterParsedSource(t *testing.T) {
	testCases := []struct {
		src string
		ast string
	}{
		{"-123 * (45.67)", "(* (- 123) (group 45.67))"},
		{"1 - 2 - 3", "(- (- 1 2) 3)"},
		{"2 + 3 * 4", "(+ 2 (* 3 4))"},
		{"!!true == false", "(== (! (! true)) false)"},
		{"nil != \"str\"", "(!= nil str)"},
		{"(1 <= 2) >= (3 > 4)", "(>= (group (<= 1 2)) (group (> 3 4)))"},
		{"1 / 2 < 3", "(< (/ 1 2) 3)"},
	}

	printer := new(AstPrinter)
	for _, tc := range testCases {
		assert.Equal(t, tc.ast, printer.Print(parseSource(t, tc.src)), tc.src)
	}
}

func TestSourcePrinterRoundTrip(t *testing.T) {
	testCases := []struct {
		src     string
		printed string
	}{
		{"-123 * (45.67)", "((- 123) * (45.67))"},
		{"1 - 2 - 3", "((1 - 2) - 3)"},
		{"1 - (2 - 3)", "(1 - ((2 - 3)))"},
		{"2 + 3 * 4", "(2 + (3 * 4))"},
		{"\"a\" + \"b\" == \"ab\"", "((\"a\" + \"b\") == \"ab\")"},
		{"!nil", "(! nil)"},
		{"-(-1.5) <= 10 / 4", "((- ((- 1.5))) <= (10 / 4))"},
		{"true != false", "(true != false)"},
	}

	printer := new(SourcePrinter)
	for _, tc := range testCases {
		original := parseSource(t, tc.src)
		printed := printer.Print(original)
		assert.Equal(t, tc.printed, printed, tc.src)

		reparsed := parseSource(t, printed)
		want, err := NewInterpreter().Evaluate(original)
		assert.Nil(t, err, tc.src)
		got, err := NewInterpreter().Evaluate(reparsed)
		assert.Nil(t, err, tc.src)
		assert.Equal(t, want, got, tc.src)
	}
}
