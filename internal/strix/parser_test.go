package strix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrimary(t *testing.T) {
	testCases := []struct {
		toks []*Token
		expr Expr
	}{
		{[]*Token{
			NewToken(NUMBER, "3.14", 3.14, 1),
			tokEOF(1),
		},
			NewLiteralExpr(3.14)},

		{[]*Token{
			NewToken(STRING, "\"a string\"", "a string", 1),
			tokEOF(1),
		},
			NewLiteralExpr("a string")},

		{[]*Token{
			NewToken(TRUE, "true", nil, 1),
			tokEOF(1),
		},
			NewLiteralExpr(true)},

		{[]*Token{
			NewToken(FALSE, "false", nil, 1),
			tokEOF(1),
		},
			NewLiteralExpr(false)},

		{[]*Token{
			NewToken(NIL, "nil", nil, 1),
			tokEOF(1),
		},
			NewLiteralExpr(nil)},

		{[]*Token{
			NewToken(LEFT_PAREN, "(", nil, 1),
			NewToken(NUMBER, "3.14", 3.14, 1),
			NewToken(RIGHT_PAREN, ")", nil, 1),
			tokEOF(1),
		},
			NewGroupingExpr(NewLiteralExpr(3.14))},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		expr, err := NewParser(tc.toks).Parse()

		assert.Nil(err)
		assert.Equal(tc.expr, expr)
	}
}

func TestParseUnary(t *testing.T) {
	testCases := []struct {
		toks []*Token
		expr Expr
	}{
		{[]*Token{
			NewToken(MINUS, "-", nil, 1),
			NewToken(NUMBER, "3.14", 3.14, 1),
			tokEOF(1),
		},
			NewUnaryExpr(
				NewToken(MINUS, "-", nil, 1),
				NewLiteralExpr(3.14)),
		},
		{[]*Token{
			NewToken(BANG, "!", nil, 1),
			NewToken(TRUE, "true", nil, 1),
			tokEOF(1),
		},
			NewUnaryExpr(
				NewToken(BANG, "!", nil, 1),
				NewLiteralExpr(true)),
		},
		{[]*Token{
			NewToken(MINUS, "-", nil, 1),
			NewToken(MINUS, "-", nil, 1),
			NewToken(NUMBER, "3.14", 3.14, 1),
			tokEOF(1),
		},
			NewUnaryExpr(
				NewToken(MINUS, "-", nil, 1),
				NewUnaryExpr(
					NewToken(MINUS, "-", nil, 1),
					NewLiteralExpr(3.14))),
		},
		{[]*Token{
			NewToken(BANG, "!", nil, 1),
			NewToken(BANG, "!", nil, 1),
			NewToken(TRUE, "true", nil, 1),
			tokEOF(1),
		},
			NewUnaryExpr(
				NewToken(BANG, "!", nil, 1),
				NewUnaryExpr(
					NewToken(BANG, "!", nil, 1),
					NewLiteralExpr(true))),
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		expr, err := NewParser(tc.toks).Parse()

		assert.Nil(err)
		assert.Equal(tc.expr, expr)
	}
}

func TestParseBinaryLeftAssociative(t *testing.T) {
	testCases := []struct {
		first, second *Token
	}{
		{NewToken(STAR, "*", nil, 1), NewToken(SLASH, "/", nil, 1)},
		{NewToken(SLASH, "/", nil, 1), NewToken(STAR, "*", nil, 1)},
		{NewToken(PLUS, "+", nil, 1), NewToken(MINUS, "-", nil, 1)},
		{NewToken(MINUS, "-", nil, 1), NewToken(PLUS, "+", nil, 1)},
		{NewToken(GREATER, ">", nil, 1), NewToken(LESS_EQUAL, "<=", nil, 1)},
		{NewToken(LESS, "<", nil, 1), NewToken(GREATER_EQUAL, ">=", nil, 1)},
		{NewToken(EQUAL_EQUAL, "==", nil, 1), NewToken(BANG_EQUAL, "!=", nil, 1)},
		{NewToken(BANG_EQUAL, "!=", nil, 1), NewToken(EQUAL_EQUAL, "==", nil, 1)},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		toks := []*Token{
			NewToken(NUMBER, "1", 1.0, 1),
			tc.first,
			NewToken(NUMBER, "2", 2.0, 1),
			tc.second,
			NewToken(NUMBER, "3", 3.0, 1),
			tokEOF(1),
		}
		want := NewBinaryExpr(
			NewBinaryExpr(NewLiteralExpr(1.0), tc.first, NewLiteralExpr(2.0)),
			tc.second,
			NewLiteralExpr(3.0))

		expr, err := NewParser(toks).Parse()

		assert.Nil(err)
		assert.Equal(want, expr)
	}
}

func TestParseOpPrecedence(t *testing.T) {
	testCases := []struct {
		toks []*Token
		expr Expr
	}{
		{[]*Token{
			NewToken(NUMBER, "2", 2.0, 1),
			NewToken(STAR, "*", nil, 1),
			NewToken(MINUS, "-", nil, 1),
			NewToken(NUMBER, "3", 3.0, 1),
			tokEOF(1),
		},
			NewBinaryExpr(
				NewLiteralExpr(2.0),
				NewToken(STAR, "*", nil, 1),
				NewUnaryExpr(
					NewToken(MINUS, "-", nil, 1),
					NewLiteralExpr(3.0))),
		},
		{[]*Token{
			NewToken(NUMBER, "6", 6.0, 1),
			NewToken(MINUS, "-", nil, 1),
			NewToken(NUMBER, "3", 3.0, 1),
			NewToken(STAR, "*", nil, 1),
			NewToken(NUMBER, "2", 2.0, 1),
			tokEOF(1),
		},
			NewBinaryExpr(
				NewLiteralExpr(6.0),
				NewToken(MINUS, "-", nil, 1),
				NewBinaryExpr(
					NewLiteralExpr(3.0),
					NewToken(STAR, "*", nil, 1),
					NewLiteralExpr(2.0))),
		},
		{[]*Token{
			NewToken(NUMBER, "2", 2.0, 1),
			NewToken(LESS, "<", nil, 1),
			NewToken(NUMBER, "6", 6.0, 1),
			NewToken(MINUS, "-", nil, 1),
			NewToken(NUMBER, "3", 3.0, 1),
			tokEOF(1),
		},
			NewBinaryExpr(
				NewLiteralExpr(2.0),
				NewToken(LESS, "<", nil, 1),
				NewBinaryExpr(
					NewLiteralExpr(6.0),
					NewToken(MINUS, "-", nil, 1),
					NewLiteralExpr(3.0))),
		},
		{[]*Token{
			NewToken(FALSE, "false", nil, 1),
			NewToken(EQUAL_EQUAL, "==", nil, 1),
			NewToken(NUMBER, "3", 3.0, 1),
			NewToken(LESS, "<", nil, 1),
			NewToken(NUMBER, "2", 2.0, 1),
			tokEOF(1),
		},
			NewBinaryExpr(
				NewLiteralExpr(false),
				NewToken(EQUAL_EQUAL, "==", nil, 1),
				NewBinaryExpr(
					NewLiteralExpr(3.0),
					NewToken(LESS, "<", nil, 1),
					NewLiteralExpr(2.0))),
		},
		{[]*Token{
			NewToken(LEFT_PAREN, "(", nil, 1),
			NewToken(NUMBER, "6", 6.0, 1),
			NewToken(MINUS, "-", nil, 1),
			NewToken(NUMBER, "3", 3.0, 1),
			NewToken(RIGHT_PAREN, ")", nil, 1),
			NewToken(STAR, "*", nil, 1),
			NewToken(NUMBER, "2", 2.0, 1),
			tokEOF(1),
		},
			NewBinaryExpr(
				NewGroupingExpr(
					NewBinaryExpr(
						NewLiteralExpr(6.0),
						NewToken(MINUS, "-", nil, 1),
						NewLiteralExpr(3.0))),
				NewToken(STAR, "*", nil, 1),
				NewLiteralExpr(2.0)),
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		expr, err := NewParser(tc.toks).Parse()

		assert.Nil(err)
		assert.Equal(tc.expr, expr)
	}
}

func TestParseWithErrors(t *testing.T) {
	testCases := []struct {
		toks []*Token
		err  error
	}{
		{[]*Token{
			tokEOF(1),
		},
			NewParseError(tokEOF(1), "Expected expression.")},
		{[]*Token{
			NewToken(LEFT_PAREN, "(", nil, 1),
			NewToken(NUMBER, "1", 1.0, 1),
			NewToken(STAR, "*", nil, 1),
			NewToken(LEFT_PAREN, "(", nil, 1),
			NewToken(NUMBER, "2", 2.0, 1),
			NewToken(PLUS, "+", nil, 1),
			NewToken(NUMBER, "3", 3.0, 1),
			NewToken(RIGHT_PAREN, ")", nil, 1),
			tokEOF(1),
		},
			NewParseError(tokEOF(1), "Expect ')' after expression.")},
		{[]*Token{
			NewToken(STAR, "*", nil, 1),
			NewToken(NUMBER, "2", 2.0, 1),
			tokEOF(1),
		},
			NewParseError(NewToken(STAR, "*", nil, 1), "Expected expression.")},
		{[]*Token{
			NewToken(NUMBER, "1", 1.0, 1),
			NewToken(PLUS, "+", nil, 1),
			tokEOF(2),
		},
			NewParseError(tokEOF(2), "Expected expression.")},
		{[]*Token{
			NewToken(LEFT_PAREN, "(", nil, 1),
			NewToken(NUMBER, "1", 1.0, 1),
			NewToken(SEMICOLON, ";", nil, 1),
			tokEOF(1),
		},
			NewParseError(
				NewToken(SEMICOLON, ";", nil, 1),
				"Expect ')' after expression.")},
		{[]*Token{
			NewToken(IDENTIFIER, "x", nil, 3),
			tokEOF(3),
		},
			NewParseError(NewToken(IDENTIFIER, "x", nil, 3), "Expected expression.")},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		expr, err := NewParser(tc.toks).Parse()

		assert.Nil(expr)
		assert.Equal(tc.err, err)
		assert.IsType(&ParseError{}, err)
	}
}

func TestParseErrorMessages(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(
		"[line 1] Error at the end: Expected expression.",
		NewParseError(tokEOF(1), "Expected expression.").Error(),
	)
	assert.Equal(
		"[line 2] Error at '*': Expected expression.",
		NewParseError(NewToken(STAR, "*", nil, 2), "Expected expression.").Error(),
	)
}

func TestParseWithoutEOF(t *testing.T) {
	assert := assert.New(t)

	expr, err := NewParser(nil).Parse()
	assert.Nil(expr)
	assert.Equal(NewParseError(tokEOF(1), "Expected expression."), err)

	expr, err = NewParser([]*Token{NewToken(NUMBER, "1", 1.0, 4)}).Parse()
	assert.Nil(err)
	assert.Equal(NewLiteralExpr(1.0), expr)
}

func TestParserSync(t *testing.T) {
	testCases := []struct {
		toks    []*Token
		current int
	}{
		// stops right after a semicolon
		{[]*Token{
			NewToken(NUMBER, "1", 1.0, 1),
			NewToken(PLUS, "+", nil, 1),
			NewToken(SEMICOLON, ";", nil, 1),
			NewToken(NUMBER, "2", 2.0, 1),
			tokEOF(1),
		}, 3},
		// stops before a statement keyword
		{[]*Token{
			NewToken(NUMBER, "1", 1.0, 1),
			NewToken(VAR, "var", nil, 1),
			NewToken(IDENTIFIER, "x", nil, 1),
			tokEOF(1),
		}, 1},
		// always skips at least one token
		{[]*Token{
			NewToken(PRINT, "print", nil, 1),
			NewToken(PRINT, "print", nil, 1),
			tokEOF(1),
		}, 1},
		// runs to the end without a boundary
		{[]*Token{
			NewToken(NUMBER, "1", 1.0, 1),
			NewToken(PLUS, "+", nil, 1),
			NewToken(NUMBER, "2", 2.0, 1),
			tokEOF(1),
		}, 3},
		{[]*Token{
			tokEOF(1),
		}, 0},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		parser := NewParser(tc.toks)
		parser.sync()

		assert.Equal(tc.current, parser.current)
	}
}
