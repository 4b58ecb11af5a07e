package strix

import "fmt"

// ScanError is reported when the scanner finds malformed lexical input. The
// scanner keeps going after reporting it.
type ScanError struct {
	line    int
	message string
}

// NewScanError creates a new scanner error
func NewScanError(line int, message string) error {
	return &ScanError{line, message}
}

func (err *ScanError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", err.line, err.message)
}

// Line returns the line on which the error occured.
func (err *ScanError) Line() int {
	return err.line
}

// ParseError wraps the message returned by the parser with the token that
// triggered it.
type ParseError struct {
	token   *Token
	message string
}

// NewParseError creates a new parser error
func NewParseError(token *Token, message string) error {
	return &ParseError{token, message}
}

func (err *ParseError) Error() string {
	if err.token.Typ == EOF {
		return fmt.Sprintf(
			"[line %d] Error at the end: %s",
			err.token.Line,
			err.message,
		)
	}
	return fmt.Sprintf(
		"[line %d] Error at '%s': %s",
		err.token.Line,
		err.token.Lexeme,
		err.message,
	)
}

// Token returns the offending token, EOF when the input ended too early.
func (err *ParseError) Token() *Token {
	return err.token
}

// RuntimeError is returned by the interpreter when an operator is applied to
// operands of the wrong type.
type RuntimeError struct {
	token   *Token
	message string
}

// NewRuntimeError creates a new runtime error
func NewRuntimeError(token *Token, message string) error {
	return &RuntimeError{token, message}
}

func (err *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", err.message, err.token.Line)
}

// Token returns the operator token of the failing expression.
func (err *RuntimeError) Token() *Token {
	return err.token
}
