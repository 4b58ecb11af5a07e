package strix

import (
	"fmt"
	"io"
)

// Runner drives a source text through the whole pipeline: scanning, parsing,
// then either evaluation or tree printing. Results go to the output writer and
// every error goes to the reporter.
type Runner struct {
	output      io.Writer
	reporter    Reporter
	interpreter *Interpreter
	printAST    bool
}

// NewRunner creates a runner. When printAST is set, parsed trees are printed
// with the AstPrinter instead of being evaluated.
func NewRunner(output io.Writer, reporter Reporter, printAST bool) *Runner {
	return &Runner{output, reporter, NewInterpreter(), printAST}
}

// Run processes one source text. The caller inspects the reporter to find out
// whether it failed.
func (runner *Runner) Run(source string) {
	scanner := NewScanner([]rune(source), runner.reporter)
	tokens := scanner.Scan()
	if runner.reporter.HadError() {
		return
	}

	parser := NewParser(tokens)
	expr, err := parser.Parse()
	if err != nil {
		runner.reporter.Report(err)
		return
	}

	if runner.printAST {
		printer := new(AstPrinter)
		fmt.Fprintln(runner.output, printer.Print(expr))
		return
	}

	value, err := runner.interpreter.Evaluate(expr)
	if err != nil {
		runner.reporter.Report(err)
		return
	}
	fmt.Fprintln(runner.output, stringify(value))
}
