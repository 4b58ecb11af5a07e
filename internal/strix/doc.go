/*
Package strix implements a tree-walking evaluator for Strix, a dialect of Lox
that is restricted to expressions.

Source text goes through three stages:

	text --> Scanner --> []*Token --> Parser --> Expr --> Interpreter --> value

The AstPrinter is an alternative consumer of the tree used for debugging.

Grammars

	expression --> equality ;
	equality   --> comparison ( ( "!=" | "==" ) comparison )* ;
	comparison --> term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
	term       --> factor ( ( "-" | "+" ) factor )* ;
	factor     --> unary ( ( "/" | "*" ) unary )* ;
	unary      --> ( "!" | "-" ) unary
	             | primary ;
	primary    --> NUMBER | STRING
	             | "true" | "false" | "nil"
	             | "(" expression ")" ;

The scanner recognizes the whole Lox token set, including the keywords used by
statements, so the parser can be extended without touching it.
*/
package strix

//go:generate go run ../cmd/ast_codegen ../strix
