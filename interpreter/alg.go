package interp

import "github.com/havrydotdev/myclass/token"

// Visitor pattern doesn't really work in golang
// so we have to use object algebras
// https://www.cs.utexas.edu/%7Ewcook/Drafts/2012/ecoop2012.pdf
//
// E is for expression, S is for statement
type Alg[E any, S any] interface {
	Grouping(expr E) E
	Literal(value any) E
	List(bracket token.Token, items []E) E
	Variable(name token.Token) E
	Call(callee E, paren token.Token, args []E) E

	ExprStatement(expr E) S
	Var(name token.Token, init E) S

	NilExpr() E
	NilStmt() S
}
