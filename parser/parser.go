package parser

import (
	"errors"
	"fmt"
	"slices"

	interp "github.com/havrydotdev/myclass/interpreter"
	"github.com/havrydotdev/myclass/token"
)

const maxArgs = 255

// Error is a syntax error positioned at the offending token.
type Error struct {
	Line   int
	Lexeme string
	Msg    string
}

func (e *Error) Error() string {
	if e.Lexeme == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}

	return fmt.Sprintf("line %d at '%s': %s", e.Line, e.Lexeme, e.Msg)
}

type Parser[E any, S any] struct {
	current uint
	errors  []error
	tokens  []token.Token
	alg     interp.Alg[E, S]
}

func New[E any, S any](tokens []token.Token, alg interp.Alg[E, S]) *Parser[E, S] {
	return &Parser[E, S]{tokens: tokens, alg: alg, current: 0}
}

func (p *Parser[E, S]) Parse() ([]S, []error) {
	var stmts []S
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.errors = append(p.errors, err)
			p.synchronize()
			continue
		}

		stmts = append(stmts, stmt)
	}

	return stmts, p.errors
}

func (p *Parser[E, S]) declaration() (S, error) {
	if p.match(token.Var) {
		return p.varDeclaration()
	}

	return p.expressionStatement()
}

func (p *Parser[E, S]) varDeclaration() (S, error) {
	name, err := p.consume(token.Identifier, "expected variable name.")
	if err != nil {
		return p.alg.NilStmt(), err
	}

	init := p.alg.Literal(nil)
	if p.match(token.Equal) {
		init, err = p.expression()
		if err != nil {
			return p.alg.NilStmt(), err
		}
	}

	p.match(token.Semicolon)

	return p.alg.Var(name, init), nil
}

// the trailing ';' is optional so a REPL line can omit it
func (p *Parser[E, S]) expressionStatement() (S, error) {
	expr, err := p.expression()
	if err != nil {
		return p.alg.NilStmt(), err
	}

	p.match(token.Semicolon)

	return p.alg.ExprStatement(expr), nil
}

func (p *Parser[E, S]) expression() (E, error) {
	return p.call()
}

func (p *Parser[E, S]) call() (E, error) {
	expr, err := p.primary()
	if err != nil {
		return p.alg.NilExpr(), err
	}

	for p.match(token.LeftParen) {
		expr, err = p.finishCall(expr)
		if err != nil {
			return p.alg.NilExpr(), err
		}
	}

	return expr, nil
}

func (p *Parser[E, S]) finishCall(callee E) (E, error) {
	args, err := p.arguments(token.RightParen)
	if err != nil {
		return p.alg.NilExpr(), err
	}

	paren, err := p.consume(token.RightParen, "expected ')' after arguments.")
	if err != nil {
		return p.alg.NilExpr(), err
	}

	return p.alg.Call(callee, paren, args), nil
}

func (p *Parser[E, S]) arguments(closing token.Kind) ([]E, error) {
	var args []E

	if p.check(closing) {
		return args, nil
	}

	for {
		if len(args) >= maxArgs {
			return nil, p.errorAt(p.peek(), fmt.Sprintf("can't have more than %d arguments.", maxArgs))
		}

		expr, err := p.expression()
		if err != nil {
			return nil, err
		}

		args = append(args, expr)

		if !p.match(token.Comma) {
			break
		}
	}

	return args, nil
}

func (p *Parser[E, S]) primary() (E, error) {
	switch {
	case p.match(token.Identifier):
		return p.alg.Variable(p.previous()), nil
	case p.match(token.False):
		return p.alg.Literal(false), nil
	case p.match(token.True):
		return p.alg.Literal(true), nil
	case p.match(token.Nil):
		return p.alg.Literal(nil), nil
	case p.match(token.Number, token.String):
		return p.alg.Literal(p.previous().Literal), nil
	case p.peek().IsOperator():
		return p.operator(p.advance()), nil
	case p.match(token.LeftBracket):
		bracket := p.previous()
		items, err := p.arguments(token.RightBracket)
		if err != nil {
			return p.alg.NilExpr(), err
		}

		if _, err := p.consume(token.RightBracket, "expected ']' after list items."); err != nil {
			return p.alg.NilExpr(), err
		}

		return p.alg.List(bracket, items), nil
	case p.match(token.LeftParen):
		expr, err := p.expression()
		if err != nil {
			return p.alg.NilExpr(), err
		}

		_, err = p.consume(token.RightParen, "expected ')' after expression.")
		if err != nil {
			return p.alg.NilExpr(), err
		}

		return p.alg.Grouping(expr), nil
	}

	return p.alg.NilExpr(), p.errorAt(p.peek(), "expected expression.")
}

// operator turns a leading sign glued to a number into a signed number,
// anything else into an operator tag literal.
func (p *Parser[E, S]) operator(op token.Token) E {
	if (op.Kind == token.Plus || op.Kind == token.Minus) && p.check(token.Number) {
		num := p.advance().Literal.(float64)
		if op.Kind == token.Minus {
			num = -num
		}

		return p.alg.Literal(num)
	}

	return p.alg.Literal(op.Lexeme)
}

// synchronize method moves cursor
// to the next statement
func (p *Parser[E, S]) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}

		if p.peek().Kind == token.Var {
			return
		}

		p.advance()
	}
}

func (p *Parser[E, S]) consume(kind token.Kind, message string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}

	return token.NilV, p.errorAt(p.peek(), message)
}

func (p *Parser[E, S]) errorAt(tok token.Token, msg string) error {
	return &Error{Line: tok.Line, Lexeme: tok.Lexeme, Msg: msg}
}

func (p *Parser[E, S]) match(kinds ...token.Kind) bool {
	if slices.ContainsFunc(kinds, p.check) {
		p.advance()
		return true
	}

	return false
}

func (p *Parser[E, S]) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return false
	}

	return p.peek().Kind == kind
}

func (p *Parser[E, S]) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}

	return p.previous()
}

func (p *Parser[E, S]) isAtEnd() bool {
	return p.peek().Kind == token.Eof
}

func (p *Parser[E, S]) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser[E, S]) previous() token.Token {
	return p.tokens[p.current-1]
}

// IsError reports whether err came from the parser.
func IsError(err error) bool {
	var perr *Error
	return errors.As(err, &perr)
}
