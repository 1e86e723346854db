package token

import "fmt"

type Token struct {
	Kind    Kind
	Lexeme  string
	Literal any
	Line    int
}

// NilV is returned alongside errors where a Token is expected.
var NilV = Token{Kind: Eof}

func New(kind Kind, lexeme string, literal any, line int) Token {
	return Token{kind, lexeme, literal, line}
}

func (t Token) String() string {
	return fmt.Sprintf("{Kind(%v), Literal(%v), Lexeme(%s)}", t.Kind, t.Literal, t.Lexeme)
}

// IsOperator reports whether the token can be used as an operator tag.
func (t Token) IsOperator() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash:
		return true
	}

	return false
}
