package token

type Kind int

const (
	// single-character tokens
	LeftParen Kind = iota
	RightParen
	LeftBracket
	RightBracket
	Comma
	Semicolon
	Equal
	Plus
	Minus
	Star
	Slash

	// literals
	Identifier
	String
	Number

	// keywords
	True
	False
	Nil
	Var

	Eof
)

var kindNames = [...]string{
	LeftParen:    "LeftParen",
	RightParen:   "RightParen",
	LeftBracket:  "LeftBracket",
	RightBracket: "RightBracket",
	Comma:        "Comma",
	Semicolon:    "Semicolon",
	Equal:        "Equal",
	Plus:         "Plus",
	Minus:        "Minus",
	Star:         "Star",
	Slash:        "Slash",
	Identifier:   "Identifier",
	String:       "String",
	Number:       "Number",
	True:         "True",
	False:        "False",
	Nil:          "Nil",
	Var:          "Var",
	Eof:          "Eof",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}

	return kindNames[k]
}
