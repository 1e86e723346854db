package scanner

import "github.com/havrydotdev/myclass/token"

var keywords = map[string]token.Kind{
	"false": token.False,
	"nil":   token.Nil,
	"true":  token.True,
	"var":   token.Var,
}
