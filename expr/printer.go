package expr

import (
	"fmt"
	"strconv"

	interp "github.com/havrydotdev/myclass/interpreter"
	"github.com/havrydotdev/myclass/token"
)

type Printer interface {
	Print() string
}

// implements Printer
type PrintFunc func() string

func (fn PrintFunc) Print() string {
	return fn()
}

// implements interp.Alg[Printer, Printer]
type PrintExpr struct{}

func NewPrinter() interp.Alg[Printer, Printer] {
	return &PrintExpr{}
}

func (*PrintExpr) Grouping(expr Printer) Printer {
	return PrintFunc(func() string {
		return parenthesize("group", expr)
	})
}

func (*PrintExpr) Literal(value any) Printer {
	return PrintFunc(func() string {
		switch v := value.(type) {
		case nil:
			return "nil"
		case string:
			return strconv.Quote(v)
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		default:
			return fmt.Sprintf("%v", v)
		}
	})
}

func (*PrintExpr) List(_ token.Token, items []Printer) Printer {
	return PrintFunc(func() string {
		return parenthesize("list", items...)
	})
}

func (*PrintExpr) Variable(name token.Token) Printer {
	return PrintFunc(func() string {
		return name.Lexeme
	})
}

func (*PrintExpr) Call(callee Printer, _ token.Token, args []Printer) Printer {
	return PrintFunc(func() string {
		return parenthesize("call "+callee.Print(), args...)
	})
}

func (*PrintExpr) ExprStatement(expr Printer) Printer {
	return PrintFunc(func() string {
		return expr.Print()
	})
}

func (*PrintExpr) Var(name token.Token, init Printer) Printer {
	return PrintFunc(func() string {
		return parenthesize(fmt.Sprintf("var %s", name.Lexeme), init)
	})
}

func (*PrintExpr) NilExpr() Printer {
	return PrintFunc(func() string { return "<nil>" })
}

func (*PrintExpr) NilStmt() Printer {
	return PrintFunc(func() string { return "<nil>" })
}
