package expr

import "strings"

// parenthesize renders "(name a b ...)"
func parenthesize(name string, parts ...Printer) string {
	var b strings.Builder

	b.WriteByte('(')
	b.WriteString(name)
	for _, part := range parts {
		b.WriteByte(' ')
		b.WriteString(part.Print())
	}
	b.WriteByte(')')

	return b.String()
}
