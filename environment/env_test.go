package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChildShadowsOuter(t *testing.T) {
	globals := New()
	globals.Define("x", 1.0)
	globals.Define("y", 2.0)

	child := NewChild(globals)
	child.Define("x", "shadow")

	x, ok := child.Get("x")
	assert.True(t, ok)
	assert.Equal(t, "shadow", x)

	y, ok := child.Get("y")
	assert.True(t, ok)
	assert.Equal(t, 2.0, y)

	x, _ = globals.Get("x")
	assert.Equal(t, 1.0, x)

	_, ok = child.Get("missing")
	assert.False(t, ok)
}

func TestNames(t *testing.T) {
	globals := New()
	globals.Define("b", nil)
	globals.Define("a", nil)

	child := NewChild(globals)
	child.Define("c", nil)
	child.Define("a", nil)

	assert.Equal(t, []string{"a", "b", "c"}, child.Names())
	assert.Equal(t, []string{"a", "b"}, globals.Names())
}
