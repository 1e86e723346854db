package env

import (
	"maps"
	"slices"
)

type Env struct {
	outer *Env

	values map[string]any
}

func New() *Env {
	return &Env{values: make(map[string]any), outer: nil}
}

func NewChild(outer *Env) *Env {
	return &Env{values: make(map[string]any), outer: outer}
}

func (e *Env) Define(name string, value any) {
	e.values[name] = value
}

func (e *Env) Get(name string) (any, bool) {
	val, ok := e.values[name]
	if !ok && e.outer != nil {
		return e.outer.Get(name)
	}

	return val, ok
}

// Names lists every name visible from e, sorted.
func (e *Env) Names() []string {
	seen := make(map[string]struct{})
	for cur := e; cur != nil; cur = cur.outer {
		for name := range cur.values {
			seen[name] = struct{}{}
		}
	}

	return slices.Sorted(maps.Keys(seen))
}
