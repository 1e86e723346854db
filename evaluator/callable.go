package eval

type Callable interface {
	Arity() int
	Call(e *Evaluator, args []any) (any, error)
}

type NativeFun struct {
	name  string
	arity int
	call  func(e *Evaluator, args []any) (any, error)
}

func NewNativeFun(name string, arity int, call func(e *Evaluator, args []any) (any, error)) Callable {
	return NativeFun{name, arity, call}
}

func (c NativeFun) Arity() int {
	return c.arity
}

func (c NativeFun) Call(e *Evaluator, args []any) (any, error) {
	return c.call(e, args)
}

func (c NativeFun) String() string {
	return "<native fn " + c.name + ">"
}
