package eval

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	env "github.com/havrydotdev/myclass/environment"
	"github.com/havrydotdev/myclass/myclass"
	"github.com/havrydotdev/myclass/parser"
	"github.com/havrydotdev/myclass/token"
)

var (
	ErrNilValue = errors.New("internal error: exp/stmt is nil, cannot invoke")
)

// RuntimeError ties an evaluation failure to the source line it came from.
type RuntimeError struct {
	Line int
	Err  error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

func runtimeErr(line int, err error) error {
	var rerr *RuntimeError
	if errors.As(err, &rerr) {
		return err
	}

	return &RuntimeError{Line: line, Err: err}
}

type ExpEvaluator interface {
	Eval() (any, error)
}

type StmtEvaluator interface {
	Eval() error
}

type expEvalFunc func() (any, error)
type stmtEvalFunc func() error

func (fn expEvalFunc) Eval() (any, error) {
	return fn()
}

func (fn stmtEvalFunc) Eval() error {
	return fn()
}

type Option func(*Evaluator)

// WithEcho makes expression statements print their non-nil result.
func WithEcho(echo bool) Option {
	return func(e *Evaluator) { e.echo = echo }
}

func WithLogger(log *slog.Logger) Option {
	return func(e *Evaluator) {
		if log != nil {
			e.log = log
		}
	}
}

// Evaluator implements interp.Alg[ExpEvaluator, StmtEvaluator].
type Evaluator struct {
	globals     *env.Env
	environment *env.Env

	class *myclass.MyClass[float64]
	out   io.Writer
	log   *slog.Logger
	echo  bool
}

func New(out io.Writer, opts ...Option) *Evaluator {
	globals := newGlobals()

	e := &Evaluator{
		globals:     globals,
		environment: env.NewChild(globals),
		class:       myclass.New[float64](),
		out:         out,
		log:         slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Names lists globals and user variables.
func (e *Evaluator) Names() []string {
	return e.environment.Names()
}

// Parse builds evaluators for tokens bound to e.
func (e *Evaluator) Parse(tokens []token.Token) ([]StmtEvaluator, []error) {
	return parser.New[ExpEvaluator, StmtEvaluator](tokens, e).Parse()
}

// Run evaluates stmts in order and stops at the first error.
func (e *Evaluator) Run(stmts []StmtEvaluator) error {
	for _, stmt := range stmts {
		if err := stmt.Eval(); err != nil {
			return err
		}
	}

	return nil
}

func (e *Evaluator) Call(callee ExpEvaluator, paren token.Token, args []ExpEvaluator) ExpEvaluator {
	return expEvalFunc(func() (any, error) {
		callee, err := callee.Eval()
		if err != nil {
			return nil, err
		}

		arguments := make([]any, 0, len(args))
		for _, arg := range args {
			argValue, err := arg.Eval()
			if err != nil {
				return nil, err
			}

			arguments = append(arguments, argValue)
		}

		fun, ok := callee.(Callable)
		if !ok {
			return nil, runtimeErr(paren.Line, fmt.Errorf("%s is not callable", stringify(callee)))
		}

		if len(arguments) != fun.Arity() {
			return nil, runtimeErr(paren.Line, fmt.Errorf("%s: expected %d arguments, got %d", fun, fun.Arity(), len(arguments)))
		}

		e.log.Debug("eval.call", "callee", fmt.Sprint(fun), "line", paren.Line, "args", len(arguments))

		res, err := fun.Call(e, arguments)
		if err != nil {
			return nil, runtimeErr(paren.Line, err)
		}

		return res, nil
	})
}

func (e *Evaluator) List(_ token.Token, items []ExpEvaluator) ExpEvaluator {
	return expEvalFunc(func() (any, error) {
		list := make([]any, 0, len(items))
		for _, item := range items {
			v, err := item.Eval()
			if err != nil {
				return nil, err
			}

			list = append(list, v)
		}

		return list, nil
	})
}

func (e *Evaluator) Variable(name token.Token) ExpEvaluator {
	return expEvalFunc(func() (any, error) {
		val, ok := e.environment.Get(name.Lexeme)
		if !ok {
			return nil, runtimeErr(name.Line, fmt.Errorf("undefined variable %s", name.Lexeme))
		}

		return val, nil
	})
}

func (e *Evaluator) Var(name token.Token, init ExpEvaluator) StmtEvaluator {
	return stmtEvalFunc(func() error {
		var err error
		var value any
		if init != nil {
			value, err = init.Eval()
		}

		if err != nil {
			return err
		}

		e.environment.Define(name.Lexeme, value)

		return nil
	})
}

func (e *Evaluator) ExprStatement(expr ExpEvaluator) StmtEvaluator {
	return stmtEvalFunc(func() error {
		v, err := expr.Eval()
		if err != nil {
			return err
		}

		if e.echo && v != nil {
			_, err = fmt.Fprintln(e.out, stringify(v))
		}

		return err
	})
}

func (*Evaluator) Literal(value any) ExpEvaluator {
	return expEvalFunc(func() (any, error) {
		return value, nil
	})
}

func (*Evaluator) Grouping(expr ExpEvaluator) ExpEvaluator {
	return expEvalFunc(func() (any, error) {
		return expr.Eval()
	})
}

func (*Evaluator) NilExpr() ExpEvaluator {
	return expEvalFunc(func() (any, error) {
		return nil, ErrNilValue
	})
}

func (*Evaluator) NilStmt() StmtEvaluator {
	return stmtEvalFunc(func() error {
		return ErrNilValue
	})
}
