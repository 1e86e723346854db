package eval

import (
	"fmt"
	"iter"
	"math"
	"slices"

	env "github.com/havrydotdev/myclass/environment"
	"github.com/havrydotdev/myclass/myclass"
)

func newCalcSum() Callable {
	return NewNativeFun("calc_sum", 2, func(e *Evaluator, args []any) (any, error) {
		x, y, err := checkNums("calc_sum", args[0], args[1])
		if err != nil {
			return nil, err
		}

		sum, err := e.class.CalcSum(x, y)
		if err != nil {
			return nil, err
		}

		return sum, nil
	})
}

func newFrobulate() Callable {
	return NewNativeFun("frobulate", 3, func(e *Evaluator, args []any) (any, error) {
		op, ok := args[0].(string)
		if !ok {
			return nil, &myclass.ArgumentError{Op: "frobulate", Arg: stringify(args[0])}
		}

		x, y, err := checkNums("frobulate", args[1], args[2])
		if err != nil {
			return nil, err
		}

		res, err := e.class.Frobulate(op, x, y)
		if err != nil {
			return nil, err
		}

		return res, nil
	})
}

func newWalkList() Callable {
	return NewNativeFun("walk_list", 1, func(e *Evaluator, args []any) (any, error) {
		list, err := checkList("walk_list", args[0])
		if err != nil {
			return nil, err
		}

		return nil, myclass.WalkList(e.out, stringified(list))
	})
}

func newApplyMap() Callable {
	return NewNativeFun("apply_map", 3, func(e *Evaluator, args []any) (any, error) {
		mapfn, err := checkUnary("apply_map", args[0])
		if err != nil {
			return nil, err
		}

		list, err := checkList("apply_map", args[2])
		if err != nil {
			return nil, err
		}

		// natives can fail, ApplyMap can't; keep the first error and
		// reject everything after it
		var callErr error
		mapper := func(v any) any {
			if callErr != nil {
				return nil
			}

			res, err := mapfn.Call(e, []any{v})
			if err != nil {
				callErr = err
			}

			return res
		}

		var filter func(any) bool
		if args[1] != nil {
			filterfn, err := checkUnary("apply_map", args[1])
			if err != nil {
				return nil, err
			}

			filter = func(v any) bool {
				if callErr != nil {
					return false
				}

				res, err := filterfn.Call(e, []any{v})
				if err != nil {
					callErr = err
					return false
				}

				return isTruthy(res)
			}
		}

		mapped := myclass.ApplyMap(slices.Values(list), mapper, filter)
		if callErr != nil {
			return nil, callErr
		}

		return mapped, nil
	})
}

func newPrint() Callable {
	return NewNativeFun("print", 1, func(e *Evaluator, args []any) (any, error) {
		_, err := fmt.Fprintln(e.out, stringify(args[0]))
		return nil, err
	})
}

func newLen() Callable {
	return NewNativeFun("len", 1, func(e *Evaluator, args []any) (any, error) {
		switch v := args[0].(type) {
		case []any:
			return float64(len(v)), nil
		case string:
			return float64(len(v)), nil
		}

		return nil, fmt.Errorf("len: expected list or string, got %s", stringify(args[0]))
	})
}

func numFun(name string, fn func(float64) any) Callable {
	return NewNativeFun(name, 1, func(e *Evaluator, args []any) (any, error) {
		n, err := checkNum(name, args[0])
		if err != nil {
			return nil, err
		}

		return fn(n), nil
	})
}

func stringified(list []any) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, v := range list {
			if !yield(i, stringify(v)) {
				return
			}
		}
	}
}

func newGlobals() *env.Env {
	global := env.New()
	global.Define("calc_sum", newCalcSum())
	global.Define("frobulate", newFrobulate())
	global.Define("walk_list", newWalkList())
	global.Define("apply_map", newApplyMap())
	global.Define("print", newPrint())
	global.Define("len", newLen())

	global.Define("double", numFun("double", func(n float64) any { return n * 2 }))
	global.Define("square", numFun("square", func(n float64) any { return n * n }))
	global.Define("negate", numFun("negate", func(n float64) any { return -n }))
	global.Define("even", numFun("even", func(n float64) any { return math.Mod(n, 2) == 0 }))
	global.Define("odd", numFun("odd", func(n float64) any { return math.Abs(math.Mod(n, 2)) == 1 }))
	global.Define("positive", numFun("positive", func(n float64) any { return n > 0 }))
	global.Define("always", NewNativeFun("always", 1, func(*Evaluator, []any) (any, error) {
		return true, nil
	}))

	return global
}
