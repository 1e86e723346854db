package eval

import (
	"fmt"
	"strconv"
	"strings"
)

func isTruthy(value any) bool {
	if value == nil {
		return false
	}

	val, ok := value.(bool)
	if ok {
		return val
	}

	return true
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, stringify(item))
		}

		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprintf("%v", v)
	}
}

func checkNum(fn string, value any) (float64, error) {
	n, ok := value.(float64)
	if !ok {
		return 0, fmt.Errorf("%s: expected number, got %s", fn, stringify(value))
	}

	return n, nil
}

func checkNums(fn string, left, right any) (float64, float64, error) {
	l, err := checkNum(fn, left)
	if err != nil {
		return 0, 0, err
	}

	r, err := checkNum(fn, right)
	if err != nil {
		return 0, 0, err
	}

	return l, r, nil
}

func checkList(fn string, value any) ([]any, error) {
	list, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected list, got %s", fn, stringify(value))
	}

	return list, nil
}

func checkUnary(fn string, value any) (Callable, error) {
	c, ok := value.(Callable)
	if !ok {
		return nil, fmt.Errorf("%s: %s is not callable", fn, stringify(value))
	}

	if c.Arity() != 1 {
		return nil, fmt.Errorf("%s: %s must take 1 argument, takes %d", fn, c, c.Arity())
	}

	return c, nil
}
