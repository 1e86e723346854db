package eval

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/havrydotdev/myclass/myclass"
	"github.com/havrydotdev/myclass/scanner"
)

func run(t *testing.T, source string, opts ...Option) (string, error) {
	t.Helper()

	tokens, err := scanner.New(source).Scan()
	require.NoError(t, err)

	var out bytes.Buffer
	e := New(&out, opts...)

	stmts, errs := e.Parse(tokens)
	require.Empty(t, errs)

	err = e.Run(stmts)
	return out.String(), err
}

func TestArithmetic(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{`calc_sum(2, 3)`, "5\n"},
		{`calc_sum(-2.5, 1)`, "-1.5\n"},
		{`frobulate(+, 2, 3)`, "5\n"},
		{`frobulate("-", 10, 4)`, "6\n"},
		{`frobulate(-, 4, 10)`, "-6\n"},
		{`frobulate(-, -4, -10)`, "6\n"},
		{`var x = calc_sum(1, 1); frobulate(+, x, x)`, "4\n"},
	}
	for _, tc := range cases {
		got, err := run(t, tc.input, WithEcho(true))
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, got, tc.input)
	}
}

func TestFrobulateRejectsOperator(t *testing.T) {
	cases := []struct {
		input string
		arg   string
	}{
		{`frobulate(*, 1, 1)`, "*"},
		{`frobulate("/", 1, 1)`, "/"},
		{`frobulate("times", 1, 1)`, "times"},
		{`frobulate(7, 1, 1)`, "7"},
	}
	for _, tc := range cases {
		_, err := run(t, tc.input)
		require.Error(t, err, tc.input)
		assert.True(t, errors.Is(err, myclass.ErrInvalidArgument), tc.input)

		var argErr *myclass.ArgumentError
		require.ErrorAs(t, err, &argErr)
		assert.Equal(t, tc.arg, argErr.Arg)

		var rerr *RuntimeError
		require.ErrorAs(t, err, &rerr)
		assert.Equal(t, 1, rerr.Line)
	}
}

func TestWalkList(t *testing.T) {
	got, err := run(t, `walk_list(["a", 2, [1, 2], nil])`)
	require.NoError(t, err)
	assert.Equal(t, "index: 0 strg: a\nindex: 1 strg: 2\nindex: 2 strg: [1, 2]\nindex: 3 strg: nil\n", got)
}

func TestApplyMap(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{`print(apply_map(double, even, [1, 2, 3, 4]))`, "[4, 8]\n"},
		{`print(apply_map(square, nil, [1, 2, 3]))`, "[1, 4, 9]\n"},
		{`print(apply_map(negate, positive, [-1, 0, 5]))`, "[-5]\n"},
		{`print(apply_map(len, always, ["ab", [1]]))`, "[2, 1]\n"},
		{`print(apply_map(double, odd, []))`, "[]\n"},
	}
	for _, tc := range cases {
		got, err := run(t, tc.input)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, got, tc.input)
	}
}

func TestRuntimeErrors(t *testing.T) {
	cases := []struct {
		input string
		msg   string
	}{
		{`nope(1)`, "line 1: undefined variable nope"},
		{"\n\"str\"(1)", "line 2: str is not callable"},
		{`calc_sum(1)`, "line 1: <native fn calc_sum>: expected 2 arguments, got 1"},
		{`calc_sum("a", 1)`, "line 1: calc_sum: expected number, got a"},
		{`walk_list(1)`, "line 1: walk_list: expected list, got 1"},
		{`apply_map(1, nil, [])`, "line 1: apply_map: 1 is not callable"},
		{`apply_map(calc_sum, nil, [])`, "line 1: apply_map: <native fn calc_sum> must take 1 argument, takes 2"},
		{`apply_map(double, nil, [1, "x", 3])`, "line 1: double: expected number, got x"},
		{`apply_map(double, even, ["x"])`, "line 1: even: expected number, got x"},
		{`len(true)`, "line 1: len: expected list or string, got true"},
	}
	for _, tc := range cases {
		_, err := run(t, tc.input)
		assert.EqualError(t, err, tc.msg, tc.input)
	}
}

func TestRunStopsAtFirstError(t *testing.T) {
	got, err := run(t, `print(1); frobulate(*, 1, 1); print(2);`)
	require.Error(t, err)
	assert.Equal(t, "1\n", got)
}

func TestEchoSkipsNil(t *testing.T) {
	got, err := run(t, `print("hi"); nil; var y = 1; y`, WithEcho(true))
	require.NoError(t, err)
	assert.Equal(t, "hi\n1\n", got)
}

func TestNames(t *testing.T) {
	var out bytes.Buffer
	e := New(&out)
	assert.Contains(t, e.Names(), "frobulate")
	assert.Contains(t, e.Names(), "calc_sum")
	assert.NotContains(t, e.Names(), "x")
}
