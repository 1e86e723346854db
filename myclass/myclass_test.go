package myclass

import (
	"bytes"
	"errors"
	"maps"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcSum(t *testing.T) {
	c := New[int]()
	cases := []struct{ x, y, want int }{
		{0, 0, 0},
		{2, 3, 5},
		{-7, 4, -3},
		{1 << 20, 1 << 20, 1 << 21},
	}
	for _, tc := range cases {
		got, err := c.CalcSum(tc.x, tc.y)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "CalcSum(%d, %d)", tc.x, tc.y)
	}
}

func TestCalcSumFloat(t *testing.T) {
	got, err := New[float64]().CalcSum(0.5, 0.25)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, got, 1e-12)
}

func TestFrobulate(t *testing.T) {
	c := New[int64]()
	cases := []struct {
		op   string
		x, y int64
		want int64
	}{
		{"+", 2, 3, 5},
		{"-", 10, 4, 6},
		{"-", 4, 10, -6},
		{"+", -1, 1, 0},
	}
	for _, tc := range cases {
		got, err := c.Frobulate(tc.op, tc.x, tc.y)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Frobulate(%q, %d, %d)", tc.op, tc.x, tc.y)
	}
}

func TestFrobulateUnknownOp(t *testing.T) {
	c := New[int]()
	for _, op := range []string{"*", "/", "", "++", "plus"} {
		_, err := c.Frobulate(op, 1, 1)
		require.Error(t, err, "op %q", op)
		assert.True(t, errors.Is(err, ErrInvalidArgument))

		var argErr *ArgumentError
		require.ErrorAs(t, err, &argErr)
		assert.Equal(t, op, argErr.Arg)
		assert.Contains(t, err.Error(), "unexpected argument "+op)
	}
}

func TestWalkList(t *testing.T) {
	var buf bytes.Buffer
	err := WalkList(&buf, slices.All([]string{"a", "bc"}))
	require.NoError(t, err)
	assert.Equal(t, "index: 0 strg: a\nindex: 1 strg: bc\n", buf.String())
}

func TestWalkListEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WalkList(&buf, slices.All([]int(nil))))
	assert.Empty(t, buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWalkListWriteError(t *testing.T) {
	err := WalkList(failWriter{}, slices.All([]int{1}))
	assert.EqualError(t, err, "closed")
}

func TestApplyMap(t *testing.T) {
	double := func(n int) int { return n * 2 }
	even := func(n int) bool { return n%2 == 0 }

	cases := []struct {
		name   string
		in     []int
		filter func(int) bool
		want   []int
	}{
		{"filtered", []int{1, 2, 3, 4}, even, []int{4, 8}},
		{"nil filter keeps all", []int{1, 2}, nil, []int{2, 4}},
		{"empty", nil, even, []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ApplyMap(slices.Values(tc.in), double, tc.filter)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ApplyMap mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyMapChangesType(t *testing.T) {
	names := map[int]string{1: "one", 2: "two", 3: "three"}
	got := ApplyMap(maps.Keys(names), func(n int) string { return names[n] }, func(n int) bool { return n != 2 })
	slices.Sort(got)
	assert.Equal(t, []string{"one", "three"}, got)
}
