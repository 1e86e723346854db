package main

import (
	"bytes"
	_ "embed"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eval "github.com/havrydotdev/myclass/evaluator"
	"github.com/havrydotdev/myclass/myclass"
	"github.com/havrydotdev/myclass/scanner"
)

//go:embed testdata/readme.mc
var readmeScript []byte

//go:embed testdata/readme.out
var readmeOut string

func TestReadmeScript(t *testing.T) {
	tokens, err := scanner.New(string(readmeScript)).Scan()
	require.NoError(t, err)

	var out bytes.Buffer
	e := eval.New(&out)

	stmts, errs := e.Parse(tokens)
	for _, err := range errs {
		t.Error(err)
	}

	require.NoError(t, e.Run(stmts))
	assert.Equal(t, readmeOut, out.String())
}

func TestUnexpectedOperatorStopsScript(t *testing.T) {
	tokens, err := scanner.New("print(1);\nfrobulate(*, 1, 1);\nprint(2);").Scan()
	require.NoError(t, err)

	var out bytes.Buffer
	e := eval.New(&out)

	stmts, errs := e.Parse(tokens)
	require.Empty(t, errs)

	err = e.Run(stmts)
	require.Error(t, err)
	assert.True(t, errors.Is(err, myclass.ErrInvalidArgument))

	var rerr *eval.RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, 2, rerr.Line)
	assert.Equal(t, "1\n", out.String())
}
