// SPDX-License-Identifier: MIT

package eval_test

import (
	"testing"

	"github.com/katalvlaran/tmatrix/internal/eval"
	"github.com/katalvlaran/tmatrix/matrix"
	"github.com/katalvlaran/tmatrix/yamlio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJob_MatrixApply(t *testing.T) {
	req, err := eval.ParseJob([]byte(`
kind: matrix
op: apply
a: [[1, 2], [3, 4]]
b: [1, 1]
`))
	require.NoError(t, err)
	require.NotNil(t, req.Mat)
	require.NotNil(t, req.Vec)

	res, err := eval.Evaluate(req)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7}, res.Vector.Values())
}

func TestParseJob_VectorScalar(t *testing.T) {
	req, err := eval.ParseJob([]byte("kind: vector\nop: shift\na: [1, 1, 1, 1, 1]\nscalar: 1\n"))
	require.NoError(t, err)

	res, err := eval.Evaluate(req)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2, 2, 2, 2}, res.Vector.Values())
}

func TestParseJob_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown kind", "kind: tensor\nop: add\na: [1]\n", eval.ErrUnknownKind},
		{"unknown op", "kind: vector\nop: apply\na: [1]\nb: [1]\n", eval.ErrUnknownOp},
		{"missing a", "kind: vector\nop: scale\n", eval.ErrMissingOperand},
		{"missing b", "kind: matrix\nop: add\na: [[1]]\n", eval.ErrMissingOperand},
		{"jagged", "kind: matrix\nop: scale\na: [[1, 2], [3]]\n", matrix.ErrSizeMismatch},
		{"not a sequence", "kind: vector\nop: scale\na: 3\n", yamlio.ErrNotSequence},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := eval.ParseJob([]byte(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestResult_EncodeYAML(t *testing.T) {
	res, err := eval.Evaluate(eval.Request{Kind: eval.KindVector, Op: eval.OpScale, Vec: vec(t, 1, 2), Scalar: 2})
	require.NoError(t, err)
	out, err := res.EncodeYAML()
	require.NoError(t, err)
	assert.Equal(t, "kind: vector\nresult: [2, 4]\n", string(out))

	eq := false
	out, err = eval.Result{Equal: &eq}.EncodeYAML()
	require.NoError(t, err)
	assert.Equal(t, "kind: bool\nresult: false\n", string(out))

	_, err = eval.Result{}.EncodeYAML()
	assert.Error(t, err)
}

func TestParseJob_NoSecondOperand(t *testing.T) {
	req, err := eval.ParseJob([]byte("kind: matrix\nop: trace\na: [[1, 2], [3, 4]]\n"))
	require.NoError(t, err)
	assert.Nil(t, req.MatB)
	assert.Nil(t, req.Vec)

	res, err := eval.Evaluate(req)
	require.NoError(t, err)
	out, err := res.EncodeYAML()
	require.NoError(t, err)
	assert.Equal(t, "kind: scalar\nresult: 5\n", string(out))
}
