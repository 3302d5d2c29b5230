// SPDX-License-Identifier: MIT

// Package eval maps named operations onto the vector and matrix APIs for
// float64 operands. It is the single dispatch table shared by the text and
// YAML front ends of cmd/tmatrix.
package eval

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/tmatrix/matrix"
	"github.com/katalvlaran/tmatrix/textio"
	"github.com/katalvlaran/tmatrix/vector"
)

var (
	// ErrUnknownKind indicates a kind other than "vector" or "matrix".
	ErrUnknownKind = errors.New("eval: unknown kind")

	// ErrUnknownOp indicates an operation not defined for the kind.
	ErrUnknownOp = errors.New("eval: unknown operation")

	// ErrMissingOperand indicates that an operand required by the operation is absent.
	ErrMissingOperand = errors.New("eval: missing operand")
)

// Kind selects the container family an operation runs on.
type Kind string

const (
	KindVector Kind = "vector"
	KindMatrix Kind = "matrix"
)

// Op names an operation.
type Op string

const (
	OpAdd       Op = "add"       // vector+vector, matrix+matrix
	OpSub       Op = "sub"       // vector-vector, matrix-matrix
	OpMul       Op = "mul"       // Hadamard for vectors, matrix product for matrices
	OpEqual     Op = "equal"     // equality of two operands of the same kind
	OpScale     Op = "scale"     // multiply by scalar
	OpShift     Op = "shift"     // add scalar (vectors only)
	OpUnshift   Op = "unshift"   // subtract scalar (vectors only)
	OpApply     Op = "apply"     // matrix × vector
	OpDot       Op = "dot"       // inner product of two vectors
	OpTranspose Op = "transpose" // matrix transpose
	OpTrace     Op = "trace"     // sum of the matrix diagonal
)

// Operand describes what an operation takes besides the first operand.
type Operand int

const (
	OperandScalar Operand = iota // the scalar field
	OperandVector                // a second vector
	OperandMatrix                // a second matrix
	OperandNone                  // nothing
)

// table lists the second operand for every supported (kind, op) pair.
var table = map[Kind]map[Op]Operand{
	KindVector: {
		OpAdd:     OperandVector,
		OpSub:     OperandVector,
		OpMul:     OperandVector,
		OpEqual:   OperandVector,
		OpScale:   OperandScalar,
		OpShift:   OperandScalar,
		OpUnshift: OperandScalar,
		OpDot:     OperandVector,
	},
	KindMatrix: {
		OpAdd:       OperandMatrix,
		OpSub:       OperandMatrix,
		OpMul:       OperandMatrix,
		OpEqual:     OperandMatrix,
		OpScale:     OperandScalar,
		OpApply:     OperandVector,
		OpTranspose: OperandNone,
		OpTrace:     OperandNone,
	},
}

// SecondOperand reports which operand op needs after the first one.
func SecondOperand(kind Kind, op Op) (Operand, error) {
	ops, ok := table[kind]
	if !ok {
		return 0, fmt.Errorf("%q: %w", kind, ErrUnknownKind)
	}
	operand, ok := ops[op]
	if !ok {
		return 0, fmt.Errorf("%s %q: %w", kind, op, ErrUnknownOp)
	}

	return operand, nil
}

// Request carries the operands of one evaluation. Only the fields needed by
// (Kind, Op) are read.
type Request struct {
	Kind   Kind
	Op     Op
	Vec    *vector.Vector[float64] // first operand (vector kind) or second (matrix apply)
	VecB   *vector.Vector[float64] // second vector operand (vector kind)
	Mat    *matrix.Matrix[float64] // first operand (matrix kind)
	MatB   *matrix.Matrix[float64] // second matrix operand
	Scalar float64
}

// Result holds exactly one of Vector, Matrix, Scalar or Equal.
type Result struct {
	Vector *vector.Vector[float64]
	Matrix *matrix.Matrix[float64]
	Scalar *float64
	Equal  *bool
}

// Evaluate runs req and returns its result.
func Evaluate(req Request) (Result, error) {
	operand, err := SecondOperand(req.Kind, req.Op)
	if err != nil {
		return Result{}, err
	}
	if req.Kind == KindVector {
		return evalVector(req, operand)
	}

	return evalMatrix(req, operand)
}

func evalVector(req Request, operand Operand) (Result, error) {
	a := req.Vec
	if a == nil || (operand == OperandVector && req.VecB == nil) {
		return Result{}, fmt.Errorf("vector %s: %w", req.Op, ErrMissingOperand)
	}

	var (
		out *vector.Vector[float64]
		err error
	)
	switch req.Op {
	case OpAdd:
		out, err = a.Add(req.VecB)
	case OpSub:
		out, err = a.Sub(req.VecB)
	case OpMul:
		out, err = a.Mul(req.VecB)
	case OpEqual:
		eq := a.Equal(req.VecB)
		return Result{Equal: &eq}, nil
	case OpScale:
		out = a.MulScalar(req.Scalar)
	case OpShift:
		out = a.AddScalar(req.Scalar)
	case OpUnshift:
		out = a.SubScalar(req.Scalar)
	case OpDot:
		x, err := a.Dot(req.VecB)
		if err != nil {
			return Result{}, err
		}
		return Result{Scalar: &x}, nil
	}
	if err != nil {
		return Result{}, err
	}

	return Result{Vector: out}, nil
}

func evalMatrix(req Request, operand Operand) (Result, error) {
	a := req.Mat
	switch {
	case a == nil,
		operand == OperandMatrix && req.MatB == nil,
		operand == OperandVector && req.Vec == nil:
		return Result{}, fmt.Errorf("matrix %s: %w", req.Op, ErrMissingOperand)
	}

	var (
		out *matrix.Matrix[float64]
		err error
	)
	switch req.Op {
	case OpAdd:
		out, err = a.Add(req.MatB)
	case OpSub:
		out, err = a.Sub(req.MatB)
	case OpMul:
		out, err = a.Mul(req.MatB)
	case OpEqual:
		eq := a.Equal(req.MatB)
		return Result{Equal: &eq}, nil
	case OpScale:
		out, err = a.MulScalar(req.Scalar)
	case OpApply:
		v, err := a.MulVector(req.Vec)
		if err != nil {
			return Result{}, err
		}
		return Result{Vector: v}, nil
	case OpTranspose:
		out, err = a.Transpose()
	case OpTrace:
		x, err := a.Trace()
		if err != nil {
			return Result{}, err
		}
		return Result{Scalar: &x}, nil
	}
	if err != nil {
		return Result{}, err
	}

	return Result{Matrix: out}, nil
}

// WriteText renders the result in the container text format: a vector on
// one line, a matrix one row per line, a scalar with the configured verb,
// equality as true/false.
func (r Result) WriteText(w io.Writer, opts ...textio.Option) error {
	switch {
	case r.Vector != nil:
		all := append([]textio.Option{textio.WithTerminator("\n")}, opts...)
		return r.Vector.WriteText(w, all...)
	case r.Matrix != nil:
		return r.Matrix.WriteText(w, opts...)
	case r.Scalar != nil:
		_, err := fmt.Fprintf(w, textio.Gather(opts...).Verb()+"\n", *r.Scalar)
		return err
	case r.Equal != nil:
		_, err := fmt.Fprintln(w, *r.Equal)
		return err
	}

	return nil
}
