// SPDX-License-Identifier: MIT

package eval

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tmatrix/yamlio"
)

// Job is the YAML form of a Request:
//
//	kind: matrix
//	op: apply
//	a: [[1, 2], [3, 4]]
//	b: [1, 1]
//
// For vector jobs a and b are vectors. For matrix jobs a is a matrix and b
// is a matrix, or a vector when op is apply. scalar feeds scale/shift/unshift.
// transpose and trace take no b.
type Job struct {
	Kind   Kind      `yaml:"kind"`
	Op     Op        `yaml:"op"`
	A      yaml.Node `yaml:"a"`
	B      yaml.Node `yaml:"b"`
	Scalar float64   `yaml:"scalar"`
}

// ParseJob decodes a YAML job document into a Request.
func ParseJob(data []byte) (Request, error) {
	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return Request{}, fmt.Errorf("eval: job: %w", err)
	}

	return job.Request()
}

// Request resolves the job's YAML operands into typed containers.
func (j Job) Request() (Request, error) {
	operand, err := SecondOperand(j.Kind, j.Op)
	if err != nil {
		return Request{}, err
	}
	req := Request{Kind: j.Kind, Op: j.Op, Scalar: j.Scalar}

	if j.A.Kind == 0 {
		return Request{}, fmt.Errorf("%s %s: a: %w", j.Kind, j.Op, ErrMissingOperand)
	}
	if j.Kind == KindVector {
		if req.Vec, err = yamlio.DecodeVector[float64](&j.A); err != nil {
			return Request{}, fmt.Errorf("a: %w", err)
		}
	} else {
		if req.Mat, err = yamlio.DecodeMatrix[float64](&j.A); err != nil {
			return Request{}, fmt.Errorf("a: %w", err)
		}
	}

	if operand == OperandScalar || operand == OperandNone {
		return req, nil
	}
	if j.B.Kind == 0 {
		return Request{}, fmt.Errorf("%s %s: b: %w", j.Kind, j.Op, ErrMissingOperand)
	}
	switch {
	case operand == OperandMatrix:
		req.MatB, err = yamlio.DecodeMatrix[float64](&j.B)
	case j.Kind == KindVector:
		req.VecB, err = yamlio.DecodeVector[float64](&j.B)
	default:
		req.Vec, err = yamlio.DecodeVector[float64](&j.B)
	}
	if err != nil {
		return Request{}, fmt.Errorf("b: %w", err)
	}

	return req, nil
}

// output is the YAML document written for a Result.
type output struct {
	Kind   string     `yaml:"kind"`
	Result *yaml.Node `yaml:"result"`
}

// EncodeYAML renders r as a YAML document with its kind and value.
func (r Result) EncodeYAML() ([]byte, error) {
	var (
		out output
		err error
	)
	switch {
	case r.Vector != nil:
		out.Kind = string(KindVector)
		out.Result, err = yamlio.VectorNode(r.Vector)
	case r.Matrix != nil:
		out.Kind = string(KindMatrix)
		out.Result, err = yamlio.MatrixNode(r.Matrix)
	case r.Scalar != nil:
		out.Kind = "scalar"
		out.Result = &yaml.Node{}
		err = out.Result.Encode(*r.Scalar)
	case r.Equal != nil:
		out.Kind = "bool"
		out.Result = &yaml.Node{}
		err = out.Result.Encode(*r.Equal)
	default:
		return nil, fmt.Errorf("eval: empty result")
	}
	if err != nil {
		return nil, err
	}

	return yaml.Marshal(out)
}
