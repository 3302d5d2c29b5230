// SPDX-License-Identifier: MIT

// Package yamlio encodes vectors and matrices as YAML documents.
//
// A vector is a YAML sequence of numbers, a matrix a sequence of equally long
// sequences:
//
//	[1, 2, 3]
//	[[1, 0], [0, 1]]
//
// Decoding goes through the container constructors, so size limits and
// squareness are enforced with the usual sentinels (vector.ErrInvalidSize,
// matrix.ErrSizeMismatch, ...). Complex element types have no YAML form.
package yamlio

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tmatrix/matrix"
	"github.com/katalvlaran/tmatrix/vector"
)

// ErrNotSequence indicates a YAML node that is not a sequence where one is required.
var ErrNotSequence = errors.New("yamlio: expected a YAML sequence")

// MarshalVector encodes v as a flow sequence.
func MarshalVector[T vector.Number](v *vector.Vector[T]) ([]byte, error) {
	n, err := VectorNode(v)
	if err != nil {
		return nil, err
	}

	return yaml.Marshal(n)
}

// MarshalMatrix encodes m as a block sequence of flow-sequence rows.
func MarshalMatrix[T vector.Number](m *matrix.Matrix[T]) ([]byte, error) {
	n, err := MatrixNode(m)
	if err != nil {
		return nil, err
	}

	return yaml.Marshal(n)
}

// UnmarshalVector decodes a YAML sequence into a new vector.
func UnmarshalVector[T vector.Number](data []byte) (*vector.Vector[T], error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yamlio: %w", err)
	}

	return DecodeVector[T](documentRoot(&doc))
}

// UnmarshalMatrix decodes a YAML sequence of sequences into a new matrix.
func UnmarshalMatrix[T vector.Number](data []byte) (*matrix.Matrix[T], error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yamlio: %w", err)
	}

	return DecodeMatrix[T](documentRoot(&doc))
}

// VectorNode builds the flow-sequence node for v.
func VectorNode[T vector.Number](v *vector.Vector[T]) (*yaml.Node, error) {
	if v == nil {
		return nil, fmt.Errorf("yamlio: %w", vector.ErrNilSource)
	}
	var n yaml.Node
	if err := n.Encode(v.Values()); err != nil {
		return nil, fmt.Errorf("yamlio: %w", err)
	}
	n.Style = yaml.FlowStyle

	return &n, nil
}

// MatrixNode builds a block sequence whose items are flow-sequence rows.
func MatrixNode[T vector.Number](m *matrix.Matrix[T]) (*yaml.Node, error) {
	if m == nil {
		return nil, fmt.Errorf("yamlio: %w", matrix.ErrNilSource)
	}
	var n yaml.Node
	if err := n.Encode(m.Values()); err != nil {
		return nil, fmt.Errorf("yamlio: %w", err)
	}
	for _, row := range n.Content {
		row.Style = yaml.FlowStyle
	}

	return &n, nil
}

// DecodeVector decodes a sequence node into a new vector.
func DecodeVector[T vector.Number](n *yaml.Node) (*vector.Vector[T], error) {
	if n == nil || n.Kind != yaml.SequenceNode {
		return nil, ErrNotSequence
	}
	var vals []T
	if err := n.Decode(&vals); err != nil {
		return nil, fmt.Errorf("yamlio: line %d: %w", n.Line, err)
	}

	return vector.Of(vals...)
}

// DecodeMatrix decodes a sequence-of-sequences node into a new matrix.
func DecodeMatrix[T vector.Number](n *yaml.Node) (*matrix.Matrix[T], error) {
	if n == nil || n.Kind != yaml.SequenceNode {
		return nil, ErrNotSequence
	}
	rows := make([][]T, 0, len(n.Content))
	for _, item := range n.Content {
		if item.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("yamlio: line %d: %w", item.Line, ErrNotSequence)
		}
		var row []T
		if err := item.Decode(&row); err != nil {
			return nil, fmt.Errorf("yamlio: line %d: %w", item.Line, err)
		}
		if row == nil {
			row = []T{}
		}
		rows = append(rows, row)
	}

	return matrix.FromRows(rows)
}

// documentRoot unwraps a DocumentNode to its single content node.
func documentRoot(doc *yaml.Node) *yaml.Node {
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		return doc.Content[0]
	}

	return doc
}
