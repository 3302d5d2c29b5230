package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tmatrix/internal/eval"
	"github.com/katalvlaran/tmatrix/matrix"
)

// NewMatCommand creates the mat command: square matrix operations on stdin operands.
func NewMatCommand(opts *RootOptions) *cobra.Command {
	var (
		order  int
		scalar float64
	)

	cmd := &cobra.Command{
		Use:   "mat <add|sub|mul|equal|scale|apply|transpose|trace>",
		Short: "Evaluate a square matrix operation",
		Long: "Read an --order × --order matrix from stdin in row-major order, then\n" +
			"a second matrix (add, sub, mul, equal) or a vector of --order values\n" +
			"(apply), and print the result.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := eval.Op(args[0])
			operand, err := eval.SecondOperand(eval.KindMatrix, op)
			if err != nil {
				return err
			}

			in := bufio.NewReader(cmd.InOrStdin())
			req := eval.Request{Kind: eval.KindMatrix, Op: op, Scalar: scalar}
			if req.Mat, err = readMatrix(in, order); err != nil {
				return fmt.Errorf("first operand: %w", err)
			}
			switch operand {
			case eval.OperandMatrix:
				req.MatB, err = readMatrix(in, order)
			case eval.OperandVector:
				req.Vec, err = readVector(in, order)
			}
			if err != nil {
				return fmt.Errorf("second operand: %w", err)
			}

			res, err := eval.Evaluate(req)
			if err != nil {
				return err
			}
			opts.Logger().Debug("evaluated", "kind", eval.KindMatrix, "op", op, "order", order)

			return res.WriteText(cmd.OutOrStdout(), opts.textOptions()...)
		},
	}

	cmd.Flags().IntVarP(&order, "order", "n", 0, "matrix order (rows = columns)")
	cmd.Flags().Float64VarP(&scalar, "scalar", "s", 0, "scalar operand for scale")
	_ = cmd.MarkFlagRequired("order")

	return cmd
}

// readMatrix reads an n×n matrix from in.
func readMatrix(in *bufio.Reader, n int) (*matrix.Matrix[float64], error) {
	m, err := matrix.New[float64](n)
	if err != nil {
		return nil, err
	}
	if err = m.ReadText(in); err != nil {
		return nil, err
	}

	return m, nil
}
