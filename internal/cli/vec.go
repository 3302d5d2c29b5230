package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tmatrix/internal/eval"
	"github.com/katalvlaran/tmatrix/vector"
)

// NewVecCommand creates the vec command: vector operations on stdin operands.
func NewVecCommand(opts *RootOptions) *cobra.Command {
	var (
		size   int
		scalar float64
	)

	cmd := &cobra.Command{
		Use:   "vec <add|sub|mul|dot|equal|scale|shift|unshift>",
		Short: "Evaluate a vector operation",
		Long: "Read one vector of --size values from stdin (two for add, sub, mul\n" +
			"and equal) and print the result. mul is elementwise.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := eval.Op(args[0])
			operand, err := eval.SecondOperand(eval.KindVector, op)
			if err != nil {
				return err
			}

			in := bufio.NewReader(cmd.InOrStdin())
			req := eval.Request{Kind: eval.KindVector, Op: op, Scalar: scalar}
			if req.Vec, err = readVector(in, size); err != nil {
				return fmt.Errorf("first operand: %w", err)
			}
			if operand == eval.OperandVector {
				if req.VecB, err = readVector(in, size); err != nil {
					return fmt.Errorf("second operand: %w", err)
				}
			}

			res, err := eval.Evaluate(req)
			if err != nil {
				return err
			}
			opts.Logger().Debug("evaluated", "kind", eval.KindVector, "op", op, "size", size)

			return res.WriteText(cmd.OutOrStdout(), opts.textOptions()...)
		},
	}

	cmd.Flags().IntVarP(&size, "size", "n", 0, "vector length")
	cmd.Flags().Float64VarP(&scalar, "scalar", "s", 0, "scalar operand for scale, shift and unshift")
	_ = cmd.MarkFlagRequired("size")

	return cmd
}

// readVector reads a vector of n values from in.
func readVector(in *bufio.Reader, n int) (*vector.Vector[float64], error) {
	v, err := vector.New[float64](n)
	if err != nil {
		return nil, err
	}
	if err = v.ReadText(in); err != nil {
		return nil, err
	}

	return v, nil
}
