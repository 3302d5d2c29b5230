package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tmatrix/internal/eval"
)

// NewRunCommand creates the run command: evaluate a YAML job file.
func NewRunCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run <job.yaml|->",
		Short: "Evaluate a YAML job and print the result as YAML",
		Long: "A job names a kind (vector|matrix), an op, operands a and b, and an\n" +
			"optional scalar. Use - to read the job from stdin.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readJob(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			req, err := eval.ParseJob(data)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			res, err := eval.Evaluate(req)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			opts.Logger().Debug("evaluated job", "path", args[0], "kind", req.Kind, "op", req.Op)

			out, err := res.EncodeYAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)

			return err
		},
	}
}

// readJob returns the job document from path, or from stdin when path is "-".
func readJob(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job: %w", err)
	}

	return data, nil
}
