// Command tmatrix evaluates vector and square matrix operations.
//
//	echo "1 2 3  1 1 1" | tmatrix vec add --size 3
//	echo "1 2 3 4  1 1" | tmatrix mat apply --order 2
//	tmatrix run job.yaml
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/tmatrix/internal/cli"
)

func main() {
	cfg, err := cli.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := cli.Run(cfg, os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
