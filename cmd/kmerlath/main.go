// Command kmerlath encodes sequences into spaced-seed k-mers and minimizer
// sketches, and clusters records by shared minimizers.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/kmerlath/internal/cli"
)

func main() {
	checkError(cli.NewRootCmd(os.Stdout, os.Stderr).Execute())
}

func checkError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
