// Package cli implements the kmerlath command line.
package cli

import (
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app carries the per-invocation logger and streams.
type app struct {
	log    *log.Logger
	out    io.Writer
	errOut io.Writer
}

// NewRootCmd builds the command tree writing results to out and logs and
// progress to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{log: log.New(), out: out, errOut: errOut}
	a.log.SetOutput(errOut)
	a.log.SetFormatter(&log.TextFormatter{FullTimestamp: true, DisableColors: true})

	root := &cobra.Command{
		Use:   "kmerlath",
		Short: "Spaced-seed k-mers, minimizer sketches and sketch clustering",
		Long: `Spaced-seed k-mers, minimizer sketches and sketch clustering

Seeds and minimizers are configured with -k, --skips, --window, --mode,
--width and --score, or with a TOML file given by --config. Flags given
explicitly override the file.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.log.SetLevel(log.InfoLevel)
			if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
				a.log.SetLevel(log.WarnLevel)
			}
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				a.log.SetLevel(log.DebugLevel)
			}
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringP("config", "c", "", "TOML parameter file")
	pf.BoolP("verbose", "v", false, "print debug messages")
	pf.BoolP("quiet", "q", false, "only print warnings and errors")
	pf.Bool("progress", false, "show a progress bar when reading several files")
	addParamFlags(root)

	root.AddCommand(
		a.alphabetsCmd(),
		a.encodeCmd(),
		a.sketchCmd(),
		a.compareCmd(),
		a.clusterCmd(),
	)
	return root
}
