package cli

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kmerlath/cluster"
	"github.com/katalvlaran/kmerlath/seqio"
)

func (a *app) clusterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cluster [files...]",
		Short: "Group records sharing at least one minimizer",
		Long: `Group records sharing at least one minimizer

Records are linked when their minimizer sketches intersect; clusters are
the connected groups. Output is tab-separated: cluster number (largest
first), size and comma-separated record ids. Record ids must be unique
across all inputs; later duplicates are skipped with a warning.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.params(cmd)
			if err != nil {
				return err
			}
			files, err := a.inputFiles(args)
			if err != nil {
				return err
			}
			minSize, _ := cmd.Flags().GetInt("min-size")
			a.logParams(p)

			enc, err := p.NewEncoder()
			if err != nil {
				return err
			}

			c := cluster.New()
			for _, file := range files {
				err = seqio.Each(file, func(r *seqio.Record) error {
					if _, err := c.Add(r.ID, enc.Sketch(r.Seq)); err != nil {
						a.log.Warnf("%s: %s", file, err)
					}
					return nil
				})
				if err != nil {
					return err
				}
			}
			a.log.Infof("%s records in %s clusters", humanize.Comma(int64(c.Len())), humanize.Comma(int64(c.NumClusters())))

			fmt.Fprintln(a.out, "cluster\tsize\tmembers")
			for i, cl := range c.Clusters() {
				if len(cl.IDs) < minSize {
					break
				}
				fmt.Fprintf(a.out, "%d\t%d\t%s\n", i+1, len(cl.IDs), strings.Join(cl.IDs, ","))
			}
			return nil
		},
	}
	cmd.Flags().Int("min-size", 1, "only print clusters with at least this many records")
	return cmd
}
