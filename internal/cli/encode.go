package cli

import (
	"bufio"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kmerlath/seqio"
)

func (a *app) encodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [files...]",
		Short: "Print the packed seeds or minimizers of every record",
		Long: `Print the packed seeds or minimizers of every record

Output is tab-separated: record id, position, key in hex and the seed
rendered with '-' at skipped bases. With --minimizers the position is the
window start. Seeds with ambiguous symbols are omitted unless --all is set.
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
			minimizers, _ := cmd.Flags().GetBool("minimizers")
			all, _ := cmd.Flags().GetBool("all")
			a.logParams(p)

			enc, err := p.NewEncoder()
			if err != nil {
				return err
			}
			sp, mode := enc.Spacer(), enc.Mode()

			w := bufio.NewWriter(a.out)
			defer w.Flush()
			fmt.Fprintln(w, "id\tpos\tkey\tseed")

			var nRecords, nKeys uint64
			for _, file := range files {
				start := time.Now()
				err = seqio.Each(file, func(r *seqio.Record) error {
					nRecords++
					if len(r.Seq) < sp.Length() {
						a.log.Warnf("skip %s: %d bases shorter than seed length %d", r.ID, len(r.Seq), sp.Length())
						return nil
					}
					stream := enc.Kmers(r.Seq)
					if minimizers {
						stream = enc.Minimizers(r.Seq)
					}
					for pos, key := range stream {
						if key == enc.Invalid() {
							if all {
								fmt.Fprintf(w, "%s\t%d\t-\t-\n", r.ID, pos)
							}
							continue
						}
						nKeys++
						fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", r.ID, pos, key, sp.Render(key, mode))
					}
					return nil
				})
				if err != nil {
					return err
				}
				a.log.Debugf("%s done in %s", file, time.Since(start))
			}
			a.log.Infof("%s keys from %s records", humanize.Comma(int64(nKeys)), humanize.Comma(int64(nRecords)))
			return nil
		},
	}
	cmd.Flags().Bool("minimizers", false, "print window minimizers instead of every seed")
	cmd.Flags().Bool("all", false, "also print positions of ambiguous seeds")
	return cmd
}
