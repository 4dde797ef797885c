package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/shenwei356/util/pathutil"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/katalvlaran/kmerlath/encoder"
	"github.com/katalvlaran/kmerlath/kmer"
	"github.com/katalvlaran/kmerlath/seqio"
	"github.com/katalvlaran/kmerlath/sketch"
)

func (a *app) sketchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sketch [files...]",
		Short: "Write the minimizer sketch of every input file as .shs",
		Long: `Write the minimizer sketch of every input file as .shs

All records of one file contribute to one sketch: the distinct minimizers,
sorted ascending. Sketches are saved as ${out-dir}/${file}.shs, or .shs.gz
with --compress. Keys must fit in 64 bits.

Output is tab-separated: input file, sketch file, number of keys and the
BLAKE2b-256 digest of the key set.
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
			outDir, _ := cmd.Flags().GetString("out-dir")
			compress, _ := cmd.Flags().GetBool("compress")
			progress, _ := cmd.Flags().GetBool("progress")
			a.logParams(p)

			ok, err := pathutil.DirExists(outDir)
			if err != nil {
				return errors.Wrapf(err, "check %s", outDir)
			}
			if !ok {
				if err = os.MkdirAll(outDir, 0o755); err != nil {
					return errors.Wrapf(err, "create %s", outDir)
				}
			}

			enc, err := p.NewEncoder()
			if err != nil {
				return err
			}

			var pbs *mpb.Progress
			var bar *mpb.Bar
			if progress && len(files) > 1 {
				pbs = mpb.New(mpb.WithWidth(40), mpb.WithOutput(a.errOut))
				bar = pbs.AddBar(int64(len(files)),
					mpb.PrependDecorators(
						decor.Name("processed files: ", decor.WC{W: len("processed files: "), C: decor.DindentRight}),
						decor.Name("", decor.WCSyncSpaceR),
						decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
					),
					mpb.AppendDecorators(
						decor.Name("ETA: ", decor.WC{W: len("ETA: ")}),
						decor.EwmaETA(decor.ET_STYLE_GO, 10),
						decor.OnComplete(decor.Name(""), ". done"),
					),
				)
				defer func() {
					if !bar.Completed() {
						bar.Abort(false)
					}
					pbs.Wait()
				}()
			}

			fmt.Fprintln(a.out, "file\tsketch\tkeys\tdigest")
			for _, file := range files {
				start := time.Now()
				keys, err := a.sketchFile(enc, file)
				if err != nil {
					return err
				}

				name := filepath.Base(file)
				if file == "-" {
					name = "stdin"
				}
				outFile := filepath.Join(outDir, name+".shs")
				if compress {
					outFile += ".gz"
				}
				if err = sketch.WriteFile(outFile, keys); err != nil {
					return err
				}

				digest := sketch.Digest(keys)
				fmt.Fprintf(a.out, "%s\t%s\t%d\t%s\n", file, outFile, len(keys), digest)
				a.log.Infof("%s: %s minimizers saved to %s", file, humanize.Comma(int64(len(keys))), outFile)
				if bar != nil {
					bar.EwmaIncrBy(1, time.Since(start))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringP("out-dir", "O", ".", "output directory")
	cmd.Flags().BoolP("compress", "z", false, "gzip the sketch files")
	return cmd
}

// sketchFile returns the normalized minimizers of all records of file.
func (a *app) sketchFile(enc *encoder.Encoder, file string) ([]uint64, error) {
	var all []kmer.Key
	err := seqio.Each(file, func(r *seqio.Record) error {
		if len(r.Seq) < enc.Spacer().Length() {
			a.log.Warnf("skip %s in %s: shorter than seed length", r.ID, file)
			return nil
		}
		all = append(all, enc.Sketch(r.Seq)...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	keys, err := sketch.FromKeys(all)
	if err != nil {
		return nil, errors.Wrapf(err, "sketch %s", file)
	}
	return sketch.Normalize(keys), nil
}

func (a *app) compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a.shs> <b.shs> [more.shs...]",
		Short: "Print pairwise Jaccard similarity of .shs sketches",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := a.inputFiles(args)
			if err != nil {
				return err
			}
			sets := make([][]uint64, len(files))
			for i, file := range files {
				keys, err := sketch.ReadFile(file)
				if err != nil {
					return err
				}
				sets[i] = sketch.Normalize(keys)
				a.log.Debugf("%s: %d keys", file, len(sets[i]))
			}

			fmt.Fprintln(a.out, "a\tb\tjaccard")
			for i := range files {
				for j := i + 1; j < len(files); j++ {
					fmt.Fprintf(a.out, "%s\t%s\t%.6f\n", files[i], files[j], sketch.Jaccard(sets[i], sets[j]))
				}
			}
			return nil
		},
	}
}
