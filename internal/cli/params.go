package cli

import (
	"github.com/pkg/errors"
	"github.com/shenwei356/util/pathutil"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kmerlath/config"
)

func addParamFlags(root *cobra.Command) {
	d := config.Default()
	pf := root.PersistentFlags()
	pf.StringP("mode", "m", d.Mode, "residue-handling mode")
	pf.IntP("kmer-len", "k", d.K, "number of retained symbols per seed")
	pf.IntSlice("skips", nil, "skipped bases after each retained symbol, e.g. 1,2,18")
	pf.IntP("window", "W", d.Window, "minimizer window in bases, 0 for one seed")
	pf.Int("width", d.Width, "key width in bits: 32, 64 or 128")
	pf.String("score", d.Score, "minimizer order: lex, revlex or hash")
	pf.Uint64("hash-seed", d.Seed, "seed for --score hash")
}

// params loads --config over the defaults, then applies flags that were
// set explicitly.
func (a *app) params(cmd *cobra.Command) (config.Params, error) {
	p := config.Default()
	fs := cmd.Flags()

	if file, _ := fs.GetString("config"); file != "" {
		ok, err := pathutil.Exists(file)
		if err != nil {
			return p, errors.Wrapf(err, "check %s", file)
		}
		if !ok {
			return p, errors.Errorf("config file not found: %s", file)
		}
		if p, err = config.Load(file); err != nil {
			return p, err
		}
		a.log.Debugf("loaded parameters from %s", file)
	}

	if fs.Changed("mode") {
		p.Mode, _ = fs.GetString("mode")
	}
	if fs.Changed("kmer-len") {
		p.K, _ = fs.GetInt("kmer-len")
	}
	if fs.Changed("skips") {
		p.Skips, _ = fs.GetIntSlice("skips")
	}
	if fs.Changed("window") {
		p.Window, _ = fs.GetInt("window")
	}
	if fs.Changed("width") {
		p.Width, _ = fs.GetInt("width")
	}
	if fs.Changed("score") {
		p.Score, _ = fs.GetString("score")
	}
	if fs.Changed("hash-seed") {
		p.Seed, _ = fs.GetUint64("hash-seed")
	}
	return p, p.Validate()
}

// logParams prints the main parameters at info level.
func (a *app) logParams(p config.Params) {
	a.log.Infof("-------------------- [main parameters] --------------------")
	a.log.Infof("mode: %s, key width: %d", p.Mode, p.Width)
	a.log.Infof("k: %d, skips: %v", p.K, p.Skips)
	a.log.Infof("minimizer window: %d, score: %s", p.Window, p.Score)
	a.log.Infof("-------------------- [main parameters] --------------------")
}

// inputFiles returns args, or "-" for standard input, after checking that
// every named file exists.
func (a *app) inputFiles(args []string) ([]string, error) {
	if len(args) == 0 {
		a.log.Info("no files given, reading from stdin")
		return []string{"-"}, nil
	}
	for _, file := range args {
		if file == "-" {
			continue
		}
		ok, err := pathutil.Exists(file)
		if err != nil {
			return nil, errors.Wrapf(err, "check %s", file)
		}
		if !ok {
			return nil, errors.Errorf("input file not found: %s", file)
		}
	}
	a.log.Debugf("%d input file(s) given", len(args))
	return args, nil
}
