// Package config holds the encoding parameters shared by the CLI
// subcommands and their TOML file form.
//
// Example file:
//
//	mode = "DNA"
//	k = 31
//	skips = [1, 2, 18]
//	window = 100
//	width = 64
//	score = "hash"
//	hash-seed = 11
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/kmerlath/encoder"
	"github.com/katalvlaran/kmerlath/kmer"
	"github.com/katalvlaran/kmerlath/rhtraits"
	"github.com/katalvlaran/kmerlath/spacer"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid parameters")

// Params are the seed, mode and minimizer settings of one run.
type Params struct {
	Mode   string `toml:"mode" comment:"Residue-handling mode, see 'kmerlath alphabets'"`
	K      int    `toml:"k" comment:"Retained symbols per seed (k-mer length)"`
	Skips  []int  `toml:"skips" comment:"Gaps after each retained symbol but the last, empty for contiguous"`
	Window int    `toml:"window" comment:"Minimizer window in bases, 0 for one seed"`
	Width  int    `toml:"width" comment:"Key width in bits: 32, 64 or 128"`
	Score  string `toml:"score" comment:"Minimizer order: lex, revlex or hash"`
	Seed   uint64 `toml:"hash-seed" comment:"Seed of the hash score"`
}

// Default returns contiguous DNA 31-mers, 64-bit keys, lexical order.
func Default() Params {
	return Params{
		Mode:  rhtraits.DNA.String(),
		K:     31,
		Width: kmer.Width64,
		Score: "lex",
	}
}

// Load reads path over Default. Unknown keys are rejected.
func Load(path string) (Params, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("config: %w", err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err = dec.Decode(&p); err != nil {
		return p, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return p, p.Validate()
}

// Save writes p to path.
func (p Params) Save(path string) error {
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Validate reports the first inconsistency as ErrInvalid.
func (p Params) Validate() error {
	_, err := p.NewEncoder()
	return err
}

// Spacer builds the seed geometry.
func (p Params) Spacer() (*spacer.Spacer, error) {
	sp, err := spacer.FromSkips(p.K, p.Skips)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return sp, nil
}

// EncoderOptions translates p into encoder options.
func (p Params) EncoderOptions() ([]encoder.Option, error) {
	m, err := rhtraits.ParseMode(p.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	score, err := encoder.ParseScore(p.Score, p.Seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return []encoder.Option{
		encoder.WithMode(m),
		encoder.WithWidth(p.Width),
		encoder.WithWindow(p.Window),
		encoder.WithScore(score),
	}, nil
}

// NewEncoder builds an encoder from p.
func (p Params) NewEncoder() (*encoder.Encoder, error) {
	sp, err := p.Spacer()
	if err != nil {
		return nil, err
	}
	opts, err := p.EncoderOptions()
	if err != nil {
		return nil, err
	}
	e, err := encoder.New(sp, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return e, nil
}
