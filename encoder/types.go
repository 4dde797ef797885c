// Package encoder provides tunable options, error definitions and the
// candidate type used by the streaming k-mer encoder.
package encoder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kmerlath/kmer"
	"github.com/katalvlaran/kmerlath/rhtraits"
)

// Sentinel errors for encoder construction.
var (
	// ErrNilSpacer is returned when New receives a nil seed geometry.
	ErrNilSpacer = errors.New("encoder: spacer is nil")

	// ErrWidth is returned for a key width other than 32, 64 or 128.
	ErrWidth = errors.New("encoder: unsupported key width")

	// ErrWindow is returned for a negative minimizer window.
	ErrWindow = errors.New("encoder: invalid minimizer window")

	// ErrNilScore is returned when WithScore receives nil.
	ErrNilScore = errors.New("encoder: score function is nil")

	// ErrMode is returned for an undefined residue-handling mode.
	ErrMode = errors.New("encoder: invalid residue-handling mode")

	// ErrSpanTooLarge is returned when the seed span does not fit the key
	// width under the chosen mode.
	ErrSpanTooLarge = errors.New("encoder: seed span exceeds key width")

	// ErrUnknownScore is returned by ParseScore for an unknown name.
	ErrUnknownScore = errors.New("encoder: unknown score function")
)

// State is the cursor state of an Encoder.
type State int

const (
	// Unbound: no sequence assigned yet.
	Unbound State = iota
	// Bound: a sequence is attached and at least one seed start remains.
	Bound
	// Exhausted: the cursor passed the last seed start of the sequence.
	Exhausted
)

func (s State) String() string {
	switch s {
	case Unbound:
		return "unbound"
	case Bound:
		return "bound"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Candidate is one k-mer competing for the minimizer of a window.
type Candidate struct {
	Key   kmer.Key
	Score kmer.Key
	Pos   int // seed start within the assigned sequence
}

// less orders candidates by score, then key, then position.
func (c Candidate) less(o Candidate) bool {
	if d := c.Score.Compare(o.Score); d != 0 {
		return d < 0
	}
	if d := c.Key.Compare(o.Key); d != 0 {
		return d < 0
	}
	return c.Pos < o.Pos
}

// worse reports whether c loses to o on (score, key) alone.
func (c Candidate) worse(o Candidate) bool {
	if d := c.Score.Compare(o.Score); d != 0 {
		return d > 0
	}
	return c.Key.Compare(o.Key) > 0
}

// Option configures an Encoder via functional arguments.
// Invalid values are recorded and returned by New.
type Option func(*Options)

// Options holds the tunables of an Encoder.
type Options struct {
	// Mode selects the alphabet and packing density.
	Mode rhtraits.Mode

	// Width is the key word width in bits: 32, 64 or 128.
	Width int

	// Window is the minimizer window in bases. Values below the seed
	// length (including 0) mean one seed per window.
	Window int

	// Score ranks minimizer candidates; lower wins.
	Score ScoreFunc

	err error
}

// DefaultOptions returns DNA mode, 64-bit keys, a window of one seed
// and lexicographic scoring.
func DefaultOptions() Options {
	return Options{
		Mode:   rhtraits.DNA,
		Width:  kmer.Width64,
		Window: 0,
		Score:  LexScore,
	}
}

// WithMode selects the residue-handling mode.
func WithMode(m rhtraits.Mode) Option {
	return func(o *Options) {
		if !m.Valid() {
			o.err = fmt.Errorf("%w: %d", ErrMode, int(m))
			return
		}
		o.Mode = m
	}
}

// WithWidth sets the key width in bits.
func WithWidth(w int) Option {
	return func(o *Options) {
		if !kmer.ValidWidth(w) {
			o.err = fmt.Errorf("%w: %d", ErrWidth, w)
			return
		}
		o.Width = w
	}
}

// WithWindow sets the minimizer window length in bases.
//
//	w < 0: invalid option → ErrWindow
//	w < seed length: clamped up to the seed length
func WithWindow(w int) Option {
	return func(o *Options) {
		if w < 0 {
			o.err = fmt.Errorf("%w: %d", ErrWindow, w)
			return
		}
		o.Window = w
	}
}

// WithScore installs a minimizer score function.
func WithScore(fn ScoreFunc) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = ErrNilScore
			return
		}
		o.Score = fn
	}
}
