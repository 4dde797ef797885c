// Package spacer describes spaced-seed geometry: which offsets of a window
// of sequence are folded into a k-mer and which are skipped.
//
// A seed retains Span symbols. Between retained symbol i and i+1 it skips
// Skips()[i] positions, so one seed covers
//
//	Length = Span + Σ Skips
//
// bases of input. A contiguous k-mer is a seed with all skips zero.
//
// Render decodes a packed key back into that gapped string, writing '-' at
// every skipped offset; it is the oracle used to test the encoder.
package spacer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/kmerlath/kmer"
	"github.com/katalvlaran/kmerlath/rhtraits"
)

// Gap is written at skipped offsets by Render and String.
const Gap = '-'

// Sentinel errors for seed construction.
var (
	// ErrSpan indicates a seed with fewer than one retained symbol.
	ErrSpan = errors.New("spacer: span must be at least 1")

	// ErrSkipCount indicates more skip entries than gaps between retained symbols.
	ErrSkipCount = errors.New("spacer: skip pattern longer than span-1")

	// ErrNegativeSkip indicates a negative skip entry.
	ErrNegativeSkip = errors.New("spacer: negative skip")

	// ErrInconsistentLength indicates span + sum(skips) differs from the
	// requested seed length.
	ErrInconsistentLength = errors.New("spacer: span plus skips does not equal length")
)

// Spacer is an immutable spaced-seed geometry.
type Spacer struct {
	span    int
	length  int
	skips   []int // len == span-1
	offsets []int // len == span, offsets[0] == 0
}

// New validates and builds a seed retaining span symbols over length bases.
// skips may be shorter than span-1; missing trailing entries are zero.
func New(span, length int, skips []int) (*Spacer, error) {
	if span < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrSpan, span)
	}
	if len(skips) > span-1 {
		return nil, fmt.Errorf("%w: %d skips for span %d", ErrSkipCount, len(skips), span)
	}

	full := make([]int, span-1)
	sum := 0
	for i, s := range skips {
		if s < 0 {
			return nil, fmt.Errorf("%w: skips[%d]=%d", ErrNegativeSkip, i, s)
		}
		full[i] = s
		sum += s
	}
	if span+sum != length {
		return nil, fmt.Errorf("%w: span %d + skips %d != %d", ErrInconsistentLength, span, sum, length)
	}

	offsets := make([]int, span)
	for i := 1; i < span; i++ {
		offsets[i] = offsets[i-1] + 1 + full[i-1]
	}
	return &Spacer{span: span, length: length, skips: full, offsets: offsets}, nil
}

// FromSkips builds a seed whose length is derived from span and skips.
func FromSkips(span int, skips []int) (*Spacer, error) {
	sum := 0
	for _, s := range skips {
		sum += s
	}
	return New(span, span+sum, skips)
}

// Contiguous builds an ungapped seed of k symbols.
func Contiguous(k int) (*Spacer, error) { return New(k, k, nil) }

// Span returns the number of retained symbols.
func (s *Spacer) Span() int { return s.span }

// Length returns the number of bases one seed covers, skipped ones included.
func (s *Spacer) Length() int { return s.length }

// Skips returns a copy of the padded skip pattern (span-1 entries).
func (s *Spacer) Skips() []int { return append([]int(nil), s.skips...) }

// Offsets returns a copy of the retained offsets relative to the seed start.
func (s *Spacer) Offsets() []int { return append([]int(nil), s.offsets...) }

// IsContiguous reports whether the seed skips nothing.
func (s *Spacer) IsContiguous() bool { return s.length == s.span }

// Render decodes key under mode m into a string of Length() characters:
// decoded symbols at retained offsets, Gap everywhere else.
func (s *Spacer) Render(key kmer.Key, m rhtraits.Mode) string {
	alph := m.Alphabet()
	card := m.Cardinality()

	out := make([]byte, s.length)
	for i := range out {
		out[i] = Gap
	}
	for i := s.span - 1; i >= 0; i-- {
		var d uint64
		key, d = key.DivMod(card)
		out[s.offsets[i]] = alph.Symbol(int16(d))
	}
	return string(out)
}

// String returns the seed mask, '1' for retained and Gap for skipped
// offsets, e.g. "1-1--111".
func (s *Spacer) String() string {
	var b strings.Builder
	b.Grow(s.length)
	for _, skip := range s.skips {
		b.WriteByte('1')
		for j := 0; j < skip; j++ {
			b.WriteByte(Gap)
		}
	}
	b.WriteByte('1')
	return b.String()
}
