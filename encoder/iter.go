package encoder

import (
	"iter"

	"github.com/katalvlaran/kmerlath/kmer"
)

// Kmers assigns seq and yields (start, key) for every seed start, including
// Invalid() keys.
func (e *Encoder) Kmers(seq []byte) iter.Seq2[int, kmer.Key] {
	return func(yield func(int, kmer.Key) bool) {
		e.Assign(seq)
		for e.HasNextKmer() {
			k := e.NextKmer()
			if !yield(e.last, k) {
				return
			}
		}
	}
}

// Minimizers assigns seq and yields (window start, minimizer) for every
// complete window holding at least one valid seed.
func (e *Encoder) Minimizers(seq []byte) iter.Seq2[int, kmer.Key] {
	return func(yield func(int, kmer.Key) bool) {
		e.Assign(seq)
		for e.HasNextKmer() {
			k := e.NextMinimizer()
			if k == e.invalid {
				continue
			}
			if !yield(e.last-e.nCand+1, k) {
				return
			}
		}
	}
}

// Sketch returns the distinct minimizers of seq in order of first
// appearance.
func (e *Encoder) Sketch(seq []byte) []kmer.Key {
	seen := make(map[kmer.Key]struct{})
	var out []kmer.Key
	for _, k := range e.Minimizers(seq) {
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
