package encoder

import (
	"fmt"
	"strings"

	"github.com/zeebo/wyhash"

	"github.com/katalvlaran/kmerlath/kmer"
)

// ScoreFunc maps a packed key to its minimizer score. Lower scores win.
// It must be a pure function of the key.
type ScoreFunc func(kmer.Key) kmer.Key

// LexScore scores a key by itself. Because the first retained symbol is the
// most significant digit, this is lexical order of the decoded seed.
func LexScore(k kmer.Key) kmer.Key { return k }

// ReverseLexScore prefers lexically larger seeds.
func ReverseLexScore(k kmer.Key) kmer.Key { return k.Not() }

// HashScore returns a ScoreFunc ranking keys by the wyhash of their
// big-endian bytes under seed. It spreads minimizers uniformly where
// lexical order would favour low-complexity seeds such as poly-A.
func HashScore(seed uint64) ScoreFunc {
	return func(k kmer.Key) kmer.Key {
		b := k.Bytes()
		return kmer.FromUint64(wyhash.Hash(b[:], seed))
	}
}

// ParseScore resolves "lex", "revlex" or "hash" (seeded with seed).
func ParseScore(name string, seed uint64) (ScoreFunc, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "lex":
		return LexScore, nil
	case "revlex":
		return ReverseLexScore, nil
	case "hash":
		return HashScore(seed), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScore, name)
}
