package rhtraits

import (
	"fmt"
	"math/big"
	"math/bits"
	"strings"

	"github.com/katalvlaran/kmerlath/alphabet"
)

func init() {
	for m := range table {
		t := &table[m]
		t.cardinal = uint64(t.alph.Cardinality())
		for wi, w := range wordWidths {
			t.perWord[wi], t.maxSpan[wi] = density(t.cardinal, w)
		}
		aliases[t.name] = Mode(m)
	}
}

// density returns the largest n with card^n ≤ 2^w and the largest n with
// card^n < 2^w.
func density(card uint64, w int) (perWord, maxSpan int) {
	limit := new(big.Int).Lsh(big.NewInt(1), uint(w))
	c := new(big.Int).SetUint64(card)
	p := big.NewInt(1)
	for {
		p.Mul(p, c)
		switch p.Cmp(limit) {
		case -1:
			perWord++
			maxSpan++
			continue
		case 0:
			perWord++
		}
		return perWord, maxSpan
	}
}

func widthIndex(wordBits int) int {
	switch wordBits {
	case 32:
		return 0
	case 64:
		return 1
	case 128:
		return 2
	}
	panic(fmt.Sprintf("rhtraits: unsupported word width %d", wordBits))
}

func (m Mode) traits() *traits {
	if !m.Valid() {
		panic(fmt.Sprintf("rhtraits: invalid mode %d", int(m)))
	}
	return &table[m]
}

// Valid reports whether m is a defined mode.
func (m Mode) Valid() bool { return m >= 0 && m < numModes }

// Alphabet returns the shared alphabet of m.
func (m Mode) Alphabet() *alphabet.Alphabet { return m.traits().alph }

// Cardinality returns the number of distinct packed symbol values of m.
func (m Mode) Cardinality() uint64 { return m.traits().cardinal }

// String returns the diagnostic name of m.
func (m Mode) String() string {
	if !m.Valid() {
		return "unknown"
	}
	return table[m].name
}

// ParseMode resolves a mode name or alias, ignoring case.
func ParseMode(s string) (Mode, error) {
	if m, ok := aliases[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Modes returns every defined mode in declaration order.
func Modes() []Mode {
	out := make([]Mode, numModes)
	for i := range out {
		out[i] = Mode(i)
	}
	return out
}

// SymbolsPerWord returns how many symbols of m fit in a word of wordBits
// bits. wordBits must be 32, 64 or 128; anything else panics.
func SymbolsPerWord(m Mode, wordBits int) int {
	return m.traits().perWord[widthIndex(wordBits)]
}

// MaxSpan returns the longest seed span of m whose keys stay strictly below
// the all-ones sentinel of a wordBits-wide word.
func MaxSpan(m Mode, wordBits int) int {
	return m.traits().maxSpan[widthIndex(wordBits)]
}

// KeyspaceSize returns the number of distinct k-mers of m:
// 2^(2k) for DNA, 2^k for the binary DNA modes and card^k otherwise.
// It reports ErrKeyspaceOverflow instead of wrapping.
func KeyspaceSize(m Mode, k int) (uint64, error) {
	if k < 0 {
		return 0, ErrNegativeK
	}
	switch m {
	case DNA:
		if 2*k >= 64 {
			return 0, fmt.Errorf("%w: %s k=%d", ErrKeyspaceOverflow, m, k)
		}
		return 1 << (2 * k), nil
	case DNA2, DNAC:
		if k >= 64 {
			return 0, fmt.Errorf("%w: %s k=%d", ErrKeyspaceOverflow, m, k)
		}
		return 1 << k, nil
	}

	card := m.Cardinality()
	size := uint64(1)
	for i := 0; i < k; i++ {
		hi, lo := bits.Mul64(size, card)
		if hi != 0 {
			return 0, fmt.Errorf("%w: %s k=%d", ErrKeyspaceOverflow, m, k)
		}
		size = lo
	}
	return size, nil
}

// KeyspaceSizeBig returns card^k exactly. k must be non-negative.
func KeyspaceSizeBig(m Mode, k int) *big.Int {
	c := new(big.Int).SetUint64(m.Cardinality())
	return c.Exp(c, big.NewInt(int64(k)), nil)
}
