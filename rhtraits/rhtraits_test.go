package rhtraits_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/kmerlath/alphabet"
	"github.com/katalvlaran/kmerlath/rhtraits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSymbolsPerWord pins the packing density of every mode to
// floor(bits / log2(card)).
func TestSymbolsPerWord(t *testing.T) {
	want := map[rhtraits.Mode][3]int{
		rhtraits.DNA:       {16, 32, 64},
		rhtraits.Protein:   {4, 8, 16},
		rhtraits.Protein20: {7, 14, 29},
		rhtraits.Protein8:  {10, 21, 42},
		rhtraits.Protein14: {8, 16, 33},
		rhtraits.Protein6:  {12, 24, 49},
		rhtraits.DNA2:      {32, 64, 128},
		rhtraits.DNAC:      {32, 64, 128},
	}
	for m, w := range want {
		got := [3]int{
			rhtraits.SymbolsPerWord(m, 32),
			rhtraits.SymbolsPerWord(m, 64),
			rhtraits.SymbolsPerWord(m, 128),
		}
		assert.Equal(t, w, got, m.String())
	}
}

// TestSymbolsPerWord_Monotonic checks density never shrinks with width.
func TestSymbolsPerWord_Monotonic(t *testing.T) {
	for _, m := range rhtraits.Modes() {
		a, b, c := rhtraits.SymbolsPerWord(m, 32), rhtraits.SymbolsPerWord(m, 64), rhtraits.SymbolsPerWord(m, 128)
		assert.LessOrEqual(t, a, b, m.String())
		assert.LessOrEqual(t, b, c, m.String())
	}
}

func TestSymbolsPerWord_UnsupportedWidth(t *testing.T) {
	assert.Panics(t, func() { rhtraits.SymbolsPerWord(rhtraits.DNA, 48) })
	assert.Panics(t, func() { rhtraits.MaxSpan(rhtraits.DNA, 16) })
	assert.Panics(t, func() { rhtraits.Mode(99).Alphabet() })
}

// TestMaxSpan: exact power-of-two fills lose one symbol, other modes do not.
func TestMaxSpan(t *testing.T) {
	assert.Equal(t, 31, rhtraits.MaxSpan(rhtraits.DNA, 64))
	assert.Equal(t, 15, rhtraits.MaxSpan(rhtraits.DNA, 32))
	assert.Equal(t, 63, rhtraits.MaxSpan(rhtraits.DNA2, 64))
	assert.Equal(t, 14, rhtraits.MaxSpan(rhtraits.Protein20, 64))
	assert.Equal(t, 21, rhtraits.MaxSpan(rhtraits.Protein8, 64))
	assert.Equal(t, 7, rhtraits.MaxSpan(rhtraits.Protein, 64))
}

func TestKeyspaceSize(t *testing.T) {
	n, err := rhtraits.KeyspaceSize(rhtraits.DNA, 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(64), n)

	n, err = rhtraits.KeyspaceSize(rhtraits.DNA2, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(1024), n)

	n, err = rhtraits.KeyspaceSize(rhtraits.Protein20, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(400), n)

	n, err = rhtraits.KeyspaceSize(rhtraits.Protein14, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), n)

	_, err = rhtraits.KeyspaceSize(rhtraits.DNA, 32)
	assert.ErrorIs(t, err, rhtraits.ErrKeyspaceOverflow)
	_, err = rhtraits.KeyspaceSize(rhtraits.Protein20, 15)
	assert.ErrorIs(t, err, rhtraits.ErrKeyspaceOverflow)
	_, err = rhtraits.KeyspaceSize(rhtraits.DNAC, 64)
	assert.ErrorIs(t, err, rhtraits.ErrKeyspaceOverflow)
	_, err = rhtraits.KeyspaceSize(rhtraits.DNA, -1)
	assert.ErrorIs(t, err, rhtraits.ErrNegativeK)
}

func TestKeyspaceSizeBig(t *testing.T) {
	want := new(big.Int).Lsh(big.NewInt(1), 128)
	assert.Equal(t, 0, want.Cmp(rhtraits.KeyspaceSizeBig(rhtraits.DNA, 64)))

	// Agrees with the uint64 form wherever that form fits.
	for _, m := range rhtraits.Modes() {
		for k := 0; k < 12; k++ {
			n, err := rhtraits.KeyspaceSize(m, k)
			if err != nil {
				continue
			}
			assert.Equal(t, n, rhtraits.KeyspaceSizeBig(m, k).Uint64(), "%s k=%d", m, k)
		}
	}
}

func TestParseModeAndString(t *testing.T) {
	for _, m := range rhtraits.Modes() {
		got, err := rhtraits.ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	m, err := rhtraits.ParseMode("protein14")
	require.NoError(t, err)
	assert.Equal(t, rhtraits.Protein14, m)

	_, err = rhtraits.ParseMode("RNA")
	assert.ErrorIs(t, err, rhtraits.ErrUnknownMode)
	assert.Equal(t, "unknown", rhtraits.Mode(-1).String())
}

func TestAlphabetBinding(t *testing.T) {
	assert.Same(t, alphabet.DNA4, rhtraits.DNA.Alphabet())
	assert.Same(t, alphabet.DNA2PurPyr, rhtraits.DNA2.Alphabet())
	assert.Same(t, alphabet.SEB8, rhtraits.Protein8.Alphabet())
	assert.Equal(t, uint64(256), rhtraits.Protein.Cardinality())
	assert.Equal(t, uint64(6), rhtraits.Protein6.Cardinality())
}
