package spacer_test

import (
	"testing"

	"github.com/katalvlaran/kmerlath/kmer"
	"github.com/katalvlaran/kmerlath/rhtraits"
	"github.com/katalvlaran/kmerlath/spacer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pack folds the retained symbols of seq under sp by hand.
func pack(t *testing.T, sp *spacer.Spacer, m rhtraits.Mode, seq string) kmer.Key {
	t.Helper()
	alph := m.Alphabet()
	var k kmer.Key
	for _, off := range sp.Offsets() {
		id := alph.Translate(seq[off])
		require.GreaterOrEqual(t, id, int16(0), "symbol %q", seq[off])
		k = k.MulAdd(m.Cardinality(), uint64(id))
	}
	return k
}

func TestNew_Geometry(t *testing.T) {
	sp, err := spacer.New(4, 8, []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 4, sp.Span())
	assert.Equal(t, 8, sp.Length())
	assert.Equal(t, []int{1, 2, 0}, sp.Skips())
	assert.Equal(t, []int{0, 2, 5, 6}, sp.Offsets())
	assert.False(t, sp.IsContiguous())
	assert.Equal(t, "1-1--111", sp.String())
}

func TestNew_Errors(t *testing.T) {
	_, err := spacer.New(0, 0, nil)
	assert.ErrorIs(t, err, spacer.ErrSpan)

	_, err = spacer.New(2, 5, []int{1, 2})
	assert.ErrorIs(t, err, spacer.ErrSkipCount)

	_, err = spacer.New(3, 3, []int{-1, 1})
	assert.ErrorIs(t, err, spacer.ErrNegativeSkip)

	_, err = spacer.New(3, 4, nil)
	assert.ErrorIs(t, err, spacer.ErrInconsistentLength)
}

func TestAccessorsReturnCopies(t *testing.T) {
	sp, err := spacer.FromSkips(3, []int{2})
	require.NoError(t, err)
	sp.Skips()[0] = 99
	sp.Offsets()[1] = 99
	assert.Equal(t, []int{2, 0}, sp.Skips())
	assert.Equal(t, []int{0, 3, 4}, sp.Offsets())
}

func TestContiguous(t *testing.T) {
	sp, err := spacer.Contiguous(5)
	require.NoError(t, err)
	assert.True(t, sp.IsContiguous())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, sp.Offsets())
	assert.Equal(t, "11111", sp.String())

	one, err := spacer.Contiguous(1)
	require.NoError(t, err)
	assert.Empty(t, one.Skips())
	assert.Equal(t, "1", one.String())
}

// TestRender_Gapped31 renders a 31-of-34 seed with gaps at offsets 1, 3 and 4.
func TestRender_Gapped31(t *testing.T) {
	const seq = "ACATGCTAGCATGCTGACTGACTGATCGATCGTA"
	sp, err := spacer.FromSkips(31, []int{1, 2})
	require.NoError(t, err)
	require.Equal(t, len(seq), sp.Length())

	got := sp.Render(pack(t, sp, rhtraits.DNA, seq), rhtraits.DNA)
	assert.Equal(t, "A-A--CTAGCATGCTGACTGACTGATCGATCGTA", got)
}

func TestRender_Modes(t *testing.T) {
	sp, err := spacer.FromSkips(3, []int{1})
	require.NoError(t, err)

	// Protein20 keeps residues verbatim.
	assert.Equal(t, "M-KW", sp.Render(pack(t, sp, rhtraits.Protein20, "MAKW"), rhtraits.Protein20))

	// Lower case input renders as upper case representatives.
	assert.Equal(t, "A-GT", sp.Render(pack(t, sp, rhtraits.DNA, "acgt"), rhtraits.DNA))

	// The zero key decodes to the first symbol everywhere.
	assert.Equal(t, "A-AA", sp.Render(kmer.Key{}, rhtraits.DNA))
}

// TestRender_Wide decodes a 50-mer that needs more than 64 bits.
func TestRender_Wide(t *testing.T) {
	const seq = "ACGTTGCAACGTTGCAACGTTGCAACGTTGCAACGTTGCAACGTTGCAAC"
	sp, err := spacer.Contiguous(len(seq))
	require.NoError(t, err)

	k := pack(t, sp, rhtraits.DNA, seq)
	assert.False(t, k.Fits64())
	assert.Equal(t, seq, sp.Render(k, rhtraits.DNA))
}
