// Package rhtraits describes residue-handling modes: which alphabet a
// sequence type is reduced with, how many reduced symbols fit in a 32-, 64-
// or 128-bit word, and how large the resulting k-mer keyspace is.
//
// Packing density is derived, never tabulated by hand: for a mode with
// alphabet cardinality c, SymbolsPerWord(bits) is the largest n with
// c^n ≤ 2^bits, i.e. floor(bits / log2 c). MaxSpan is the largest n with
// c^n < 2^bits; seeds up to that span can never produce a key equal to the
// all-ones invalid sentinel of the word.
package rhtraits

import (
	"errors"

	"github.com/katalvlaran/kmerlath/alphabet"
)

// Sentinel errors for mode parsing and keyspace arithmetic.
var (
	// ErrUnknownMode indicates ParseMode found no mode for the name.
	ErrUnknownMode = errors.New("rhtraits: unknown residue-handling mode")

	// ErrKeyspaceOverflow indicates card^k does not fit in 64 bits.
	ErrKeyspaceOverflow = errors.New("rhtraits: keyspace size overflows uint64")

	// ErrNegativeK indicates a negative k-mer length.
	ErrNegativeK = errors.New("rhtraits: k must be non-negative")
)

// Mode selects the alphabet and packing density for one sequence type.
type Mode int

const (
	// DNA uses the 4-letter DNA4 alphabet, 2 bits per base.
	DNA Mode = iota
	// Protein treats every byte as a distinct symbol (Bytes256).
	Protein
	// Protein20 uses the standard 20 amino acids (Amino20).
	Protein20
	// Protein8 uses the SE-B(8) reduction, 3 bits per residue.
	Protein8
	// Protein14 uses the SE-B(14) reduction.
	Protein14
	// Protein6 uses the SE-B(6) reduction.
	Protein6
	// DNA2 splits bases into purines and pyrimidines, 1 bit per base.
	DNA2
	// DNAC splits C from A/G/T (methylation), 1 bit per base.
	DNAC

	numModes
)

// wordWidths are the supported packing widths, in bits.
var wordWidths = [3]int{32, 64, 128}

type traits struct {
	name     string
	alph     *alphabet.Alphabet
	perWord  [3]int // symbols per 32/64/128-bit word
	maxSpan  [3]int // longest sentinel-safe span per width
	cardinal uint64
}

var table = [numModes]traits{
	DNA:       {name: "DNA", alph: alphabet.DNA4},
	Protein:   {name: "PROTEIN", alph: alphabet.Bytes256},
	Protein20: {name: "PROTEIN20", alph: alphabet.Amino20},
	Protein8:  {name: "PROTEIN_3BIT", alph: alphabet.SEB8},
	Protein14: {name: "PROTEIN_14", alph: alphabet.SEB14},
	Protein6:  {name: "PROTEIN_6", alph: alphabet.SEB6},
	DNA2:      {name: "DNA2_PURPYR", alph: alphabet.DNA2PurPyr},
	DNAC:      {name: "DNA_C_ATG", alph: alphabet.DNA2Methyl},
}

// aliases maps extra accepted spellings to modes; canonical names are
// added at init.
var aliases = map[string]Mode{
	"PROTEIN8":  Protein8,
	"PROTEIN14": Protein14,
	"PROTEIN6":  Protein6,
	"DNA2":      DNA2,
	"DNAC":      DNAC,
}
