package alphabet

import "errors"

// Invalid is the id of every byte an alphabet does not cover.
const Invalid int16 = -1

// Sentinel errors for alphabet construction and lookup.
var (
	// ErrEmptyDefinition indicates a definition string with no groups at all.
	ErrEmptyDefinition = errors.New("alphabet: empty definition")

	// ErrUnterminatedGroup indicates a group that was opened but never given
	// a member, e.g. "A,C," or "A,,C".
	ErrUnterminatedGroup = errors.New("alphabet: unterminated group")

	// ErrInvalidSymbol indicates a definition character outside A-Z/a-z.
	ErrInvalidSymbol = errors.New("alphabet: invalid symbol in definition")

	// ErrDuplicateSymbol indicates a letter listed in more than one group.
	ErrDuplicateSymbol = errors.New("alphabet: symbol assigned twice")

	// ErrUnknownAlphabet indicates Lookup found no table for the given name.
	ErrUnknownAlphabet = errors.New("alphabet: unknown alphabet")
)

// Alphabet is an immutable byte → id reduction table.
//
// The zero value is not usable; build one with New, MustNew or Bytes.
// An Alphabet is safe for concurrent use by any number of readers.
type Alphabet struct {
	name       string
	definition string
	size       int  // number of groups, padding excluded
	padding    bool // id 0 reserved
	lut        [256]int16
	rep        []byte // id → representative symbol
}

// Name returns the display name given at construction.
func (a *Alphabet) Name() string { return a.name }

// Definition returns the grouping string the table was built from.
// It is empty for byte-identity alphabets.
func (a *Alphabet) Definition() string { return a.definition }

// Size returns the number of distinct ids excluding the padding slot.
func (a *Alphabet) Size() int { return a.size }

// HasPadding reports whether id 0 is reserved for padding.
func (a *Alphabet) HasPadding() bool { return a.padding }

// Cardinality returns the number of id values a packed symbol can take:
// Size plus one when padding is enabled.
func (a *Alphabet) Cardinality() int {
	if a.padding {
		return a.size + 1
	}
	return a.size
}

// Translate returns the id of c, or Invalid.
func (a *Alphabet) Translate(c byte) int16 { return a.lut[c] }

// Table returns a copy of the full lookup table.
func (a *Alphabet) Table() [256]int16 { return a.lut }

// Symbol returns the canonical upper-case representative of id: the first
// letter of its group. Padding decodes to '-' and ids outside the alphabet
// to '?'.
func (a *Alphabet) Symbol(id int16) byte {
	if a.padding && id == 0 {
		return '-'
	}
	if id < 0 || int(id) >= len(a.rep) {
		return '?'
	}
	return a.rep[id]
}

// String returns the display name.
func (a *Alphabet) String() string { return a.name }
