package alphabet

import (
	"fmt"
	"strings"
)

// New builds an Alphabet from a comma-separated grouping string.
//
// Steps:
//  1. Split definition on ','; every piece is one group, ids are assigned
//     left to right starting at 0 (or 1 when padding is set).
//  2. Each letter c is stored under both c|0x20 and c&0xdf so that lookups
//     never branch on case.
//  3. Post-pass: P takes the id of K and U the id of C, unless the
//     definition already covers them.
//
// The table is assembled in a local array and published only when the whole
// definition parsed; a malformed definition never yields a partial table.
func New(name, definition string, padding bool) (*Alphabet, error) {
	if definition == "" {
		return nil, ErrEmptyDefinition
	}

	var lut [256]int16
	for i := range lut {
		lut[i] = Invalid
	}

	groups := strings.Split(definition, ",")
	rep := make([]byte, 0, len(groups)+1)
	base := int16(0)
	if padding {
		base = 1
		rep = append(rep, '-')
	}

	for gi, group := range groups {
		if group == "" {
			return nil, fmt.Errorf("%w: group %d of %q", ErrUnterminatedGroup, gi, definition)
		}
		id := base + int16(gi)
		for j := 0; j < len(group); j++ {
			c := group[j]
			if !isLetter(c) {
				return nil, fmt.Errorf("%w: %q at offset %d of group %d", ErrInvalidSymbol, c, j, gi)
			}
			upper, lower := c&0xdf, c|0x20
			if lut[upper] != Invalid {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, upper)
			}
			lut[upper], lut[lower] = id, id
		}
		rep = append(rep, group[0]&0xdf)
	}

	// Pyrrolysine → Lysine, Selenocysteine → Cysteine.
	fold(&lut, 'P', 'K')
	fold(&lut, 'U', 'C')

	return &Alphabet{
		name:       name,
		definition: definition,
		size:       len(groups),
		padding:    padding,
		lut:        lut,
		rep:        rep,
	}, nil
}

// MustNew is New that panics on error. It exists for package-level tables
// whose definitions are literals.
func MustNew(name, definition string, padding bool) *Alphabet {
	a, err := New(name, definition, padding)
	if err != nil {
		panic(err)
	}
	return a
}

// Bytes returns the identity alphabet over all 256 byte values:
// id(b) = b, or b+1 with padding.
func Bytes(padding bool) *Alphabet {
	a := &Alphabet{name: "Bytes", size: 256, padding: padding}
	off := 0
	if padding {
		off = 1
		a.rep = append(a.rep, '-')
	}
	for i := range a.lut {
		a.lut[i] = int16(i + off)
		a.rep = append(a.rep, byte(i))
	}
	return a
}

// fold copies the id of target onto c (both cases) when c is unassigned.
func fold(lut *[256]int16, c, target byte) {
	if lut[c] != Invalid {
		return
	}
	lut[c], lut[c|0x20] = lut[target], lut[target]
}

func isLetter(c byte) bool {
	c &= 0xdf
	return c >= 'A' && c <= 'Z'
}
