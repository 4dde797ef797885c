package kmer

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"
)

// Supported word widths, in bits.
const (
	Width32  = 32
	Width64  = 64
	Width128 = 128
)

// Key is a 128-bit unsigned packed k-mer. Hi holds the upper 64 bits.
type Key struct {
	Hi, Lo uint64
}

// FromUint64 returns the Key holding v.
func FromUint64(v uint64) Key { return Key{Lo: v} }

// ValidWidth reports whether w is one of 32, 64 or 128.
func ValidWidth(w int) bool {
	return w == Width32 || w == Width64 || w == Width128
}

// Invalid returns the sentinel key for word width w: all ones over w bits.
// It panics on an unsupported width.
func Invalid(w int) Key {
	switch w {
	case Width32:
		return Key{Lo: math.MaxUint32}
	case Width64:
		return Key{Lo: math.MaxUint64}
	case Width128:
		return Key{Hi: math.MaxUint64, Lo: math.MaxUint64}
	}
	panic(fmt.Sprintf("kmer: unsupported word width %d", w))
}

// MulAdd returns k*m + a modulo 2^128.
func (k Key) MulAdd(m, a uint64) Key {
	hi, lo := bits.Mul64(k.Lo, m)
	hi += k.Hi * m
	var carry uint64
	lo, carry = bits.Add64(lo, a, 0)
	return Key{Hi: hi + carry, Lo: lo}
}

// DivMod returns k / d and k % d. d must be non-zero.
func (k Key) DivMod(d uint64) (Key, uint64) {
	qHi, r := k.Hi/d, k.Hi%d
	qLo, r := bits.Div64(r, k.Lo, d)
	return Key{Hi: qHi, Lo: qLo}, r
}

// Compare returns -1, 0 or +1 as k is less than, equal to or greater than o.
func (k Key) Compare(o Key) int {
	switch {
	case k.Hi < o.Hi:
		return -1
	case k.Hi > o.Hi:
		return 1
	case k.Lo < o.Lo:
		return -1
	case k.Lo > o.Lo:
		return 1
	}
	return 0
}

// Less reports whether k < o.
func (k Key) Less(o Key) bool { return k.Compare(o) < 0 }

// Not returns the bitwise complement of k over all 128 bits.
func (k Key) Not() Key { return Key{Hi: ^k.Hi, Lo: ^k.Lo} }

// IsZero reports whether k == 0.
func (k Key) IsZero() bool { return k.Hi == 0 && k.Lo == 0 }

// Fits64 reports whether the upper 64 bits are clear.
func (k Key) Fits64() bool { return k.Hi == 0 }

// Uint64 returns the low 64 bits.
func (k Key) Uint64() uint64 { return k.Lo }

// Bytes returns the big-endian 16-byte form of k.
func (k Key) Bytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], k.Hi)
	binary.BigEndian.PutUint64(b[8:], k.Lo)
	return b
}

// String formats k in hexadecimal without leading zeros.
func (k Key) String() string {
	if k.Hi == 0 {
		return fmt.Sprintf("%#x", k.Lo)
	}
	return fmt.Sprintf("%#x%016x", k.Hi, k.Lo)
}

// Pow returns base^n modulo 2^128 and whether the result overflowed.
func Pow(base uint64, n int) (Key, bool) {
	acc := FromUint64(1)
	for i := 0; i < n; i++ {
		hi1, lo := bits.Mul64(acc.Lo, base)
		hi2, hi := bits.Mul64(acc.Hi, base)
		hi, carry := bits.Add64(hi, hi1, 0)
		if hi2 != 0 || carry != 0 {
			return Key{}, true
		}
		acc = Key{Hi: hi, Lo: lo}
	}
	return acc, false
}
