package encoder

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/kmerlath/alphabet"
	"github.com/katalvlaran/kmerlath/kmer"
	"github.com/katalvlaran/kmerlath/rhtraits"
	"github.com/katalvlaran/kmerlath/spacer"
)

// Encoder is a cursor over one assigned sequence. It packs the seed at the
// cursor into a kmer.Key and, on request, tracks the minimizer of the
// trailing window. An Encoder has a single owner; it is not safe for
// concurrent use, but any number of Encoders may share alphabets.
type Encoder struct {
	sp      *spacer.Spacer
	offsets []int
	mode    rhtraits.Mode
	alph    *alphabet.Alphabet
	card    uint64
	width   int
	invalid kmer.Key
	score   ScoreFunc

	window int // effective minimizer window, ≥ sp.Length()
	nCand  int // seeds per window

	// cursor
	seq      []byte
	assigned bool
	next     int // start of the next seed
	last     int // start of the last consumed seed, -1 before any

	// rolling fast path (contiguous seeds, width ≤ 64)
	rolling bool
	modulus uint64 // card^span
	roll    uint64
	run     int // consecutive valid symbols fed
	fed     int // next symbol index to feed

	// minimizer window
	consumed int
	ring     []Candidate // ring[pos % nCand]
	dq       []Candidate // circular monotonic deque
	dqHead   int
	dqLen    int
}

// New builds an Encoder for seed geometry sp.
//
// Errors:
//   - ErrNilSpacer if sp is nil.
//   - ErrMode, ErrWidth, ErrWindow, ErrNilScore from options.
//   - ErrSpanTooLarge if sp.Span() exceeds rhtraits.MaxSpan(mode, width).
func New(sp *spacer.Spacer, opts ...Option) (*Encoder, error) {
	if sp == nil {
		return nil, ErrNilSpacer
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if limit := rhtraits.MaxSpan(o.Mode, o.Width); sp.Span() > limit {
		return nil, fmt.Errorf("%w: span %d > %d for %s at %d bits",
			ErrSpanTooLarge, sp.Span(), limit, o.Mode, o.Width)
	}

	e := &Encoder{
		sp:      sp,
		offsets: sp.Offsets(),
		mode:    o.Mode,
		alph:    o.Mode.Alphabet(),
		card:    o.Mode.Cardinality(),
		width:   o.Width,
		invalid: kmer.Invalid(o.Width),
		score:   o.Score,
		window:  o.Window,
		last:    -1,
	}
	if e.window < sp.Length() {
		e.window = sp.Length()
	}
	e.nCand = e.window - sp.Length() + 1
	e.ring = make([]Candidate, e.nCand)
	e.dq = make([]Candidate, e.nCand)

	if sp.IsContiguous() && o.Width <= kmer.Width64 {
		m, _ := kmer.Pow(e.card, sp.Span())
		e.rolling, e.modulus = true, m.Uint64()
	}
	return e, nil
}

// Spacer returns the seed geometry.
func (e *Encoder) Spacer() *spacer.Spacer { return e.sp }

// Mode returns the residue-handling mode.
func (e *Encoder) Mode() rhtraits.Mode { return e.mode }

// Width returns the key width in bits.
func (e *Encoder) Width() int { return e.width }

// Window returns the effective minimizer window in bases.
func (e *Encoder) Window() int { return e.window }

// Invalid returns the sentinel key emitted for seeds with untranslatable
// symbols.
func (e *Encoder) Invalid() kmer.Key { return e.invalid }

// Assign attaches seq and rewinds the cursor and minimizer window. The
// Encoder reads seq in place; callers must not modify it while encoding.
func (e *Encoder) Assign(seq []byte) {
	e.seq = seq
	e.assigned = true
	e.next, e.last = 0, -1
	e.roll, e.run, e.fed = 0, 0, 0
	e.consumed = 0
	e.dqHead, e.dqLen = 0, 0
}

// State reports the cursor state.
func (e *Encoder) State() State {
	switch {
	case !e.assigned:
		return Unbound
	case e.HasNextKmer():
		return Bound
	}
	return Exhausted
}

// HasNextKmer reports whether a full seed fits at the cursor.
func (e *Encoder) HasNextKmer() bool {
	return e.assigned && e.next+e.sp.Length() <= len(e.seq)
}

// Pos returns the start of the last consumed seed, or -1.
func (e *Encoder) Pos() int { return e.last }

// Len returns the length of the assigned sequence.
func (e *Encoder) Len() int { return len(e.seq) }

// NextKmer packs the seed at the cursor and advances by one base. A seed
// with any untranslatable retained symbol yields Invalid(). The seed also
// enters the minimizer window, so NextKmer and NextMinimizer may be
// interleaved freely. Calling it when HasNextKmer is false panics.
func (e *Encoder) NextKmer() kmer.Key {
	if !e.HasNextKmer() {
		panic("encoder: NextKmer called with no seed left")
	}
	p := e.next
	e.next++
	e.last = p

	var k kmer.Key
	if e.rolling {
		k = e.rollTo(p + e.sp.Span() - 1)
	} else {
		k = e.pack(p)
	}
	e.slide(k, p)
	return k
}

// pack folds the retained symbols of the seed starting at p, first offset
// most significant.
func (e *Encoder) pack(p int) kmer.Key {
	var k kmer.Key
	for _, off := range e.offsets {
		// 1. translate; one unknown symbol poisons the whole seed
		id := e.alph.Translate(e.seq[p+off])
		if id < 0 {
			return e.invalid
		}
		// 2. shift the key one digit left and append the symbol
		k = k.MulAdd(e.card, uint64(id))
	}
	return k
}

// rollTo feeds symbols up to index end into the rolling key:
//
//	roll = (roll·card + id) mod card^span
//
// An untranslatable symbol restarts the run.
func (e *Encoder) rollTo(end int) kmer.Key {
	for ; e.fed <= end; e.fed++ {
		// 1. an unknown symbol empties the run
		id := e.alph.Translate(e.seq[e.fed])
		if id < 0 {
			e.roll, e.run = 0, 0
			continue
		}
		// 2. 128-bit product roll·card + id
		hi, lo := bits.Mul64(e.roll, e.card)
		var carry uint64
		lo, carry = bits.Add64(lo, uint64(id), 0)
		// 3. drop the digit that left the seed; hi < modulus since roll < modulus
		_, e.roll = bits.Div64(hi+carry, lo, e.modulus)
		e.run++
	}
	// 4. the key is valid only once span clean symbols have been fed
	if e.run < e.sp.Span() {
		return e.invalid
	}
	return kmer.FromUint64(e.roll)
}
