package encoder

import "github.com/katalvlaran/kmerlath/kmer"

// NextMinimizer consumes one seed like NextKmer and returns the minimizer
// of the window ending at that seed. It returns Invalid() before the first
// full window and for windows without a valid seed. Panics when HasNextKmer
// is false.
func (e *Encoder) NextMinimizer() kmer.Key {
	e.NextKmer()
	if e.consumed < e.nCand || e.dqLen == 0 {
		return e.invalid
	}
	return e.dq[e.dqHead].Key
}

// slide moves the minimizer window onto the seed k starting at p.
//
// Steps:
//  1. Score k and store it in the trailing ring.
//  2. Drop deque front entries that left the window.
//  3. If k is valid, pop back entries that lose to it on (score, key),
//     then push it. Equal entries stay, so the front is the leftmost of
//     its kind.
func (e *Encoder) slide(k kmer.Key, p int) {
	// 1. ring
	c := Candidate{Key: k, Pos: p}
	if k != e.invalid {
		c.Score = e.score(k)
	}
	e.ring[p%e.nCand] = c

	// 2. expire
	for e.dqLen > 0 && e.dq[e.dqHead].Pos <= p-e.nCand {
		e.dqHead = (e.dqHead + 1) % e.nCand
		e.dqLen--
	}

	// 3. push
	if k != e.invalid {
		for e.dqLen > 0 && e.dq[(e.dqHead+e.dqLen-1)%e.nCand].worse(c) {
			e.dqLen--
		}
		e.dq[(e.dqHead+e.dqLen)%e.nCand] = c
		e.dqLen++
	}
	e.consumed++
}

// WindowMin returns the deque front: the best valid candidate among the
// last min(consumed, W−Length+1) seeds. ok is false when there is none.
func (e *Encoder) WindowMin() (c Candidate, ok bool) {
	if e.dqLen == 0 {
		return Candidate{}, false
	}
	return e.dq[e.dqHead], true
}

// WindowMinBruteForce recomputes WindowMin by scanning the trailing ring.
// It is O(W) and exists to cross-check the deque.
func (e *Encoder) WindowMinBruteForce() (best Candidate, ok bool) {
	if e.consumed == 0 {
		return Candidate{}, false
	}
	lo := e.last - e.nCand + 1
	if first := e.last - e.consumed + 1; lo < first {
		lo = first
	}
	for q := lo; q <= e.last; q++ {
		c := e.ring[q%e.nCand]
		if c.Key == e.invalid {
			continue
		}
		if !ok || c.less(best) {
			best, ok = c, true
		}
	}
	return best, ok
}
