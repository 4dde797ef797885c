package dsv

import (
	"fmt"
	"iter"
)

type node[T any] struct {
	value  T
	parent int
	rank   int
}

// Vector is a union-find over an append-only sequence of T.
type Vector[T any] struct {
	nodes []node[T]
	hist  []int // hist[r] = number of representatives with rank r
	sets  int
}

// New returns an empty Vector with room for capacity elements.
func New[T any](capacity int) *Vector[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Vector[T]{nodes: make([]node[T], 0, capacity)}
}

// Emplace appends v as a new singleton set and returns its index.
func (d *Vector[T]) Emplace(v T) int {
	i := len(d.nodes)
	d.nodes = append(d.nodes, node[T]{value: v, parent: i})
	if len(d.hist) == 0 {
		d.hist = append(d.hist, 0)
	}
	d.hist[0]++
	d.sets++
	return i
}

func (d *Vector[T]) check(i int) {
	if i < 0 || i >= len(d.nodes) {
		panic(fmt.Sprintf("dsv: index %d out of range [0,%d)", i, len(d.nodes)))
	}
}

// Find returns the representative of i.
//
// Steps:
//  1. Walk parents up to the root.
//  2. Walk again, pointing every visited node straight at the root.
func (d *Vector[T]) Find(i int) int {
	d.check(i)
	root := i
	for d.nodes[root].parent != root {
		root = d.nodes[root].parent
	}
	for d.nodes[i].parent != root {
		next := d.nodes[i].parent
		d.nodes[i].parent = root
		i = next
	}
	return root
}

// Union merges the sets of i and j and returns the representative of the
// merged set. The lower-rank root goes under the higher-rank root; on equal
// ranks j's root goes under i's root and i's root gains one rank.
//
// Steps:
//  1. Resolve both roots, compressing their paths.
//  2. Same root: nothing to merge.
//  3. Different ranks: hang the shorter tree under the taller one; the
//     loser stops being a root, so its rank bucket shrinks by one.
//  4. Equal ranks: hang j's root under i's root and promote i's root.
func (d *Vector[T]) Union(i, j int) int {
	// 1. roots
	ri, rj := d.Find(i), d.Find(j)

	// 2. already joined
	if ri == rj {
		return ri
	}

	// 3. union by rank
	ki, kj := d.nodes[ri].rank, d.nodes[rj].rank
	switch {
	case ki < kj:
		d.nodes[ri].parent = rj
		d.hist[ki]--
		d.sets--
		return rj
	case ki > kj:
		d.nodes[rj].parent = ri
		d.hist[kj]--
		d.sets--
		return ri
	}

	// 4. two roots of rank k become one of rank k+1
	d.nodes[rj].parent = ri
	d.nodes[ri].rank++
	d.hist[ki] -= 2
	if ki+1 == len(d.hist) {
		d.hist = append(d.hist, 0)
	}
	d.hist[ki+1]++
	d.sets--
	return ri
}

// SameSet reports whether i and j share a representative.
func (d *Vector[T]) SameSet(i, j int) bool { return d.Find(i) == d.Find(j) }

// Len returns the number of elements.
func (d *Vector[T]) Len() int { return len(d.nodes) }

// Sets returns the number of disjoint sets.
func (d *Vector[T]) Sets() int { return d.sets }

// Value returns the payload at i.
func (d *Vector[T]) Value(i int) T {
	d.check(i)
	return d.nodes[i].value
}

// Rank returns the rank of node i. Only ranks of representatives are
// counted by RankHistogram.
func (d *Vector[T]) Rank(i int) int {
	d.check(i)
	return d.nodes[i].rank
}

// RankHistogram returns a copy of the representative count per rank.
func (d *Vector[T]) RankHistogram() []int {
	return append([]int(nil), d.hist...)
}

// Groups returns the member indices of every set. Members are ascending
// and groups are ordered by their smallest member.
func (d *Vector[T]) Groups() [][]int {
	slot := make(map[int]int, d.sets)
	out := make([][]int, 0, d.sets)
	for i := range d.nodes {
		r := d.Find(i)
		g, ok := slot[r]
		if !ok {
			g = len(out)
			slot[r] = g
			out = append(out, nil)
		}
		out[g] = append(out[g], i)
	}
	return out
}

// All yields (index, payload) in insertion order.
func (d *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range d.nodes {
			if !yield(i, d.nodes[i].value) {
				return
			}
		}
	}
}
