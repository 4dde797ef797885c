// Package encoder turns sequences into packed k-mer keys and minimizers.
//
// 🚀 What does it do?
//
//	An Encoder walks a sequence one base at a time. At every start
//	position it folds the retained symbols of a spaced seed (see package
//	spacer) into a kmer.Key using the alphabet of a residue-handling mode
//	(see package rhtraits). On top of that stream it maintains a sliding
//	window of W bases and reports the minimizer: the lowest scoring seed
//	fully inside the window.
//
// ✨ Key features:
//   - spaced or contiguous seeds, 32/64/128-bit keys
//   - O(1) rolling update for contiguous seeds up to 64 bits
//   - ambiguous symbols yield the Invalid() sentinel as data, never an error
//   - monotonic deque minimizers, amortized O(1) per base
//   - brute-force cross-check (WindowMinBruteForce) exposed for tests
//   - pluggable scoring: LexScore, ReverseLexScore, HashScore(seed)
//
// ⚙️ Usage:
//
//	sp, _ := spacer.FromSkips(15, []int{1, 0, 2})
//	enc, err := encoder.New(sp,
//		encoder.WithMode(rhtraits.DNA),
//		encoder.WithWindow(40),
//		encoder.WithScore(encoder.HashScore(7)),
//	)
//	for pos, key := range enc.Minimizers(seq) {
//		fmt.Println(pos, key)
//	}
//
// State machine:
//
//	Unbound ──Assign──▶ Bound ──NextKmer…──▶ Exhausted ──Assign──▶ Bound
//
// Minimizer counting: with seed length l and window W ≥ l, each window
// holds W−l+1 seeds; a record of length L without ambiguous symbols
// yields exactly L−W+1 minimizers.
//
// Ties: candidates compare by score, then key, then leftmost position.
//
// Performance:
//
//   - NextKmer:      O(1) rolling, O(span) otherwise, plus amortized O(1)
//     to slide the minimizer window
//   - NextMinimizer: NextKmer plus a deque lookup
//   - Memory:        O(W−l+1)
package encoder
