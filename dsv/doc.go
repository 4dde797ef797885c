// Package dsv implements a disjoint-set vector: union-find over an
// append-only arena of payloads.
//
// What:
//
//   - Emplace appends a payload as a new singleton set and returns its index.
//   - Find returns the representative of an index, compressing the path.
//   - Union merges two sets by rank and returns the new representative.
//   - SameSet, Sets, Groups and RankHistogram inspect the partition.
//
// Why:
//
//	Parents are arena indices, not pointers, so the structure has no
//	cycles to manage and copies or serializes as plain slices. Payloads are
//	never touched by Find or Union.
//
// Invariants:
//
//   - every parent chain ends at a node whose parent is itself
//   - a rank only grows, and only when its node wins an equal-rank union
//   - Σ RankHistogram() == Sets()
//
// Complexity:
//
//   - Emplace: O(1) amortized
//   - Find, Union, SameSet: O(α(n)) amortized
//   - Groups: O(n α(n))
//
// Errors:
//
//	Indices outside [0, Len()) are a contract violation and panic.
//
// A Vector is not safe for concurrent use.
package dsv
