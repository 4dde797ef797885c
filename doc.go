// Package kmerlath is a toolkit for turning biological sequences into
// compact integer keys: reduced alphabets, spaced-seed k-mers, sliding
// window minimizers, sketch files and union-find clustering.
//
// 🚀 What is kmerlath?
//
//	A small set of composable packages:
//		• alphabet: 256-entry reduction tables (DNA, SE-B, Murphy, Dayhoff…)
//		• rhtraits: residue-handling modes, packing density, keyspace size
//		• kmer    : the 128-bit packed Key and its sentinel
//		• spacer  : spaced-seed geometry and key rendering
//		• encoder : streaming k-mers and monotonic-deque minimizers
//		• dsv     : disjoint-set vector (union-find over an arena)
//		• seqio   : FASTA/FASTQ streaming
//		• sketch  : .shs minimizer sketch files, digest, Jaccard
//		• cluster : group records sharing minimizers
//		• config  : TOML parameter files
//
// ✨ Why kmerlath?
//
//   - Stable key layout: first retained symbol is the most significant digit
//   - Ambiguous bases become a sentinel key, never an error or garbage
//   - Every minimizer is cross-checkable against a brute-force scan
//   - Alphabets are immutable and shared; encoders are cheap and single-owner
//
// Quick example:
//
//	sp, _ := spacer.FromSkips(31, []int{1, 2, 18})
//	enc, _ := encoder.New(sp, encoder.WithWindow(100))
//	for pos, key := range enc.Minimizers(seq) {
//		fmt.Println(pos, sp.Render(key, rhtraits.DNA))
//	}
//
// The kmerlath command (cmd/kmerlath) drives the same packages:
//
//	kmerlath alphabets
//	kmerlath encode  -k 15 --skips 1,1 reads.fa
//	kmerlath sketch  -k 21 -W 50 -O sketches/ *.fa.gz
//	kmerlath compare sketches/a.fa.shs sketches/b.fa.shs
//	kmerlath cluster -k 21 -W 50 reads.fq
package kmerlath
