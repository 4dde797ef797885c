// Package kmer defines Key, the packed integer form of a k-mer shared by
// the encoder, spacer and sketch packages.
//
// Key layout (stable, safe to persist):
//
//	key = Σ id_i · card^(span−1−i),   i = 0 … span−1
//
// where id_i is the reduced alphabet id of the i-th retained symbol of a
// seed and card is the alphabet cardinality of the residue-handling mode.
// The first retained symbol is the most significant base-card digit, so for
// equal spans numeric order equals lexical order of the decoded string.
// For power-of-two alphabets the layout is plain MSB-first bit packing with
// log2(card) bits per symbol; DNA keys are the classic 2-bit codes
// (A=0, C=1, G=2, T=3).
//
// A Key is always 128 bits wide. Callers choosing 32- or 64-bit words keep
// the upper bits zero. The invalid sentinel of a width is all ones over
// that width (see Invalid); encoders reject seed geometries whose valid
// keys could reach it.
package kmer
