// Package alphabet maps raw sequence bytes to small integer ids through
// immutable 256-entry lookup tables.
//
// What:
//
//   - An Alphabet is built from a comma-separated grouping string such as
//     "A,C,D,EQ,FY,G,H,IV,KR,LM,N,P,ST,W": every group becomes one id,
//     assigned left to right.
//   - Upper and lower case always share an id; the table stores both so a
//     lookup is a single array index.
//   - Letters the definition leaves out map to Invalid, except Pyrrolysine
//     (P) and Selenocysteine (U), which fold onto Lysine (K) and Cysteine (C).
//   - With padding enabled id 0 is reserved and real groups start at 1.
//
// Why:
//
//   - Reduced amino-acid alphabets shrink the keyspace of protein k-mers
//     while keeping biochemically similar residues together.
//   - Binary DNA alphabets (purine/pyrimidine, methylation) allow very long
//     seeds in one machine word.
//
// Registry:
//
//	Amino20, SEB14, SEB10, SEV10, SolisD, SolisG, Murphy, LiA10, LiB10,
//	SEB8, SEB6, Dayhoff, DNA4, DNA5, DNA2Keto, DNA2PurPyr, DNA2Methyl and
//	Bytes256 are built once at package initialisation and shared read-only.
//	Lookup resolves names and aliases case-insensitively ("amino", "DNA", ...).
//
// Errors:
//
//   - ErrEmptyDefinition:   definition string is empty.
//   - ErrUnterminatedGroup: a group has no member (leading, trailing or doubled comma).
//   - ErrInvalidSymbol:     a definition character is not an ASCII letter.
//   - ErrDuplicateSymbol:   a letter appears in more than one group.
//   - ErrUnknownAlphabet:   Lookup found no table for the name.
//
// Complexity: construction O(len(definition) + 256), Translate O(1).
//
// Reference: Edgar, RC (2004) Local homology recognition and distance
// measures in linear time using compressed amino acid alphabets,
// NAR 32(1), 380-385.
package alphabet
