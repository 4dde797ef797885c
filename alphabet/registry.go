package alphabet

import (
	"fmt"
	"sort"
	"strings"
)

// Protein alphabets.
var (
	Bytes256 = Bytes(false)
	Amino20  = MustNew("Standard20", "A,C,D,E,F,G,H,I,K,L,M,N,P,Q,R,S,T,V,W,Y", false)

	SEB14 = MustNew("SE-B(14)", "A,C,D,EQ,FY,G,H,IV,KR,LM,N,P,ST,W", false)

	SEB10  = MustNew("SE-B(10)", "AST,C,DN,EQ,FY,G,HW,ILMV,KR,P", false)
	SEV10  = MustNew("SE-V(10)", "AST,C,DEN,FY,G,H,ILMV,KQR,P,W", false)
	SolisD = MustNew("Solis-D", "AM,C,DNS,EKQR,F,GP,HT,IV,LY,W", false)
	SolisG = MustNew("Solis-G", "AEFIKLMQRVW,C,D,G,H,N,P,S,T,Y", false)
	Murphy = MustNew("Murphy", "A,C,DENQ,FWY,G,H,ILMV,KR,P,ST", false)
	LiA10  = MustNew("Li-A(10)", "AC,DE,FWY,G,HN,IV,KQR,LM,P,ST", false)
	LiB10  = MustNew("Li-B(10)", "AST,C,DEQ,FWY,G,HN,IV,KR,LM,P", false)

	SEB8 = MustNew("SE-B(8)", "AST,C,DHN,EKQR,FWY,G,ILMV,P", false)
	SEB6 = MustNew("SE-B(6)", "AST,CP,DHNEKQR,FWY,G,ILMV", false)

	Dayhoff = MustNew("Dayhoff", "AGPST,C,DENQ,FWY,HKR,ILMV", false)
)

// DNA alphabets.
var (
	DNA4 = MustNew("DNA4", "A,C,G,T", false)
	DNA5 = MustNew("DNA5", "A,C,G,T,NMRWSYKVHDB", false)

	DNA2Keto   = MustNew("DNA2-Keto", "ACM,KGT", false)  // amino / keto
	DNA2PurPyr = MustNew("DNA2-PurPyr", "AGR,YCT", false) // purines / pyrimidines
	DNA2Methyl = MustNew("DNA2-Methyl", "C,AGT", false)   // C / everything else
)

// registry maps upper-case names and aliases to the shared tables.
var registry = map[string]*Alphabet{
	"AMINO20": Amino20,
	"AMINO":   Amino20,
	"PROTEIN": Amino20,
	"SEB8":    SEB8,
	"SEB10":   SEB10,
	"SEB14":   SEB14,
	"SEV10":   SEV10,
	"SOLISD":  SolisD,
	"SOLISG":  SolisG,
	"MURPHY":  Murphy,
	"LIA10":   LiA10,
	"LIB10":   LiB10,
	"SEB6":    SEB6,
	"DAYHOFF": Dayhoff,

	"DNAMETH": DNA2Methyl,
	"C":       DNA2Methyl,
	"KETO":    DNA2Keto,
	"PURPYR":  DNA2PurPyr,

	"DNA4": DNA4,
	"DNA":  DNA4,
	"DNA5": DNA5,

	"BYTES": Bytes256,
}

// Lookup returns the shared alphabet registered under name, ignoring case
// and surrounding spaces.
func Lookup(name string) (*Alphabet, error) {
	if a, ok := registry[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return a, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlphabet, name)
}

// Names returns every registered name and alias in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
