package encoder_test

import (
	"fmt"

	"github.com/katalvlaran/kmerlath/encoder"
	"github.com/katalvlaran/kmerlath/rhtraits"
	"github.com/katalvlaran/kmerlath/spacer"
)

// ExampleEncoder_Kmers encodes every spaced seed of a short read.
func ExampleEncoder_Kmers() {
	sp, _ := spacer.FromSkips(3, []int{1})
	enc, err := encoder.New(sp)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for pos, key := range enc.Kmers([]byte("ACGTNAC")) {
		if key == enc.Invalid() {
			fmt.Println(pos, "invalid")
			continue
		}
		fmt.Println(pos, sp.Render(key, rhtraits.DNA))
	}
	// Output:
	// 0 A-GT
	// 1 invalid
	// 2 invalid
	// 3 T-AC
}

// ExampleEncoder_Minimizers prints one minimizer per 6-base window.
func ExampleEncoder_Minimizers() {
	sp, _ := spacer.Contiguous(3)
	enc, _ := encoder.New(sp, encoder.WithWindow(6))
	for pos, key := range enc.Minimizers([]byte("TTGCATGA")) {
		fmt.Println(pos, sp.Render(key, rhtraits.DNA))
	}
	// Output:
	// 0 CAT
	// 1 ATG
	// 2 ATG
}
