package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kmerlath/alphabet"
	"github.com/katalvlaran/kmerlath/rhtraits"
)

func (a *app) alphabetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alphabets",
		Short: "List residue-handling modes and named alphabets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(a.out, "mode\talphabet\tcardinality\tper32\tper64\tper128\tmax-k64")
			for _, m := range rhtraits.Modes() {
				fmt.Fprintf(a.out, "%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
					m, m.Alphabet().Name(), m.Cardinality(),
					rhtraits.SymbolsPerWord(m, 32),
					rhtraits.SymbolsPerWord(m, 64),
					rhtraits.SymbolsPerWord(m, 128),
					rhtraits.MaxSpan(m, 64))
			}

			fmt.Fprintln(a.out)
			fmt.Fprintln(a.out, "name\talphabet\tsize\tdefinition")
			for _, name := range alphabet.Names() {
				al, err := alphabet.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "%s\t%s\t%d\t%s\n", name, al.Name(), al.Size(), al.Definition())
			}
			return nil
		},
	}
}
