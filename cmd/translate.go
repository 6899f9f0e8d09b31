package cmd

import (
	"github.com/polaires/Protein-engineering-tools-sub000/internal/codon"
	"github.com/spf13/cobra"
)

// translateCmd is for translating a concrete DNA sequence into protein
var translateCmd = &cobra.Command{
	Use:                        "translate [dna]",
	Short:                      "Translate a DNA sequence to protein",
	Run:                        codon.TranslateCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  codonlib translate ATGTGGTAA",
}

// set flags
func init() {
	translateCmd.Flags().Bool("revcomp", false, "translate the reverse complement")

	RootCmd.AddCommand(translateCmd)
}
