package cmd

import (
	"github.com/polaires/Protein-engineering-tools-sub000/internal/codon"
	"github.com/spf13/cobra"
)

// analyzeCmd is for expanding a degenerate codon and reporting the amino
// acid distribution it produces
var analyzeCmd = &cobra.Command{
	Use:                        "analyze [degenerate codon]",
	Short:                      "Analyze the amino acid distribution of a degenerate codon",
	Run:                        codon.AnalyzeCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  codonlib analyze NNK",
	Long: `Expand a 3-symbol degenerate codon (IUPAC ambiguity codes) into its
concrete codons and report each encoded amino acid with its count and
frequency, stop-codon warnings, and physicochemical category totals.`,
}

// expandCmd is for listing the concrete codons of a degenerate codon
var expandCmd = &cobra.Command{
	Use:                        "expand [degenerate codon]",
	Short:                      "List every concrete codon of a degenerate codon",
	Run:                        codon.ExpandCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  codonlib expand NNS",
}

// set flags
func init() {
	analyzeCmd.Flags().String("csv", "", "path to write the analysis rows as CSV")

	RootCmd.AddCommand(analyzeCmd)
	RootCmd.AddCommand(expandCmd)
}
