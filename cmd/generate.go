package cmd

import (
	"github.com/polaires/Protein-engineering-tools-sub000/internal/codon"
	"github.com/spf13/cobra"
)

// generateCmd is for reverse synthesis: finding degenerate codons whose
// expansion covers a target amino acid set
var generateCmd = &cobra.Command{
	Use:                        "generate [amino acids]",
	Short:                      "Generate degenerate codons covering an amino acid set",
	Run:                        codon.GenerateCmd,
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"synthesize", "design"},
	Example:                    "  codonlib generate AG --strategy minimal",
	Long: `Search for degenerate codons whose expansion encodes every amino acid
in the target set.

Strategies:
  minimal   the most compact covering codon(s)
  all       every exact codon plus one maximally ambiguous cover
  balanced  widen the target to physicochemical neighbors, rank the top 5
            candidates by stop-codon frequency then off-target amino acids`,
}

// set flags
func init() {
	generateCmd.Flags().StringP("strategy", "s", "minimal", "search strategy: minimal, all or balanced")

	RootCmd.AddCommand(generateCmd)
}
