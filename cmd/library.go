package cmd

import (
	"github.com/polaires/Protein-engineering-tools-sub000/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var libraryDB = store.NewLibraryDB()

// libraryCmd groups the commands for building combinatorial codon
// libraries out of named positions
var libraryCmd = &cobra.Command{
	Use:                        "library",
	Short:                      "Manage combinatorial codon libraries",
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"lib"},
	Long: `Create codon libraries, add degenerate codon positions to them, and
recalculate the whole library's amino acid distributions and diversity.
Libraries are persisted in a local database between runs.`,
}

// libraryCreateCmd is for creating a new library in the db
var libraryCreateCmd = &cobra.Command{
	Use:                        "create [name]",
	Short:                      "Create a library with a single NNK position",
	Run:                        libraryDB.CreateCmd,
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"new"},
	Example:                    "  codonlib library create scan1",
}

// libraryListCmd is for listing saved libraries
var libraryListCmd = &cobra.Command{
	Use:                        "list",
	Short:                      "List saved libraries with their diversity",
	Run:                        libraryDB.ListCmd,
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"ls"},
}

// libraryDeleteCmd is for deleting a library from the db
var libraryDeleteCmd = &cobra.Command{
	Use:                        "delete [name]",
	Short:                      "Delete a library",
	Run:                        libraryDB.DeleteCmd,
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"rm", "remove"},
	Example:                    "  codonlib library delete scan1",
}

// libraryAddCmd is for appending a position to a library
var libraryAddCmd = &cobra.Command{
	Use:                        "add [library] [codon] [position name]",
	Short:                      "Add a degenerate codon position to a library",
	Run:                        libraryDB.AddCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  codonlib library add scan1 NNK \"site 42\"",
}

// librarySetCmd is for replacing a position's codon
var librarySetCmd = &cobra.Command{
	Use:                        "set [library] [position id] [codon]",
	Short:                      "Replace the codon of a library position",
	Run:                        libraryDB.SetCmd,
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"update"},
	Example:                    "  codonlib library set scan1 2 NDT",
}

// libraryRenameCmd is for renaming a position
var libraryRenameCmd = &cobra.Command{
	Use:                        "rename [library] [position id] [name]",
	Short:                      "Rename a library position",
	Run:                        libraryDB.RenameCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  codonlib library rename scan1 2 \"active site\"",
}

// libraryRemoveCmd is for removing a position; the last position can't be removed
var libraryRemoveCmd = &cobra.Command{
	Use:                        "drop [library] [position id]",
	Short:                      "Remove a position from a library",
	Run:                        libraryDB.RemoveCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  codonlib library drop scan1 2",
	Long: `Remove a position from a library by its id. A library always keeps at
least one position; removing the last one is rejected.`,
}

// libraryCalcCmd is for recalculating a library's analyses and diversity
var libraryCalcCmd = &cobra.Command{
	Use:                        "calc [library]",
	Short:                      "Recalculate a library's distributions and diversity",
	Run:                        libraryDB.CalcCmd,
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"calculate"},
	Example:                    "  codonlib library calc scan1",
	Long: `Analyze every position of a library. Results are all-or-nothing: if any
position holds an invalid codon, the error is reported and no results
are shown.`,
}

// set flags
func init() {
	libraryCmd.PersistentFlags().String("db", "", "path to the library database")
	viper.BindPFlag("db", libraryCmd.PersistentFlags().Lookup("db"))

	libraryCmd.AddCommand(libraryCreateCmd)
	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(libraryDeleteCmd)
	libraryCmd.AddCommand(libraryAddCmd)
	libraryCmd.AddCommand(librarySetCmd)
	libraryCmd.AddCommand(libraryRenameCmd)
	libraryCmd.AddCommand(libraryRemoveCmd)
	libraryCmd.AddCommand(libraryCalcCmd)

	RootCmd.AddCommand(libraryCmd)
}
