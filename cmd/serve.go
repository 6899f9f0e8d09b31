package cmd

import (
	"fmt"
	"log"

	"github.com/polaires/Protein-engineering-tools-sub000/config"
	"github.com/polaires/Protein-engineering-tools-sub000/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd runs the engine as a local HTTP API for the desktop UI
var serveCmd = &cobra.Command{
	Use:                        "serve",
	Short:                      "Serve the engine as a local HTTP API",
	SuggestionsMinimumDistance: 2,
	Example:                    "  codonlib serve --port 8000",
	Long: `Expose analysis, reverse synthesis and library calculation over a local
HTTP API with prometheus metrics at /metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		c := config.New()
		addr := fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
		if err := server.New().ListenAndServe(addr); err != nil {
			log.Fatalf("%v", err)
		}
	},
}

// set flags
func init() {
	serveCmd.Flags().String("host", "127.0.0.1", "interface to bind")
	serveCmd.Flags().Int("port", 8000, "port to listen on")

	viper.BindPFlag("server.host", serveCmd.Flags().Lookup("host"))
	viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))

	RootCmd.AddCommand(serveCmd)
}
