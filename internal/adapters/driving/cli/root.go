// Package cli is the command-line adapter. It wires settings, the Entra ID
// credential chain, the Azure adapters, and the core services, and exposes
// them as cobra commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/foundry-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "foundry",
	Short: "Azure AI Foundry agents, vector search, and ingestion workflows",
	Long: `foundry serves an MCP tool surface over Azure AI Foundry agents and an
Azure AI Search project-log vector index, deploys the workflow agents, and
runs the customer-story ingestion pipeline from the command line.

Configuration comes from environment variables, optionally backed by a
config file at ~/.foundry/config.toml (override with FOUNDRY_CONFIG).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetVerbose(true)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable verbose logging on stderr")
}

// Execute runs the root command. Errors are printed as a single line on
// stderr and exit with code 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
