package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/axe08/tmasearcher-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tmasearcher-api",
	Short: "TMA Searcher API server",
	Long: `TMA Searcher API - episode search and engagement for the TMASTL shows

The service scrapes the station site for new episodes, reconciles audio
URLs from the podcast RSS feed, and serves a searchable episode catalog
with user accounts, favorites, comments, and likes.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)
}

// loadConfig loads the configuration when a command needs it. Version and
// help run without config.
func loadConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
