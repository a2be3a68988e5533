package cmd

import (
	"fmt"
	"os"

	"github.com/GuangSTrip/BenchAnnotate/pkg/config"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "benchannotate",
	Short: "BenchAnnotate API server",
	Long: `BenchAnnotate - a video question annotation API

Downloads remote videos, detects shot boundaries for the annotation
timeline, and keeps a persistent per-video ledger of timestamped
multiple-choice questions.

Features:
  • Video ingestion via yt-dlp
  • Shot-boundary detection via ffmpeg's scene filter
  • Append-only CSV annotation ledgers, one per video
  • Cross-video catalog with annotation counts`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

// loadConfig initializes the configuration for commands that need it
func loadConfig() error {
	if err := config.Init(); err != nil {
		return fmt.Errorf("error initializing config: %w", err)
	}
	return nil
}
