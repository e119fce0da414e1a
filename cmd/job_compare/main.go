// Package main provides the job_compare CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath string
	tagsPath   string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "job_compare",
	Short: "Browse and compare AI training job listings",
	Long: `job_compare loads tagged job listings from several companies and lets you
filter them, find similar roles across companies and compare the market,
either from the terminal or through a JSON API.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&tagsPath, "tags", "", "Path to the tag list (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print the load summary")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
