// Package main provides the entry point for the Score Express CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scorexpress",
	Short: "Score Express financial diagnostic engine",
	Long:  "Score Express turns financial diagnostic conversations into a 0-150 score, a score band and a behavioral profile, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
