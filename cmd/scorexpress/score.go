package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/finwell/score-express/internal/config"
	"github.com/finwell/score-express/internal/extraction"
	"github.com/finwell/score-express/internal/observability"
	"github.com/finwell/score-express/internal/score"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a pre-extracted analysis record",
	Long: `Reads an analysis record from a JSON file, runs the scoring engine and prints the result.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runScoreCmd,
}

var (
	scoreConfigPath string
	scoreIn         string
	scoreOut        string
	scoreVerbose    bool
)

func init() {
	scoreCmd.Flags().StringVar(&scoreConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	scoreCmd.Flags().StringVarP(&scoreIn, "in", "i", "", "Path to analysis record JSON file")
	scoreCmd.Flags().StringVarP(&scoreOut, "out", "o", "", "Path to write the result JSON to (defaults to stdout)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(scoreCmd)
}

func runScoreCmd(cmd *cobra.Command, _ []string) error {
	// Load config file if provided
	var cfg config.Config
	if scoreConfigPath != "" {
		loadedCfg, err := config.LoadConfig(scoreConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	// Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("in") {
		cfg.Analysis = scoreIn
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = scoreOut
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = scoreVerbose
	}

	if cfg.Analysis == "" {
		return fmt.Errorf("--in is required (via flag or config)")
	}

	data, err := os.ReadFile(cfg.Analysis)
	if err != nil {
		return fmt.Errorf("failed to read analysis file: %w", err)
	}

	record, err := extraction.ParseAnalysisRecord(data)
	if err != nil {
		return fmt.Errorf("invalid analysis record: %w", err)
	}

	result := score.Evaluate(record)

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintAnalysisRecord(record)
		printer.PrintDimensionScores(result.DimensionScores)
		printer.PrintClassification(result)
	}

	return writeResult(result, cfg.Output)
}

// writeResult marshals the result and writes it to the given path, or to
// stdout when the path is empty.
func writeResult(result *score.Result, path string) error {
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if path == "" {
		fmt.Println(string(out))
		return nil
	}

	if err := os.WriteFile(path, append(out, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
