package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/finwell/score-express/internal/config"
	"github.com/finwell/score-express/internal/db"
	"github.com/finwell/score-express/internal/extraction"
	"github.com/finwell/score-express/internal/observability"
	"github.com/finwell/score-express/internal/score"
	"github.com/finwell/score-express/internal/types"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Run a full diagnostic over a conversation transcript",
	Long: `Extracts a structured analysis record from a transcript file via the LLM, scores it and prints the result. With --save the run is persisted.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runDiagnoseCmd,
}

var (
	diagnoseConfigPath  string
	diagnoseTranscript  string
	diagnoseLeadID      string
	diagnoseOut         string
	diagnoseAPIKey      string
	diagnoseDatabaseURL string
	diagnoseSave        bool
	diagnoseVerbose     bool
)

func init() {
	diagnoseCmd.Flags().StringVar(&diagnoseConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	diagnoseCmd.Flags().StringVarP(&diagnoseTranscript, "transcript", "t", "", "Path to conversation transcript text file")
	diagnoseCmd.Flags().StringVar(&diagnoseLeadID, "lead", "", "Lead UUID to attach the run to (required with --save)")
	diagnoseCmd.Flags().StringVarP(&diagnoseOut, "out", "o", "", "Path to write the result JSON to (defaults to stdout)")
	diagnoseCmd.Flags().BoolVar(&diagnoseSave, "save", false, "Persist the diagnostic run to the database")
	diagnoseCmd.Flags().BoolVarP(&diagnoseVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	diagnoseCmd.Flags().StringVar(&diagnoseAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for diagnostic persistence
	diagnoseCmd.Flags().StringVar(&diagnoseDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(diagnoseCmd)
}

func runDiagnoseCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Load config file if provided
	var cfg config.Config
	if diagnoseConfigPath != "" {
		loadedCfg, err := config.LoadConfig(diagnoseConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	// Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("transcript") {
		cfg.Transcript = diagnoseTranscript
	}
	if cmd.Flags().Changed("lead") {
		cfg.LeadID = diagnoseLeadID
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = diagnoseOut
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = diagnoseAPIKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = diagnoseDatabaseURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = diagnoseVerbose
	}

	if cfg.Transcript == "" {
		return fmt.Errorf("--transcript is required (via flag or config)")
	}

	// API Key handling
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	transcript, err := os.ReadFile(cfg.Transcript)
	if err != nil {
		return fmt.Errorf("failed to read transcript file: %w", err)
	}

	record, err := extraction.ExtractStructuredAnalysis(ctx, string(transcript), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	result := score.Evaluate(record)

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintAnalysisRecord(record)
		printer.PrintDimensionScores(result.DimensionScores)
		printer.PrintClassification(result)
	}

	if diagnoseSave {
		if err := saveDiagnostic(ctx, &cfg, string(transcript), record, result); err != nil {
			return err
		}
	}

	return writeResult(result, cfg.Output)
}

// saveDiagnostic persists the run and, when a lead is given, archives the
// total in its score history.
func saveDiagnostic(ctx context.Context, cfg *config.Config, transcript string, record *types.AnalysisRecord, result *score.Result) error {
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required with --save")
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	var leadID *uuid.UUID
	if cfg.LeadID != "" {
		id, err := uuid.Parse(cfg.LeadID)
		if err != nil {
			return fmt.Errorf("invalid lead ID format: %w", err)
		}
		lead, err := database.GetLead(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to fetch lead %s: %w", id, err)
		}
		if lead == nil {
			return fmt.Errorf("lead not found: %s", id)
		}
		leadID = &id
	}

	diagnosticID, err := database.CreateDiagnostic(ctx, leadID, transcript, record, result)
	if err != nil {
		return fmt.Errorf("failed to save diagnostic: %w", err)
	}

	if leadID != nil {
		if err := database.AppendScoreHistory(ctx, *leadID, diagnosticID, result.TotalScore, result.Band.Name); err != nil {
			return fmt.Errorf("failed to append score history: %w", err)
		}
	}

	fmt.Fprintf(os.Stderr, "Saved diagnostic %s\n", diagnosticID)
	return nil
}
