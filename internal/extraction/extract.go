// Package extraction converts free-form diagnostic conversation transcripts
// into structured analysis records via LLM extraction. The scoring engine
// consumes only what this package produces: a schema-valid, normalized
// record, possibly sparse.
package extraction

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/finwell/score-express/internal/llm"
	"github.com/finwell/score-express/internal/prompts"
	"github.com/finwell/score-express/internal/schemas"
	"github.com/finwell/score-express/internal/types"
)

// extractionTimeout bounds a single extraction call. A timed-out call is
// retried exactly once; any other failure is terminal.
const extractionTimeout = 45 * time.Second

// ExtractStructuredAnalysis runs the extraction prompt over a conversation
// transcript and returns the structured analysis record.
func ExtractStructuredAnalysis(ctx context.Context, transcript string, apiKey string) (*types.AnalysisRecord, error) {
	if apiKey == "" {
		return nil, &APICallError{Message: "API key is required"}
	}

	config := llm.DefaultConfig()
	client, err := llm.NewClient(ctx, config, apiKey)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to create LLM client",
			Cause:   err,
		}
	}
	defer func() { _ = client.Close() }()

	return ExtractWithClient(ctx, client, transcript)
}

// ExtractWithClient is ExtractStructuredAnalysis over an existing client.
func ExtractWithClient(ctx context.Context, client llm.Client, transcript string) (*types.AnalysisRecord, error) {
	if transcript == "" {
		return nil, &ParseError{Message: "transcript is empty"}
	}

	prompt := buildExtractionPrompt(transcript)

	responseText, err := generateWithTimeout(ctx, client, prompt)
	if err != nil {
		if !errors.Is(err, context.DeadlineExceeded) {
			return nil, &APICallError{
				Message: "failed to generate analysis",
				Cause:   err,
			}
		}
		// Single automatic retry on timeout.
		responseText, err = generateWithTimeout(ctx, client, prompt)
		if err != nil {
			return nil, &APICallError{
				Message: "extraction timed out after retry",
				Cause:   err,
			}
		}
	}

	return ParseAnalysisRecord([]byte(llm.CleanJSONBlock(responseText)))
}

// ParseAnalysisRecord validates raw analysis JSON against the shape
// contract, decodes it and normalizes the result. It is the entry point
// for pre-extracted records arriving through the API or CLI, skipping the
// LLM call entirely.
func ParseAnalysisRecord(data []byte) (*types.AnalysisRecord, error) {
	if err := schemas.ValidateAnalysisRecord(data); err != nil {
		return nil, err
	}

	var record types.AnalysisRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, &ParseError{
			Message: "failed to decode analysis JSON",
			Cause:   err,
		}
	}

	Normalize(&record)
	return &record, nil
}

func generateWithTimeout(ctx context.Context, client llm.Client, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, extractionTimeout)
	defer cancel()
	return client.GenerateJSON(callCtx, prompt, llm.TierStandard)
}

func buildExtractionPrompt(transcript string) string {
	template := prompts.MustGet("extraction.json", "extract-analysis-record")
	return prompts.Format(template, map[string]string{
		"Transcript": transcript,
	})
}
