package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/finwell/score-express/internal/score"
	"github.com/finwell/score-express/internal/types"
)

// CreateDiagnostic persists one diagnostic run and returns its ID.
func (db *DB) CreateDiagnostic(ctx context.Context, leadID *uuid.UUID, transcript string, analysis *types.AnalysisRecord, result *score.Result) (uuid.UUID, error) {
	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}
	scoresJSON, err := json.Marshal(result.DimensionScores)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal dimension scores: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO diagnostics (lead_id, transcript, analysis, dimension_scores, total_score, band, profile, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		leadID, transcript, analysisJSON, scoresJSON,
		result.TotalScore, result.Band.Name, result.Profile.Name, DiagnosticStatusCompleted,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create diagnostic: %w", err)
	}
	return id, nil
}

// GetDiagnostic retrieves a diagnostic by ID, or nil when not found.
func (db *DB) GetDiagnostic(ctx context.Context, id uuid.UUID) (*Diagnostic, error) {
	var d Diagnostic
	var transcript *string
	var analysisJSON, scoresJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, lead_id, transcript, analysis, dimension_scores, total_score, band, profile, created_at
		 FROM diagnostics WHERE id = $1`,
		id,
	).Scan(&d.ID, &d.LeadID, &transcript, &analysisJSON, &scoresJSON,
		&d.TotalScore, &d.Band, &d.Profile, &d.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get diagnostic: %w", err)
	}

	if transcript != nil {
		d.Transcript = *transcript
	}
	if len(analysisJSON) > 0 {
		var analysis types.AnalysisRecord
		if err := json.Unmarshal(analysisJSON, &analysis); err == nil {
			d.Analysis = &analysis
		}
	}
	if len(scoresJSON) > 0 {
		if err := json.Unmarshal(scoresJSON, &d.DimensionScores); err != nil {
			return nil, fmt.Errorf("failed to decode dimension scores: %w", err)
		}
	}

	return &d, nil
}

// ListDiagnostics retrieves diagnostics with optional filters, newest first.
func (db *DB) ListDiagnostics(ctx context.Context, filters DiagnosticFilters) ([]Diagnostic, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, lead_id, total_score, band, profile, created_at
		FROM diagnostics WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.LeadID != uuid.Nil {
		query += fmt.Sprintf(" AND lead_id = $%d", argNum)
		args = append(args, filters.LeadID)
		argNum++
	}
	if filters.Band != "" {
		query += fmt.Sprintf(" AND band = $%d", argNum)
		args = append(args, filters.Band)
		argNum++
	}
	if filters.Profile != "" {
		query += fmt.Sprintf(" AND profile = $%d", argNum)
		args = append(args, filters.Profile)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list diagnostics: %w", err)
	}
	defer rows.Close()

	var diagnostics []Diagnostic
	for rows.Next() {
		var d Diagnostic
		if err := rows.Scan(&d.ID, &d.LeadID, &d.TotalScore, &d.Band, &d.Profile, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan diagnostic: %w", err)
		}
		diagnostics = append(diagnostics, d)
	}
	return diagnostics, nil
}

// DeleteDiagnostic deletes a diagnostic and its history entries (via cascade).
func (db *DB) DeleteDiagnostic(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM diagnostics WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete diagnostic: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("diagnostic not found: %s", id)
	}
	return nil
}

// AppendScoreHistory archives the total of a completed run for a lead.
func (db *DB) AppendScoreHistory(ctx context.Context, leadID, diagnosticID uuid.UUID, totalScore int, band string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO score_history (lead_id, diagnostic_id, total_score, band)
		 VALUES ($1, $2, $3, $4)`,
		leadID, diagnosticID, totalScore, band,
	)
	if err != nil {
		return fmt.Errorf("failed to append score history: %w", err)
	}
	return nil
}

// ListScoreHistory retrieves a lead's archived totals, oldest first.
func (db *DB) ListScoreHistory(ctx context.Context, leadID uuid.UUID) ([]ScoreHistoryEntry, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, lead_id, diagnostic_id, total_score, band, created_at
		 FROM score_history WHERE lead_id = $1 ORDER BY created_at ASC`,
		leadID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list score history: %w", err)
	}
	defer rows.Close()

	var entries []ScoreHistoryEntry
	for rows.Next() {
		var e ScoreHistoryEntry
		if err := rows.Scan(&e.ID, &e.LeadID, &e.DiagnosticID, &e.TotalScore, &e.Band, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan score history entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
