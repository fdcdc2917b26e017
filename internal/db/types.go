package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/finwell/score-express/internal/types"
)

// Diagnostic status values.
const (
	DiagnosticStatusCompleted = "completed"
	DiagnosticStatusFailed    = "failed"
)

// Consultation status values.
const (
	ConsultationStatusRequested = "requested"
	ConsultationStatusScheduled = "scheduled"
	ConsultationStatusDone      = "done"
	ConsultationStatusCanceled  = "canceled"
)

// Lead represents a registered lead.
type Lead struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Diagnostic represents one completed diagnostic run. A new run always
// produces a new row; rows are never updated in place.
type Diagnostic struct {
	ID              uuid.UUID             `json:"id"`
	LeadID          *uuid.UUID            `json:"lead_id,omitempty"`
	Transcript      string                `json:"transcript,omitempty"`
	Analysis        *types.AnalysisRecord `json:"analysis"`
	DimensionScores types.DimensionScores `json:"dimension_scores"`
	TotalScore      int                   `json:"total_score"`
	Band            string                `json:"band"`
	Profile         string                `json:"profile"`
	CreatedAt       time.Time             `json:"created_at"`
}

// ScoreHistoryEntry is one archived total per lead per diagnostic run.
type ScoreHistoryEntry struct {
	ID           uuid.UUID `json:"id"`
	LeadID       uuid.UUID `json:"lead_id"`
	DiagnosticID uuid.UUID `json:"diagnostic_id"`
	TotalScore   int       `json:"total_score"`
	Band         string    `json:"band"`
	CreatedAt    time.Time `json:"created_at"`
}

// Consultation represents a consultation request for a lead.
type Consultation struct {
	ID        uuid.UUID `json:"id"`
	LeadID    uuid.UUID `json:"lead_id"`
	Topic     string    `json:"topic"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// DiagnosticFilters holds optional filters for listing diagnostics.
type DiagnosticFilters struct {
	LeadID  uuid.UUID
	Band    string
	Profile string
	Limit   int
}
