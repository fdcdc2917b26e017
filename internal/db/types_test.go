package db

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finwell/score-express/internal/types"
)

func TestStatusConstants(t *testing.T) {
	statuses := []string{
		DiagnosticStatusCompleted,
		DiagnosticStatusFailed,
		ConsultationStatusRequested,
		ConsultationStatusScheduled,
		ConsultationStatusDone,
		ConsultationStatusCanceled,
	}

	for _, status := range statuses {
		assert.NotEmpty(t, status, "status constant should not be empty")
	}
}

func TestDiagnosticType(t *testing.T) {
	d := Diagnostic{
		TotalScore: 87,
		Band:       "Em Evolução",
		Profile:    "Poupador",
		DimensionScores: types.DimensionScores{
			Debts: 25, Behavior: 12, Spending: 15, Goals: 11, Reserves: 16, Income: 8,
		},
	}

	assert.Equal(t, 87, d.TotalScore)
	assert.Equal(t, 87, d.DimensionScores.Total())
	assert.Nil(t, d.LeadID)
	assert.Nil(t, d.Analysis)
}
