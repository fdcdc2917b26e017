package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finwell/score-express/internal/score"
	"github.com/finwell/score-express/internal/types"
)

func TestPrintAnalysisRecord(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	record := &types.AnalysisRecord{
		Debts: types.DebtInfo{
			HasDebts:      true,
			TotalDebt:     12000,
			IsOverdue:     true,
			OverdueMonths: 4,
		},
		Spending: types.SpendingInfo{
			MonthlyIncome:           5000,
			FixedExpensesPercentage: 0.55,
		},
		Behavior: types.BehaviorInfo{
			TracksExpenses: types.TrackingPartial,
		},
		Reserves: types.ReservesInfo{
			EmergencyFundMonths: 2,
			Invests:             true,
			InvestmentTypes:     []string{"tesouro", "cdb"},
		},
		Goals: types.GoalsInfo{HasDefinedGoals: true},
	}

	p.PrintAnalysisRecord(record)
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED ANALYSIS")
	assert.Contains(t, output, "12000.00")
	assert.Contains(t, output, "4 months")
	assert.Contains(t, output, "55% of income")
	assert.Contains(t, output, "tesouro, cdb")
	assert.Contains(t, output, "partial")
	assert.Contains(t, output, "Goals:         defined")
}

func TestPrintAnalysisRecord_NoDebts(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysisRecord(&types.AnalysisRecord{})
	output := buf.String()

	assert.Contains(t, output, "Debts:         none")
	assert.NotContains(t, output, "Negativado")
}

func TestPrintAnalysisRecord_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysisRecord(nil)

	assert.Empty(t, buf.String())
}

func TestPrintDimensionScores(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDimensionScores(types.DimensionScores{
		Debts:    20,
		Behavior: 13,
		Spending: 11,
		Goals:    9,
		Reserves: 17,
		Income:   10,
	})
	output := buf.String()

	assert.Contains(t, output, "DIMENSION SCORES")
	assert.Contains(t, output, "Debts")
	assert.Contains(t, output, "Reserves")
	assert.Contains(t, output, "Total")
	assert.Contains(t, output, "80")
}

func TestPrintClassification(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := score.Evaluate(&types.AnalysisRecord{})
	p.PrintClassification(result)
	output := buf.String()

	assert.Contains(t, output, "CLASSIFICATION")
	assert.Contains(t, output, "Band:")
	assert.Contains(t, output, "Profile:")
	assert.Contains(t, output, "Focus Areas:")
	assert.Contains(t, output, "Recommendations:")
}

func TestPrintClassification_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintClassification(nil)

	assert.Empty(t, buf.String())
}

func TestPrintBoxTruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 200))
	output := buf.String()

	assert.Contains(t, output, "...")
	for _, line := range strings.Split(strings.TrimSuffix(output, "\n"), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
}
