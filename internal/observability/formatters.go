// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/finwell/score-express/internal/score"
	"github.com/finwell/score-express/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysisRecord outputs a human-readable summary of the extracted record.
func (p *Printer) PrintAnalysisRecord(record *types.AnalysisRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	if record.Debts.HasDebts {
		sb.WriteString(fmt.Sprintf("Debts:         R$ %.2f\n", record.Debts.TotalDebt))
		if record.Debts.IsOverdue {
			sb.WriteString(fmt.Sprintf("Overdue:       %.0f months\n", record.Debts.OverdueMonths))
		}
		if record.Debts.IsNegativado {
			sb.WriteString("Negativado:    yes\n")
		}
	} else {
		sb.WriteString("Debts:         none\n")
	}

	sb.WriteString(fmt.Sprintf("Income:        R$ %.2f/month\n", record.Spending.MonthlyIncome))
	sb.WriteString(fmt.Sprintf("Fixed costs:   %.0f%% of income\n", record.Spending.FixedExpensesPercentage*100))
	sb.WriteString(fmt.Sprintf("Reserve:       %.1f months\n", record.Reserves.EmergencyFundMonths))

	if record.Reserves.Invests {
		held := strings.Join(record.Reserves.InvestmentTypes, ", ")
		if held == "" {
			held = "unspecified"
		}
		sb.WriteString(fmt.Sprintf("Investments:   %s\n", held))
	}

	if record.Behavior.TracksExpenses != "" {
		sb.WriteString(fmt.Sprintf("Tracking:      %s\n", record.Behavior.TracksExpenses))
	}
	if record.Goals.HasDefinedGoals {
		sb.WriteString("Goals:         defined\n")
	}

	p.printBox("EXTRACTED ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDimensionScores outputs the six dimension scores and the total.
func (p *Printer) PrintDimensionScores(scores types.DimensionScores) {
	var sb strings.Builder

	rows := []struct {
		label string
		value int
	}{
		{"Debts", scores.Debts},
		{"Behavior", scores.Behavior},
		{"Spending", scores.Spending},
		{"Goals", scores.Goals},
		{"Reserves", scores.Reserves},
		{"Income", scores.Income},
	}
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("%-10s %3d\n", row.label, row.value))
	}
	sb.WriteString(strings.Repeat("-", 14) + "\n")
	sb.WriteString(fmt.Sprintf("%-10s %3d", "Total", scores.Total()))

	p.printBox("DIMENSION SCORES", sb.String())
}

// PrintClassification outputs the score band and behavioral profile with
// their recommendations.
func (p *Printer) PrintClassification(result *score.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Band:     %s\n", result.Band.Name))
	sb.WriteString(fmt.Sprintf("Profile:  %s\n", result.Profile.Name))
	sb.WriteString("\n")

	if len(result.Band.FocusAreas) > 0 {
		sb.WriteString("Focus Areas:\n")
		count := min(len(result.Band.FocusAreas), maxItemsToShow)
		for i := 0; i < count; i++ {
			area := result.Band.FocusAreas[i]
			if len(area) > 50 {
				area = area[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", area))
		}
		sb.WriteString("\n")
	}

	if len(result.Profile.Recommendations) > 0 {
		sb.WriteString("Recommendations:\n")
		count := min(len(result.Profile.Recommendations), maxItemsToShow)
		for i := 0; i < count; i++ {
			rec := result.Profile.Recommendations[i]
			if len(rec) > 50 {
				rec = rec[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
		if len(result.Profile.Recommendations) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Profile.Recommendations)-maxItemsToShow))
		}
	}

	p.printBox("CLASSIFICATION", strings.TrimSuffix(sb.String(), "\n"))
}
