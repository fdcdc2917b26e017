package score

import (
	"github.com/finwell/score-express/internal/types"
)

// Result is the full outcome of one diagnostic run: the six dimension
// scores, their sum, the score band and the behavioral profile.
type Result struct {
	DimensionScores types.DimensionScores `json:"dimension_scores"`
	TotalScore      int                   `json:"total_score"`
	Band            Band                  `json:"score_classification"`
	Profile         Profile               `json:"profile"`
}

// Evaluate runs the complete engine over a schema-valid analysis record.
// It never fails: missing fields contribute the no-evidence branch of each
// rule. Callers are responsible for validating the record's shape before
// invoking it.
func Evaluate(a *types.AnalysisRecord) *Result {
	scores := ComputeDimensionScores(a)
	total := scores.Total()
	return &Result{
		DimensionScores: scores,
		TotalScore:      total,
		Band:            ClassifyBand(total),
		Profile:         ClassifyProfile(total, a),
	}
}
