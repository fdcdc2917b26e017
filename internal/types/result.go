package types

// DimensionScores holds the six independent sub-scores of a diagnostic.
// Every field is floored at 0; reserves and income can exceed their base
// maximum through stacked bonuses, so the total is not clamped.
type DimensionScores struct {
	Debts    int `json:"debts"`
	Behavior int `json:"behavior"`
	Spending int `json:"spending"`
	Goals    int `json:"goals"`
	Reserves int `json:"reserves"`
	Income   int `json:"income"`
}

// Total returns the Score Express: the plain sum of all six dimensions.
func (d DimensionScores) Total() int {
	return d.Debts + d.Behavior + d.Spending + d.Goals + d.Reserves + d.Income
}
