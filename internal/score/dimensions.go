// Package score implements the Score Express engine: it turns a structured
// diagnostic analysis into six bounded dimension scores, a total, a score
// band and a behavioral profile. Every function in this package is pure and
// total: a sparsely populated record degrades to the "no evidence" branch of
// each rule instead of failing.
package score

import (
	"github.com/finwell/score-express/internal/types"
)

// ComputeDimensionScores computes the six dimension scores independently and
// composes them into an immutable result. Dimensions never go below 0;
// reserves and income can exceed their base maximum through stacked bonuses.
func ComputeDimensionScores(a *types.AnalysisRecord) types.DimensionScores {
	return types.DimensionScores{
		Debts:    scoreDebts(a),
		Behavior: scoreBehavior(&a.Behavior),
		Spending: scoreSpending(&a.Spending),
		Goals:    scoreGoals(&a.Goals),
		Reserves: scoreReserves(a),
		Income:   scoreIncome(&a.Income),
	}
}

// scoreDebts awards the full 25 when no debts are recorded. Otherwise the
// base comes from a descending step lookup on the debt-to-income ratio, and
// overdue/negativado penalties are subtracted afterwards. The overdue
// brackets are mutually exclusive: only the matching one applies.
func scoreDebts(a *types.AnalysisRecord) int {
	d := &a.Debts
	if !d.HasDebts {
		return 25
	}

	ratio := a.DebtRatio()
	var s int
	switch {
	case ratio < 0.3:
		s = 20
	case ratio < 0.5:
		s = 15
	case ratio < 1:
		s = 10
	case ratio < 2:
		s = 5
	default:
		s = 2
	}

	if d.IsOverdue {
		switch {
		case d.OverdueMonths > 6:
			s -= 10
		case d.OverdueMonths > 3:
			s -= 7
		default:
			s -= 5
		}
	}
	if d.IsNegativado {
		s -= 3
	}

	return floorZero(s)
}

// scoreBehavior sums three independent contributions: tracking habit,
// impulse control and card discipline. Revolving credit is the only habit
// that subtracts.
func scoreBehavior(b *types.BehaviorInfo) int {
	s := 0

	switch b.TracksExpenses {
	case types.TrackingRigorous:
		s += 8
	case types.TrackingPartial:
		s += 5
	case types.TrackingApproximate:
		s += 3
	case types.TrackingNone:
		// no credit
	}

	switch b.ImpulseBuying {
	case types.ImpulseNever:
		s += 7
	case types.ImpulseSometimes:
		s += 4
	case types.ImpulseFrequently:
		s += 2
	case types.ImpulseVeryFrequently:
		// no credit
	}

	switch b.CreditCardUsage {
	case types.CardFullPayment:
		s += 5
	case types.CardSometimesInstallments:
		s += 2
	case types.CardRevolving:
		s -= 5
	case types.CardNoUse, types.CardFrequentInstallments:
		// no credit
	}

	return floorZero(s)
}

// scoreSpending maps the fixed-expenses share of income through descending
// steps, then adjusts for the end-of-month cash position. An absent
// percentage is 0 and lands in the best bracket; see the default policy on
// types.AnalysisRecord.
func scoreSpending(sp *types.SpendingInfo) int {
	var s int
	switch {
	case sp.FixedExpensesPercentage <= 0.3:
		s = 15
	case sp.FixedExpensesPercentage <= 0.5:
		s = 11
	case sp.FixedExpensesPercentage <= 0.7:
		s = 7
	default:
		s = 3
	}

	switch sp.EndOfMonth {
	case types.MonthEndSave:
		s += 3
	case types.MonthEndLack:
		s -= 2
	case types.MonthEndZero:
		// neutral
	}

	return floorZero(s)
}

// scoreGoals is purely additive over goal definition, deadline coverage and
// progress tracking.
func scoreGoals(g *types.GoalsInfo) int {
	s := 0

	if g.HasDefinedGoals {
		s += 6
	}

	switch g.HasDeadlines {
	case types.DeadlinesAll:
		s += 5
	case types.DeadlinesSome:
		s += 3
	case types.DeadlinesNone:
		// no credit
	}

	switch g.TracksProgress {
	case types.ProgressMonthly:
		s += 4
	case types.ProgressSometimes:
		s += 2
	case types.ProgressNever:
		// no credit
	}

	return floorZero(s)
}

// scoreReserves stacks the emergency fund bracket with flat bonuses for
// investing, diversification, positive net worth and income-generating
// assets. The protections bonus lands here rather than in a dimension of
// its own, capped at 5. This stacking is what lets reserves reach 35 over
// its base maximum of 15.
func scoreReserves(a *types.AnalysisRecord) int {
	r := &a.Reserves
	s := 0

	switch {
	case r.EmergencyFundMonths >= 6:
		s += 10
	case r.EmergencyFundMonths >= 3:
		s += 7
	case r.EmergencyFundMonths >= 1:
		s += 4
	case r.EmergencyFundMonths > 0:
		s += 2
	}

	if r.Invests {
		s += 5
	}

	switch n := distinctCount(r.InvestmentTypes); {
	case n >= 5:
		s += 10
	case n >= 3:
		s += 7
	case n >= 2:
		s += 4
	}

	if r.TotalAssets-a.Debts.TotalDebt > 0 {
		s += 5
	}
	if r.HasIncomeGeneratingAssets {
		s += 5
	}

	if a.Protections.HasProtections {
		bonus := distinctCount(a.Protections.ProtectionTypes)
		if bonus > 5 {
			bonus = 5
		}
		s += bonus
	}

	return floorZero(s)
}

// scoreIncome stacks source multiplicity, stability, passive income and
// growth. Stability always contributes at least 1, unlike the other
// dimensions where missing evidence contributes nothing.
func scoreIncome(i *types.IncomeInfo) int {
	s := 0

	if i.HasMultipleSources {
		s += 5
	}

	switch {
	case i.JobStabilityYears >= 5:
		s += 5
	case i.JobStabilityYears >= 3:
		s += 4
	case i.JobStabilityYears >= 1:
		s += 3
	default:
		s += 1
	}

	if i.HasPassiveIncome {
		s += 5
	}

	switch i.IncomeGrowth {
	case types.GrowthSignificant:
		s += 5
	case types.GrowthSome:
		s += 3
	case types.GrowthStable, types.GrowthDecreasedSome, types.GrowthDecreasedSignificant:
		// no credit
	}

	return floorZero(s)
}

// floorZero clamps a score at the non-negative lower bound.
func floorZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// distinctCount counts distinct non-empty entries in a set-valued field.
func distinctCount(items []string) int {
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if item != "" {
			seen[item] = true
		}
	}
	return len(seen)
}
