package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finwell/score-express/internal/types"
)

func TestEvaluate_EmptyRecord(t *testing.T) {
	res := Evaluate(&types.AnalysisRecord{})

	// 25 debts + 15 spending + 1 income and nothing else.
	assert.Equal(t, 41, res.TotalScore)
	assert.Equal(t, BandCritico, res.Band.Name)
	assert.Equal(t, ProfileEndividado, res.Profile.Name)
}

func TestEvaluate_HighDebtScenario(t *testing.T) {
	a := &types.AnalysisRecord{
		Debts:    types.DebtInfo{HasDebts: true, TotalDebt: 10000},
		Spending: types.SpendingInfo{MonthlyIncome: 2000},
	}
	res := Evaluate(a)

	// Ratio 5 lands in the worst bracket with no penalties on top.
	assert.Equal(t, 2, res.DimensionScores.Debts)
}

func TestEvaluate_TotalIsSumOfDimensions(t *testing.T) {
	a := &types.AnalysisRecord{
		Behavior: types.BehaviorInfo{
			TracksExpenses:  types.TrackingRigorous,
			ImpulseBuying:   types.ImpulseNever,
			CreditCardUsage: types.CardFullPayment,
		},
		Goals: types.GoalsInfo{
			HasDefinedGoals: true,
			HasDeadlines:    types.DeadlinesAll,
			TracksProgress:  types.ProgressMonthly,
		},
	}
	res := Evaluate(a)

	ds := res.DimensionScores
	assert.Equal(t, ds.Debts+ds.Behavior+ds.Spending+ds.Goals+ds.Reserves+ds.Income, res.TotalScore)
	assert.Equal(t, res.TotalScore, ds.Total())
}

func TestEvaluate_MaximalRecord(t *testing.T) {
	// Bonus stacking carries reserves to 40 (35 plus the protections
	// bonus) and income to 20, past their base maximums of 15 and 10. The
	// sum is never clamped; product owners have the 150 ceiling documented
	// as nominal, not enforced.
	a := &types.AnalysisRecord{
		Behavior: types.BehaviorInfo{
			TracksExpenses:  types.TrackingRigorous,
			ImpulseBuying:   types.ImpulseNever,
			CreditCardUsage: types.CardFullPayment,
		},
		Spending: types.SpendingInfo{
			MonthlyIncome:           10000,
			FixedExpensesPercentage: 0.2,
			EndOfMonth:              types.MonthEndSave,
		},
		Goals: types.GoalsInfo{
			HasDefinedGoals: true,
			HasDeadlines:    types.DeadlinesAll,
			TracksProgress:  types.ProgressMonthly,
		},
		Reserves: types.ReservesInfo{
			EmergencyFundMonths: 12,
			Invests:             true,
			InvestmentTypes: []string{
				"tesouro direto", "cdb", "ações", "fundos imobiliários", "etf",
			},
			TotalAssets:               500000,
			HasIncomeGeneratingAssets: true,
		},
		Income: types.IncomeInfo{
			HasMultipleSources: true,
			JobStabilityYears:  10,
			HasPassiveIncome:   true,
			IncomeGrowth:       types.GrowthSignificant,
		},
		Protections: types.ProtectionsInfo{
			HasProtections:  true,
			ProtectionTypes: []string{"vida", "saúde", "residencial", "auto", "invalidez"},
		},
	}
	res := Evaluate(a)

	require.Equal(t, 25, res.DimensionScores.Debts)
	require.Equal(t, 20, res.DimensionScores.Behavior)
	require.Equal(t, 18, res.DimensionScores.Spending)
	require.Equal(t, 15, res.DimensionScores.Goals)
	require.Equal(t, 40, res.DimensionScores.Reserves)
	require.Equal(t, 20, res.DimensionScores.Income)

	assert.Equal(t, 138, res.TotalScore)
	assert.Equal(t, BandAvancado, res.Band.Name)
	assert.Equal(t, ProfileInvestidor, res.Profile.Name)
}

func TestEvaluate_DoesNotMutateInput(t *testing.T) {
	a := &types.AnalysisRecord{
		Debts:    types.DebtInfo{HasDebts: true, TotalDebt: 3000},
		Spending: types.SpendingInfo{MonthlyIncome: 2000},
	}
	before := *a

	_ = Evaluate(a)
	assert.Equal(t, before, *a)
}
