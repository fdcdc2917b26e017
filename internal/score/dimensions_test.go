package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finwell/score-express/internal/types"
)

func TestScoreDebts_NoDebtsAwardsFull25(t *testing.T) {
	// The shortcut ignores every other debt field.
	a := &types.AnalysisRecord{
		Debts: types.DebtInfo{
			HasDebts:      false,
			TotalDebt:     500000,
			IsOverdue:     true,
			OverdueMonths: 12,
			IsNegativado:  true,
		},
	}
	assert.Equal(t, 25, scoreDebts(a))
}

func TestScoreDebts_RatioBrackets(t *testing.T) {
	cases := []struct {
		name     string
		debt     float64
		income   float64
		expected int
	}{
		{"ratio below 0.3", 500, 2000, 20},
		{"ratio below 0.5", 800, 2000, 15},
		{"ratio below 1", 1500, 2000, 10},
		{"ratio below 2", 3000, 2000, 5},
		{"ratio 2 and above", 10000, 2000, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := &types.AnalysisRecord{
				Debts:    types.DebtInfo{HasDebts: true, TotalDebt: tc.debt},
				Spending: types.SpendingInfo{MonthlyIncome: tc.income},
			}
			assert.Equal(t, tc.expected, scoreDebts(a))
		})
	}
}

func TestScoreDebts_ZeroIncomeUsesFloorOfOne(t *testing.T) {
	// total_debt / max(monthly_income, 1): with no income the ratio is the
	// debt itself, landing in the worst bracket.
	a := &types.AnalysisRecord{
		Debts: types.DebtInfo{HasDebts: true, TotalDebt: 10000},
	}
	assert.Equal(t, 2, scoreDebts(a))
}

func TestScoreDebts_OverdueBracketsAreMutuallyExclusive(t *testing.T) {
	base := func(months float64) *types.AnalysisRecord {
		return &types.AnalysisRecord{
			Debts: types.DebtInfo{
				HasDebts:      true,
				TotalDebt:     500,
				IsOverdue:     true,
				OverdueMonths: months,
			},
			Spending: types.SpendingInfo{MonthlyIncome: 2000},
		}
	}

	// Base 20 (ratio 0.25), then exactly one penalty bracket.
	assert.Equal(t, 10, scoreDebts(base(8)), "over 6 months subtracts 10")
	assert.Equal(t, 13, scoreDebts(base(4)), "over 3 months subtracts 7")
	assert.Equal(t, 15, scoreDebts(base(1)), "any overdue subtracts 5")
	assert.Equal(t, 15, scoreDebts(base(0)), "overdue with no months still subtracts 5")
}

func TestScoreDebts_NegativadoStacksWithOverdue(t *testing.T) {
	a := &types.AnalysisRecord{
		Debts: types.DebtInfo{
			HasDebts:      true,
			TotalDebt:     500,
			IsOverdue:     true,
			OverdueMonths: 8,
			IsNegativado:  true,
		},
		Spending: types.SpendingInfo{MonthlyIncome: 2000},
	}
	// 20 - 10 - 3
	assert.Equal(t, 7, scoreDebts(a))
}

func TestScoreDebts_FloorsAtZero(t *testing.T) {
	a := &types.AnalysisRecord{
		Debts: types.DebtInfo{
			HasDebts:      true,
			TotalDebt:     50000,
			IsOverdue:     true,
			OverdueMonths: 12,
			IsNegativado:  true,
		},
		Spending: types.SpendingInfo{MonthlyIncome: 2000},
	}
	// 2 - 10 - 3 would be negative.
	assert.Equal(t, 0, scoreDebts(a))
}

func TestScoreBehavior_AdditiveContributions(t *testing.T) {
	b := &types.BehaviorInfo{
		TracksExpenses:  types.TrackingRigorous,
		ImpulseBuying:   types.ImpulseNever,
		CreditCardUsage: types.CardFullPayment,
	}
	assert.Equal(t, 20, scoreBehavior(b))
}

func TestScoreBehavior_RevolvingSubtracts(t *testing.T) {
	b := &types.BehaviorInfo{
		TracksExpenses:  types.TrackingPartial,
		ImpulseBuying:   types.ImpulseSometimes,
		CreditCardUsage: types.CardRevolving,
	}
	// 5 + 4 - 5
	assert.Equal(t, 4, scoreBehavior(b))
}

func TestScoreBehavior_RevolvingAloneFloorsAtZero(t *testing.T) {
	b := &types.BehaviorInfo{CreditCardUsage: types.CardRevolving}
	assert.Equal(t, 0, scoreBehavior(b))
}

func TestScoreBehavior_UnknownHabitsScoreZero(t *testing.T) {
	assert.Equal(t, 0, scoreBehavior(&types.BehaviorInfo{}))
}

func TestScoreSpending_AbsentPercentageLandsInBestBracket(t *testing.T) {
	// Documented default: an absent ratio is 0, which falls in the ≤0.3
	// bracket and scores 15, not 3.
	assert.Equal(t, 15, scoreSpending(&types.SpendingInfo{}))
}

func TestScoreSpending_Brackets(t *testing.T) {
	cases := []struct {
		pct      float64
		expected int
	}{
		{0.25, 15},
		{0.3, 15},
		{0.45, 11},
		{0.5, 11},
		{0.65, 7},
		{0.7, 7},
		{0.9, 3},
	}
	for _, tc := range cases {
		sp := &types.SpendingInfo{FixedExpensesPercentage: tc.pct}
		assert.Equal(t, tc.expected, scoreSpending(sp), "pct %v", tc.pct)
	}
}

func TestScoreSpending_EndOfMonthAdjustments(t *testing.T) {
	save := &types.SpendingInfo{FixedExpensesPercentage: 0.6, EndOfMonth: types.MonthEndSave}
	assert.Equal(t, 10, scoreSpending(save))

	lack := &types.SpendingInfo{FixedExpensesPercentage: 0.6, EndOfMonth: types.MonthEndLack}
	assert.Equal(t, 5, scoreSpending(lack))

	zero := &types.SpendingInfo{FixedExpensesPercentage: 0.6, EndOfMonth: types.MonthEndZero}
	assert.Equal(t, 7, scoreSpending(zero))
}

func TestScoreSpending_SaverBonusExceedsBase(t *testing.T) {
	sp := &types.SpendingInfo{FixedExpensesPercentage: 0.2, EndOfMonth: types.MonthEndSave}
	assert.Equal(t, 18, scoreSpending(sp))
}

func TestScoreGoals_FullCredit(t *testing.T) {
	g := &types.GoalsInfo{
		HasDefinedGoals: true,
		HasDeadlines:    types.DeadlinesAll,
		TracksProgress:  types.ProgressMonthly,
	}
	assert.Equal(t, 15, scoreGoals(g))
}

func TestScoreGoals_PartialCredit(t *testing.T) {
	g := &types.GoalsInfo{
		HasDefinedGoals: true,
		HasDeadlines:    types.DeadlinesSome,
		TracksProgress:  types.ProgressSometimes,
	}
	assert.Equal(t, 11, scoreGoals(g))
}

func TestScoreGoals_EmptyScoresZero(t *testing.T) {
	assert.Equal(t, 0, scoreGoals(&types.GoalsInfo{}))
}

func TestScoreReserves_EmergencyFundMonotonicity(t *testing.T) {
	// Increasing fund months never decreases the score.
	prev := -1
	for _, months := range []float64{0, 0.5, 1, 3, 6, 12} {
		a := &types.AnalysisRecord{
			Reserves: types.ReservesInfo{EmergencyFundMonths: months},
		}
		s := scoreReserves(a)
		require.GreaterOrEqual(t, s, prev, "months %v", months)
		prev = s
	}
}

func TestScoreReserves_ReachesCeilingOf35(t *testing.T) {
	// 10 fund + 5 invests + 10 diversification + 5 net worth + 5
	// income-generating assets: well past the base maximum of 15.
	a := &types.AnalysisRecord{
		Reserves: types.ReservesInfo{
			EmergencyFundMonths: 6,
			Invests:             true,
			InvestmentTypes: []string{
				"tesouro direto", "cdb", "ações", "fundos imobiliários", "etf", "previdência",
			},
			TotalAssets:               250000,
			HasIncomeGeneratingAssets: true,
		},
	}
	assert.Equal(t, 35, scoreReserves(a))
}

func TestScoreReserves_ProtectionsBonusCappedAtFive(t *testing.T) {
	a := &types.AnalysisRecord{
		Protections: types.ProtectionsInfo{
			HasProtections: true,
			ProtectionTypes: []string{
				"vida", "saúde", "residencial", "auto", "invalidez", "viagem", "celular",
			},
		},
	}
	assert.Equal(t, 5, scoreReserves(a))
}

func TestScoreReserves_ProtectionsRequireFlag(t *testing.T) {
	// Types listed without has_protections contribute nothing.
	a := &types.AnalysisRecord{
		Protections: types.ProtectionsInfo{
			ProtectionTypes: []string{"vida", "saúde"},
		},
	}
	assert.Equal(t, 0, scoreReserves(a))
}

func TestScoreReserves_NetWorthBonusNeedsPositiveBalance(t *testing.T) {
	a := &types.AnalysisRecord{
		Debts:    types.DebtInfo{HasDebts: true, TotalDebt: 50000},
		Reserves: types.ReservesInfo{TotalAssets: 50000},
	}
	assert.Equal(t, 0, scoreReserves(a), "assets equal to debt is not positive net worth")

	a.Reserves.TotalAssets = 50001
	assert.Equal(t, 5, scoreReserves(a))
}

func TestScoreReserves_DiversificationCountsDistinctTypes(t *testing.T) {
	a := &types.AnalysisRecord{
		Reserves: types.ReservesInfo{
			InvestmentTypes: []string{"cdb", "cdb", "cdb"},
		},
	}
	assert.Equal(t, 0, scoreReserves(a), "duplicates count once, below the 2-type bracket")
}

func TestScoreIncome_StabilityAlwaysContributes(t *testing.T) {
	assert.Equal(t, 1, scoreIncome(&types.IncomeInfo{}))
}

func TestScoreIncome_StabilityBrackets(t *testing.T) {
	cases := []struct {
		years    float64
		expected int
	}{
		{0, 1},
		{1, 3},
		{3, 4},
		{5, 5},
		{20, 5},
	}
	for _, tc := range cases {
		i := &types.IncomeInfo{JobStabilityYears: tc.years}
		assert.Equal(t, tc.expected, scoreIncome(i), "years %v", tc.years)
	}
}

func TestScoreIncome_ReachesCeilingOf20(t *testing.T) {
	i := &types.IncomeInfo{
		HasMultipleSources: true,
		JobStabilityYears:  10,
		HasPassiveIncome:   true,
		IncomeGrowth:       types.GrowthSignificant,
	}
	assert.Equal(t, 20, scoreIncome(i))
}

func TestScoreIncome_DecreasedGrowthScoresNothingExtra(t *testing.T) {
	i := &types.IncomeInfo{IncomeGrowth: types.GrowthDecreasedSignificant}
	assert.Equal(t, 1, scoreIncome(i))
}

func TestComputeDimensionScores_EmptyRecordDefaults(t *testing.T) {
	ds := ComputeDimensionScores(&types.AnalysisRecord{})

	assert.Equal(t, 25, ds.Debts, "no debts recorded awards full 25")
	assert.Equal(t, 0, ds.Behavior)
	assert.Equal(t, 15, ds.Spending, "absent fixed-expenses ratio lands in the best bracket")
	assert.Equal(t, 0, ds.Goals)
	assert.Equal(t, 0, ds.Reserves)
	assert.Equal(t, 1, ds.Income, "stability bracket always contributes")
}

func TestComputeDimensionScores_NonNegativity(t *testing.T) {
	hostile := []*types.AnalysisRecord{
		{},
		{
			Debts: types.DebtInfo{
				HasDebts: true, TotalDebt: 1e9, IsOverdue: true,
				OverdueMonths: 120, IsNegativado: true,
			},
			Behavior: types.BehaviorInfo{
				TracksExpenses:  types.TrackingNone,
				ImpulseBuying:   types.ImpulseVeryFrequently,
				CreditCardUsage: types.CardRevolving,
			},
			Spending: types.SpendingInfo{
				FixedExpensesPercentage: 0.99,
				EndOfMonth:              types.MonthEndLack,
			},
			Income: types.IncomeInfo{IncomeGrowth: types.GrowthDecreasedSignificant},
		},
	}

	for _, a := range hostile {
		ds := ComputeDimensionScores(a)
		assert.GreaterOrEqual(t, ds.Debts, 0)
		assert.GreaterOrEqual(t, ds.Behavior, 0)
		assert.GreaterOrEqual(t, ds.Spending, 0)
		assert.GreaterOrEqual(t, ds.Goals, 0)
		assert.GreaterOrEqual(t, ds.Reserves, 0)
		assert.GreaterOrEqual(t, ds.Income, 0)
	}
}

func TestComputeDimensionScores_Idempotent(t *testing.T) {
	a := &types.AnalysisRecord{
		Debts: types.DebtInfo{HasDebts: true, TotalDebt: 3000},
		Behavior: types.BehaviorInfo{
			TracksExpenses: types.TrackingPartial,
			ImpulseBuying:  types.ImpulseSometimes,
		},
		Spending: types.SpendingInfo{MonthlyIncome: 2000, FixedExpensesPercentage: 0.4},
		Reserves: types.ReservesInfo{EmergencyFundMonths: 2, Invests: true},
	}

	first := ComputeDimensionScores(a)
	second := ComputeDimensionScores(a)
	assert.Equal(t, first, second)
}
