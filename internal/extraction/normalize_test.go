package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finwell/score-express/internal/types"
)

func TestNormalize_CanonicalizesEnums(t *testing.T) {
	a := &types.AnalysisRecord{
		Behavior: types.BehaviorInfo{
			TracksExpenses:  "  RIGOROUS ",
			ImpulseBuying:   "Sometimes",
			CreditCardUsage: "revolving",
			LendsMoney:      "often", // outside the closed set
		},
		Spending: types.SpendingInfo{EndOfMonth: "Save"},
	}

	Normalize(a)

	assert.Equal(t, types.TrackingRigorous, a.Behavior.TracksExpenses)
	assert.Equal(t, types.ImpulseSometimes, a.Behavior.ImpulseBuying)
	assert.Equal(t, types.CardRevolving, a.Behavior.CreditCardUsage)
	assert.Equal(t, types.LendingHabit(""), a.Behavior.LendsMoney)
	assert.Equal(t, types.MonthEndSave, a.Spending.EndOfMonth)
}

func TestNormalize_ClampsNumericRanges(t *testing.T) {
	a := &types.AnalysisRecord{
		Debts: types.DebtInfo{TotalDebt: -100, OverdueMonths: -2},
		Spending: types.SpendingInfo{
			MonthlyIncome:           -500,
			FixedExpensesPercentage: 1.8,
			SpendingCategories:      map[string]float64{"lazer": -50},
		},
		Reserves:      types.ReservesInfo{EmergencyFundMonths: -1},
		QualityOfLife: 12,
	}

	Normalize(a)

	assert.Zero(t, a.Debts.TotalDebt)
	assert.Zero(t, a.Debts.OverdueMonths)
	assert.Zero(t, a.Spending.MonthlyIncome)
	assert.Equal(t, 1.0, a.Spending.FixedExpensesPercentage)
	assert.Zero(t, a.Spending.SpendingCategories["lazer"])
	assert.Zero(t, a.Reserves.EmergencyFundMonths)
	assert.Equal(t, 10.0, a.QualityOfLife)
}

func TestNormalize_DeduplicatesSets(t *testing.T) {
	a := &types.AnalysisRecord{
		Reserves: types.ReservesInfo{
			InvestmentTypes: []string{"CDB", "cdb ", " Ações", "ações", ""},
		},
		Protections: types.ProtectionsInfo{
			ProtectionTypes: []string{"Vida", "vida", "Saúde"},
		},
	}

	Normalize(a)

	assert.Equal(t, []string{"cdb", "ações"}, a.Reserves.InvestmentTypes)
	assert.Equal(t, []string{"vida", "saúde"}, a.Protections.ProtectionTypes)
}

func TestNormalize_EmptyRecordIsUntouched(t *testing.T) {
	a := &types.AnalysisRecord{}
	Normalize(a)
	assert.Equal(t, types.AnalysisRecord{}, *a)
}
