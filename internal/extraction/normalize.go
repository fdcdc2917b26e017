package extraction

import (
	"strings"

	"github.com/finwell/score-express/internal/types"
)

// Normalize canonicalizes an extracted record in place: enum values are
// lowercased and trimmed and anything outside the closed set drops to
// unknown, negative numbers clamp to 0, ratio fields to [0,1], quality of
// life to [0,10], and set-valued fields are trimmed and de-duplicated.
func Normalize(a *types.AnalysisRecord) {
	d := &a.Debts
	d.TotalDebt = clampMin0(d.TotalDebt)
	d.OverdueMonths = clampMin0(d.OverdueMonths)
	d.DebtTypes = normalizeSet(d.DebtTypes)

	b := &a.Behavior
	b.TracksExpenses = types.TrackingHabit(canonEnum(string(b.TracksExpenses),
		string(types.TrackingRigorous), string(types.TrackingPartial),
		string(types.TrackingApproximate), string(types.TrackingNone)))
	b.ImpulseBuying = types.ImpulseBuying(canonEnum(string(b.ImpulseBuying),
		string(types.ImpulseNever), string(types.ImpulseSometimes),
		string(types.ImpulseFrequently), string(types.ImpulseVeryFrequently)))
	b.CreditCardUsage = types.CardUsage(canonEnum(string(b.CreditCardUsage),
		string(types.CardNoUse), string(types.CardFullPayment),
		string(types.CardSometimesInstallments), string(types.CardFrequentInstallments),
		string(types.CardRevolving)))
	b.LendsMoney = types.LendingHabit(canonEnum(string(b.LendsMoney),
		string(types.LendsNever), string(types.LendsSometimes), string(types.LendsFrequently)))
	b.Banks = normalizeSet(b.Banks)

	sp := &a.Spending
	sp.MonthlyIncome = clampMin0(sp.MonthlyIncome)
	sp.FixedExpensesPercentage = clampRange(sp.FixedExpensesPercentage, 0, 1)
	for category, amount := range sp.SpendingCategories {
		sp.SpendingCategories[category] = clampMin0(amount)
	}
	sp.EndOfMonth = types.EndOfMonth(canonEnum(string(sp.EndOfMonth),
		string(types.MonthEndSave), string(types.MonthEndZero), string(types.MonthEndLack)))

	g := &a.Goals
	g.HasDeadlines = types.DeadlineCoverage(canonEnum(string(g.HasDeadlines),
		string(types.DeadlinesAll), string(types.DeadlinesSome), string(types.DeadlinesNone)))
	g.TracksProgress = types.ProgressTracking(canonEnum(string(g.TracksProgress),
		string(types.ProgressMonthly), string(types.ProgressSometimes), string(types.ProgressNever)))
	g.RetirementAge = clampMin0(g.RetirementAge)
	g.RetirementIncomeGoal = clampMin0(g.RetirementIncomeGoal)

	r := &a.Reserves
	r.EmergencyFundMonths = clampMin0(r.EmergencyFundMonths)
	r.TotalAssets = clampMin0(r.TotalAssets)
	r.InvestmentTypes = normalizeSet(r.InvestmentTypes)
	r.InvestorProfile = types.InvestorProfile(canonEnum(string(r.InvestorProfile),
		string(types.InvestorConservative), string(types.InvestorModerate),
		string(types.InvestorAggressive)))
	r.InvestmentExperience = types.InvestmentExperience(canonEnum(string(r.InvestmentExperience),
		string(types.ExperienceNone), string(types.ExperienceBeginner),
		string(types.ExperienceIntermediate), string(types.ExperienceAdvanced)))
	r.Liquidity = strings.TrimSpace(r.Liquidity)

	i := &a.Income
	i.JobType = strings.TrimSpace(i.JobType)
	i.JobStabilityYears = clampMin0(i.JobStabilityYears)
	i.IncomeGrowth = types.IncomeGrowth(canonEnum(string(i.IncomeGrowth),
		string(types.GrowthSignificant), string(types.GrowthSome), string(types.GrowthStable),
		string(types.GrowthDecreasedSome), string(types.GrowthDecreasedSignificant)))
	i.IncomeSources = normalizeSet(i.IncomeSources)

	a.Protections.ProtectionTypes = normalizeSet(a.Protections.ProtectionTypes)

	a.QualityOfLife = clampRange(a.QualityOfLife, 0, 10)
}

// canonEnum lowercases and trims a value and returns it only if it belongs
// to the closed set; anything else becomes the unknown empty value.
func canonEnum(value string, valid ...string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, v := range valid {
		if value == v {
			return value
		}
	}
	return ""
}

// normalizeSet lowercases, trims and de-duplicates a set-valued field,
// preserving first-seen order.
func normalizeSet(items []string) []string {
	if len(items) == 0 {
		return items
	}
	result := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		normalized := strings.ToLower(strings.TrimSpace(item))
		if normalized != "" && !seen[normalized] {
			result = append(result, normalized)
			seen[normalized] = true
		}
	}
	return result
}

func clampMin0(n float64) float64 {
	if n < 0 {
		return 0
	}
	return n
}

func clampRange(n, lo, hi float64) float64 {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
