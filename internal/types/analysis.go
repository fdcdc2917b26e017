// Package types provides type definitions for structured data used throughout the score-express system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// TrackingHabit describes how consistently a person tracks their expenses.
type TrackingHabit string

// TrackingHabit values.
const (
	TrackingRigorous    TrackingHabit = "rigorous"
	TrackingPartial     TrackingHabit = "partial"
	TrackingApproximate TrackingHabit = "approximate"
	TrackingNone        TrackingHabit = "none"
)

// ImpulseBuying describes the frequency of unplanned purchases.
type ImpulseBuying string

// ImpulseBuying values.
const (
	ImpulseNever          ImpulseBuying = "never"
	ImpulseSometimes      ImpulseBuying = "sometimes"
	ImpulseFrequently     ImpulseBuying = "frequently"
	ImpulseVeryFrequently ImpulseBuying = "very_frequently"
)

// CardUsage describes credit card payment discipline.
type CardUsage string

// CardUsage values.
const (
	CardNoUse                 CardUsage = "no_use"
	CardFullPayment           CardUsage = "full_payment"
	CardSometimesInstallments CardUsage = "sometimes_installments"
	CardFrequentInstallments  CardUsage = "frequently_installments"
	CardRevolving             CardUsage = "revolving"
)

// LendingHabit describes how often a person lends money to others.
type LendingHabit string

// LendingHabit values.
const (
	LendsNever      LendingHabit = "never"
	LendsSometimes  LendingHabit = "sometimes"
	LendsFrequently LendingHabit = "frequently"
)

// EndOfMonth describes the typical cash position at the end of the month.
type EndOfMonth string

// EndOfMonth values.
const (
	MonthEndSave EndOfMonth = "save"
	MonthEndZero EndOfMonth = "zero"
	MonthEndLack EndOfMonth = "lack"
)

// DeadlineCoverage describes how many of a person's goals carry deadlines.
type DeadlineCoverage string

// DeadlineCoverage values.
const (
	DeadlinesAll  DeadlineCoverage = "all"
	DeadlinesSome DeadlineCoverage = "some"
	DeadlinesNone DeadlineCoverage = "none"
)

// ProgressTracking describes how often goal progress is reviewed.
type ProgressTracking string

// ProgressTracking values.
const (
	ProgressMonthly   ProgressTracking = "monthly"
	ProgressSometimes ProgressTracking = "sometimes"
	ProgressNever     ProgressTracking = "never"
)

// InvestorProfile describes self-reported risk appetite.
type InvestorProfile string

// InvestorProfile values.
const (
	InvestorConservative InvestorProfile = "conservative"
	InvestorModerate     InvestorProfile = "moderate"
	InvestorAggressive   InvestorProfile = "aggressive"
)

// InvestmentExperience describes self-reported investing experience.
type InvestmentExperience string

// InvestmentExperience values.
const (
	ExperienceNone         InvestmentExperience = "none"
	ExperienceBeginner     InvestmentExperience = "beginner"
	ExperienceIntermediate InvestmentExperience = "intermediate"
	ExperienceAdvanced     InvestmentExperience = "advanced"
)

// IncomeGrowth describes the income trajectory over recent years.
type IncomeGrowth string

// IncomeGrowth values.
const (
	GrowthSignificant          IncomeGrowth = "significant"
	GrowthSome                 IncomeGrowth = "some"
	GrowthStable               IncomeGrowth = "stable"
	GrowthDecreasedSome        IncomeGrowth = "decreased_some"
	GrowthDecreasedSignificant IncomeGrowth = "decreased_significant"
)

// DebtInfo describes outstanding debts. IsNegativado flags a listing in a
// national credit-default registry.
type DebtInfo struct {
	HasDebts      bool     `json:"has_debts,omitempty"`
	TotalDebt     float64  `json:"total_debt,omitempty"`
	DebtTypes     []string `json:"debt_types,omitempty"`
	IsOverdue     bool     `json:"is_overdue,omitempty"`
	OverdueMonths float64  `json:"overdue_months,omitempty"`
	IsNegativado  bool     `json:"is_negativado,omitempty"`
}

// BehaviorInfo describes day-to-day money habits.
type BehaviorInfo struct {
	TracksExpenses  TrackingHabit `json:"tracks_expenses,omitempty"`
	ImpulseBuying   ImpulseBuying `json:"impulse_buying,omitempty"`
	CreditCardUsage CardUsage     `json:"credit_card_usage,omitempty"`
	LendsMoney      LendingHabit  `json:"lends_money,omitempty"`
	Banks           []string      `json:"banks,omitempty"`
}

// SpendingInfo describes monthly income and where it goes.
type SpendingInfo struct {
	MonthlyIncome           float64            `json:"monthly_income,omitempty"`
	FixedExpensesPercentage float64            `json:"fixed_expenses_percentage,omitempty"`
	SpendingCategories      map[string]float64 `json:"spending_categories,omitempty"`
	EndOfMonth              EndOfMonth         `json:"end_of_month,omitempty"`
}

// GoalsInfo describes financial goals and how they are managed.
type GoalsInfo struct {
	HasDefinedGoals      bool             `json:"has_defined_goals,omitempty"`
	GoalsList            []string         `json:"goals_list,omitempty"`
	HasDeadlines         DeadlineCoverage `json:"has_deadlines,omitempty"`
	TracksProgress       ProgressTracking `json:"tracks_progress,omitempty"`
	RetirementAge        float64          `json:"retirement_age,omitempty"`
	RetirementIncomeGoal float64          `json:"retirement_income_goal,omitempty"`
}

// ReservesInfo describes savings, investments and accumulated assets.
type ReservesInfo struct {
	EmergencyFundMonths       float64              `json:"emergency_fund_months,omitempty"`
	Invests                   bool                 `json:"invests,omitempty"`
	InvestmentTypes           []string             `json:"investment_types,omitempty"`
	InvestorProfile           InvestorProfile      `json:"investor_profile,omitempty"`
	InvestmentExperience      InvestmentExperience `json:"investment_experience,omitempty"`
	Liquidity                 string               `json:"liquidity,omitempty"`
	HasAssets                 bool                 `json:"has_assets,omitempty"`
	TotalAssets               float64              `json:"total_assets,omitempty"`
	HasIncomeGeneratingAssets bool                 `json:"has_income_generating_assets,omitempty"`
}

// IncomeInfo describes income sources and stability.
type IncomeInfo struct {
	JobType            string       `json:"job_type,omitempty"`
	HasMultipleSources bool         `json:"has_multiple_sources,omitempty"`
	JobStabilityYears  float64      `json:"job_stability_years,omitempty"`
	IncomeGrowth       IncomeGrowth `json:"income_growth,omitempty"`
	HasPassiveIncome   bool         `json:"has_passive_income,omitempty"`
	IncomeSources      []string     `json:"income_sources,omitempty"`
}

// ProtectionsInfo describes insurance and other financial protections.
type ProtectionsInfo struct {
	HasProtections  bool     `json:"has_protections,omitempty"`
	ProtectionTypes []string `json:"protection_types,omitempty"`
}

// AnalysisRecord is the structured representation of a diagnostic
// conversation, produced by the LLM extraction step. Every field is
// optional: the zero value of each section means "no evidence", so a
// sparsely populated record scores without error. Absent numeric fields
// are 0, absent booleans false, absent enums their empty string.
type AnalysisRecord struct {
	Debts         DebtInfo        `json:"debts,omitempty"`
	Behavior      BehaviorInfo    `json:"behavior,omitempty"`
	Spending      SpendingInfo    `json:"spending,omitempty"`
	Goals         GoalsInfo       `json:"goals,omitempty"`
	Reserves      ReservesInfo    `json:"reserves,omitempty"`
	Income        IncomeInfo      `json:"income,omitempty"`
	Protections   ProtectionsInfo `json:"protections,omitempty"`
	QualityOfLife float64         `json:"quality_of_life,omitempty"`
}

// DebtRatio returns total debt relative to monthly income. It is only
// meaningful when debts are recorded; without debts the ratio is 0 so the
// debt-driven classification rules never fire on score alone.
func (a *AnalysisRecord) DebtRatio() float64 {
	if !a.Debts.HasDebts {
		return 0
	}
	income := a.Spending.MonthlyIncome
	if income < 1 {
		income = 1
	}
	return a.Debts.TotalDebt / income
}
