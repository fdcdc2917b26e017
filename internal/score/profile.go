package score

import (
	"github.com/finwell/score-express/internal/types"
)

// Profile is a behavioral archetype with its static description and
// ordered recommendations.
type Profile struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Recommendations []string `json:"recommendations"`
}

// Profile names.
const (
	ProfileEndividado    = "Endividado"
	ProfileDesorganizado = "Desorganizado"
	ProfilePoupador      = "Poupador"
	ProfileInvestidor    = "Investidor"
)

// profileRule pairs a predicate with the profile it selects. Rules are
// evaluated top-down, first match wins; the order matters because the
// score bands overlap.
type profileRule struct {
	matches func(total int, a *types.AnalysisRecord) bool
	profile Profile
}

var profileRules = []profileRule{
	{
		matches: func(total int, a *types.AnalysisRecord) bool {
			return total < 60 || (a.DebtRatio() > 0.5 && a.Debts.IsOverdue)
		},
		profile: Profile{
			Name:        ProfileEndividado,
			Description: "As dívidas hoje consomem boa parte da sua renda e limitam qualquer plano de longo prazo. A prioridade é retomar o controle do fluxo de caixa.",
			Recommendations: []string{
				"Mapeie todas as dívidas com valores, juros e prazos",
				"Renegocie primeiro as dívidas com os maiores juros",
				"Corte gastos não essenciais até estabilizar o orçamento",
				"Evite novas parcelas e o rotativo do cartão",
			},
		},
	},
	{
		matches: func(total int, a *types.AnalysisRecord) bool {
			habit := a.Behavior.TracksExpenses
			return total >= 40 && total <= 80 &&
				(habit == "" || habit == types.TrackingNone)
		},
		profile: Profile{
			Name:        ProfileDesorganizado,
			Description: "Sua renda cobre o mês, mas sem registro dos gastos o dinheiro escapa sem destino claro. Organização é o próximo passo.",
			Recommendations: []string{
				"Registre todos os gastos por 30 dias",
				"Separe gastos fixos de gastos variáveis",
				"Defina um teto mensal por categoria",
				"Automatize uma transferência mensal para a reserva",
			},
		},
	},
	{
		matches: func(total int, a *types.AnalysisRecord) bool {
			r := &a.Reserves
			return total >= 75 && total <= 110 &&
				r.EmergencyFundMonths > 0 &&
				(!r.Invests || distinctCount(r.InvestmentTypes) <= 2)
		},
		profile: Profile{
			Name:        ProfilePoupador,
			Description: "Você guarda dinheiro com consistência, mas a poupança parada perde valor. O momento é de fazer a reserva trabalhar.",
			Recommendations: []string{
				"Mantenha a reserva de emergência em aplicação líquida",
				"Conheça investimentos além da poupança",
				"Comece com aportes mensais pequenos e regulares",
				"Defina objetivos de prazo para cada aplicação",
			},
		},
	},
	{
		matches: func(total int, a *types.AnalysisRecord) bool {
			r := &a.Reserves
			return total >= 95 && r.Invests &&
				(a.Spending.EndOfMonth == types.MonthEndSave || distinctCount(r.InvestmentTypes) >= 3)
		},
		profile: Profile{
			Name:        ProfileInvestidor,
			Description: "Você já investe com método e sobra dinheiro todo mês. O foco passa a ser eficiência e proteção do patrimônio.",
			Recommendations: []string{
				"Revise a alocação da carteira periodicamente",
				"Diversifique entre classes de ativos e prazos",
				"Avalie seguros e proteções patrimoniais",
				"Estruture fontes de renda passiva",
			},
		},
	},
}

// Fallback variants carry generic content distinct from the rule-matched
// profiles of the same name.
var (
	fallbackPoupador = Profile{
		Name:        ProfilePoupador,
		Description: "Sua situação financeira é sólida e você tem capacidade de poupar. Um plano de investimentos daria direção a essa disciplina.",
		Recommendations: []string{
			"Estabeleça uma meta mensal de poupança",
			"Monte ou complete sua reserva de emergência",
			"Estude opções de investimento para objetivos de longo prazo",
		},
	}

	fallbackDesorganizado = Profile{
		Name:        ProfileDesorganizado,
		Description: "Alguns hábitos financeiros ainda precisam de estrutura. Pequenas rotinas de controle já mudam o resultado do mês.",
		Recommendations: []string{
			"Adote uma ferramenta simples de controle de gastos",
			"Revise o orçamento uma vez por semana",
			"Estabeleça uma meta financeira concreta para os próximos meses",
		},
	}
)

// ClassifyProfile assigns the behavioral profile for a diagnostic. The
// ordered rules run first; when none matches, totals of 80 and above fall
// back to the generic Poupador, everything else to the generic
// Desorganizado.
func ClassifyProfile(total int, a *types.AnalysisRecord) Profile {
	for _, rule := range profileRules {
		if rule.matches(total, a) {
			return rule.profile
		}
	}
	if total >= 80 {
		return fallbackPoupador
	}
	return fallbackDesorganizado
}
