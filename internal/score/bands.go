package score

// Band is one of the four ordinal score classifications. The focus areas
// are static content shown to the user after a diagnostic.
type Band struct {
	Name       string   `json:"name"`
	FocusAreas []string `json:"focus_areas"`
}

// Band names.
const (
	BandCritico    = "Crítico"
	BandEmEvolucao = "Em Evolução"
	BandSaudavel   = "Saudável"
	BandAvancado   = "Avançado"
)

var (
	bandCritico = Band{
		Name: BandCritico,
		FocusAreas: []string{
			"Renegociação de dívidas",
			"Controle dos gastos essenciais",
			"Organização do orçamento mensal",
			"Construção de uma reserva mínima",
		},
	}

	bandEmEvolucao = Band{
		Name: BandEmEvolucao,
		FocusAreas: []string{
			"Quitação das dívidas restantes",
			"Hábito de registrar todos os gastos",
			"Reserva de emergência de 3 meses",
			"Definição de metas com prazo",
		},
	}

	bandSaudavel = Band{
		Name: BandSaudavel,
		FocusAreas: []string{
			"Ampliação da reserva de emergência",
			"Diversificação dos investimentos",
			"Contratação de proteções e seguros",
			"Planejamento de aposentadoria",
		},
	}

	bandAvancado = Band{
		Name: BandAvancado,
		FocusAreas: []string{
			"Otimização da carteira de investimentos",
			"Aquisição de ativos geradores de renda",
			"Planejamento sucessório",
			"Estratégias de renda passiva",
		},
	}
)

// ClassifyBand maps a total score to its band through an ascending range
// lookup: ≤50 Crítico, ≤100 Em Evolução, ≤125 Saudável, above that
// Avançado. Totals past 150 stay in Avançado; the sum is never clamped.
func ClassifyBand(total int) Band {
	switch {
	case total <= 50:
		return bandCritico
	case total <= 100:
		return bandEmEvolucao
	case total <= 125:
		return bandSaudavel
	default:
		return bandAvancado
	}
}
