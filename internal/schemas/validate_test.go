package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAnalysisRecord_EmptyObject(t *testing.T) {
	// Every field is optional: an empty record is a valid, sparse record.
	err := ValidateAnalysisRecord([]byte(`{}`))
	assert.NoError(t, err)
}

func TestValidateAnalysisRecord_FullRecord(t *testing.T) {
	doc := `{
		"debts": {"has_debts": true, "total_debt": 12000, "debt_types": ["cartão"], "is_overdue": true, "overdue_months": 4, "is_negativado": false},
		"behavior": {"tracks_expenses": "partial", "impulse_buying": "sometimes", "credit_card_usage": "revolving", "banks": ["nubank"]},
		"spending": {"monthly_income": 4000, "fixed_expenses_percentage": 0.6, "spending_categories": {"moradia": 1500}, "end_of_month": "lack"},
		"goals": {"has_defined_goals": true, "goals_list": ["quitar dívidas"], "has_deadlines": "some", "tracks_progress": "sometimes"},
		"reserves": {"emergency_fund_months": 1, "invests": false, "investment_types": []},
		"income": {"job_type": "clt", "has_multiple_sources": false, "job_stability_years": 3, "income_growth": "stable"},
		"protections": {"has_protections": false},
		"quality_of_life": 6
	}`
	err := ValidateAnalysisRecord([]byte(doc))
	assert.NoError(t, err)
}

func TestValidateAnalysisRecord_WrongFieldType(t *testing.T) {
	doc := `{"debts": {"has_debts": "yes"}}`
	err := ValidateAnalysisRecord([]byte(doc))
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, ve.Errors[0].Field, "has_debts")
}

func TestValidateAnalysisRecord_WrongSectionType(t *testing.T) {
	doc := `{"spending": "a lot"}`
	err := ValidateAnalysisRecord([]byte(doc))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestValidateAnalysisRecord_MalformedJSON(t *testing.T) {
	err := ValidateAnalysisRecord([]byte(`{not json`))
	require.Error(t, err)

	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestValidateAnalysisRecord_OutOfRangeValuesPassShapeCheck(t *testing.T) {
	// Ranges are a normalization concern, not a shape concern.
	doc := `{"spending": {"fixed_expenses_percentage": 1.7}, "quality_of_life": 14}`
	err := ValidateAnalysisRecord([]byte(doc))
	assert.NoError(t, err)
}
