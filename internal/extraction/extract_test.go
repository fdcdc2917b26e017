package extraction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finwell/score-express/internal/llm"
	"github.com/finwell/score-express/internal/schemas"
	"github.com/finwell/score-express/internal/types"
)

// fakeClient scripts GenerateJSON responses for a sequence of calls.
type fakeClient struct {
	responses []string
	errs      []error
	calls     int
}

func (f *fakeClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	i := f.calls
	f.calls++
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	var resp string
	if i < len(f.responses) {
		resp = f.responses[i]
	}
	return resp, err
}

func (f *fakeClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return f.GenerateJSON(ctx, prompt, tier)
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake" }
func (f *fakeClient) Close() error                  { return nil }

const validResponse = `{
	"debts": {"has_debts": true, "total_debt": 5000},
	"spending": {"monthly_income": 2500, "end_of_month": "lack"},
	"behavior": {"tracks_expenses": "partial"}
}`

func TestExtractWithClient_ValidResponse(t *testing.T) {
	client := &fakeClient{responses: []string{validResponse}}

	record, err := ExtractWithClient(context.Background(), client, "transcript text")
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.True(t, record.Debts.HasDebts)
	assert.Equal(t, 5000.0, record.Debts.TotalDebt)
	assert.Equal(t, types.TrackingPartial, record.Behavior.TracksExpenses)
	assert.Equal(t, 1, client.calls)
}

func TestExtractWithClient_EmptyTranscript(t *testing.T) {
	client := &fakeClient{}

	_, err := ExtractWithClient(context.Background(), client, "")
	require.Error(t, err)

	var pe *ParseError
	assert.ErrorAs(t, err, &pe)
	assert.Zero(t, client.calls, "no LLM call for an empty transcript")
}

func TestExtractWithClient_RetriesOnceOnTimeout(t *testing.T) {
	client := &fakeClient{
		responses: []string{"", validResponse},
		errs:      []error{context.DeadlineExceeded, nil},
	}

	record, err := ExtractWithClient(context.Background(), client, "transcript")
	require.NoError(t, err)
	assert.NotNil(t, record)
	assert.Equal(t, 2, client.calls)
}

func TestExtractWithClient_SecondTimeoutIsTerminal(t *testing.T) {
	client := &fakeClient{
		errs: []error{context.DeadlineExceeded, context.DeadlineExceeded},
	}

	_, err := ExtractWithClient(context.Background(), client, "transcript")
	require.Error(t, err)

	var ae *APICallError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 2, client.calls, "exactly one retry")
}

func TestExtractWithClient_NonTimeoutFailureIsTerminal(t *testing.T) {
	client := &fakeClient{
		errs: []error{errors.New("quota exceeded")},
	}

	_, err := ExtractWithClient(context.Background(), client, "transcript")
	require.Error(t, err)

	var ae *APICallError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 1, client.calls, "no retry for non-timeout failures")
}

func TestExtractWithClient_StripsMarkdownFences(t *testing.T) {
	client := &fakeClient{
		responses: []string{"```json\n" + validResponse + "\n```"},
	}

	record, err := ExtractWithClient(context.Background(), client, "transcript")
	require.NoError(t, err)
	assert.True(t, record.Debts.HasDebts)
}

func TestParseAnalysisRecord_SparseRecord(t *testing.T) {
	record, err := ParseAnalysisRecord([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, types.AnalysisRecord{}, *record)
}

func TestParseAnalysisRecord_ShapeViolation(t *testing.T) {
	_, err := ParseAnalysisRecord([]byte(`{"debts": {"total_debt": "muito"}}`))
	require.Error(t, err)

	var ve *schemas.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestParseAnalysisRecord_NormalizesValues(t *testing.T) {
	record, err := ParseAnalysisRecord([]byte(`{
		"behavior": {"tracks_expenses": " Rigorous "},
		"spending": {"fixed_expenses_percentage": 1.4},
		"quality_of_life": 14
	}`))
	require.NoError(t, err)

	assert.Equal(t, types.TrackingRigorous, record.Behavior.TracksExpenses)
	assert.Equal(t, 1.0, record.Spending.FixedExpensesPercentage)
	assert.Equal(t, 10.0, record.QualityOfLife)
}

func TestExtractStructuredAnalysis_RequiresAPIKey(t *testing.T) {
	_, err := ExtractStructuredAnalysis(context.Background(), "transcript", "")
	require.Error(t, err)

	var ae *APICallError
	assert.ErrorAs(t, err, &ae)
}
