package assess

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/assess-cli/internal/catalog"
	"github.com/sells-group/assess-cli/internal/model"
	"github.com/sells-group/assess-cli/internal/recommend"
)

func fixedClock() func() time.Time {
	at := time.Date(2026, 3, 14, 9, 26, 53, 589793238, time.UTC)
	return func() time.Time { return at }
}

func testSubmission() model.Submission {
	return model.Submission{
		Answers: model.AnswerSet{
			"ops_processes":            4,
			"ops_key_person":           3,
			"ops_utilization":          4,
			"ops_client_concentration": 3,
			"fin_recurring":            4,
			"fin_margins":              4,
			"fin_reporting":            3,
			"fin_pricing":              3,
			"ai_adoption":              2,
			"ai_strategy":              1,
			"ai_pricing_exposure":      2,
			"ai_data":                  2,
			"svc_seo_ai":               2,
			"svc_seo_ops":              3,
		},
		Selections: []model.Selection{
			{ServiceID: "seo", RevenuePercent: 60},
			{ServiceID: "email", RevenuePercent: 40},
		},
		Revenue:    2_000_000,
		AgencyType: "creative",
	}
}

func newTestAssembler(t *testing.T) *Assembler {
	t.Helper()
	cat := catalog.Default()
	require.NoError(t, cat.Validate())
	return New(cat, WithClock(fixedClock()))
}

func TestAssembleProducesCompleteRecord(t *testing.T) {
	record := newTestAssembler(t).Assemble(testSubmission())

	assert.Empty(t, record.Error)
	assert.Equal(t, 60, record.Scores.Overall)
	assert.Len(t, record.Scores.Dimensions, 3)
	assert.Len(t, record.Scores.Services, 2)
	assert.GreaterOrEqual(t, len(record.Recommendations), recommend.DefaultMinCount)
	assert.GreaterOrEqual(t, record.Valuation.MultipleLow, 1.0)
	assert.LessOrEqual(t, record.Valuation.MultipleLow, record.Valuation.MultipleHigh)
	assert.Greater(t, record.FinancialImpact.RiskExposure, 0.0)
	assert.Equal(t, "Strong", record.Valuation.Classification)
	assert.Equal(t, 69, record.Scores.Dimensions[model.DimensionOperational])
	assert.Equal(t, 72, record.Scores.Dimensions[model.DimensionFinancial])
	assert.Equal(t, 35, record.Scores.Dimensions[model.DimensionAI])
}

func TestAssembleIdempotent(t *testing.T) {
	assembler := newTestAssembler(t)
	sub := testSubmission()

	first := assembler.Assemble(sub)
	second := assembler.Assemble(sub)
	assert.Equal(t, first, second)
}

func TestAssembleDoesNotMutateSubmission(t *testing.T) {
	sub := testSubmission()
	// Allocations that need normalization.
	sub.Selections = []model.Selection{
		{ServiceID: "seo", RevenuePercent: 30},
		{ServiceID: "email", RevenuePercent: 30},
	}

	newTestAssembler(t).Assemble(sub)

	assert.Equal(t, 30, sub.Selections[0].RevenuePercent)
	assert.Equal(t, 30, sub.Selections[1].RevenuePercent)
}

func TestAssembleRecordRoundTripsJSON(t *testing.T) {
	record := newTestAssembler(t).Assemble(testSubmission())

	data, err := json.Marshal(record)
	require.NoError(t, err)

	var decoded model.ResultsRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, record, decoded)
}

func TestAssembleClockTruncatedToSecond(t *testing.T) {
	record := newTestAssembler(t).Assemble(testSubmission())
	assert.Zero(t, record.GeneratedAt.Nanosecond())
	assert.Equal(t, time.UTC, record.GeneratedAt.Location())
}

func TestAssembleAgencyTypeChangesWeighting(t *testing.T) {
	assembler := newTestAssembler(t)

	sub := testSubmission()
	creative := assembler.Assemble(sub)

	sub.AgencyType = "technology"
	technology := assembler.Assemble(sub)

	// The submission is operationally strong and AI-weak, so shifting
	// weight onto AI must lower the overall score.
	assert.Less(t, technology.Scores.Overall, creative.Scores.Overall)
}

func TestAssemblePanicReturnsFallback(t *testing.T) {
	assembler := newTestAssembler(t)
	assembler.engine = nil // forces a panic mid-pipeline

	sub := testSubmission()
	record := assembler.Assemble(sub)

	assert.Equal(t, FallbackError, record.Error)
	assert.Equal(t, neutralScore, record.Scores.Overall)
	for dim, score := range record.Scores.Dimensions {
		assert.Equal(t, neutralScore, score, "dimension %s", dim)
	}
	assert.Len(t, record.Scores.Services, len(sub.Selections))
	assert.NotNil(t, record.Recommendations)
	assert.Empty(t, record.Recommendations)
	assert.GreaterOrEqual(t, record.Valuation.MultipleLow, 1.0)
	assert.Equal(t, fixedClock()().UTC().Truncate(time.Second), record.GeneratedAt)
}
