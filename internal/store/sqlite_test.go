package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/assess-cli/internal/model"
)

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	st, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func sampleRecord(overall int, classification string) model.ResultsRecord {
	return model.ResultsRecord{
		Scores: model.ScoreBundle{
			Overall: overall,
			Dimensions: map[model.DimensionID]int{
				model.DimensionOperational: overall,
				model.DimensionFinancial:   overall,
				model.DimensionAI:          overall,
			},
			Services: map[string]model.ServiceScore{
				"seo": {Score: overall, Vulnerability: 45},
			},
		},
		Valuation: model.ValuationResult{
			MultipleLow: 3.5, MultipleHigh: 4.5, Classification: classification,
		},
		Recommendations: []model.Recommendation{
			{Service: "seo", Title: "Automate SEO reporting", PriorityRank: 2},
		},
	}
}

func sampleSubmission() model.Submission {
	return model.Submission{
		Answers:    model.AnswerSet{"ops_processes": 4},
		Selections: []model.Selection{{ServiceID: "seo", RevenuePercent: 100}},
		Revenue:    1_000_000,
	}
}

func TestSQLiteSaveAndGet(t *testing.T) {
	st := newTestSQLite(t)
	ctx := context.Background()

	saved, err := st.SaveAssessment(ctx, "Acme Digital", sampleSubmission(), sampleRecord(62, "Strong"))
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	got, err := st.GetAssessment(ctx, saved.ID)
	require.NoError(t, err)

	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "Acme Digital", got.AgencyName)
	assert.Equal(t, 62, got.Record.Scores.Overall)
	assert.Equal(t, "Strong", got.Record.Valuation.Classification)
	assert.Equal(t, sampleSubmission().Answers, got.Submission.Answers)
	assert.Len(t, got.Record.Recommendations, 1)
}

func TestSQLiteGetNotFound(t *testing.T) {
	st := newTestSQLite(t)

	_, err := st.GetAssessment(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLiteListFilters(t *testing.T) {
	st := newTestSQLite(t)
	ctx := context.Background()

	_, err := st.SaveAssessment(ctx, "Acme", sampleSubmission(), sampleRecord(75, "Premium"))
	require.NoError(t, err)
	_, err = st.SaveAssessment(ctx, "Acme", sampleSubmission(), sampleRecord(45, "Weak"))
	require.NoError(t, err)
	_, err = st.SaveAssessment(ctx, "Bolt", sampleSubmission(), sampleRecord(65, "Strong"))
	require.NoError(t, err)

	all, err := st.ListAssessments(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	acme, err := st.ListAssessments(ctx, ListFilter{AgencyName: "Acme"})
	require.NoError(t, err)
	assert.Len(t, acme, 2)

	premium, err := st.ListAssessments(ctx, ListFilter{Classification: "Premium"})
	require.NoError(t, err)
	require.Len(t, premium, 1)
	assert.Equal(t, "Acme", premium[0].AgencyName)

	limited, err := st.ListAssessments(ctx, ListFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	offset, err := st.ListAssessments(ctx, ListFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, offset, 1)

	none, err := st.ListAssessments(ctx, ListFilter{AgencyName: "Nobody"})
	require.NoError(t, err)
	assert.Empty(t, none)
}
