package recommend

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/assess-cli/internal/catalog"
	"github.com/sells-group/assess-cli/internal/model"
)

func midScores(serviceIDs ...string) model.ScoreBundle {
	services := make(map[string]model.ServiceScore, len(serviceIDs))
	for _, id := range serviceIDs {
		services[id] = model.ServiceScore{Score: 55, Vulnerability: 70}
	}
	return model.ScoreBundle{
		Overall: 55,
		Dimensions: map[model.DimensionID]int{
			model.DimensionOperational: 55,
			model.DimensionFinancial:   55,
			model.DimensionAI:          55,
		},
		Services: services,
	}
}

func TestGenerateMeetsMinimum(t *testing.T) {
	engine := New(catalog.Default(), DefaultConfig())
	selections := []model.Selection{{ServiceID: "seo", RevenuePercent: 100}}

	recs := engine.Generate(midScores("seo"), selections, 1_000_000)
	assert.GreaterOrEqual(t, len(recs), DefaultMinCount)
}

func TestGenerateSortedByPriorityRank(t *testing.T) {
	engine := New(catalog.Default(), DefaultConfig())
	selections := []model.Selection{
		{ServiceID: "seo", RevenuePercent: 60},
		{ServiceID: "content", RevenuePercent: 40},
	}

	recs := engine.Generate(midScores("seo", "content"), selections, 1_000_000)
	require.NotEmpty(t, recs)
	for i := 1; i < len(recs); i++ {
		assert.LessOrEqual(t, recs[i-1].PriorityRank, recs[i].PriorityRank,
			"rank order broken at %d: %q before %q", i, recs[i-1].Title, recs[i].Title)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	engine := New(catalog.Default(), DefaultConfig())
	selections := []model.Selection{
		{ServiceID: "paid_media", RevenuePercent: 50},
		{ServiceID: "email", RevenuePercent: 50},
	}
	scores := midScores("paid_media", "email")

	first := engine.Generate(scores, selections, 1_000_000)
	second := engine.Generate(scores, selections, 1_000_000)
	assert.Equal(t, first, second)
}

func TestGeneratePlaceholderForServiceWithoutTable(t *testing.T) {
	// The email service ships no recommendation table.
	engine := New(catalog.Default(), DefaultConfig())
	selections := []model.Selection{{ServiceID: "email", RevenuePercent: 100}}

	recs := engine.Generate(midScores("email"), selections, 1_000_000)

	var emailRecs []model.Recommendation
	for _, r := range recs {
		if r.Service == "email" {
			emailRecs = append(emailRecs, r)
		}
	}
	require.NotEmpty(t, emailRecs, "selected service must stay represented")
	assert.Contains(t, emailRecs[0].Title, "Email & Lifecycle Marketing")
}

func TestGeneratePlaceholderFlagsHighVulnerability(t *testing.T) {
	engine := New(catalog.Default(), DefaultConfig())
	scores := midScores("email")
	scores.Services["email"] = model.ServiceScore{Score: 20, Vulnerability: 90}

	ph := engine.placeholderFor("email", scores)
	assert.Contains(t, ph.Description, "high-vulnerability")
}

func TestGenerateBackfillsTableLessSelections(t *testing.T) {
	// No universal recs and only table-less selections: backfill must
	// still reach the minimum through phased placeholders.
	cat := catalog.Default()
	cat.UniversalRecs = nil
	engine := New(cat, Config{MinCount: 6})
	selections := []model.Selection{{ServiceID: "email", RevenuePercent: 100}}

	recs := engine.Generate(midScores("email"), selections, 1_000_000)
	require.Len(t, recs, 6)

	seen := map[string]bool{}
	for _, r := range recs {
		key := r.Service + "|" + r.Title
		assert.False(t, seen[key], "duplicate recommendation %q", r.Title)
		seen[key] = true
	}
	assert.Contains(t, recs[len(recs)-1].Title, "phase")
}

func TestGenerateNoSelections(t *testing.T) {
	engine := New(catalog.Default(), DefaultConfig())

	recs := engine.Generate(midScores(), nil, 1_000_000)

	// Only the universal group remains; nothing to backfill against.
	require.NotEmpty(t, recs)
	for _, r := range recs {
		assert.Equal(t, model.GenericService, r.Service)
	}
}

func TestGenericGroupOrderedByImportance(t *testing.T) {
	engine := New(catalog.Default(), DefaultConfig())
	group := engine.genericGroup(midScores())

	require.Len(t, group, 6)
	// Both critical entries lead the group.
	assert.Equal(t, "Reduce founder dependency", group[0].Title)
	assert.Equal(t, "Grow recurring revenue share", group[1].Title)
}

func TestRelevanceScore(t *testing.T) {
	rec := catalog.UniversalRec{Dimension: model.DimensionFinancial, Complexity: model.ComplexityLow}

	weak := model.ScoreBundle{Dimensions: map[model.DimensionID]int{model.DimensionFinancial: 30}}
	strong := model.ScoreBundle{Dimensions: map[model.DimensionID]int{model.DimensionFinancial: 85}}

	// Quick wins rank up in weak dimensions and down in strong ones.
	assert.Equal(t, 65, relevanceScore(rec, weak))
	assert.Equal(t, 40, relevanceScore(rec, strong))

	heavy := rec
	heavy.Complexity = model.ComplexityHigh
	assert.Equal(t, 45, relevanceScore(heavy, weak))
}

func TestPriorityRank(t *testing.T) {
	tests := []struct {
		category string
		title    string
		want     int
	}{
		{"financial", "", 1},
		{"revenue", "", 1},
		{"", "Reprice SEO as search experience strategy", 4},
		{"", "Fix pricing tiers", 1},
		{"operational", "", 2},
		{"process", "", 2},
		{"technology", "", 3},
		{"ai", "", 3},
		{"", "", 4},
		{"marketing", "Launch brand campaign", 4},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s", tt.category, tt.title), func(t *testing.T) {
			assert.Equal(t, tt.want, priorityRank(tt.category, tt.title))
		})
	}
}
