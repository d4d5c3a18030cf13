package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/assess-cli/internal/model"
)

func TestBandForScore(t *testing.T) {
	tests := []struct {
		score    int
		wantVuln int
		wantMult float64
	}{
		{100, 20, 0.5},
		{80, 20, 0.5},
		{79, 45, 1.0},
		{60, 45, 1.0},
		{59, 70, 1.5},
		{40, 70, 1.5},
		{39, 90, 2.0},
		{0, 90, 2.0},
	}
	for _, tt := range tests {
		band := BandForScore(tt.score)
		assert.Equal(t, tt.wantVuln, band.Vulnerability, "score %d", tt.score)
		assert.InDelta(t, tt.wantMult, band.ImpactMultiplier, 0.001, "score %d", tt.score)
	}
}

// Every consecutive pair of scores maps to monotonically non-increasing
// vulnerability.
func TestBandForScoreMonotonic(t *testing.T) {
	prev := BandForScore(0).Vulnerability
	for score := 1; score <= 100; score++ {
		cur := BandForScore(score).Vulnerability
		assert.LessOrEqual(t, cur, prev, "score %d", score)
		prev = cur
	}
}

func serviceTestQuestions() []model.Question {
	opts := []model.Option{{Score: 0}, {Score: 5}}
	return []model.Question{
		{ID: "core_ai", Dimension: model.DimensionAI, Weight: 1, Options: opts},
		{ID: "core_ops", Dimension: model.DimensionOperational, Weight: 1, Options: opts},
		{ID: "svc_ai", Dimension: model.DimensionAI, Weight: 1, Options: opts, ServiceID: "svc"},
		{ID: "other_ai", Dimension: model.DimensionAI, Weight: 1, Options: opts, ServiceID: "other"},
	}
}

func TestScoreServiceAIBlend(t *testing.T) {
	weights := model.WeightMap{model.DimensionAI: 1, model.DimensionOperational: 1}
	answers := model.AnswerSet{"core_ai": 5, "core_ops": 3, "svc_ai": 2}

	got := ScoreService("svc", answers, serviceTestQuestions(), weights)

	// AI blends shared 100 with service-specific 40 at 1:2, giving 60;
	// operational stays 60; overall (60+60)/2 = 60.
	assert.Equal(t, 60, got.Score)
	assert.Equal(t, 45, got.Vulnerability)
}

func TestScoreServiceNoServiceAIAnswerSkipsBlend(t *testing.T) {
	weights := model.WeightMap{model.DimensionAI: 1, model.DimensionOperational: 1}
	answers := model.AnswerSet{"core_ai": 5, "core_ops": 3}

	got := ScoreService("svc", answers, serviceTestQuestions(), weights)

	// Unanswered service AI question must not drag the blend in: AI
	// stays at the shared 100, overall (100+60)/2 = 80.
	assert.Equal(t, 80, got.Score)
	assert.Equal(t, 20, got.Vulnerability)
}

func TestScoreServiceIgnoresOtherServicesQuestions(t *testing.T) {
	weights := model.WeightMap{model.DimensionAI: 1}
	answers := model.AnswerSet{"core_ai": 4, "other_ai": 0}

	got := ScoreService("svc", answers, serviceTestQuestions(), weights)
	assert.Equal(t, 80, got.Score)
}

func TestWeightedAllocation(t *testing.T) {
	services := map[string]model.ServiceScore{
		"strong": {Score: 90, Vulnerability: 20},
		"weak":   {Score: 30, Vulnerability: 90},
	}

	tests := []struct {
		name       string
		selections []model.Selection
		want       float64
	}{
		{
			"revenue weighted",
			[]model.Selection{{ServiceID: "strong", RevenuePercent: 75}, {ServiceID: "weak", RevenuePercent: 25}},
			0.875,
		},
		{
			"zero allocations fall back to plain mean",
			[]model.Selection{{ServiceID: "strong"}, {ServiceID: "weak"}},
			1.25,
		},
		{
			"unknown services skipped",
			[]model.Selection{{ServiceID: "strong", RevenuePercent: 50}, {ServiceID: "ghost", RevenuePercent: 50}},
			0.5,
		},
		{"no selections", nil, 0},
		{"only unknown services", []model.Selection{{ServiceID: "ghost"}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, WeightedAllocation(services, tt.selections), 0.001)
		})
	}
}
