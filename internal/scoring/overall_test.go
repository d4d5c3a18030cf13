package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/assess-cli/internal/model"
)

func TestScoreOverall(t *testing.T) {
	weights := model.WeightMap{
		model.DimensionOperational: 30,
		model.DimensionFinancial:   30,
		model.DimensionAI:          40,
	}

	tests := []struct {
		name      string
		dimScores map[model.DimensionID]int
		weights   model.WeightMap
		want      int
	}{
		{
			"standard weighted average",
			map[model.DimensionID]int{
				model.DimensionOperational: 80,
				model.DimensionFinancial:   60,
				model.DimensionAI:          40,
			},
			weights, 58,
		},
		{
			"uniform scores pass through",
			map[model.DimensionID]int{
				model.DimensionOperational: 72,
				model.DimensionFinancial:   72,
				model.DimensionAI:          72,
			},
			weights, 72,
		},
		{
			"missing dimension drops its weight",
			map[model.DimensionID]int{
				model.DimensionOperational: 80,
				model.DimensionFinancial:   60,
			},
			weights, 70,
		},
		{
			"zero weight dimension skipped",
			map[model.DimensionID]int{
				model.DimensionOperational: 100,
				model.DimensionAI:          40,
			},
			model.WeightMap{model.DimensionOperational: 0, model.DimensionAI: 1},
			40,
		},
		{"empty scores", map[model.DimensionID]int{}, weights, 0},
		{"empty weights", map[model.DimensionID]int{model.DimensionAI: 90}, model.WeightMap{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreOverall(tt.dimScores, tt.weights))
		})
	}
}

// Raising any single dimension must never lower the overall score.
func TestScoreOverallMonotonic(t *testing.T) {
	weights := model.WeightMap{
		model.DimensionOperational: 30,
		model.DimensionFinancial:   30,
		model.DimensionAI:          40,
	}
	base := map[model.DimensionID]int{
		model.DimensionOperational: 50,
		model.DimensionFinancial:   50,
		model.DimensionAI:          50,
	}
	baseline := ScoreOverall(base, weights)

	for dim := range base {
		for bump := 10; bump <= 50; bump += 10 {
			raised := map[model.DimensionID]int{}
			for d, s := range base {
				raised[d] = s
			}
			raised[dim] += bump
			assert.GreaterOrEqual(t, ScoreOverall(raised, weights), baseline,
				"raising %s by %d lowered the overall score", dim, bump)
		}
	}
}
