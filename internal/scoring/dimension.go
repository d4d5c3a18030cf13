// Package scoring converts raw survey answers into normalized 0-100
// scores. Every function here is pure: inputs are read-only and no
// state survives a call.
package scoring

import (
	"math"

	"github.com/sells-group/assess-cli/internal/model"
)

// clamp100 clamps v to [0,100] and rounds to the nearest integer. Scores
// are finalized through this exactly once; intermediate math stays in
// floating point.
func clamp100(v float64) int {
	v = math.Max(0, math.Min(100, v))
	return int(math.Round(v))
}

// ScoreDimension aggregates answered questions into a 0-100 score for
// one dimension. Questions tagged with a different dimension are
// ignored. Unanswered questions are excluded from both numerator and
// denominator; they never count as zero. An empty or fully unanswered
// question set scores 0.
func ScoreDimension(dim model.DimensionID, answers model.AnswerSet, questions []model.Question) int {
	var weightedSum, totalWeight float64
	for _, q := range questions {
		if q.Dimension != dim {
			continue
		}
		score, answered := answers[q.ID]
		if !answered {
			continue
		}
		weightedSum += float64(score) * q.Weight
		totalWeight += q.Weight
	}
	if totalWeight == 0 {
		return 0
	}
	// A 0-5 weighted answer average rescaled to 0-100.
	raw := (weightedSum / totalWeight) * 20
	return clamp100(raw)
}
