package scoring

import "github.com/sells-group/assess-cli/internal/model"

// ScoreOverall combines dimension scores into one 0-100 score using a
// weighted average over the dimensions present in dimScores. The weight
// map need not sum to any particular total; the average divides by the
// sum of weights actually used. No dimensions present scores 0.
func ScoreOverall(dimScores map[model.DimensionID]int, weights model.WeightMap) int {
	var weightedSum, totalWeight float64
	for dim, score := range dimScores {
		w := weights[dim]
		if w <= 0 {
			continue
		}
		weightedSum += float64(score) * w
		totalWeight += w
	}
	if totalWeight == 0 {
		return 0
	}
	return clamp100(weightedSum / totalWeight)
}
