package scoring

import (
	"math"

	"github.com/sells-group/assess-cli/internal/model"
)

// VulnerabilityBand maps a readiness score band to a fixed vulnerability
// percentage and valuation-impact multiplier. Bands are total over
// [0,100]: every score falls into exactly one.
type VulnerabilityBand struct {
	MinScore         int
	Level            model.RiskLevel
	Vulnerability    int
	ImpactMultiplier float64
}

// vulnerabilityBands, highest readiness first. A higher readiness score
// always maps to a lower vulnerability.
var vulnerabilityBands = []VulnerabilityBand{
	{MinScore: 80, Level: model.RiskLow, Vulnerability: 20, ImpactMultiplier: 0.5},
	{MinScore: 60, Level: model.RiskMedium, Vulnerability: 45, ImpactMultiplier: 1.0},
	{MinScore: 40, Level: model.RiskHigh, Vulnerability: 70, ImpactMultiplier: 1.5},
	{MinScore: 0, Level: model.RiskCritical, Vulnerability: 90, ImpactMultiplier: 2.0},
}

// BandForScore returns the vulnerability band a 0-100 readiness score
// falls into.
func BandForScore(score int) VulnerabilityBand {
	for _, b := range vulnerabilityBands {
		if score >= b.MinScore {
			return b
		}
	}
	return vulnerabilityBands[len(vulnerabilityBands)-1]
}

// ScoreService computes a per-service readiness score and vulnerability.
// Service-specific questions (tagged with serviceID) are combined with
// the core/shared questions per dimension, then collapsed into one score
// with the overall weighted-average rule.
//
// When service-specific AI questions exist, the service's AI sub-score
// is blended 2:1 against the shared AI dimension score: service-level AI
// exposure dominates the generic maturity signal for that service's own
// risk figure.
func ScoreService(serviceID string, answers model.AnswerSet, allQuestions []model.Question, weights model.WeightMap) model.ServiceScore {
	serviceQs := make([]model.Question, 0, 4)
	coreQs := make([]model.Question, 0, len(allQuestions))
	for _, q := range allQuestions {
		switch q.ServiceID {
		case serviceID:
			serviceQs = append(serviceQs, q)
		case "":
			coreQs = append(coreQs, q)
		}
	}

	dimScores := make(map[model.DimensionID]int, len(weights))
	for dim := range weights {
		combined := make([]model.Question, 0, len(coreQs)+len(serviceQs))
		combined = append(combined, coreQs...)
		combined = append(combined, serviceQs...)

		if dim == model.DimensionAI && hasAnsweredAI(serviceQs, answers) {
			shared := ScoreDimension(dim, answers, coreQs)
			serviceOnly := ScoreDimension(dim, answers, serviceQs)
			dimScores[dim] = clamp100((float64(shared) + float64(serviceOnly)*2) / 3)
			continue
		}
		dimScores[dim] = ScoreDimension(dim, answers, combined)
	}

	score := ScoreOverall(dimScores, weights)
	band := BandForScore(score)
	return model.ServiceScore{Score: score, Vulnerability: band.Vulnerability}
}

// hasAnsweredAI reports whether any AI-dimension question in qs has an
// answer. An unanswered service AI question must not drag the blend in.
func hasAnsweredAI(qs []model.Question, answers model.AnswerSet) bool {
	for _, q := range qs {
		if q.Dimension != model.DimensionAI {
			continue
		}
		if _, ok := answers[q.ID]; ok {
			return true
		}
	}
	return false
}

// WeightedAllocation returns the revenue-weighted mean vulnerability
// impact multiplier across selected services, used for reporting. Zero
// allocations return the plain mean; no services returns 0.
func WeightedAllocation(services map[string]model.ServiceScore, selections []model.Selection) float64 {
	if len(selections) == 0 {
		return 0
	}
	var weighted, total float64
	for _, sel := range selections {
		svc, ok := services[sel.ServiceID]
		if !ok {
			continue
		}
		w := math.Max(0, float64(sel.RevenuePercent))
		weighted += BandForScore(svc.Score).ImpactMultiplier * w
		total += w
	}
	if total == 0 {
		var sum float64
		var n int
		for _, sel := range selections {
			if svc, ok := services[sel.ServiceID]; ok {
				sum += BandForScore(svc.Score).ImpactMultiplier
				n++
			}
		}
		if n == 0 {
			return 0
		}
		return sum / float64(n)
	}
	return weighted / total
}
