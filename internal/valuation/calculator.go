// Package valuation maps assessment scores and revenue onto a simulated
// EBITDA multiple range, dollar impact, and readiness classification.
// The formulas are heuristic business rules, not a financial model.
package valuation

import (
	"math"

	"github.com/sells-group/assess-cli/internal/model"
)

// Fixed assumptions behind the dollar math.
const (
	assumedEBITMargin    = 0.15 // current EBIT as a share of revenue
	maxEBITImpactPercent = 30.0 // improvement potential cap
	multipleLowFloor     = 1.0
	multipleHighFloor    = 1.5
)

// multipleBand is one row of the base multiple lookup. A band applies
// only when BOTH the financial and operational scores clear Threshold;
// otherwise selection falls through to the next lower band.
type multipleBand struct {
	Threshold int
	Low, High float64
}

// multipleBands, highest first. The bottom band is the unconditional
// floor pair (1.0, 1.5): a zero-value agency is not representable.
var multipleBands = []multipleBand{
	{Threshold: 80, Low: 6.0, High: 8.0},
	{Threshold: 70, Low: 5.0, High: 6.5},
	{Threshold: 60, Low: 4.0, High: 5.5},
	{Threshold: 50, Low: 3.5, High: 4.5},
	{Threshold: 40, Low: 2.5, High: 3.5},
	{Threshold: 30, Low: 2.0, High: 2.8},
	{Threshold: 20, Low: 1.5, High: 2.2},
	{Threshold: 0, Low: 1.0, High: 1.5},
}

// baseMultiples selects the base (low, high) pair for a financial and
// operational score.
func baseMultiples(financial, operational int) (float64, float64) {
	for _, b := range multipleBands {
		if financial >= b.Threshold && operational >= b.Threshold {
			return b.Low, b.High
		}
	}
	last := multipleBands[len(multipleBands)-1]
	return last.Low, last.High
}

// stepMultiplier is the non-linear overall-score scaling applied on top
// of the weighted influence factor.
func stepMultiplier(overall int) float64 {
	switch {
	case overall < 30:
		return 1.0
	case overall < 50:
		return 1.2
	default:
		return 1.5
	}
}

// classify is a pure function of the overall score. The four-tier
// boundary set (70/60/50) is fixed.
func classify(overall int) string {
	switch {
	case overall >= 70:
		return "Premium"
	case overall >= 60:
		return "Strong"
	case overall >= 50:
		return "Average"
	default:
		return "Weak"
	}
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Calculate derives the valuation result and dollar financial impact
// from a score bundle and annual revenue. Revenue <= 0 zeroes every
// dollar figure but multiples and classification are still computed
// from scores alone.
func Calculate(scores model.ScoreBundle, revenue float64) (model.ValuationResult, model.FinancialImpact) {
	financial := scores.DimensionScore(model.DimensionFinancial)
	operational := scores.DimensionScore(model.DimensionOperational)
	overall := scores.Overall

	low, high := baseMultiples(financial, operational)

	// Weighted influence of the two driver dimensions, then the
	// non-linear overall step.
	influence := (float64(financial)*0.6 + float64(operational)*0.4) / 100
	step := stepMultiplier(overall)
	low *= influence * step
	high *= influence * step

	// Hard ceilings for very poor performers.
	if overall < 25 {
		low = math.Min(low, 2.0)
		high = math.Min(high, 2.5)
	}
	if overall < 20 {
		low = math.Min(low, 1.0)
		high = math.Min(high, 1.5)
	}

	// Floors: a valuation never drops below 1.0x-1.5x.
	low = math.Max(low, multipleLowFloor)
	high = math.Max(high, multipleHighFloor)

	low = round1(low)
	high = round1(high)
	if low > high {
		low = high
	}

	potentialImprovement := math.Max(0, float64(100-overall)) / 100
	ebitImpactPercent := math.Min(potentialImprovement*maxEBITImpactPercent, maxEBITImpactPercent)

	var ebitDelta, valuationDelta float64
	if revenue > 0 {
		currentEBIT := revenue * assumedEBITMargin
		ebitDelta = currentEBIT * ebitImpactPercent / 100
		// Dollar delta uses the improved (high) multiple, not the current one.
		valuationDelta = ebitDelta * high
	}

	result := model.ValuationResult{
		MultipleLow:          low,
		MultipleHigh:         high,
		Classification:       classify(overall),
		EBITImpactPercent:    ebitImpactPercent,
		DollarValuationDelta: valuationDelta,
	}
	impact := model.FinancialImpact{
		EBITImpact:      ebitDelta,
		ValuationImpact: valuationDelta,
	}
	return result, impact
}
