package model

import (
	"sort"
	"time"
)

// ServiceScore is the readiness score and derived vulnerability for one
// selected service.
type ServiceScore struct {
	Score         int `json:"score"`         // 0-100
	Vulnerability int `json:"vulnerability"` // 0-100, higher is worse
}

// ScoreBundle holds every normalized score produced for a submission.
// All values are clamped to [0,100] and rounded at finalization; a
// dimension with no answered questions scores 0.
type ScoreBundle struct {
	Overall    int                     `json:"overall"`
	Dimensions map[DimensionID]int     `json:"dimensions"`
	Services   map[string]ServiceScore `json:"services"`
}

// DimensionScore returns the score for a dimension, or 0 when absent.
func (b ScoreBundle) DimensionScore(d DimensionID) int {
	return b.Dimensions[d]
}

// SortedDimensions returns the bundle's dimension IDs in sorted order
// for deterministic display.
func (b ScoreBundle) SortedDimensions() []DimensionID {
	dims := make([]DimensionID, 0, len(b.Dimensions))
	for d := range b.Dimensions {
		dims = append(dims, d)
	}
	sort.Slice(dims, func(i, j int) bool { return dims[i] < dims[j] })
	return dims
}

// SortedServices returns the bundle's service IDs in sorted order.
func (b ScoreBundle) SortedServices() []string {
	ids := make([]string, 0, len(b.Services))
	for id := range b.Services {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ValuationResult is the simulated M&A valuation derived from scores
// and revenue. MultipleLow <= MultipleHigh always holds and both are
// floored at 1.0.
type ValuationResult struct {
	MultipleLow          float64 `json:"multiple_low"`
	MultipleHigh         float64 `json:"multiple_high"`
	Classification       string  `json:"classification"`
	EBITImpactPercent    float64 `json:"ebit_impact_percent"`
	DollarValuationDelta float64 `json:"dollar_valuation_delta"`
}

// Complexity grades how hard a recommendation is to implement.
type Complexity string

// Complexity levels.
const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// GenericService marks a recommendation that applies to the whole
// agency rather than one service line.
const GenericService = "all"

// Recommendation is one ranked action item. Records are generated fresh
// per assessment and never mutated after creation.
type Recommendation struct {
	Service        string     `json:"service"` // service ID or "all"
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	ImpactLabel    string     `json:"impact_label"`
	Complexity     Complexity `json:"complexity"`
	TimeframeLabel string     `json:"timeframe_label"`
	PriorityRank   int        `json:"priority_rank"`
}

// FinancialImpact summarizes the dollar-denominated deltas plus the
// revenue-weighted risk exposure multiplier across selected services.
type FinancialImpact struct {
	EBITImpact      float64 `json:"ebit_impact"`
	ValuationImpact float64 `json:"valuation_impact"`
	RiskExposure    float64 `json:"risk_exposure"`
}

// ResultsRecord is the root aggregate returned by one assessment run.
// It is plain serializable data: it round-trips through JSON with no
// loss, and the engine holds no reference to it after return. Error is
// set only on the documented fallback record.
type ResultsRecord struct {
	Scores          ScoreBundle      `json:"scores"`
	Valuation       ValuationResult  `json:"valuation"`
	Recommendations []Recommendation `json:"recommendations"`
	FinancialImpact FinancialImpact  `json:"financial_impact"`
	GeneratedAt     time.Time        `json:"generated_at"`
	Error           string           `json:"error,omitempty"`
}
