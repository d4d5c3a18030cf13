// Package model defines the data types shared across the assessment engine.
package model

// DimensionID identifies a scoring dimension in the question bank.
type DimensionID string

// Core dimensions for the agency assessment.
const (
	DimensionOperational DimensionID = "operational"
	DimensionFinancial   DimensionID = "financial"
	DimensionAI          DimensionID = "ai"
)

// Option is a single answer choice for a question. Options are ordered
// worst to best for display; only Score matters for aggregation.
type Option struct {
	Text  string `json:"text"`
	Score int    `json:"score"` // 0-5
}

// Question is a survey question tagged with a dimension and weight.
// ServiceID is set for service-specific questions and empty for
// core/shared questions.
type Question struct {
	ID        string      `json:"id"`
	Text      string      `json:"text"`
	Dimension DimensionID `json:"dimension"`
	Weight    float64     `json:"weight"` // positive, typically 1.5-3.0
	Options   []Option    `json:"options"`
	ServiceID string      `json:"service_id,omitempty"`
}

// AnswerSet maps question IDs to the chosen option's score. A question
// absent from the map is unanswered and excluded from aggregation; it
// is never treated as a zero answer.
type AnswerSet map[string]int

// WeightMap assigns a weight to each dimension for the overall score.
// Weights need not sum to 1.0; scorers normalize by the sum actually used.
type WeightMap map[DimensionID]float64

// Merge returns a copy of the map with the override's entries applied.
// Dimensions not mentioned in the override keep their base weight.
func (w WeightMap) Merge(override WeightMap) WeightMap {
	merged := make(WeightMap, len(w))
	for d, wt := range w {
		merged[d] = wt
	}
	for d, wt := range override {
		merged[d] = wt
	}
	return merged
}

// Sum returns the total of all weights in the map.
func (w WeightMap) Sum() float64 {
	var sum float64
	for _, wt := range w {
		sum += wt
	}
	return sum
}
