// Package catalog owns the static assessment tables: the question bank,
// service lines, recommendation tables, and dimension weight maps. A
// Catalog is loaded once and treated as immutable for the lifetime of a
// computation.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/assess-cli/internal/model"
)

// Bracket buckets an overall score for recommendation selection.
type Bracket string

// Score brackets: low (<40), mid (40-70), high (>70).
const (
	BracketLow  Bracket = "low"
	BracketMid  Bracket = "mid"
	BracketHigh Bracket = "high"
)

// BracketFor returns the bracket an overall score falls into.
func BracketFor(overall int) Bracket {
	switch {
	case overall < 40:
		return BracketLow
	case overall <= 70:
		return BracketMid
	default:
		return BracketHigh
	}
}

// Timeframe orders recommendation rollout horizons.
type Timeframe string

// Timeframes in rollout order.
const (
	TimeframeImmediate Timeframe = "immediate"
	TimeframeShortTerm Timeframe = "short_term"
	TimeframeStrategic Timeframe = "strategic"
)

// Timeframes returns all timeframes in rollout order.
func Timeframes() []Timeframe {
	return []Timeframe{TimeframeImmediate, TimeframeShortTerm, TimeframeStrategic}
}

// Importance grades a universal recommendation. Higher sorts first.
type Importance string

// Importance levels, highest first.
const (
	ImportanceCritical Importance = "critical"
	ImportanceHigh     Importance = "high"
	ImportanceMedium   Importance = "medium"
	ImportanceLow      Importance = "low"
)

// importanceRank maps importance to a sortable rank; lower is more important.
var importanceRank = map[Importance]int{
	ImportanceCritical: 0,
	ImportanceHigh:     1,
	ImportanceMedium:   2,
	ImportanceLow:      3,
}

// Rank returns the sortable rank for an importance level. Unknown levels
// rank below low.
func (i Importance) Rank() int {
	if r, ok := importanceRank[i]; ok {
		return r
	}
	return len(importanceRank)
}

// RecEntry is one static recommendation row in a per-service table.
type RecEntry struct {
	Category    string           `json:"category" yaml:"category"`
	Title       string           `json:"title" yaml:"title"`
	Description string           `json:"description" yaml:"description"`
	Impact      string           `json:"impact" yaml:"impact"`
	Complexity  model.Complexity `json:"complexity" yaml:"complexity"`
}

// ServiceRecs holds a service's recommendation lists keyed by score
// bracket and timeframe.
type ServiceRecs map[Bracket]map[Timeframe][]RecEntry

// UniversalRec is a generic (non-service) recommendation from the
// operational/financial tables.
type UniversalRec struct {
	Category    string            `json:"category" yaml:"category"`
	Title       string            `json:"title" yaml:"title"`
	Description string            `json:"description" yaml:"description"`
	Impact      string            `json:"impact" yaml:"impact"`
	Complexity  model.Complexity  `json:"complexity" yaml:"complexity"`
	Importance  Importance        `json:"importance" yaml:"importance"`
	Dimension   model.DimensionID `json:"dimension" yaml:"dimension"`
}

// Catalog is the full set of static tables the engine computes over.
type Catalog struct {
	Questions       []model.Question           `json:"questions" yaml:"questions"`
	Services        []model.Service            `json:"services" yaml:"services"`
	Weights         model.WeightMap            `json:"weights" yaml:"weights"`
	AgencyOverrides map[string]model.WeightMap `json:"agency_overrides" yaml:"agency_overrides"`
	ServiceRecs     map[string]ServiceRecs     `json:"service_recs" yaml:"service_recs"`
	UniversalRecs   []UniversalRec             `json:"universal_recs" yaml:"universal_recs"`
}

// Dimensions returns the dimension IDs present in the weight map,
// sorted for deterministic iteration.
func (c *Catalog) Dimensions() []model.DimensionID {
	dims := make([]model.DimensionID, 0, len(c.Weights))
	for d := range c.Weights {
		dims = append(dims, d)
	}
	sort.Slice(dims, func(i, j int) bool { return dims[i] < dims[j] })
	return dims
}

// QuestionsForDimension returns the core (non-service) questions tagged
// with the given dimension.
func (c *Catalog) QuestionsForDimension(d model.DimensionID) []model.Question {
	var out []model.Question
	for _, q := range c.Questions {
		if q.Dimension == d && q.ServiceID == "" {
			out = append(out, q)
		}
	}
	return out
}

// QuestionsForService returns the questions tagged with the given service.
func (c *Catalog) QuestionsForService(serviceID string) []model.Question {
	var out []model.Question
	for _, q := range c.Questions {
		if q.ServiceID == serviceID {
			out = append(out, q)
		}
	}
	return out
}

// Service returns the service with the given ID, or nil when unknown.
func (c *Catalog) Service(id string) *model.Service {
	for i := range c.Services {
		if c.Services[i].ID == id {
			return &c.Services[i]
		}
	}
	return nil
}

// WeightsFor returns the overall-score weight map for an agency type.
// An override replaces only the dimensions it names; others keep their
// default weight. Unknown agency types get the default map.
func (c *Catalog) WeightsFor(agencyType string) model.WeightMap {
	if agencyType == "" {
		return c.Weights
	}
	override, ok := c.AgencyOverrides[strings.ToLower(agencyType)]
	if !ok {
		return c.Weights
	}
	return c.Weights.Merge(override)
}

// RecsFor returns the recommendation list for a service, bracket, and
// timeframe. The second return is false when the service has no table.
func (c *Catalog) RecsFor(serviceID string, b Bracket, tf Timeframe) ([]RecEntry, bool) {
	byBracket, ok := c.ServiceRecs[serviceID]
	if !ok {
		return nil, false
	}
	return byBracket[b][tf], true
}

// Validate checks the catalog invariants: non-empty question options
// with scores in [0,5], positive question weights, questions tagged to
// known dimensions and services, and a weight map with a positive sum.
func (c *Catalog) Validate() error {
	var errs []string

	known := make(map[model.DimensionID]bool, len(c.Weights))
	for d, w := range c.Weights {
		known[d] = true
		if w < 0 {
			errs = append(errs, fmt.Sprintf("weight for dimension %q must be >= 0", d))
		}
	}
	if c.Weights.Sum() <= 0 {
		errs = append(errs, "dimension weight sum must be > 0")
	}

	serviceIDs := make(map[string]bool, len(c.Services))
	for _, s := range c.Services {
		if s.ID == "" {
			errs = append(errs, "service with empty id")
			continue
		}
		if serviceIDs[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate service id %q", s.ID))
		}
		serviceIDs[s.ID] = true
	}

	questionIDs := make(map[string]bool, len(c.Questions))
	for _, q := range c.Questions {
		if q.ID == "" {
			errs = append(errs, "question with empty id")
			continue
		}
		if questionIDs[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question id %q", q.ID))
		}
		questionIDs[q.ID] = true

		if !known[q.Dimension] {
			errs = append(errs, fmt.Sprintf("question %s: unknown dimension %q", q.ID, q.Dimension))
		}
		if q.Weight <= 0 {
			errs = append(errs, fmt.Sprintf("question %s: weight must be > 0", q.ID))
		}
		if len(q.Options) == 0 {
			errs = append(errs, fmt.Sprintf("question %s: options must be non-empty", q.ID))
		}
		for i, opt := range q.Options {
			if opt.Score < 0 || opt.Score > 5 {
				errs = append(errs, fmt.Sprintf("question %s: option %d score %d out of range [0,5]", q.ID, i, opt.Score))
			}
		}
		if q.ServiceID != "" && !serviceIDs[q.ServiceID] {
			errs = append(errs, fmt.Sprintf("question %s: unknown service %q", q.ID, q.ServiceID))
		}
	}

	for agencyType, override := range c.AgencyOverrides {
		for d := range override {
			if !known[d] {
				errs = append(errs, fmt.Sprintf("agency override %q: unknown dimension %q", agencyType, d))
			}
		}
	}

	for serviceID := range c.ServiceRecs {
		if !serviceIDs[serviceID] {
			errs = append(errs, fmt.Sprintf("recommendation table for unknown service %q", serviceID))
		}
	}

	if len(errs) > 0 {
		return eris.Errorf("catalog: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// AnswerErrors returns one error per answer that does not correspond to
// a known question or carries a score outside [0,5]. A valid answer set
// returns nil.
func (c *Catalog) AnswerErrors(answers model.AnswerSet) []error {
	ids := make(map[string]bool, len(c.Questions))
	for _, q := range c.Questions {
		ids[q.ID] = true
	}
	var errs []error
	for id, score := range answers {
		if !ids[id] {
			errs = append(errs, eris.Errorf("catalog: answer for unknown question %q", id))
		}
		if score < 0 || score > 5 {
			errs = append(errs, eris.Errorf("catalog: answer for %q has score %d out of range [0,5]", id, score))
		}
	}
	return errs
}
