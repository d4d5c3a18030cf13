// Package recommend selects and ranks recommendation records from the
// catalog's static tables for one assessment.
package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sells-group/assess-cli/internal/catalog"
	"github.com/sells-group/assess-cli/internal/model"
)

// DefaultMinCount is the minimum number of recommendations returned for
// the dashboard path. The simpler report path configures 4.
const DefaultMinCount = 8

// Config tunes recommendation generation.
type Config struct {
	MinCount int `yaml:"min_count" mapstructure:"min_count"`
}

// DefaultConfig returns the standard generation settings.
func DefaultConfig() Config {
	return Config{MinCount: DefaultMinCount}
}

// timeframeLabels are the display labels attached per timeframe.
var timeframeLabels = map[catalog.Timeframe]string{
	catalog.TimeframeImmediate: "Immediate (0-3 months)",
	catalog.TimeframeShortTerm: "Short-term (3-9 months)",
	catalog.TimeframeStrategic: "Strategic (9-24 months)",
}

// priorityRank maps a recommendation category to its rank bucket.
// Financial/revenue outranks operational/process outranks technology/AI;
// everything else sorts last.
func priorityRank(category, title string) int {
	c := strings.ToLower(category)
	t := strings.ToLower(title)
	switch {
	case strings.Contains(c, "financial") || strings.Contains(c, "revenue") ||
		strings.Contains(t, "revenue") || strings.Contains(t, "pricing"):
		return 1
	case strings.Contains(c, "operational") || strings.Contains(c, "process"):
		return 2
	case strings.Contains(c, "technology") || strings.Contains(c, "ai"):
		return 3
	default:
		return 4
	}
}

// Engine generates ranked recommendations from catalog tables.
type Engine struct {
	cat *catalog.Catalog
	cfg Config
}

// New creates an Engine over the given catalog.
func New(cat *catalog.Catalog, cfg Config) *Engine {
	if cfg.MinCount <= 0 {
		cfg.MinCount = DefaultMinCount
	}
	return &Engine{cat: cat, cfg: cfg}
}

// Generate returns the ordered recommendation set for a scored
// submission. Per-service rows come first (services in selection order,
// timeframes in rollout order), then the generic operational/financial
// group ordered by importance and relevance. If fewer than the
// configured minimum are produced, deterministic per-service and
// generic fallbacks backfill the set. The final collection is sorted
// ascending by priority rank with a stable sort.
func (e *Engine) Generate(scores model.ScoreBundle, selections []model.Selection, revenue float64) []model.Recommendation {
	bracket := catalog.BracketFor(scores.Overall)
	var recs []model.Recommendation

	// Per-service rows, selection order, timeframe order.
	for _, sel := range selections {
		entries, found := e.serviceEntries(sel.ServiceID, bracket)
		if !found {
			// No table for this service: keep it represented rather
			// than omitting it.
			recs = append(recs, e.placeholderFor(sel.ServiceID, scores))
			continue
		}
		recs = append(recs, entries...)
	}

	// Generic group: universal recs sorted by importance, then
	// relevance to the weakest dimensions.
	recs = append(recs, e.genericGroup(scores)...)

	// Backfill to the configured minimum.
	recs = e.fillToMinimum(recs, selections, scores)

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].PriorityRank < recs[j].PriorityRank
	})
	return recs
}

// serviceEntries pulls one service's bracket rows across all timeframes.
// The second return is false when the service has no recommendation table.
func (e *Engine) serviceEntries(serviceID string, bracket catalog.Bracket) ([]model.Recommendation, bool) {
	if _, ok := e.cat.ServiceRecs[serviceID]; !ok {
		return nil, false
	}
	var out []model.Recommendation
	for _, tf := range catalog.Timeframes() {
		entries, _ := e.cat.RecsFor(serviceID, bracket, tf)
		for _, entry := range entries {
			out = append(out, model.Recommendation{
				Service:        serviceID,
				Title:          entry.Title,
				Description:    entry.Description,
				ImpactLabel:    entry.Impact,
				Complexity:     entry.Complexity,
				TimeframeLabel: timeframeLabels[tf],
				PriorityRank:   priorityRank(entry.Category, entry.Title),
			})
		}
	}
	return out, true
}

// genericGroup builds the universal operational/financial rows. Within
// the group, ordering is importance descending with ties broken by a
// relevance score descending.
func (e *Engine) genericGroup(scores model.ScoreBundle) []model.Recommendation {
	type scored struct {
		rec       catalog.UniversalRec
		relevance int
	}
	group := make([]scored, 0, len(e.cat.UniversalRecs))
	for _, rec := range e.cat.UniversalRecs {
		group = append(group, scored{rec: rec, relevance: relevanceScore(rec, scores)})
	}
	sort.SliceStable(group, func(i, j int) bool {
		ri, rj := group[i].rec.Importance.Rank(), group[j].rec.Importance.Rank()
		if ri != rj {
			return ri < rj
		}
		return group[i].relevance > group[j].relevance
	})

	out := make([]model.Recommendation, 0, len(group))
	for _, s := range group {
		out = append(out, model.Recommendation{
			Service:        model.GenericService,
			Title:          s.rec.Title,
			Description:    s.rec.Description,
			ImpactLabel:    s.rec.Impact,
			Complexity:     s.rec.Complexity,
			TimeframeLabel: timeframeLabels[catalog.TimeframeShortTerm],
			PriorityRank:   priorityRank(s.rec.Category, s.rec.Title),
		})
	}
	return out
}

// relevanceScore adjusts a universal recommendation's tie-break weight
// by how its complexity matches the relevant dimension's score: low-
// complexity fixes rank up in weak areas (quick wins), heavy lifts rank
// down there, and anything targeting an already-strong dimension ranks
// down.
func relevanceScore(rec catalog.UniversalRec, scores model.ScoreBundle) int {
	const base = 50
	relevance := base

	dimScore, ok := scores.Dimensions[rec.Dimension]
	if !ok {
		return relevance
	}
	if dimScore < 50 {
		switch rec.Complexity {
		case model.ComplexityLow:
			relevance += 15
		case model.ComplexityHigh:
			relevance -= 5
		}
	}
	if dimScore >= 70 {
		relevance -= 10
	}
	return relevance
}

// placeholderFor is the fallback row for a selected service with no
// recommendation table entry.
func (e *Engine) placeholderFor(serviceID string, scores model.ScoreBundle) model.Recommendation {
	name := serviceID
	if svc := e.cat.Service(serviceID); svc != nil {
		name = svc.Name
	}
	desc := fmt.Sprintf("Review how AI adoption changes delivery economics for %s and build a transition plan for the next two quarters.", name)
	if svc, ok := scores.Services[serviceID]; ok && svc.Vulnerability >= 70 {
		desc = fmt.Sprintf("%s scores in a high-vulnerability band; prioritize an AI transition plan for this line this quarter.", name)
	}
	return model.Recommendation{
		Service:        serviceID,
		Title:          fmt.Sprintf("Build an AI readiness plan for %s", name),
		Description:    desc,
		ImpactLabel:    "Medium",
		Complexity:     model.ComplexityMedium,
		TimeframeLabel: timeframeLabels[catalog.TimeframeImmediate],
		PriorityRank:   priorityRank("operational", ""),
	}
}

// genericFallbacks are the last-resort backfill rows used only when the
// per-service round-robin still leaves the set short.
var genericFallbacks = []model.Recommendation{
	{Service: model.GenericService, Title: "Benchmark AI maturity quarterly", Description: "Re-run the assessment each quarter and track dimension scores against the prior period.", ImpactLabel: "Medium", Complexity: model.ComplexityLow, TimeframeLabel: "Immediate (0-3 months)", PriorityRank: 2},
	{Service: model.GenericService, Title: "Stand up an AI steering group", Description: "A small cross-functional group with budget authority keeps adoption from stalling at pilots.", ImpactLabel: "Medium", Complexity: model.ComplexityMedium, TimeframeLabel: "Short-term (3-9 months)", PriorityRank: 3},
	{Service: model.GenericService, Title: "Model valuation scenarios annually", Description: "Refresh the simulated multiple range as scores move; the gap to the next band is the roadmap.", ImpactLabel: "Medium", Complexity: model.ComplexityLow, TimeframeLabel: "Strategic (9-24 months)", PriorityRank: 1},
}

// fillToMinimum backfills deterministically: per-service placeholders
// cycling through the selected services round-robin, then fully generic
// fallbacks, until the configured minimum is reached. With at least one
// selected service the result never falls short of the minimum.
func (e *Engine) fillToMinimum(recs []model.Recommendation, selections []model.Selection, scores model.ScoreBundle) []model.Recommendation {
	if len(recs) >= e.cfg.MinCount || len(selections) == 0 {
		return recs
	}

	// Round-robin per-service placeholders for services not yet padded.
	cycle := 1
	for len(recs) < e.cfg.MinCount {
		added := false
		for _, sel := range selections {
			if len(recs) >= e.cfg.MinCount {
				break
			}
			ph := e.placeholderFor(sel.ServiceID, scores)
			if cycle > 1 {
				ph.Title = fmt.Sprintf("%s (phase %d)", ph.Title, cycle)
			}
			if !containsTitle(recs, ph.Service, ph.Title) {
				recs = append(recs, ph)
				added = true
			}
		}
		// The first cycle can be all duplicates when Generate already
		// emitted placeholders; later cycles carry unique phase titles.
		if !added && cycle > 1 {
			break
		}
		cycle++
	}

	// Fully generic fallbacks close any remaining gap.
	for _, fb := range genericFallbacks {
		if len(recs) >= e.cfg.MinCount {
			break
		}
		if !containsTitle(recs, fb.Service, fb.Title) {
			recs = append(recs, fb)
		}
	}
	return recs
}

func containsTitle(recs []model.Recommendation, service, title string) bool {
	for _, r := range recs {
		if r.Service == service && r.Title == title {
			return true
		}
	}
	return false
}
