// Package assess orchestrates the scoring, valuation, and
// recommendation pipeline into one immutable results record.
package assess

import (
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/assess-cli/internal/catalog"
	"github.com/sells-group/assess-cli/internal/model"
	"github.com/sells-group/assess-cli/internal/recommend"
	"github.com/sells-group/assess-cli/internal/scoring"
	"github.com/sells-group/assess-cli/internal/valuation"
)

// neutralScore is the midpoint substituted into the fallback record
// when the pipeline fails unexpectedly.
const neutralScore = 50

// FallbackError is the marker carried by a fallback ResultsRecord.
const FallbackError = "assessment pipeline failed; neutral fallback returned"

// Assembler runs the full pipeline. It is stateless between calls:
// every Assemble takes all inputs as parameters and returns a fresh,
// independent record, so concurrent use across sessions is safe.
type Assembler struct {
	cat    *catalog.Catalog
	engine *recommend.Engine
	now    func() time.Time
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithClock overrides the time source used for GeneratedAt. Identical
// inputs with an identical clock yield byte-identical records.
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) { a.now = now }
}

// WithRecommendConfig overrides the recommendation generation settings.
func WithRecommendConfig(cfg recommend.Config) Option {
	return func(a *Assembler) { a.engine = recommend.New(a.cat, cfg) }
}

// New creates an Assembler over a catalog.
func New(cat *catalog.Catalog, opts ...Option) *Assembler {
	a := &Assembler{
		cat:    cat,
		engine: recommend.New(cat, recommend.DefaultConfig()),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble runs the pipeline over a submission and always returns a
// complete ResultsRecord. Inputs are never mutated. Unexpected failures
// anywhere in the pipeline are caught here and replaced with the
// documented neutral fallback record; no error crosses this boundary.
func (a *Assembler) Assemble(sub model.Submission) (record model.ResultsRecord) {
	generatedAt := a.now().UTC().Truncate(time.Second)

	defer func() {
		if r := recover(); r != nil {
			zap.L().Warn("assess: pipeline panic, returning fallback record",
				zap.Any("panic", r),
			)
			record = a.fallbackRecord(sub, generatedAt)
		}
	}()

	sub.Selections = model.NormalizeAllocations(sub.Selections)

	scores := a.scoreBundle(sub)
	valResult, impact := valuation.Calculate(scores, sub.Revenue)
	impact.RiskExposure = scoring.WeightedAllocation(scores.Services, sub.Selections)
	recs := a.engine.Generate(scores, sub.Selections, sub.Revenue)

	return model.ResultsRecord{
		Scores:          scores,
		Valuation:       valResult,
		Recommendations: recs,
		FinancialImpact: impact,
		GeneratedAt:     generatedAt,
	}
}

// scoreBundle computes dimension, overall, and per-service scores for a
// submission against the catalog's question bank.
func (a *Assembler) scoreBundle(sub model.Submission) model.ScoreBundle {
	weights := a.cat.WeightsFor(sub.AgencyType)

	dims := make(map[model.DimensionID]int, len(weights))
	for _, dim := range a.cat.Dimensions() {
		dims[dim] = scoring.ScoreDimension(dim, sub.Answers, a.cat.QuestionsForDimension(dim))
	}

	services := make(map[string]model.ServiceScore, len(sub.Selections))
	for _, sel := range sub.Selections {
		services[sel.ServiceID] = scoring.ScoreService(sel.ServiceID, sub.Answers, a.cat.Questions, weights)
	}

	return model.ScoreBundle{
		Overall:    scoring.ScoreOverall(dims, weights),
		Dimensions: dims,
		Services:   services,
	}
}

// fallbackRecord is the documented degraded result: every score at the
// neutral midpoint, valuation computed from those neutral scores, and
// an explicit error marker. It is never partially populated.
func (a *Assembler) fallbackRecord(sub model.Submission, generatedAt time.Time) model.ResultsRecord {
	dims := make(map[model.DimensionID]int, len(a.cat.Weights))
	for _, dim := range a.cat.Dimensions() {
		dims[dim] = neutralScore
	}
	services := make(map[string]model.ServiceScore, len(sub.Selections))
	for _, sel := range sub.Selections {
		services[sel.ServiceID] = model.ServiceScore{
			Score:         neutralScore,
			Vulnerability: scoring.BandForScore(neutralScore).Vulnerability,
		}
	}
	scores := model.ScoreBundle{Overall: neutralScore, Dimensions: dims, Services: services}
	valResult, impact := valuation.Calculate(scores, sub.Revenue)
	impact.RiskExposure = scoring.WeightedAllocation(services, sub.Selections)

	return model.ResultsRecord{
		Scores:          scores,
		Valuation:       valResult,
		Recommendations: []model.Recommendation{},
		FinancialImpact: impact,
		GeneratedAt:     generatedAt,
		Error:           FallbackError,
	}
}
