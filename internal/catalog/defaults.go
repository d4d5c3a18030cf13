package catalog

import "github.com/sells-group/assess-cli/internal/model"

// Default returns the built-in assessment catalog: the question bank,
// service table, weight maps, and recommendation tables shipped with
// the binary. Callers may overlay it with LoadFromFile.
func Default() *Catalog {
	return &Catalog{
		Questions:       defaultQuestions(),
		Services:        defaultServices(),
		Weights:         defaultWeights(),
		AgencyOverrides: defaultAgencyOverrides(),
		ServiceRecs:     defaultServiceRecs(),
		UniversalRecs:   defaultUniversalRecs(),
	}
}

// defaultWeights is the overall-score weight map. Weights sum to 100.
func defaultWeights() model.WeightMap {
	return model.WeightMap{
		model.DimensionOperational: 30,
		model.DimensionFinancial:   30,
		model.DimensionAI:          40,
	}
}

// defaultAgencyOverrides adjusts dimension emphasis per agency type.
// An override replaces only the dimensions it names.
func defaultAgencyOverrides() map[string]model.WeightMap {
	return map[string]model.WeightMap{
		// Creative shops live and die by process maturity.
		"creative": {
			model.DimensionOperational: 40,
			model.DimensionAI:          30,
		},
		// Performance agencies are valued on financial discipline.
		"performance": {
			model.DimensionFinancial: 40,
			model.DimensionAI:        30,
		},
		// Technology-led agencies are scored hardest on AI adoption.
		"technology": {
			model.DimensionAI: 50,
		},
	}
}

func defaultServices() []model.Service {
	return []model.Service{
		{ID: "seo", Name: "SEO & Organic Search", RiskLevel: model.RiskHigh, DisruptionTimeline: "12-24 months"},
		{ID: "paid_media", Name: "Paid Media Management", RiskLevel: model.RiskCritical, DisruptionTimeline: "6-18 months"},
		{ID: "content", Name: "Content Marketing", RiskLevel: model.RiskCritical, DisruptionTimeline: "6-12 months"},
		{ID: "creative", Name: "Creative & Design", RiskLevel: model.RiskHigh, DisruptionTimeline: "12-24 months"},
		{ID: "web_dev", Name: "Web Design & Development", RiskLevel: model.RiskMedium, DisruptionTimeline: "18-36 months"},
		{ID: "email", Name: "Email & Lifecycle Marketing", RiskLevel: model.RiskMedium, DisruptionTimeline: "18-30 months"},
		{ID: "analytics", Name: "Analytics & Reporting", RiskLevel: model.RiskLow, DisruptionTimeline: "24-48 months"},
	}
}

// scale05 is the standard worst-to-best option ladder used by most
// questions; text varies per question in the real survey but only the
// scores drive aggregation.
func scale05(labels ...string) []model.Option {
	opts := make([]model.Option, len(labels))
	step := 5.0 / float64(len(labels)-1)
	for i, text := range labels {
		opts[i] = model.Option{Text: text, Score: int(float64(i)*step + 0.5)}
	}
	return opts
}

func defaultQuestions() []model.Question {
	return []model.Question{
		// Operational maturity.
		{
			ID: "ops_processes", Dimension: model.DimensionOperational, Weight: 2.5,
			Text:    "How well documented and repeatable are your core delivery processes?",
			Options: scale05("Ad hoc, undocumented", "Partially documented", "Documented but inconsistently followed", "Documented and mostly followed", "Standardized with regular review", "Fully standardized and continuously improved"),
		},
		{
			ID: "ops_key_person", Dimension: model.DimensionOperational, Weight: 3.0,
			Text:    "How dependent is delivery on specific individuals (including founders)?",
			Options: scale05("Everything routes through one person", "A few critical dependencies", "Some dependencies with partial coverage", "Cross-trained on most work", "Minimal key-person risk", "No single point of failure"),
		},
		{
			ID: "ops_utilization", Dimension: model.DimensionOperational, Weight: 2.0,
			Text:    "Do you track team utilization and delivery margin per engagement?",
			Options: scale05("No tracking", "Annual gut check", "Quarterly spreadsheets", "Monthly reporting", "Weekly dashboards", "Real-time per-engagement tracking"),
		},
		{
			ID: "ops_client_concentration", Dimension: model.DimensionOperational, Weight: 2.5,
			Text:    "What share of revenue comes from your single largest client?",
			Options: scale05("Over 50%", "35-50%", "25-35%", "15-25%", "10-15%", "Under 10%"),
		},

		// Financial maturity.
		{
			ID: "fin_recurring", Dimension: model.DimensionFinancial, Weight: 3.0,
			Text:    "What share of revenue is recurring (retainers, subscriptions)?",
			Options: scale05("Under 10%", "10-25%", "25-40%", "40-60%", "60-80%", "Over 80%"),
		},
		{
			ID: "fin_margins", Dimension: model.DimensionFinancial, Weight: 2.5,
			Text:    "What is your adjusted EBITDA margin?",
			Options: scale05("Negative", "0-5%", "5-10%", "10-15%", "15-25%", "Over 25%"),
		},
		{
			ID: "fin_reporting", Dimension: model.DimensionFinancial, Weight: 2.0,
			Text:    "How timely and reliable are your monthly financials?",
			Options: scale05("No regular close", "Quarterly, often late", "Monthly, 30+ days after close", "Monthly within 3 weeks", "Monthly within 10 days", "Accrual-basis close within 5 days"),
		},
		{
			ID: "fin_pricing", Dimension: model.DimensionFinancial, Weight: 2.0,
			Text:    "How is your work priced?",
			Options: scale05("Pure hourly billing", "Mostly hourly", "Mixed hourly and fixed", "Mostly fixed fee", "Fixed fee with value components", "Value-based or productized pricing"),
		},

		// AI adoption.
		{
			ID: "ai_adoption", Dimension: model.DimensionAI, Weight: 3.0,
			Text:    "How broadly has your team adopted AI tooling in daily delivery?",
			Options: scale05("Not at all", "A few individuals experiment", "Team-level pilots", "Standard in some service lines", "Standard across most delivery", "AI-native workflows everywhere"),
		},
		{
			ID: "ai_strategy", Dimension: model.DimensionAI, Weight: 2.5,
			Text:    "Do you have a written AI strategy with owners and budget?",
			Options: scale05("No strategy", "Informal discussions", "Draft strategy, no owner", "Strategy with an owner", "Funded strategy in execution", "Strategy reviewed quarterly against KPIs"),
		},
		{
			ID: "ai_pricing_exposure", Dimension: model.DimensionAI, Weight: 2.5,
			Text:    "How exposed is your pricing model to AI-driven effort compression?",
			Options: scale05("Fully hourly, no hedge", "Mostly hourly", "Mixed, migration discussed", "Migration to outcomes underway", "Mostly outcome-priced", "Pricing decoupled from effort"),
		},
		{
			ID: "ai_data", Dimension: model.DimensionAI, Weight: 1.5,
			Text:    "Is your client and delivery data structured enough to power AI workflows?",
			Options: scale05("Scattered documents", "Some shared drives", "Central but unstructured", "Partially structured", "Structured with access controls", "Clean, governed, API-accessible"),
		},

		// Service-specific questions. AI-dimension entries drive the 2:1
		// service blend in the service scorer.
		{
			ID: "svc_seo_ai", Dimension: model.DimensionAI, Weight: 2.0, ServiceID: "seo",
			Text:    "How has AI search changed your SEO deliverables?",
			Options: scale05("No change", "Monitoring only", "Testing AI-era tactics", "Revised deliverables shipping", "AI-search strategy productized", "Leading clients through the shift"),
		},
		{
			ID: "svc_seo_ops", Dimension: model.DimensionOperational, Weight: 1.5, ServiceID: "seo",
			Text:    "How automated is your SEO reporting pipeline?",
			Options: scale05("Manual exports", "Partly templated", "Scheduled reports", "Automated dashboards", "Automated with anomaly alerts", "Fully automated insight generation"),
		},
		{
			ID: "svc_paid_media_ai", Dimension: model.DimensionAI, Weight: 2.0, ServiceID: "paid_media",
			Text:    "How much of your media buying relies on platform AI (PMax, Advantage+)?",
			Options: scale05("Resisting automation", "Minimal use", "Testing on small budgets", "Significant share automated", "Automation-first with oversight", "Strategy layer fully reoriented"),
		},
		{
			ID: "svc_content_ai", Dimension: model.DimensionAI, Weight: 2.0, ServiceID: "content",
			Text:    "How is AI integrated into your content production workflow?",
			Options: scale05("Banned or unused", "Individual drafting aid", "Team-standard drafting", "Structured human-in-loop pipeline", "AI-first with editorial QA", "Differentiated hybrid offering"),
		},
		{
			ID: "svc_creative_ai", Dimension: model.DimensionAI, Weight: 2.0, ServiceID: "creative",
			Text:    "How does your creative team use generative tools?",
			Options: scale05("Not at all", "Moodboards only", "Concepting and comps", "Production-assist workflows", "Integrated generation pipeline", "New offerings built on it"),
		},
		{
			ID: "svc_web_dev_ai", Dimension: model.DimensionAI, Weight: 1.5, ServiceID: "web_dev",
			Text:    "How much of your development workflow uses AI assistance?",
			Options: scale05("None", "Individual autocomplete", "Team-standard assistants", "AI-assisted review and QA", "Agent-driven scaffolding", "Fully AI-augmented delivery"),
		},
	}
}

// defaultServiceRecs holds the per-service recommendation tables keyed
// by score bracket and timeframe. Services without a table here fall
// back to generic per-service recommendations at generation time.
func defaultServiceRecs() map[string]ServiceRecs {
	return map[string]ServiceRecs{
		"seo": {
			BracketLow: {
				TimeframeImmediate: {{Category: "technology", Title: "Audit AI-search visibility", Description: "Baseline how the agency's clients appear in AI answers and assistants before traffic erodes further.", Impact: "High", Complexity: model.ComplexityLow}},
				TimeframeShortTerm: {{Category: "operational", Title: "Rebuild SEO deliverables for AI search", Description: "Replace ranking reports with answer-visibility and citation tracking deliverables.", Impact: "High", Complexity: model.ComplexityMedium}},
				TimeframeStrategic: {{Category: "revenue", Title: "Reprice SEO as search experience strategy", Description: "Move retainers from keyword volume to outcome-based search visibility engagements.", Impact: "High", Complexity: model.ComplexityHigh}},
			},
			BracketMid: {
				TimeframeImmediate: {{Category: "technology", Title: "Standardize AI-era SEO tooling", Description: "Roll the tactics already proven in pilots out to every SEO retainer.", Impact: "Medium", Complexity: model.ComplexityLow}},
				TimeframeShortTerm: {{Category: "operational", Title: "Automate SEO reporting", Description: "Cut manual reporting hours with automated dashboards and anomaly alerts.", Impact: "Medium", Complexity: model.ComplexityMedium}},
				TimeframeStrategic: {{Category: "revenue", Title: "Productize an AI-search offering", Description: "Package answer-engine optimization as a named, margin-rich product line.", Impact: "High", Complexity: model.ComplexityMedium}},
			},
			BracketHigh: {
				TimeframeImmediate: {{Category: "revenue", Title: "Publish AI-search case studies", Description: "Turn the agency's lead in AI-era SEO into sales collateral while the gap is wide.", Impact: "Medium", Complexity: model.ComplexityLow}},
				TimeframeShortTerm: {{Category: "operational", Title: "Codify the SEO playbook", Description: "Document the AI-search methodology so delivery scales past the current team.", Impact: "Medium", Complexity: model.ComplexityMedium}},
				TimeframeStrategic: {{Category: "financial", Title: "Defend SEO margin with value pricing", Description: "Shift remaining hourly SEO work to value-based pricing before effort compression hits.", Impact: "High", Complexity: model.ComplexityHigh}},
			},
		},
		"paid_media": {
			BracketLow: {
				TimeframeImmediate: {{Category: "financial", Title: "Restructure media fees away from spend percentage", Description: "Platform automation is collapsing the labor behind percentage-of-spend fees; move to flat or performance fees.", Impact: "High", Complexity: model.ComplexityMedium}},
				TimeframeShortTerm: {{Category: "technology", Title: "Adopt platform automation deliberately", Description: "Stand up a tested PMax/Advantage+ operating model instead of resisting it account by account.", Impact: "High", Complexity: model.ComplexityMedium}},
				TimeframeStrategic: {{Category: "revenue", Title: "Reposition around strategy and measurement", Description: "Rebuild the paid media offer around audience strategy, creative testing, and incrementality measurement.", Impact: "High", Complexity: model.ComplexityHigh}},
			},
			BracketMid: {
				TimeframeImmediate: {{Category: "operational", Title: "Consolidate campaign operations", Description: "Centralize setup and QA so automated campaigns run through one reviewed pipeline.", Impact: "Medium", Complexity: model.ComplexityLow}},
				TimeframeShortTerm: {{Category: "financial", Title: "Rebase media pricing on outcomes", Description: "Pilot outcome-linked fees on two accounts and template the contract.", Impact: "High", Complexity: model.ComplexityMedium}},
				TimeframeStrategic: {{Category: "technology", Title: "Build a first-party data practice", Description: "Help clients own audience data; it is the durable input platforms cannot automate away.", Impact: "High", Complexity: model.ComplexityHigh}},
			},
			BracketHigh: {
				TimeframeImmediate: {{Category: "revenue", Title: "Package measurement as a product", Description: "Sell the incrementality and MMM capability that automation-first buying already requires.", Impact: "Medium", Complexity: model.ComplexityMedium}},
				TimeframeShortTerm: {{Category: "operational", Title: "Scale the automation playbook", Description: "Move every remaining account onto the proven automation operating model.", Impact: "Medium", Complexity: model.ComplexityLow}},
				TimeframeStrategic: {{Category: "financial", Title: "Lock in long-term outcome contracts", Description: "Convert top accounts to multi-year outcome-based agreements while results lead the market.", Impact: "High", Complexity: model.ComplexityHigh}},
			},
		},
		"content": {
			BracketLow: {
				TimeframeImmediate: {{Category: "technology", Title: "Lift the effective AI ban", Description: "Per-word and per-asset economics are collapsing; an unused-AI content team cannot hold margin.", Impact: "High", Complexity: model.ComplexityLow}},
				TimeframeShortTerm: {{Category: "operational", Title: "Build a human-in-loop production pipeline", Description: "Define where drafting is automated and where editorial judgment is the paid product.", Impact: "High", Complexity: model.ComplexityMedium}},
				TimeframeStrategic: {{Category: "revenue", Title: "Shift from volume to authority content", Description: "Sell expertise-led, original-research content that AI commoditization cannot undercut.", Impact: "High", Complexity: model.ComplexityHigh}},
			},
			BracketMid: {
				TimeframeImmediate: {{Category: "operational", Title: "Standardize editorial QA gates", Description: "Put every AI-assisted asset through a consistent quality gate to protect the agency's byline.", Impact: "Medium", Complexity: model.ComplexityLow}},
				TimeframeShortTerm: {{Category: "financial", Title: "Reprice content on value tiers", Description: "Split pricing into automated-assist and expert-led tiers instead of a single per-asset rate.", Impact: "High", Complexity: model.ComplexityMedium}},
				TimeframeStrategic: {{Category: "revenue", Title: "Launch a content-systems offering", Description: "Sell the pipeline itself: brand-tuned models, prompt libraries, and governance for client teams.", Impact: "High", Complexity: model.ComplexityHigh}},
			},
			BracketHigh: {
				TimeframeImmediate: {{Category: "revenue", Title: "Market the hybrid content model", Description: "Publish the methodology; differentiated hybrid production is a selling point this year, table stakes next.", Impact: "Medium", Complexity: model.ComplexityLow}},
				TimeframeShortTerm: {{Category: "operational", Title: "Instrument content performance", Description: "Tie every asset to pipeline metrics so the value story survives procurement scrutiny.", Impact: "Medium", Complexity: model.ComplexityMedium}},
				TimeframeStrategic: {{Category: "technology", Title: "Invest in proprietary content tooling", Description: "Convert internal tooling into a defensible asset that raises acquisition value.", Impact: "High", Complexity: model.ComplexityHigh}},
			},
		},
		"creative": {
			BracketLow: {
				TimeframeImmediate: {{Category: "technology", Title: "Run structured generative pilots", Description: "Move from scattered experimentation to two scoped pilots with before/after cycle-time data.", Impact: "High", Complexity: model.ComplexityLow}},
				TimeframeShortTerm: {{Category: "operational", Title: "Integrate generation into production", Description: "Bring concepting and versioning onto generative tooling with clear usage and rights policies.", Impact: "High", Complexity: model.ComplexityMedium}},
				TimeframeStrategic: {{Category: "revenue", Title: "Rebuild the creative offer around speed", Description: "Sell rapid iteration and personalization volume that manual-only shops cannot match.", Impact: "High", Complexity: model.ComplexityHigh}},
			},
			BracketMid: {
				TimeframeImmediate: {{Category: "operational", Title: "Codify generative brand controls", Description: "Standardize model, prompt, and brand-safety controls before client work scales further.", Impact: "Medium", Complexity: model.ComplexityLow}},
				TimeframeShortTerm: {{Category: "revenue", Title: "Pilot personalization-at-scale retainers", Description: "Use the generation pipeline to sell creative volumes previously unprofitable to produce.", Impact: "High", Complexity: model.ComplexityMedium}},
				TimeframeStrategic: {{Category: "financial", Title: "Reprice creative on outcomes", Description: "Shift from hours to asset-performance pricing as generation compresses production effort.", Impact: "High", Complexity: model.ComplexityHigh}},
			},
			BracketHigh: {
				TimeframeImmediate: {{Category: "revenue", Title: "Showcase AI-era craft", Description: "Enter the work in awards and publish process films; buyer perception lags capability.", Impact: "Medium", Complexity: model.ComplexityLow}},
				TimeframeShortTerm: {{Category: "operational", Title: "Scale the hybrid creative team", Description: "Hire and train against the integrated pipeline rather than traditional role silos.", Impact: "Medium", Complexity: model.ComplexityMedium}},
				TimeframeStrategic: {{Category: "technology", Title: "Build proprietary style systems", Description: "Fine-tuned brand style systems are licensable IP and a valuation multiplier.", Impact: "High", Complexity: model.ComplexityHigh}},
			},
		},
		"web_dev": {
			BracketLow: {
				TimeframeImmediate: {{Category: "technology", Title: "Adopt AI-assisted development", Description: "Standardize coding assistants across the team; unassisted delivery is now a cost disadvantage.", Impact: "High", Complexity: model.ComplexityLow}},
				TimeframeShortTerm: {{Category: "operational", Title: "Automate QA and regression", Description: "Pair faster AI-assisted output with automated testing so quality holds at higher velocity.", Impact: "Medium", Complexity: model.ComplexityMedium}},
				TimeframeStrategic: {{Category: "revenue", Title: "Move up the stack to product work", Description: "Reposition from site builds toward integrations and product engineering where judgment holds value.", Impact: "High", Complexity: model.ComplexityHigh}},
			},
			BracketMid: {
				TimeframeImmediate: {{Category: "operational", Title: "Template common build patterns", Description: "Convert repeated build work into accelerators that compound the AI-assist speedup.", Impact: "Medium", Complexity: model.ComplexityLow}},
				TimeframeShortTerm: {{Category: "financial", Title: "Fix-bid templated builds", Description: "Use predictable AI-assisted velocity to move templated work to fixed-fee margin.", Impact: "High", Complexity: model.ComplexityMedium}},
				TimeframeStrategic: {{Category: "revenue", Title: "Offer AI-feature development", Description: "Sell chat, search, and automation features into the existing client base.", Impact: "High", Complexity: model.ComplexityMedium}},
			},
			BracketHigh: {
				TimeframeImmediate: {{Category: "revenue", Title: "Publish engineering velocity metrics", Description: "Quantified delivery speed is a differentiator in competitive pitches; publish it.", Impact: "Medium", Complexity: model.ComplexityLow}},
				TimeframeShortTerm: {{Category: "operational", Title: "Institutionalize agent workflows", Description: "Move from individual assistant use to reviewed, team-level agent pipelines.", Impact: "Medium", Complexity: model.ComplexityMedium}},
				TimeframeStrategic: {{Category: "technology", Title: "Build reusable AI components", Description: "A library of shipped AI features becomes both an accelerator and acquirable IP.", Impact: "High", Complexity: model.ComplexityHigh}},
			},
		},
	}
}

// defaultUniversalRecs are the generic operational and financial
// recommendations merged into every result set.
func defaultUniversalRecs() []UniversalRec {
	return []UniversalRec{
		{Category: "operational", Title: "Reduce founder dependency", Description: "Document decision rights and move client relationships to a second tier of leadership; key-person risk is the first diligence flag.", Impact: "High", Complexity: model.ComplexityHigh, Importance: ImportanceCritical, Dimension: model.DimensionOperational},
		{Category: "operational", Title: "Standardize delivery playbooks", Description: "Written, versioned playbooks for every core service make the agency transferable and train AI workflows later.", Impact: "Medium", Complexity: model.ComplexityMedium, Importance: ImportanceHigh, Dimension: model.DimensionOperational},
		{Category: "operational", Title: "Diversify the client base", Description: "Bring the largest client below 20% of revenue; concentration discounts compound with every point above it.", Impact: "High", Complexity: model.ComplexityHigh, Importance: ImportanceHigh, Dimension: model.DimensionOperational},
		{Category: "financial", Title: "Grow recurring revenue share", Description: "Convert project clients to retainers; recurring share is the single biggest multiple driver in agency deals.", Impact: "High", Complexity: model.ComplexityMedium, Importance: ImportanceCritical, Dimension: model.DimensionFinancial},
		{Category: "financial", Title: "Tighten the monthly close", Description: "Accrual-basis financials inside ten days signal operational control to any acquirer.", Impact: "Medium", Complexity: model.ComplexityLow, Importance: ImportanceMedium, Dimension: model.DimensionFinancial},
		{Category: "financial", Title: "Move pricing off the hour", Description: "Effort-based pricing caps upside exactly as AI compresses effort; migrate to value and outcome pricing.", Impact: "High", Complexity: model.ComplexityMedium, Importance: ImportanceHigh, Dimension: model.DimensionFinancial},
	}
}
