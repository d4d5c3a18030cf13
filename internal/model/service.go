package model

// RiskLevel classifies how exposed a service line is to AI disruption.
type RiskLevel string

// Risk levels, lowest to highest exposure.
const (
	RiskLow      RiskLevel = "Low"
	RiskMedium   RiskLevel = "Medium"
	RiskHigh     RiskLevel = "High"
	RiskCritical RiskLevel = "Critical"
)

// Service is an agency service line offered to clients.
type Service struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	RiskLevel          RiskLevel `json:"risk_level"`
	DisruptionTimeline string    `json:"disruption_timeline"`
}

// Selection is a service the agency selected, with the share of revenue
// it represents. Allocations need not sum to 100.
type Selection struct {
	ServiceID      string `json:"service_id" yaml:"service_id"`
	RevenuePercent int    `json:"revenue_percent" yaml:"revenue_percent"` // 0-100
}

// NormalizeAllocations proportionally rescales the revenue allocations so
// they sum to 100. Selections with the same relative shares are preserved.
// A zero total leaves the input unchanged. The input slice is not mutated.
func NormalizeAllocations(selections []Selection) []Selection {
	var total int
	for _, s := range selections {
		total += s.RevenuePercent
	}
	out := make([]Selection, len(selections))
	copy(out, selections)
	if total <= 0 || total == 100 {
		return out
	}
	remaining := 100
	for i := range out {
		if i == len(out)-1 {
			out[i].RevenuePercent = remaining
			break
		}
		scaled := out[i].RevenuePercent * 100 / total
		out[i].RevenuePercent = scaled
		remaining -= scaled
	}
	return out
}

// Submission is the answer state supplied by the survey layer: raw
// answers plus business metadata. The engine treats it as read-only.
type Submission struct {
	Answers    AnswerSet   `json:"answers" yaml:"answers"`
	Selections []Selection `json:"selections" yaml:"selections"`
	Revenue    float64     `json:"revenue" yaml:"revenue"`
	AgencyType string      `json:"agency_type,omitempty" yaml:"agency_type,omitempty"`
}

// SelectedServiceIDs returns the selected service IDs in selection order.
func (s Submission) SelectedServiceIDs() []string {
	ids := make([]string, 0, len(s.Selections))
	for _, sel := range s.Selections {
		ids = append(ids, sel.ServiceID)
	}
	return ids
}
