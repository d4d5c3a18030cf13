package model

import "time"

// Assessment is a persisted assessment: the submission that produced it
// plus the resulting record.
type Assessment struct {
	ID         string        `json:"id"`
	Submission Submission    `json:"submission"`
	Record     ResultsRecord `json:"record"`
	AgencyName string        `json:"agency_name,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}
