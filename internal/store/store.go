// Package store persists completed assessments. The engine core never
// touches it; only the CLI and server wiring do.
package store

import (
	"context"

	"github.com/sells-group/assess-cli/internal/model"
)

// ListFilter specifies criteria for listing assessments.
type ListFilter struct {
	AgencyName     string `json:"agency_name,omitempty"`
	Classification string `json:"classification,omitempty"`
	Limit          int    `json:"limit,omitempty"`
	Offset         int    `json:"offset,omitempty"`
}

// Store defines the persistence interface for assessment results.
type Store interface {
	SaveAssessment(ctx context.Context, agencyName string, sub model.Submission, record model.ResultsRecord) (*model.Assessment, error)
	GetAssessment(ctx context.Context, id string) (*model.Assessment, error)
	ListAssessments(ctx context.Context, filter ListFilter) ([]model.Assessment, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
