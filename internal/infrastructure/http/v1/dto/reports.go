package dto

import (
	"time"

	"accountease/internal/domain/reports"
)

// FilterRequest sets the shared report filter. A custom range carries
// explicit dates; the named timeframes are resolved server-side.
type FilterRequest struct {
	Timeframe string     `json:"timeframe" binding:"required"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

// GenerateRequest asks for a batch over an optional one-off filter.
// When no filter is given the shared filter state is used.
type GenerateRequest struct {
	Filter *FilterRequest `json:"filter"`
}

// BatchResponse carries a generated batch. Per-type failures are
// reported alongside the reports that did succeed.
type BatchResponse struct {
	Reports     []*reports.Report `json:"reports"`
	Errors      map[string]string `json:"errors,omitempty"`
	GeneratedAt time.Time         `json:"generatedAt"`
}

// FromBatch creates BatchResponse from a domain batch.
func FromBatch(b reports.Batch) BatchResponse {
	resp := BatchResponse{
		Reports:     b.Reports,
		GeneratedAt: b.GeneratedAt,
	}
	if len(b.Errors) > 0 {
		resp.Errors = make(map[string]string, len(b.Errors))
		for typ, err := range b.Errors {
			resp.Errors[string(typ)] = err.Error()
		}
	}
	return resp
}
