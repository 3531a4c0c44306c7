package service

import (
	"context"

	"fasal/pkg/alert"
)

// View is an alert with the presentation hints the dashboard renders.
type View struct {
	alert.Record
	Badge string    `json:"badge"`
	Icon  string    `json:"icon"`
	Bars  []float64 `json:"bars"`
}

type SearchResult struct {
	Criteria alert.Criteria `json:"criteria"`
	Alerts   []View         `json:"alerts"`
	Summary  alert.Summary  `json:"summary"`
	Total    int            `json:"total"`
}

type AlertService interface {
	Search(ctx context.Context, c alert.Criteria) (*SearchResult, error)
	Get(ctx context.Context, id int) (*View, error)
}
