package repository

import (
	"context"
	"errors"

	"fasal/pkg/alert"
)

var ErrNotFound = errors.New("alert not found")

type AlertRepository interface {
	List(ctx context.Context) ([]alert.Record, error)
	FindByID(ctx context.Context, id int) (*alert.Record, error)
	Count(ctx context.Context) (int64, error)
	// Seed inserts records only when the table is empty and reports how many were written.
	Seed(ctx context.Context, records []alert.Record) (int, error)
}
