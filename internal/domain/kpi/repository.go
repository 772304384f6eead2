package kpi

import (
	"context"
	"time"
)

// AggregateRepository persists monthly KPI snapshots.
//
// GetByMonth returns (nil, nil) when no aggregate exists: absence of a
// month's data is a normal state, never an error. Upsert replaces every
// mutable field of an existing row or inserts a new one; the surrounding
// read-modify-write sequence is not atomic and relies on the single-editor
// assumption enforced by the UI.
type AggregateRepository interface {
	GetByMonth(ctx context.Context, teamID string, category Category, monthKey time.Time) (*MonthlyAggregate, error)

	Upsert(ctx context.Context, agg MonthlyAggregate) (MonthlyAggregate, error)

	// GetLatest returns the most recent aggregate by month key, or (nil, nil).
	GetLatest(ctx context.Context, teamID string, category Category) (*MonthlyAggregate, error)

	// ListRecent returns up to limit aggregates, newest month first.
	ListRecent(ctx context.Context, teamID string, category Category, limit int) ([]MonthlyAggregate, error)
}
