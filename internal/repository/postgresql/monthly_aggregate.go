package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/opsboard/kpi-backend-go/internal/domain/kpi"
	"github.com/opsboard/kpi-backend-go/internal/pkg/database"
)

type monthlyAggregateRepository struct {
	db *database.DB
}

func NewMonthlyAggregateRepository(db *database.DB) kpi.AggregateRepository {
	return &monthlyAggregateRepository{db: db}
}

const aggregateColumns = `
	id, team_id, category, month_key, kpi_value, monthly_target,
	employees, incidents, formulas, created_at, updated_at
`

// GetByMonth implements kpi.AggregateRepository. A missing month returns
// (nil, nil): absence of data is a normal state at this boundary.
func (r *monthlyAggregateRepository) GetByMonth(ctx context.Context, teamID string, category kpi.Category, monthKey time.Time) (*kpi.MonthlyAggregate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + aggregateColumns + `
		FROM monthly_aggregates
		WHERE team_id = $1
		  AND category = $2
		  AND month_key = $3
		LIMIT 1
	`

	agg, err := scanAggregate(q.QueryRow(ctx, query, teamID, string(category), kpi.MonthKeyFor(monthKey)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get monthly aggregate: %w", err)
	}

	return agg, nil
}

// Upsert implements kpi.AggregateRepository. The row is located by
// (team, category, month) inside one transaction and fully replaced or
// inserted. Each save is a whole-snapshot write; there is no partial merge.
func (r *monthlyAggregateRepository) Upsert(ctx context.Context, agg kpi.MonthlyAggregate) (kpi.MonthlyAggregate, error) {
	agg.MonthKey = kpi.MonthKeyFor(agg.MonthKey)

	employees, incidents, formulas, err := marshalSnapshots(agg)
	if err != nil {
		return kpi.MonthlyAggregate{}, err
	}

	err = WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		var existingID string
		err := tx.QueryRow(ctx, `
			SELECT id FROM monthly_aggregates
			WHERE team_id = $1 AND category = $2 AND month_key = $3
			FOR UPDATE
		`, agg.TeamID, string(agg.Category), agg.MonthKey).Scan(&existingID)

		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to look up monthly aggregate: %w", err)
		}

		if errors.Is(err, pgx.ErrNoRows) {
			return tx.QueryRow(ctx, `
				INSERT INTO monthly_aggregates (
					id, team_id, category, month_key, kpi_value, monthly_target,
					employees, incidents, formulas, created_at, updated_at
				) VALUES (
					gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW()
				) RETURNING id, created_at, updated_at
			`, agg.TeamID, string(agg.Category), agg.MonthKey, agg.KPIValue, agg.MonthlyTarget,
				employees, incidents, formulas,
			).Scan(&agg.ID, &agg.CreatedAt, &agg.UpdatedAt)
		}

		agg.ID = existingID
		return tx.QueryRow(ctx, `
			UPDATE monthly_aggregates
			SET kpi_value = $2, monthly_target = $3,
				employees = $4, incidents = $5, formulas = $6,
				updated_at = NOW()
			WHERE id = $1
			RETURNING created_at, updated_at
		`, existingID, agg.KPIValue, agg.MonthlyTarget,
			employees, incidents, formulas,
		).Scan(&agg.CreatedAt, &agg.UpdatedAt)
	})
	if err != nil {
		return kpi.MonthlyAggregate{}, fmt.Errorf("failed to upsert monthly aggregate: %w", err)
	}

	return agg, nil
}

// GetLatest implements kpi.AggregateRepository.
func (r *monthlyAggregateRepository) GetLatest(ctx context.Context, teamID string, category kpi.Category) (*kpi.MonthlyAggregate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + aggregateColumns + `
		FROM monthly_aggregates
		WHERE team_id = $1
		  AND category = $2
		ORDER BY month_key DESC
		LIMIT 1
	`

	agg, err := scanAggregate(q.QueryRow(ctx, query, teamID, string(category)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest aggregate: %w", err)
	}

	return agg, nil
}

// ListRecent implements kpi.AggregateRepository.
func (r *monthlyAggregateRepository) ListRecent(ctx context.Context, teamID string, category kpi.Category, limit int) ([]kpi.MonthlyAggregate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + aggregateColumns + `
		FROM monthly_aggregates
		WHERE team_id = $1
		  AND category = $2
		ORDER BY month_key DESC
		LIMIT $3
	`

	rows, err := q.Query(ctx, query, teamID, string(category), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list aggregates: %w", err)
	}
	defer rows.Close()

	var aggregates []kpi.MonthlyAggregate
	for rows.Next() {
		agg, err := scanAggregate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan aggregate: %w", err)
		}
		aggregates = append(aggregates, *agg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read aggregate rows: %w", err)
	}

	return aggregates, nil
}

func scanAggregate(row pgx.Row) (*kpi.MonthlyAggregate, error) {
	var agg kpi.MonthlyAggregate
	var category string
	var employees, incidents, formulas []byte

	err := row.Scan(
		&agg.ID, &agg.TeamID, &category, &agg.MonthKey, &agg.KPIValue, &agg.MonthlyTarget,
		&employees, &incidents, &formulas, &agg.CreatedAt, &agg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	agg.Category = kpi.Category(category)
	agg.MonthKey = kpi.MonthKeyFor(agg.MonthKey)

	if err := unmarshalInto(employees, &agg.Employees); err != nil {
		return nil, fmt.Errorf("corrupt employees snapshot: %w", err)
	}
	if err := unmarshalInto(incidents, &agg.Incidents); err != nil {
		return nil, fmt.Errorf("corrupt incidents snapshot: %w", err)
	}
	if err := unmarshalInto(formulas, &agg.Formulas); err != nil {
		return nil, fmt.Errorf("corrupt formulas snapshot: %w", err)
	}

	return &agg, nil
}

func marshalSnapshots(agg kpi.MonthlyAggregate) (employees, incidents, formulas []byte, err error) {
	if employees, err = json.Marshal(agg.Employees); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal employees snapshot: %w", err)
	}
	if incidents, err = json.Marshal(agg.Incidents); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal incidents snapshot: %w", err)
	}
	if formulas, err = json.Marshal(agg.Formulas); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal formulas snapshot: %w", err)
	}
	return employees, incidents, formulas, nil
}

func unmarshalInto(data []byte, target interface{}) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, target)
}
