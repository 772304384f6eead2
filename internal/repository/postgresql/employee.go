package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/opsboard/kpi-backend-go/internal/domain/employee"
	"github.com/opsboard/kpi-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (team_id, matricule, name, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, emp.TeamID, emp.Matricule, emp.Name).Scan(&emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return employee.Employee{}, employee.ErrMatriculeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByMatricule implements employee.EmployeeRepository.
func (r *employeeRepository) GetByMatricule(ctx context.Context, teamID string, matricule int) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT team_id, matricule, name, created_at, updated_at
		FROM employees
		WHERE team_id = $1
		  AND matricule = $2
		LIMIT 1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, teamID, matricule).Scan(
		&emp.TeamID, &emp.Matricule, &emp.Name, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// ListByTeam implements employee.EmployeeRepository.
func (r *employeeRepository) ListByTeam(ctx context.Context, teamID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT team_id, matricule, name, created_at, updated_at
		FROM employees
		WHERE team_id = $1
		ORDER BY matricule
	`, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(&emp.TeamID, &emp.Matricule, &emp.Name, &emp.CreatedAt, &emp.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employee rows: %w", err)
	}

	return employees, nil
}

// Delete implements employee.EmployeeRepository. Only the roster row is
// removed; stored snapshots keep their historical records for the matricule.
func (r *employeeRepository) Delete(ctx context.Context, teamID string, matricule int) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		DELETE FROM employees
		WHERE team_id = $1
		  AND matricule = $2
	`, teamID, matricule)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
