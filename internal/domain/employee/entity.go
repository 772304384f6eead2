package employee

import (
	"context"
	"time"

	"github.com/opsboard/kpi-backend-go/internal/pkg/validator"
)

// Employee is a roster row. Matricule is the badge number the shop floor
// uses; it is unique within a team, not globally.
type Employee struct {
	Matricule int       `json:"matricule"`
	Name      string    `json:"name"`
	TeamID    string    `json:"team_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateRequest struct {
	Matricule int    `json:"matricule"`
	Name      string `json:"name"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Matricule <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "matricule",
			Message: "matricule must be a positive integer",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByMatricule(ctx context.Context, teamID string, matricule int) (Employee, error)
	ListByTeam(ctx context.Context, teamID string) ([]Employee, error)

	// Delete removes the roster row. Records referencing the matricule
	// inside stored snapshots are filtered by the caller, not by the
	// database; there is no referential integrity to rely on.
	Delete(ctx context.Context, teamID string, matricule int) error
}
