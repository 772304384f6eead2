package production

import (
	"fmt"
	"time"

	"github.com/opsboard/kpi-backend-go/internal/pkg/validator"
)

// Task is one logged production entry. Several entries per employee per day
// are allowed; entries are not deduplicated by date.
type Task struct {
	Date        time.Time `json:"date"`
	QuantityKg  float64   `json:"quantity_kg"`
	Description string    `json:"description"`
}

// TaskInput is the wire shape of one production entry.
type TaskInput struct {
	Date        string  `json:"date"`
	QuantityKg  float64 `json:"quantity_kg"`
	Description string  `json:"description"`
}

// ValidateField returns field-scoped validation errors for the entry.
func (t *TaskInput) ValidateField(field string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(t.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   field + ".date",
			Message: "date must be YYYY-MM-DD",
		})
	}
	if t.QuantityKg < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   field + ".quantity_kg",
			Message: "quantity_kg must not be negative",
		})
	}

	return errs
}

// ToDomain converts a validated TaskInput into a Task.
func (t *TaskInput) ToDomain() (Task, error) {
	date, ok := validator.IsValidDate(t.Date)
	if !ok {
		return Task{}, fmt.Errorf("invalid date %q", t.Date)
	}
	return Task{
		Date:        date.UTC(),
		QuantityKg:  t.QuantityKg,
		Description: t.Description,
	}, nil
}

// EmployeeStat is one employee's production roll-up for a month.
type EmployeeStat struct {
	Matricule     int     `json:"matricule"`
	Name          string  `json:"name"`
	TotalKg       float64 `json:"total_kg"`
	Entries       int     `json:"entries"`
	AvgKgPerEntry int     `json:"avg_kg_per_entry"`
}
