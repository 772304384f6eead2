package efficiency

import (
	"fmt"

	"github.com/opsboard/kpi-backend-go/internal/pkg/validator"
)

// Task is one item of an employee's monthly task list.
type Task struct {
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
}

// EmployeeTasks is one employee's task list for a month.
type EmployeeTasks struct {
	Matricule int    `json:"matricule"`
	Name      string `json:"name"`
	Tasks     []Task `json:"tasks"`
}

// SaveMonthRequest replaces a team's task-list snapshot for one month.
type SaveMonthRequest struct {
	MonthlyTarget int             `json:"monthly_target"`
	Employees     []EmployeeTasks `json:"employees"`
}

func (r *SaveMonthRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.MonthlyTarget < 0 || r.MonthlyTarget > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_target",
			Message: "monthly_target must be between 0 and 100",
		})
	}

	for i, emp := range r.Employees {
		if emp.Matricule <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("employees[%d].matricule", i),
				Message: "matricule must be a positive integer",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EmployeeRate is one employee's completion rate for a month.
type EmployeeRate struct {
	Matricule      int    `json:"matricule"`
	Name           string `json:"name"`
	CompletedTasks int    `json:"completed_tasks"`
	TotalTasks     int    `json:"total_tasks"`
	CompletionRate int    `json:"completion_rate"`
}

// MonthStatsResponse is the computed efficiency view returned by GET/PUT.
type MonthStatsResponse struct {
	MonthKey      string         `json:"month_key"`
	KPIValue      int            `json:"kpi_value"`
	KPIWeighted   int            `json:"kpi_weighted"`
	MonthlyTarget int            `json:"monthly_target"`
	Employees     []EmployeeRate `json:"employees"`
}
