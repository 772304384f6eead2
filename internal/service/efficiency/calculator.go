package efficiency

import (
	"math"

	"github.com/opsboard/kpi-backend-go/internal/domain/efficiency"
	"github.com/opsboard/kpi-backend-go/internal/pkg/validator"
)

// Calculator turns per-employee task lists into completion rates and the
// team score.
type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// EmployeeRate is one employee's completed/total percentage. No tasks means
// a rate of 0, not a skipped employee.
func (c *Calculator) EmployeeRate(emp efficiency.EmployeeTasks) efficiency.EmployeeRate {
	rate := efficiency.EmployeeRate{
		Matricule:  emp.Matricule,
		Name:       emp.Name,
		TotalTasks: len(emp.Tasks),
	}
	for _, task := range emp.Tasks {
		if task.Completed {
			rate.CompletedTasks++
		}
	}
	if rate.TotalTasks > 0 {
		rate.CompletionRate = round(float64(rate.CompletedTasks) / float64(rate.TotalTasks) * 100)
	}
	return rate
}

// TeamScore is the unweighted arithmetic mean of every named employee's
// completion rate. Zero-task employees contribute a 0 and pull the mean
// down; employees with a blank name are excluded entirely.
func (c *Calculator) TeamScore(employees []efficiency.EmployeeTasks) (int, []efficiency.EmployeeRate) {
	rates := make([]efficiency.EmployeeRate, 0, len(employees))

	sum, counted := 0, 0
	for _, emp := range employees {
		rate := c.EmployeeRate(emp)
		rates = append(rates, rate)
		if validator.IsEmpty(emp.Name) {
			continue
		}
		sum += rate.CompletionRate
		counted++
	}

	if counted == 0 {
		return 0, rates
	}
	return round(float64(sum) / float64(counted)), rates
}

// TeamScoreWeighted is the task-volume-weighted alternative: one big task
// list dominates instead of each employee counting equally. Kept alongside
// the unweighted score so both can be compared; the unweighted value is the
// one persisted as the KPI.
func (c *Calculator) TeamScoreWeighted(employees []efficiency.EmployeeTasks) int {
	completed, total := 0, 0
	for _, emp := range employees {
		if validator.IsEmpty(emp.Name) {
			continue
		}
		rate := c.EmployeeRate(emp)
		completed += rate.CompletedTasks
		total += rate.TotalTasks
	}

	if total == 0 {
		return 0
	}
	return round(float64(completed) / float64(total) * 100)
}

func round(x float64) int {
	return int(math.Round(x))
}
