package efficiency

import (
	"testing"

	"github.com/opsboard/kpi-backend-go/internal/domain/efficiency"
	"github.com/stretchr/testify/assert"
)

func tasksOf(completed, total int) []efficiency.Task {
	tasks := make([]efficiency.Task, 0, total)
	for i := 0; i < total; i++ {
		tasks = append(tasks, efficiency.Task{Completed: i < completed})
	}
	return tasks
}

func TestEmployeeRate(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	rate := calc.EmployeeRate(efficiency.EmployeeTasks{
		Matricule: 101,
		Name:      "Amara",
		Tasks:     tasksOf(8, 10),
	})

	assert.Equal(t, 8, rate.CompletedTasks)
	assert.Equal(t, 10, rate.TotalTasks)
	assert.Equal(t, 80, rate.CompletionRate)
}

func TestEmployeeRate_NoTasks(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	rate := calc.EmployeeRate(efficiency.EmployeeTasks{Matricule: 102, Name: "Bilal"})

	assert.Equal(t, 0, rate.CompletionRate)
}

func TestTeamScore_TwoEmployees(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	// A completes 8/10 (80%), B completes 6/8 (75%): the team score is the
	// plain mean 78, not the volume-weighted 78%... of 14/18.
	score, rates := calc.TeamScore([]efficiency.EmployeeTasks{
		{Matricule: 101, Name: "A", Tasks: tasksOf(8, 10)},
		{Matricule: 102, Name: "B", Tasks: tasksOf(6, 8)},
	})

	assert.Equal(t, 78, score) // round((80+75)/2)
	assert.Len(t, rates, 2)
}

func TestTeamScore_ZeroTaskEmployeePullsMeanDown(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	score, _ := calc.TeamScore([]efficiency.EmployeeTasks{
		{Matricule: 101, Name: "A", Tasks: tasksOf(10, 10)},
		{Matricule: 102, Name: "B"},
	})

	assert.Equal(t, 50, score)
}

func TestTeamScore_BlankNameExcluded(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	score, rates := calc.TeamScore([]efficiency.EmployeeTasks{
		{Matricule: 101, Name: "A", Tasks: tasksOf(10, 10)},
		{Matricule: 102, Name: "   ", Tasks: tasksOf(0, 5)},
	})

	assert.Equal(t, 100, score)
	// The blank-name row still appears in the detail list.
	assert.Len(t, rates, 2)
}

func TestTeamScore_Empty(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	score, rates := calc.TeamScore(nil)

	assert.Equal(t, 0, score)
	assert.Empty(t, rates)
}

func TestTeamScoreWeighted(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	employees := []efficiency.EmployeeTasks{
		{Matricule: 101, Name: "A", Tasks: tasksOf(8, 10)},
		{Matricule: 102, Name: "B", Tasks: tasksOf(6, 8)},
	}

	// 14 of 18 tasks completed.
	assert.Equal(t, 78, calc.TeamScoreWeighted(employees))

	// The two scores diverge once volumes are skewed.
	skewed := []efficiency.EmployeeTasks{
		{Matricule: 101, Name: "A", Tasks: tasksOf(100, 100)},
		{Matricule: 102, Name: "B", Tasks: tasksOf(0, 1)},
	}
	unweighted, _ := calc.TeamScore(skewed)
	assert.Equal(t, 50, unweighted)
	assert.Equal(t, 99, calc.TeamScoreWeighted(skewed))
}
