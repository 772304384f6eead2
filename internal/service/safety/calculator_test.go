package safety

import (
	"testing"

	"github.com/opsboard/kpi-backend-go/internal/domain/safety"
	"github.com/stretchr/testify/assert"
)

func incidents(severities ...safety.Severity) []safety.Incident {
	list := make([]safety.Incident, 0, len(severities))
	for i, sev := range severities {
		list = append(list, safety.Incident{
			EmployeeMatricule: 100 + i,
			Severity:          sev,
			Type:              safety.TypeNearMiss,
		})
	}
	return list
}

func TestTeamScore_NoIncidents(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	assert.Equal(t, 100, calc.TeamScore(nil, 5))
	assert.Equal(t, 100, calc.TeamScore([]safety.Incident{}, 0))
}

func TestTeamScore_SeverityPenalties(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	// critical(40) + minor(5) = 45 penalty.
	score := calc.TeamScore(incidents(safety.SeverityCritical, safety.SeverityMinor), 5)
	assert.Equal(t, 55, score)
}

func TestTeamScore_CeilingBreach(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	// Six incidents over a target of five: zero, even if all are minor.
	list := incidents(
		safety.SeverityMinor, safety.SeverityMinor, safety.SeverityMinor,
		safety.SeverityMinor, safety.SeverityMinor, safety.SeverityMinor,
	)
	assert.Equal(t, 0, calc.TeamScore(list, 5))

	// At exactly the target the penalty rule still applies.
	assert.Equal(t, 75, calc.TeamScore(list[:5], 5))
}

func TestTeamScore_FloorsAtZero(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	// 3 criticals = 120 penalty within a target of 5.
	list := incidents(safety.SeverityCritical, safety.SeverityCritical, safety.SeverityCritical)
	assert.Equal(t, 0, calc.TeamScore(list, 5))
}

func TestTeamScore_Monotonicity(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	// Adding an incident below the ceiling never raises the score.
	prev := calc.TeamScore(nil, 10)
	list := []safety.Incident{}
	for _, sev := range []safety.Severity{
		safety.SeverityMinor, safety.SeverityModerate, safety.SeverityMajor,
		safety.SeverityCritical, safety.SeverityMinor,
	} {
		list = append(list, safety.Incident{Severity: sev})
		score := calc.TeamScore(list, 10)
		assert.LessOrEqual(t, score, prev)
		prev = score
	}
}

func TestEmployeeScore_NoCeiling(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	// Seven minors would breach any small team target, but the individual
	// score only applies the penalty rule: 100 - 7*5 = 65.
	list := incidents(
		safety.SeverityMinor, safety.SeverityMinor, safety.SeverityMinor,
		safety.SeverityMinor, safety.SeverityMinor, safety.SeverityMinor,
		safety.SeverityMinor,
	)
	assert.Equal(t, 65, calc.EmployeeScore(list))
	assert.Equal(t, 100, calc.EmployeeScore(nil))
}

func TestCountBySeverity(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	counts := calc.CountBySeverity(incidents(
		safety.SeverityMinor, safety.SeverityMinor, safety.SeverityCritical,
	))

	assert.Equal(t, 2, counts["minor"])
	assert.Equal(t, 1, counts["critical"])
	assert.Equal(t, 0, counts["major"])
}
