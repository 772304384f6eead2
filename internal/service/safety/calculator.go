package safety

import (
	"github.com/opsboard/kpi-backend-go/internal/domain/safety"
)

// severityWeights are the per-incident penalties subtracted from 100.
var severityWeights = map[safety.Severity]int{
	safety.SeverityMinor:    5,
	safety.SeverityModerate: 10,
	safety.SeverityMajor:    20,
	safety.SeverityCritical: 40,
}

// Calculator scores a month's incident list.
type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// TeamScore applies the three-step rule: a clean month scores 100, breaching
// the monthly incident ceiling scores 0 outright, and anything in between
// loses the severity-weighted penalty of each incident.
func (c *Calculator) TeamScore(incidents []safety.Incident, monthlyTarget int) int {
	if len(incidents) == 0 {
		return 100
	}
	if len(incidents) > monthlyTarget {
		return 0
	}
	return c.penalizedScore(incidents)
}

// EmployeeScore scores one employee's incidents with the same penalty rule
// but without the ceiling: only the team-wide score enforces the monthly
// target.
func (c *Calculator) EmployeeScore(incidents []safety.Incident) int {
	if len(incidents) == 0 {
		return 100
	}
	return c.penalizedScore(incidents)
}

func (c *Calculator) penalizedScore(incidents []safety.Incident) int {
	penalty := 0
	for _, inc := range incidents {
		// Unknown severities weigh nothing; they are rejected upstream.
		penalty += severityWeights[inc.Severity]
	}

	score := 100 - penalty
	if score < 0 {
		return 0
	}
	return score
}

// CountBySeverity breaks the incident list down for the monthly view.
func (c *Calculator) CountBySeverity(incidents []safety.Incident) map[string]int {
	counts := make(map[string]int, len(severityWeights))
	for _, inc := range incidents {
		counts[string(inc.Severity)]++
	}
	return counts
}
