package production

import (
	"math"

	"github.com/opsboard/kpi-backend-go/internal/domain/production"
)

// DefaultScaleKg is the daily output treated as 100% productivity when no
// override is configured.
const DefaultScaleKg = 1000.0

// Calculator rolls production entries up to monthly totals and the
// productivity proxy used by the attendance save.
type Calculator struct {
	scaleKg float64
}

// NewCalculator builds a calculator with the given kg-per-day scale. A
// non-positive scale falls back to DefaultScaleKg.
func NewCalculator(scaleKg float64) *Calculator {
	if scaleKg <= 0 {
		scaleKg = DefaultScaleKg
	}
	return &Calculator{scaleKg: scaleKg}
}

// Totals sums a set of entries. Entries are counted as logged, one entry
// per production run, not deduplicated by date.
func (c *Calculator) Totals(tasks []production.Task) (totalKg float64, entries int, avgKgPerEntry int) {
	for _, task := range tasks {
		totalKg += task.QuantityKg
	}
	entries = len(tasks)
	if entries > 0 {
		avgKgPerEntry = round(totalKg / float64(entries))
	}
	return totalKg, entries, avgKgPerEntry
}

// EfficiencyProxy maps the average entry output onto 0-100, saturating at
// the configured scale.
func (c *Calculator) EfficiencyProxy(avgKgPerEntry int) int {
	proxy := round(float64(avgKgPerEntry) / c.scaleKg * 100)
	if proxy > 100 {
		return 100
	}
	return proxy
}

// EmployeeStat rolls one employee's entries up.
func (c *Calculator) EmployeeStat(matricule int, name string, tasks []production.Task) production.EmployeeStat {
	totalKg, entries, avg := c.Totals(tasks)
	return production.EmployeeStat{
		Matricule:     matricule,
		Name:          name,
		TotalKg:       totalKg,
		Entries:       entries,
		AvgKgPerEntry: avg,
	}
}

func round(x float64) int {
	return int(math.Round(x))
}
