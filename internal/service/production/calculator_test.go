package production

import (
	"testing"
	"time"

	"github.com/opsboard/kpi-backend-go/internal/domain/production"
	"github.com/stretchr/testify/assert"
)

func entry(day int, kg float64) production.Task {
	return production.Task{
		Date:       time.Date(2026, 5, day, 0, 0, 0, 0, time.UTC),
		QuantityKg: kg,
	}
}

func TestTotals(t *testing.T) {
	t.Parallel()
	calc := NewCalculator(DefaultScaleKg)

	totalKg, entries, avg := calc.Totals([]production.Task{
		entry(1, 800),
		entry(1, 450), // same date: both count, no dedup
		entry(2, 1250),
	})

	assert.Equal(t, 2500.0, totalKg)
	assert.Equal(t, 3, entries)
	assert.Equal(t, 833, avg)
}

func TestTotals_Empty(t *testing.T) {
	t.Parallel()
	calc := NewCalculator(DefaultScaleKg)

	totalKg, entries, avg := calc.Totals(nil)

	assert.Equal(t, 0.0, totalKg)
	assert.Equal(t, 0, entries)
	assert.Equal(t, 0, avg)
}

func TestEfficiencyProxy(t *testing.T) {
	t.Parallel()
	calc := NewCalculator(DefaultScaleKg)

	assert.Equal(t, 0, calc.EfficiencyProxy(0))
	assert.Equal(t, 50, calc.EfficiencyProxy(500))
	assert.Equal(t, 83, calc.EfficiencyProxy(833))
	assert.Equal(t, 100, calc.EfficiencyProxy(1000))
	// Saturates instead of exceeding 100.
	assert.Equal(t, 100, calc.EfficiencyProxy(1800))
}

func TestEfficiencyProxy_CustomScale(t *testing.T) {
	t.Parallel()
	calc := NewCalculator(500)

	assert.Equal(t, 100, calc.EfficiencyProxy(500))
	assert.Equal(t, 60, calc.EfficiencyProxy(300))
}

func TestNewCalculator_BadScaleFallsBack(t *testing.T) {
	t.Parallel()
	calc := NewCalculator(0)

	assert.Equal(t, 50, calc.EfficiencyProxy(500))
}
