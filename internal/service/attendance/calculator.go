package attendance

import (
	"math"

	"github.com/opsboard/kpi-backend-go/internal/domain/attendance"
	"github.com/opsboard/kpi-backend-go/internal/pkg/duration"
)

// Calculator derives monthly attendance figures from raw daily records. All
// methods are pure; a calculator carries no state.
type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// MonthStats aggregates one scope's records (a whole team or one employee)
// into the monthly breakdown.
//
// A day counts as worked when its presence duration is positive and the
// motif is not absence-like. A day counts as late only when a positive
// retard was recorded with no motif at all: a leave day is never also a
// late day, even if a stale retard value slipped into the record.
func (c *Calculator) MonthStats(records []attendance.Record) attendance.MonthStats {
	stats := attendance.MonthStats{TotalRecords: len(records)}

	totalLateMinutes := 0
	for _, rec := range records {
		presence := duration.ParseMinutes(rec.Presence)
		if presence > 0 && !rec.Motif.IsAbsenceLike() {
			stats.WorkedDays++
		}

		if rec.Motif == attendance.MotifNone && rec.Retard != nil {
			if late := duration.ParseMinutes(*rec.Retard); late > 0 {
				stats.LateDays++
				totalLateMinutes += late
			}
		}

		switch {
		case rec.Motif == attendance.MotifConge:
			stats.CongeDays++
		case rec.Motif.IsMaladie():
			stats.MaladieDays++
		case rec.Motif != attendance.MotifNone:
			// Explicit absences plus anything else outside the leave and
			// sickness families (e.g. autorisation).
			stats.AbsenceDays++
		}
	}

	if stats.LateDays > 0 {
		stats.AvgLateMinutes = round(float64(totalLateMinutes) / float64(stats.LateDays))
	}

	stats.AttendanceRate = c.attendanceRate(stats.WorkedDays, stats.TotalRecords)
	stats.PunctualityRate = c.punctualityRate(stats.WorkedDays, stats.LateDays)

	return stats
}

// attendanceRate is worked/total as a rounded percentage. A month with no
// records scores the sentinel 100: absence of data is not penalized.
func (c *Calculator) attendanceRate(workedDays, totalRecords int) int {
	if totalRecords == 0 {
		return 100
	}
	return round(float64(workedDays) / float64(totalRecords) * 100)
}

// punctualityRate is (present-late)/present as a rounded percentage, with
// the same no-data sentinel.
func (c *Calculator) punctualityRate(presentDays, lateDays int) int {
	if presentDays == 0 {
		return 100
	}
	return round(float64(presentDays-lateDays) / float64(presentDays) * 100)
}

func round(x float64) int {
	return int(math.Round(x))
}
