package attendance

import (
	"testing"
	"time"

	"github.com/opsboard/kpi-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

func day(n int) time.Time {
	return time.Date(2026, 5, n, 0, 0, 0, 0, time.UTC)
}

func workedRecord(n int, presence string) attendance.Record {
	entry, exit := "08:00", "16:00"
	return attendance.Record{
		Date:        day(n),
		Schedule:    attendance.ScheduleDaytime,
		ActualEntry: &entry,
		ActualExit:  &exit,
		Presence:    presence,
	}
}

func lateRecord(n int, retard string) attendance.Record {
	rec := workedRecord(n, "07:30")
	rec.Retard = &retard
	return rec
}

func motifRecord(n int, motif attendance.Motif) attendance.Record {
	return attendance.Record{
		Date:     day(n),
		Schedule: attendance.ScheduleDaytime,
		Motif:    motif,
		Presence: attendance.PresencePlaceholder,
	}
}

func TestMonthStats_FullMonth(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	// 20 records: 18 worked, 2 of them late, 2 leave days.
	var records []attendance.Record
	for i := 1; i <= 16; i++ {
		records = append(records, workedRecord(i, "08:00"))
	}
	records = append(records, lateRecord(17, "00:15"))
	records = append(records, lateRecord(18, "00:45"))
	records = append(records, motifRecord(19, attendance.MotifConge))
	records = append(records, motifRecord(20, attendance.MotifMaladie))

	stats := calc.MonthStats(records)

	assert.Equal(t, 20, stats.TotalRecords)
	assert.Equal(t, 18, stats.WorkedDays)
	assert.Equal(t, 2, stats.LateDays)
	assert.Equal(t, 30, stats.AvgLateMinutes)
	assert.Equal(t, 1, stats.CongeDays)
	assert.Equal(t, 1, stats.MaladieDays)
	assert.Equal(t, 90, stats.AttendanceRate)  // round(18/20*100)
	assert.Equal(t, 89, stats.PunctualityRate) // round(16/18*100)
}

func TestMonthStats_NoRecordsSentinel(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	stats := calc.MonthStats(nil)

	assert.Equal(t, 100, stats.AttendanceRate)
	assert.Equal(t, 100, stats.PunctualityRate)
	assert.Equal(t, 0, stats.WorkedDays)
	assert.Equal(t, 0, stats.AvgLateMinutes)
}

func TestMonthStats_MotifNeverLate(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	// A leave day carrying a stale retard value must not count as late.
	retard := "00:20"
	rec := motifRecord(3, attendance.MotifConge)
	rec.Retard = &retard

	stats := calc.MonthStats([]attendance.Record{rec, workedRecord(4, "08:00")})

	assert.Equal(t, 0, stats.LateDays)
	assert.Equal(t, 100, stats.PunctualityRate)
	assert.Equal(t, 1, stats.CongeDays)
}

func TestMonthStats_LeaveCategoryCounts(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	stats := calc.MonthStats([]attendance.Record{
		motifRecord(1, attendance.MotifConge),
		motifRecord(2, attendance.MotifMaladie),
		motifRecord(3, attendance.MotifMaladieP),
		motifRecord(4, attendance.MotifAbsence),
		motifRecord(5, attendance.MotifAutorisation),
	})

	assert.Equal(t, 1, stats.CongeDays)
	// "Maladie P" folds into the sickness count.
	assert.Equal(t, 2, stats.MaladieDays)
	// Autorisation lands in the absence catch-all.
	assert.Equal(t, 2, stats.AbsenceDays)
	assert.Equal(t, 0, stats.WorkedDays)
	assert.Equal(t, 0, stats.AttendanceRate)
}

func TestMonthStats_AbsenceLikeNotWorked(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	// Even with a positive presence duration, an absence-like motif keeps
	// the day out of the worked count.
	rec := motifRecord(6, attendance.MotifMaladie)
	rec.Presence = "04:00"

	stats := calc.MonthStats([]attendance.Record{rec})

	assert.Equal(t, 0, stats.WorkedDays)
	assert.Equal(t, 0, stats.AttendanceRate)
}

func TestMonthStats_UnparseableDurationsCountZero(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	bad := workedRecord(7, "corrupt")
	stats := calc.MonthStats([]attendance.Record{bad, workedRecord(8, "08:00")})

	// The corrupt presence parses to 0, so the day is simply not worked.
	assert.Equal(t, 1, stats.WorkedDays)
	assert.Equal(t, 50, stats.AttendanceRate)
}
