package attendance

import (
	"fmt"
	"strings"
	"time"

	"github.com/opsboard/kpi-backend-go/internal/domain/production"
	"github.com/opsboard/kpi-backend-go/internal/pkg/validator"
)

// ParseSchedule maps the UI's shift labels onto the Schedule enum.
func ParseSchedule(s string) (Schedule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daytime", "jour":
		return ScheduleDaytime, nil
	case "sam":
		return ScheduleSAM, nil
	case "night", "nuit":
		return ScheduleNight, nil
	}
	return "", fmt.Errorf("unknown schedule %q", s)
}

// ParseMotif maps the UI's motif labels (French, accented) onto the Motif
// enum. Empty input is MotifNone.
func ParseMotif(s string) (Motif, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return MotifNone, nil
	case "conge", "congé":
		return MotifConge, nil
	case "maladie":
		return MotifMaladie, nil
	case "maladie p", "maladie_p":
		return MotifMaladieP, nil
	case "autorisation":
		return MotifAutorisation, nil
	case "absence":
		return MotifAbsence, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMotif, s)
}

// RecordInput is the wire shape of one daily attendance row.
type RecordInput struct {
	Date        string  `json:"date"`
	Schedule    string  `json:"schedule"`
	ActualEntry *string `json:"actual_entry"`
	ActualExit  *string `json:"actual_exit"`
	Motif       string  `json:"motif"`
	Retard      *string `json:"retard"`
	Presence    string  `json:"presence"`
}

// EmployeeMonthInput carries one employee's records and production entries
// for the month being saved.
type EmployeeMonthInput struct {
	Matricule   int                    `json:"matricule"`
	Name        string                 `json:"name"`
	Records     []RecordInput          `json:"records"`
	Productions []production.TaskInput `json:"productions"`
}

// SaveMonthRequest replaces a team's attendance snapshot for one month.
type SaveMonthRequest struct {
	MonthlyTarget int                  `json:"monthly_target"`
	Employees     []EmployeeMonthInput `json:"employees"`
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
		prefix := fmt.Sprintf("employees[%d]", i)
		if emp.Matricule <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + ".matricule",
				Message: "matricule must be a positive integer",
			})
		}

		seenDates := make(map[string]struct{}, len(emp.Records))
		for j, rec := range emp.Records {
			field := fmt.Sprintf("%s.records[%d]", prefix, j)
			errs = append(errs, rec.validate(field, seenDates)...)
		}

		for j, task := range emp.Productions {
			field := fmt.Sprintf("%s.productions[%d]", prefix, j)
			errs = append(errs, task.ValidateField(field)...)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *RecordInput) validate(field string, seenDates map[string]struct{}) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   field + ".date",
			Message: "date must be YYYY-MM-DD",
		})
	} else if _, dup := seenDates[r.Date]; dup {
		errs = append(errs, validator.ValidationError{
			Field:   field + ".date",
			Message: "duplicate record for this date",
		})
	} else {
		seenDates[r.Date] = struct{}{}
	}

	if _, err := ParseSchedule(r.Schedule); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   field + ".schedule",
			Message: err.Error(),
		})
	}

	motif, err := ParseMotif(r.Motif)
	if err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   field + ".motif",
			Message: err.Error(),
		})
		return errs
	}

	if motif != MotifNone {
		// Exception days carry no clock data.
		if r.ActualEntry != nil || r.ActualExit != nil || r.Retard != nil {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".motif",
				Message: "a record with a motif must not carry entry, exit or retard times",
			})
		}
	} else {
		for name, v := range map[string]*string{
			".actual_entry": r.ActualEntry,
			".actual_exit":  r.ActualExit,
		} {
			if v != nil && !validator.IsValidClockTime(*v) {
				errs = append(errs, validator.ValidationError{
					Field:   field + name,
					Message: "must be a HH:MM clock time",
				})
			}
		}
	}

	return errs
}

// ToDomain converts a validated RecordInput into a Record. Presence on
// motif days is forced to the placeholder regardless of input.
func (r *RecordInput) ToDomain() (Record, error) {
	date, ok := validator.IsValidDate(r.Date)
	if !ok {
		return Record{}, fmt.Errorf("invalid date %q", r.Date)
	}
	schedule, err := ParseSchedule(r.Schedule)
	if err != nil {
		return Record{}, err
	}
	motif, err := ParseMotif(r.Motif)
	if err != nil {
		return Record{}, err
	}

	rec := Record{
		Date:     date.UTC(),
		Schedule: schedule,
		Motif:    motif,
		Presence: r.Presence,
	}
	if motif != MotifNone {
		rec.Presence = PresencePlaceholder
		return rec, nil
	}

	rec.ActualEntry = r.ActualEntry
	rec.ActualExit = r.ActualExit
	rec.Retard = r.Retard
	return rec, nil
}

// MonthStatsResponse is the computed attendance view returned by GET/PUT.
type MonthStatsResponse struct {
	MonthKey        string               `json:"month_key"`
	KPIValue        int                  `json:"kpi_value"`
	MonthlyTarget   int                  `json:"monthly_target"`
	Team            MonthStats           `json:"team"`
	Production      ProductionStats      `json:"production"`
	Employees       []EmployeeMonthStats `json:"employees"`
	SnapshotSavedAt *time.Time           `json:"snapshot_saved_at,omitempty"`
}

// MonthStats is the aggregate attendance breakdown for one scope (team or
// single employee).
type MonthStats struct {
	TotalRecords    int `json:"total_records"`
	WorkedDays      int `json:"worked_days"`
	LateDays        int `json:"late_days"`
	AvgLateMinutes  int `json:"avg_late_minutes"`
	CongeDays       int `json:"conge_days"`
	MaladieDays     int `json:"maladie_days"`
	AbsenceDays     int `json:"absence_days"`
	AttendanceRate  int `json:"attendance_rate"`
	PunctualityRate int `json:"punctuality_rate"`
}

// EmployeeMonthStats scopes MonthStats to one matricule.
type EmployeeMonthStats struct {
	Matricule int        `json:"matricule"`
	Name      string     `json:"name"`
	Stats     MonthStats `json:"stats"`
}

// ProductionStats is the production roll-up attached to the attendance view.
type ProductionStats struct {
	TotalKg         float64                   `json:"total_kg"`
	Entries         int                       `json:"entries"`
	AvgKgPerEntry   int                       `json:"avg_kg_per_entry"`
	EfficiencyProxy int                       `json:"efficiency_proxy"`
	Employees       []production.EmployeeStat `json:"employees"`
}
