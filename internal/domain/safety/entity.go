package safety

import (
	"fmt"
	"strings"
	"time"

	"github.com/opsboard/kpi-backend-go/internal/pkg/validator"
)

// Severity is the incident severity tier driving the score penalty.
type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityModerate Severity = "moderate"
	SeverityMajor    Severity = "major"
	SeverityCritical Severity = "critical"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityMinor, SeverityModerate, SeverityMajor, SeverityCritical:
		return true
	}
	return false
}

func ParseSeverity(s string) (Severity, error) {
	sev := Severity(strings.ToLower(strings.TrimSpace(s)))
	if !sev.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSeverity, s)
	}
	return sev, nil
}

// IncidentType categorizes what happened.
type IncidentType string

const (
	TypeInjury        IncidentType = "injury"
	TypeNearMiss      IncidentType = "near_miss"
	TypeEquipment     IncidentType = "equipment"
	TypeEnvironmental IncidentType = "environmental"
	TypeOther         IncidentType = "other"
)

func (t IncidentType) Valid() bool {
	switch t {
	case TypeInjury, TypeNearMiss, TypeEquipment, TypeEnvironmental, TypeOther:
		return true
	}
	return false
}

// Incident is one safety event. Append-only within a month; no uniqueness
// constraint.
type Incident struct {
	EmployeeMatricule int          `json:"employee_matricule"`
	Type              IncidentType `json:"type"`
	Severity          Severity     `json:"severity"`
	Description       string       `json:"description"`
	Time              string       `json:"time"`
	Date              time.Time    `json:"date"`
}

// IncidentInput is the wire shape of one incident.
type IncidentInput struct {
	EmployeeMatricule int    `json:"employee_matricule"`
	Type              string `json:"type"`
	Severity          string `json:"severity"`
	Description       string `json:"description"`
	Time              string `json:"time"`
	Date              string `json:"date"`
}

// SaveMonthRequest replaces a team's incident snapshot for one month. A nil
// MonthlyTarget falls back to the configured default ceiling; an explicit 0
// means zero tolerance.
type SaveMonthRequest struct {
	MonthlyTarget *int            `json:"monthly_target"`
	Incidents     []IncidentInput `json:"incidents"`
}

func (r *SaveMonthRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.MonthlyTarget != nil && *r.MonthlyTarget < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_target",
			Message: "monthly_target must not be negative",
		})
	}

	for i, inc := range r.Incidents {
		field := fmt.Sprintf("incidents[%d]", i)

		if _, err := ParseSeverity(inc.Severity); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".severity",
				Message: err.Error(),
			})
		}
		if !IncidentType(inc.Type).Valid() {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".type",
				Message: fmt.Sprintf("unknown incident type %q", inc.Type),
			})
		}
		if _, ok := validator.IsValidDate(inc.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".date",
				Message: "date must be YYYY-MM-DD",
			})
		}
		if !validator.IsEmpty(inc.Time) && !validator.IsValidClockTime(inc.Time) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".time",
				Message: "must be a HH:MM clock time",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToDomain converts a validated IncidentInput into an Incident.
func (i *IncidentInput) ToDomain() (Incident, error) {
	sev, err := ParseSeverity(i.Severity)
	if err != nil {
		return Incident{}, err
	}
	date, ok := validator.IsValidDate(i.Date)
	if !ok {
		return Incident{}, fmt.Errorf("invalid date %q", i.Date)
	}
	return Incident{
		EmployeeMatricule: i.EmployeeMatricule,
		Type:              IncidentType(i.Type),
		Severity:          sev,
		Description:       i.Description,
		Time:              i.Time,
		Date:              date.UTC(),
	}, nil
}

// EmployeeScore is one employee's safety score for a month.
type EmployeeScore struct {
	Matricule int `json:"matricule"`
	Incidents int `json:"incidents"`
	Score     int `json:"score"`
}

// MonthStatsResponse is the computed safety view returned by GET/PUT.
type MonthStatsResponse struct {
	MonthKey      string          `json:"month_key"`
	KPIValue      int             `json:"kpi_value"`
	MonthlyTarget int             `json:"monthly_target"`
	IncidentCount int             `json:"incident_count"`
	BySeverity    map[string]int  `json:"by_severity"`
	Employees     []EmployeeScore `json:"employees"`
}
