package kpi

import (
	"fmt"
	"strings"
	"time"

	"github.com/opsboard/kpi-backend-go/internal/domain/attendance"
	"github.com/opsboard/kpi-backend-go/internal/domain/efficiency"
	"github.com/opsboard/kpi-backend-go/internal/domain/formulation"
	"github.com/opsboard/kpi-backend-go/internal/domain/production"
	"github.com/opsboard/kpi-backend-go/internal/domain/safety"
)

// Category identifies one KPI family. Each (team, category, month) triple
// maps to at most one persisted aggregate.
type Category string

const (
	CategoryAttendance  Category = "attendance"
	CategoryEfficiency  Category = "efficiency"
	CategorySafety      Category = "safety"
	CategoryFormulation Category = "formulation"
)

// Categories lists all KPI families in display order.
var Categories = []Category{
	CategoryAttendance,
	CategoryEfficiency,
	CategorySafety,
	CategoryFormulation,
}

func (c Category) Valid() bool {
	switch c {
	case CategoryAttendance, CategoryEfficiency, CategorySafety, CategoryFormulation:
		return true
	}
	return false
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}

// EmployeeSnapshot is one employee's slice of a month's raw records. Which
// slices are populated depends on the category: attendance snapshots carry
// Records and Productions, efficiency snapshots carry Tasks.
type EmployeeSnapshot struct {
	Matricule   int                 `json:"matricule"`
	Name        string              `json:"name"`
	Records     []attendance.Record `json:"records,omitempty"`
	Productions []production.Task   `json:"productions,omitempty"`
	Tasks       []efficiency.Task   `json:"tasks,omitempty"`
}

// MonthlyAggregate is the persisted unit: one complete snapshot of a team's
// raw records for one month and one category, plus the composite score
// computed from them. Saves replace the row wholesale; the engine never
// merges server-side, so callers must read-modify-write the full snapshot.
type MonthlyAggregate struct {
	ID            string
	TeamID        string
	Category      Category
	MonthKey      time.Time
	KPIValue      int
	MonthlyTarget int
	Employees     []EmployeeSnapshot
	Incidents     []safety.Incident
	Formulas      []formulation.Formula
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
