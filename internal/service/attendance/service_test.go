package attendance

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/opsboard/kpi-backend-go/internal/domain/attendance"
	"github.com/opsboard/kpi-backend-go/internal/domain/kpi"
	"github.com/opsboard/kpi-backend-go/internal/domain/production"
	"github.com/opsboard/kpi-backend-go/internal/domain/team"
	"github.com/opsboard/kpi-backend-go/internal/pkg/validator"
	productionCalc "github.com/opsboard/kpi-backend-go/internal/service/production"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryAggregates is an in-memory AggregateRepository for service tests.
type memoryAggregates struct {
	rows []kpi.MonthlyAggregate
}

func (m *memoryAggregates) GetByMonth(_ context.Context, teamID string, category kpi.Category, monthKey time.Time) (*kpi.MonthlyAggregate, error) {
	key := kpi.MonthKeyFor(monthKey)
	for i := range m.rows {
		row := m.rows[i]
		if row.TeamID == teamID && row.Category == category && row.MonthKey.Equal(key) {
			return &row, nil
		}
	}
	return nil, nil
}

func (m *memoryAggregates) Upsert(_ context.Context, agg kpi.MonthlyAggregate) (kpi.MonthlyAggregate, error) {
	agg.UpdatedAt = time.Now().UTC()
	for i := range m.rows {
		if m.rows[i].TeamID == agg.TeamID && m.rows[i].Category == agg.Category && m.rows[i].MonthKey.Equal(agg.MonthKey) {
			agg.ID = m.rows[i].ID
			m.rows[i] = agg
			return agg, nil
		}
	}
	m.rows = append(m.rows, agg)
	return agg, nil
}

func (m *memoryAggregates) GetLatest(_ context.Context, teamID string, category kpi.Category) (*kpi.MonthlyAggregate, error) {
	var latest *kpi.MonthlyAggregate
	for i := range m.rows {
		row := m.rows[i]
		if row.TeamID != teamID || row.Category != category {
			continue
		}
		if latest == nil || row.MonthKey.After(latest.MonthKey) {
			latest = &row
		}
	}
	return latest, nil
}

func (m *memoryAggregates) ListRecent(_ context.Context, teamID string, category kpi.Category, limit int) ([]kpi.MonthlyAggregate, error) {
	var out []kpi.MonthlyAggregate
	for _, row := range m.rows {
		if row.TeamID == teamID && row.Category == category {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MonthKey.After(out[j].MonthKey) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type memoryTeams struct {
	teams map[string]team.Team
}

func (m *memoryTeams) Create(_ context.Context, t team.Team) (team.Team, error) {
	m.teams[t.ID] = t
	return t, nil
}

func (m *memoryTeams) GetByID(_ context.Context, id string) (team.Team, error) {
	t, ok := m.teams[id]
	if !ok {
		return team.Team{}, team.ErrTeamNotFound
	}
	return t, nil
}

func (m *memoryTeams) List(_ context.Context) ([]team.Team, error) {
	var out []team.Team
	for _, t := range m.teams {
		out = append(out, t)
	}
	return out, nil
}

func newFixture() (*memoryAggregates, Service) {
	aggregates := &memoryAggregates{}
	teams := &memoryTeams{teams: map[string]team.Team{
		"fusion": {ID: "fusion", Name: "Atelier Fusion"},
	}}
	return aggregates, NewAttendanceService(aggregates, teams, productionCalc.NewCalculator(1000))
}

func str(s string) *string { return &s }

func workedDay(date string) attendance.RecordInput {
	return attendance.RecordInput{
		Date:        date,
		Schedule:    "daytime",
		ActualEntry: str("08:00"),
		ActualExit:  str("16:00"),
		Presence:    "08:00",
	}
}

func TestSaveMonth_ComputesAndStoresSnapshot(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	aggregates, svc := newFixture()

	req := attendance.SaveMonthRequest{
		MonthlyTarget: 90,
		Employees: []attendance.EmployeeMonthInput{
			{
				Matricule: 101,
				Name:      "Amine",
				Records: []attendance.RecordInput{
					workedDay("2026-05-04"),
					workedDay("2026-05-05"),
					{
						Date:     "2026-05-06",
						Schedule: "daytime",
						Motif:    "conge",
						Presence: "00:00",
					},
				},
				Productions: []production.TaskInput{
					{Date: "2026-05-04", QuantityKg: 800, Description: "coulée"},
					{Date: "2026-05-05", QuantityKg: 1200},
				},
			},
		},
	}

	resp, err := svc.SaveMonth(ctx, "fusion", time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC), req)
	require.NoError(t, err)

	assert.Equal(t, "2026-05-01", resp.MonthKey)
	assert.Equal(t, 3, resp.Team.TotalRecords)
	assert.Equal(t, 2, resp.Team.WorkedDays)
	assert.Equal(t, 1, resp.Team.CongeDays)
	// round(2/3*100) = 67
	assert.Equal(t, 67, resp.Team.AttendanceRate)
	assert.Equal(t, resp.Team.AttendanceRate, resp.KPIValue)
	assert.Equal(t, 90, resp.MonthlyTarget)
	require.NotNil(t, resp.SnapshotSavedAt)

	// Production roll-up rides along with the attendance snapshot.
	assert.Equal(t, float64(2000), resp.Production.TotalKg)
	assert.Equal(t, 2, resp.Production.Entries)
	assert.Equal(t, 1000, resp.Production.AvgKgPerEntry)
	assert.Equal(t, 100, resp.Production.EfficiencyProxy)

	stored, err := aggregates.GetByMonth(ctx, "fusion", kpi.CategoryAttendance, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 67, stored.KPIValue)
	require.Len(t, stored.Employees, 1)
	assert.Len(t, stored.Employees[0].Records, 3)
}

func TestSaveMonth_ReplacesPreviousSnapshot(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	aggregates, svc := newFixture()
	monthKey := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	first := attendance.SaveMonthRequest{
		MonthlyTarget: 90,
		Employees: []attendance.EmployeeMonthInput{
			{Matricule: 101, Name: "Amine", Records: []attendance.RecordInput{workedDay("2026-05-04")}},
			{Matricule: 102, Name: "Bilal", Records: []attendance.RecordInput{workedDay("2026-05-04")}},
		},
	}
	_, err := svc.SaveMonth(ctx, "fusion", monthKey, first)
	require.NoError(t, err)

	second := attendance.SaveMonthRequest{
		MonthlyTarget: 85,
		Employees: []attendance.EmployeeMonthInput{
			{Matricule: 101, Name: "Amine", Records: []attendance.RecordInput{workedDay("2026-05-04")}},
		},
	}
	resp, err := svc.SaveMonth(ctx, "fusion", monthKey, second)
	require.NoError(t, err)
	assert.Len(t, resp.Employees, 1)

	stored, err := aggregates.GetByMonth(ctx, "fusion", kpi.CategoryAttendance, monthKey)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Len(t, stored.Employees, 1)
	assert.Equal(t, 85, stored.MonthlyTarget)
}

func TestSaveMonth_UnknownTeam(t *testing.T) {
	t.Parallel()
	_, svc := newFixture()

	_, err := svc.SaveMonth(context.Background(), "ghost", time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), attendance.SaveMonthRequest{MonthlyTarget: 90})
	assert.ErrorIs(t, err, team.ErrTeamNotFound)
}

func TestSaveMonth_RejectsInvalidPayload(t *testing.T) {
	t.Parallel()
	_, svc := newFixture()

	req := attendance.SaveMonthRequest{
		MonthlyTarget: 120,
		Employees: []attendance.EmployeeMonthInput{
			{Matricule: 101, Name: "Amine", Records: []attendance.RecordInput{workedDay("2026-05-04")}},
		},
	}
	_, err := svc.SaveMonth(context.Background(), "fusion", time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), req)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestGetMonth_AbsentMonth(t *testing.T) {
	t.Parallel()
	_, svc := newFixture()

	_, err := svc.GetMonth(context.Background(), "fusion", time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, attendance.ErrMonthNotFound)
}

func TestGetMonth_RecomputesFromStoredRecords(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	aggregates, svc := newFixture()
	monthKey := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	_, err := aggregates.Upsert(ctx, kpi.MonthlyAggregate{
		TeamID:        "fusion",
		Category:      kpi.CategoryAttendance,
		MonthKey:      monthKey,
		KPIValue:      0, // stale on purpose, GetMonth must not trust it
		MonthlyTarget: 90,
		Employees: []kpi.EmployeeSnapshot{
			{
				Matricule: 101,
				Name:      "Amine",
				Records: []attendance.Record{
					{Date: time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC), Schedule: attendance.ScheduleDaytime, ActualEntry: str("08:00"), ActualExit: str("16:00"), Presence: "08:00"},
					{Date: time.Date(2026, 5, 5, 0, 0, 0, 0, time.UTC), Schedule: attendance.ScheduleDaytime, ActualEntry: str("08:20"), ActualExit: str("16:00"), Retard: str("00:20"), Presence: "07:40"},
				},
			},
		},
	})
	require.NoError(t, err)

	resp, err := svc.GetMonth(ctx, "fusion", monthKey)
	require.NoError(t, err)

	assert.Equal(t, 100, resp.KPIValue)
	assert.Equal(t, 2, resp.Team.WorkedDays)
	assert.Equal(t, 1, resp.Team.LateDays)
	// round(1/2*100) = 50
	assert.Equal(t, 50, resp.Team.PunctualityRate)
}
