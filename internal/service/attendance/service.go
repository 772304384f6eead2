package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/opsboard/kpi-backend-go/internal/domain/attendance"
	"github.com/opsboard/kpi-backend-go/internal/domain/kpi"
	"github.com/opsboard/kpi-backend-go/internal/domain/production"
	"github.com/opsboard/kpi-backend-go/internal/domain/team"
	productionCalc "github.com/opsboard/kpi-backend-go/internal/service/production"
)

type Service interface {
	// SaveMonth replaces the team's attendance snapshot for the month and
	// returns the recomputed stats.
	SaveMonth(ctx context.Context, teamID string, monthKey time.Time, req attendance.SaveMonthRequest) (attendance.MonthStatsResponse, error)

	// GetMonth recomputes stats from the stored snapshot.
	GetMonth(ctx context.Context, teamID string, monthKey time.Time) (attendance.MonthStatsResponse, error)
}

type ServiceImpl struct {
	aggregates kpi.AggregateRepository
	teams      team.TeamRepository
	calculator *Calculator
	production *productionCalc.Calculator
}

func NewAttendanceService(aggregates kpi.AggregateRepository, teams team.TeamRepository, production *productionCalc.Calculator) Service {
	return &ServiceImpl{
		aggregates: aggregates,
		teams:      teams,
		calculator: NewCalculator(),
		production: production,
	}
}

func (s *ServiceImpl) SaveMonth(ctx context.Context, teamID string, monthKey time.Time, req attendance.SaveMonthRequest) (attendance.MonthStatsResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MonthStatsResponse{}, err
	}
	if _, err := s.teams.GetByID(ctx, teamID); err != nil {
		return attendance.MonthStatsResponse{}, err
	}

	snapshot := make([]kpi.EmployeeSnapshot, 0, len(req.Employees))
	for _, emp := range req.Employees {
		entry := kpi.EmployeeSnapshot{
			Matricule: emp.Matricule,
			Name:      emp.Name,
		}
		for _, rec := range emp.Records {
			record, err := rec.ToDomain()
			if err != nil {
				return attendance.MonthStatsResponse{}, fmt.Errorf("employee %d: %w", emp.Matricule, err)
			}
			entry.Records = append(entry.Records, record)
		}
		for _, task := range emp.Productions {
			domainTask, err := task.ToDomain()
			if err != nil {
				return attendance.MonthStatsResponse{}, fmt.Errorf("employee %d: %w", emp.Matricule, err)
			}
			entry.Productions = append(entry.Productions, domainTask)
		}
		snapshot = append(snapshot, entry)
	}

	resp := s.compute(monthKey, req.MonthlyTarget, snapshot)

	agg := kpi.MonthlyAggregate{
		TeamID:        teamID,
		Category:      kpi.CategoryAttendance,
		MonthKey:      kpi.MonthKeyFor(monthKey),
		KPIValue:      resp.KPIValue,
		MonthlyTarget: req.MonthlyTarget,
		Employees:     snapshot,
	}
	saved, err := s.aggregates.Upsert(ctx, agg)
	if err != nil {
		return attendance.MonthStatsResponse{}, fmt.Errorf("failed to save attendance snapshot: %w", err)
	}
	resp.SnapshotSavedAt = &saved.UpdatedAt

	return resp, nil
}

func (s *ServiceImpl) GetMonth(ctx context.Context, teamID string, monthKey time.Time) (attendance.MonthStatsResponse, error) {
	agg, err := s.aggregates.GetByMonth(ctx, teamID, kpi.CategoryAttendance, monthKey)
	if err != nil {
		return attendance.MonthStatsResponse{}, fmt.Errorf("failed to read attendance snapshot: %w", err)
	}
	if agg == nil {
		return attendance.MonthStatsResponse{}, attendance.ErrMonthNotFound
	}

	resp := s.compute(monthKey, agg.MonthlyTarget, agg.Employees)
	resp.SnapshotSavedAt = &agg.UpdatedAt
	return resp, nil
}

// compute derives the monthly view from a snapshot. Scores are always
// recomputed from the raw records, never carried forward incrementally.
func (s *ServiceImpl) compute(monthKey time.Time, monthlyTarget int, snapshot []kpi.EmployeeSnapshot) attendance.MonthStatsResponse {
	var allRecords []attendance.Record
	var allTasks []production.Task
	perEmployee := make([]attendance.EmployeeMonthStats, 0, len(snapshot))
	perEmployeeProd := make([]production.EmployeeStat, 0, len(snapshot))

	for _, emp := range snapshot {
		allRecords = append(allRecords, emp.Records...)
		allTasks = append(allTasks, emp.Productions...)
		perEmployee = append(perEmployee, attendance.EmployeeMonthStats{
			Matricule: emp.Matricule,
			Name:      emp.Name,
			Stats:     s.calculator.MonthStats(emp.Records),
		})
		perEmployeeProd = append(perEmployeeProd, s.production.EmployeeStat(emp.Matricule, emp.Name, emp.Productions))
	}

	teamStats := s.calculator.MonthStats(allRecords)
	totalKg, entries, avg := s.production.Totals(allTasks)

	return attendance.MonthStatsResponse{
		MonthKey:      kpi.FormatMonthKey(monthKey),
		KPIValue:      teamStats.AttendanceRate,
		MonthlyTarget: monthlyTarget,
		Team:          teamStats,
		Production: attendance.ProductionStats{
			TotalKg:         totalKg,
			Entries:         entries,
			AvgKgPerEntry:   avg,
			EfficiencyProxy: s.production.EfficiencyProxy(avg),
			Employees:       perEmployeeProd,
		},
		Employees: perEmployee,
	}
}
