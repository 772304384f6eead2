package efficiency

import (
	"context"
	"fmt"
	"time"

	"github.com/opsboard/kpi-backend-go/internal/domain/efficiency"
	"github.com/opsboard/kpi-backend-go/internal/domain/kpi"
	"github.com/opsboard/kpi-backend-go/internal/domain/team"
)

type Service interface {
	SaveMonth(ctx context.Context, teamID string, monthKey time.Time, req efficiency.SaveMonthRequest) (efficiency.MonthStatsResponse, error)
	GetMonth(ctx context.Context, teamID string, monthKey time.Time) (efficiency.MonthStatsResponse, error)
}

type ServiceImpl struct {
	aggregates kpi.AggregateRepository
	teams      team.TeamRepository
	calculator *Calculator
}

func NewEfficiencyService(aggregates kpi.AggregateRepository, teams team.TeamRepository) Service {
	return &ServiceImpl{
		aggregates: aggregates,
		teams:      teams,
		calculator: NewCalculator(),
	}
}

func (s *ServiceImpl) SaveMonth(ctx context.Context, teamID string, monthKey time.Time, req efficiency.SaveMonthRequest) (efficiency.MonthStatsResponse, error) {
	if err := req.Validate(); err != nil {
		return efficiency.MonthStatsResponse{}, err
	}
	if _, err := s.teams.GetByID(ctx, teamID); err != nil {
		return efficiency.MonthStatsResponse{}, err
	}

	snapshot := make([]kpi.EmployeeSnapshot, 0, len(req.Employees))
	for _, emp := range req.Employees {
		snapshot = append(snapshot, kpi.EmployeeSnapshot{
			Matricule: emp.Matricule,
			Name:      emp.Name,
			Tasks:     emp.Tasks,
		})
	}

	resp := s.compute(monthKey, req.MonthlyTarget, snapshot)

	agg := kpi.MonthlyAggregate{
		TeamID:        teamID,
		Category:      kpi.CategoryEfficiency,
		MonthKey:      kpi.MonthKeyFor(monthKey),
		KPIValue:      resp.KPIValue,
		MonthlyTarget: req.MonthlyTarget,
		Employees:     snapshot,
	}
	if _, err := s.aggregates.Upsert(ctx, agg); err != nil {
		return efficiency.MonthStatsResponse{}, fmt.Errorf("failed to save efficiency snapshot: %w", err)
	}

	return resp, nil
}

func (s *ServiceImpl) GetMonth(ctx context.Context, teamID string, monthKey time.Time) (efficiency.MonthStatsResponse, error) {
	agg, err := s.aggregates.GetByMonth(ctx, teamID, kpi.CategoryEfficiency, monthKey)
	if err != nil {
		return efficiency.MonthStatsResponse{}, fmt.Errorf("failed to read efficiency snapshot: %w", err)
	}
	if agg == nil {
		return efficiency.MonthStatsResponse{}, efficiency.ErrMonthNotFound
	}

	return s.compute(monthKey, agg.MonthlyTarget, agg.Employees), nil
}

func (s *ServiceImpl) compute(monthKey time.Time, monthlyTarget int, snapshot []kpi.EmployeeSnapshot) efficiency.MonthStatsResponse {
	employees := make([]efficiency.EmployeeTasks, 0, len(snapshot))
	for _, emp := range snapshot {
		employees = append(employees, efficiency.EmployeeTasks{
			Matricule: emp.Matricule,
			Name:      emp.Name,
			Tasks:     emp.Tasks,
		})
	}

	score, rates := s.calculator.TeamScore(employees)

	return efficiency.MonthStatsResponse{
		MonthKey:      kpi.FormatMonthKey(monthKey),
		KPIValue:      score,
		KPIWeighted:   s.calculator.TeamScoreWeighted(employees),
		MonthlyTarget: monthlyTarget,
		Employees:     rates,
	}
}
