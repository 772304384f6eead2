package safety

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/opsboard/kpi-backend-go/internal/domain/kpi"
	"github.com/opsboard/kpi-backend-go/internal/domain/safety"
	"github.com/opsboard/kpi-backend-go/internal/domain/team"
)

type Service interface {
	SaveMonth(ctx context.Context, teamID string, monthKey time.Time, req safety.SaveMonthRequest) (safety.MonthStatsResponse, error)
	GetMonth(ctx context.Context, teamID string, monthKey time.Time) (safety.MonthStatsResponse, error)
}

type ServiceImpl struct {
	aggregates    kpi.AggregateRepository
	teams         team.TeamRepository
	calculator    *Calculator
	defaultTarget int
}

func NewSafetyService(aggregates kpi.AggregateRepository, teams team.TeamRepository, defaultTarget int) Service {
	return &ServiceImpl{
		aggregates:    aggregates,
		teams:         teams,
		calculator:    NewCalculator(),
		defaultTarget: defaultTarget,
	}
}

func (s *ServiceImpl) SaveMonth(ctx context.Context, teamID string, monthKey time.Time, req safety.SaveMonthRequest) (safety.MonthStatsResponse, error) {
	if err := req.Validate(); err != nil {
		return safety.MonthStatsResponse{}, err
	}
	if _, err := s.teams.GetByID(ctx, teamID); err != nil {
		return safety.MonthStatsResponse{}, err
	}

	target := s.defaultTarget
	if req.MonthlyTarget != nil {
		target = *req.MonthlyTarget
	}

	incidents := make([]safety.Incident, 0, len(req.Incidents))
	for i, input := range req.Incidents {
		incident, err := input.ToDomain()
		if err != nil {
			return safety.MonthStatsResponse{}, fmt.Errorf("incident %d: %w", i, err)
		}
		incidents = append(incidents, incident)
	}

	resp := s.compute(monthKey, target, incidents)

	agg := kpi.MonthlyAggregate{
		TeamID:        teamID,
		Category:      kpi.CategorySafety,
		MonthKey:      kpi.MonthKeyFor(monthKey),
		KPIValue:      resp.KPIValue,
		MonthlyTarget: target,
		Incidents:     incidents,
	}
	if _, err := s.aggregates.Upsert(ctx, agg); err != nil {
		return safety.MonthStatsResponse{}, fmt.Errorf("failed to save safety snapshot: %w", err)
	}

	return resp, nil
}

func (s *ServiceImpl) GetMonth(ctx context.Context, teamID string, monthKey time.Time) (safety.MonthStatsResponse, error) {
	agg, err := s.aggregates.GetByMonth(ctx, teamID, kpi.CategorySafety, monthKey)
	if err != nil {
		return safety.MonthStatsResponse{}, fmt.Errorf("failed to read safety snapshot: %w", err)
	}
	if agg == nil {
		return safety.MonthStatsResponse{}, safety.ErrMonthNotFound
	}

	return s.compute(monthKey, agg.MonthlyTarget, agg.Incidents), nil
}

func (s *ServiceImpl) compute(monthKey time.Time, target int, incidents []safety.Incident) safety.MonthStatsResponse {
	byEmployee := make(map[int][]safety.Incident)
	for _, inc := range incidents {
		byEmployee[inc.EmployeeMatricule] = append(byEmployee[inc.EmployeeMatricule], inc)
	}

	employees := make([]safety.EmployeeScore, 0, len(byEmployee))
	for matricule, list := range byEmployee {
		employees = append(employees, safety.EmployeeScore{
			Matricule: matricule,
			Incidents: len(list),
			Score:     s.calculator.EmployeeScore(list),
		})
	}
	sort.Slice(employees, func(i, j int) bool {
		return employees[i].Matricule < employees[j].Matricule
	})

	return safety.MonthStatsResponse{
		MonthKey:      kpi.FormatMonthKey(monthKey),
		KPIValue:      s.calculator.TeamScore(incidents, target),
		MonthlyTarget: target,
		IncidentCount: len(incidents),
		BySeverity:    s.calculator.CountBySeverity(incidents),
		Employees:     employees,
	}
}
