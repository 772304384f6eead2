package formulation

import (
	"context"
	"fmt"
	"time"

	"github.com/opsboard/kpi-backend-go/internal/domain/formulation"
	"github.com/opsboard/kpi-backend-go/internal/domain/kpi"
	"github.com/opsboard/kpi-backend-go/internal/domain/team"
)

type Service interface {
	SaveMonth(ctx context.Context, teamID string, monthKey time.Time, req formulation.SaveMonthRequest) (formulation.MonthStatsResponse, error)
	GetMonth(ctx context.Context, teamID string, monthKey time.Time) (formulation.MonthStatsResponse, error)
}

type ServiceImpl struct {
	aggregates kpi.AggregateRepository
	teams      team.TeamRepository
	calculator *Calculator
}

func NewFormulationService(aggregates kpi.AggregateRepository, teams team.TeamRepository) Service {
	return &ServiceImpl{
		aggregates: aggregates,
		teams:      teams,
		calculator: NewCalculator(),
	}
}

func (s *ServiceImpl) SaveMonth(ctx context.Context, teamID string, monthKey time.Time, req formulation.SaveMonthRequest) (formulation.MonthStatsResponse, error) {
	if err := req.Validate(); err != nil {
		return formulation.MonthStatsResponse{}, err
	}
	if _, err := s.teams.GetByID(ctx, teamID); err != nil {
		return formulation.MonthStatsResponse{}, err
	}

	formulas := make([]formulation.Formula, 0, len(req.Formulas))
	for i, input := range req.Formulas {
		f, err := input.ToDomain()
		if err != nil {
			return formulation.MonthStatsResponse{}, fmt.Errorf("formula %d: %w", i, err)
		}
		formulas = append(formulas, f)
	}

	resp := s.compute(monthKey, req.MonthlyTarget, formulas)

	agg := kpi.MonthlyAggregate{
		TeamID:        teamID,
		Category:      kpi.CategoryFormulation,
		MonthKey:      kpi.MonthKeyFor(monthKey),
		KPIValue:      resp.KPIValue,
		MonthlyTarget: req.MonthlyTarget,
		Formulas:      formulas,
	}
	if _, err := s.aggregates.Upsert(ctx, agg); err != nil {
		return formulation.MonthStatsResponse{}, fmt.Errorf("failed to save formulation snapshot: %w", err)
	}

	return resp, nil
}

func (s *ServiceImpl) GetMonth(ctx context.Context, teamID string, monthKey time.Time) (formulation.MonthStatsResponse, error) {
	agg, err := s.aggregates.GetByMonth(ctx, teamID, kpi.CategoryFormulation, monthKey)
	if err != nil {
		return formulation.MonthStatsResponse{}, fmt.Errorf("failed to read formulation snapshot: %w", err)
	}
	if agg == nil {
		return formulation.MonthStatsResponse{}, formulation.ErrMonthNotFound
	}

	return s.compute(monthKey, agg.MonthlyTarget, agg.Formulas), nil
}

func (s *ServiceImpl) compute(monthKey time.Time, monthlyTarget int, formulas []formulation.Formula) formulation.MonthStatsResponse {
	global, scores := s.calculator.GlobalScore(formulas)

	return formulation.MonthStatsResponse{
		MonthKey:      kpi.FormatMonthKey(monthKey),
		KPIValue:      global,
		MonthlyTarget: monthlyTarget,
		Formulas:      scores,
	}
}
