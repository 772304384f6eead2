package summary

import (
	"context"
	"fmt"

	"github.com/opsboard/kpi-backend-go/internal/domain/kpi"
	"github.com/opsboard/kpi-backend-go/internal/domain/team"
)

// DefaultHistoryMonths bounds the chart history when the caller does not
// ask for a specific window.
const DefaultHistoryMonths = 12

type Service interface {
	// Cards merges the latest score of each category into status-tagged
	// cards for the dashboard.
	Cards(ctx context.Context, teamID string) (kpi.SummaryResponse, error)

	// History returns a category's recent monthly scores, newest first.
	History(ctx context.Context, teamID string, category kpi.Category, limit int) (kpi.HistoryResponse, error)
}

type ServiceImpl struct {
	aggregates kpi.AggregateRepository
	teams      team.TeamRepository
}

func NewSummaryService(aggregates kpi.AggregateRepository, teams team.TeamRepository) Service {
	return &ServiceImpl{aggregates: aggregates, teams: teams}
}

func (s *ServiceImpl) Cards(ctx context.Context, teamID string) (kpi.SummaryResponse, error) {
	if _, err := s.teams.GetByID(ctx, teamID); err != nil {
		return kpi.SummaryResponse{}, err
	}

	resp := kpi.SummaryResponse{TeamID: teamID}
	for _, category := range kpi.Categories {
		latest, err := s.aggregates.GetLatest(ctx, teamID, category)
		if err != nil {
			return kpi.SummaryResponse{}, fmt.Errorf("failed to read latest %s aggregate: %w", category, err)
		}

		card := kpi.Card{Category: category, Status: kpi.StatusNoData}
		if latest != nil {
			value := latest.KPIValue
			target := latest.MonthlyTarget
			month := kpi.FormatMonthKey(latest.MonthKey)
			card.Status = kpi.ClassifyScore(value)
			card.KPIValue = &value
			card.MonthlyTarget = &target
			card.MonthKey = &month
		}
		resp.Cards = append(resp.Cards, card)
	}

	return resp, nil
}

func (s *ServiceImpl) History(ctx context.Context, teamID string, category kpi.Category, limit int) (kpi.HistoryResponse, error) {
	if !category.Valid() {
		return kpi.HistoryResponse{}, kpi.ErrInvalidCategory
	}
	if _, err := s.teams.GetByID(ctx, teamID); err != nil {
		return kpi.HistoryResponse{}, err
	}
	if limit <= 0 {
		limit = DefaultHistoryMonths
	}

	aggregates, err := s.aggregates.ListRecent(ctx, teamID, category, limit)
	if err != nil {
		return kpi.HistoryResponse{}, fmt.Errorf("failed to read %s history: %w", category, err)
	}

	resp := kpi.HistoryResponse{TeamID: teamID, Category: category}
	for _, agg := range aggregates {
		resp.Points = append(resp.Points, kpi.HistoryPoint{
			MonthKey:      kpi.FormatMonthKey(agg.MonthKey),
			KPIValue:      agg.KPIValue,
			MonthlyTarget: agg.MonthlyTarget,
		})
	}

	return resp, nil
}
