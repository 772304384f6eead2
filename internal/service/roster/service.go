package roster

import (
	"context"
	"fmt"

	"github.com/opsboard/kpi-backend-go/internal/domain/employee"
	"github.com/opsboard/kpi-backend-go/internal/domain/team"
)

// Service manages the team and employee roster feeding the KPI snapshots.
type Service interface {
	CreateTeam(ctx context.Context, req team.CreateRequest) (team.Team, error)
	ListTeams(ctx context.Context) ([]team.Team, error)
	GetTeam(ctx context.Context, teamID string) (team.Team, error)

	AddEmployee(ctx context.Context, teamID string, req employee.CreateRequest) (employee.Employee, error)
	ListEmployees(ctx context.Context, teamID string) ([]employee.Employee, error)
	RemoveEmployee(ctx context.Context, teamID string, matricule int) error
}

type ServiceImpl struct {
	teams     team.TeamRepository
	employees employee.EmployeeRepository
}

func NewRosterService(teams team.TeamRepository, employees employee.EmployeeRepository) Service {
	return &ServiceImpl{teams: teams, employees: employees}
}

func (s *ServiceImpl) CreateTeam(ctx context.Context, req team.CreateRequest) (team.Team, error) {
	if err := req.Validate(); err != nil {
		return team.Team{}, err
	}
	created, err := s.teams.Create(ctx, team.Team{Name: req.Name})
	if err != nil {
		return team.Team{}, err
	}
	return created, nil
}

func (s *ServiceImpl) ListTeams(ctx context.Context) ([]team.Team, error) {
	return s.teams.List(ctx)
}

func (s *ServiceImpl) GetTeam(ctx context.Context, teamID string) (team.Team, error) {
	return s.teams.GetByID(ctx, teamID)
}

func (s *ServiceImpl) AddEmployee(ctx context.Context, teamID string, req employee.CreateRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}
	if _, err := s.teams.GetByID(ctx, teamID); err != nil {
		return employee.Employee{}, err
	}

	created, err := s.employees.Create(ctx, employee.Employee{
		Matricule: req.Matricule,
		Name:      req.Name,
		TeamID:    teamID,
	})
	if err != nil {
		return employee.Employee{}, err
	}
	return created, nil
}

func (s *ServiceImpl) ListEmployees(ctx context.Context, teamID string) ([]employee.Employee, error) {
	if _, err := s.teams.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.employees.ListByTeam(ctx, teamID)
}

// RemoveEmployee drops the roster row only. Historical snapshot records for
// the matricule stay in place until the month is next saved.
func (s *ServiceImpl) RemoveEmployee(ctx context.Context, teamID string, matricule int) error {
	if _, err := s.teams.GetByID(ctx, teamID); err != nil {
		return err
	}
	if err := s.employees.Delete(ctx, teamID, matricule); err != nil {
		return fmt.Errorf("failed to remove employee %d: %w", matricule, err)
	}
	return nil
}
