package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/opsboard/kpi-backend-go/internal/domain/employee"
	"github.com/opsboard/kpi-backend-go/internal/domain/team"
	"github.com/opsboard/kpi-backend-go/internal/handler/http/response"
	"github.com/opsboard/kpi-backend-go/internal/service/roster"
)

type RosterHandler interface {
	CreateTeam(w http.ResponseWriter, r *http.Request)
	ListTeams(w http.ResponseWriter, r *http.Request)
	GetTeam(w http.ResponseWriter, r *http.Request)
	AddEmployee(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
	RemoveEmployee(w http.ResponseWriter, r *http.Request)
}

type rosterHandlerImpl struct {
	rosterService roster.Service
}

func NewRosterHandler(rosterService roster.Service) RosterHandler {
	return &rosterHandlerImpl{rosterService: rosterService}
}

// CreateTeam handles POST /teams
func (h *rosterHandlerImpl) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req team.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.rosterService.CreateTeam(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Team created", created)
}

// ListTeams handles GET /teams
func (h *rosterHandlerImpl) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.rosterService.ListTeams(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, teams)
}

// GetTeam handles GET /teams/{teamID}
func (h *rosterHandlerImpl) GetTeam(w http.ResponseWriter, r *http.Request) {
	result, err := h.rosterService.GetTeam(r.Context(), chi.URLParam(r, "teamID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AddEmployee handles POST /teams/{teamID}/employees
func (h *rosterHandlerImpl) AddEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.rosterService.AddEmployee(r.Context(), chi.URLParam(r, "teamID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee added", created)
}

// ListEmployees handles GET /teams/{teamID}/employees
func (h *rosterHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.rosterService.ListEmployees(r.Context(), chi.URLParam(r, "teamID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// RemoveEmployee handles DELETE /teams/{teamID}/employees/{matricule}
func (h *rosterHandlerImpl) RemoveEmployee(w http.ResponseWriter, r *http.Request) {
	matricule, err := strconv.Atoi(chi.URLParam(r, "matricule"))
	if err != nil {
		response.BadRequest(w, "matricule must be an integer", nil)
		return
	}

	if err := h.rosterService.RemoveEmployee(r.Context(), chi.URLParam(r, "teamID"), matricule); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"status": "deleted"})
}
