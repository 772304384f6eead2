package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	attendanceDomain "github.com/opsboard/kpi-backend-go/internal/domain/attendance"
	efficiencyDomain "github.com/opsboard/kpi-backend-go/internal/domain/efficiency"
	formulationDomain "github.com/opsboard/kpi-backend-go/internal/domain/formulation"
	"github.com/opsboard/kpi-backend-go/internal/domain/kpi"
	safetyDomain "github.com/opsboard/kpi-backend-go/internal/domain/safety"
	"github.com/opsboard/kpi-backend-go/internal/handler/http/response"
	attendanceService "github.com/opsboard/kpi-backend-go/internal/service/attendance"
	efficiencyService "github.com/opsboard/kpi-backend-go/internal/service/efficiency"
	formulationService "github.com/opsboard/kpi-backend-go/internal/service/formulation"
	safetyService "github.com/opsboard/kpi-backend-go/internal/service/safety"
	summaryService "github.com/opsboard/kpi-backend-go/internal/service/summary"
)

type KPIHandler interface {
	SaveMonth(w http.ResponseWriter, r *http.Request)
	GetMonth(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type kpiHandlerImpl struct {
	attendance  attendanceService.Service
	efficiency  efficiencyService.Service
	safety      safetyService.Service
	formulation formulationService.Service
	summary     summaryService.Service
}

func NewKPIHandler(
	attendance attendanceService.Service,
	efficiency efficiencyService.Service,
	safety safetyService.Service,
	formulation formulationService.Service,
	summary summaryService.Service,
) KPIHandler {
	return &kpiHandlerImpl{
		attendance:  attendance,
		efficiency:  efficiency,
		safety:      safety,
		formulation: formulation,
		summary:     summary,
	}
}

// pathParams pulls the category and month segments out of the route.
func pathParams(r *http.Request) (kpi.Category, time.Time, error) {
	category, err := kpi.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		return "", time.Time{}, err
	}
	monthKey, err := kpi.ParseMonthKey(chi.URLParam(r, "month"))
	if err != nil {
		return "", time.Time{}, err
	}
	return category, monthKey, nil
}

// SaveMonth handles PUT /teams/{teamID}/kpi/{category}/{month}
func (h *kpiHandlerImpl) SaveMonth(w http.ResponseWriter, r *http.Request) {
	category, monthKey, err := pathParams(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	teamID := chi.URLParam(r, "teamID")
	ctx := r.Context()

	var result any
	switch category {
	case kpi.CategoryAttendance:
		var req attendanceDomain.SaveMonthRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body", nil)
			return
		}
		result, err = h.attendance.SaveMonth(ctx, teamID, monthKey, req)
	case kpi.CategoryEfficiency:
		var req efficiencyDomain.SaveMonthRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body", nil)
			return
		}
		result, err = h.efficiency.SaveMonth(ctx, teamID, monthKey, req)
	case kpi.CategorySafety:
		var req safetyDomain.SaveMonthRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body", nil)
			return
		}
		result, err = h.safety.SaveMonth(ctx, teamID, monthKey, req)
	case kpi.CategoryFormulation:
		var req formulationDomain.SaveMonthRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body", nil)
			return
		}
		result, err = h.formulation.SaveMonth(ctx, teamID, monthKey, req)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMonth handles GET /teams/{teamID}/kpi/{category}/{month}
func (h *kpiHandlerImpl) GetMonth(w http.ResponseWriter, r *http.Request) {
	category, monthKey, err := pathParams(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	teamID := chi.URLParam(r, "teamID")
	ctx := r.Context()

	var result any
	switch category {
	case kpi.CategoryAttendance:
		result, err = h.attendance.GetMonth(ctx, teamID, monthKey)
	case kpi.CategoryEfficiency:
		result, err = h.efficiency.GetMonth(ctx, teamID, monthKey)
	case kpi.CategorySafety:
		result, err = h.safety.GetMonth(ctx, teamID, monthKey)
	case kpi.CategoryFormulation:
		result, err = h.formulation.GetMonth(ctx, teamID, monthKey)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetSummary handles GET /teams/{teamID}/summary
func (h *kpiHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.summary.Cards(r.Context(), chi.URLParam(r, "teamID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetHistory handles GET /teams/{teamID}/kpi/{category}/history
func (h *kpiHandlerImpl) GetHistory(w http.ResponseWriter, r *http.Request) {
	category, err := kpi.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("months"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			response.BadRequest(w, "months must be a non-negative integer", nil)
			return
		}
	}

	result, err := h.summary.History(r.Context(), chi.URLParam(r, "teamID"), category, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
