package response

import (
	"errors"
	"net/http"

	"github.com/opsboard/kpi-backend-go/internal/domain/attendance"
	"github.com/opsboard/kpi-backend-go/internal/domain/auth"
	"github.com/opsboard/kpi-backend-go/internal/domain/efficiency"
	"github.com/opsboard/kpi-backend-go/internal/domain/employee"
	"github.com/opsboard/kpi-backend-go/internal/domain/formulation"
	"github.com/opsboard/kpi-backend-go/internal/domain/kpi"
	"github.com/opsboard/kpi-backend-go/internal/domain/safety"
	"github.com/opsboard/kpi-backend-go/internal/domain/team"
	"github.com/opsboard/kpi-backend-go/internal/domain/user"
	"github.com/opsboard/kpi-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Roster domain errors
	case errors.Is(err, team.ErrTeamNotFound):
		NotFound(w, "Team not found")
	case errors.Is(err, team.ErrNameExists):
		Conflict(w, "A team with this name already exists")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrMatriculeExists):
		Conflict(w, "Matricule already registered in this team")

	// KPI domain errors
	case errors.Is(err, attendance.ErrMonthNotFound),
		errors.Is(err, efficiency.ErrMonthNotFound),
		errors.Is(err, safety.ErrMonthNotFound),
		errors.Is(err, formulation.ErrMonthNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, attendance.ErrInvalidMonth),
		errors.Is(err, kpi.ErrInvalidMonthKey):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, kpi.ErrInvalidCategory):
		BadRequest(w, "Unknown KPI category", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
