package response

import (
	"errors"
	"net/http"

	"github.com/payflow-hq/payflow-backend-go/internal/domain/attendance"
	"github.com/payflow-hq/payflow-backend-go/internal/domain/auth"
	"github.com/payflow-hq/payflow-backend-go/internal/domain/department"
	"github.com/payflow-hq/payflow-backend-go/internal/domain/employee"
	"github.com/payflow-hq/payflow-backend-go/internal/pkg/validator"
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
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrPasswordChangeNotPending):
		Conflict(w, "No password change pending for this account")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrNameExists):
		Conflict(w, "Department name already exists")
	case errors.Is(err, department.ErrDepartmentNotEmpty):
		Conflict(w, "Department still has employees assigned")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "Not checked in today")
	case errors.Is(err, attendance.ErrCheckInWindowClosed):
		Forbidden(w, "Check-in window has closed")
	case errors.Is(err, attendance.ErrCheckOutWindowClosed):
		Forbidden(w, "Outside the check-out window")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
