package attendance

import (
	"github.com/payflow-hq/payflow-backend-go/internal/pkg/validator"
)

type TodayStatusResponse struct {
	Date         string  `json:"date"`
	DayState     string  `json:"day_state"`
	Status       *string `json:"status"`
	CheckIn      *string `json:"check_in"`
	CheckOut     *string `json:"check_out"`
	PointsEarned int     `json:"points_earned"`

	// Advisory flags computed from the current server time. The
	// service revalidates on every mutation regardless.
	CanCheckIn  bool `json:"can_check_in"`
	CanCheckOut bool `json:"can_check_out"`
}

type CheckInResponse struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	CheckIn      string `json:"check_in"`
	PointsEarned int    `json:"points_earned"`
	TotalPoints  int    `json:"total_points"`
}

type CheckOutResponse struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Status   string `json:"status"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	DayState     string  `json:"day_state"`
	CheckIn      *string `json:"check_in"`
	CheckOut     *string `json:"check_out"`
	PointsEarned int     `json:"points_earned"`
}

type BulkMarkEntry struct {
	EmployeeID string `json:"employee_id"`
	Status     string `json:"status"`
}

type BulkMarkRequest struct {
	Date    string          `json:"date"`
	Entries []BulkMarkEntry `json:"entries"`
}

func (r *BulkMarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(r.Entries) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "entries",
			Message: "at least one entry is required",
		})
	}

	validStatuses := []string{StatusEarly, StatusPresent, StatusLate}
	for _, entry := range r.Entries {
		if !validator.IsValidUUID(entry.EmployeeID) {
			errs = append(errs, validator.ValidationError{
				Field:   "entries",
				Message: "employee_id must be a valid UUID",
			})
			break
		}
		if !validator.IsInSlice(entry.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "entries",
				Message: "status must be one of: early, present, late",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BulkMarkResponse struct {
	Date    string `json:"date"`
	Marked  int    `json:"marked"`
	Updated int    `json:"updated"`
}
