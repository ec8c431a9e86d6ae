package department

import (
	"github.com/payflow-hq/payflow-backend-go/internal/pkg/validator"
)

type CreateDepartmentRequest struct {
	Name    string `json:"name"`
	Manager string `json:"manager"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "department name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "department name must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateDepartmentRequest struct {
	ID      string  `json:"-"`
	Name    *string `json:"name,omitempty"`
	Manager *string `json:"manager,omitempty"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "department name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DepartmentResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Manager       string `json:"manager"`
	EmployeeCount int64  `json:"employee_count"`
	CreatedAt     string `json:"created_at"`
}
