package employee

import (
	"github.com/payflow-hq/payflow-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	DepartmentID *string         `json:"department_id,omitempty"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	Allowances   decimal.Decimal `json:"allowances"`
	Deductions   decimal.Decimal `json:"deductions"`
	Points       int             `json:"points"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.DepartmentID != nil && !validator.IsValidUUID(*r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id must be a valid UUID",
		})
	}

	if r.BaseSalary.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary is required",
		})
	} else if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}

	if r.Allowances.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "allowances",
			Message: "allowances must not be negative",
		})
	}
	if r.Deductions.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "deductions",
			Message: "deductions must not be negative",
		})
	}
	if r.Points < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "points",
			Message: "points must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID           string           `json:"-"`
	Name         *string          `json:"name,omitempty"`
	Email        *string          `json:"email,omitempty"`
	DepartmentID *string          `json:"department_id,omitempty"`
	BaseSalary   *decimal.Decimal `json:"base_salary,omitempty"`
	Allowances   *decimal.Decimal `json:"allowances,omitempty"`
	Deductions   *decimal.Decimal `json:"deductions,omitempty"`
	Points       *int             `json:"points,omitempty"`
	IsPromoted   *bool            `json:"is_promoted,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if r.DepartmentID != nil && *r.DepartmentID != "" && !validator.IsValidUUID(*r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id must be a valid UUID",
		})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}
	if r.Allowances != nil && r.Allowances.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "allowances",
			Message: "allowances must not be negative",
		})
	}
	if r.Deductions != nil && r.Deductions.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "deductions",
			Message: "deductions must not be negative",
		})
	}
	if r.Points != nil && *r.Points < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "points",
			Message: "points must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SalaryBreakdown is derived on every read, never stored.
type SalaryBreakdown struct {
	BaseSalary decimal.Decimal `json:"base_salary"`
	Allowances decimal.Decimal `json:"allowances"`
	Bonus      decimal.Decimal `json:"bonus"`
	Raise      decimal.Decimal `json:"raise"`
	Deductions decimal.Decimal `json:"deductions"`
	Total      decimal.Decimal `json:"total"`
}

type EmployeeResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Email              string          `json:"email"`
	DepartmentID       *string         `json:"department_id,omitempty"`
	DepartmentName     *string         `json:"department_name,omitempty"`
	BaseSalary         decimal.Decimal `json:"base_salary"`
	Allowances         decimal.Decimal `json:"allowances"`
	Deductions         decimal.Decimal `json:"deductions"`
	Points             int             `json:"points"`
	IsPromoted         bool            `json:"is_promoted"`
	MustChangePassword bool            `json:"must_change_password"`
	SalaryBreakdown    SalaryBreakdown `json:"salary_breakdown"`
	HireDate           string          `json:"hire_date"`
	CreatedAt          string          `json:"created_at"`
}

type EmailSuggestionsResponse struct {
	Email       string   `json:"email"`
	Suggestions []string `json:"suggestions"`
}
