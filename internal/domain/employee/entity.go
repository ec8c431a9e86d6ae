package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                 string
	Name               string
	Email              string
	DepartmentID       *string
	BaseSalary         decimal.Decimal
	Allowances         decimal.Decimal
	Deductions         decimal.Decimal
	Points             int
	IsPromoted         bool
	PasswordHash       string
	MustChangePassword bool
	HireDate           time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// DTO
	DepartmentName *string
}
