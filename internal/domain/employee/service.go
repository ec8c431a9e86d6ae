package employee

import "context"

type EmployeeService interface {
	CreateEmployee(ctx context.Context, req *CreateEmployeeRequest) (*EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (*EmployeeResponse, error)
	ListEmployees(ctx context.Context) ([]*EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req *UpdateEmployeeRequest) (*EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, id string) error
	SuggestEmails(ctx context.Context, name string) (*EmailSuggestionsResponse, error)
}
