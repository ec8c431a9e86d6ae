package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/payflow-hq/payflow-backend-go/internal/config"
	"github.com/payflow-hq/payflow-backend-go/internal/domain/employee"
	"github.com/payflow-hq/payflow-backend-go/internal/domain/settings"
	"github.com/payflow-hq/payflow-backend-go/internal/pkg/database"
	"github.com/payflow-hq/payflow-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	settings.SettingsRepository
	provision config.ProvisionConfig
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	settingsRepo settings.SettingsRepository,
	provision config.ProvisionConfig,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepo,
		SettingsRepository: settingsRepo,
		provision:          provision,
	}
}

var hundred = decimal.NewFromInt(100)

// ComputeSalaryBreakdown derives the pay components for an employee.
// The breakdown is never stored; it is recomputed from the employee
// row and the current settings on every read.
func ComputeSalaryBreakdown(emp *employee.Employee, s *settings.Settings) employee.SalaryBreakdown {
	bonus := decimal.NewFromInt(int64(emp.Points)).Mul(s.PointValue)

	raise := decimal.Zero
	if emp.IsPromoted {
		raise = emp.BaseSalary.Mul(s.RaisePercentage).Div(hundred)
	}

	total := emp.BaseSalary.Add(emp.Allowances).Add(bonus).Add(raise).Sub(emp.Deductions)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return employee.SalaryBreakdown{
		BaseSalary: emp.BaseSalary,
		Allowances: emp.Allowances,
		Bonus:      bonus,
		Raise:      raise,
		Deductions: emp.Deductions,
		Total:      total,
	}
}

func (s *EmployeeServiceImpl) toResponse(emp *employee.Employee, cfg *settings.Settings) *employee.EmployeeResponse {
	return &employee.EmployeeResponse{
		ID:                 emp.ID,
		Name:               emp.Name,
		Email:              emp.Email,
		DepartmentID:       emp.DepartmentID,
		DepartmentName:     emp.DepartmentName,
		BaseSalary:         emp.BaseSalary,
		Allowances:         emp.Allowances,
		Deductions:         emp.Deductions,
		Points:             emp.Points,
		IsPromoted:         emp.IsPromoted,
		MustChangePassword: emp.MustChangePassword,
		SalaryBreakdown:    ComputeSalaryBreakdown(emp, cfg),
		HireDate:           emp.HireDate.Format("2006-01-02"),
		CreatedAt:          emp.CreatedAt.Format(time.RFC3339),
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req *employee.CreateEmployeeRequest) (*employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.EmployeeRepository.EmailExists(ctx, req.Email, "")
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, employee.ErrEmailExists
	}

	// New accounts start on the provisioned password and must change
	// it on first login.
	hash, err := bcrypt.GenerateFromPassword([]byte(s.provision.DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash default password: %w", err)
	}

	emp := &employee.Employee{
		Name:               req.Name,
		Email:              req.Email,
		DepartmentID:       req.DepartmentID,
		BaseSalary:         req.BaseSalary,
		Allowances:         req.Allowances,
		Deductions:         req.Deductions,
		Points:             req.Points,
		PasswordHash:       string(hash),
		MustChangePassword: true,
		HireDate:           time.Now(),
	}

	if err := s.EmployeeRepository.Create(ctx, emp); err != nil {
		return nil, err
	}

	cfg, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return s.toResponse(emp, cfg), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (*employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	cfg, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return s.toResponse(emp, cfg), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]*employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	responses := make([]*employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, s.toResponse(emp, cfg))
	}

	return responses, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req *employee.UpdateEmployeeRequest) (*employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Email != nil && *req.Email != emp.Email {
		exists, err := s.EmployeeRepository.EmailExists(ctx, *req.Email, emp.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			return nil, employee.ErrEmailExists
		}
		emp.Email = *req.Email
	}
	if req.DepartmentID != nil {
		if *req.DepartmentID == "" {
			emp.DepartmentID = nil
		} else {
			emp.DepartmentID = req.DepartmentID
		}
	}
	if req.BaseSalary != nil {
		emp.BaseSalary = *req.BaseSalary
	}
	if req.Allowances != nil {
		emp.Allowances = *req.Allowances
	}
	if req.Deductions != nil {
		emp.Deductions = *req.Deductions
	}
	if req.Points != nil {
		emp.Points = *req.Points
	}
	if req.IsPromoted != nil {
		emp.IsPromoted = *req.IsPromoted
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		return s.EmployeeRepository.Update(txCtx, emp)
	})
	if err != nil {
		return nil, err
	}

	cfg, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return s.toResponse(emp, cfg), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return s.EmployeeRepository.Delete(ctx, id)
}

// SuggestEmails implements employee.EmployeeService. Variants already
// taken by another employee are filtered out.
func (s *EmployeeServiceImpl) SuggestEmails(ctx context.Context, name string) (*employee.EmailSuggestionsResponse, error) {
	candidates := employee.SuggestEmails(name, s.provision.EmailDomain)

	available := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		taken, err := s.EmployeeRepository.EmailExists(ctx, candidate, "")
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if !taken {
			available = append(available, candidate)
		}
	}

	resp := &employee.EmailSuggestionsResponse{Suggestions: available}
	if len(available) > 0 {
		resp.Email = available[0]
	}

	return resp, nil
}
