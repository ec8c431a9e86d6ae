package department

import (
	"context"
	"fmt"
	"time"

	"github.com/payflow-hq/payflow-backend-go/internal/domain/department"
)

type DepartmentServiceImpl struct {
	department.DepartmentRepository
}

func NewDepartmentService(departmentRepo department.DepartmentRepository) department.DepartmentService {
	return &DepartmentServiceImpl{DepartmentRepository: departmentRepo}
}

func toResponse(dept *department.Department) *department.DepartmentResponse {
	return &department.DepartmentResponse{
		ID:            dept.ID,
		Name:          dept.Name,
		Manager:       dept.Manager,
		EmployeeCount: dept.EmployeeCount,
		CreatedAt:     dept.CreatedAt.Format(time.RFC3339),
	}
}

// CreateDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) CreateDepartment(ctx context.Context, req *department.CreateDepartmentRequest) (*department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.DepartmentRepository.NameExists(ctx, req.Name, "")
	if err != nil {
		return nil, fmt.Errorf("failed to check department name: %w", err)
	}
	if exists {
		return nil, department.ErrNameExists
	}

	dept := &department.Department{
		Name:    req.Name,
		Manager: req.Manager,
	}
	if err := s.DepartmentRepository.Create(ctx, dept); err != nil {
		return nil, err
	}

	return toResponse(dept), nil
}

// GetDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) GetDepartment(ctx context.Context, id string) (*department.DepartmentResponse, error) {
	dept, err := s.DepartmentRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toResponse(dept), nil
}

// ListDepartments implements department.DepartmentService.
func (s *DepartmentServiceImpl) ListDepartments(ctx context.Context) ([]*department.DepartmentResponse, error) {
	departments, err := s.DepartmentRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*department.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		responses = append(responses, toResponse(dept))
	}

	return responses, nil
}

// UpdateDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) UpdateDepartment(ctx context.Context, req *department.UpdateDepartmentRequest) (*department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	dept, err := s.DepartmentRepository.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != dept.Name {
		exists, err := s.DepartmentRepository.NameExists(ctx, *req.Name, dept.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check department name: %w", err)
		}
		if exists {
			return nil, department.ErrNameExists
		}
		dept.Name = *req.Name
	}
	if req.Manager != nil {
		dept.Manager = *req.Manager
	}

	if err := s.DepartmentRepository.Update(ctx, dept); err != nil {
		return nil, err
	}

	return toResponse(dept), nil
}

// DeleteDepartment implements department.DepartmentService. Departments
// with assigned employees cannot be removed.
func (s *DepartmentServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	dept, err := s.DepartmentRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if dept.EmployeeCount > 0 {
		return department.ErrDepartmentNotEmpty
	}

	return s.DepartmentRepository.Delete(ctx, id)
}
