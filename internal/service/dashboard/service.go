package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/payflow-hq/payflow-backend-go/internal/domain/attendance"
	"github.com/payflow-hq/payflow-backend-go/internal/domain/dashboard"
	"github.com/payflow-hq/payflow-backend-go/internal/domain/department"
	"github.com/payflow-hq/payflow-backend-go/internal/domain/employee"
	"github.com/payflow-hq/payflow-backend-go/internal/domain/settings"
	employeesvc "github.com/payflow-hq/payflow-backend-go/internal/service/employee"
)

type DashboardServiceImpl struct {
	employee.EmployeeRepository
	department.DepartmentRepository
	attendance.AttendanceRepository
	settings.SettingsRepository
	loc *time.Location
	now func() time.Time
}

func NewDashboardService(
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	attendanceRepo attendance.AttendanceRepository,
	settingsRepo settings.SettingsRepository,
	loc *time.Location,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		EmployeeRepository:   employeeRepo,
		DepartmentRepository: departmentRepo,
		AttendanceRepository: attendanceRepo,
		SettingsRepository:   settingsRepo,
		loc:                  loc,
		now:                  time.Now,
	}
}

// Statistics implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Statistics(ctx context.Context) (*dashboard.StatisticsResponse, error) {
	nowLocal := s.now().In(s.loc)
	today := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, time.UTC)

	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	departments, err := s.DepartmentRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	cfg, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	totalPayroll := decimal.Zero
	for _, emp := range employees {
		breakdown := employeesvc.ComputeSalaryBreakdown(emp, cfg)
		totalPayroll = totalPayroll.Add(breakdown.Total)
	}

	stats := dashboard.Statistics{
		TotalEmployees:   int64(len(employees)),
		TotalDepartments: int64(len(departments)),
		TotalPayroll:     totalPayroll,
	}

	for status, target := range map[string]*int64{
		attendance.StatusPresent: &stats.PresentToday,
		attendance.StatusEarly:   &stats.EarlyToday,
		attendance.StatusLate:    &stats.LateToday,
	} {
		count, err := s.AttendanceRepository.CountByStatusAndDate(ctx, status, today)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s attendance: %w", status, err)
		}
		*target = count
	}

	// Headcount comes from the employees table, the source of truth.
	deptCounts, err := s.EmployeeRepository.CountByDepartment(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees by department: %w", err)
	}

	counts := make([]dashboard.DepartmentCount, 0, len(departments))
	for _, dept := range departments {
		counts = append(counts, dashboard.DepartmentCount{
			DepartmentID:   dept.ID,
			DepartmentName: dept.Name,
			EmployeeCount:  deptCounts[dept.ID],
		})
	}

	return &dashboard.StatisticsResponse{
		Statistics:  stats,
		Departments: counts,
	}, nil
}
