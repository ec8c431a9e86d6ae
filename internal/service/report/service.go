package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/payflow-hq/payflow-backend-go/internal/domain/employee"
	"github.com/payflow-hq/payflow-backend-go/internal/domain/report"
	"github.com/payflow-hq/payflow-backend-go/internal/domain/settings"
	employeesvc "github.com/payflow-hq/payflow-backend-go/internal/service/employee"
)

type ReportServiceImpl struct {
	employee.EmployeeRepository
	settings.SettingsRepository
	now func() time.Time
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	settingsRepo settings.SettingsRepository,
) report.ReportService {
	return &ReportServiceImpl{
		EmployeeRepository: employeeRepo,
		SettingsRepository: settingsRepo,
		now:                time.Now,
	}
}

// formatAmount renders a decimal as a currency amount with thousands
// separators, e.g. 61000 -> "61,000.00".
func formatAmount(d decimal.Decimal) string {
	fixed := d.StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	if neg {
		fixed = fixed[1:]
	}

	parts := strings.SplitN(fixed, ".", 2)
	intPart := parts[0]

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := b.String() + "." + parts[1]
	if neg {
		out = "-" + out
	}
	return out
}

// SalaryReport implements report.ReportService.
func (s *ReportServiceImpl) SalaryReport(ctx context.Context, employeeID string) (*report.SalaryReport, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	cfg, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	breakdown := employeesvc.ComputeSalaryBreakdown(emp, cfg)

	departmentName := "N/A"
	if emp.DepartmentName != nil {
		departmentName = *emp.DepartmentName
	}

	generatedAt := s.now().Format("2006-01-02 15:04:05")

	var b strings.Builder
	line := strings.Repeat("=", 47)
	fmt.Fprintf(&b, "%s\n", line)
	fmt.Fprintf(&b, "SALARY REPORT - %s\n", strings.ToUpper(emp.Name))
	fmt.Fprintf(&b, "%s\n\n", line)
	fmt.Fprintf(&b, "Employee ID: %s\n", emp.ID)
	fmt.Fprintf(&b, "Email: %s\n", emp.Email)
	fmt.Fprintf(&b, "Department: %s\n\n", departmentName)
	fmt.Fprintf(&b, "%s\n", line)
	fmt.Fprintf(&b, "SALARY BREAKDOWN\n")
	fmt.Fprintf(&b, "%s\n\n", line)
	fmt.Fprintf(&b, "Base Salary:        KES %s\n", formatAmount(breakdown.BaseSalary))
	fmt.Fprintf(&b, "Allowances:       + KES %s\n", formatAmount(breakdown.Allowances))
	fmt.Fprintf(&b, "Bonus (Points):   + KES %s\n", formatAmount(breakdown.Bonus))
	fmt.Fprintf(&b, "Raise:            + KES %s\n", formatAmount(breakdown.Raise))
	fmt.Fprintf(&b, "Deductions:       - KES %s\n", formatAmount(breakdown.Deductions))
	fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 47))
	fmt.Fprintf(&b, "TOTAL SALARY:       KES %s\n\n", formatAmount(breakdown.Total))
	fmt.Fprintf(&b, "%s\n", line)
	fmt.Fprintf(&b, "POINTS SUMMARY\n")
	fmt.Fprintf(&b, "%s\n\n", line)
	fmt.Fprintf(&b, "Total Points: %d\n", emp.Points)
	fmt.Fprintf(&b, "Point Value: KES %s per point\n", cfg.PointValue.StringFixed(2))
	fmt.Fprintf(&b, "Bonus Earned: KES %s\n\n", formatAmount(breakdown.Bonus))
	fmt.Fprintf(&b, "%s\n", line)
	fmt.Fprintf(&b, "Generated on: %s\n", generatedAt)
	fmt.Fprintf(&b, "%s\n", line)

	return &report.SalaryReport{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		GeneratedAt:  generatedAt,
		Content:      b.String(),
	}, nil
}
