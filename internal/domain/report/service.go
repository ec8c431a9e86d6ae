package report

import "context"

type ReportService interface {
	SalaryReport(ctx context.Context, employeeID string) (*SalaryReport, error)
}
