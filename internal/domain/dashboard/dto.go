package dashboard

import "github.com/shopspring/decimal"

type Statistics struct {
	TotalEmployees   int64           `json:"total_employees"`
	TotalDepartments int64           `json:"total_departments"`
	PresentToday     int64           `json:"present_today"`
	EarlyToday       int64           `json:"early_today"`
	LateToday        int64           `json:"late_today"`
	TotalPayroll     decimal.Decimal `json:"total_payroll"`
}

type DepartmentCount struct {
	DepartmentID   string `json:"department_id"`
	DepartmentName string `json:"department_name"`
	EmployeeCount  int64  `json:"employee_count"`
}

type StatisticsResponse struct {
	Statistics  Statistics        `json:"statistics"`
	Departments []DepartmentCount `json:"departments"`
}
