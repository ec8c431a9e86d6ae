package report

type SalaryReport struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	GeneratedAt  string `json:"generated_at"`
	Content      string `json:"content"`
}
