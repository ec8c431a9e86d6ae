package attendance

import "context"

type AttendanceService interface {
	CheckIn(ctx context.Context, employeeID string) (*CheckInResponse, error)
	CheckOut(ctx context.Context, employeeID string) (*CheckOutResponse, error)
	TodayStatus(ctx context.Context, employeeID string) (*TodayStatusResponse, error)
	ListForEmployee(ctx context.Context, employeeID string, limit int) ([]*AttendanceResponse, error)
	ListForDate(ctx context.Context, date string) ([]*AttendanceResponse, error)
	BulkMark(ctx context.Context, req *BulkMarkRequest) (*BulkMarkResponse, error)
}
