package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, att *Attendance) error
	GetByID(ctx context.Context, id string) (*Attendance, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	ListByEmployee(ctx context.Context, employeeID string, limit int) ([]*Attendance, error)
	ListByDate(ctx context.Context, date time.Time) ([]*Attendance, error)
	SetCheckOut(ctx context.Context, id string, checkOut time.Time) error
	UpdateStatus(ctx context.Context, id string, status string) error
	CountByStatusAndDate(ctx context.Context, status string, date time.Time) (int64, error)
}
