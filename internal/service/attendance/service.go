package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/payflow-hq/payflow-backend-go/internal/domain/attendance"
	"github.com/payflow-hq/payflow-backend-go/internal/domain/employee"
	"github.com/payflow-hq/payflow-backend-go/internal/domain/settings"
	"github.com/payflow-hq/payflow-backend-go/internal/pkg/database"
	"github.com/payflow-hq/payflow-backend-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	employee.EmployeeRepository
	settings.SettingsRepository
	loc *time.Location
	now func() time.Time
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	settingsRepo settings.SettingsRepository,
	loc *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		SettingsRepository:   settingsRepo,
		loc:                  loc,
		now:                  time.Now,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("15:04:05")
	return &format
}

// dateOnly truncates t to its calendar day in UTC, which is how the
// date column is stored.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID string) (*attendance.CheckInResponse, error) {
	nowLocal := s.now().In(s.loc)
	today := dateOnly(nowLocal)

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil && !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return nil, fmt.Errorf("failed to look up today's record: %w", err)
	}
	if existing != nil {
		return nil, attendance.ErrAlreadyCheckedIn
	}

	if !CanCheckIn(nowLocal) {
		return nil, attendance.ErrCheckInWindowClosed
	}

	cfg, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	status := Classify(nowLocal)
	points := PointsFor(status, cfg.EarlyPoints, cfg.OnTimePoints)

	checkIn := nowLocal
	record := &attendance.Attendance{
		EmployeeID:   employeeID,
		Date:         today,
		Status:       status,
		CheckIn:      &checkIn,
		IsEarly:      status == attendance.StatusEarly,
		IsOnTime:     status == attendance.StatusPresent,
		PointsEarned: points,
	}

	// The record and the points balance move together or not at all.
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		if err := s.AttendanceRepository.Create(txCtx, record); err != nil {
			return err
		}
		if points > 0 {
			return s.EmployeeRepository.AddPoints(txCtx, employeeID, points)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &attendance.CheckInResponse{
		ID:           record.ID,
		Date:         today.Format("2006-01-02"),
		Status:       status,
		CheckIn:      checkIn.Format("15:04:05"),
		PointsEarned: points,
		TotalPoints:  emp.Points + points,
	}, nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID string) (*attendance.CheckOutResponse, error) {
	nowLocal := s.now().In(s.loc)
	today := dateOnly(nowLocal)

	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return nil, attendance.ErrNotCheckedIn
		}
		return nil, fmt.Errorf("failed to look up today's record: %w", err)
	}
	if record.CheckIn == nil {
		return nil, attendance.ErrNotCheckedIn
	}
	if record.CheckOut != nil {
		return nil, attendance.ErrAlreadyCheckedOut
	}

	if !CanCheckOut(nowLocal) {
		return nil, attendance.ErrCheckOutWindowClosed
	}

	checkOut := nowLocal
	if err := s.AttendanceRepository.SetCheckOut(ctx, record.ID, checkOut); err != nil {
		return nil, err
	}

	// Re-read so the response reflects what was stored.
	stored, err := s.AttendanceRepository.GetByID(ctx, record.ID)
	if err != nil {
		return nil, err
	}

	return &attendance.CheckOutResponse{
		ID:       stored.ID,
		Date:     today.Format("2006-01-02"),
		Status:   stored.Status,
		CheckIn:  stored.CheckIn.Format("15:04:05"),
		CheckOut: stored.CheckOut.Format("15:04:05"),
	}, nil
}

// TodayStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) TodayStatus(ctx context.Context, employeeID string) (*attendance.TodayStatusResponse, error) {
	nowLocal := s.now().In(s.loc)
	today := dateOnly(nowLocal)

	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil && !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return nil, fmt.Errorf("failed to look up today's record: %w", err)
	}

	resp := &attendance.TodayStatusResponse{
		Date:     today.Format("2006-01-02"),
		DayState: record.DayState(),
	}

	if record != nil {
		resp.Status = &record.Status
		resp.CheckIn = timePtrToString(record.CheckIn)
		resp.CheckOut = timePtrToString(record.CheckOut)
		resp.PointsEarned = record.PointsEarned
	}

	resp.CanCheckIn = record == nil && CanCheckIn(nowLocal)
	resp.CanCheckOut = record.DayState() == attendance.DayStateClockedIn && CanCheckOut(nowLocal)

	return resp, nil
}

func (s *AttendanceServiceImpl) toResponse(record *attendance.Attendance) *attendance.AttendanceResponse {
	return &attendance.AttendanceResponse{
		ID:           record.ID,
		EmployeeID:   record.EmployeeID,
		EmployeeName: record.EmployeeName,
		Date:         record.Date.Format("2006-01-02"),
		Status:       record.Status,
		DayState:     record.DayState(),
		CheckIn:      timePtrToString(record.CheckIn),
		CheckOut:     timePtrToString(record.CheckOut),
		PointsEarned: record.PointsEarned,
	}
}

// ListForEmployee implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListForEmployee(ctx context.Context, employeeID string, limit int) ([]*attendance.AttendanceResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 30
	}

	records, err := s.AttendanceRepository.ListByEmployee(ctx, employeeID, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, s.toResponse(record))
	}

	return responses, nil
}

// ListForDate implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListForDate(ctx context.Context, date string) ([]*attendance.AttendanceResponse, error) {
	day := dateOnly(s.now().In(s.loc))
	if date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", date, err)
		}
		day = parsed
	}

	records, err := s.AttendanceRepository.ListByDate(ctx, day)
	if err != nil {
		return nil, err
	}

	responses := make([]*attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, s.toResponse(record))
	}

	return responses, nil
}

// BulkMark implements attendance.AttendanceService. Existing records
// get their status replaced without earning points again; points are
// only awarded when a record is created. This is the only path that
// can store a late status.
func (s *AttendanceServiceImpl) BulkMark(ctx context.Context, req *attendance.BulkMarkRequest) (*attendance.BulkMarkResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, err)
	}

	cfg, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	marked, updated := 0, 0
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		for _, entry := range req.Entries {
			existing, err := s.AttendanceRepository.GetByEmployeeAndDate(txCtx, entry.EmployeeID, day)
			if err != nil && !errors.Is(err, attendance.ErrAttendanceNotFound) {
				return err
			}
			if existing != nil {
				if existing.Status != entry.Status {
					if err := s.AttendanceRepository.UpdateStatus(txCtx, existing.ID, entry.Status); err != nil {
						return err
					}
				}
				updated++
				continue
			}

			points := PointsFor(entry.Status, cfg.EarlyPoints, cfg.OnTimePoints)
			record := &attendance.Attendance{
				EmployeeID:   entry.EmployeeID,
				Date:         day,
				Status:       entry.Status,
				IsEarly:      entry.Status == attendance.StatusEarly,
				IsOnTime:     entry.Status == attendance.StatusPresent,
				PointsEarned: points,
			}
			if err := s.AttendanceRepository.Create(txCtx, record); err != nil {
				return err
			}
			if points > 0 {
				if err := s.EmployeeRepository.AddPoints(txCtx, entry.EmployeeID, points); err != nil {
					return err
				}
			}
			marked++
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &attendance.BulkMarkResponse{
		Date:    req.Date,
		Marked:  marked,
		Updated: updated,
	}, nil
}
