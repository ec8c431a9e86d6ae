package notification

import (
	"context"
	"fmt"

	"github.com/payflow-hq/payflow-backend-go/internal/domain/attendance"
	"github.com/payflow-hq/payflow-backend-go/internal/domain/notification"
)

// Notifications are derived from recent attendance on every read, so
// there is nothing to store or mark as seen.
const recentRecordLimit = 5

type NotificationServiceImpl struct {
	attendance.AttendanceRepository
}

func NewNotificationService(attendanceRepo attendance.AttendanceRepository) notification.NotificationService {
	return &NotificationServiceImpl{AttendanceRepository: attendanceRepo}
}

// ListForEmployee implements notification.NotificationService.
func (s *NotificationServiceImpl) ListForEmployee(ctx context.Context, employeeID string) ([]*notification.Notification, error) {
	records, err := s.AttendanceRepository.ListByEmployee(ctx, employeeID, recentRecordLimit)
	if err != nil {
		return nil, err
	}

	notifications := make([]*notification.Notification, 0, len(records))
	for _, record := range records {
		date := record.Date.Format("2006-01-02")

		var kind, message string
		switch record.Status {
		case attendance.StatusEarly:
			kind = "bonus"
			message = fmt.Sprintf("You earned %d bonus points for checking in early on %s.", record.PointsEarned, date)
		case attendance.StatusPresent:
			kind = "points"
			message = fmt.Sprintf("You earned %d points for checking in on time on %s.", record.PointsEarned, date)
		case attendance.StatusLate:
			kind = "late"
			message = fmt.Sprintf("You were marked late on %s.", date)
		default:
			continue
		}

		notifications = append(notifications, &notification.Notification{
			ID:      record.ID,
			Type:    kind,
			Message: message,
			Date:    date,
		})
	}

	return notifications, nil
}
