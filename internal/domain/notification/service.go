package notification

import "context"

type NotificationService interface {
	ListForEmployee(ctx context.Context, employeeID string) ([]*Notification, error)
}
