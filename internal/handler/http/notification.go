package http

import (
	"log/slog"
	"net/http"

	"github.com/payflow-hq/payflow-backend-go/internal/domain/notification"
	"github.com/payflow-hq/payflow-backend-go/internal/handler/http/response"
)

type NotificationHandler interface {
	MyNotifications(w http.ResponseWriter, r *http.Request)
}

type NotificationHandlerImpl struct {
	notificationService notification.NotificationService
}

func NewNotificationHandler(notificationService notification.NotificationService) NotificationHandler {
	return &NotificationHandlerImpl{notificationService: notificationService}
}

// MyNotifications implements NotificationHandler.
func (h *NotificationHandlerImpl) MyNotifications(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Employee identity missing from token")
		return
	}

	notifications, err := h.notificationService.ListForEmployee(r.Context(), employeeID)
	if err != nil {
		slog.Error("MyNotifications service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, notifications)
}
