package http

import (
	"log/slog"
	"net/http"

	"github.com/payflow-hq/payflow-backend-go/internal/domain/dashboard"
	"github.com/payflow-hq/payflow-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Statistics(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// Statistics implements DashboardHandler.
func (h *DashboardHandlerImpl) Statistics(w http.ResponseWriter, r *http.Request) {
	resp, err := h.dashboardService.Statistics(r.Context())
	if err != nil {
		slog.Error("Statistics service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
