package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/payflow-hq/payflow-backend-go/internal/domain/settings"
	"github.com/payflow-hq/payflow-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type SettingsHandlerImpl struct {
	settingsService settings.SettingsService
}

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &SettingsHandlerImpl{settingsService: settingsService}
}

func toSettingsResponse(s *settings.Settings) *settings.SettingsResponse {
	return &settings.SettingsResponse{
		RaiseAfterYears: s.RaiseAfterYears,
		RaisePercentage: s.RaisePercentage,
		PointValue:      s.PointValue,
		PaymentMethod:   s.PaymentMethod,
		EarlyPoints:     s.EarlyPoints,
		OnTimePoints:    s.OnTimePoints,
	}
}

// Get implements SettingsHandler.
func (h *SettingsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.settingsService.GetSettings(r.Context())
	if err != nil {
		slog.Error("Get settings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, toSettingsResponse(s))
}

// Update implements SettingsHandler.
func (h *SettingsHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateSettingsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update settings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	s, err := h.settingsService.UpdateSettings(r.Context(), &req)
	if err != nil {
		slog.Error("Update settings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Settings updated", toSettingsResponse(s))
}
