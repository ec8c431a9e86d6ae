package settings

import (
	"context"

	"github.com/payflow-hq/payflow-backend-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	settings.SettingsRepository
}

func NewSettingsService(settingsRepo settings.SettingsRepository) settings.SettingsService {
	return &SettingsServiceImpl{SettingsRepository: settingsRepo}
}

// GetSettings implements settings.SettingsService.
func (s *SettingsServiceImpl) GetSettings(ctx context.Context) (*settings.Settings, error) {
	return s.SettingsRepository.Get(ctx)
}

// UpdateSettings implements settings.SettingsService. Only the fields
// present in the request change; the rest keep their current values.
func (s *SettingsServiceImpl) UpdateSettings(ctx context.Context, req *settings.UpdateSettingsRequest) (*settings.Settings, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return nil, err
	}

	if req.RaiseAfterYears != nil {
		current.RaiseAfterYears = *req.RaiseAfterYears
	}
	if req.RaisePercentage != nil {
		current.RaisePercentage = *req.RaisePercentage
	}
	if req.PointValue != nil {
		current.PointValue = *req.PointValue
	}
	if req.PaymentMethod != nil {
		current.PaymentMethod = *req.PaymentMethod
	}
	if req.EarlyPoints != nil {
		current.EarlyPoints = *req.EarlyPoints
	}
	if req.OnTimePoints != nil {
		current.OnTimePoints = *req.OnTimePoints
	}

	if err := s.SettingsRepository.Update(ctx, current); err != nil {
		return nil, err
	}

	return current, nil
}
