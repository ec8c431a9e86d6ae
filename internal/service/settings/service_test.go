package settings

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payflow-hq/payflow-backend-go/internal/domain/settings"
)

type fakeSettingsRepo struct {
	current *settings.Settings
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*settings.Settings, error) {
	if f.current == nil {
		f.current = settings.Defaults()
	}
	return f.current, nil
}

func (f *fakeSettingsRepo) Update(ctx context.Context, s *settings.Settings) error {
	f.current = s
	return nil
}

func TestUpdateSettings_MergesPartialRequest(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo)

	pointValue := decimal.NewFromInt(150)
	earlyPoints := 8

	updated, err := svc.UpdateSettings(context.Background(), &settings.UpdateSettingsRequest{
		PointValue:  &pointValue,
		EarlyPoints: &earlyPoints,
	})
	require.NoError(t, err)

	assert.True(t, updated.PointValue.Equal(pointValue))
	assert.Equal(t, 8, updated.EarlyPoints)

	// Untouched fields keep the defaults.
	defaults := settings.Defaults()
	assert.Equal(t, defaults.RaiseAfterYears, updated.RaiseAfterYears)
	assert.True(t, updated.RaisePercentage.Equal(defaults.RaisePercentage))
	assert.Equal(t, defaults.PaymentMethod, updated.PaymentMethod)
	assert.Equal(t, defaults.OnTimePoints, updated.OnTimePoints)
}

func TestUpdateSettings_RejectsNegativeValues(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo)

	negative := decimal.NewFromInt(-1)
	_, err := svc.UpdateSettings(context.Background(), &settings.UpdateSettingsRequest{PointValue: &negative})
	assert.Error(t, err)

	current, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.True(t, current.PointValue.Equal(settings.Defaults().PointValue))
}
