package settings

import "context"

type SettingsRepository interface {
	// Get returns the settings row, seeding defaults when none exists.
	Get(ctx context.Context) (*Settings, error)
	Update(ctx context.Context, s *Settings) error
}
