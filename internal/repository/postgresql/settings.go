package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/payflow-hq/payflow-backend-go/internal/domain/settings"
	"github.com/payflow-hq/payflow-backend-go/internal/pkg/database"
)

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get implements settings.SettingsRepository. When the table is empty
// the default row is inserted and returned.
func (r *settingsRepository) Get(ctx context.Context) (*settings.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, raise_after_years, raise_percentage, point_value,
			   payment_method, early_points, on_time_points, updated_at
		FROM company_settings
		LIMIT 1
	`

	var s settings.Settings
	err := q.QueryRow(ctx, query).Scan(
		&s.ID, &s.RaiseAfterYears, &s.RaisePercentage, &s.PointValue,
		&s.PaymentMethod, &s.EarlyPoints, &s.OnTimePoints, &s.UpdatedAt,
	)
	if err == nil {
		return &s, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	defaults := settings.Defaults()
	insert := `
		INSERT INTO company_settings (
			raise_after_years, raise_percentage, point_value,
			payment_method, early_points, on_time_points
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, updated_at
	`
	err = q.QueryRow(ctx, insert,
		defaults.RaiseAfterYears,
		defaults.RaisePercentage,
		defaults.PointValue,
		defaults.PaymentMethod,
		defaults.EarlyPoints,
		defaults.OnTimePoints,
	).Scan(&defaults.ID, &defaults.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to seed default settings: %w", err)
	}

	return defaults, nil
}

// Update implements settings.SettingsRepository.
func (r *settingsRepository) Update(ctx context.Context, s *settings.Settings) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE company_settings
		SET raise_after_years = $2, raise_percentage = $3, point_value = $4,
			payment_method = $5, early_points = $6, on_time_points = $7,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		s.ID,
		s.RaiseAfterYears,
		s.RaisePercentage,
		s.PointValue,
		s.PaymentMethod,
		s.EarlyPoints,
		s.OnTimePoints,
	).Scan(&s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}

	return nil
}
