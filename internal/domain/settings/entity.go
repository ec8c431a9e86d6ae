package settings

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings is the single company-wide payroll configuration row.
type Settings struct {
	ID              string          `json:"id"`
	RaiseAfterYears int             `json:"raise_after_years"`
	RaisePercentage decimal.Decimal `json:"raise_percentage"`
	PointValue      decimal.Decimal `json:"point_value"`
	PaymentMethod   string          `json:"payment_method"`
	EarlyPoints     int             `json:"early_points"`
	OnTimePoints    int             `json:"on_time_points"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Defaults returns the settings seeded for a fresh installation.
func Defaults() *Settings {
	return &Settings{
		RaiseAfterYears: 2,
		RaisePercentage: decimal.NewFromFloat(10.0),
		PointValue:      decimal.NewFromFloat(100.0),
		PaymentMethod:   "Bank Transfer",
		EarlyPoints:     5,
		OnTimePoints:    3,
	}
}
