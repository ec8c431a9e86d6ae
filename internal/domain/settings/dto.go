package settings

import (
	"github.com/shopspring/decimal"

	"github.com/payflow-hq/payflow-backend-go/internal/pkg/validator"
)

type UpdateSettingsRequest struct {
	RaiseAfterYears *int             `json:"raise_after_years,omitempty"`
	RaisePercentage *decimal.Decimal `json:"raise_percentage,omitempty"`
	PointValue      *decimal.Decimal `json:"point_value,omitempty"`
	PaymentMethod   *string          `json:"payment_method,omitempty"`
	EarlyPoints     *int             `json:"early_points,omitempty"`
	OnTimePoints    *int             `json:"on_time_points,omitempty"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.RaiseAfterYears != nil && *r.RaiseAfterYears < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "raise_after_years",
			Message: "raise_after_years must not be negative",
		})
	}
	if r.RaisePercentage != nil && r.RaisePercentage.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "raise_percentage",
			Message: "raise_percentage must not be negative",
		})
	}
	if r.PointValue != nil && r.PointValue.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "point_value",
			Message: "point_value must not be negative",
		})
	}
	if r.PaymentMethod != nil && validator.IsEmpty(*r.PaymentMethod) {
		errs = append(errs, validator.ValidationError{
			Field:   "payment_method",
			Message: "payment_method must not be empty",
		})
	}
	if r.EarlyPoints != nil && *r.EarlyPoints < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "early_points",
			Message: "early_points must not be negative",
		})
	}
	if r.OnTimePoints != nil && *r.OnTimePoints < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "on_time_points",
			Message: "on_time_points must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SettingsResponse struct {
	RaiseAfterYears int             `json:"raise_after_years"`
	RaisePercentage decimal.Decimal `json:"raise_percentage"`
	PointValue      decimal.Decimal `json:"point_value"`
	PaymentMethod   string          `json:"payment_method"`
	EarlyPoints     int             `json:"early_points"`
	OnTimePoints    int             `json:"on_time_points"`
}
