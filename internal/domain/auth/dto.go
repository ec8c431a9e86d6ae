package auth

import (
	"github.com/payflow-hq/payflow-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SessionTrackingRequest carries the client metadata stored alongside
// each refresh token.
type SessionTrackingRequest struct {
	UserAgent string
	IPAddress string
}

type SessionUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	Role        string       `json:"role,omitempty"`
	AccessToken string       `json:"access_token,omitempty"`
	ExpiresAt   int64        `json:"expires_at,omitempty"`
	User        *SessionUser `json:"user,omitempty"`

	// Set instead of the session fields when the account still has
	// its provisioned password.
	RequiresPasswordChange  bool   `json:"requires_password_change,omitempty"`
	PasswordChangeToken     string `json:"password_change_token,omitempty"`
	PasswordChangeExpiresIn int    `json:"password_change_expires_in,omitempty"`
}

// LoginResult carries the refresh token alongside the response body so
// the handler can set it as a cookie without it ever entering the JSON
// payload.
type LoginResult struct {
	Response         *LoginResponse
	RefreshToken     string
	RefreshExpiresAt int64
}

type ChangePasswordRequest struct {
	Token           string `json:"token"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (r *ChangePasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Token) {
		errs = append(errs, validator.ValidationError{
			Field:   "token",
			Message: "token is required",
		})
	}
	if len(r.NewPassword) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "new_password",
			Message: "password must be at least 8 characters",
		})
	}
	if r.NewPassword != r.ConfirmPassword {
		errs = append(errs, validator.ValidationError{
			Field:   "confirm_password",
			Message: "passwords do not match",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
