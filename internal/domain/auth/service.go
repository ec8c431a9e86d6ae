package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req *LoginRequest, sessionReq SessionTrackingRequest) (*LoginResult, error)
	ChangePassword(ctx context.Context, req *ChangePasswordRequest, sessionReq SessionTrackingRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string, sessionReq SessionTrackingRequest) (*LoginResult, error)
	Logout(ctx context.Context, refreshToken string) error
}

// JWTRepository persists refresh token state for revocation checks.
type JWTRepository interface {
	CreateRefreshToken(ctx context.Context, subject, token string, expiresAt int64, sessionReq SessionTrackingRequest) error
	IsRefreshTokenRevoked(ctx context.Context, token string) (bool, error)
	RevokeRefreshToken(ctx context.Context, token string) error
	DeleteExpiredTokens(ctx context.Context) (int64, error)
}
