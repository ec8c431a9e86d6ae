package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/payflow-hq/payflow-backend-go/internal/config"
	"github.com/payflow-hq/payflow-backend-go/internal/domain/auth"
	"github.com/payflow-hq/payflow-backend-go/internal/domain/employee"
	"github.com/payflow-hq/payflow-backend-go/internal/pkg/database"
	"github.com/payflow-hq/payflow-backend-go/internal/pkg/jwt"
	"github.com/payflow-hq/payflow-backend-go/internal/repository/postgresql"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

type AuthServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	auth.JWTRepository
	jwt.Service
	admin config.AdminConfig
}

func NewAuthService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	jwtRepo auth.JWTRepository,
	jwtService jwt.Service,
	admin config.AdminConfig,
) auth.AuthService {
	return &AuthServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepo,
		JWTRepository:      jwtRepo,
		Service:            jwtService,
		admin:              admin,
	}
}

// issueSession generates the token pair and persists the refresh token
// in one transaction.
func (a *AuthServiceImpl) issueSession(ctx context.Context, subject, name, role string, employeeID *string, sessionReq auth.SessionTrackingRequest) (*auth.LoginResult, error) {
	resp := &auth.LoginResponse{Role: role}
	result := &auth.LoginResult{Response: resp}

	err := postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		resp.AccessToken, resp.ExpiresAt, err = a.Service.GenerateAccessToken(subject, name, role, employeeID)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}

		result.RefreshToken, result.RefreshExpiresAt, err = a.Service.GenerateRefreshToken(subject)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		err = a.JWTRepository.CreateRefreshToken(txCtx, subject, result.RefreshToken, result.RefreshExpiresAt, sessionReq)
		if err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Login implements auth.AuthService. The admin pair is matched locally
// before any employee lookup happens, so the admin path never touches
// the employees table.
func (a *AuthServiceImpl) Login(ctx context.Context, req *auth.LoginRequest, sessionReq auth.SessionTrackingRequest) (*auth.LoginResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.Username == a.admin.Username && req.Password == a.admin.Password {
		result, err := a.issueSession(ctx, a.admin.Username, a.admin.Name, RoleAdmin, nil, sessionReq)
		if err != nil {
			return nil, err
		}
		result.Response.User = &auth.SessionUser{
			ID:   a.admin.Username,
			Name: a.admin.Name,
			Role: RoleAdmin,
		}
		return result, nil
	}

	emp, err := a.EmployeeRepository.GetByEmail(ctx, req.Username)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get employee by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	// Accounts still on the provisioned password get a scoped token
	// instead of a session. Discarding the token cancels the pending
	// change and nothing is persisted.
	if emp.MustChangePassword {
		token, expiresIn, err := a.Service.GeneratePasswordChangeToken(emp.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to create password change token: %w", err)
		}
		return &auth.LoginResult{
			Response: &auth.LoginResponse{
				RequiresPasswordChange:  true,
				PasswordChangeToken:     token,
				PasswordChangeExpiresIn: expiresIn,
			},
		}, nil
	}

	result, err := a.issueSession(ctx, emp.ID, emp.Name, RoleEmployee, &emp.ID, sessionReq)
	if err != nil {
		return nil, err
	}
	result.Response.User = &auth.SessionUser{
		ID:    emp.ID,
		Name:  emp.Name,
		Email: emp.Email,
		Role:  RoleEmployee,
	}
	return result, nil
}

// ChangePassword implements auth.AuthService. The request is validated
// locally before the token or the database is consulted, so a short or
// mismatched password never leaves a trace.
func (a *AuthServiceImpl) ChangePassword(ctx context.Context, req *auth.ChangePasswordRequest, sessionReq auth.SessionTrackingRequest) (*auth.LoginResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	employeeID, err := a.Service.ValidatePasswordChangeToken(req.Token)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !emp.MustChangePassword {
		return nil, auth.ErrPasswordChangeNotPending
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		return a.EmployeeRepository.UpdatePassword(txCtx, emp.ID, string(hash), false)
	})
	if err != nil {
		return nil, err
	}

	result, err := a.issueSession(ctx, emp.ID, emp.Name, RoleEmployee, &emp.ID, sessionReq)
	if err != nil {
		return nil, err
	}
	result.Response.User = &auth.SessionUser{
		ID:    emp.ID,
		Name:  emp.Name,
		Email: emp.Email,
		Role:  RoleEmployee,
	}
	return result, nil
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string, sessionReq auth.SessionTrackingRequest) (*auth.LoginResult, error) {
	token, err := jwtauth.VerifyToken(a.Service.JWTAuth(), refreshToken)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return nil, auth.ErrInvalidToken
	}
	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return nil, auth.ErrInvalidToken
	}

	isRevoked, err := a.JWTRepository.IsRefreshTokenRevoked(ctx, refreshToken)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}
	if isRevoked {
		return nil, auth.ErrRefreshTokenRevoked
	}

	if subject == a.admin.Username {
		result, err := a.issueSession(ctx, a.admin.Username, a.admin.Name, RoleAdmin, nil, sessionReq)
		if err != nil {
			return nil, err
		}
		rotateErr := a.JWTRepository.RevokeRefreshToken(ctx, refreshToken)
		if rotateErr != nil {
			return nil, fmt.Errorf("failed to rotate refresh token: %w", rotateErr)
		}
		return result, nil
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, subject)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	result, err := a.issueSession(ctx, emp.ID, emp.Name, RoleEmployee, &emp.ID, sessionReq)
	if err != nil {
		return nil, err
	}
	if err := a.JWTRepository.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}
	return result, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	err := postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		isRevoked, err := a.JWTRepository.IsRefreshTokenRevoked(txCtx, refreshToken)
		if err != nil {
			return fmt.Errorf("failed to check if refresh token is revoked: %w", err)
		}
		if !isRevoked {
			if err := a.JWTRepository.RevokeRefreshToken(txCtx, refreshToken); err != nil {
				return fmt.Errorf("failed to revoke refresh token: %w", err)
			}
		}
		return nil
	})

	return err
}
