package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/stepperslife/events-service/internal/auth"
	"github.com/stepperslife/events-service/internal/config"
	"github.com/stepperslife/events-service/internal/domain"
	"github.com/stepperslife/events-service/internal/repository"
	apperrors "github.com/stepperslife/events-service/pkg/util/errorutil"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
	admins     domain.AdminList
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
		admins:     cfg.Admin.AdminList(),
	}
}

// TokenManager exposes the token manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// RegisterUser creates a new platform account. The requested role is
// validated against the platform role set; accounts on the admin allow-list
// are promoted to admin regardless of the requested role.
func (s *AuthService) RegisterUser(ctx context.Context, name, email, password, role string) (*domain.User, string, time.Time, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("email required", nil)
	}
	if role == "" {
		role = string(domain.UserRoleUser)
	}
	if !domain.IsUserRole(role) {
		return nil, "", time.Time{}, apperrors.NewValidationError("unknown role", map[string]any{"role": role})
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", time.Time{}, apperrors.NewConflict("email already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	userRole := domain.UserRole(role)
	if s.admins.Contains(email) {
		userRole = domain.UserRoleAdmin
	}
	// Non-admins may not self-register as admin.
	if userRole == domain.UserRoleAdmin && !s.admins.Contains(email) {
		userRole = domain.UserRoleUser
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         userRole,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Login authenticates an account and issues a token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, err
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	// Promote allow-listed accounts whose stored role predates the list.
	if s.admins.Contains(user.Email) && user.Role != domain.UserRoleAdmin {
		user.Role = domain.UserRoleAdmin
		if err := s.users.Update(ctx, user); err != nil {
			return nil, "", time.Time{}, apperrors.MapError(err)
		}
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}
