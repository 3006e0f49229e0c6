package services

import (
	"context"
	"errors"

	"activotrack/internal/adapters/identity"
	"activotrack/internal/adapters/persistence/models"
	"activotrack/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Auth errors
var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrProfileInactive    = errors.New("profile is inactive")
	ErrNotAdmin           = errors.New("admin role required")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService handles session business logic on top of the identity provider
type AuthService struct {
	provider    *identity.Provider
	profileRepo repositories.ProfileRepository
}

// NewAuthService creates a new auth service
func NewAuthService(provider *identity.Provider, profileRepo repositories.ProfileRepository) *AuthService {
	return &AuthService{
		provider:    provider,
		profileRepo: profileRepo,
	}
}

// TokenInput represents password-grant input
type TokenInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenOutput represents an issued token plus its profile
type TokenOutput struct {
	AccessToken string                  `json:"access_token"`
	User        *models.ProfileResponse `json:"user"`
}

// IssueToken verifies credentials against the identity provider and returns
// an access token with the caller's profile.
func (s *AuthService) IssueToken(ctx context.Context, input *TokenInput) (*TokenOutput, error) {
	token, account, err := s.provider.IssueToken(ctx, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	profile, err := s.profileRepo.GetByAccountID(ctx, account.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	return &TokenOutput{
		AccessToken: token,
		User:        profile.ToResponse(),
	}, nil
}

// AdminSession loads the caller's profile with its role and rejects unless
// the profile holds the admin role. Used by login and /auth/me.
func (s *AuthService) AdminSession(ctx context.Context, accountID string) (*models.ProfileResponse, error) {
	profile, err := s.profileRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	if !profile.Active {
		return nil, ErrProfileInactive
	}
	if profile.RoleID != models.RoleAdminID {
		return nil, ErrNotAdmin
	}

	return profile.ToResponse(), nil
}
