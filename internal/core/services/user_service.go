package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"activotrack/internal/adapters/identity"
	"activotrack/internal/adapters/persistence/models"
	"activotrack/internal/adapters/persistence/repositories"
	"activotrack/internal/pkg/password"

	"gorm.io/gorm"
)

// User service errors
var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrRoleNotFound       = errors.New("role not found")
	ErrWeakPassword       = errors.New("password does not meet requirements")
)

// UserService handles user management: an identity account plus a profile
// row, created and removed together.
type UserService struct {
	provider    *identity.Provider
	profileRepo repositories.ProfileRepository
	lookupRepo  repositories.LookupRepository
}

// NewUserService creates a new user service
func NewUserService(
	provider *identity.Provider,
	profileRepo repositories.ProfileRepository,
	lookupRepo repositories.LookupRepository,
) *UserService {
	return &UserService{
		provider:    provider,
		profileRepo: profileRepo,
		lookupRepo:  lookupRepo,
	}
}

// CreateUserInput represents create user input
type CreateUserInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	RoleID   uint   `json:"role_id"`
}

// UpdateUserInput represents update user input
type UpdateUserInput struct {
	FullName *string `json:"full_name"`
	RoleID   *uint   `json:"role_id"`
	Active   *bool   `json:"active"`
}

// List lists all users
func (s *UserService) List(ctx context.Context) ([]*models.ProfileResponse, error) {
	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.ProfileResponse, len(profiles))
	for i, profile := range profiles {
		responses[i] = profile.ToResponse()
	}
	return responses, nil
}

// Get gets a user by profile ID
func (s *UserService) Get(ctx context.Context, id uint) (*models.ProfileResponse, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile.ToResponse(), nil
}

// Create performs the two-step creation: identity account first, then the
// profile row. If the profile insert fails the account is deleted again as a
// best-effort compensation; a failed compensation leaves an orphan account
// and is only logged.
func (s *UserService) Create(ctx context.Context, input *CreateUserInput) (*models.ProfileResponse, error) {
	if !password.Validate(input.Password) {
		return nil, ErrWeakPassword
	}

	exists, err := s.lookupRepo.RoleExists(ctx, input.RoleID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRoleNotFound
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))

	taken, err := s.profileRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailAlreadyExists
	}

	account, err := s.provider.CreateAccount(ctx, email, input.Password)
	if err != nil {
		if errors.Is(err, identity.ErrEmailTaken) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	profile := &models.Profile{
		AccountID: account.ID,
		FullName:  strings.TrimSpace(input.FullName),
		Email:     email,
		RoleID:    input.RoleID,
		Active:    true,
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		if cleanupErr := s.provider.DeleteAccount(ctx, account.ID); cleanupErr != nil {
			log.Printf("orphaned identity account %s: cleanup failed: %v", account.ID, cleanupErr)
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return s.Get(ctx, profile.ID)
}

// Update updates a user's profile
func (s *UserService) Update(ctx context.Context, id uint, input *UpdateUserInput) (*models.ProfileResponse, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	if input.FullName != nil {
		profile.FullName = strings.TrimSpace(*input.FullName)
	}
	if input.RoleID != nil {
		exists, err := s.lookupRepo.RoleExists(ctx, *input.RoleID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrRoleNotFound
		}
		profile.RoleID = *input.RoleID
	}
	if input.Active != nil {
		profile.Active = *input.Active
	}

	// Avoid re-saving the preloaded role
	profile.Role = nil

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

// Delete removes the profile, then the identity account (best effort)
func (s *UserService) Delete(ctx context.Context, id uint) error {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfileNotFound
		}
		return err
	}

	if err := s.profileRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.provider.DeleteAccount(ctx, profile.AccountID); err != nil {
		log.Printf("orphaned identity account %s: delete failed: %v", profile.AccountID, err)
	}
	return nil
}
