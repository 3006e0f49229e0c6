package repositories

import (
	"context"

	"activotrack/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// GormProfileRepository handles profile data access
type GormProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &GormProfileRepository{db: db}
}

// Create creates a new profile
func (r *GormProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// GetByID gets a profile by ID with its role
func (r *GormProfileRepository) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).Preload("Role").First(&profile, id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByAccountID gets a profile by its identity account ID
func (r *GormProfileRepository) GetByAccountID(ctx context.Context, accountID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).Preload("Role").Where("account_id = ?", accountID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByEmail gets a profile by email
func (r *GormProfileRepository) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).Preload("Role").Where("email = ?", email).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// List lists all profiles with their roles
func (r *GormProfileRepository) List(ctx context.Context) ([]*models.Profile, error) {
	var profiles []*models.Profile
	err := r.db.WithContext(ctx).Preload("Role").Order("full_name ASC").Find(&profiles).Error
	return profiles, err
}

// ListByRole lists profiles holding a given role
func (r *GormProfileRepository) ListByRole(ctx context.Context, roleID uint) ([]*models.Profile, error) {
	var profiles []*models.Profile
	err := r.db.WithContext(ctx).
		Preload("Role").
		Where("role_id = ? AND active = ?", roleID, true).
		Order("full_name ASC").
		Find(&profiles).Error
	return profiles, err
}

// Update updates a profile
func (r *GormProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

// Delete soft deletes a profile
func (r *GormProfileRepository) Delete(ctx context.Context, id uint) error {
	// Unscoped, so the email's unique index does not keep blocking
	// re-registration after the profile is gone.
	return r.db.WithContext(ctx).Unscoped().Delete(&models.Profile{}, id).Error
}

// ExistsByEmail checks if a profile with the email exists
func (r *GormProfileRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Profile{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}
