package repositories

import (
	"context"

	"activotrack/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// GormLookupRepository handles read access to the lookup tables
type GormLookupRepository struct {
	db *gorm.DB
}

// NewLookupRepository creates a new lookup repository
func NewLookupRepository(db *gorm.DB) LookupRepository {
	return &GormLookupRepository{db: db}
}

// ListRoles lists all roles
func (r *GormLookupRepository) ListRoles(ctx context.Context) ([]*models.Role, error) {
	var roles []*models.Role
	err := r.db.WithContext(ctx).Order("id ASC").Find(&roles).Error
	return roles, err
}

// RoleExists checks whether a role ID exists
func (r *GormLookupRepository) RoleExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Role{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ListAssetStatuses lists all asset statuses
func (r *GormLookupRepository) ListAssetStatuses(ctx context.Context) ([]*models.AssetStatus, error) {
	var statuses []*models.AssetStatus
	err := r.db.WithContext(ctx).Order("id ASC").Find(&statuses).Error
	return statuses, err
}

// StatusExists checks whether an asset status ID exists
func (r *GormLookupRepository) StatusExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AssetStatus{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ListAssetTypes lists all asset types
func (r *GormLookupRepository) ListAssetTypes(ctx context.Context) ([]*models.AssetType, error) {
	var types []*models.AssetType
	err := r.db.WithContext(ctx).Order("id ASC").Find(&types).Error
	return types, err
}

// TypeExists checks whether an asset type ID exists
func (r *GormLookupRepository) TypeExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AssetType{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
