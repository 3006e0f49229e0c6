package repositories

import (
	"context"

	"activotrack/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// GormAssetRepository handles asset data access
type GormAssetRepository struct {
	db *gorm.DB
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *gorm.DB) AssetRepository {
	return &GormAssetRepository{db: db}
}

// Create creates a new asset
func (r *GormAssetRepository) Create(ctx context.Context, asset *models.Asset) error {
	return r.db.WithContext(ctx).Create(asset).Error
}

// GetByID gets an asset by ID with its lookups
func (r *GormAssetRepository) GetByID(ctx context.Context, id uint) (*models.Asset, error) {
	var asset models.Asset
	err := r.db.WithContext(ctx).Preload("Status").Preload("Type").First(&asset, id).Error
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// List lists all assets with their lookups
func (r *GormAssetRepository) List(ctx context.Context) ([]*models.Asset, error) {
	var assets []*models.Asset
	err := r.db.WithContext(ctx).
		Preload("Status").
		Preload("Type").
		Order("created_at DESC").
		Find(&assets).Error
	return assets, err
}

// Update updates an asset
func (r *GormAssetRepository) Update(ctx context.Context, asset *models.Asset) error {
	return r.db.WithContext(ctx).Save(asset).Error
}

// Delete soft deletes an asset
func (r *GormAssetRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Asset{}, id).Error
}

// CountByStatus counts assets with the given stored status
func (r *GormAssetRepository) CountByStatus(ctx context.Context, statusID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Asset{}).Where("status_id = ?", statusID).Count(&count).Error
	return count, err
}

// Count counts all assets
func (r *GormAssetRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Asset{}).Count(&count).Error
	return count, err
}
