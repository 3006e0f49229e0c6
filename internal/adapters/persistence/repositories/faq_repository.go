package repositories

import (
	"context"

	"activotrack/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// GormFAQRepository handles FAQ data access
type GormFAQRepository struct {
	db *gorm.DB
}

// NewFAQRepository creates a new FAQ repository
func NewFAQRepository(db *gorm.DB) FAQRepository {
	return &GormFAQRepository{db: db}
}

// Create creates a new FAQ
func (r *GormFAQRepository) Create(ctx context.Context, faq *models.FAQ) error {
	return r.db.WithContext(ctx).Create(faq).Error
}

// GetByID gets a FAQ by ID
func (r *GormFAQRepository) GetByID(ctx context.Context, id uint) (*models.FAQ, error) {
	var faq models.FAQ
	if err := r.db.WithContext(ctx).First(&faq, id).Error; err != nil {
		return nil, err
	}
	return &faq, nil
}

// List lists all FAQs
func (r *GormFAQRepository) List(ctx context.Context) ([]*models.FAQ, error) {
	var faqs []*models.FAQ
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&faqs).Error
	return faqs, err
}

// Update updates a FAQ
func (r *GormFAQRepository) Update(ctx context.Context, faq *models.FAQ) error {
	return r.db.WithContext(ctx).Save(faq).Error
}

// Delete soft deletes a FAQ
func (r *GormFAQRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.FAQ{}, id).Error
}
