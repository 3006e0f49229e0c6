package repositories

import (
	"context"
	"time"

	"activotrack/internal/adapters/persistence/models"
	"activotrack/internal/core/domain"

	"gorm.io/gorm"
)

// GormLoanRepository handles loan data access
type GormLoanRepository struct {
	db *gorm.DB
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db *gorm.DB) LoanRepository {
	return &GormLoanRepository{db: db}
}

// GetByID gets a loan by ID with relations
func (r *GormLoanRepository) GetByID(ctx context.Context, id uint) (*models.Loan, error) {
	var loan models.Loan
	err := r.db.WithContext(ctx).
		Preload("Asset").
		Preload("User").
		First(&loan, id).Error
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

// List lists loans with pagination, free-text search over the asset and
// borrower, and an optional derived-status filter. The filter is resolved in
// SQL against the same date rules the derivation routine applies so the page
// totals stay consistent.
func (r *GormLoanRepository) List(ctx context.Context, filter LoanListFilter) ([]*models.Loan, int64, error) {
	var loans []*models.Loan
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Loan{}).
		Joins("LEFT JOIN assets ON loans.asset_id = assets.id").
		Joins("LEFT JOIN profiles ON loans.user_id = profiles.id")

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			"assets.name LIKE ? OR assets.serial_number LIKE ? OR profiles.full_name LIKE ?",
			like, like, like,
		)
	}

	if filter.Status != "" {
		query = applyDerivedStatusFilter(query, filter.Status, time.Now())
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Asset").
		Preload("User").
		Order("loans.created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&loans).Error

	return loans, total, err
}

func applyDerivedStatusFilter(query *gorm.DB, status string, now time.Time) *gorm.DB {
	switch status {
	case domain.LoanStatusReturned:
		return query.Where("loans.actual_checkin_date IS NOT NULL")
	case domain.LoanStatusOverdue:
		return query.Where("loans.actual_checkin_date IS NULL AND loans.expected_checkin_date < ?", now)
	case domain.LoanStatusActive:
		return query.Where(
			"loans.actual_checkin_date IS NULL AND loans.expected_checkin_date >= ? AND (loans.status = '' OR loans.status IN ?)",
			now, []string{domain.LoanStatusPending, domain.LoanStatusActive},
		)
	default:
		return query.Where("loans.actual_checkin_date IS NULL AND loans.status = ?", status)
	}
}

// ListRecent lists the most recently created loans
func (r *GormLoanRepository) ListRecent(ctx context.Context, limit int) ([]*models.Loan, error) {
	var loans []*models.Loan
	err := r.db.WithContext(ctx).
		Preload("Asset").
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&loans).Error
	return loans, err
}

// ActiveForAsset returns the asset's open loan, or gorm.ErrRecordNotFound
func (r *GormLoanRepository) ActiveForAsset(ctx context.Context, assetID uint) (*models.Loan, error) {
	var loan models.Loan
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("asset_id = ? AND actual_checkin_date IS NULL AND status IN ?", assetID, domain.ActiveLoanStatuses).
		First(&loan).Error
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

// ActiveByAsset returns all open loans keyed by asset ID
func (r *GormLoanRepository) ActiveByAsset(ctx context.Context) (map[uint]*models.Loan, error) {
	var loans []*models.Loan
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("actual_checkin_date IS NULL AND status IN ?", domain.ActiveLoanStatuses).
		Find(&loans).Error
	if err != nil {
		return nil, err
	}

	byAsset := make(map[uint]*models.Loan, len(loans))
	for _, loan := range loans {
		byAsset[loan.AssetID] = loan
	}
	return byAsset, nil
}

// CountActive counts open loans
func (r *GormLoanRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Loan{}).
		Where("actual_checkin_date IS NULL AND status IN ?", domain.ActiveLoanStatuses).
		Count(&count).Error
	return count, err
}

// Update updates a loan
func (r *GormLoanRepository) Update(ctx context.Context, loan *models.Loan) error {
	return r.db.WithContext(ctx).Save(loan).Error
}
