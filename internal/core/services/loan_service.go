package services

import (
	"context"
	"errors"
	"time"

	"activotrack/internal/adapters/persistence/models"
	"activotrack/internal/adapters/persistence/repositories"
	"activotrack/internal/core/domain"
	"activotrack/internal/pkg/pagination"

	"gorm.io/gorm"
)

// Loan service errors
var (
	ErrLoanNotFound       = errors.New("loan not found")
	ErrLoanAlreadyClosed  = errors.New("loan already returned")
	ErrBorrowerNotFound   = errors.New("borrower profile not found")
	ErrAssetAlreadyOnLoan = errors.New("asset already has an active loan")
)

// LoanService handles loan business logic. Creation runs inside a store
// transaction so the one-active-loan-per-asset rule cannot be raced past by
// concurrent requests.
type LoanService struct {
	db          *gorm.DB
	loanRepo    repositories.LoanRepository
	assetRepo   repositories.AssetRepository
	profileRepo repositories.ProfileRepository
}

// NewLoanService creates a new loan service
func NewLoanService(
	db *gorm.DB,
	loanRepo repositories.LoanRepository,
	assetRepo repositories.AssetRepository,
	profileRepo repositories.ProfileRepository,
) *LoanService {
	return &LoanService{
		db:          db,
		loanRepo:    loanRepo,
		assetRepo:   assetRepo,
		profileRepo: profileRepo,
	}
}

// ListLoansInput represents list loans input
type ListLoansInput struct {
	Page   int
	Limit  int
	Search string
	Status string
}

// CreateLoanInput represents create loan input
type CreateLoanInput struct {
	AssetID             uint       `json:"asset_id"`
	UserID              uint       `json:"user_id"`
	CheckoutDate        *time.Time `json:"checkout_date"`
	ExpectedCheckinDate time.Time  `json:"expected_checkin_date"`
	Notes               string     `json:"notes"`
}

// UpdateLoanInput represents partial loan update input. Returned marks the
// loan as checked in.
type UpdateLoanInput struct {
	ExpectedCheckinDate *time.Time `json:"expected_checkin_date"`
	Notes               *string    `json:"notes"`
	Returned            bool       `json:"returned"`
}

// List lists loans with pagination, search and derived-status filter
func (s *LoanService) List(ctx context.Context, input *ListLoansInput) (*pagination.Response, error) {
	params := pagination.Normalize(input.Page, input.Limit)

	loans, total, err := s.loanRepo.List(ctx, repositories.LoanListFilter{
		Offset: params.Offset,
		Limit:  params.Limit,
		Search: input.Search,
		Status: input.Status,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	responses := make([]*models.LoanResponse, len(loans))
	for i, loan := range loans {
		responses[i] = toLoanResponse(loan, now)
	}

	return pagination.NewResponse(responses, params, total), nil
}

// Get gets a loan by ID
func (s *LoanService) Get(ctx context.Context, id uint) (*models.LoanResponse, error) {
	loan, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLoanNotFound
		}
		return nil, err
	}
	return toLoanResponse(loan, time.Now()), nil
}

// Create validates references and creates the loan. The active-loan check
// and the insert share one transaction; the asset is flipped to in-use.
func (s *LoanService) Create(ctx context.Context, input *CreateLoanInput) (*models.LoanResponse, error) {
	if _, err := s.assetRepo.GetByID(ctx, input.AssetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}
	if _, err := s.profileRepo.GetByID(ctx, input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBorrowerNotFound
		}
		return nil, err
	}

	checkout := time.Now()
	if input.CheckoutDate != nil {
		checkout = *input.CheckoutDate
	}

	loan := &models.Loan{
		AssetID:             input.AssetID,
		UserID:              input.UserID,
		CheckoutDate:        checkout,
		ExpectedCheckinDate: input.ExpectedCheckinDate,
		Status:              domain.LoanStatusActive,
		Notes:               input.Notes,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var open int64
		if err := tx.Model(&models.Loan{}).
			Where("asset_id = ? AND actual_checkin_date IS NULL AND status IN ?", input.AssetID, domain.ActiveLoanStatuses).
			Count(&open).Error; err != nil {
			return err
		}
		if open > 0 {
			return ErrAssetAlreadyOnLoan
		}

		if err := tx.Create(loan).Error; err != nil {
			return err
		}

		return tx.Model(&models.Asset{}).
			Where("id = ?", input.AssetID).
			Update("status_id", models.StatusInUse).Error
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, loan.ID)
}

// Update applies a partial update to a loan. A return closes the loan and
// makes the asset available again.
func (s *LoanService) Update(ctx context.Context, id uint, input *UpdateLoanInput) (*models.LoanResponse, error) {
	loan, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLoanNotFound
		}
		return nil, err
	}

	// Avoid re-saving preloaded relations
	loan.Asset = nil
	loan.User = nil

	if input.ExpectedCheckinDate != nil {
		loan.ExpectedCheckinDate = *input.ExpectedCheckinDate
	}
	if input.Notes != nil {
		loan.Notes = *input.Notes
	}

	if input.Returned {
		if loan.ActualCheckinDate != nil {
			return nil, ErrLoanAlreadyClosed
		}
		now := time.Now()
		loan.ActualCheckinDate = &now
		loan.Status = domain.LoanStatusReturned

		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(loan).Error; err != nil {
				return err
			}
			return tx.Model(&models.Asset{}).
				Where("id = ?", loan.AssetID).
				Update("status_id", models.StatusAvailable).Error
		})
	} else {
		err = s.loanRepo.Update(ctx, loan)
	}
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, loan.ID)
}

func toLoanResponse(loan *models.Loan, now time.Time) *models.LoanResponse {
	resp := loan.ToResponse()
	resp.DerivedStatus = domain.DeriveLoanStatus(loan.ActualCheckinDate, loan.ExpectedCheckinDate, loan.Status, now)
	return resp
}
