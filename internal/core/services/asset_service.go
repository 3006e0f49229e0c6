package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"activotrack/internal/adapters/persistence/models"
	"activotrack/internal/adapters/persistence/repositories"
	"activotrack/internal/core/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Asset service errors
var (
	ErrAssetNotFound       = errors.New("asset not found")
	ErrAssetStatusNotFound = errors.New("asset status not found")
	ErrAssetTypeNotFound   = errors.New("asset type not found")
	ErrSerialNumberTaken   = errors.New("serial number already registered")
)

// AssetService handles asset business logic
type AssetService struct {
	assetRepo  repositories.AssetRepository
	loanRepo   repositories.LoanRepository
	lookupRepo repositories.LookupRepository
}

// NewAssetService creates a new asset service
func NewAssetService(
	assetRepo repositories.AssetRepository,
	loanRepo repositories.LoanRepository,
	lookupRepo repositories.LookupRepository,
) *AssetService {
	return &AssetService{
		assetRepo:  assetRepo,
		loanRepo:   loanRepo,
		lookupRepo: lookupRepo,
	}
}

// CreateAssetInput represents create asset input
type CreateAssetInput struct {
	Name         string `json:"name"`
	SerialNumber string `json:"serial_number"`
	StatusID     uint   `json:"status_id"`
	TypeID       uint   `json:"type_id"`
	QRCode       string `json:"qr_code"`
}

// UpdateAssetInput represents partial asset update input
type UpdateAssetInput struct {
	Name         *string `json:"name"`
	SerialNumber *string `json:"serial_number"`
	StatusID     *uint   `json:"status_id"`
	TypeID       *uint   `json:"type_id"`
	QRCode       *string `json:"qr_code"`
}

// List lists all assets annotated with their current loan. Assets holding an
// open loan report the virtual on-loan status.
func (s *AssetService) List(ctx context.Context) ([]*models.AssetResponse, error) {
	assets, err := s.assetRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	activeLoans, err := s.loanRepo.ActiveByAsset(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	responses := make([]*models.AssetResponse, len(assets))
	for i, asset := range assets {
		responses[i] = s.annotate(asset, activeLoans[asset.ID], now)
	}
	return responses, nil
}

// Get gets a single asset annotated with its current loan
func (s *AssetService) Get(ctx context.Context, id uint) (*models.AssetResponse, error) {
	asset, err := s.assetRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}

	loan, err := s.loanRepo.ActiveForAsset(ctx, id)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return s.annotate(asset, loan, time.Now()), nil
}

func (s *AssetService) annotate(asset *models.Asset, loan *models.Loan, now time.Time) *models.AssetResponse {
	resp := asset.ToResponse()
	if loan != nil {
		loanResp := loan.ToResponse()
		loanResp.DerivedStatus = domain.DeriveLoanStatus(loan.ActualCheckinDate, loan.ExpectedCheckinDate, loan.Status, now)
		resp.CurrentLoan = loanResp
		resp.StatusID = models.StatusOnLoan
		resp.StatusName = models.StatusOnLoanName
	}
	return resp
}

// Create validates and creates an asset
func (s *AssetService) Create(ctx context.Context, input *CreateAssetInput) (*models.AssetResponse, error) {
	if err := s.checkStatus(ctx, input.StatusID); err != nil {
		return nil, err
	}
	if err := s.checkType(ctx, input.TypeID); err != nil {
		return nil, err
	}

	qrCode := strings.TrimSpace(input.QRCode)
	if qrCode == "" {
		qrCode = uuid.NewString()
	}

	asset := &models.Asset{
		Name:         strings.TrimSpace(input.Name),
		SerialNumber: strings.TrimSpace(input.SerialNumber),
		StatusID:     input.StatusID,
		TypeID:       input.TypeID,
		QRCode:       qrCode,
	}

	if err := s.assetRepo.Create(ctx, asset); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSerialNumberTaken
		}
		return nil, err
	}

	return s.Get(ctx, asset.ID)
}

// Update applies a partial update to an asset
func (s *AssetService) Update(ctx context.Context, id uint, input *UpdateAssetInput) (*models.AssetResponse, error) {
	asset, err := s.assetRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}

	if input.Name != nil {
		asset.Name = strings.TrimSpace(*input.Name)
	}
	if input.SerialNumber != nil {
		asset.SerialNumber = strings.TrimSpace(*input.SerialNumber)
	}
	if input.StatusID != nil {
		if err := s.checkStatus(ctx, *input.StatusID); err != nil {
			return nil, err
		}
		asset.StatusID = *input.StatusID
	}
	if input.TypeID != nil {
		if err := s.checkType(ctx, *input.TypeID); err != nil {
			return nil, err
		}
		asset.TypeID = *input.TypeID
	}
	if input.QRCode != nil {
		asset.QRCode = strings.TrimSpace(*input.QRCode)
	}

	// Preloaded lookups would be stale after the update
	asset.Status = nil
	asset.Type = nil

	if err := s.assetRepo.Update(ctx, asset); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSerialNumberTaken
		}
		return nil, err
	}

	return s.Get(ctx, asset.ID)
}

func (s *AssetService) checkStatus(ctx context.Context, statusID uint) error {
	exists, err := s.lookupRepo.StatusExists(ctx, statusID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrAssetStatusNotFound
	}
	return nil
}

func (s *AssetService) checkType(ctx context.Context, typeID uint) error {
	exists, err := s.lookupRepo.TypeExists(ctx, typeID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrAssetTypeNotFound
	}
	return nil
}
