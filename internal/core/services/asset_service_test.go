package services

import (
	"context"
	"testing"
	"time"

	"activotrack/internal/adapters/persistence/models"
	"activotrack/internal/adapters/persistence/repositories"
	"activotrack/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetServiceCreate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAssetService(
		repositories.NewAssetRepository(db),
		repositories.NewLoanRepository(db),
		repositories.NewLookupRepository(db),
	)
	ctx := context.Background()

	asset, err := svc.Create(ctx, &CreateAssetInput{
		Name:         "  Laptop Dell  ",
		SerialNumber: " SN-001 ",
		StatusID:     models.StatusAvailable,
		TypeID:       1,
	})
	require.NoError(t, err)
	assert.Equal(t, "Laptop Dell", asset.Name)
	assert.Equal(t, "SN-001", asset.SerialNumber)
	assert.Equal(t, "disponible", asset.StatusName)
	assert.NotEmpty(t, asset.QRCode, "QR code is generated when omitted")
}

func TestAssetServiceCreateUnknownLookups(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAssetService(
		repositories.NewAssetRepository(db),
		repositories.NewLoanRepository(db),
		repositories.NewLookupRepository(db),
	)
	ctx := context.Background()

	_, err := svc.Create(ctx, &CreateAssetInput{
		Name:         "Laptop",
		SerialNumber: "SN-002",
		StatusID:     77,
		TypeID:       1,
	})
	assert.ErrorIs(t, err, ErrAssetStatusNotFound)

	_, err = svc.Create(ctx, &CreateAssetInput{
		Name:         "Laptop",
		SerialNumber: "SN-002",
		StatusID:     models.StatusAvailable,
		TypeID:       77,
	})
	assert.ErrorIs(t, err, ErrAssetTypeNotFound)
}

func TestAssetServiceDuplicateSerial(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAssetService(
		repositories.NewAssetRepository(db),
		repositories.NewLoanRepository(db),
		repositories.NewLookupRepository(db),
	)
	ctx := context.Background()

	_, err := svc.Create(ctx, &CreateAssetInput{
		Name:         "Laptop A",
		SerialNumber: "SN-DUP",
		StatusID:     models.StatusAvailable,
		TypeID:       1,
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &CreateAssetInput{
		Name:         "Laptop B",
		SerialNumber: "SN-DUP",
		StatusID:     models.StatusAvailable,
		TypeID:       1,
	})
	assert.ErrorIs(t, err, ErrSerialNumberTaken)
}

func TestAssetServiceUpdatePartial(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAssetService(
		repositories.NewAssetRepository(db),
		repositories.NewLoanRepository(db),
		repositories.NewLookupRepository(db),
	)
	ctx := context.Background()
	seeded := seedAsset(t, db, "Proyector", "SN-010", models.StatusAvailable)

	name := "Proyector Epson"
	updated, err := svc.Update(ctx, seeded.ID, &UpdateAssetInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Proyector Epson", updated.Name)
	assert.Equal(t, "SN-010", updated.SerialNumber, "untouched fields survive")

	_, err = svc.Update(ctx, 9999, &UpdateAssetInput{Name: &name})
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestAssetServiceListAnnotatesActiveLoan(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAssetService(
		repositories.NewAssetRepository(db),
		repositories.NewLoanRepository(db),
		repositories.NewLookupRepository(db),
	)
	ctx := context.Background()

	borrower := seedProfile(t, db, "Ana", 3)
	loaned := seedAsset(t, db, "Laptop prestada", "SN-020", models.StatusInUse)
	idle := seedAsset(t, db, "Laptop libre", "SN-021", models.StatusAvailable)
	seedLoan(t, db, loaned.ID, borrower.ID, time.Now().Add(48*time.Hour), time.Now())

	assets, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, assets, 2)

	byID := map[uint]*models.AssetResponse{}
	for _, a := range assets {
		byID[a.ID] = a
	}

	assert.Equal(t, models.StatusOnLoan, byID[loaned.ID].StatusID)
	assert.Equal(t, models.StatusOnLoanName, byID[loaned.ID].StatusName)
	require.NotNil(t, byID[loaned.ID].CurrentLoan)
	assert.Equal(t, domain.LoanStatusActive, byID[loaned.ID].CurrentLoan.DerivedStatus)

	assert.Equal(t, models.StatusAvailable, byID[idle.ID].StatusID)
	assert.Nil(t, byID[idle.ID].CurrentLoan)
}
