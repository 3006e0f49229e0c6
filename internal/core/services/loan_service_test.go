package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"activotrack/internal/adapters/persistence/models"
	"activotrack/internal/adapters/persistence/repositories"
	"activotrack/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newLoanService(db *gorm.DB) *LoanService {
	return NewLoanService(
		db,
		repositories.NewLoanRepository(db),
		repositories.NewAssetRepository(db),
		repositories.NewProfileRepository(db),
	)
}

func TestLoanServiceCreate(t *testing.T) {
	db := setupTestDB(t)
	svc := newLoanService(db)
	ctx := context.Background()

	borrower := seedProfile(t, db, "Ana", 3)
	asset := seedAsset(t, db, "Laptop", "SN-100", models.StatusAvailable)

	loan, err := svc.Create(ctx, &CreateLoanInput{
		AssetID:             asset.ID,
		UserID:              borrower.ID,
		ExpectedCheckinDate: time.Now().Add(72 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.LoanStatusActive, loan.DerivedStatus)
	assert.Equal(t, "Ana", loan.UserName)
	assert.Nil(t, loan.ActualCheckinDate)

	var stored models.Asset
	require.NoError(t, db.First(&stored, asset.ID).Error)
	assert.Equal(t, models.StatusInUse, stored.StatusID, "asset flips to in-use")
}

func TestLoanServiceCreateRejectsSecondActiveLoan(t *testing.T) {
	db := setupTestDB(t)
	svc := newLoanService(db)
	ctx := context.Background()

	borrower := seedProfile(t, db, "Ana", 3)
	other := seedProfile(t, db, "Luis", 3)
	asset := seedAsset(t, db, "Laptop", "SN-101", models.StatusAvailable)

	_, err := svc.Create(ctx, &CreateLoanInput{
		AssetID:             asset.ID,
		UserID:              borrower.ID,
		ExpectedCheckinDate: time.Now().Add(72 * time.Hour),
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &CreateLoanInput{
		AssetID:             asset.ID,
		UserID:              other.ID,
		ExpectedCheckinDate: time.Now().Add(72 * time.Hour),
	})
	assert.ErrorIs(t, err, ErrAssetAlreadyOnLoan)
}

func TestLoanServiceCreateUnknownReferences(t *testing.T) {
	db := setupTestDB(t)
	svc := newLoanService(db)
	ctx := context.Background()

	borrower := seedProfile(t, db, "Ana", 3)
	asset := seedAsset(t, db, "Laptop", "SN-102", models.StatusAvailable)

	_, err := svc.Create(ctx, &CreateLoanInput{
		AssetID:             9999,
		UserID:              borrower.ID,
		ExpectedCheckinDate: time.Now().Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrAssetNotFound)

	_, err = svc.Create(ctx, &CreateLoanInput{
		AssetID:             asset.ID,
		UserID:              9999,
		ExpectedCheckinDate: time.Now().Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrBorrowerNotFound)
}

func TestLoanServiceReturnClosesLoan(t *testing.T) {
	db := setupTestDB(t)
	svc := newLoanService(db)
	ctx := context.Background()

	borrower := seedProfile(t, db, "Ana", 3)
	asset := seedAsset(t, db, "Laptop", "SN-103", models.StatusAvailable)

	loan, err := svc.Create(ctx, &CreateLoanInput{
		AssetID:             asset.ID,
		UserID:              borrower.ID,
		ExpectedCheckinDate: time.Now().Add(72 * time.Hour),
	})
	require.NoError(t, err)

	returned, err := svc.Update(ctx, loan.ID, &UpdateLoanInput{Returned: true})
	require.NoError(t, err)
	assert.Equal(t, domain.LoanStatusReturned, returned.DerivedStatus)
	require.NotNil(t, returned.ActualCheckinDate)

	var stored models.Asset
	require.NoError(t, db.First(&stored, asset.ID).Error)
	assert.Equal(t, models.StatusAvailable, stored.StatusID, "asset is available again")

	// The asset can be loaned again once the previous loan closed
	_, err = svc.Create(ctx, &CreateLoanInput{
		AssetID:             asset.ID,
		UserID:              borrower.ID,
		ExpectedCheckinDate: time.Now().Add(72 * time.Hour),
	})
	assert.NoError(t, err)
}

func TestLoanServiceReturnTwice(t *testing.T) {
	db := setupTestDB(t)
	svc := newLoanService(db)
	ctx := context.Background()

	borrower := seedProfile(t, db, "Ana", 3)
	asset := seedAsset(t, db, "Laptop", "SN-104", models.StatusAvailable)

	loan, err := svc.Create(ctx, &CreateLoanInput{
		AssetID:             asset.ID,
		UserID:              borrower.ID,
		ExpectedCheckinDate: time.Now().Add(72 * time.Hour),
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, loan.ID, &UpdateLoanInput{Returned: true})
	require.NoError(t, err)

	_, err = svc.Update(ctx, loan.ID, &UpdateLoanInput{Returned: true})
	assert.ErrorIs(t, err, ErrLoanAlreadyClosed)
}

func TestLoanServiceListPagination(t *testing.T) {
	db := setupTestDB(t)
	svc := newLoanService(db)
	ctx := context.Background()

	borrower := seedProfile(t, db, "Ana", 3)
	base := time.Now().Add(-48 * time.Hour)
	for i := 0; i < 23; i++ {
		asset := seedAsset(t, db, fmt.Sprintf("Equipo %02d", i), fmt.Sprintf("SN-2%02d", i), models.StatusInUse)
		seedLoan(t, db, asset.ID, borrower.ID, time.Now().Add(72*time.Hour), base.Add(time.Duration(i)*time.Minute))
	}

	resp, err := svc.List(ctx, &ListLoansInput{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(23), resp.Pagination.Total)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.Equal(t, 3, resp.Pagination.Page)

	loans, ok := resp.Data.([]*models.LoanResponse)
	require.True(t, ok)
	assert.Len(t, loans, 3, "last page holds the remainder")
}

func TestLoanServiceListStatusFilter(t *testing.T) {
	db := setupTestDB(t)
	svc := newLoanService(db)
	ctx := context.Background()

	borrower := seedProfile(t, db, "Ana", 3)
	now := time.Now()

	overdueAsset := seedAsset(t, db, "Atrasado", "SN-300", models.StatusInUse)
	seedLoan(t, db, overdueAsset.ID, borrower.ID, now.Add(-24*time.Hour), now.Add(-72*time.Hour))

	activeAsset := seedAsset(t, db, "Vigente", "SN-301", models.StatusInUse)
	seedLoan(t, db, activeAsset.ID, borrower.ID, now.Add(24*time.Hour), now.Add(-time.Hour))

	resp, err := svc.List(ctx, &ListLoansInput{Page: 1, Limit: 10, Status: domain.LoanStatusOverdue})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Pagination.Total)

	loans := resp.Data.([]*models.LoanResponse)
	require.Len(t, loans, 1)
	assert.Equal(t, overdueAsset.ID, loans[0].AssetID)
	assert.Equal(t, domain.LoanStatusOverdue, loans[0].DerivedStatus)
}

func TestLoanServiceListSearch(t *testing.T) {
	db := setupTestDB(t)
	svc := newLoanService(db)
	ctx := context.Background()

	ana := seedProfile(t, db, "Ana García", 3)
	luis := seedProfile(t, db, "Luis Pérez", 3)
	now := time.Now()

	laptop := seedAsset(t, db, "Laptop HP", "SN-400", models.StatusInUse)
	seedLoan(t, db, laptop.ID, ana.ID, now.Add(24*time.Hour), now.Add(-2*time.Hour))

	projector := seedAsset(t, db, "Proyector", "SN-401", models.StatusInUse)
	seedLoan(t, db, projector.ID, luis.ID, now.Add(24*time.Hour), now.Add(-time.Hour))

	resp, err := svc.List(ctx, &ListLoansInput{Page: 1, Limit: 10, Search: "García"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Pagination.Total)

	loans := resp.Data.([]*models.LoanResponse)
	require.Len(t, loans, 1)
	assert.Equal(t, "Ana García", loans[0].UserName)
}
