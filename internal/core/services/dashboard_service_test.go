package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"activotrack/internal/adapters/persistence/models"
	"activotrack/internal/adapters/persistence/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDashboardService(db *gorm.DB) *DashboardService {
	return NewDashboardService(
		repositories.NewAssetRepository(db),
		repositories.NewLoanRepository(db),
		repositories.NewTicketRepository(db),
	)
}

func TestDashboardServiceGetStats(t *testing.T) {
	db := setupTestDB(t)
	svc := newDashboardService(db)
	ctx := context.Background()

	borrower := seedProfile(t, db, "Ana", 3)

	// 3 available, 1 in use, 2 retired
	for i := 0; i < 3; i++ {
		seedAsset(t, db, fmt.Sprintf("Libre %d", i), fmt.Sprintf("SN-6%02d", i), models.StatusAvailable)
	}
	inUse := seedAsset(t, db, "En uso", "SN-610", models.StatusInUse)
	seedAsset(t, db, "Retirado A", "SN-620", models.StatusRetired)
	retired := seedAsset(t, db, "Retirado B", "SN-621", models.StatusRetired)

	now := time.Now()
	seedLoan(t, db, inUse.ID, borrower.ID, now.Add(24*time.Hour), now.Add(-time.Hour))
	closed := seedLoan(t, db, retired.ID, borrower.ID, now.Add(-24*time.Hour), now.Add(-48*time.Hour))
	closedAt := now.Add(-24 * time.Hour)
	require.NoError(t, db.Model(closed).Update("actual_checkin_date", closedAt).Error)

	tickets := []models.Ticket{
		{Title: "T1", Description: "d", Status: models.TicketStatusOpen, Priority: "alta", ReportedBy: borrower.ID},
		{Title: "T2", Description: "d", Status: models.TicketStatusOpen, Priority: "baja", ReportedBy: borrower.ID},
		{Title: "T3", Description: "d", Status: models.TicketStatusResolved, Priority: "baja", ReportedBy: borrower.ID},
	}
	require.NoError(t, db.Create(&tickets).Error)

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), stats.TotalAssets)
	assert.Equal(t, int64(3), stats.AvailableAssets)
	assert.Equal(t, int64(1), stats.InUseAssets)
	assert.Equal(t, int64(0), stats.MaintenanceAssets)
	assert.Equal(t, int64(2), stats.RetiredAssets)
	assert.Equal(t, int64(1), stats.LoanedAssets, "closed loans do not count")
	assert.Equal(t, int64(2), stats.TicketsByStatus[models.TicketStatusOpen])
	assert.Equal(t, int64(1), stats.TicketsByStatus[models.TicketStatusResolved])
}

func TestDashboardServiceAssetStatusChart(t *testing.T) {
	db := setupTestDB(t)
	svc := newDashboardService(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		seedAsset(t, db, fmt.Sprintf("Libre %d", i), fmt.Sprintf("SN-7%02d", i), models.StatusAvailable)
	}
	seedAsset(t, db, "Mantenimiento", "SN-710", models.StatusMaintenance)

	slices, err := svc.AssetStatusChart(ctx)
	require.NoError(t, err)
	require.Len(t, slices, 2)

	// Sorted by count descending
	assert.Equal(t, "disponible", slices[0].Name)
	assert.Equal(t, int64(3), slices[0].Count)
	assert.Equal(t, "mantenimiento", slices[1].Name)
	assert.Equal(t, int64(1), slices[1].Count)
}

func TestDashboardServiceRecentActivity(t *testing.T) {
	db := setupTestDB(t)
	svc := newDashboardService(db)
	ctx := context.Background()

	borrower := seedProfile(t, db, "Ana", 3)
	now := time.Now()

	asset := seedAsset(t, db, "Laptop", "SN-800", models.StatusInUse)
	seedLoan(t, db, asset.ID, borrower.ID, now.Add(24*time.Hour), now.Add(-2*time.Hour))

	ticket := models.Ticket{
		Title:       "Pantalla rota",
		Description: "d",
		Status:      models.TicketStatusOpen,
		Priority:    "alta",
		ReportedBy:  borrower.ID,
		CreatedAt:   now.Add(-time.Hour),
	}
	require.NoError(t, db.Create(&ticket).Error)

	items, err := svc.RecentActivity(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Newest first: the ticket was created after the loan
	assert.Equal(t, "ticket", items[0].Type)
	assert.Equal(t, "Ticket: Pantalla rota", items[0].Description)
	assert.Equal(t, "loan", items[1].Type)
	assert.Equal(t, "Préstamo de Laptop a Ana", items[1].Description)
	assert.NotEmpty(t, items[0].TimeAgo)
}

func TestDashboardServiceRecentActivityCap(t *testing.T) {
	db := setupTestDB(t)
	svc := newDashboardService(db)
	ctx := context.Background()

	borrower := seedProfile(t, db, "Ana", 3)
	now := time.Now()

	for i := 0; i < 7; i++ {
		asset := seedAsset(t, db, fmt.Sprintf("Equipo %d", i), fmt.Sprintf("SN-9%02d", i), models.StatusInUse)
		seedLoan(t, db, asset.ID, borrower.ID, now.Add(24*time.Hour), now.Add(-time.Duration(i)*time.Minute))
	}
	for i := 0; i < 7; i++ {
		ticket := models.Ticket{
			Title:       fmt.Sprintf("Ticket %d", i),
			Description: "d",
			Status:      models.TicketStatusOpen,
			Priority:    "baja",
			ReportedBy:  borrower.ID,
			CreatedAt:   now.Add(-time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(&ticket).Error)
	}

	items, err := svc.RecentActivity(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 10, "feed fetches five of each and caps at ten")

	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].Timestamp.After(items[i-1].Timestamp), "feed is newest first")
	}
}
