package services

import (
	"context"
	"testing"

	"activotrack/internal/adapters/persistence/models"
	"activotrack/internal/adapters/persistence/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTicketService(db *gorm.DB) *TicketService {
	return NewTicketService(
		repositories.NewTicketRepository(db),
		repositories.NewAssetRepository(db),
		repositories.NewProfileRepository(db),
	)
}

func TestTicketServiceCreate(t *testing.T) {
	db := setupTestDB(t)
	svc := newTicketService(db)
	ctx := context.Background()

	reporter := seedProfile(t, db, "Ana", 3)
	asset := seedAsset(t, db, "Laptop", "SN-500", models.StatusAvailable)

	ticket, err := svc.Create(ctx, &CreateTicketInput{
		Title:       "  Pantalla rota  ",
		Description: "No enciende la pantalla",
		Priority:    "alta",
		AssetID:     &asset.ID,
		ReportedBy:  reporter.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Pantalla rota", ticket.Title)
	assert.Equal(t, models.TicketStatusOpen, ticket.Status)
	assert.Equal(t, "Ana", ticket.ReportedByName)
	assert.Equal(t, "Laptop", ticket.AssetName)
}

func TestTicketServiceCreateUnknownReferences(t *testing.T) {
	db := setupTestDB(t)
	svc := newTicketService(db)
	ctx := context.Background()

	reporter := seedProfile(t, db, "Ana", 3)

	_, err := svc.Create(ctx, &CreateTicketInput{
		Title:       "Falla",
		Description: "desc",
		Priority:    "baja",
		ReportedBy:  9999,
	})
	assert.ErrorIs(t, err, ErrReporterNotFound)

	missing := uint(9999)
	_, err = svc.Create(ctx, &CreateTicketInput{
		Title:       "Falla",
		Description: "desc",
		Priority:    "baja",
		AssetID:     &missing,
		ReportedBy:  reporter.ID,
	})
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestTicketServiceAssignmentRequiresTechnician(t *testing.T) {
	db := setupTestDB(t)
	svc := newTicketService(db)
	ctx := context.Background()

	reporter := seedProfile(t, db, "Ana", 3)
	plainUser := seedProfile(t, db, "Luis", 3)
	technician := seedProfile(t, db, "Marta", models.RoleTechnicianID)

	ticket, err := svc.Create(ctx, &CreateTicketInput{
		Title:       "Teclado dañado",
		Description: "desc",
		Priority:    "media",
		ReportedBy:  reporter.ID,
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, ticket.ID, &UpdateTicketInput{AssignedTo: &plainUser.ID})
	assert.ErrorIs(t, err, ErrAssigneeNotTechnician)

	missing := uint(9999)
	_, err = svc.Update(ctx, ticket.ID, &UpdateTicketInput{AssignedTo: &missing})
	assert.ErrorIs(t, err, ErrAssigneeNotFound)

	updated, err := svc.Update(ctx, ticket.ID, &UpdateTicketInput{AssignedTo: &technician.ID})
	require.NoError(t, err)
	require.NotNil(t, updated.AssignedTo)
	assert.Equal(t, technician.ID, *updated.AssignedTo)
	assert.Equal(t, "Marta", updated.AssignedToName)
}

func TestTicketServiceAssignmentValidatedAlone(t *testing.T) {
	db := setupTestDB(t)
	svc := newTicketService(db)
	ctx := context.Background()

	reporter := seedProfile(t, db, "Ana", 3)
	plainUser := seedProfile(t, db, "Luis", 3)

	ticket, err := svc.Create(ctx, &CreateTicketInput{
		Title:       "Mouse perdido",
		Description: "desc",
		Priority:    "baja",
		ReportedBy:  reporter.ID,
	})
	require.NoError(t, err)

	// A bad assignee rejects the whole update even when other fields are valid
	status := models.TicketStatusInProgress
	_, err = svc.Update(ctx, ticket.ID, &UpdateTicketInput{
		Status:     &status,
		AssignedTo: &plainUser.ID,
	})
	assert.ErrorIs(t, err, ErrAssigneeNotTechnician)

	unchanged, err := svc.Get(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TicketStatusOpen, unchanged.Status)
}

func TestTicketServiceUpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := newTicketService(db)
	ctx := context.Background()

	reporter := seedProfile(t, db, "Ana", 3)

	ticket, err := svc.Create(ctx, &CreateTicketInput{
		Title:       "Cargador",
		Description: "desc",
		Priority:    "baja",
		ReportedBy:  reporter.ID,
	})
	require.NoError(t, err)

	status := models.TicketStatusResolved
	updated, err := svc.Update(ctx, ticket.ID, &UpdateTicketInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.TicketStatusResolved, updated.Status)

	_, err = svc.Update(ctx, 9999, &UpdateTicketInput{Status: &status})
	assert.ErrorIs(t, err, ErrTicketNotFound)
}
