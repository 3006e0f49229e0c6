package services

import (
	"fmt"
	"testing"
	"time"

	"activotrack/internal/adapters/persistence/models"
	"activotrack/internal/core/domain"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	statuses := []models.AssetStatus{
		{ID: models.StatusAvailable, Name: "disponible"},
		{ID: models.StatusInUse, Name: "en uso"},
		{ID: models.StatusMaintenance, Name: "mantenimiento"},
		{ID: models.StatusRetired, Name: "retirado"},
	}
	if err := db.Create(&statuses).Error; err != nil {
		t.Fatalf("seed statuses: %v", err)
	}

	types := []models.AssetType{
		{ID: 1, Name: "laptop"},
		{ID: 2, Name: "proyector"},
	}
	if err := db.Create(&types).Error; err != nil {
		t.Fatalf("seed types: %v", err)
	}

	roles := []models.Role{
		{ID: models.RoleAdminID, Name: "admin"},
		{ID: models.RoleTechnicianID, Name: "tecnico"},
		{ID: 3, Name: "usuario"},
	}
	if err := db.Create(&roles).Error; err != nil {
		t.Fatalf("seed roles: %v", err)
	}

	return db
}

func seedProfile(t *testing.T, db *gorm.DB, name string, roleID uint) *models.Profile {
	t.Helper()

	profile := &models.Profile{
		AccountID: fmt.Sprintf("acct-%s-%s", t.Name(), name),
		FullName:  name,
		Email:     fmt.Sprintf("%s@%s.test", name, t.Name()),
		RoleID:    roleID,
		Active:    true,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("seed profile %s: %v", name, err)
	}
	return profile
}

func seedAsset(t *testing.T, db *gorm.DB, name, serial string, statusID uint) *models.Asset {
	t.Helper()

	asset := &models.Asset{
		Name:         name,
		SerialNumber: serial,
		StatusID:     statusID,
		TypeID:       1,
		QRCode:       "qr-" + serial,
	}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("seed asset %s: %v", serial, err)
	}
	return asset
}

func seedLoan(t *testing.T, db *gorm.DB, assetID, userID uint, expected time.Time, createdAt time.Time) *models.Loan {
	t.Helper()

	loan := &models.Loan{
		AssetID:             assetID,
		UserID:              userID,
		CheckoutDate:        createdAt,
		ExpectedCheckinDate: expected,
		Status:              domain.LoanStatusActive,
		CreatedAt:           createdAt,
	}
	if err := db.Create(loan).Error; err != nil {
		t.Fatalf("seed loan: %v", err)
	}
	return loan
}
