package config

import (
	"errors"
	"log"

	"activotrack/internal/adapters/persistence/models"
	"activotrack/internal/pkg/password"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedMasterData seeds the lookup tables and the bootstrap admin account.
// Every step is idempotent; reruns leave existing rows alone.
func SeedMasterData(db *gorm.DB, cfg *Config) error {
	if err := seedRoles(db); err != nil {
		return err
	}
	if err := seedAssetStatuses(db); err != nil {
		return err
	}
	if err := seedAssetTypes(db); err != nil {
		return err
	}
	if err := seedAdmin(db, cfg); err != nil {
		return err
	}

	log.Println("Master data seeded")
	return nil
}

func seedRoles(db *gorm.DB) error {
	roles := []models.Role{
		{ID: models.RoleAdminID, Name: "admin", Permissions: datatypes.JSON(`{"all": true}`)},
		{ID: models.RoleTechnicianID, Name: "tecnico", Permissions: datatypes.JSON(`{"tickets": ["read", "update"]}`)},
		{ID: 3, Name: "usuario", Permissions: datatypes.JSON(`{"tickets": ["read"]}`)},
	}

	for _, role := range roles {
		var existing models.Role
		err := db.Where("id = ?", role.ID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&role).Error; err != nil {
				return err
			}
			log.Printf("   Created role: %s", role.Name)
		}
	}
	return nil
}

func seedAssetStatuses(db *gorm.DB) error {
	statuses := []models.AssetStatus{
		{ID: models.StatusAvailable, Name: "disponible"},
		{ID: models.StatusInUse, Name: "en uso"},
		{ID: models.StatusMaintenance, Name: "mantenimiento"},
		{ID: models.StatusRetired, Name: "retirado"},
	}

	for _, status := range statuses {
		var existing models.AssetStatus
		err := db.Where("id = ?", status.ID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&status).Error; err != nil {
				return err
			}
			log.Printf("   Created asset_status: %s", status.Name)
		}
	}
	return nil
}

func seedAssetTypes(db *gorm.DB) error {
	types := []models.AssetType{
		{Name: "equipo de cómputo"},
		{Name: "audiovisual"},
		{Name: "mobiliario"},
		{Name: "herramienta"},
	}

	for _, assetType := range types {
		var existing models.AssetType
		err := db.Where("name = ?", assetType.Name).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&assetType).Error; err != nil {
				return err
			}
			log.Printf("   Created asset_type: %s", assetType.Name)
		}
	}
	return nil
}

func seedAdmin(db *gorm.DB, cfg *Config) error {
	var existing models.Account
	err := db.Where("email = ?", cfg.Admin.Email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := password.Hash(cfg.Admin.Password)
	if err != nil {
		return err
	}

	account := models.Account{
		ID:       uuid.NewString(),
		Email:    cfg.Admin.Email,
		Password: hashed,
	}
	if err := db.Create(&account).Error; err != nil {
		return err
	}

	profile := models.Profile{
		AccountID: account.ID,
		FullName:  cfg.Admin.FullName,
		Email:     cfg.Admin.Email,
		RoleID:    models.RoleAdminID,
		Active:    true,
	}
	if err := db.Create(&profile).Error; err != nil {
		return err
	}

	log.Printf("   Created bootstrap admin: %s", cfg.Admin.Email)
	return nil
}
