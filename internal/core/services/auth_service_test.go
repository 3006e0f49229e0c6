package services

import (
	"context"
	"testing"

	"activotrack/internal/adapters/identity"
	"activotrack/internal/adapters/persistence/models"
	"activotrack/internal/adapters/persistence/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T, db *gorm.DB) (*AuthService, *UserService) {
	t.Helper()
	provider := identity.NewProvider(db, testConfig())
	profileRepo := repositories.NewProfileRepository(db)
	return NewAuthService(provider, profileRepo),
		NewUserService(provider, profileRepo, repositories.NewLookupRepository(db))
}

func TestAuthServiceIssueToken(t *testing.T) {
	db := setupTestDB(t)
	authSvc, userSvc := newAuthService(t, db)
	ctx := context.Background()

	_, err := userSvc.Create(ctx, &CreateUserInput{
		Email:    "admin@example.com",
		Password: "supersecret",
		FullName: "Admin",
		RoleID:   models.RoleAdminID,
	})
	require.NoError(t, err)

	out, err := authSvc.IssueToken(ctx, &TokenInput{Email: "admin@example.com", Password: "supersecret"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, "admin@example.com", out.User.Email)

	_, err = authSvc.IssueToken(ctx, &TokenInput{Email: "admin@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = authSvc.IssueToken(ctx, &TokenInput{Email: "nobody@example.com", Password: "supersecret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthServiceAdminSession(t *testing.T) {
	db := setupTestDB(t)
	authSvc, userSvc := newAuthService(t, db)
	ctx := context.Background()

	admin, err := userSvc.Create(ctx, &CreateUserInput{
		Email:    "admin@example.com",
		Password: "supersecret",
		FullName: "Admin",
		RoleID:   models.RoleAdminID,
	})
	require.NoError(t, err)

	regular, err := userSvc.Create(ctx, &CreateUserInput{
		Email:    "user@example.com",
		Password: "supersecret",
		FullName: "Usuario",
		RoleID:   3,
	})
	require.NoError(t, err)

	var adminProfile, regularProfile models.Profile
	require.NoError(t, db.First(&adminProfile, admin.ID).Error)
	require.NoError(t, db.First(&regularProfile, regular.ID).Error)

	session, err := authSvc.AdminSession(ctx, adminProfile.AccountID)
	require.NoError(t, err)
	assert.Equal(t, "admin", session.RoleName)

	_, err = authSvc.AdminSession(ctx, regularProfile.AccountID)
	assert.ErrorIs(t, err, ErrNotAdmin)

	_, err = authSvc.AdminSession(ctx, "no-such-account")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	inactive := false
	_, err = userSvc.Update(ctx, admin.ID, &UpdateUserInput{Active: &inactive})
	require.NoError(t, err)

	_, err = authSvc.AdminSession(ctx, adminProfile.AccountID)
	assert.ErrorIs(t, err, ErrProfileInactive)
}
