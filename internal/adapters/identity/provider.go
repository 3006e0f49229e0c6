package identity

import (
	"context"
	"errors"
	"strings"

	"activotrack/internal/adapters/persistence/models"
	"activotrack/internal/config"
	"activotrack/internal/pkg/jwt"
	"activotrack/internal/pkg/password"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Identity provider errors
var (
	ErrNoToken            = errors.New("no token")
	ErrInvalidToken       = errors.New("invalid token")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Provider is the identity provider client. It owns token introspection and
// account lifecycle; everything else in the system treats it as an external
// collaborator and only sees accounts and tokens.
type Provider struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewProvider creates a new identity provider client
func NewProvider(db *gorm.DB, cfg *config.Config) *Provider {
	return &Provider{db: db, cfg: cfg}
}

// ExtractBearer pulls the bearer token out of an Authorization header value.
// Returns ErrNoToken when the header is missing or malformed.
func ExtractBearer(header string) (string, error) {
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", ErrNoToken
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" || strings.ContainsRune(token, ' ') {
		return "", ErrNoToken
	}
	return token, nil
}

// GetUserForToken introspects a token and returns the account it belongs to.
// The public anonymous key never resolves to an account.
func (p *Provider) GetUserForToken(ctx context.Context, token string) (*models.Account, error) {
	if token == "" || token == p.cfg.Auth.AnonKey {
		return nil, ErrNoToken
	}

	claims, err := jwt.ValidateAccessToken(token, p.cfg.Auth.JWTSecret)
	if err != nil {
		return nil, ErrInvalidToken
	}

	var account models.Account
	if err := p.db.WithContext(ctx).Where("id = ?", claims.AccountID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	return &account, nil
}

// IssueToken verifies credentials and returns a signed access token.
func (p *Provider) IssueToken(ctx context.Context, email, plainPassword string) (string, *models.Account, error) {
	var account models.Account
	if err := p.db.WithContext(ctx).Where("email = ?", email).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !password.Verify(plainPassword, account.Password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateAccessToken(account.ID, account.Email, p.cfg.Auth.JWTSecret, p.cfg.Auth.AccessTokenMins)
	if err != nil {
		return "", nil, err
	}

	return token, &account, nil
}

// CreateAccount creates a new identity account
func (p *Provider) CreateAccount(ctx context.Context, email, plainPassword string) (*models.Account, error) {
	hashed, err := password.Hash(plainPassword)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		ID:       uuid.NewString(),
		Email:    email,
		Password: hashed,
	}

	if err := p.db.WithContext(ctx).Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return account, nil
}

// DeleteAccount removes an identity account. Used both by user deletion and
// as the compensating step when profile creation fails. The delete is
// unscoped so the email's unique index slot is released and the address
// can be registered again.
func (p *Provider) DeleteAccount(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Unscoped().Where("id = ?", id).Delete(&models.Account{}).Error
}
