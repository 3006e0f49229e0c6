package repositories

import (
	"context"

	"activotrack/internal/adapters/persistence/models"
)

// ProfileRepository defines profile repository interface
type ProfileRepository interface {
	Create(ctx context.Context, profile *models.Profile) error
	GetByID(ctx context.Context, id uint) (*models.Profile, error)
	GetByAccountID(ctx context.Context, accountID string) (*models.Profile, error)
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	List(ctx context.Context) ([]*models.Profile, error)
	ListByRole(ctx context.Context, roleID uint) ([]*models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) error
	Delete(ctx context.Context, id uint) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// AssetRepository defines asset repository interface
type AssetRepository interface {
	Create(ctx context.Context, asset *models.Asset) error
	GetByID(ctx context.Context, id uint) (*models.Asset, error)
	List(ctx context.Context) ([]*models.Asset, error)
	Update(ctx context.Context, asset *models.Asset) error
	Delete(ctx context.Context, id uint) error
	CountByStatus(ctx context.Context, statusID uint) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// LoanListFilter narrows the paginated loan list
type LoanListFilter struct {
	Offset int
	Limit  int
	Search string
	Status string
}

// LoanRepository defines loan repository interface
type LoanRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Loan, error)
	List(ctx context.Context, filter LoanListFilter) ([]*models.Loan, int64, error)
	ListRecent(ctx context.Context, limit int) ([]*models.Loan, error)
	ActiveForAsset(ctx context.Context, assetID uint) (*models.Loan, error)
	ActiveByAsset(ctx context.Context) (map[uint]*models.Loan, error)
	CountActive(ctx context.Context) (int64, error)
	Update(ctx context.Context, loan *models.Loan) error
}

// TicketRepository defines ticket repository interface
type TicketRepository interface {
	Create(ctx context.Context, ticket *models.Ticket) error
	GetByID(ctx context.Context, id uint) (*models.Ticket, error)
	List(ctx context.Context) ([]*models.Ticket, error)
	ListRecent(ctx context.Context, limit int) ([]*models.Ticket, error)
	Update(ctx context.Context, ticket *models.Ticket) error
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

// FAQRepository defines FAQ repository interface
type FAQRepository interface {
	Create(ctx context.Context, faq *models.FAQ) error
	GetByID(ctx context.Context, id uint) (*models.FAQ, error)
	List(ctx context.Context) ([]*models.FAQ, error)
	Update(ctx context.Context, faq *models.FAQ) error
	Delete(ctx context.Context, id uint) error
}

// LookupRepository defines read access to the lookup tables
type LookupRepository interface {
	ListRoles(ctx context.Context) ([]*models.Role, error)
	RoleExists(ctx context.Context, id uint) (bool, error)
	ListAssetStatuses(ctx context.Context) ([]*models.AssetStatus, error)
	StatusExists(ctx context.Context, id uint) (bool, error)
	ListAssetTypes(ctx context.Context) ([]*models.AssetType, error)
	TypeExists(ctx context.Context, id uint) (bool, error)
}
