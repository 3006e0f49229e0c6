package repositories

import (
	"context"

	"activotrack/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// GormTicketRepository handles ticket data access
type GormTicketRepository struct {
	db *gorm.DB
}

// NewTicketRepository creates a new ticket repository
func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &GormTicketRepository{db: db}
}

// Create creates a new ticket
func (r *GormTicketRepository) Create(ctx context.Context, ticket *models.Ticket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

// GetByID gets a ticket by ID with relations
func (r *GormTicketRepository) GetByID(ctx context.Context, id uint) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.WithContext(ctx).
		Preload("Asset").
		Preload("Reporter").
		Preload("Assignee").
		First(&ticket, id).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// List lists all tickets with relations
func (r *GormTicketRepository) List(ctx context.Context) ([]*models.Ticket, error) {
	var tickets []*models.Ticket
	err := r.db.WithContext(ctx).
		Preload("Asset").
		Preload("Reporter").
		Preload("Assignee").
		Order("created_at DESC").
		Find(&tickets).Error
	return tickets, err
}

// ListRecent lists the most recently created tickets
func (r *GormTicketRepository) ListRecent(ctx context.Context, limit int) ([]*models.Ticket, error) {
	var tickets []*models.Ticket
	err := r.db.WithContext(ctx).
		Preload("Reporter").
		Order("created_at DESC").
		Limit(limit).
		Find(&tickets).Error
	return tickets, err
}

// Update updates a ticket
func (r *GormTicketRepository) Update(ctx context.Context, ticket *models.Ticket) error {
	return r.db.WithContext(ctx).Save(ticket).Error
}

// CountByStatus counts tickets grouped by status
func (r *GormTicketRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}
	err := r.db.WithContext(ctx).Model(&models.Ticket{}).
		Select("status, COUNT(*) as total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}
