package services

import (
	"context"
	"errors"
	"strings"

	"activotrack/internal/adapters/persistence/models"
	"activotrack/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Ticket service errors
var (
	ErrTicketNotFound        = errors.New("ticket not found")
	ErrReporterNotFound      = errors.New("reporter profile not found")
	ErrAssigneeNotFound      = errors.New("assignee profile not found")
	ErrAssigneeNotTechnician = errors.New("assignee must be a technician")
)

// TicketService handles ticket business logic
type TicketService struct {
	ticketRepo  repositories.TicketRepository
	assetRepo   repositories.AssetRepository
	profileRepo repositories.ProfileRepository
}

// NewTicketService creates a new ticket service
func NewTicketService(
	ticketRepo repositories.TicketRepository,
	assetRepo repositories.AssetRepository,
	profileRepo repositories.ProfileRepository,
) *TicketService {
	return &TicketService{
		ticketRepo:  ticketRepo,
		assetRepo:   assetRepo,
		profileRepo: profileRepo,
	}
}

// CreateTicketInput represents create ticket input
type CreateTicketInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	AssetID     *uint  `json:"asset_id"`
	ReportedBy  uint   `json:"reported_by"`
}

// UpdateTicketInput represents partial ticket update input
type UpdateTicketInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	AssetID     *uint   `json:"asset_id"`
	AssignedTo  *uint   `json:"assigned_to"`
}

// List lists all tickets
func (s *TicketService) List(ctx context.Context) ([]*models.TicketResponse, error) {
	tickets, err := s.ticketRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.TicketResponse, len(tickets))
	for i, ticket := range tickets {
		responses[i] = ticket.ToResponse()
	}
	return responses, nil
}

// Get gets a ticket by ID
func (s *TicketService) Get(ctx context.Context, id uint) (*models.TicketResponse, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return ticket.ToResponse(), nil
}

// Create validates references and creates a ticket
func (s *TicketService) Create(ctx context.Context, input *CreateTicketInput) (*models.TicketResponse, error) {
	if _, err := s.profileRepo.GetByID(ctx, input.ReportedBy); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReporterNotFound
		}
		return nil, err
	}

	if input.AssetID != nil {
		if _, err := s.assetRepo.GetByID(ctx, *input.AssetID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrAssetNotFound
			}
			return nil, err
		}
	}

	ticket := &models.Ticket{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Status:      models.TicketStatusOpen,
		Priority:    strings.TrimSpace(input.Priority),
		AssetID:     input.AssetID,
		ReportedBy:  input.ReportedBy,
	}

	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}

	return s.Get(ctx, ticket.ID)
}

// Update applies a partial update to a ticket. Assignment is validated
// against the technician role regardless of the other fields present.
func (s *TicketService) Update(ctx context.Context, id uint, input *UpdateTicketInput) (*models.TicketResponse, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}

	if input.AssignedTo != nil {
		assignee, err := s.profileRepo.GetByID(ctx, *input.AssignedTo)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrAssigneeNotFound
			}
			return nil, err
		}
		if assignee.RoleID != models.RoleTechnicianID {
			return nil, ErrAssigneeNotTechnician
		}
		ticket.AssignedTo = input.AssignedTo
	}

	if input.AssetID != nil {
		if _, err := s.assetRepo.GetByID(ctx, *input.AssetID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrAssetNotFound
			}
			return nil, err
		}
		ticket.AssetID = input.AssetID
	}

	if input.Title != nil {
		ticket.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		ticket.Description = strings.TrimSpace(*input.Description)
	}
	if input.Status != nil {
		ticket.Status = *input.Status
	}
	if input.Priority != nil {
		ticket.Priority = *input.Priority
	}

	// Avoid re-saving preloaded relations
	ticket.Asset = nil
	ticket.Reporter = nil
	ticket.Assignee = nil

	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, err
	}

	return s.Get(ctx, ticket.ID)
}
