package handlers

import (
	"errors"
	"log"

	"activotrack/internal/core/services"
	"activotrack/internal/pkg/response"
	"activotrack/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
)

// TicketHandler handles ticket endpoints
type TicketHandler struct {
	ticketService *services.TicketService
}

// NewTicketHandler creates a new ticket handler
func NewTicketHandler(ticketService *services.TicketService) *TicketHandler {
	return &TicketHandler{ticketService: ticketService}
}

// List lists all tickets
// @Summary List tickets
// @Tags Tickets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.TicketResponse
// @Failure 401 {object} response.ErrorBody
// @Router /tickets [get]
func (h *TicketHandler) List(c *fiber.Ctx) error {
	tickets, err := h.ticketService.List(c.Context())
	if err != nil {
		log.Printf("list tickets: %v", err)
		return response.InternalServerError(c, "failed to list tickets")
	}
	return response.OK(c, tickets)
}

// Get gets a ticket by ID
// @Summary Get ticket
// @Tags Tickets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Success 200 {object} models.TicketResponse
// @Failure 404 {object} response.ErrorBody
// @Router /tickets/{id} [get]
func (h *TicketHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid ticket ID")
	}

	ticket, err := h.ticketService.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrTicketNotFound) {
			return response.NotFound(c, "ticket not found")
		}
		log.Printf("get ticket %d: %v", id, err)
		return response.InternalServerError(c, "failed to get ticket")
	}
	return response.OK(c, ticket)
}

// Create creates a ticket
// @Summary Create ticket
// @Tags Tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateTicketInput true "Ticket data"
// @Success 201 {object} models.TicketResponse
// @Failure 400 {object} response.ErrorBody
// @Router /tickets [post]
func (h *TicketHandler) Create(c *fiber.Ctx) error {
	var req services.CreateTicketInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	if msg := validate.Required(map[string]string{
		"title":       req.Title,
		"description": req.Description,
		"priority":    req.Priority,
	}, "title", "description", "priority"); msg != "" {
		return response.BadRequest(c, msg)
	}
	if msg := validate.PositiveID("reported_by", req.ReportedBy); msg != "" {
		return response.BadRequest(c, msg)
	}

	ticket, err := h.ticketService.Create(c.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrReporterNotFound):
			return response.BadRequest(c, "reported_by does not exist")
		case errors.Is(err, services.ErrAssetNotFound):
			return response.BadRequest(c, "asset_id does not exist")
		default:
			log.Printf("create ticket: %v", err)
			return response.InternalServerError(c, "failed to create ticket")
		}
	}
	return response.Created(c, ticket)
}

// Update applies a partial update to a ticket
// @Summary Update ticket
// @Description Update fields or assign the ticket to a technician
// @Tags Tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param body body services.UpdateTicketInput true "Fields to update"
// @Success 200 {object} models.TicketResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /tickets/{id} [patch]
func (h *TicketHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid ticket ID")
	}

	var req services.UpdateTicketInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	ticket, err := h.ticketService.Update(c.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTicketNotFound):
			return response.NotFound(c, "ticket not found")
		case errors.Is(err, services.ErrAssigneeNotFound):
			return response.BadRequest(c, "assigned_to does not exist")
		case errors.Is(err, services.ErrAssigneeNotTechnician):
			return response.BadRequest(c, "assignee must be a technician")
		case errors.Is(err, services.ErrAssetNotFound):
			return response.BadRequest(c, "asset_id does not exist")
		default:
			log.Printf("update ticket %d: %v", id, err)
			return response.InternalServerError(c, "failed to update ticket")
		}
	}
	return response.OK(c, ticket)
}
