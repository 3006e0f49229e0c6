package handlers

import (
	"errors"
	"log"
	"strconv"

	"activotrack/internal/core/services"
	"activotrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LoanHandler handles loan (préstamo) endpoints
type LoanHandler struct {
	loanService *services.LoanService
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(loanService *services.LoanService) *LoanHandler {
	return &LoanHandler{loanService: loanService}
}

// List lists loans with pagination
// @Summary List loans
// @Description Paginated loan list with search and status filter
// @Tags Loans
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param search query string false "Search over asset and borrower"
// @Param status query string false "Derived status filter"
// @Success 200 {object} pagination.Response
// @Failure 401 {object} response.ErrorBody
// @Router /prestamos [get]
func (h *LoanHandler) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	input := &services.ListLoansInput{
		Page:   page,
		Limit:  limit,
		Search: c.Query("search"),
		Status: c.Query("status"),
	}

	result, err := h.loanService.List(c.Context(), input)
	if err != nil {
		log.Printf("list loans: %v", err)
		return response.InternalServerError(c, "failed to list loans")
	}
	return response.OK(c, result)
}

// Get gets a loan by ID
// @Summary Get loan
// @Tags Loans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Loan ID"
// @Success 200 {object} models.LoanResponse
// @Failure 404 {object} response.ErrorBody
// @Router /prestamos/{id} [get]
func (h *LoanHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid loan ID")
	}

	loan, err := h.loanService.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrLoanNotFound) {
			return response.NotFound(c, "loan not found")
		}
		log.Printf("get loan %d: %v", id, err)
		return response.InternalServerError(c, "failed to get loan")
	}
	return response.OK(c, loan)
}

// Create creates a loan
// @Summary Create loan
// @Description Create a loan; an asset can hold only one active loan
// @Tags Loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateLoanInput true "Loan data"
// @Success 201 {object} models.LoanResponse
// @Failure 400 {object} response.ErrorBody
// @Router /prestamos [post]
func (h *LoanHandler) Create(c *fiber.Ctx) error {
	var req services.CreateLoanInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	if req.AssetID == 0 {
		return response.BadRequest(c, "asset_id is required")
	}
	if req.UserID == 0 {
		return response.BadRequest(c, "user_id is required")
	}
	if req.ExpectedCheckinDate.IsZero() {
		return response.BadRequest(c, "expected_checkin_date is required")
	}

	loan, err := h.loanService.Create(c.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAssetNotFound):
			return response.BadRequest(c, "asset_id does not exist")
		case errors.Is(err, services.ErrBorrowerNotFound):
			return response.BadRequest(c, "user_id does not exist")
		case errors.Is(err, services.ErrAssetAlreadyOnLoan):
			return response.BadRequest(c, "asset already has an active loan")
		default:
			log.Printf("create loan: %v", err)
			return response.InternalServerError(c, "failed to create loan")
		}
	}
	return response.Created(c, loan)
}

// Update applies a partial update to a loan
// @Summary Update loan
// @Description Reschedule, annotate or return a loan
// @Tags Loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Loan ID"
// @Param body body services.UpdateLoanInput true "Fields to update"
// @Success 200 {object} models.LoanResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /prestamos/{id} [patch]
func (h *LoanHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid loan ID")
	}

	var req services.UpdateLoanInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	loan, err := h.loanService.Update(c.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLoanNotFound):
			return response.NotFound(c, "loan not found")
		case errors.Is(err, services.ErrLoanAlreadyClosed):
			return response.BadRequest(c, "loan already returned")
		default:
			log.Printf("update loan %d: %v", id, err)
			return response.InternalServerError(c, "failed to update loan")
		}
	}
	return response.OK(c, loan)
}
