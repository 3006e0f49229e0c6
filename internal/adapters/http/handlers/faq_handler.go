package handlers

import (
	"errors"
	"log"
	"strings"

	"activotrack/internal/adapters/persistence/models"
	"activotrack/internal/adapters/persistence/repositories"
	"activotrack/internal/pkg/response"
	"activotrack/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// FAQHandler handles FAQ endpoints
type FAQHandler struct {
	faqRepo repositories.FAQRepository
}

// NewFAQHandler creates a new FAQ handler
func NewFAQHandler(faqRepo repositories.FAQRepository) *FAQHandler {
	return &FAQHandler{faqRepo: faqRepo}
}

// FAQInput represents create/update FAQ input
type FAQInput struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// List lists all FAQs
// @Summary List FAQs
// @Tags FAQs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.FAQ
// @Router /faqs [get]
func (h *FAQHandler) List(c *fiber.Ctx) error {
	faqs, err := h.faqRepo.List(c.Context())
	if err != nil {
		log.Printf("list faqs: %v", err)
		return response.InternalServerError(c, "failed to list faqs")
	}
	return response.OK(c, faqs)
}

// Create creates a FAQ
// @Summary Create FAQ
// @Tags FAQs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body FAQInput true "FAQ data"
// @Success 201 {object} models.FAQ
// @Failure 400 {object} response.ErrorBody
// @Router /faqs [post]
func (h *FAQHandler) Create(c *fiber.Ctx) error {
	var req FAQInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	if msg := validate.Required(map[string]string{
		"question": req.Question,
		"answer":   req.Answer,
	}, "question", "answer"); msg != "" {
		return response.BadRequest(c, msg)
	}

	faq := &models.FAQ{
		Question: strings.TrimSpace(req.Question),
		Answer:   strings.TrimSpace(req.Answer),
	}
	if err := h.faqRepo.Create(c.Context(), faq); err != nil {
		log.Printf("create faq: %v", err)
		return response.InternalServerError(c, "failed to create faq")
	}
	return response.Created(c, faq)
}

// Update updates a FAQ
// @Summary Update FAQ
// @Tags FAQs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "FAQ ID"
// @Param body body FAQInput true "FAQ data"
// @Success 200 {object} models.FAQ
// @Failure 404 {object} response.ErrorBody
// @Router /faqs/{id} [put]
func (h *FAQHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid faq ID")
	}

	var req FAQInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	if msg := validate.Required(map[string]string{
		"question": req.Question,
		"answer":   req.Answer,
	}, "question", "answer"); msg != "" {
		return response.BadRequest(c, msg)
	}

	faq, err := h.faqRepo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "faq not found")
		}
		log.Printf("get faq %d: %v", id, err)
		return response.InternalServerError(c, "failed to get faq")
	}

	faq.Question = strings.TrimSpace(req.Question)
	faq.Answer = strings.TrimSpace(req.Answer)

	if err := h.faqRepo.Update(c.Context(), faq); err != nil {
		log.Printf("update faq %d: %v", id, err)
		return response.InternalServerError(c, "failed to update faq")
	}
	return response.OK(c, faq)
}

// Delete deletes a FAQ
// @Summary Delete FAQ
// @Tags FAQs
// @Produce json
// @Security BearerAuth
// @Param id path int true "FAQ ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} response.ErrorBody
// @Router /faqs/{id} [delete]
func (h *FAQHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid faq ID")
	}

	if _, err := h.faqRepo.GetByID(c.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "faq not found")
		}
		log.Printf("get faq %d: %v", id, err)
		return response.InternalServerError(c, "failed to get faq")
	}

	if err := h.faqRepo.Delete(c.Context(), id); err != nil {
		log.Printf("delete faq %d: %v", id, err)
		return response.InternalServerError(c, "failed to delete faq")
	}
	return response.OK(c, fiber.Map{"deleted": true})
}
