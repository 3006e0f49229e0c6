package handlers

import (
	"errors"
	"log"
	"strings"

	"activotrack/internal/adapters/http/middleware"
	"activotrack/internal/core/services"
	"activotrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles session endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Token issues an access token from credentials
// @Summary Issue token
// @Description Exchange email and password for an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.TokenInput true "Credentials"
// @Success 200 {object} services.TokenOutput
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Router /auth/token [post]
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var req services.TokenInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return response.BadRequest(c, "email and password are required")
	}

	out, err := h.authService.IssueToken(c.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials),
			errors.Is(err, services.ErrProfileNotFound):
			return response.Unauthorized(c, "invalid credentials")
		default:
			log.Printf("auth token: %v", err)
			return response.InternalServerError(c, "failed to issue token")
		}
	}

	return response.OK(c, out)
}

// Login opens an admin session
// @Summary Login
// @Description Validate the session token and return the admin profile
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ProfileResponse
// @Failure 401 {object} response.ErrorBody
// @Failure 403 {object} response.ErrorBody
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	return h.adminSession(c)
}

// Me returns the current admin session
// @Summary Current session
// @Description Return the authenticated admin profile
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ProfileResponse
// @Failure 401 {object} response.ErrorBody
// @Failure 403 {object} response.ErrorBody
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return h.adminSession(c)
}

func (h *AuthHandler) adminSession(c *fiber.Ctx) error {
	profile, err := h.authService.AdminSession(c.Context(), middleware.AccountID(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProfileNotFound):
			return response.Unauthorized(c, "no profile for this account")
		case errors.Is(err, services.ErrNotAdmin), errors.Is(err, services.ErrProfileInactive):
			return response.Forbidden(c, "admin role required")
		default:
			log.Printf("auth session: %v", err)
			return response.InternalServerError(c, "failed to load session")
		}
	}

	return response.OK(c, profile)
}

// Validate confirms token validity without checking any role
// @Summary Validate token
// @Description Confirm the bearer token is valid
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} response.ErrorBody
// @Router /auth/validate [get]
func (h *AuthHandler) Validate(c *fiber.Ctx) error {
	return response.OK(c, fiber.Map{"valid": true})
}
