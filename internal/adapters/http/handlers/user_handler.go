package handlers

import (
	"errors"
	"log"

	"activotrack/internal/core/services"
	"activotrack/internal/pkg/response"
	"activotrack/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user management endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List lists all users
// @Summary List users
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ProfileResponse
// @Failure 401 {object} response.ErrorBody
// @Router /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userService.List(c.Context())
	if err != nil {
		log.Printf("list users: %v", err)
		return response.InternalServerError(c, "failed to list users")
	}
	return response.OK(c, users)
}

// Get gets a user by ID
// @Summary Get user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "Profile ID"
// @Success 200 {object} models.ProfileResponse
// @Failure 404 {object} response.ErrorBody
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid user ID")
	}

	user, err := h.userService.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return response.NotFound(c, "user not found")
		}
		log.Printf("get user %d: %v", id, err)
		return response.InternalServerError(c, "failed to get user")
	}
	return response.OK(c, user)
}

// Create creates an identity account plus its profile
// @Summary Create user
// @Description Create the identity account, then the profile row
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateUserInput true "User data"
// @Success 201 {object} models.ProfileResponse
// @Failure 400 {object} response.ErrorBody
// @Router /users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req services.CreateUserInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	if msg := validate.Required(map[string]string{
		"email":     req.Email,
		"password":  req.Password,
		"full_name": req.FullName,
	}, "email", "password", "full_name"); msg != "" {
		return response.BadRequest(c, msg)
	}
	if msg := validate.PositiveID("role_id", req.RoleID); msg != "" {
		return response.BadRequest(c, msg)
	}

	user, err := h.userService.Create(c.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWeakPassword):
			return response.BadRequest(c, "password must have at least 8 characters")
		case errors.Is(err, services.ErrRoleNotFound):
			return response.BadRequest(c, "role_id does not exist")
		case errors.Is(err, services.ErrEmailAlreadyExists):
			return response.BadRequest(c, "email already registered")
		default:
			log.Printf("create user: %v", err)
			return response.InternalServerError(c, "failed to create user")
		}
	}
	return response.Created(c, user)
}

// Update updates a user's profile
// @Summary Update user
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Profile ID"
// @Param body body services.UpdateUserInput true "Fields to update"
// @Success 200 {object} models.ProfileResponse
// @Failure 404 {object} response.ErrorBody
// @Router /users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid user ID")
	}

	var req services.UpdateUserInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	user, err := h.userService.Update(c.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProfileNotFound):
			return response.NotFound(c, "user not found")
		case errors.Is(err, services.ErrRoleNotFound):
			return response.BadRequest(c, "role_id does not exist")
		default:
			log.Printf("update user %d: %v", id, err)
			return response.InternalServerError(c, "failed to update user")
		}
	}
	return response.OK(c, user)
}

// Delete deletes a user
// @Summary Delete user
// @Description Remove the profile, then its identity account
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "Profile ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} response.ErrorBody
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid user ID")
	}

	if err := h.userService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return response.NotFound(c, "user not found")
		}
		log.Printf("delete user %d: %v", id, err)
		return response.InternalServerError(c, "failed to delete user")
	}
	return response.OK(c, fiber.Map{"deleted": true})
}
