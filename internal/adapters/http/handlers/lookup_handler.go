package handlers

import (
	"log"

	"activotrack/internal/adapters/persistence/models"
	"activotrack/internal/adapters/persistence/repositories"
	"activotrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LookupHandler serves the lookup tables used to populate form selectors
type LookupHandler struct {
	lookupRepo  repositories.LookupRepository
	profileRepo repositories.ProfileRepository
}

// NewLookupHandler creates a new lookup handler
func NewLookupHandler(lookupRepo repositories.LookupRepository, profileRepo repositories.ProfileRepository) *LookupHandler {
	return &LookupHandler{lookupRepo: lookupRepo, profileRepo: profileRepo}
}

// Roles lists all roles
// @Summary List roles
// @Tags Lookups
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Role
// @Router /roles [get]
func (h *LookupHandler) Roles(c *fiber.Ctx) error {
	roles, err := h.lookupRepo.ListRoles(c.Context())
	if err != nil {
		log.Printf("list roles: %v", err)
		return response.InternalServerError(c, "failed to list roles")
	}
	return response.OK(c, roles)
}

// AssetStatuses lists all asset statuses
// @Summary List asset statuses
// @Tags Lookups
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.AssetStatus
// @Router /asset-status [get]
func (h *LookupHandler) AssetStatuses(c *fiber.Ctx) error {
	statuses, err := h.lookupRepo.ListAssetStatuses(c.Context())
	if err != nil {
		log.Printf("list asset statuses: %v", err)
		return response.InternalServerError(c, "failed to list asset statuses")
	}
	return response.OK(c, statuses)
}

// AssetTypes lists all asset types
// @Summary List asset types
// @Tags Lookups
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.AssetType
// @Router /asset-types [get]
func (h *LookupHandler) AssetTypes(c *fiber.Ctx) error {
	types, err := h.lookupRepo.ListAssetTypes(c.Context())
	if err != nil {
		log.Printf("list asset types: %v", err)
		return response.InternalServerError(c, "failed to list asset types")
	}
	return response.OK(c, types)
}

// Profiles lists profiles, optionally narrowed to technicians for ticket assignment
// @Summary List profiles
// @Tags Lookups
// @Produce json
// @Security BearerAuth
// @Param for_assignment query bool false "Only technicians eligible for ticket assignment"
// @Success 200 {array} models.ProfileResponse
// @Router /profiles [get]
func (h *LookupHandler) Profiles(c *fiber.Ctx) error {
	var (
		profiles []*models.Profile
		err      error
	)
	if c.Query("for_assignment") == "true" {
		profiles, err = h.profileRepo.ListByRole(c.Context(), models.RoleTechnicianID)
	} else {
		profiles, err = h.profileRepo.List(c.Context())
	}
	if err != nil {
		log.Printf("list profiles: %v", err)
		return response.InternalServerError(c, "failed to list profiles")
	}

	out := make([]*models.ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p.ToResponse())
	}
	return response.OK(c, out)
}
