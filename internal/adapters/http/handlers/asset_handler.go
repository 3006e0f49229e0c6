package handlers

import (
	"errors"
	"log"
	"strconv"

	"activotrack/internal/core/services"
	"activotrack/internal/pkg/response"
	"activotrack/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
)

// AssetHandler handles asset endpoints
type AssetHandler struct {
	assetService *services.AssetService
}

// NewAssetHandler creates a new asset handler
func NewAssetHandler(assetService *services.AssetService) *AssetHandler {
	return &AssetHandler{assetService: assetService}
}

// List lists all assets
// @Summary List assets
// @Description List assets annotated with their current loan
// @Tags Assets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.AssetResponse
// @Failure 401 {object} response.ErrorBody
// @Router /assets [get]
func (h *AssetHandler) List(c *fiber.Ctx) error {
	assets, err := h.assetService.List(c.Context())
	if err != nil {
		log.Printf("list assets: %v", err)
		return response.InternalServerError(c, "failed to list assets")
	}
	return response.OK(c, assets)
}

// Get gets an asset by ID
// @Summary Get asset
// @Tags Assets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Asset ID"
// @Success 200 {object} models.AssetResponse
// @Failure 404 {object} response.ErrorBody
// @Router /assets/{id} [get]
func (h *AssetHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid asset ID")
	}

	asset, err := h.assetService.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrAssetNotFound) {
			return response.NotFound(c, "asset not found")
		}
		log.Printf("get asset %d: %v", id, err)
		return response.InternalServerError(c, "failed to get asset")
	}
	return response.OK(c, asset)
}

// Create creates an asset
// @Summary Create asset
// @Tags Assets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateAssetInput true "Asset data"
// @Success 201 {object} models.AssetResponse
// @Failure 400 {object} response.ErrorBody
// @Router /assets [post]
func (h *AssetHandler) Create(c *fiber.Ctx) error {
	var req services.CreateAssetInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	if msg := validate.Required(map[string]string{
		"name":          req.Name,
		"serial_number": req.SerialNumber,
	}, "name", "serial_number"); msg != "" {
		return response.BadRequest(c, msg)
	}
	if msg := validate.PositiveID("status_id", req.StatusID); msg != "" {
		return response.BadRequest(c, msg)
	}
	if msg := validate.PositiveID("type_id", req.TypeID); msg != "" {
		return response.BadRequest(c, msg)
	}

	asset, err := h.assetService.Create(c.Context(), &req)
	if err != nil {
		return h.mapAssetError(c, err, "failed to create asset")
	}
	return response.Created(c, asset)
}

// Update applies a partial update to an asset
// @Summary Update asset
// @Tags Assets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Asset ID"
// @Param body body services.UpdateAssetInput true "Fields to update"
// @Success 200 {object} models.AssetResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /assets/{id} [patch]
func (h *AssetHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid asset ID")
	}

	var req services.UpdateAssetInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	asset, err := h.assetService.Update(c.Context(), id, &req)
	if err != nil {
		if errors.Is(err, services.ErrAssetNotFound) {
			return response.NotFound(c, "asset not found")
		}
		return h.mapAssetError(c, err, "failed to update asset")
	}
	return response.OK(c, asset)
}

func (h *AssetHandler) mapAssetError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrAssetStatusNotFound):
		return response.BadRequest(c, "status_id does not exist")
	case errors.Is(err, services.ErrAssetTypeNotFound):
		return response.BadRequest(c, "type_id does not exist")
	case errors.Is(err, services.ErrSerialNumberTaken):
		return response.BadRequest(c, "serial number already registered")
	default:
		log.Printf("asset: %v", err)
		return response.InternalServerError(c, fallback)
	}
}

// parseID parses the :id route parameter
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
