package handlers

import (
	"log"

	"activotrack/internal/core/services"
	"activotrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats returns the dashboard counters
// @Summary Dashboard statistics
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.Stats
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.dashboardService.GetStats(c.Context())
	if err != nil {
		log.Printf("dashboard stats: %v", err)
		return response.InternalServerError(c, "failed to get dashboard stats")
	}
	return response.OK(c, stats)
}

// AssetStatusChart returns asset counts grouped by status
// @Summary Assets by status chart
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} services.ChartSlice
// @Router /dashboard/asset-status [get]
func (h *DashboardHandler) AssetStatusChart(c *fiber.Ctx) error {
	slices, err := h.dashboardService.AssetStatusChart(c.Context())
	if err != nil {
		log.Printf("asset status chart: %v", err)
		return response.InternalServerError(c, "failed to build asset status chart")
	}
	return response.OK(c, slices)
}

// AssetTypeChart returns asset counts grouped by type
// @Summary Assets by type chart
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} services.ChartSlice
// @Router /dashboard/asset-types [get]
func (h *DashboardHandler) AssetTypeChart(c *fiber.Ctx) error {
	slices, err := h.dashboardService.AssetTypeChart(c.Context())
	if err != nil {
		log.Printf("asset type chart: %v", err)
		return response.InternalServerError(c, "failed to build asset type chart")
	}
	return response.OK(c, slices)
}

// RecentActivity returns the merged feed of recent loans and tickets
// @Summary Recent activity feed
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} services.ActivityItem
// @Router /dashboard/recent-activity [get]
func (h *DashboardHandler) RecentActivity(c *fiber.Ctx) error {
	items, err := h.dashboardService.RecentActivity(c.Context())
	if err != nil {
		log.Printf("recent activity: %v", err)
		return response.InternalServerError(c, "failed to get recent activity")
	}
	return response.OK(c, items)
}
