package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Aliyank001/linkedin-design-tool-backend/internal/core/services"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/pkg/response"
)

// DashboardHandler serves the admin dashboard analytics
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard godoc
// @Summary Admin dashboard analytics
// @Description User base counts, approval rate and recent activity
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /api/admin/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	data, err := h.dashboardService.GetDashboard(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load dashboard")
	}

	return response.Success(c, "Dashboard retrieved", data)
}
