package handlers

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Aliyank001/linkedin-design-tool-backend/internal/config"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/pkg/response"
)

// HealthHandler serves liveness and API info endpoints
type HealthHandler struct {
	db        *gorm.DB
	cfg       *config.Config
	startedAt time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB, cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		db:        db,
		cfg:       cfg,
		startedAt: time.Now(),
	}
}

// Root godoc
// @Summary API info
// @Tags health
// @Produce json
// @Success 200 {object} response.Response
// @Router / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return response.Success(c, "LinkedIn Design Tool API", fiber.Map{
		"version": "1.0.0",
		"docs":    "/swagger/index.html",
		"health":  "/api/health",
	})
}

// HealthCheck godoc
// @Summary Health check
// @Description Reports database and upload storage health
// @Tags health
// @Produce json
// @Success 200 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /api/health [get]
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	dbStatus := "up"
	if err := config.PingDatabase(h.db); err != nil {
		dbStatus = "down"
	}

	uploadsStatus := "up"
	if info, err := os.Stat(h.cfg.Upload.Dir); err != nil || !info.IsDir() {
		uploadsStatus = "down"
	}

	data := fiber.Map{
		"database": dbStatus,
		"uploads":  uploadsStatus,
		"uptime":   time.Since(h.startedAt).Round(time.Second).String(),
		"mode":     h.cfg.AppMode,
	}

	if dbStatus != "up" || uploadsStatus != "up" {
		return response.ErrorWithData(c, fiber.StatusServiceUnavailable, "Service degraded", data)
	}

	return response.Success(c, "Service healthy", data)
}
