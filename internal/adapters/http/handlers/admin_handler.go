package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Aliyank001/linkedin-design-tool-backend/internal/adapters/persistence/repositories"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/core/domain"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/core/services"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/pkg/pagination"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/pkg/response"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/pkg/validation"
)

// AdminLoginRequest is the JSON body for admin login
type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RejectUserRequest is the JSON body for rejecting a user
type RejectUserRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// AdminHandler handles the admin review workflow endpoints
type AdminHandler struct {
	adminService *services.AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func parseUserID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid user id")
	}
	return uint(id), nil
}

// Login godoc
// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AdminLoginRequest true "Admin credentials"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/admin/login [post]
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if msg := validation.Struct(req); msg != "" {
		return response.BadRequest(c, msg)
	}

	result, err := h.adminService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAdminCredentials) {
			return response.Unauthorized(c, err.Error())
		}
		return response.InternalServerError(c, "Login failed")
	}

	return response.Success(c, "Login successful", result)
}

// ListUsers godoc
// @Summary List users
// @Description Filter by status and search by name or email, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Lifecycle status" Enums(pending, approved, rejected)
// @Param search query string false "Substring of name or email"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	filter := repositories.ListFilter{
		Search: c.Query("search"),
	}
	// the admin panel sends status=all for an unfiltered listing
	if status := c.Query("status"); status != "" && status != "all" {
		parsed := domain.Status(status)
		if !parsed.IsValid() {
			return response.BadRequest(c, "Invalid status filter")
		}
		filter.Status = parsed
	}

	result, err := h.adminService.ListUsers(c.Context(), filter, pagination.GetParams(c))
	if err != nil {
		return response.InternalServerError(c, "Failed to list users")
	}

	return response.Success(c, "Users retrieved", result)
}

// GetUser godoc
// @Summary Get a user by ID
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/admin/users/{id} [get]
func (h *AdminHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseUserID(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	user, err := h.adminService.GetUser(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to load user")
	}

	return response.Success(c, "User retrieved", user)
}

// ApproveUser godoc
// @Summary Approve a user
// @Description Grants access with a fresh 30-day subscription window
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/admin/users/{id}/approve [post]
func (h *AdminHandler) ApproveUser(c *fiber.Ctx) error {
	id, err := parseUserID(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	user, err := h.adminService.ApproveUser(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to approve user")
	}

	return response.Success(c, "User approved successfully", user)
}

// RejectUser godoc
// @Summary Reject a user
// @Description Records the rejection reason shown to the user at login
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body RejectUserRequest false "Rejection reason"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/admin/users/{id}/reject [post]
func (h *AdminHandler) RejectUser(c *fiber.Ctx) error {
	id, err := parseUserID(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	var req RejectUserRequest
	// body is optional, the service falls back to a default reason
	_ = c.BodyParser(&req)
	if msg := validation.Struct(req); msg != "" {
		return response.BadRequest(c, msg)
	}

	user, err := h.adminService.RejectUser(c.Context(), id, req.Reason)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to reject user")
	}

	return response.Success(c, "User rejected", user)
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Permanently removes the user record
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseUserID(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	if err := h.adminService.DeleteUser(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to delete user")
	}

	return response.Success(c, "User deleted successfully", nil)
}
