package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Aliyank001/linkedin-design-tool-backend/internal/core/domain"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/core/services"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/pkg/response"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/pkg/validation"
)

// UpdateProfileRequest is the JSON body for profile updates
type UpdateProfileRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

// UserHandler handles authenticated user endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetProfile godoc
// @Summary Get own profile
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/user/profile [get]
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	profile, err := h.userService.GetProfile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to load profile")
	}

	return response.Success(c, "Profile retrieved", profile)
}

// UpdateProfile godoc
// @Summary Update own profile
// @Description Only the display name is editable
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/user/profile [put]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if msg := validation.Struct(req); msg != "" {
		return response.BadRequest(c, msg)
	}

	profile, err := h.userService.UpdateProfile(c.Context(), userID, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to update profile")
	}

	return response.Success(c, "Profile updated", profile)
}

// DesignAccess godoc
// @Summary Verify design tool access
// @Description Succeeds only for approved accounts
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/user/design-access [get]
func (h *UserHandler) DesignAccess(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	if err := h.userService.CheckDesignAccess(c.Context(), userID); err != nil {
		var notApproved *domain.NotApprovedError
		if errors.As(err, &notApproved) {
			return response.ErrorWithData(c, fiber.StatusForbidden,
				"You do not have access to the designer. Please wait for approval.", fiber.Map{
					"status":     notApproved.Status,
					"isApproved": notApproved.IsApproved,
				})
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to verify access")
	}

	return response.Success(c, "Access granted", fiber.Map{
		"canAccess": true,
	})
}
