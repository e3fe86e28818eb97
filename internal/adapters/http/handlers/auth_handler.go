package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Aliyank001/linkedin-design-tool-backend/internal/adapters/storage"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/core/domain"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/core/services"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/pkg/response"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/pkg/validation"
)

// RegisterRequest is the multipart form body for user registration
type RegisterRequest struct {
	Name          string `form:"name" validate:"required,min=2,max=100"`
	Email         string `form:"email" validate:"required,email"`
	Password      string `form:"password" validate:"required,min=8"`
	PaymentMethod string `form:"paymentMethod" validate:"required,oneof=binance easypaisa nayapay"`
}

// LoginRequest is the JSON body for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler handles registration, login and status checks
type AuthHandler struct {
	authService *services.AuthService
	screenshots storage.ScreenshotStore
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, screenshots storage.ScreenshotStore) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		screenshots: screenshots,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Register with payment proof screenshot. The account stays pending until an admin reviews it.
// @Tags auth
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Full name"
// @Param email formData string true "Email address"
// @Param password formData string true "Password (min 8 chars)"
// @Param paymentMethod formData string true "Payment method" Enums(binance, easypaisa, nayapay)
// @Param paymentScreenshot formData file true "Payment proof screenshot"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if msg := validation.Struct(req); msg != "" {
		return response.BadRequest(c, msg)
	}

	fileHeader, err := c.FormFile("paymentScreenshot")
	if err != nil {
		return response.BadRequest(c, "Payment screenshot is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "Could not read payment screenshot")
	}
	defer file.Close()

	path, err := h.screenshots.Save(c.Context(), fileHeader.Filename, file)
	if err != nil {
		return response.InternalServerError(c, "Failed to store payment screenshot")
	}

	user, err := h.authService.Register(c.Context(), services.RegisterInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		PaymentMethod:  domain.PaymentMethod(req.PaymentMethod),
		ScreenshotPath: path,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return response.BadRequest(c, err.Error())
		}
		if errors.Is(err, domain.ErrScreenshotRequired) {
			return response.BadRequest(c, err.Error())
		}
		return response.InternalServerError(c, "Registration failed")
	}

	return response.Created(c, "Registration successful! Your account will be activated after manual verification.", user)
}

// Login godoc
// @Summary Login a user
// @Description Authenticate an approved user and receive a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if msg := validation.Struct(req); msg != "" {
		return response.BadRequest(c, msg)
	}

	result, err := h.authService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		var rejected *domain.AccountRejectedError
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			return response.Unauthorized(c, err.Error())
		case errors.As(err, &rejected):
			return response.ErrorWithData(c, fiber.StatusForbidden, "Your account has been rejected", fiber.Map{
				"status":          domain.StatusRejected,
				"rejectionReason": rejected.Reason,
			})
		case errors.Is(err, domain.ErrAccountPending):
			return response.ErrorWithData(c, fiber.StatusForbidden, "Your account is pending approval. Please wait for verification.", fiber.Map{
				"status":     domain.StatusPending,
				"isApproved": false,
			})
		default:
			return response.InternalServerError(c, "Login failed")
		}
	}

	return response.Success(c, "Login successful", result)
}

// Status godoc
// @Summary Check registration status
// @Description Look up the lifecycle state of a registration by email
// @Tags auth
// @Produce json
// @Param email query string true "Email address"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/auth/status [get]
func (h *AuthHandler) Status(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return response.BadRequest(c, "Email is required")
	}

	status, err := h.authService.GetStatus(c.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.NotFound(c, "No registration found for this email")
		}
		return response.InternalServerError(c, "Status lookup failed")
	}

	return response.Success(c, "Registration status", status)
}
