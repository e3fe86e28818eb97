package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Aliyank001/linkedin-design-tool-backend/internal/adapters/persistence/models"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/adapters/persistence/repositories"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/config"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/pkg/response"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/pkg/token"
)

func bearerToken(c *fiber.Ctx) string {
	header := c.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// UserAuth validates a user session token and loads the user into
// request locals
func UserAuth(cfg *config.Config, userRepo repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := bearerToken(c)
		if raw == "" {
			return response.Unauthorized(c, "Authorization token required")
		}

		claims, err := token.Validate(raw, token.AudienceUser, cfg.JWT.UserSecret)
		if err != nil {
			if err == token.ErrTokenExpired {
				return response.Unauthorized(c, "Session expired. Please login again.")
			}
			return response.Unauthorized(c, "Invalid token")
		}

		user, err := userRepo.GetByID(c.Context(), claims.SubjectID)
		if err != nil {
			return response.Unauthorized(c, "User not found. Please login again.")
		}

		c.Locals("user", user)
		c.Locals("userID", user.ID)
		return c.Next()
	}
}

// AdminAuth validates an admin session token and loads the admin into
// request locals. User tokens are signed with a different secret and
// never pass here.
func AdminAuth(cfg *config.Config, adminRepo repositories.AdminRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := bearerToken(c)
		if raw == "" {
			return response.Unauthorized(c, "Authorization token required")
		}

		claims, err := token.Validate(raw, token.AudienceAdmin, cfg.JWT.AdminSecret)
		if err != nil {
			if err == token.ErrTokenExpired {
				return response.Unauthorized(c, "Session expired. Please login again.")
			}
			return response.Unauthorized(c, "Invalid token")
		}

		admin, err := adminRepo.GetByID(c.Context(), claims.SubjectID)
		if err != nil {
			return response.Unauthorized(c, "Admin not found. Please login again.")
		}

		c.Locals("admin", admin)
		c.Locals("adminID", admin.ID)
		return c.Next()
	}
}

// RequireApproved blocks users whose account is not approved. Runs
// after UserAuth.
func RequireApproved() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("user").(*models.User)
		if !ok {
			return response.Unauthorized(c, "Authorization token required")
		}
		if !user.CanAccessDesigner() {
			return response.ErrorWithData(c, fiber.StatusForbidden, "Your account is not approved yet", fiber.Map{
				"status":     user.Status,
				"isApproved": user.IsApproved,
			})
		}
		return c.Next()
	}
}
