package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"

	_ "github.com/Aliyank001/linkedin-design-tool-backend/docs"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/adapters/http/handlers"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/adapters/http/middleware"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/adapters/persistence/repositories"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/adapters/storage"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/config"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/core/services"
)

// Setup wires repositories, services and handlers onto the app
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, screenshots storage.ScreenshotStore) {
	userRepo := repositories.NewUserRepository(db)
	adminRepo := repositories.NewAdminRepository(db)

	authService := services.NewAuthService(userRepo, cfg)
	userService := services.NewUserService(userRepo)
	adminService := services.NewAdminService(userRepo, adminRepo, cfg)
	dashboardService := services.NewDashboardService(userRepo)

	authHandler := handlers.NewAuthHandler(authService, screenshots)
	userHandler := handlers.NewUserHandler(userService)
	adminHandler := handlers.NewAdminHandler(adminService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	healthHandler := handlers.NewHealthHandler(db, cfg)

	app.Get("/", healthHandler.Root)
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")
	api.Get("/health", healthHandler.HealthCheck)

	auth := api.Group("/auth")
	auth.Post("/register", middleware.AuthRateLimiter(), authHandler.Register)
	auth.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	auth.Get("/status", authHandler.Status)

	user := api.Group("/user", middleware.UserAuth(cfg, userRepo))
	user.Get("/profile", userHandler.GetProfile)
	user.Put("/profile", userHandler.UpdateProfile)
	user.Get("/design-access", middleware.RequireApproved(), userHandler.DesignAccess)

	admin := api.Group("/admin")
	admin.Post("/login", middleware.AuthRateLimiter(), adminHandler.Login)

	adminAuth := admin.Group("", middleware.AdminAuth(cfg, adminRepo))
	adminAuth.Get("/dashboard", dashboardHandler.GetDashboard)
	adminAuth.Get("/users", adminHandler.ListUsers)
	adminAuth.Get("/users/:id", adminHandler.GetUser)
	adminAuth.Post("/users/:id/approve", adminHandler.ApproveUser)
	adminAuth.Post("/users/:id/reject", adminHandler.RejectUser)
	adminAuth.Delete("/users/:id", adminHandler.DeleteUser)
}
