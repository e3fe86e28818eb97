package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"github.com/Aliyank001/linkedin-design-tool-backend/internal/adapters/http/middleware"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/adapters/http/routes"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/adapters/persistence/models"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/adapters/persistence/repositories"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/adapters/storage"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/config"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/core/services"
)

// @title LinkedIn Design Tool API
// @version 1.0
// @description Registration gatekeeping and admin review API for the design tool
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.LoadConfig()

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Database connection failed: %v", err)
	}

	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✅ Database migrated")

	if err := config.NewSeeder(db, cfg).Run(context.Background()); err != nil {
		log.Fatalf("❌ Admin seed failed: %v", err)
	}

	screenshots, err := storage.NewLocalStorage(cfg.Upload.Dir)
	if err != nil {
		log.Fatalf("❌ Upload storage init failed: %v", err)
	}

	cronService := services.NewCronService(repositories.NewUserRepository(db))
	if err := cronService.Start(); err != nil {
		log.Fatalf("❌ Cron start failed: %v", err)
	}
	defer cronService.Stop()

	app := fiber.New(fiber.Config{
		AppName:      "LinkedIn Design Tool API",
		ErrorHandler: middleware.NewErrorHandler(cfg),
		BodyLimit:    10 * 1024 * 1024,
	})

	middleware.Setup(app, cfg)
	app.Static("/uploads", "./uploads")
	routes.Setup(app, db, cfg, screenshots)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("⚠️  Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server shutdown error: %v", err)
		}
	}()

	log.Printf("🚀 Server starting on port %s (%s mode)", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
