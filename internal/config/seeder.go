package config

import (
	"context"
	"log"

	"gorm.io/gorm"

	"github.com/Aliyank001/linkedin-design-tool-backend/internal/adapters/persistence/models"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/adapters/persistence/repositories"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/pkg/password"
)

// Seeder creates the default admin account on first boot
type Seeder struct {
	adminRepo repositories.AdminRepository
	cfg       *Config
}

// NewSeeder creates a new seeder
func NewSeeder(db *gorm.DB, cfg *Config) *Seeder {
	return &Seeder{
		adminRepo: repositories.NewAdminRepository(db),
		cfg:       cfg,
	}
}

// Run seeds the default admin if no admin exists yet
func (s *Seeder) Run(ctx context.Context) error {
	count, err := s.adminRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("🌱 Admin account already exists, skipping seed")
		return nil
	}

	if s.cfg.Admin.Password == "" {
		log.Println("⚠️  ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	hashed, err := password.Hash(s.cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.Admin{
		Name:     s.cfg.Admin.Name,
		Email:    s.cfg.Admin.Email,
		Password: hashed,
		Role:     "admin",
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return err
	}

	log.Printf("🌱 Default admin seeded: %s", admin.Email)
	return nil
}
