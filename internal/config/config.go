package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	AppMode  string
	Port     string
	Database DatabaseConfig
	JWT      JWTConfig
	Admin    AdminSeedConfig
	Upload   UploadConfig
	CORS     CORSConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// JWTConfig holds JWT configuration. User and admin sessions are signed
// with distinct secrets so a token from one surface never opens the other.
type JWTConfig struct {
	UserSecret  string
	AdminSecret string
	ExpireDays  int
}

// AdminSeedConfig holds the default admin account created at startup
type AdminSeedConfig struct {
	Email    string
	Password string
	Name     string
}

// UploadConfig holds file upload configuration
type UploadConfig struct {
	Dir string
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	cfg := &Config{
		AppMode: getEnv("APP_MODE", "development"),
		Port:    getEnv("PORT", "5000"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "linkedin_design_tool"),
		},
		JWT: JWTConfig{
			UserSecret:  getEnv("JWT_SECRET", ""),
			AdminSecret: getEnv("JWT_ADMIN_SECRET", ""),
			ExpireDays:  getEnvInt("JWT_EXPIRE_DAYS", 7),
		},
		Admin: AdminSeedConfig{
			Email:    getEnv("ADMIN_EMAIL", "admin@example.com"),
			Password: getEnv("ADMIN_PASSWORD", ""),
			Name:     getEnv("ADMIN_NAME", "Administrator"),
		},
		Upload: UploadConfig{
			Dir: getEnv("UPLOAD_DIR", "uploads/payment-screenshots"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
		},
	}

	if cfg.JWT.UserSecret == "" || cfg.JWT.AdminSecret == "" {
		log.Fatal("❌ JWT_SECRET and JWT_ADMIN_SECRET must be set")
	}
	if cfg.JWT.UserSecret == cfg.JWT.AdminSecret {
		log.Fatal("❌ JWT_SECRET and JWT_ADMIN_SECRET must differ")
	}

	return cfg
}

// IsDevelopment checks if app is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.AppMode == "development"
}

// IsProduction checks if app is running in production mode
func (c *Config) IsProduction() bool {
	return c.AppMode == "production"
}

// GetAllowedOrigins returns the list of allowed CORS origins
func (c *Config) GetAllowedOrigins() string {
	return strings.TrimSpace(c.CORS.AllowedOrigins)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
