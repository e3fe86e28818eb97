package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Aliyank001/linkedin-design-tool-backend/internal/adapters/persistence/models"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/adapters/persistence/repositories"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/config"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/core/domain"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/pkg/password"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/pkg/token"
)

// RegisterInput carries a validated registration request into the service
type RegisterInput struct {
	Name           string
	Email          string
	Password       string
	PaymentMethod  domain.PaymentMethod
	ScreenshotPath string
}

// LoginResult is what a successful login returns
type LoginResult struct {
	Token string               `json:"token"`
	User  *models.UserResponse `json:"user"`
}

// AuthService handles user registration and login
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// Register creates a new user in the pending state. Email is normalized
// to lowercase so uniqueness holds regardless of casing.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.UserResponse, error) {
	if input.ScreenshotPath == "" {
		return nil, domain.ErrScreenshotRequired
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateEmail
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:              strings.TrimSpace(input.Name),
		Email:             email,
		Password:          hashed,
		PaymentMethod:     input.PaymentMethod,
		PaymentScreenshot: input.ScreenshotPath,
	}
	user.ApplyLifecycle(domain.LifecyclePending())

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user.ToResponse(), nil
}

// Login authenticates a user and returns a session token. Credential
// failures are reported before lifecycle state so the response never
// reveals whether an email is registered.
func (s *AuthService) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := password.Verify(plainPassword, user.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	if user.Status == domain.StatusRejected {
		reason := "No reason provided"
		if user.RejectionReason != nil && *user.RejectionReason != "" {
			reason = *user.RejectionReason
		}
		return nil, &domain.AccountRejectedError{Reason: reason}
	}

	if !user.CanAccessDesigner() {
		return nil, domain.ErrAccountPending
	}

	now := time.Now()
	if err := s.userRepo.RecordLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastLogin = &now
	user.LoginCount++

	signed, err := token.Generate(user.ID, token.AudienceUser, s.cfg.JWT.UserSecret, s.cfg.JWT.ExpireDays)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token: signed,
		User:  user.ToResponse(),
	}, nil
}

// GetStatus returns the lifecycle state for an email without auth so
// pending users can check where their registration stands
func (s *AuthService) GetStatus(ctx context.Context, email string) (*models.StatusResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user.ToStatusResponse(), nil
}
