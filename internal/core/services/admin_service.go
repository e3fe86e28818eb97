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
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/pkg/pagination"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/pkg/password"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/pkg/token"
)

// subscriptionDays is the access window granted on approval
const subscriptionDays = 30

// defaultRejectionReason is recorded when the admin gives no reason
const defaultRejectionReason = "Payment verification failed"

// AdminLoginResult is what a successful admin login returns
type AdminLoginResult struct {
	Token string                `json:"token"`
	Admin *models.AdminResponse `json:"admin"`
}

// UserListResult bundles a page of users with its pagination meta
type UserListResult struct {
	Users []*models.UserResponse `json:"users"`
	Meta  *pagination.Meta       `json:"pagination"`
}

// AdminService handles the admin review workflow
type AdminService struct {
	userRepo  repositories.UserRepository
	adminRepo repositories.AdminRepository
	cfg       *config.Config
}

// NewAdminService creates a new admin service
func NewAdminService(userRepo repositories.UserRepository, adminRepo repositories.AdminRepository, cfg *config.Config) *AdminService {
	return &AdminService{
		userRepo:  userRepo,
		adminRepo: adminRepo,
		cfg:       cfg,
	}
}

// Login authenticates an admin and returns an admin-scoped session token
func (s *AdminService) Login(ctx context.Context, email, plainPassword string) (*AdminLoginResult, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidAdminCredentials
		}
		return nil, err
	}

	ok, err := password.Verify(plainPassword, admin.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidAdminCredentials
	}

	now := time.Now()
	if err := s.adminRepo.RecordLogin(ctx, admin.ID, now); err != nil {
		return nil, err
	}

	signed, err := token.Generate(admin.ID, token.AudienceAdmin, s.cfg.JWT.AdminSecret, s.cfg.JWT.ExpireDays)
	if err != nil {
		return nil, err
	}

	return &AdminLoginResult{
		Token: signed,
		Admin: admin.ToResponse(),
	}, nil
}

// ListUsers returns a filtered page of users, newest first
func (s *AdminService) ListUsers(ctx context.Context, filter repositories.ListFilter, params *pagination.Params) (*UserListResult, error) {
	users, total, err := s.userRepo.List(ctx, filter, params.Offset, params.Limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, u.ToResponse())
	}

	return &UserListResult{
		Users: responses,
		Meta:  pagination.GetMeta(params, total),
	}, nil
}

// GetUser returns a single user by ID
func (s *AdminService) GetUser(ctx context.Context, id uint) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user.ToResponse(), nil
}

// ApproveUser grants access with a fresh subscription window starting
// now. Approving a rejected user clears the rejection reason.
func (s *AdminService) ApproveUser(ctx context.Context, id uint) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	now := time.Now()
	ls := domain.LifecycleApproved(now, now.AddDate(0, 0, subscriptionDays))
	if err := s.userRepo.UpdateLifecycle(ctx, id, ls); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	user.ApplyLifecycle(ls)
	return user.ToResponse(), nil
}

// RejectUser records the rejection with a reason. Subscription dates
// from a prior approval are retained for history.
func (s *AdminService) RejectUser(ctx context.Context, id uint, reason string) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = defaultRejectionReason
	}

	ls := domain.LifecycleRejected(reason)
	if err := s.userRepo.UpdateLifecycle(ctx, id, ls); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	user.ApplyLifecycle(ls)
	return user.ToResponse(), nil
}

// DeleteUser permanently removes a user
func (s *AdminService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return s.userRepo.Delete(ctx, id)
}
