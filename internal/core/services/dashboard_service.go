package services

import (
	"context"
	"math"
	"time"

	"github.com/Aliyank001/linkedin-design-tool-backend/internal/adapters/persistence/models"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/adapters/persistence/repositories"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/core/domain"
)

const (
	activityWindowDays = 7
	recentUsersLimit   = 5
	pendingListLimit   = 10
)

// Analytics summarizes the user base for the admin dashboard
type Analytics struct {
	TotalUsers          int64   `json:"totalUsers"`
	ApprovedUsers       int64   `json:"approvedUsers"`
	PendingUsers        int64   `json:"pendingUsers"`
	RejectedUsers       int64   `json:"rejectedUsers"`
	ActiveUsers         int64   `json:"activeUsers"`
	RecentRegistrations int64   `json:"recentRegistrations"`
	ApprovalRate        float64 `json:"approvalRate"`
}

// DashboardData is the full dashboard payload
type DashboardData struct {
	Analytics        Analytics              `json:"analytics"`
	RecentUsers      []*models.UserResponse `json:"recentUsers"`
	PendingUsersList []*models.UserResponse `json:"pendingUsersList"`
}

// DashboardService computes admin dashboard analytics
type DashboardService struct {
	userRepo repositories.UserRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(userRepo repositories.UserRepository) *DashboardService {
	return &DashboardService{userRepo: userRepo}
}

// GetDashboard assembles analytics plus the recent and pending user lists.
// Active means approved with a login inside the last seven days.
func (s *DashboardService) GetDashboard(ctx context.Context) (*DashboardData, error) {
	now := time.Now()
	weekAgo := now.AddDate(0, 0, -activityWindowDays)

	total, err := s.userRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	approved, err := s.userRepo.CountByStatus(ctx, domain.StatusApproved)
	if err != nil {
		return nil, err
	}
	pending, err := s.userRepo.CountByStatus(ctx, domain.StatusPending)
	if err != nil {
		return nil, err
	}
	rejected, err := s.userRepo.CountByStatus(ctx, domain.StatusRejected)
	if err != nil {
		return nil, err
	}
	active, err := s.userRepo.CountApprovedActiveSince(ctx, weekAgo)
	if err != nil {
		return nil, err
	}
	recentRegistrations, err := s.userRepo.CountCreatedSince(ctx, weekAgo)
	if err != nil {
		return nil, err
	}

	var approvalRate float64
	if total > 0 {
		approvalRate = math.Round(float64(approved)/float64(total)*100*100) / 100
	}

	recentUsers, err := s.userRepo.ListRecent(ctx, recentUsersLimit)
	if err != nil {
		return nil, err
	}
	pendingUsers, err := s.userRepo.ListPendingRecent(ctx, pendingListLimit)
	if err != nil {
		return nil, err
	}

	return &DashboardData{
		Analytics: Analytics{
			TotalUsers:          total,
			ApprovedUsers:       approved,
			PendingUsers:        pending,
			RejectedUsers:       rejected,
			ActiveUsers:         active,
			RecentRegistrations: recentRegistrations,
			ApprovalRate:        approvalRate,
		},
		RecentUsers:      toResponses(recentUsers),
		PendingUsersList: toResponses(pendingUsers),
	}, nil
}

func toResponses(users []*models.User) []*models.UserResponse {
	out := make([]*models.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, u.ToResponse())
	}
	return out
}
