package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aliyank001/linkedin-design-tool-backend/internal/adapters/persistence/models"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/core/domain"
)

func TestGetDashboard(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := NewDashboardService(repo)

	now := time.Now()
	recentLogin := now.Add(-2 * 24 * time.Hour)
	staleLogin := now.Add(-10 * 24 * time.Hour)

	// 10 users: 3 approved (2 active), 5 pending, 2 rejected
	for i := 0; i < 10; i++ {
		u := &models.User{
			Name:              fmt.Sprintf("User %d", i),
			Email:             fmt.Sprintf("user%d@example.com", i),
			Password:          "hashed",
			PaymentMethod:     domain.PaymentNayapay,
			PaymentScreenshot: "uploads/payment-screenshots/x.png",
			CreatedAt:         now.Add(-time.Duration(i) * time.Hour),
		}
		switch {
		case i < 3:
			u.ApplyLifecycle(domain.LifecycleApproved(now, now.AddDate(0, 0, 30)))
			if i < 2 {
				u.LastLogin = &recentLogin
			} else {
				u.LastLogin = &staleLogin
			}
		case i < 8:
			u.ApplyLifecycle(domain.LifecyclePending())
		default:
			u.ApplyLifecycle(domain.LifecycleRejected("Payment verification failed"))
		}
		require.NoError(t, repo.Create(ctx, u))
	}

	data, err := svc.GetDashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(10), data.Analytics.TotalUsers)
	assert.Equal(t, int64(3), data.Analytics.ApprovedUsers)
	assert.Equal(t, int64(5), data.Analytics.PendingUsers)
	assert.Equal(t, int64(2), data.Analytics.RejectedUsers)
	assert.Equal(t, int64(2), data.Analytics.ActiveUsers)
	assert.Equal(t, int64(10), data.Analytics.RecentRegistrations)
	assert.Equal(t, 30.0, data.Analytics.ApprovalRate)

	assert.Len(t, data.RecentUsers, 5)
	assert.Len(t, data.PendingUsersList, 5)
	for _, u := range data.PendingUsersList {
		assert.Equal(t, domain.StatusPending, u.Status)
	}
}

func TestGetDashboardEmpty(t *testing.T) {
	svc := NewDashboardService(newFakeUserRepo())

	data, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), data.Analytics.TotalUsers)
	assert.Equal(t, 0.0, data.Analytics.ApprovalRate)
	assert.Empty(t, data.RecentUsers)
	assert.Empty(t, data.PendingUsersList)
}

func TestApprovalRateRounding(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := NewDashboardService(repo)

	// 3 users, 1 approved: 33.333... rounds to 33.33
	for i := 0; i < 3; i++ {
		u := &models.User{
			Name:              fmt.Sprintf("User %d", i),
			Email:             fmt.Sprintf("rate%d@example.com", i),
			Password:          "hashed",
			PaymentMethod:     domain.PaymentBinance,
			PaymentScreenshot: "uploads/payment-screenshots/x.png",
		}
		if i == 0 {
			now := time.Now()
			u.ApplyLifecycle(domain.LifecycleApproved(now, now.AddDate(0, 0, 30)))
		} else {
			u.ApplyLifecycle(domain.LifecyclePending())
		}
		require.NoError(t, repo.Create(ctx, u))
	}

	data, err := svc.GetDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 33.33, data.Analytics.ApprovalRate)
}
