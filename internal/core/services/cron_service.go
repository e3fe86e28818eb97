package services

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/Aliyank001/linkedin-design-tool-backend/internal/adapters/persistence/repositories"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/core/domain"
)

// CronService runs scheduled background jobs
type CronService struct {
	cron     *cron.Cron
	userRepo repositories.UserRepository
}

// NewCronService creates a new cron service
func NewCronService(userRepo repositories.UserRepository) *CronService {
	return &CronService{
		cron:     cron.New(),
		userRepo: userRepo,
	}
}

// Start registers the jobs and starts the scheduler
func (s *CronService) Start() error {
	// 8:30 every morning, remind operators of the review backlog
	if _, err := s.cron.AddFunc("30 8 * * *", s.pendingApprovalsReminder); err != nil {
		return err
	}

	s.cron.Start()
	log.Println("⏰ Cron scheduler started")
	return nil
}

// Stop stops the scheduler and waits for running jobs
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("⏰ Cron scheduler stopped")
}

func (s *CronService) pendingApprovalsReminder() {
	count, err := s.userRepo.CountByStatus(context.Background(), domain.StatusPending)
	if err != nil {
		log.Printf("❌ Pending approvals reminder failed: %v", err)
		return
	}
	if count == 0 {
		return
	}
	log.Printf("⏰ %d registration(s) awaiting review", count)
}
