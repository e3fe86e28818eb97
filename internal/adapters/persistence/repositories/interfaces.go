package repositories

import (
	"context"
	"time"

	"github.com/Aliyank001/linkedin-design-tool-backend/internal/adapters/persistence/models"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/core/domain"
)

// ListFilter narrows user listings. Status filters on exact lifecycle
// state; Search matches case-insensitive substrings of name or email.
type ListFilter struct {
	Status domain.Status
	Search string
}

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// List returns users newest-first together with the total match count
	List(ctx context.Context, filter ListFilter, offset, limit int) ([]*models.User, int64, error)
	Update(ctx context.Context, user *models.User) error
	// UpdateLifecycle persists a state transition as one atomic update
	UpdateLifecycle(ctx context.Context, id uint, ls domain.Lifecycle) error
	// RecordLogin bumps loginCount and stamps lastLogin in one update
	RecordLogin(ctx context.Context, id uint, at time.Time) error
	Delete(ctx context.Context, id uint) error

	// Dashboard aggregates
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.Status) (int64, error)
	CountApprovedActiveSince(ctx context.Context, since time.Time) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]*models.User, error)
	ListPendingRecent(ctx context.Context, limit int) ([]*models.User, error)
}

// AdminRepository defines admin directory operations
type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByID(ctx context.Context, id uint) (*models.Admin, error)
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	Count(ctx context.Context) (int64, error)
	RecordLogin(ctx context.Context, id uint, at time.Time) error
}
