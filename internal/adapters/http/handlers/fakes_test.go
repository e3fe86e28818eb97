package handlers

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/Aliyank001/linkedin-design-tool-backend/internal/adapters/persistence/models"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/adapters/persistence/repositories"
	"github.com/Aliyank001/linkedin-design-tool-backend/internal/core/domain"
)

// memUserRepo is an in-memory UserRepository for handler tests
type memUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{nextID: 1, users: make(map[uint]*models.User)}
}

func (m *memUserRepo) Create(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user.ID = m.nextID
	m.nextID++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *u
	return &clone, nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	return err == nil, nil
}

func (m *memUserRepo) List(_ context.Context, filter repositories.ListFilter, offset, limit int) ([]*models.User, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var matched []*models.User
	for _, u := range m.users {
		if filter.Status != "" && u.Status != filter.Status {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(u.Name), needle) &&
				!strings.Contains(strings.ToLower(u.Email), needle) {
				continue
			}
		}
		clone := *u
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (m *memUserRepo) Update(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *memUserRepo) UpdateLifecycle(_ context.Context, id uint, ls domain.Lifecycle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.ApplyLifecycle(ls)
	return nil
}

func (m *memUserRepo) RecordLogin(_ context.Context, id uint, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.LoginCount++
	stamp := at
	u.LastLogin = &stamp
	return nil
}

func (m *memUserRepo) Delete(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
	return nil
}

func (m *memUserRepo) CountAll(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.users)), nil
}

func (m *memUserRepo) CountByStatus(_ context.Context, status domain.Status) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, u := range m.users {
		if u.Status == status {
			count++
		}
	}
	return count, nil
}

func (m *memUserRepo) CountApprovedActiveSince(_ context.Context, since time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, u := range m.users {
		if u.IsApproved && u.LastLogin != nil && !u.LastLogin.Before(since) {
			count++
		}
	}
	return count, nil
}

func (m *memUserRepo) CountCreatedSince(_ context.Context, since time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, u := range m.users {
		if !u.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (m *memUserRepo) ListRecent(ctx context.Context, limit int) ([]*models.User, error) {
	users, _, err := m.List(ctx, repositories.ListFilter{}, 0, limit)
	return users, err
}

func (m *memUserRepo) ListPendingRecent(ctx context.Context, limit int) ([]*models.User, error) {
	users, _, err := m.List(ctx, repositories.ListFilter{Status: domain.StatusPending}, 0, limit)
	return users, err
}

// memAdminRepo is an in-memory AdminRepository for handler tests
type memAdminRepo struct {
	mu     sync.Mutex
	nextID uint
	admins map[uint]*models.Admin
}

func newMemAdminRepo() *memAdminRepo {
	return &memAdminRepo{nextID: 1, admins: make(map[uint]*models.Admin)}
}

func (m *memAdminRepo) Create(_ context.Context, admin *models.Admin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	admin.ID = m.nextID
	m.nextID++
	clone := *admin
	m.admins[admin.ID] = &clone
	return nil
}

func (m *memAdminRepo) GetByID(_ context.Context, id uint) (*models.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.admins[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *a
	return &clone, nil
}

func (m *memAdminRepo) GetByEmail(_ context.Context, email string) (*models.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.admins {
		if strings.EqualFold(a.Email, email) {
			clone := *a
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memAdminRepo) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.admins)), nil
}

func (m *memAdminRepo) RecordLogin(_ context.Context, id uint, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.admins[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stamp := at
	a.LastLogin = &stamp
	return nil
}

// memScreenshotStore records saves without touching disk
type memScreenshotStore struct {
	saved []string
}

func (s *memScreenshotStore) Save(_ context.Context, originalFilename string, r io.Reader) (string, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	path := "uploads/payment-screenshots/test-" + originalFilename
	s.saved = append(s.saved, path)
	return path, nil
}
