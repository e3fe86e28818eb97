package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/Aliyank001/linkedin-design-tool-backend/internal/core/domain"
)

// User represents the users table. Registrants land here in the pending
// state and stay until an administrator approves or rejects them.
// No soft delete: an admin delete purges the record for good.
type User struct {
	ID                    uint                 `gorm:"primaryKey" json:"id"`
	Name                  string               `gorm:"size:100;not null" json:"name"`
	Email                 string               `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password              string               `gorm:"size:255;not null" json:"-"`
	PaymentMethod         domain.PaymentMethod `gorm:"size:20;not null" json:"paymentMethod"`
	PaymentScreenshot     string               `gorm:"size:255;not null" json:"paymentScreenshot"`
	IsApproved            bool                 `gorm:"default:false" json:"isApproved"`
	Status                domain.Status        `gorm:"size:20;default:'pending';index" json:"status"`
	RejectionReason       *string              `gorm:"size:500" json:"rejectionReason"`
	SubscriptionStartDate *time.Time           `json:"subscriptionStartDate"`
	SubscriptionEndDate   *time.Time           `json:"subscriptionEndDate"`
	LastLogin             *time.Time           `json:"lastLogin"`
	LoginCount            int                  `gorm:"default:0" json:"loginCount"`
	CreatedAt             time.Time            `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt             time.Time            `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// CanAccessDesigner reports whether the user may reach the design tool
func (u *User) CanAccessDesigner() bool {
	return u.IsApproved && u.Status == domain.StatusApproved
}

// ApplyLifecycle writes a lifecycle transition onto the record. This is
// the only place status and isApproved are set, so they always agree.
// Rejection keeps previously granted subscription dates.
func (u *User) ApplyLifecycle(ls domain.Lifecycle) {
	u.Status = ls.Status
	u.IsApproved = ls.Approved()
	u.RejectionReason = ls.RejectionReason
	if ls.SubscriptionStart != nil {
		u.SubscriptionStartDate = ls.SubscriptionStart
		u.SubscriptionEndDate = ls.SubscriptionEnd
	}
}

// UserResponse is the public-safe projection of a user
type UserResponse struct {
	ID                    uint                 `json:"id"`
	Name                  string               `json:"name"`
	Email                 string               `json:"email"`
	PaymentMethod         domain.PaymentMethod `json:"paymentMethod"`
	Status                domain.Status        `json:"status"`
	IsApproved            bool                 `json:"isApproved"`
	RejectionReason       *string              `json:"rejectionReason,omitempty"`
	SubscriptionStartDate *time.Time           `json:"subscriptionStartDate,omitempty"`
	SubscriptionEndDate   *time.Time           `json:"subscriptionEndDate,omitempty"`
	LastLogin             *time.Time           `json:"lastLogin,omitempty"`
	LoginCount            int                  `json:"loginCount"`
	CreatedAt             time.Time            `json:"createdAt"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:                    u.ID,
		Name:                  u.Name,
		Email:                 u.Email,
		PaymentMethod:         u.PaymentMethod,
		Status:                u.Status,
		IsApproved:            u.IsApproved,
		RejectionReason:       u.RejectionReason,
		SubscriptionStartDate: u.SubscriptionStartDate,
		SubscriptionEndDate:   u.SubscriptionEndDate,
		LastLogin:             u.LastLogin,
		LoginCount:            u.LoginCount,
		CreatedAt:             u.CreatedAt,
	}
}

// StatusResponse is the public status projection served without auth
type StatusResponse struct {
	Status          domain.Status `json:"status"`
	IsApproved      bool          `json:"isApproved"`
	RejectionReason *string       `json:"rejectionReason"`
	CreatedAt       time.Time     `json:"createdAt"`
}

func (u *User) ToStatusResponse() *StatusResponse {
	return &StatusResponse{
		Status:          u.Status,
		IsApproved:      u.IsApproved,
		RejectionReason: u.RejectionReason,
		CreatedAt:       u.CreatedAt,
	}
}

// Admin represents the admins table. Admins are provisioned by the
// startup seeder, never self-registered, and have no lifecycle states.
type Admin struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	Name      string      `gorm:"size:100;not null" json:"name"`
	Email     string      `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string      `gorm:"size:255;not null" json:"-"`
	Role      domain.Role `gorm:"size:20;default:'admin'" json:"role"`
	LastLogin *time.Time  `json:"lastLogin"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Admin) TableName() string {
	return "admins"
}

// AdminResponse is the public-safe projection of an admin
type AdminResponse struct {
	ID    uint        `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

func (a *Admin) ToResponse() *AdminResponse {
	return &AdminResponse{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
		Role:  a.Role,
	}
}

// AutoMigrate creates the tables if they do not exist
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Admin{},
	)
}
