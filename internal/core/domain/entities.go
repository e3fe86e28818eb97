package domain

import "time"

// Status represents the lifecycle state of a registered user
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// IsValid reports whether s is a known lifecycle status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// PaymentMethod represents the manual payment channel used during registration
type PaymentMethod string

const (
	PaymentBinance   PaymentMethod = "binance"
	PaymentEasypaisa PaymentMethod = "easypaisa"
	PaymentNayapay   PaymentMethod = "nayapay"
)

// Role represents an administrator role
type Role string

const (
	RoleAdmin Role = "admin"
)

// Lifecycle is the single value that drives every user state transition.
// It is built only through the constructors below so that status,
// isApproved, rejection reason and the subscription window always move
// together and can never disagree.
type Lifecycle struct {
	Status            Status
	RejectionReason   *string
	SubscriptionStart *time.Time
	SubscriptionEnd   *time.Time
}

// LifecyclePending is the state every user is created in
func LifecyclePending() Lifecycle {
	return Lifecycle{Status: StatusPending}
}

// LifecycleApproved grants access with a subscription window.
// Approving always clears any prior rejection reason.
func LifecycleApproved(start, end time.Time) Lifecycle {
	return Lifecycle{
		Status:            StatusApproved,
		SubscriptionStart: &start,
		SubscriptionEnd:   &end,
	}
}

// LifecycleRejected records the rejection reason. Subscription dates from
// a prior approval are left untouched, the history is retained.
func LifecycleRejected(reason string) Lifecycle {
	return Lifecycle{
		Status:          StatusRejected,
		RejectionReason: &reason,
	}
}

// Approved reports whether this lifecycle state grants access
func (l Lifecycle) Approved() bool {
	return l.Status == StatusApproved
}
