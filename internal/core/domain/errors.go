package domain

import "errors"

// Workflow errors. Every service converts storage and crypto failures into
// one of these before they cross the component boundary.
var (
	ErrUserNotFound            = errors.New("user not found")
	ErrDuplicateEmail          = errors.New("user with this email already exists")
	ErrScreenshotRequired      = errors.New("payment screenshot is required")
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrInvalidAdminCredentials = errors.New("invalid admin credentials")
	ErrAccountPending          = errors.New("account is pending approval")
)

// AccountRejectedError is returned on login when the account has been
// rejected. It carries the reason so the client can render guidance.
type AccountRejectedError struct {
	Reason string
}

func (e *AccountRejectedError) Error() string {
	return "account has been rejected"
}

// NotApprovedError is returned when an authenticated user attempts an
// operation that requires an approved account. It carries the current
// state so the client can render guidance.
type NotApprovedError struct {
	Status     Status
	IsApproved bool
}

func (e *NotApprovedError) Error() string {
	return "account is not approved"
}
