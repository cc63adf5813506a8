package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrForbidden          = errors.New("access forbidden")
	ErrDemoModeDisabled   = errors.New("role switching is disabled outside demo mode")

	ErrProjectNotFound  = errors.New("project not found")
	ErrApprovalNotFound = errors.New("approval not found")
	ErrApprovalDecided  = errors.New("approval already decided")

	ErrInvalidTransition = errors.New("invalid status transition")

	ErrKeyNotFound = errors.New("key not found")

	// ErrServiceUnavailable is the simulated transport failure surfaced by
	// the mock data layer. Transient by contract: retry or surface, caller's
	// choice.
	ErrServiceUnavailable = errors.New("service temporarily unavailable")
)
