package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrEventNotFound      = errors.New("event not found")
	ErrContentNotFound    = errors.New("content not found")
	ErrInvalidPointAmount = errors.New("point amount must be positive")
	ErrEmptyDescription   = errors.New("report description is required")
	ErrUnresolvedLocation = errors.New("report location is not resolved")
	ErrUpstreamAI         = errors.New("AI upstream request failed")
)
