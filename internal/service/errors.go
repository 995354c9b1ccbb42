package service

import "errors"

var (
	// ErrNotFound is returned when a referenced agreement, apartment,
	// user or coupon does not resolve.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateApplication is returned when an email already holds a
	// live agreement.
	ErrDuplicateApplication = errors.New("you already applied for an apartment")

	// ErrValidation is returned when required fields are missing or malformed.
	ErrValidation = errors.New("validation failed")

	// ErrUpstream is returned when the image store or payment provider fails.
	ErrUpstream = errors.New("upstream provider failed")
)
