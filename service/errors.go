package service

import "errors"

var (
	// ErrNotFound covers both true absence and wrong ownership, so handlers
	// never leak whether another user's resource exists.
	ErrNotFound = errors.New("resource not found")

	ErrConflict = errors.New("resource already exists")

	ErrBadCredentials = errors.New("invalid user or password")
)
