package services

import "errors"

// Failure taxonomy surfaced by the data layer. Controllers map these to
// HTTP statuses; a corrupted store never shows up here, the store resets
// itself to defaults instead.
var (
	ErrNotFound           = errors.New("not found")
	ErrNotEnrolled        = errors.New("no active enrollment")
	ErrConflict           = errors.New("already exists")
	ErrInvalid            = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
