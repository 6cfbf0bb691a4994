package domain

import "errors"

var (
	// ErrInvalidStatus is returned for status strings or ordinals
	// outside the canonical set.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidTransition is returned when a caller attempts a
	// mutation despite a NeedsReason/NeedsManagerOverride decision.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrNotFound is returned when a referenced event, member or
	// attendance record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned for missing or malformed required
	// fields on create/update.
	ErrValidation = errors.New("validation failed")
)
