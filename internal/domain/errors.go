package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidProfilePair = errors.New("invalid profile pair")
	ErrSameProfile        = errors.New("cannot compare a profile with itself")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrProfileExists      = errors.New("profile already exists")
	ErrReportNotFound     = errors.New("compatibility report not found")
	ErrStaleReport        = errors.New("compatibility report is older than profile invalidation")
	ErrInvalidCriteria    = errors.New("invalid match criteria")
	ErrInvalidToken       = errors.New("invalid token")
)

// ProfileValidationError describes why a profile cannot enter an analysis.
// It matches ErrInvalidProfilePair with errors.Is.
type ProfileValidationError struct {
	ProfileID string
	Field     string
	Reason    string
}

func (e *ProfileValidationError) Error() string {
	id := e.ProfileID
	if id == "" {
		id = "<empty id>"
	}
	return fmt.Sprintf("profile %s: %s %s", id, e.Field, e.Reason)
}

func (e *ProfileValidationError) Unwrap() error {
	return ErrInvalidProfilePair
}
