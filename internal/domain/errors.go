package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by read models when the requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrRecomputeInProgress is returned when a recompute is requested while
// another run is still executing in the same process.
var ErrRecomputeInProgress = errors.New("recompute already in progress")

// InputValidationError describes a malformed input record. It never aborts a
// whole run; the affected item is skipped.
type InputValidationError struct {
	ItemID string
	UserID string
	Field  string
	Reason string
}

func (e *InputValidationError) Error() string {
	msg := fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	if e.UserID != "" {
		msg = fmt.Sprintf("user [%s]: %s", e.UserID, msg)
	}
	if e.ItemID != "" {
		msg = fmt.Sprintf("item [%s]: %s", e.ItemID, msg)
	}
	return msg
}

// ConfigurationError describes an invalid engine configuration value.
// It is fatal to a run and is reported before any computation starts.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %s", e.Field, e.Reason)
}
