package expedition

import (
	"errors"
	"fmt"
)

// ErrProfileNotFound means the profile vanished between authorization and
// execution, or never existed.
var ErrProfileNotFound = errors.New("raider profile not found")

// ErrNoRequirements means the current level has no authored requirements.
// Absence of content refuses progression instead of allowing it silently.
var ErrNoRequirements = errors.New("no expedition requirements configured for this level")

// IncompleteError means at least one requirement at the current level has no
// matching completion record. Completed is the raw count of all completion
// rows for the profile, not the per-level intersection, so treat it as an
// approximate progress indicator.
type IncompleteError struct {
	Completed int
	Total     int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("expedition incomplete: %d of %d requirements", e.Completed, e.Total)
}

// NotAvailableError means the player is done with the current level but the
// next level has no authored content to advance into.
type NotAvailableError struct {
	Level int
}

func (e *NotAvailableError) Error() string {
	return fmt.Sprintf("no expedition available beyond level %d", e.Level)
}
