package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidDelivery rejects contradictory delivery flags (wide + no-ball)
// or a runs value outside 0-6.
var ErrInvalidDelivery = errors.New("invalid delivery: contradictory flags or runs out of range")

// ValidationError reports malformed configuration: missing team selection,
// an empty team, a bad selection position, and the like. No state change.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IllegalStateError reports an operation invoked in the wrong match status.
// Correct UI gating should make these unreachable; the engine rejects them
// without mutating state either way.
type IllegalStateError struct {
	Op     string
	Status Status
}

func (e *IllegalStateError) Error() string {
	return fmt.Sprintf("%s not allowed while match is %q", e.Op, e.Status)
}

// MissingParticipantsError reports a delivery recorded before a striker
// and bowler were selected.
type MissingParticipantsError struct {
	Missing []string
}

func (e *MissingParticipantsError) Error() string {
	return fmt.Sprintf("delivery requires selection of: %v", e.Missing)
}
