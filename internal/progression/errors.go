package progression

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates no progression exists for the (user, skill) pair.
var ErrNotFound = errors.New("progression not found")

// GenerationError wraps a failure from the generator. Nothing was committed;
// the request can be retried safely.
type GenerationError struct {
	SkillID string
	Err     error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate progression for %s: %v", e.SkillID, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// ShapeError indicates the generator returned a structurally invalid
// progression (wrong quiz count, bad or decreasing difficulty). Nothing was
// committed.
type ShapeError struct {
	SkillID string
	Reason  string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("invalid progression for %s: %s", e.SkillID, e.Reason)
}
