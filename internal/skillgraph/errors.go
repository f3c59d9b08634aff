package skillgraph

import "fmt"

// ErrKind classifies a structural defect found while validating a catalog.
type ErrKind string

const (
	ErrKindCycle     ErrKind = "cycle"
	ErrKindDangling  ErrKind = "dangling_prerequisite"
	ErrKindDuplicate ErrKind = "duplicate_id"
)

// GraphError reports one structural defect in a skill catalog. Validation is
// fatal: a Graph is never built from a catalog that produced one.
type GraphError struct {
	Kind   ErrKind
	Detail string
}

func (e *GraphError) Error() string {
	return fmt.Sprintf("invalid skill graph (%s): %s", e.Kind, e.Detail)
}

// NotFoundError reports a lookup of a skill ID the graph does not contain.
type NotFoundError struct {
	SkillID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("skill %q not found", e.SkillID)
}
