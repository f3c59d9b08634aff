package skillgraph

// Category groups skills into a learning track area.
type Category string

const (
	CategoryWebFoundations Category = "web-foundations"
	CategoryProgramming    Category = "programming"
	CategoryBackend        Category = "backend"
	CategoryData           Category = "data"
	CategoryDevOps         Category = "devops"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryWebFoundations,
		CategoryProgramming,
		CategoryBackend,
		CategoryData,
		CategoryDevOps,
	}
}

// DisplayName returns a human-readable name for a category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryWebFoundations:
		return "Web Foundations"
	case CategoryProgramming:
		return "Programming"
	case CategoryBackend:
		return "Backend"
	case CategoryData:
		return "Data"
	case CategoryDevOps:
		return "DevOps"
	default:
		return string(c)
	}
}

// Skill is a single node in the learning prerequisite graph.
// Skills are immutable once the graph is built; re-seeding is a full reload.
type Skill struct {
	ID            string
	Name          string
	Description   string
	Cost          int
	Category      Category
	Level         int // tier 1-4+
	Prerequisites []string
	Secret        bool
}

// SkillStatus classifies a skill relative to a user's ledger.
type SkillStatus int

const (
	StatusLocked    SkillStatus = iota // One or more prerequisites not yet completed
	StatusAvailable                    // All prerequisites completed; skill not yet completed
	StatusCompleted                    // Completion flag set on the user's record
)

// Label returns the display label for a skill status.
func (s SkillStatus) Label() string {
	switch s {
	case StatusLocked:
		return "Locked"
	case StatusAvailable:
		return "Available"
	case StatusCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}
