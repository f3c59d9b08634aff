// Package availability derives skill status from the graph and the ledger.
//
// Status is never stored. It is a pure function of two inputs: the validated
// skill graph and the set of completed skill IDs. Resolving twice with the
// same inputs always yields the same partition.
package availability

import (
	"github.com/abhisek/skillquest/internal/skillgraph"
)

// Partition groups every skill in the graph by its resolved status.
// Each slice is in topological order, and every skill appears in exactly one.
type Partition struct {
	Completed []skillgraph.Skill
	Available []skillgraph.Skill
	Locked    []skillgraph.Skill
}

// Resolve computes the status partition for one user.
//
// A skill is completed if its ID is in the completed set, available if all of
// its prerequisites are completed, and locked otherwise. Roots have no
// prerequisites, so a fresh user sees exactly the roots as available.
func Resolve(g *skillgraph.Graph, completed map[string]bool) Partition {
	var p Partition
	for _, s := range g.TopologicalOrder() {
		switch StatusOf(s, completed) {
		case skillgraph.StatusCompleted:
			p.Completed = append(p.Completed, s)
		case skillgraph.StatusAvailable:
			p.Available = append(p.Available, s)
		default:
			p.Locked = append(p.Locked, s)
		}
	}
	return p
}

// StatusOf resolves the status of a single skill against the completed set.
func StatusOf(s skillgraph.Skill, completed map[string]bool) skillgraph.SkillStatus {
	if completed[s.ID] {
		return skillgraph.StatusCompleted
	}
	for _, prereqID := range s.Prerequisites {
		if !completed[prereqID] {
			return skillgraph.StatusLocked
		}
	}
	return skillgraph.StatusAvailable
}

// NewlyAvailable returns the skills that become available when justCompleted
// is added to the completed set, excluding skills that were already available
// or completed before.
func NewlyAvailable(g *skillgraph.Graph, completed map[string]bool, justCompleted string) []skillgraph.Skill {
	before := make(map[string]bool, len(completed))
	for id := range completed {
		before[id] = true
	}
	delete(before, justCompleted)

	after := make(map[string]bool, len(completed)+1)
	for id := range before {
		after[id] = true
	}
	after[justCompleted] = true

	var newly []skillgraph.Skill
	for _, dep := range g.Dependents(justCompleted) {
		if StatusOf(dep, before) == skillgraph.StatusLocked &&
			StatusOf(dep, after) == skillgraph.StatusAvailable {
			newly = append(newly, dep)
		}
	}
	return newly
}
