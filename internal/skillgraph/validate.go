package skillgraph

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// validateSkills performs all structural checks on a catalog before a Graph
// is built. All problems found are reported, joined in check order; callers
// classify with errors.As against *GraphError.
func validateSkills(skills []Skill) error {
	var errs []error

	idSet := make(map[string]bool, len(skills))
	for _, s := range skills {
		if idSet[s.ID] {
			errs = append(errs, &GraphError{
				Kind:   ErrKindDuplicate,
				Detail: fmt.Sprintf("skill ID %q declared more than once", s.ID),
			})
		}
		idSet[s.ID] = true
	}

	for _, s := range skills {
		for _, prereqID := range s.Prerequisites {
			if !idSet[prereqID] {
				errs = append(errs, &GraphError{
					Kind:   ErrKindDangling,
					Detail: fmt.Sprintf("skill %q references nonexistent prerequisite %q", s.ID, prereqID),
				})
			}
		}
	}

	// Cycle detection via Kahn's algorithm: any node never reaching
	// in-degree zero sits on (or behind) a back-edge.
	inDegree := make(map[string]int, len(skills))
	adjList := make(map[string][]string)
	for _, s := range skills {
		inDegree[s.ID] = len(s.Prerequisites)
		for _, prereqID := range s.Prerequisites {
			adjList[prereqID] = append(adjList[prereqID], s.ID)
		}
	}

	var queue []string
	for _, s := range skills {
		if inDegree[s.ID] == 0 {
			queue = append(queue, s.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adjList[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited < len(skills) {
		var cycleNodes []string
		for _, s := range skills {
			if inDegree[s.ID] > 0 {
				cycleNodes = append(cycleNodes, s.ID)
			}
		}
		sort.Strings(cycleNodes)
		errs = append(errs, &GraphError{
			Kind:   ErrKindCycle,
			Detail: "cycle detected involving skills: " + strings.Join(cycleNodes, ", "),
		})
	}

	return errors.Join(errs...)
}
