package skillgraph

import (
	"slices"
	"sort"
)

// Graph holds a validated skill DAG with precomputed indices.
// It is read-only after New; callers needing a different catalog build a
// new Graph rather than mutating this one.
type Graph struct {
	skills     []Skill
	byID       map[string]*Skill
	byCategory map[Category][]Skill
	byLevel    map[int][]Skill
	roots      []Skill
	dependents map[string][]string
	topoOrder  []Skill
	topoIndex  map[string]int
}

// New validates the catalog and constructs the graph with all indices,
// including topological order (Kahn's algorithm). Any structural defect
// (duplicate ID, dangling prerequisite, cycle) aborts the load.
func New(skills []Skill) (*Graph, error) {
	if err := validateSkills(skills); err != nil {
		return nil, err
	}

	g := &Graph{
		skills:     slices.Clone(skills),
		byID:       make(map[string]*Skill, len(skills)),
		byCategory: make(map[Category][]Skill),
		byLevel:    make(map[int][]Skill),
		dependents: make(map[string][]string),
		topoIndex:  make(map[string]int, len(skills)),
	}

	for i := range g.skills {
		g.byID[g.skills[i].ID] = &g.skills[i]
	}

	// Reverse edges.
	for i := range g.skills {
		for _, prereqID := range g.skills[i].Prerequisites {
			g.dependents[prereqID] = append(g.dependents[prereqID], g.skills[i].ID)
		}
	}

	// Topological sort. Queues are kept sorted so the order is stable
	// across runs; this ordering drives every deterministic listing.
	inDegree := make(map[string]int, len(skills))
	for i := range g.skills {
		inDegree[g.skills[i].ID] = len(g.skills[i].Prerequisites)
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		g.topoOrder = append(g.topoOrder, *g.byID[id])

		deps := slices.Clone(g.dependents[id])
		sort.Strings(deps)
		for _, depID := range deps {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	for i, s := range g.topoOrder {
		g.topoIndex[s.ID] = i
	}

	for i := range g.skills {
		if len(g.skills[i].Prerequisites) == 0 {
			g.roots = append(g.roots, g.skills[i])
		}
	}

	// Group by category, sorted by level asc then topo index.
	for i := range g.skills {
		s := g.skills[i]
		g.byCategory[s.Category] = append(g.byCategory[s.Category], s)
	}
	for cat, group := range g.byCategory {
		sorted := slices.Clone(group)
		sort.Slice(sorted, func(i, j int) bool {
			if sorted[i].Level != sorted[j].Level {
				return sorted[i].Level < sorted[j].Level
			}
			return g.topoIndex[sorted[i].ID] < g.topoIndex[sorted[j].ID]
		})
		g.byCategory[cat] = sorted
	}

	// Group by level, sorted by category order then topo index.
	catIdx := make(map[Category]int)
	for i, c := range AllCategories() {
		catIdx[c] = i
	}
	for i := range g.skills {
		s := g.skills[i]
		g.byLevel[s.Level] = append(g.byLevel[s.Level], s)
	}
	for level, group := range g.byLevel {
		sorted := slices.Clone(group)
		sort.Slice(sorted, func(i, j int) bool {
			ci, cj := catIdx[sorted[i].Category], catIdx[sorted[j].Category]
			if ci != cj {
				return ci < cj
			}
			return g.topoIndex[sorted[i].ID] < g.topoIndex[sorted[j].ID]
		})
		g.byLevel[level] = sorted
	}

	return g, nil
}

// Get returns a skill by ID, or *NotFoundError.
func (g *Graph) Get(id string) (Skill, error) {
	s, ok := g.byID[id]
	if !ok {
		return Skill{}, &NotFoundError{SkillID: id}
	}
	return *s, nil
}

// Has reports whether the graph contains the skill ID.
func (g *Graph) Has(id string) bool {
	_, ok := g.byID[id]
	return ok
}

// All returns all skills in the graph.
func (g *Graph) All() []Skill {
	return slices.Clone(g.skills)
}

// Len returns the number of skills in the graph.
func (g *Graph) Len() int {
	return len(g.skills)
}

// ByCategory returns all skills in a category, ordered by level then
// topological position.
func (g *Graph) ByCategory(cat Category) []Skill {
	return slices.Clone(g.byCategory[cat])
}

// ByLevel returns all skills at a level, ordered by category then
// topological position.
func (g *Graph) ByLevel(level int) []Skill {
	return slices.Clone(g.byLevel[level])
}

// Roots returns all skills with no prerequisites.
func (g *Graph) Roots() []Skill {
	return slices.Clone(g.roots)
}

// Prerequisites returns the direct prerequisite skills for a skill ID.
func (g *Graph) Prerequisites(id string) []Skill {
	s, ok := g.byID[id]
	if !ok {
		return nil
	}
	result := make([]Skill, 0, len(s.Prerequisites))
	for _, prereqID := range s.Prerequisites {
		if p, ok := g.byID[prereqID]; ok {
			result = append(result, *p)
		}
	}
	return result
}

// Dependents returns skills that directly depend on the given skill ID.
func (g *Graph) Dependents(id string) []Skill {
	depIDs := g.dependents[id]
	result := make([]Skill, 0, len(depIDs))
	for _, depID := range depIDs {
		if s, ok := g.byID[depID]; ok {
			result = append(result, *s)
		}
	}
	return result
}

// TopologicalOrder returns all skills in a valid topological order.
func (g *Graph) TopologicalOrder() []Skill {
	return slices.Clone(g.topoOrder)
}
