package skillgraph

import (
	"errors"
	"testing"
)

func testSkills() []Skill {
	return []Skill{
		{ID: "html", Name: "HTML", Category: CategoryWebFoundations, Level: 1},
		{ID: "css", Name: "CSS", Category: CategoryWebFoundations, Level: 2, Prerequisites: []string{"html"}},
		{ID: "js", Name: "JavaScript", Category: CategoryWebFoundations, Level: 2, Prerequisites: []string{"html", "css"}},
		{ID: "logic", Name: "Logic", Category: CategoryProgramming, Level: 1},
	}
}

func mustGraph(t *testing.T, skills []Skill) *Graph {
	t.Helper()
	g, err := New(skills)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestNewBuildsIndices(t *testing.T) {
	g := mustGraph(t, testSkills())

	if g.Len() != 4 {
		t.Errorf("Len = %d, want 4", g.Len())
	}

	s, err := g.Get("css")
	if err != nil {
		t.Fatalf("Get(css): %v", err)
	}
	if s.Name != "CSS" {
		t.Errorf("Name = %q, want %q", s.Name, "CSS")
	}

	roots := g.Roots()
	if len(roots) != 2 {
		t.Errorf("Roots = %d skills, want 2", len(roots))
	}
}

func TestGetNotFound(t *testing.T) {
	g := mustGraph(t, testSkills())

	_, err := g.Get("rust")
	if err == nil {
		t.Fatal("expected error for unknown skill")
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error type = %T, want *NotFoundError", err)
	}
	if nf.SkillID != "rust" {
		t.Errorf("SkillID = %q, want %q", nf.SkillID, "rust")
	}
}

func TestTopologicalOrder(t *testing.T) {
	g := mustGraph(t, testSkills())

	order := g.TopologicalOrder()
	if len(order) != 4 {
		t.Fatalf("order has %d skills, want 4", len(order))
	}

	pos := make(map[string]int)
	for i, s := range order {
		pos[s.ID] = i
	}
	for _, s := range testSkills() {
		for _, p := range s.Prerequisites {
			if pos[p] >= pos[s.ID] {
				t.Errorf("prerequisite %q at %d not before %q at %d", p, pos[p], s.ID, pos[s.ID])
			}
		}
	}
}

func TestTopologicalOrderDeterministic(t *testing.T) {
	a := mustGraph(t, testSkills()).TopologicalOrder()
	b := mustGraph(t, testSkills()).TopologicalOrder()
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("order differs at %d: %q vs %q", i, a[i].ID, b[i].ID)
		}
	}
}

func TestPrerequisitesAndDependents(t *testing.T) {
	g := mustGraph(t, testSkills())

	prereqs := g.Prerequisites("js")
	if len(prereqs) != 2 {
		t.Fatalf("Prerequisites(js) = %d, want 2", len(prereqs))
	}

	deps := g.Dependents("html")
	if len(deps) != 2 {
		t.Fatalf("Dependents(html) = %d, want 2", len(deps))
	}
}

func TestNewRejectsCycle(t *testing.T) {
	skills := []Skill{
		{ID: "a", Name: "A", Category: CategoryProgramming, Level: 1, Prerequisites: []string{"c"}},
		{ID: "b", Name: "B", Category: CategoryProgramming, Level: 1, Prerequisites: []string{"a"}},
		{ID: "c", Name: "C", Category: CategoryProgramming, Level: 1, Prerequisites: []string{"b"}},
	}

	_, err := New(skills)
	if err == nil {
		t.Fatal("expected cycle error")
	}
	var ge *GraphError
	if !errors.As(err, &ge) {
		t.Fatalf("error type = %T, want *GraphError", err)
	}
	if ge.Kind != ErrKindCycle {
		t.Errorf("Kind = %q, want %q", ge.Kind, ErrKindCycle)
	}
}

func TestNewRejectsDanglingPrerequisite(t *testing.T) {
	skills := []Skill{
		{ID: "a", Name: "A", Category: CategoryProgramming, Level: 1},
		{ID: "b", Name: "B", Category: CategoryProgramming, Level: 2, Prerequisites: []string{"ghost"}},
	}

	_, err := New(skills)
	if err == nil {
		t.Fatal("expected dangling prerequisite error")
	}
	var ge *GraphError
	if !errors.As(err, &ge) {
		t.Fatalf("error type = %T, want *GraphError", err)
	}
	if ge.Kind != ErrKindDangling {
		t.Errorf("Kind = %q, want %q", ge.Kind, ErrKindDangling)
	}
}

func TestNewRejectsDuplicateID(t *testing.T) {
	skills := []Skill{
		{ID: "a", Name: "A", Category: CategoryProgramming, Level: 1},
		{ID: "a", Name: "A again", Category: CategoryProgramming, Level: 2},
	}

	_, err := New(skills)
	if err == nil {
		t.Fatal("expected duplicate ID error")
	}
	var ge *GraphError
	if !errors.As(err, &ge) {
		t.Fatalf("error type = %T, want *GraphError", err)
	}
	if ge.Kind != ErrKindDuplicate {
		t.Errorf("Kind = %q, want %q", ge.Kind, ErrKindDuplicate)
	}
}

func TestErrorMessagesCarryKindAndContext(t *testing.T) {
	ge := &GraphError{Kind: ErrKindCycle, Detail: "cycle detected involving skills: a, b"}
	want := `invalid skill graph (cycle): cycle detected involving skills: a, b`
	if got := ge.Error(); got != want {
		t.Errorf("GraphError.Error() = %q, want %q", got, want)
	}

	nf := &NotFoundError{SkillID: "rust"}
	if got := nf.Error(); got != `skill "rust" not found` {
		t.Errorf("NotFoundError.Error() = %q", got)
	}
}

func TestDefaultCatalogIsValid(t *testing.T) {
	g, err := New(DefaultCatalog())
	if err != nil {
		t.Fatalf("default catalog failed validation: %v", err)
	}
	if g.Len() == 0 {
		t.Fatal("default catalog is empty")
	}

	// Every category should be populated.
	for _, cat := range AllCategories() {
		if len(g.ByCategory(cat)) == 0 {
			t.Errorf("category %q has no skills", cat)
		}
	}
}
