package availability

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/abhisek/skillquest/internal/skillgraph"
)

func buildGraph(t *testing.T, skills []skillgraph.Skill) *skillgraph.Graph {
	t.Helper()
	g, err := skillgraph.New(skills)
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}
	return g
}

func webGraph(t *testing.T) *skillgraph.Graph {
	t.Helper()
	return buildGraph(t, []skillgraph.Skill{
		{ID: "html", Name: "HTML", Category: skillgraph.CategoryWebFoundations, Level: 1},
		{ID: "css", Name: "CSS", Category: skillgraph.CategoryWebFoundations, Level: 2, Prerequisites: []string{"html"}},
		{ID: "javascript", Name: "JavaScript", Category: skillgraph.CategoryProgramming, Level: 2, Prerequisites: []string{"html"}},
		{ID: "dom", Name: "DOM", Category: skillgraph.CategoryProgramming, Level: 3, Prerequisites: []string{"css", "javascript"}},
	})
}

func idsOf(skills []skillgraph.Skill) []string {
	ids := make([]string, len(skills))
	for i, s := range skills {
		ids[i] = s.ID
	}
	return ids
}

func TestResolveFreshUserSeesRoots(t *testing.T) {
	g := webGraph(t)

	p := Resolve(g, nil)
	if len(p.Completed) != 0 {
		t.Errorf("fresh user has completed skills: %v", idsOf(p.Completed))
	}
	if len(p.Available) != 1 || p.Available[0].ID != "html" {
		t.Errorf("available = %v, want [html]", idsOf(p.Available))
	}
	if len(p.Locked) != 3 {
		t.Errorf("locked = %v, want 3 skills", idsOf(p.Locked))
	}
}

func TestResolveUnlocksDependents(t *testing.T) {
	g := webGraph(t)

	p := Resolve(g, map[string]bool{"html": true})
	if len(p.Completed) != 1 || p.Completed[0].ID != "html" {
		t.Errorf("completed = %v, want [html]", idsOf(p.Completed))
	}

	available := idsOf(p.Available)
	if len(available) != 2 || available[0] != "css" || available[1] != "javascript" {
		t.Errorf("available = %v, want [css javascript]", available)
	}
	// dom needs both css and javascript.
	if len(p.Locked) != 1 || p.Locked[0].ID != "dom" {
		t.Errorf("locked = %v, want [dom]", idsOf(p.Locked))
	}
}

func TestResolveRequiresAllPrerequisites(t *testing.T) {
	g := webGraph(t)

	p := Resolve(g, map[string]bool{"html": true, "css": true})
	if got := StatusOf(mustGet(t, g, "dom"), map[string]bool{"html": true, "css": true}); got != skillgraph.StatusLocked {
		t.Errorf("dom status = %v, want locked with one prereq missing", got)
	}
	if len(p.Available) != 1 || p.Available[0].ID != "javascript" {
		t.Errorf("available = %v, want [javascript]", idsOf(p.Available))
	}
}

func TestResolvePartitionIsTotal(t *testing.T) {
	g := webGraph(t)

	for _, completed := range []map[string]bool{
		nil,
		{"html": true},
		{"html": true, "css": true, "javascript": true},
		{"html": true, "css": true, "javascript": true, "dom": true},
	} {
		p := Resolve(g, completed)
		total := len(p.Completed) + len(p.Available) + len(p.Locked)
		if total != g.Len() {
			t.Errorf("completed=%v: partition covers %d skills, want %d", completed, total, g.Len())
		}
	}
}

func TestResolveIgnoresUnknownCompletions(t *testing.T) {
	g := webGraph(t)

	// Completed IDs outside the graph must not disturb the partition.
	p := Resolve(g, map[string]bool{"html": true, "retired-skill": true})
	total := len(p.Completed) + len(p.Available) + len(p.Locked)
	if total != g.Len() {
		t.Errorf("partition covers %d skills, want %d", total, g.Len())
	}
	if len(p.Completed) != 1 {
		t.Errorf("completed = %v, want [html]", idsOf(p.Completed))
	}
}

func TestNewlyAvailable(t *testing.T) {
	g := webGraph(t)

	newly := NewlyAvailable(g, map[string]bool{"html": true}, "html")
	ids := idsOf(newly)
	if len(ids) != 2 || ids[0] != "css" || ids[1] != "javascript" {
		t.Errorf("newly available = %v, want [css javascript]", ids)
	}

	// Completing css alone does not unlock dom (javascript still missing).
	newly = NewlyAvailable(g, map[string]bool{"html": true, "css": true}, "css")
	if len(newly) != 0 {
		t.Errorf("newly available = %v, want none", idsOf(newly))
	}

	// The final prerequisite unlocks the dependent.
	completed := map[string]bool{"html": true, "css": true, "javascript": true}
	newly = NewlyAvailable(g, completed, "javascript")
	if len(newly) != 1 || newly[0].ID != "dom" {
		t.Errorf("newly available = %v, want [dom]", idsOf(newly))
	}
}

// Randomized DAGs: every resolved partition must be total, deterministic,
// and consistent with the prerequisite rule.
func TestResolveRandomDAGs(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 50; trial++ {
		n := 3 + rng.Intn(12)
		skills := make([]skillgraph.Skill, n)
		for i := 0; i < n; i++ {
			s := skillgraph.Skill{
				ID:       fmt.Sprintf("s%d", i),
				Name:     fmt.Sprintf("Skill %d", i),
				Category: skillgraph.CategoryProgramming,
				Level:    1 + i/3,
			}
			// Edges only point backwards, so the result is acyclic.
			for j := 0; j < i; j++ {
				if rng.Intn(3) == 0 {
					s.Prerequisites = append(s.Prerequisites, fmt.Sprintf("s%d", j))
				}
			}
			skills[i] = s
		}

		g, err := skillgraph.New(skills)
		if err != nil {
			t.Fatalf("trial %d: build graph: %v", trial, err)
		}

		completed := make(map[string]bool)
		for i := 0; i < n; i++ {
			if rng.Intn(2) == 0 {
				completed[fmt.Sprintf("s%d", i)] = true
			}
		}

		p := Resolve(g, completed)
		if got := len(p.Completed) + len(p.Available) + len(p.Locked); got != n {
			t.Fatalf("trial %d: partition covers %d, want %d", trial, got, n)
		}

		for _, s := range p.Available {
			if completed[s.ID] {
				t.Fatalf("trial %d: completed skill %s listed available", trial, s.ID)
			}
			for _, prereq := range s.Prerequisites {
				if !completed[prereq] {
					t.Fatalf("trial %d: %s available with incomplete prereq %s", trial, s.ID, prereq)
				}
			}
		}
		for _, s := range p.Locked {
			blocked := false
			for _, prereq := range s.Prerequisites {
				if !completed[prereq] {
					blocked = true
					break
				}
			}
			if !blocked {
				t.Fatalf("trial %d: %s locked with all prereqs complete", trial, s.ID)
			}
		}

		// Determinism: a second resolve yields identical ordering.
		q := Resolve(g, completed)
		if fmt.Sprint(idsOf(p.Available)) != fmt.Sprint(idsOf(q.Available)) ||
			fmt.Sprint(idsOf(p.Locked)) != fmt.Sprint(idsOf(q.Locked)) {
			t.Fatalf("trial %d: resolve not deterministic", trial)
		}
	}
}

func mustGet(t *testing.T, g *skillgraph.Graph, id string) skillgraph.Skill {
	t.Helper()
	s, err := g.Get(id)
	if err != nil {
		t.Fatalf("get %s: %v", id, err)
	}
	return s
}
