package progression

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/abhisek/skillquest/internal/quizgen"
	"github.com/abhisek/skillquest/internal/store"
)

// memProgressionRepo is an in-memory store.ProgressionRepo with atomic insert.
type memProgressionRepo struct {
	mu   sync.Mutex
	rows map[string]store.ProgressionData
}

func newMemProgressionRepo() *memProgressionRepo {
	return &memProgressionRepo{rows: make(map[string]store.ProgressionData)}
}

func (m *memProgressionRepo) key(userID, skillID string) string { return userID + "|" + skillID }

func (m *memProgressionRepo) InsertProgression(_ context.Context, data store.ProgressionData) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := m.key(data.UserID, data.SkillID)
	if _, exists := m.rows[key]; exists {
		return false, nil
	}
	m.rows[key] = data
	return true, nil
}

func (m *memProgressionRepo) GetProgression(_ context.Context, userID, skillID string) (*store.ProgressionData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.rows[m.key(userID, skillID)]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (m *memProgressionRepo) SetPresented(_ context.Context, userID, skillID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := m.key(userID, skillID)
	d, ok := m.rows[key]
	if !ok {
		return nil
	}
	d.Status = string(StatusPresented)
	m.rows[key] = d
	return nil
}

func (m *memProgressionRepo) ListProgressions(_ context.Context, userID string) ([]store.ProgressionData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.ProgressionData
	for _, d := range m.rows {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	// Newest first.
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].GeneratedAt.After(out[i].GeneratedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

// stubGenerator returns a fixed result or error and counts calls.
type stubGenerator struct {
	mu     sync.Mutex
	result *quizgen.GenerationResult
	err    error
	calls  int
}

func (s *stubGenerator) Generate(context.Context, quizgen.GenerateInput) (*quizgen.GenerationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubGenerator) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func validResult() *quizgen.GenerationResult {
	return &quizgen.GenerationResult{
		Quizzes: []quizgen.Quiz{
			{ID: "q1", Name: "Selectors", Difficulty: quizgen.DifficultyIntermediate, UnlockCost: 50},
			{ID: "q2", Name: "Flexbox", Difficulty: quizgen.DifficultyAdvanced, UnlockCost: 75},
			{ID: "q3", Name: "Grid", Difficulty: quizgen.DifficultyExpert, UnlockCost: 100},
		},
		Rationale: "a natural layout ladder",
		Celebration: quizgen.Celebration{
			Title:             "CSS Conquered!",
			Message:           "Great work.",
			MotivationalQuote: "Keep building.",
		},
	}
}

func requestInput(userID, skillID string) quizgen.GenerateInput {
	return quizgen.GenerateInput{
		UserID:           userID,
		CompletedSkillID: skillID,
		Skill:            quizgen.SkillDetails{Name: "CSS", Category: "web-foundations"},
		UserLevel:        2,
	}
}

func TestRequestProgressionGeneratesOnce(t *testing.T) {
	gen := &stubGenerator{result: validResult()}
	m := NewManager(newMemProgressionRepo(), gen)
	ctx := context.Background()

	p, created, err := m.RequestProgression(ctx, requestInput("u1", "css"))
	if err != nil {
		t.Fatalf("first request: %v", err)
	}
	if !created {
		t.Fatal("first request should report created=true")
	}
	if p.Status != StatusGenerated || len(p.Quizzes) != 3 {
		t.Fatalf("unexpected progression: %+v", p)
	}

	// Replay: same record, no new generation.
	p2, created, err := m.RequestProgression(ctx, requestInput("u1", "css"))
	if err != nil {
		t.Fatalf("second request: %v", err)
	}
	if created {
		t.Error("second request reported created=true")
	}
	if p2.GeneratedAt != p.GeneratedAt {
		t.Error("replay returned a different record")
	}
	if gen.callCount() != 1 {
		t.Errorf("generator called %d times, want 1", gen.callCount())
	}
}

func TestRequestProgressionGeneratorFailureNotCommitted(t *testing.T) {
	gen := &stubGenerator{err: errors.New("provider down")}
	repo := newMemProgressionRepo()
	m := NewManager(repo, gen)
	ctx := context.Background()

	_, _, err := m.RequestProgression(ctx, requestInput("u1", "css"))
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %T: %v", err, err)
	}

	if _, err := m.Get(ctx, "u1", "css"); !errors.Is(err, ErrNotFound) {
		t.Fatal("failed generation left a committed record")
	}

	// Retry after the provider recovers succeeds.
	gen.mu.Lock()
	gen.err = nil
	gen.result = validResult()
	gen.mu.Unlock()

	_, created, err := m.RequestProgression(ctx, requestInput("u1", "css"))
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if !created {
		t.Error("retry should have created the progression")
	}
}

func TestRequestProgressionRejectsBadShape(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*quizgen.GenerationResult)
	}{
		{
			name: "two quizzes",
			mutate: func(r *quizgen.GenerationResult) {
				r.Quizzes = r.Quizzes[:2]
			},
		},
		{
			name: "unknown difficulty",
			mutate: func(r *quizgen.GenerationResult) {
				r.Quizzes[1].Difficulty = "easy"
			},
		},
		{
			name: "decreasing difficulty",
			mutate: func(r *quizgen.GenerationResult) {
				r.Quizzes[0].Difficulty = quizgen.DifficultyExpert
				r.Quizzes[2].Difficulty = quizgen.DifficultyIntermediate
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validResult()
			tt.mutate(result)
			m := NewManager(newMemProgressionRepo(), &stubGenerator{result: result})

			_, _, err := m.RequestProgression(context.Background(), requestInput("u1", "css"))
			var genErr *GenerationError
			if !errors.As(err, &genErr) {
				t.Fatalf("expected GenerationError, got %T: %v", err, err)
			}
			var shapeErr *ShapeError
			if !errors.As(err, &shapeErr) {
				t.Fatalf("expected wrapped ShapeError, got %T: %v", err, err)
			}
			if _, err := m.Get(context.Background(), "u1", "css"); !errors.Is(err, ErrNotFound) {
				t.Error("invalid result was committed")
			}
		})
	}
}

func TestRequestProgressionPlateauAllowed(t *testing.T) {
	result := validResult()
	// advanced, advanced, expert is non-decreasing and must pass.
	result.Quizzes[0].Difficulty = quizgen.DifficultyAdvanced
	m := NewManager(newMemProgressionRepo(), &stubGenerator{result: result})

	_, created, err := m.RequestProgression(context.Background(), requestInput("u1", "css"))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if !created {
		t.Error("plateaued difficulties should commit")
	}
}

func TestRequestProgressionConcurrentSingleGeneration(t *testing.T) {
	gen := &stubGenerator{result: validResult()}
	m := NewManager(newMemProgressionRepo(), gen)
	ctx := context.Background()

	const workers = 12
	var wg sync.WaitGroup
	var mu sync.Mutex
	createdCount := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, created, err := m.RequestProgression(ctx, requestInput("u1", "css"))
			if err != nil {
				t.Errorf("request: %v", err)
				return
			}
			if created {
				mu.Lock()
				createdCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if createdCount != 1 {
		t.Errorf("created %d times, want exactly 1", createdCount)
	}
	if gen.callCount() != 1 {
		t.Errorf("generator called %d times, want 1", gen.callCount())
	}
}

func TestMarkPresented(t *testing.T) {
	m := NewManager(newMemProgressionRepo(), &stubGenerator{result: validResult()})
	ctx := context.Background()

	if err := m.MarkPresented(ctx, "u1", "css"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound before generation, got %v", err)
	}

	if _, _, err := m.RequestProgression(ctx, requestInput("u1", "css")); err != nil {
		t.Fatalf("request: %v", err)
	}

	if err := m.MarkPresented(ctx, "u1", "css"); err != nil {
		t.Fatalf("mark presented: %v", err)
	}
	// Idempotent.
	if err := m.MarkPresented(ctx, "u1", "css"); err != nil {
		t.Fatalf("mark presented (repeat): %v", err)
	}

	p, err := m.Get(ctx, "u1", "css")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Status != StatusPresented {
		t.Errorf("status = %q, want presented", p.Status)
	}
}

func TestListAndLatest(t *testing.T) {
	gen := &stubGenerator{result: validResult()}
	m := NewManager(newMemProgressionRepo(), gen)
	ctx := context.Background()

	if _, err := m.LatestForUser(ctx, "u1"); !errors.Is(err, ErrNotFound) {
		t.Fatal("expected ErrNotFound with no progressions")
	}

	for _, skill := range []string{"html", "css"} {
		if _, _, err := m.RequestProgression(ctx, requestInput("u1", skill)); err != nil {
			t.Fatalf("request %s: %v", skill, err)
		}
	}

	all, err := m.ListForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d progressions, want 2", len(all))
	}

	latest, err := m.LatestForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.SkillID != all[0].SkillID {
		t.Errorf("latest = %s, list head = %s", latest.SkillID, all[0].SkillID)
	}
}
