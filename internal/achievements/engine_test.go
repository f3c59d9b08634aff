package achievements

import (
	"context"
	"sync"
	"testing"

	"github.com/abhisek/skillquest/internal/ledger"
	"github.com/abhisek/skillquest/internal/store"
)

// memUnlockRepo is an in-memory store.UnlockRepo with atomic insert.
type memUnlockRepo struct {
	mu      sync.Mutex
	unlocks map[string]store.UnlockData
	order   []string
}

func newMemUnlockRepo() *memUnlockRepo {
	return &memUnlockRepo{unlocks: make(map[string]store.UnlockData)}
}

func (m *memUnlockRepo) InsertUnlock(_ context.Context, data store.UnlockData) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := data.UserID + "|" + data.AchievementID
	if _, exists := m.unlocks[key]; exists {
		return false, nil
	}
	m.unlocks[key] = data
	m.order = append(m.order, key)
	return true, nil
}

func (m *memUnlockRepo) ListUnlocks(_ context.Context, userID string) ([]store.UnlockData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.UnlockData
	for _, key := range m.order {
		if d := m.unlocks[key]; d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

// memLedgerRepo mirrors the ledger package's test double; only profile
// methods matter here.
type memLedgerRepo struct {
	mu       sync.Mutex
	profiles map[string]store.ProfileData
}

func newMemLedgerRepo() *memLedgerRepo {
	return &memLedgerRepo{profiles: make(map[string]store.ProfileData)}
}

func (m *memLedgerRepo) GetCompetence(context.Context, string, string) (*store.CompetenceData, error) {
	return nil, nil
}
func (m *memLedgerRepo) UpsertCompetence(context.Context, store.CompetenceData) error { return nil }
func (m *memLedgerRepo) ListCompetence(context.Context, string) ([]store.CompetenceData, error) {
	return nil, nil
}

func (m *memLedgerRepo) GetProfile(_ context.Context, userID string) (*store.ProfileData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *memLedgerRepo) UpsertProfile(_ context.Context, data store.ProfileData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[data.UserID] = data
	return nil
}

func newTestEngine() (*Engine, *memLedgerRepo) {
	ledgerRepo := newMemLedgerRepo()
	return NewEngine(newMemUnlockRepo(), ledger.NewService(ledgerRepo), nil), ledgerRepo
}

func TestEvaluateGrantsMatchingRules(t *testing.T) {
	e, _ := newTestEngine()
	ctx := context.Background()

	facts := Facts{
		Session: SessionStats{QuestionsAnswered: 12, CorrectAnswers: 10, BestStreak: 6},
	}
	unlocks, err := e.Evaluate(ctx, "u1", facts)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	got := make(map[string]bool, len(unlocks))
	for _, u := range unlocks {
		got[u.Achievement.ID] = true
	}
	if !got["quiz-master"] {
		t.Error("expected quiz-master with 10 correct answers")
	}
	if !got["streak-master"] {
		t.Error("expected streak-master with streak of 6")
	}
	if got["perfect-session"] {
		t.Error("perfect-session granted at 10/12 accuracy")
	}
	if got["first-steps"] {
		t.Error("first-steps granted with no completed skills")
	}
}

func TestEvaluateAtMostOnce(t *testing.T) {
	e, _ := newTestEngine()
	ctx := context.Background()

	facts := Facts{Session: SessionStats{BestStreak: 5}}

	unlocks, err := e.Evaluate(ctx, "u1", facts)
	if err != nil {
		t.Fatalf("first evaluate: %v", err)
	}
	if len(unlocks) != 1 || unlocks[0].Achievement.ID != "streak-master" {
		t.Fatalf("first evaluate granted %v, want [streak-master]", unlocks)
	}

	// Replaying the same facts grants nothing.
	unlocks, err = e.Evaluate(ctx, "u1", facts)
	if err != nil {
		t.Fatalf("second evaluate: %v", err)
	}
	if len(unlocks) != 0 {
		t.Errorf("second evaluate granted %d unlocks, want 0", len(unlocks))
	}
}

func TestEvaluateXPAppliedExactlyOnce(t *testing.T) {
	e, ledgerRepo := newTestEngine()
	ctx := context.Background()

	facts := Facts{Session: SessionStats{BestStreak: 5}}
	for i := 0; i < 3; i++ {
		if _, err := e.Evaluate(ctx, "u1", facts); err != nil {
			t.Fatalf("evaluate %d: %v", i, err)
		}
	}

	p, err := ledgerRepo.GetProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p == nil || p.TotalPoints != 50 {
		t.Errorf("profile = %+v, want exactly 50 points from one streak-master grant", p)
	}
}

func TestEvaluateConcurrentAtMostOnce(t *testing.T) {
	e, ledgerRepo := newTestEngine()
	ctx := context.Background()

	facts := Facts{Session: SessionStats{QuestionsAnswered: 10, CorrectAnswers: 10, BestStreak: 10}}

	const workers = 16
	var wg sync.WaitGroup
	var mu sync.Mutex
	total := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlocks, err := e.Evaluate(ctx, "u1", facts)
			if err != nil {
				t.Errorf("evaluate: %v", err)
				return
			}
			mu.Lock()
			total += len(unlocks)
			mu.Unlock()
		}()
	}
	wg.Wait()

	// quiz-master, streak-master, perfect-session: 3 distinct grants across
	// all workers combined.
	if total != 3 {
		t.Errorf("got %d total grants across workers, want 3", total)
	}

	p, err := ledgerRepo.GetProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	want := 50 + 50 + 75
	if p == nil || p.TotalPoints != want {
		t.Errorf("profile points = %+v, want %d", p, want)
	}
}

func TestGrantedSkipsRetiredRules(t *testing.T) {
	repo := newMemUnlockRepo()
	e := NewEngine(repo, nil, nil)
	ctx := context.Background()

	if _, err := repo.InsertUnlock(ctx, store.UnlockData{UserID: "u1", AchievementID: "streak-master"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := repo.InsertUnlock(ctx, store.UnlockData{UserID: "u1", AchievementID: "retired-rule"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	unlocks, err := e.Granted(ctx, "u1")
	if err != nil {
		t.Fatalf("granted: %v", err)
	}
	if len(unlocks) != 1 || unlocks[0].Achievement.ID != "streak-master" {
		t.Errorf("granted = %v, want only streak-master", unlocks)
	}
}

func TestAccuracyZeroWhenNothingAnswered(t *testing.T) {
	s := SessionStats{}
	if got := s.Accuracy(); got != 0 {
		t.Errorf("accuracy = %v, want 0", got)
	}
}

func TestCatalogIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range Catalog() {
		if seen[a.ID] {
			t.Errorf("duplicate achievement ID %q", a.ID)
		}
		seen[a.ID] = true
		if a.Predicate == nil {
			t.Errorf("achievement %q has nil predicate", a.ID)
		}
	}
}
