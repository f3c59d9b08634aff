package ledger

import (
	"context"
	"sync"
	"testing"

	"github.com/abhisek/skillquest/internal/store"
)

// memLedgerRepo is an in-memory store.LedgerRepo for tests.
type memLedgerRepo struct {
	mu       sync.Mutex
	records  map[string]store.CompetenceData
	profiles map[string]store.ProfileData
}

func newMemLedgerRepo() *memLedgerRepo {
	return &memLedgerRepo{
		records:  make(map[string]store.CompetenceData),
		profiles: make(map[string]store.ProfileData),
	}
}

func (m *memLedgerRepo) key(userID, skillID string) string { return userID + "|" + skillID }

func (m *memLedgerRepo) GetCompetence(_ context.Context, userID, skillID string) (*store.CompetenceData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.records[m.key(userID, skillID)]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (m *memLedgerRepo) UpsertCompetence(_ context.Context, data store.CompetenceData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[m.key(data.UserID, data.SkillID)] = data
	return nil
}

func (m *memLedgerRepo) ListCompetence(_ context.Context, userID string) ([]store.CompetenceData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.CompetenceData
	for _, d := range m.records {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
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

func TestGetAbsentIsZeroRecord(t *testing.T) {
	s := NewService(newMemLedgerRepo())
	ctx := context.Background()

	rec, err := s.Get(ctx, "u1", "html")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.SkillID != "html" || rec.Mastery != 0 || rec.Completed {
		t.Errorf("expected zero record, got %+v", rec)
	}
}

func TestApplySessionResultAccumulates(t *testing.T) {
	s := NewService(newMemLedgerRepo())
	ctx := context.Background()

	rec, transitioned, err := s.ApplySessionResult(ctx, "u1", "html", 30, false)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if rec.Mastery != 30 || transitioned {
		t.Errorf("got mastery=%d transitioned=%v, want 30/false", rec.Mastery, transitioned)
	}

	rec, _, err = s.ApplySessionResult(ctx, "u1", "html", 45, false)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if rec.Mastery != 75 {
		t.Errorf("mastery = %d, want 75", rec.Mastery)
	}
}

func TestMasteryClamped(t *testing.T) {
	s := NewService(newMemLedgerRepo())
	ctx := context.Background()

	rec, _, err := s.ApplySessionResult(ctx, "u1", "html", 250, false)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if rec.Mastery != MasteryMax {
		t.Errorf("mastery = %d, want clamp at %d", rec.Mastery, MasteryMax)
	}

	rec, _, err = s.ApplySessionResult(ctx, "u1", "html", -500, false)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if rec.Mastery != 0 {
		t.Errorf("mastery = %d, want clamp at 0", rec.Mastery)
	}
}

func TestCompletionTransitionFiresOnce(t *testing.T) {
	s := NewService(newMemLedgerRepo())
	ctx := context.Background()

	_, transitioned, err := s.ApplySessionResult(ctx, "u1", "html", 80, true)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !transitioned {
		t.Fatal("first completion should report transitioned=true")
	}

	// Replaying completion must not fire the transition again.
	rec, transitioned, err := s.ApplySessionResult(ctx, "u1", "html", 10, true)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if transitioned {
		t.Error("repeat completion reported transitioned=true")
	}
	if !rec.Completed {
		t.Error("completion reverted")
	}
}

func TestCompletionIsMonotonic(t *testing.T) {
	s := NewService(newMemLedgerRepo())
	ctx := context.Background()

	if _, _, err := s.ApplySessionResult(ctx, "u1", "html", 100, true); err != nil {
		t.Fatalf("apply: %v", err)
	}

	// A later bad session lowers mastery but cannot un-complete.
	rec, _, err := s.ApplySessionResult(ctx, "u1", "html", -60, false)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !rec.Completed {
		t.Error("completed flag reverted after negative session")
	}
	if rec.Mastery != 40 {
		t.Errorf("mastery = %d, want 40", rec.Mastery)
	}
}

func TestConcurrentTransitionExactlyOnce(t *testing.T) {
	s := NewService(newMemLedgerRepo())
	ctx := context.Background()

	const workers = 16
	var wg sync.WaitGroup
	var mu sync.Mutex
	transitions := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, transitioned, err := s.ApplySessionResult(ctx, "u1", "html", 10, true)
			if err != nil {
				t.Errorf("apply: %v", err)
				return
			}
			if transitioned {
				mu.Lock()
				transitions++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if transitions != 1 {
		t.Errorf("got %d transitions, want exactly 1", transitions)
	}
}

func TestCompletedSet(t *testing.T) {
	s := NewService(newMemLedgerRepo())
	ctx := context.Background()

	mustApply := func(skillID string, completed bool) {
		t.Helper()
		if _, _, err := s.ApplySessionResult(ctx, "u1", skillID, 50, completed); err != nil {
			t.Fatalf("apply %s: %v", skillID, err)
		}
	}
	mustApply("html", true)
	mustApply("css", false)
	mustApply("terminal", true)

	completed, err := s.CompletedSet(ctx, "u1")
	if err != nil {
		t.Fatalf("completed set: %v", err)
	}
	if len(completed) != 2 || !completed["html"] || !completed["terminal"] {
		t.Errorf("completed set = %v, want {html, terminal}", completed)
	}
}

func TestAddPointsAndLevel(t *testing.T) {
	s := NewService(newMemLedgerRepo())
	ctx := context.Background()

	p, err := s.AddPoints(ctx, "u1", 80)
	if err != nil {
		t.Fatalf("add points: %v", err)
	}
	if p.TotalPoints != 80 || p.Level != 1 {
		t.Errorf("got points=%d level=%d, want 80/1", p.TotalPoints, p.Level)
	}

	p, err = s.AddPoints(ctx, "u1", 150)
	if err != nil {
		t.Fatalf("add points: %v", err)
	}
	if p.TotalPoints != 230 || p.Level != 3 {
		t.Errorf("got points=%d level=%d, want 230/3", p.TotalPoints, p.Level)
	}
}

func TestPreferencesRoundTrip(t *testing.T) {
	s := NewService(newMemLedgerRepo())
	ctx := context.Background()

	prefs := Preferences{
		LearningStyle:  "hands-on",
		FavoriteTopics: []string{"games", "space"},
		Language:       "en",
	}
	if err := s.SetPreferences(ctx, "u1", prefs); err != nil {
		t.Fatalf("set preferences: %v", err)
	}

	p, err := s.Profile(ctx, "u1")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if p.Preferences.LearningStyle != "hands-on" || len(p.Preferences.FavoriteTopics) != 2 {
		t.Errorf("preferences round-trip failed: %+v", p.Preferences)
	}
	// Setting preferences must not disturb points.
	if p.TotalPoints != 0 || p.Level != 1 {
		t.Errorf("profile points changed: %+v", p)
	}
}
