package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestCompetenceGetAbsent(t *testing.T) {
	s := openTestStore(t)
	repo := s.LedgerRepo()
	ctx := context.Background()

	rec, err := repo.GetCompetence(ctx, "u1", "html")
	if err != nil {
		t.Fatalf("get competence: %v", err)
	}
	if rec != nil {
		t.Fatalf("expected nil for absent record, got %+v", rec)
	}
}

func TestCompetenceUpsertAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.LedgerRepo()
	ctx := context.Background()

	err := repo.UpsertCompetence(ctx, CompetenceData{
		UserID: "u1", SkillID: "html", Mastery: 40,
	})
	if err != nil {
		t.Fatalf("upsert (insert): %v", err)
	}

	err = repo.UpsertCompetence(ctx, CompetenceData{
		UserID: "u1", SkillID: "html", Mastery: 100, Completed: true,
	})
	if err != nil {
		t.Fatalf("upsert (update): %v", err)
	}

	rec, err := repo.GetCompetence(ctx, "u1", "html")
	if err != nil {
		t.Fatalf("get competence: %v", err)
	}
	if rec == nil {
		t.Fatal("expected record after upsert")
	}
	if rec.Mastery != 100 || !rec.Completed {
		t.Errorf("got mastery=%d completed=%v, want 100/true", rec.Mastery, rec.Completed)
	}
}

func TestCompetenceListScopedToUser(t *testing.T) {
	s := openTestStore(t)
	repo := s.LedgerRepo()
	ctx := context.Background()

	for _, d := range []CompetenceData{
		{UserID: "u1", SkillID: "html", Mastery: 100, Completed: true},
		{UserID: "u1", SkillID: "css", Mastery: 30},
		{UserID: "u2", SkillID: "html", Mastery: 50},
	} {
		if err := repo.UpsertCompetence(ctx, d); err != nil {
			t.Fatalf("upsert %s/%s: %v", d.UserID, d.SkillID, err)
		}
	}

	records, err := repo.ListCompetence(ctx, "u1")
	if err != nil {
		t.Fatalf("list competence: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records for u1, want 2", len(records))
	}
	// Ordered by skill ID.
	if records[0].SkillID != "css" || records[1].SkillID != "html" {
		t.Errorf("unexpected order: %s, %s", records[0].SkillID, records[1].SkillID)
	}
}

func TestProfileUpsertAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.LedgerRepo()
	ctx := context.Background()

	p, err := repo.GetProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("get profile (empty): %v", err)
	}
	if p != nil {
		t.Fatal("expected nil profile when none exists")
	}

	err = repo.UpsertProfile(ctx, ProfileData{
		UserID: "u1", TotalPoints: 150, Level: 2,
		LearningStyle:  "visual",
		FavoriteTopics: []string{"games", "music"},
		Language:       "en",
	})
	if err != nil {
		t.Fatalf("upsert profile: %v", err)
	}

	p, err = repo.GetProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p == nil {
		t.Fatal("expected profile after upsert")
	}
	if p.TotalPoints != 150 || p.Level != 2 {
		t.Errorf("got points=%d level=%d, want 150/2", p.TotalPoints, p.Level)
	}
	if len(p.FavoriteTopics) != 2 || p.FavoriteTopics[0] != "games" {
		t.Errorf("favorite topics round-trip failed: %v", p.FavoriteTopics)
	}
}

func TestInsertUnlockIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.UnlockRepo()
	ctx := context.Background()

	data := UnlockData{UserID: "u1", AchievementID: "quiz-master"}

	inserted, err := repo.InsertUnlock(ctx, data)
	if err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if !inserted {
		t.Fatal("first insert should report inserted=true")
	}

	inserted, err = repo.InsertUnlock(ctx, data)
	if err != nil {
		t.Fatalf("second insert: %v", err)
	}
	if inserted {
		t.Fatal("second insert should report inserted=false")
	}

	unlocks, err := repo.ListUnlocks(ctx, "u1")
	if err != nil {
		t.Fatalf("list unlocks: %v", err)
	}
	if len(unlocks) != 1 {
		t.Fatalf("got %d unlocks, want exactly 1", len(unlocks))
	}
}

func TestInsertUnlockDistinctPairs(t *testing.T) {
	s := openTestStore(t)
	repo := s.UnlockRepo()
	ctx := context.Background()

	pairs := []UnlockData{
		{UserID: "u1", AchievementID: "quiz-master"},
		{UserID: "u1", AchievementID: "streak-master"},
		{UserID: "u2", AchievementID: "quiz-master"},
	}
	for _, p := range pairs {
		inserted, err := repo.InsertUnlock(ctx, p)
		if err != nil {
			t.Fatalf("insert %s/%s: %v", p.UserID, p.AchievementID, err)
		}
		if !inserted {
			t.Errorf("insert %s/%s reported inserted=false", p.UserID, p.AchievementID)
		}
	}

	unlocks, err := repo.ListUnlocks(ctx, "u1")
	if err != nil {
		t.Fatalf("list unlocks: %v", err)
	}
	if len(unlocks) != 2 {
		t.Errorf("got %d unlocks for u1, want 2", len(unlocks))
	}
}

func testProgression(userID, skillID string, when time.Time) ProgressionData {
	return ProgressionData{
		UserID:      userID,
		SkillID:     skillID,
		Status:      "generated",
		GeneratedAt: when,
		Quizzes: []QuizData{
			{ID: "q1", Name: "CSS Layout Mastery", Difficulty: "intermediate", EstimatedMins: 15},
			{ID: "q2", Name: "Flexbox Deep Dive", Difficulty: "advanced", EstimatedMins: 20},
			{ID: "q3", Name: "Grid Systems", Difficulty: "expert", EstimatedMins: 25},
		},
		Rationale:          "builds on completed fundamentals",
		CelebrationTitle:   "Skill Complete!",
		CelebrationMessage: "You mastered it.",
		MotivationalQuote:  "Keep going.",
	}
}

func TestInsertProgressionIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressionRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	inserted, err := repo.InsertProgression(ctx, testProgression("u1", "css", now))
	if err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if !inserted {
		t.Fatal("first insert should report inserted=true")
	}

	inserted, err = repo.InsertProgression(ctx, testProgression("u1", "css", now.Add(time.Hour)))
	if err != nil {
		t.Fatalf("second insert: %v", err)
	}
	if inserted {
		t.Fatal("second insert should report inserted=false")
	}

	rec, err := repo.GetProgression(ctx, "u1", "css")
	if err != nil {
		t.Fatalf("get progression: %v", err)
	}
	if rec == nil {
		t.Fatal("expected progression record")
	}
	// The original row wins; the losing insert must not overwrite it.
	if !rec.GeneratedAt.Equal(now) {
		t.Errorf("generated_at = %v, want %v", rec.GeneratedAt, now)
	}
	if len(rec.Quizzes) != 3 {
		t.Fatalf("got %d quizzes, want 3", len(rec.Quizzes))
	}
	if rec.Quizzes[1].Difficulty != "advanced" {
		t.Errorf("quiz round-trip failed: %+v", rec.Quizzes[1])
	}
}

func TestSetPresented(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressionRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	if _, err := repo.InsertProgression(ctx, testProgression("u1", "css", now)); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := repo.SetPresented(ctx, "u1", "css"); err != nil {
		t.Fatalf("set presented: %v", err)
	}
	// Presenting again is a no-op, not an error.
	if err := repo.SetPresented(ctx, "u1", "css"); err != nil {
		t.Fatalf("set presented (repeat): %v", err)
	}

	rec, err := repo.GetProgression(ctx, "u1", "css")
	if err != nil {
		t.Fatalf("get progression: %v", err)
	}
	if rec.Status != "presented" {
		t.Errorf("status = %q, want %q", rec.Status, "presented")
	}
	if !rec.GeneratedAt.Equal(now) {
		t.Errorf("generated_at changed after present: %v", rec.GeneratedAt)
	}
}

func TestListProgressionsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressionRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i, skill := range []string{"html", "css", "javascript"} {
		p := testProgression("u1", skill, base.Add(time.Duration(i)*time.Minute))
		if _, err := repo.InsertProgression(ctx, p); err != nil {
			t.Fatalf("insert %s: %v", skill, err)
		}
	}

	records, err := repo.ListProgressions(ctx, "u1")
	if err != nil {
		t.Fatalf("list progressions: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if records[0].SkillID != "javascript" || records[2].SkillID != "html" {
		t.Errorf("unexpected order: %s, %s, %s",
			records[0].SkillID, records[1].SkillID, records[2].SkillID)
	}
}

func TestSessionEventsSequenced(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID:         "s1",
			UserID:            "u1",
			SkillID:           "html",
			QuestionsAnswered: 10,
			CorrectAnswers:    8 + i,
			Points:            80,
			BestStreak:        5,
		})
		if err != nil {
			t.Fatalf("append event %d: %v", i, err)
		}
	}

	records, err := repo.QuerySessionSummaries(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query summaries: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	// Newest first: sequences strictly decreasing.
	for i := 1; i < len(records); i++ {
		if records[i].Sequence >= records[i-1].Sequence {
			t.Errorf("sequence not decreasing at %d: %d then %d",
				i, records[i-1].Sequence, records[i].Sequence)
		}
	}
}

func TestQuerySessionSummariesFiltered(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, userID := range []string{"u1", "u2", "u1"} {
		err := repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID: "s-" + userID, UserID: userID, SkillID: "html",
		})
		if err != nil {
			t.Fatalf("append for %s: %v", userID, err)
		}
	}

	records, err := repo.QuerySessionSummaries(ctx, QueryOpts{UserID: "u1"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("got %d records for u1, want 2", len(records))
	}

	records, err = repo.QuerySessionSummaries(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query with limit: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("got %d records with limit 1, want 1", len(records))
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "m", Purpose: "quiz_generation", InputTokens: 100, OutputTokens: 400, Success: true},
		{Provider: "anthropic", Model: "m", Purpose: "quiz_generation", InputTokens: 120, OutputTokens: 380, Success: false, ErrorMessage: "rate limited"},
		{Provider: "openai", Model: "m2", Purpose: "session_feedback", InputTokens: 50, OutputTokens: 60, Success: true},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d purposes, want 2", len(stats))
	}

	byPurpose := make(map[string]LLMUsageStats, len(stats))
	for _, st := range stats {
		byPurpose[st.Purpose] = st
	}
	gen := byPurpose["quiz_generation"]
	if gen.Requests != 2 || gen.Failures != 1 {
		t.Errorf("quiz_generation: requests=%d failures=%d, want 2/1", gen.Requests, gen.Failures)
	}
	if gen.InputTokens != 220 || gen.OutputTokens != 780 {
		t.Errorf("quiz_generation tokens: in=%d out=%d, want 220/780", gen.InputTokens, gen.OutputTokens)
	}
}

func TestQueryLLMRequestsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:    "mock",
			Model:       "m",
			Purpose:     "quiz_generation",
			InputTokens: i,
			Success:     true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.QueryLLMRequests(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].Sequence >= records[i-1].Sequence {
			t.Errorf("records not newest first: seq[%d]=%d seq[%d]=%d",
				i-1, records[i-1].Sequence, i, records[i].Sequence)
		}
	}
	if records[0].InputTokens != 2 {
		t.Errorf("newest record input tokens = %d, want 2", records[0].InputTokens)
	}

	limited, err := repo.QueryLLMRequests(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query with limit: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("got %d records with limit 1, want 1", len(limited))
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		n, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if n <= prev {
			t.Fatalf("sequence not monotonic: %d after %d", n, prev)
		}
		prev = n
	}
}
