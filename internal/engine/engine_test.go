package engine

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/skillquest/internal/achievements"
	"github.com/abhisek/skillquest/internal/ledger"
	"github.com/abhisek/skillquest/internal/llm"
	"github.com/abhisek/skillquest/internal/notify"
	"github.com/abhisek/skillquest/internal/progression"
	"github.com/abhisek/skillquest/internal/quizgen"
	"github.com/abhisek/skillquest/internal/session"
	"github.com/abhisek/skillquest/internal/skillgraph"
	"github.com/abhisek/skillquest/internal/store"
)

func progressionJSON() json.RawMessage {
	quiz := func(id, difficulty string, cost int) map[string]any {
		return map[string]any{
			"id":                     id,
			"name":                   id,
			"description":            "drills " + id,
			"category":               "web-foundations",
			"icon":                   "🧩",
			"difficulty":             difficulty,
			"estimated_mins":         15,
			"domain":                 "web design",
			"depth":                  "applied",
			"practical_applications": []string{"a page"},
			"next_steps":             "keep going",
			"unlock_cost":            cost,
			"unlock_message":         "locked",
		}
	}
	raw, _ := json.Marshal(map[string]any{
		"quizzes": []any{
			quiz("html-semantics", "intermediate", 50),
			quiz("html-forms", "advanced", 75),
			quiz("html-accessibility", "expert", 100),
		},
		"rationale": "a natural deepening sequence",
		"celebration": map[string]any{
			"title":              "HTML Mastered!",
			"message":            "Markup holds no secrets for you now.",
			"motivational_quote": "Structure first.",
		},
	})
	return raw
}

func newTestEngine(t *testing.T, mock *llm.MockProvider) (*Engine, *notify.Bridge) {
	t.Helper()

	s, err := store.Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	graph, err := skillgraph.New([]skillgraph.Skill{
		{ID: "html", Name: "HTML", Category: skillgraph.CategoryWebFoundations, Level: 1},
		{ID: "css", Name: "CSS", Category: skillgraph.CategoryWebFoundations, Level: 2, Prerequisites: []string{"html"}},
		{ID: "javascript", Name: "JavaScript", Category: skillgraph.CategoryProgramming, Level: 2, Prerequisites: []string{"html"}},
	})
	require.NoError(t, err)

	ledgerSvc := ledger.NewService(s.LedgerRepo())
	bridge := notify.NewBridge(notify.DefaultWindow)

	provider := llm.WithLogging(mock, s.EventRepo())
	gen := quizgen.NewLLMGenerator(provider, quizgen.DefaultConfig())

	eng, err := New(Options{
		Graph:        graph,
		Ledger:       ledgerSvc,
		Achievements: achievements.NewEngine(s.UnlockRepo(), ledgerSvc, nil),
		Progressions: progression.NewManager(s.ProgressionRepo(), gen),
		Events:       s.EventRepo(),
		Notify:       bridge,
	})
	require.NoError(t, err)
	return eng, bridge
}

func playSession(userID, skillID string, correct int) *session.Session {
	sess := session.New(userID, skillID)
	for i := 0; i < correct; i++ {
		sess.RecordAnswer(true, 10)
	}
	return sess
}

func TestCloseSessionCompletionFlow(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: progressionJSON()})
	eng, bridge := newTestEngine(t, mock)
	ctx := context.Background()

	sess := playSession("u1", "html", 10)
	result, err := eng.CloseSession(ctx, sess, 100, true)
	require.NoError(t, err)

	// Ledger: completed, mastery clamped, transition fired.
	assert.True(t, result.Transitioned)
	assert.True(t, result.Record.Completed)
	assert.Equal(t, 100, result.Record.Mastery)

	// Availability: completing html opens css and javascript.
	assert.Len(t, result.Partition.Completed, 1)
	assert.Len(t, result.Partition.Available, 2)
	newlyIDs := make([]string, 0, len(result.NewlySkills))
	for _, s := range result.NewlySkills {
		newlyIDs = append(newlyIDs, s.ID)
	}
	assert.ElementsMatch(t, []string{"css", "javascript"}, newlyIDs)

	// Progression: generated once with three quizzes.
	require.NoError(t, result.ProgressionErr)
	require.NotNil(t, result.Progression)
	assert.Equal(t, progression.StatusGenerated, result.Progression.Status)
	assert.Len(t, result.Progression.Quizzes, 3)
	assert.Equal(t, "HTML Mastered!", result.Progression.Celebration.Title)

	// Achievements: session facts grant quiz-master, streak-master,
	// perfect-session, first-steps.
	unlockedIDs := make([]string, 0, len(result.Unlocks))
	for _, u := range result.Unlocks {
		unlockedIDs = append(unlockedIDs, u.Achievement.ID)
	}
	assert.ElementsMatch(t,
		[]string{"first-steps", "quiz-master", "streak-master", "perfect-session"},
		unlockedIDs)

	// Profile: 100 session points plus XP rewards, level recomputed.
	assert.Greater(t, result.Profile.TotalPoints, 100)

	// Notifications were emitted for the user.
	assert.NotEmpty(t, bridge.Recent("u1"))
}

func TestCloseSessionReplayIsIdempotent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: progressionJSON()})
	eng, _ := newTestEngine(t, mock)
	ctx := context.Background()

	first, err := eng.CloseSession(ctx, playSession("u1", "html", 10), 100, true)
	require.NoError(t, err)
	require.True(t, first.Transitioned)

	// A second completion of the same skill is not a transition, generates
	// nothing, and grants no duplicate achievements.
	second, err := eng.CloseSession(ctx, playSession("u1", "html", 10), 10, true)
	require.NoError(t, err)
	assert.False(t, second.Transitioned)
	assert.Nil(t, second.Progression)
	assert.Empty(t, second.Unlocks)
	assert.Equal(t, 1, mock.CallCount())
}

func TestCloseSessionWithoutCompletion(t *testing.T) {
	mock := llm.NewMockProvider()
	eng, _ := newTestEngine(t, mock)
	ctx := context.Background()

	sess := playSession("u1", "html", 3)
	result, err := eng.CloseSession(ctx, sess, 30, false)
	require.NoError(t, err)

	assert.False(t, result.Transitioned)
	assert.Equal(t, 30, result.Record.Mastery)
	assert.Nil(t, result.Progression)
	assert.Zero(t, mock.CallCount(), "no generation without a completion transition")

	partition, err := eng.Resolve(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, partition.Available, 1)
	assert.Equal(t, "html", partition.Available[0].ID)
}

func TestCloseSessionGenerationFailureDoesNotFailClose(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue: provider unavailable
	eng, _ := newTestEngine(t, mock)
	ctx := context.Background()

	result, err := eng.CloseSession(ctx, playSession("u1", "html", 10), 100, true)
	require.NoError(t, err)

	assert.True(t, result.Transitioned)
	assert.Error(t, result.ProgressionErr)
	assert.Nil(t, result.Progression)
	var genErr *progression.GenerationError
	assert.ErrorAs(t, result.ProgressionErr, &genErr)

	// The ledger committed despite the failed generation.
	partition, err := eng.Resolve(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, partition.Completed, 1)
}

func TestCloseSessionUnknownSkill(t *testing.T) {
	eng, _ := newTestEngine(t, llm.NewMockProvider())

	_, err := eng.CloseSession(context.Background(), playSession("u1", "rust", 1), 10, false)
	require.Error(t, err)
	var notFound *skillgraph.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
