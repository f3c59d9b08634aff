package quizgen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/skillquest/internal/ledger"
	"github.com/abhisek/skillquest/internal/llm"
)

func validProgressionJSON() json.RawMessage {
	quiz := func(id, name, difficulty string, cost int) map[string]any {
		return map[string]any{
			"id":                     id,
			"name":                   name,
			"description":            "Covers " + name,
			"category":               "web-foundations",
			"icon":                   "🧩",
			"difficulty":             difficulty,
			"estimated_mins":         15,
			"domain":                 "web design",
			"depth":                  "applied patterns",
			"practical_applications": []string{"a landing page", "a photo grid"},
			"next_steps":             "Move on to responsive design.",
			"unlock_cost":            cost,
			"unlock_message":         "Unlock to master " + name,
		}
	}
	payload := map[string]any{
		"quizzes": []any{
			quiz("css-selectors-deep", "Selector Mastery", "intermediate", 50),
			quiz("css-flexbox-layouts", "Flexbox Layouts", "advanced", 75),
			quiz("css-grid-systems", "Grid Systems", "expert", 100),
		},
		"rationale": "Builds from selectors through layout engines.",
		"celebration": map[string]any{
			"title":              "CSS Conquered!",
			"message":            "You styled your way to the top.",
			"motivational_quote": "Design is intelligence made visible.",
		},
	}
	raw, _ := json.Marshal(payload)
	return raw
}

func testInput() GenerateInput {
	return GenerateInput{
		UserID:           "u1",
		CompletedSkillID: "css",
		Skill: SkillDetails{
			Name:        "CSS",
			Category:    "web-foundations",
			Description: "Styling web pages",
		},
		UserLevel: 3,
		Preferences: ledger.Preferences{
			LearningStyle:  "hands-on",
			FavoriteTopics: []string{"games", "photography"},
			Language:       "en",
		},
	}
}

func TestGenerateParsesResult(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validProgressionJSON()},
	)
	g := NewLLMGenerator(mock, DefaultConfig())

	result, err := g.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(result.Quizzes) != 3 {
		t.Fatalf("got %d quizzes, want 3", len(result.Quizzes))
	}
	if result.Quizzes[0].Difficulty != DifficultyIntermediate ||
		result.Quizzes[2].Difficulty != DifficultyExpert {
		t.Errorf("difficulty order wrong: %v, %v",
			result.Quizzes[0].Difficulty, result.Quizzes[2].Difficulty)
	}
	if result.Celebration.Title != "CSS Conquered!" {
		t.Errorf("celebration title = %q", result.Celebration.Title)
	}
	if result.Rationale == "" {
		t.Error("empty rationale")
	}
}

func TestGenerateStampsPrerequisite(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validProgressionJSON()},
	)
	g := NewLLMGenerator(mock, DefaultConfig())

	result, err := g.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, q := range result.Quizzes {
		if len(q.PrerequisiteSkillIDs) != 1 || q.PrerequisiteSkillIDs[0] != "css" {
			t.Errorf("quiz %s prerequisites = %v, want [css]", q.ID, q.PrerequisiteSkillIDs)
		}
	}
}

func TestGeneratePromptCarriesPersonalization(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validProgressionJSON()},
	)
	g := NewLLMGenerator(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), testInput()); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "quiz-progression" {
		t.Errorf("request schema = %+v, want quiz-progression", req.Schema)
	}
	userMsg := req.Messages[0].Content
	for _, want := range []string{"CSS", "hands-on", "games, photography", "Learner level: 3"} {
		if !strings.Contains(userMsg, want) {
			t.Errorf("user message missing %q", want)
		}
	}
}

func TestGeneratePropagatesProviderError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	g := NewLLMGenerator(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), testInput()); err == nil {
		t.Fatal("expected error from unavailable provider")
	}
}

func TestDifficultyRank(t *testing.T) {
	tests := []struct {
		d    Difficulty
		rank int
	}{
		{DifficultyIntermediate, 1},
		{DifficultyAdvanced, 2},
		{DifficultyExpert, 3},
		{Difficulty("easy"), 0},
		{Difficulty(""), 0},
	}
	for _, tt := range tests {
		if got := tt.d.Rank(); got != tt.rank {
			t.Errorf("Rank(%q) = %d, want %d", tt.d, got, tt.rank)
		}
		if tt.d.Valid() != (tt.rank > 0) {
			t.Errorf("Valid(%q) inconsistent with rank", tt.d)
		}
	}
}
