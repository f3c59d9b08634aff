package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/skillquest/internal/llm"
)

// Generator produces a quiz progression for a completed skill.
type Generator interface {
	Generate(ctx context.Context, input GenerateInput) (*GenerationResult, error)
}

// Config tunes LLM generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns generation defaults. Temperature is above zero so
// repeated progressions for different users don't come out identical.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}

// LLMGenerator implements Generator over an llm.Provider.
type LLMGenerator struct {
	provider llm.Provider
	cfg      Config
}

// NewLLMGenerator creates a generator backed by the given provider.
func NewLLMGenerator(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, cfg: cfg}
}

type progressionOutput struct {
	Quizzes     []quizOutput      `json:"quizzes"`
	Rationale   string            `json:"rationale"`
	Celebration celebrationOutput `json:"celebration"`
}

type quizOutput struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	Description           string   `json:"description"`
	Category              string   `json:"category"`
	Icon                  string   `json:"icon"`
	Difficulty            string   `json:"difficulty"`
	EstimatedMins         int      `json:"estimated_mins"`
	Domain                string   `json:"domain"`
	Depth                 string   `json:"depth"`
	PracticalApplications []string `json:"practical_applications"`
	NextSteps             string   `json:"next_steps"`
	UnlockCost            int      `json:"unlock_cost"`
	UnlockMessage         string   `json:"unlock_message"`
}

type celebrationOutput struct {
	Title             string `json:"title"`
	Message           string `json:"message"`
	MotivationalQuote string `json:"motivational_quote"`
}

// Generate builds the prompt, calls the provider, and parses the result.
// The returned quizzes carry the completed skill as their prerequisite.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*GenerationResult, error) {
	ctx = llm.WithPurpose(ctx, "quiz_generation")

	req := llm.Request{
		System: progressionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildProgressionUserMessage(input)},
		},
		Schema:      ProgressionSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("progression generation: %w", err)
	}

	var out progressionOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse progression response: %w", err)
	}

	result := &GenerationResult{
		Rationale: out.Rationale,
		Celebration: Celebration{
			Title:             out.Celebration.Title,
			Message:           out.Celebration.Message,
			MotivationalQuote: out.Celebration.MotivationalQuote,
		},
	}
	for _, q := range out.Quizzes {
		result.Quizzes = append(result.Quizzes, Quiz{
			ID:                    q.ID,
			Name:                  q.Name,
			Description:           q.Description,
			Category:              q.Category,
			Icon:                  q.Icon,
			Difficulty:            Difficulty(q.Difficulty),
			EstimatedMins:         q.EstimatedMins,
			PrerequisiteSkillIDs:  []string{input.CompletedSkillID},
			Domain:                q.Domain,
			Depth:                 q.Depth,
			PracticalApplications: q.PracticalApplications,
			NextSteps:             q.NextSteps,
			UnlockCost:            q.UnlockCost,
			UnlockMessage:         q.UnlockMessage,
		})
	}
	return result, nil
}
