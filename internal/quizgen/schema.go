package quizgen

import "github.com/abhisek/skillquest/internal/llm"

// ProgressionSchema defines the JSON schema for quiz progression generation.
// It demands exactly three quizzes; difficulty ordering is enforced by the
// caller after parsing.
var ProgressionSchema = &llm.Schema{
	Name:        "quiz-progression",
	Description: "Three specialized follow-up quizzes plus celebration content for a completed skill",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"quizzes": map[string]any{
				"type":        "array",
				"minItems":    3,
				"maxItems":    3,
				"description": "Exactly three quizzes ordered easiest to hardest",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "string",
							"description": "Kebab-case identifier, e.g. 'css-flexbox-layouts'",
						},
						"name": map[string]any{
							"type":        "string",
							"description": "Display name (3-6 words)",
						},
						"description": map[string]any{
							"type":        "string",
							"description": "What the quiz covers (1-2 sentences)",
						},
						"category": map[string]any{
							"type":        "string",
							"description": "Category of the completed skill",
						},
						"icon": map[string]any{
							"type":        "string",
							"description": "Single emoji or short icon name",
						},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"intermediate", "advanced", "expert"},
						},
						"estimated_mins": map[string]any{
							"type":        "integer",
							"minimum":     5,
							"maximum":     60,
							"description": "Estimated completion time in minutes",
						},
						"domain": map[string]any{
							"type":        "string",
							"description": "Real-world domain the quiz applies the skill to",
						},
						"depth": map[string]any{
							"type":        "string",
							"description": "How deep the quiz goes, e.g. 'applied patterns'",
						},
						"practical_applications": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "2-4 concrete things the learner could build",
						},
						"next_steps": map[string]any{
							"type":        "string",
							"description": "What to pursue after this quiz (1 sentence)",
						},
						"unlock_cost": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"description": "Point cost to unlock the quiz",
						},
						"unlock_message": map[string]any{
							"type":        "string",
							"description": "Short teaser shown while the quiz is locked",
						},
					},
					"required": []any{
						"id", "name", "description", "category", "icon",
						"difficulty", "estimated_mins", "domain", "depth",
						"practical_applications", "next_steps", "unlock_cost",
						"unlock_message",
					},
					"additionalProperties": false,
				},
			},
			"rationale": map[string]any{
				"type":        "string",
				"description": "Why these three quizzes fit this learner (2-3 sentences)",
			},
			"celebration": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title": map[string]any{
						"type":        "string",
						"description": "Celebratory headline (3-6 words)",
					},
					"message": map[string]any{
						"type":        "string",
						"description": "Personalized congratulations (1-2 sentences)",
					},
					"motivational_quote": map[string]any{
						"type":        "string",
						"description": "Short motivational quote fitting the achievement",
					},
				},
				"required":             []any{"title", "message", "motivational_quote"},
				"additionalProperties": false,
			},
		},
		"required":             []any{"quizzes", "rationale", "celebration"},
		"additionalProperties": false,
	},
}
