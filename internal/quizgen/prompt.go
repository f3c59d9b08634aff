package quizgen

import (
	"fmt"
	"strings"
)

const progressionSystemPrompt = `You are a curriculum designer for a gamified learning platform. A learner just completed a skill, and you create the three specialized follow-up quizzes that deepen it.`

func buildProgressionUserMessage(input GenerateInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Completed skill: %s\n", input.Skill.Name))
	b.WriteString(fmt.Sprintf("Category: %s\n", input.Skill.Category))
	if input.Skill.Description != "" {
		b.WriteString(fmt.Sprintf("Description: %s\n", input.Skill.Description))
	}
	b.WriteString(fmt.Sprintf("Learner level: %d\n", input.UserLevel))

	if input.Preferences.LearningStyle != "" {
		b.WriteString(fmt.Sprintf("Learning style: %s\n", input.Preferences.LearningStyle))
	}
	if len(input.Preferences.FavoriteTopics) > 0 {
		b.WriteString(fmt.Sprintf("Favorite topics: %s\n", strings.Join(input.Preferences.FavoriteTopics, ", ")))
	}
	if input.Preferences.Language != "" {
		b.WriteString(fmt.Sprintf("Language: %s\n", input.Preferences.Language))
	}

	b.WriteString(`
Instructions:
Create exactly three specialized quizzes that build on the completed skill:
1. The first quiz is intermediate, the second advanced, the third expert. Difficulty must never decrease across the three.
2. Each quiz drills one distinct facet of the skill. No two quizzes may cover the same ground.
3. Anchor quizzes in the learner's favorite topics where it fits naturally. Never force a topic that doesn't suit the material.
4. Unlock costs rise with difficulty.
5. Write the celebration content for completing the skill: an enthusiastic but not saccharine title and message, plus a short motivational quote.
6. Explain in the rationale why this particular sequence fits this learner.`)

	return b.String()
}
