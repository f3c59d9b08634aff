// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/skillquest/ent/achievementunlock"
	"github.com/abhisek/skillquest/ent/competencerecord"
	"github.com/abhisek/skillquest/ent/llmrequestevent"
	"github.com/abhisek/skillquest/ent/quizprogression"
	"github.com/abhisek/skillquest/ent/schema"
	"github.com/abhisek/skillquest/ent/sessionevent"
	"github.com/abhisek/skillquest/ent/userprofile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementunlockFields := schema.AchievementUnlock{}.Fields()
	_ = achievementunlockFields
	// achievementunlockDescUserID is the schema descriptor for user_id field.
	achievementunlockDescUserID := achievementunlockFields[0].Descriptor()
	// achievementunlock.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	achievementunlock.UserIDValidator = achievementunlockDescUserID.Validators[0].(func(string) error)
	// achievementunlockDescAchievementID is the schema descriptor for achievement_id field.
	achievementunlockDescAchievementID := achievementunlockFields[1].Descriptor()
	// achievementunlock.AchievementIDValidator is a validator for the "achievement_id" field. It is called by the builders before save.
	achievementunlock.AchievementIDValidator = achievementunlockDescAchievementID.Validators[0].(func(string) error)
	// achievementunlockDescUnlockedAt is the schema descriptor for unlocked_at field.
	achievementunlockDescUnlockedAt := achievementunlockFields[2].Descriptor()
	// achievementunlock.DefaultUnlockedAt holds the default value on creation for the unlocked_at field.
	achievementunlock.DefaultUnlockedAt = achievementunlockDescUnlockedAt.Default.(func() time.Time)
	competencerecordFields := schema.CompetenceRecord{}.Fields()
	_ = competencerecordFields
	// competencerecordDescUserID is the schema descriptor for user_id field.
	competencerecordDescUserID := competencerecordFields[0].Descriptor()
	// competencerecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	competencerecord.UserIDValidator = competencerecordDescUserID.Validators[0].(func(string) error)
	// competencerecordDescSkillID is the schema descriptor for skill_id field.
	competencerecordDescSkillID := competencerecordFields[1].Descriptor()
	// competencerecord.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	competencerecord.SkillIDValidator = competencerecordDescSkillID.Validators[0].(func(string) error)
	// competencerecordDescMastery is the schema descriptor for mastery field.
	competencerecordDescMastery := competencerecordFields[2].Descriptor()
	// competencerecord.DefaultMastery holds the default value on creation for the mastery field.
	competencerecord.DefaultMastery = competencerecordDescMastery.Default.(int)
	// competencerecord.MasteryValidator is a validator for the "mastery" field. It is called by the builders before save.
	competencerecord.MasteryValidator = func() func(int) error {
		validators := competencerecordDescMastery.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(mastery int) error {
			for _, fn := range fns {
				if err := fn(mastery); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// competencerecordDescCompleted is the schema descriptor for completed field.
	competencerecordDescCompleted := competencerecordFields[3].Descriptor()
	// competencerecord.DefaultCompleted holds the default value on creation for the completed field.
	competencerecord.DefaultCompleted = competencerecordDescCompleted.Default.(bool)
	// competencerecordDescUpdatedAt is the schema descriptor for updated_at field.
	competencerecordDescUpdatedAt := competencerecordFields[4].Descriptor()
	// competencerecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	competencerecord.DefaultUpdatedAt = competencerecordDescUpdatedAt.Default.(func() time.Time)
	// competencerecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	competencerecord.UpdateDefaultUpdatedAt = competencerecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.DefaultPurpose holds the default value on creation for the purpose field.
	llmrequestevent.DefaultPurpose = llmrequesteventDescPurpose.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescSuccess is the schema descriptor for success field.
	llmrequesteventDescSuccess := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultSuccess holds the default value on creation for the success field.
	llmrequestevent.DefaultSuccess = llmrequesteventDescSuccess.Default.(bool)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	quizprogressionFields := schema.QuizProgression{}.Fields()
	_ = quizprogressionFields
	// quizprogressionDescUserID is the schema descriptor for user_id field.
	quizprogressionDescUserID := quizprogressionFields[0].Descriptor()
	// quizprogression.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	quizprogression.UserIDValidator = quizprogressionDescUserID.Validators[0].(func(string) error)
	// quizprogressionDescSkillID is the schema descriptor for skill_id field.
	quizprogressionDescSkillID := quizprogressionFields[1].Descriptor()
	// quizprogression.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	quizprogression.SkillIDValidator = quizprogressionDescSkillID.Validators[0].(func(string) error)
	// quizprogressionDescGeneratedAt is the schema descriptor for generated_at field.
	quizprogressionDescGeneratedAt := quizprogressionFields[3].Descriptor()
	// quizprogression.DefaultGeneratedAt holds the default value on creation for the generated_at field.
	quizprogression.DefaultGeneratedAt = quizprogressionDescGeneratedAt.Default.(func() time.Time)
	// quizprogressionDescRationale is the schema descriptor for rationale field.
	quizprogressionDescRationale := quizprogressionFields[5].Descriptor()
	// quizprogression.DefaultRationale holds the default value on creation for the rationale field.
	quizprogression.DefaultRationale = quizprogressionDescRationale.Default.(string)
	// quizprogressionDescCelebrationTitle is the schema descriptor for celebration_title field.
	quizprogressionDescCelebrationTitle := quizprogressionFields[6].Descriptor()
	// quizprogression.DefaultCelebrationTitle holds the default value on creation for the celebration_title field.
	quizprogression.DefaultCelebrationTitle = quizprogressionDescCelebrationTitle.Default.(string)
	// quizprogressionDescCelebrationMessage is the schema descriptor for celebration_message field.
	quizprogressionDescCelebrationMessage := quizprogressionFields[7].Descriptor()
	// quizprogression.DefaultCelebrationMessage holds the default value on creation for the celebration_message field.
	quizprogression.DefaultCelebrationMessage = quizprogressionDescCelebrationMessage.Default.(string)
	// quizprogressionDescMotivationalQuote is the schema descriptor for motivational_quote field.
	quizprogressionDescMotivationalQuote := quizprogressionFields[8].Descriptor()
	// quizprogression.DefaultMotivationalQuote holds the default value on creation for the motivational_quote field.
	quizprogression.DefaultMotivationalQuote = quizprogressionDescMotivationalQuote.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescUserID is the schema descriptor for user_id field.
	sessioneventDescUserID := sessioneventFields[1].Descriptor()
	// sessionevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	sessionevent.UserIDValidator = sessioneventDescUserID.Validators[0].(func(string) error)
	// sessioneventDescSkillID is the schema descriptor for skill_id field.
	sessioneventDescSkillID := sessioneventFields[2].Descriptor()
	// sessionevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	sessionevent.SkillIDValidator = sessioneventDescSkillID.Validators[0].(func(string) error)
	// sessioneventDescQuestionsAnswered is the schema descriptor for questions_answered field.
	sessioneventDescQuestionsAnswered := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultQuestionsAnswered holds the default value on creation for the questions_answered field.
	sessionevent.DefaultQuestionsAnswered = sessioneventDescQuestionsAnswered.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescPoints is the schema descriptor for points field.
	sessioneventDescPoints := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultPoints holds the default value on creation for the points field.
	sessionevent.DefaultPoints = sessioneventDescPoints.Default.(int)
	// sessioneventDescBestStreak is the schema descriptor for best_streak field.
	sessioneventDescBestStreak := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultBestStreak holds the default value on creation for the best_streak field.
	sessionevent.DefaultBestStreak = sessioneventDescBestStreak.Default.(int)
	// sessioneventDescCompletionReached is the schema descriptor for completion_reached field.
	sessioneventDescCompletionReached := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultCompletionReached holds the default value on creation for the completion_reached field.
	sessionevent.DefaultCompletionReached = sessioneventDescCompletionReached.Default.(bool)
	// sessioneventDescPrereqGap is the schema descriptor for prereq_gap field.
	sessioneventDescPrereqGap := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultPrereqGap holds the default value on creation for the prereq_gap field.
	sessionevent.DefaultPrereqGap = sessioneventDescPrereqGap.Default.(bool)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[9].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	userprofileFields := schema.UserProfile{}.Fields()
	_ = userprofileFields
	// userprofileDescUserID is the schema descriptor for user_id field.
	userprofileDescUserID := userprofileFields[0].Descriptor()
	// userprofile.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	userprofile.UserIDValidator = userprofileDescUserID.Validators[0].(func(string) error)
	// userprofileDescTotalPoints is the schema descriptor for total_points field.
	userprofileDescTotalPoints := userprofileFields[1].Descriptor()
	// userprofile.DefaultTotalPoints holds the default value on creation for the total_points field.
	userprofile.DefaultTotalPoints = userprofileDescTotalPoints.Default.(int)
	// userprofileDescLevel is the schema descriptor for level field.
	userprofileDescLevel := userprofileFields[2].Descriptor()
	// userprofile.DefaultLevel holds the default value on creation for the level field.
	userprofile.DefaultLevel = userprofileDescLevel.Default.(int)
	// userprofileDescLearningStyle is the schema descriptor for learning_style field.
	userprofileDescLearningStyle := userprofileFields[3].Descriptor()
	// userprofile.DefaultLearningStyle holds the default value on creation for the learning_style field.
	userprofile.DefaultLearningStyle = userprofileDescLearningStyle.Default.(string)
	// userprofileDescLanguage is the schema descriptor for language field.
	userprofileDescLanguage := userprofileFields[5].Descriptor()
	// userprofile.DefaultLanguage holds the default value on creation for the language field.
	userprofile.DefaultLanguage = userprofileDescLanguage.Default.(string)
}
