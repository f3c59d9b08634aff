// Package engine orchestrates the learning progression flow: closing a quiz
// session updates the ledger, re-resolves availability, triggers quiz
// progression on completion, evaluates achievements, and emits
// notifications.
package engine

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/skillquest/internal/achievements"
	"github.com/abhisek/skillquest/internal/availability"
	"github.com/abhisek/skillquest/internal/ledger"
	"github.com/abhisek/skillquest/internal/notify"
	"github.com/abhisek/skillquest/internal/progression"
	"github.com/abhisek/skillquest/internal/quizgen"
	"github.com/abhisek/skillquest/internal/session"
	"github.com/abhisek/skillquest/internal/skillgraph"
	"github.com/abhisek/skillquest/internal/store"
)

// Options collects the engine's collaborators. All fields except Notify are
// required; a nil Notify disables notifications.
type Options struct {
	Graph        *skillgraph.Graph
	Ledger       *ledger.Service
	Achievements *achievements.Engine
	Progressions *progression.Manager
	Events       store.EventRepo
	Notify       *notify.Bridge
}

// Engine is the composition root for the progression flow.
type Engine struct {
	graph        *skillgraph.Graph
	ledger       *ledger.Service
	achievements *achievements.Engine
	progressions *progression.Manager
	events       store.EventRepo
	notify       *notify.Bridge
}

// New creates an engine from its collaborators.
func New(opts Options) (*Engine, error) {
	switch {
	case opts.Graph == nil:
		return nil, fmt.Errorf("engine: graph is required")
	case opts.Ledger == nil:
		return nil, fmt.Errorf("engine: ledger is required")
	case opts.Achievements == nil:
		return nil, fmt.Errorf("engine: achievements engine is required")
	case opts.Progressions == nil:
		return nil, fmt.Errorf("engine: progression manager is required")
	case opts.Events == nil:
		return nil, fmt.Errorf("engine: event repo is required")
	}
	return &Engine{
		graph:        opts.Graph,
		ledger:       opts.Ledger,
		achievements: opts.Achievements,
		progressions: opts.Progressions,
		events:       opts.Events,
		notify:       opts.Notify,
	}, nil
}

// CloseResult reports everything that happened while closing a session.
type CloseResult struct {
	Record       ledger.CompetenceRecord
	Transitioned bool
	Profile      ledger.Profile
	Partition    availability.Partition
	NewlySkills  []skillgraph.Skill
	Unlocks      []achievements.Unlock
	Progression  *progression.Progression

	// ProgressionErr holds a generation failure. The session close itself
	// still committed; a later replay of the completed skill retries
	// generation.
	ProgressionErr error
}

// CloseSession folds a finished session into the ledger and runs every
// downstream consumer. masteryDelta is the competence change earned this
// session; completionReached marks the skill as completed.
func (e *Engine) CloseSession(ctx context.Context, sess *session.Session, masteryDelta int, completionReached bool) (*CloseResult, error) {
	skill, err := e.graph.Get(sess.SkillID)
	if err != nil {
		return nil, fmt.Errorf("close session: %w", err)
	}

	// Completion with incomplete prerequisites is applied anyway but flagged;
	// the event log is where curriculum bugs like this surface.
	prereqGap := false
	if completionReached {
		completedBefore, err := e.ledger.CompletedSet(ctx, sess.UserID)
		if err != nil {
			return nil, fmt.Errorf("read completed set: %w", err)
		}
		for _, prereqID := range skill.Prerequisites {
			if !completedBefore[prereqID] {
				prereqGap = true
				fmt.Fprintf(os.Stderr, "warning: %s completed %s with incomplete prerequisite %s\n",
					sess.UserID, skill.ID, prereqID)
				break
			}
		}
	}

	record, transitioned, err := e.ledger.ApplySessionResult(ctx, sess.UserID, sess.SkillID, masteryDelta, completionReached)
	if err != nil {
		return nil, fmt.Errorf("apply session result: %w", err)
	}

	profileBefore, err := e.ledger.Profile(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	profile, err := e.ledger.AddPoints(ctx, sess.UserID, sess.Points)
	if err != nil {
		return nil, fmt.Errorf("credit session points: %w", err)
	}
	if profile.Level > profileBefore.Level {
		e.push(notify.Notification{
			Kind:    notify.KindLevelUp,
			UserID:  sess.UserID,
			Title:   fmt.Sprintf("Level %d!", profile.Level),
			Message: fmt.Sprintf("You reached level %d.", profile.Level),
		})
	}

	if err := e.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:         sess.ID,
		UserID:            sess.UserID,
		SkillID:           sess.SkillID,
		QuestionsAnswered: sess.QuestionsAnswered,
		CorrectAnswers:    sess.CorrectAnswers,
		Points:            sess.Points,
		BestStreak:        sess.BestStreak,
		CompletionReached: completionReached,
		PrereqGap:         prereqGap,
		DurationSecs:      int(sess.Duration().Seconds()),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log session event: %v\n", err)
	}

	result := &CloseResult{
		Record:       record,
		Transitioned: transitioned,
		Profile:      profile,
	}

	completed, err := e.ledger.CompletedSet(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("read completed set: %w", err)
	}
	result.Partition = availability.Resolve(e.graph, completed)

	// The completion transition is the only progression trigger: replays and
	// repeat completions never regenerate.
	if transitioned {
		result.NewlySkills = availability.NewlyAvailable(e.graph, completed, skill.ID)
		for _, s := range result.NewlySkills {
			e.push(notify.Notification{
				Kind:    notify.KindSkillUnlock,
				UserID:  sess.UserID,
				Title:   fmt.Sprintf("%s unlocked", s.Name),
				Message: fmt.Sprintf("Completing %s opened up %s.", skill.Name, s.Name),
			})
		}

		prog, _, err := e.progressions.RequestProgression(ctx, quizgen.GenerateInput{
			UserID:           sess.UserID,
			CompletedSkillID: skill.ID,
			Skill: quizgen.SkillDetails{
				Name:        skill.Name,
				Category:    string(skill.Category),
				Description: skill.Description,
			},
			UserLevel:   profile.Level,
			Preferences: profile.Preferences,
		})
		if err != nil {
			// The session is already committed; surface the failure without
			// undoing the close.
			result.ProgressionErr = err
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		} else {
			result.Progression = prog
			e.push(notify.Notification{
				Kind:    notify.KindCelebration,
				UserID:  sess.UserID,
				Title:   prog.Celebration.Title,
				Message: prog.Celebration.Message,
			})
		}
	}

	unlocks, err := e.achievements.Evaluate(ctx, sess.UserID, achievements.Facts{
		Session: achievements.SessionStats{
			QuestionsAnswered: sess.QuestionsAnswered,
			CorrectAnswers:    sess.CorrectAnswers,
			BestStreak:        sess.BestStreak,
			CompletionReached: completionReached,
		},
		CompletedSkills: len(completed),
		TotalPoints:     profile.TotalPoints,
		Level:           profile.Level,
	})
	if err != nil {
		return nil, fmt.Errorf("evaluate achievements: %w", err)
	}
	result.Unlocks = unlocks
	for _, u := range unlocks {
		e.push(notify.Notification{
			Kind:    notify.KindAchievement,
			UserID:  sess.UserID,
			Title:   u.Achievement.Title,
			Message: u.Achievement.Description,
		})
	}

	return result, nil
}

// Resolve returns the user's current availability partition.
func (e *Engine) Resolve(ctx context.Context, userID string) (availability.Partition, error) {
	completed, err := e.ledger.CompletedSet(ctx, userID)
	if err != nil {
		return availability.Partition{}, fmt.Errorf("read completed set: %w", err)
	}
	return availability.Resolve(e.graph, completed), nil
}

func (e *Engine) push(n notify.Notification) {
	if e.notify == nil {
		return
	}
	e.notify.Push(n)
}
