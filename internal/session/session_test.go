package session

import "testing"

func TestNewSessionHasIdentity(t *testing.T) {
	s := New("u1", "html")
	if s.ID == "" {
		t.Error("empty session ID")
	}
	if s.UserID != "u1" || s.SkillID != "html" {
		t.Errorf("unexpected identity: %s/%s", s.UserID, s.SkillID)
	}
	if s.StartedAt.IsZero() {
		t.Error("zero start time")
	}

	s2 := New("u1", "html")
	if s2.ID == s.ID {
		t.Error("two sessions share an ID")
	}
}

func TestRecordAnswerTallies(t *testing.T) {
	s := New("u1", "html")

	s.RecordAnswer(true, 10)
	s.RecordAnswer(true, 10)
	s.RecordAnswer(false, 10)
	s.RecordAnswer(true, 15)

	if s.QuestionsAnswered != 4 {
		t.Errorf("answered = %d, want 4", s.QuestionsAnswered)
	}
	if s.CorrectAnswers != 3 {
		t.Errorf("correct = %d, want 3", s.CorrectAnswers)
	}
	if s.Points != 35 {
		t.Errorf("points = %d, want 35", s.Points)
	}
}

func TestStreakResetsOnWrongAnswer(t *testing.T) {
	s := New("u1", "html")

	for i := 0; i < 3; i++ {
		s.RecordAnswer(true, 10)
	}
	if s.Streak != 3 || s.BestStreak != 3 {
		t.Fatalf("streak=%d best=%d, want 3/3", s.Streak, s.BestStreak)
	}

	s.RecordAnswer(false, 10)
	if s.Streak != 0 {
		t.Errorf("streak = %d after wrong answer, want 0", s.Streak)
	}
	if s.BestStreak != 3 {
		t.Errorf("best streak = %d, want 3 preserved", s.BestStreak)
	}

	s.RecordAnswer(true, 10)
	s.RecordAnswer(true, 10)
	if s.Streak != 2 || s.BestStreak != 3 {
		t.Errorf("streak=%d best=%d, want 2/3", s.Streak, s.BestStreak)
	}
}

func TestAccuracy(t *testing.T) {
	s := New("u1", "html")
	if s.Accuracy() != 0 {
		t.Errorf("accuracy = %v on empty session, want 0", s.Accuracy())
	}

	s.RecordAnswer(true, 10)
	s.RecordAnswer(false, 10)
	if s.Accuracy() != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", s.Accuracy())
	}
}
