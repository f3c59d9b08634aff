package notify

import (
	"testing"
	"time"
)

func TestPushAndRecent(t *testing.T) {
	b := NewBridge(time.Minute)

	b.Push(Notification{Kind: KindAchievement, UserID: "u1", Title: "Streak Master"})
	b.Push(Notification{Kind: KindCelebration, UserID: "u1", Title: "CSS Conquered!"})
	b.Push(Notification{Kind: KindAchievement, UserID: "u2", Title: "First Steps"})

	got := b.Recent("u1")
	if len(got) != 2 {
		t.Fatalf("got %d notifications for u1, want 2", len(got))
	}
	if got[0].Title != "Streak Master" || got[1].Title != "CSS Conquered!" {
		t.Errorf("order wrong: %s, %s", got[0].Title, got[1].Title)
	}
	if got[0].At.IsZero() {
		t.Error("notification not timestamped")
	}
}

func TestRecentDropsExpired(t *testing.T) {
	b := NewBridge(10 * time.Second)
	base := time.Now()
	current := base
	b.now = func() time.Time { return current }

	b.Push(Notification{UserID: "u1", Title: "old"})
	current = base.Add(15 * time.Second)
	b.Push(Notification{UserID: "u1", Title: "fresh"})

	got := b.Recent("u1")
	if len(got) != 1 || got[0].Title != "fresh" {
		t.Errorf("recent = %v, want only the fresh entry", got)
	}
}

func TestDrainRemovesOnlyUsersEntries(t *testing.T) {
	b := NewBridge(time.Minute)

	b.Push(Notification{UserID: "u1", Title: "a"})
	b.Push(Notification{UserID: "u2", Title: "b"})

	got := b.Drain("u1")
	if len(got) != 1 || got[0].Title != "a" {
		t.Fatalf("drain = %v, want [a]", got)
	}
	if len(b.Drain("u1")) != 0 {
		t.Error("second drain returned entries")
	}
	if len(b.Recent("u2")) != 1 {
		t.Error("drain for u1 removed u2's entry")
	}
}

func TestNonPositiveWindowUsesDefault(t *testing.T) {
	b := NewBridge(0)
	if b.window != DefaultWindow {
		t.Errorf("window = %v, want %v", b.window, DefaultWindow)
	}
}
