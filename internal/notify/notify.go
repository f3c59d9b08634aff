// Package notify buffers user-facing notifications emitted while closing a
// session, so the presentation layer can drain them in one place.
package notify

import (
	"sync"
	"time"
)

// Kind classifies a notification.
type Kind string

const (
	KindAchievement Kind = "achievement"
	KindCelebration Kind = "celebration"
	KindSkillUnlock Kind = "skill_unlock"
	KindLevelUp     Kind = "level_up"
)

// Notification is one user-facing message.
type Notification struct {
	Kind    Kind
	UserID  string
	Title   string
	Message string
	At      time.Time
}

// DefaultWindow bounds how long a notification stays visible via Recent.
const DefaultWindow = 10 * time.Second

// Bridge collects notifications and serves the recent ones. Entries older
// than the window are dropped lazily on read.
type Bridge struct {
	mu      sync.Mutex
	window  time.Duration
	entries []Notification
	now     func() time.Time
}

// NewBridge creates a bridge with the given visibility window.
// A non-positive window uses DefaultWindow.
func NewBridge(window time.Duration) *Bridge {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Bridge{window: window, now: time.Now}
}

// Push adds a notification stamped with the current time.
func (b *Bridge) Push(n Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()
	n.At = b.now()
	b.entries = append(b.entries, n)
}

// Recent returns the user's notifications still inside the window, oldest
// first, and prunes everything expired.
func (b *Bridge) Recent(userID string) []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()

	cutoff := b.now().Add(-b.window)
	kept := b.entries[:0]
	var out []Notification
	for _, n := range b.entries {
		if n.At.Before(cutoff) {
			continue
		}
		kept = append(kept, n)
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	b.entries = kept
	return out
}

// Drain returns and removes all of the user's notifications inside the
// window.
func (b *Bridge) Drain(userID string) []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()

	cutoff := b.now().Add(-b.window)
	kept := b.entries[:0]
	var out []Notification
	for _, n := range b.entries {
		if n.At.Before(cutoff) {
			continue
		}
		if n.UserID == userID {
			out = append(out, n)
			continue
		}
		kept = append(kept, n)
	}
	b.entries = kept
	return out
}
