package discord

import (
	"sync"
	"time"
)

// clickLimiter throttles pager clicks per user. Every click triggers a fresh
// TMDB fetch, so a rapid double-click would fire two upstream calls for the
// same view.
type clickLimiter struct {
	mu   sync.Mutex
	next map[string]time.Time
	win  time.Duration
}

func newClickLimiter(window time.Duration) *clickLimiter {
	return &clickLimiter{next: map[string]time.Time{}, win: window}
}

func (l *clickLimiter) Allow(userID string) bool {
	now := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()
	// drop expired entries so the map doesn't grow with one key per user ever seen
	for id, until := range l.next {
		if now.After(until) {
			delete(l.next, id)
		}
	}
	if until, ok := l.next[userID]; ok && now.Before(until) {
		return false
	}
	l.next[userID] = now.Add(l.win)
	return true
}
