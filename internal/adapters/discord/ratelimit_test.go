package discord

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClickLimiterThrottlesWithinWindow(t *testing.T) {
	l := newClickLimiter(time.Hour)
	assert.True(t, l.Allow("alice"))
	assert.False(t, l.Allow("alice"))
	assert.True(t, l.Allow("bob"), "users are limited independently")
}

func TestClickLimiterAllowsAfterWindow(t *testing.T) {
	l := newClickLimiter(5 * time.Millisecond)
	assert.True(t, l.Allow("alice"))
	time.Sleep(10 * time.Millisecond)
	assert.True(t, l.Allow("alice"))
}

func TestClickLimiterPrunesExpiredEntries(t *testing.T) {
	l := newClickLimiter(5 * time.Millisecond)
	for _, id := range []string{"a", "b", "c"} {
		l.Allow(id)
	}
	time.Sleep(10 * time.Millisecond)

	l.Allow("d")

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Len(t, l.next, 1, "stale entries must not accumulate")
}
