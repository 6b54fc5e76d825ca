package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Result is the outcome of a cooldown check.
type Result struct {
	Allowed bool
	// RetryAfter is the whole seconds remaining until the identity may
	// submit again. Zero when Allowed.
	RetryAfter int
}

// Limiter gates public form submissions per sender identity. Implementations
// must never fail a submission on their own error — absence of state means
// the submission is allowed.
type Limiter interface {
	Check(ctx context.Context, identity string) Result
}

// Key normalizes a submitter identity (email) into a cooldown key.
func Key(identity string) string {
	return strings.ToLower(strings.TrimSpace(identity))
}

// MemoryLimiter enforces the cooldown with a process-local map of identity to
// the time of the last allowed submission. Entries are overwritten on every
// allowed submission and never evicted; state is lost on restart and not
// shared across instances.
type MemoryLimiter struct {
	window time.Duration
	now    func() time.Time

	mu   sync.Mutex
	last map[string]time.Time
}

// NewMemoryLimiter creates a MemoryLimiter with the given cooldown window.
func NewMemoryLimiter(window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		window: window,
		now:    time.Now,
		last:   make(map[string]time.Time),
	}
}

var _ Limiter = (*MemoryLimiter)(nil)

// Check allows the identity if it has no entry or its window has elapsed, and
// records the current time. On block the map is left untouched.
func (l *MemoryLimiter) Check(_ context.Context, identity string) Result {
	key := Key(identity)
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	last, ok := l.last[key]
	if !ok || now.Sub(last) >= l.window {
		l.last[key] = now
		return Result{Allowed: true}
	}
	return Result{RetryAfter: ceilSeconds(l.window - now.Sub(last))}
}

// ceilSeconds rounds a positive duration up to whole seconds, minimum 1.
func ceilSeconds(d time.Duration) int {
	s := int(d / time.Second)
	if d%time.Second > 0 {
		s++
	}
	if s < 1 {
		s = 1
	}
	return s
}

// FormatRetryAfter renders a wait in whole seconds as human-readable text,
// e.g. "45 seconds", "1 minute", "2 minutes 30 seconds".
func FormatRetryAfter(seconds int) string {
	if seconds < 60 {
		return plural(seconds, "second")
	}
	minutes := seconds / 60
	rest := seconds % 60
	if rest == 0 {
		return plural(minutes, "minute")
	}
	return plural(minutes, "minute") + " " + plural(rest, "second")
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
