package ratelimit

import (
	"sync"
	"sync/atomic"
	"time"
)

// window is a time-ordered timestamp queue over a fixed span. Timestamps
// are appended in order, so eviction is a prefix trim.
type window struct {
	span time.Duration
	ts   []time.Time
}

// trim drops timestamps older than the window span. The remaining
// entries are compacted in place so the backing array does not pin
// evicted values.
func (w *window) trim(now time.Time) {
	cutoff := now.Add(-w.span)
	i := 0
	for i < len(w.ts) && w.ts[i].Before(cutoff) {
		i++
	}
	if i > 0 {
		w.ts = append(w.ts[:0], w.ts[i:]...)
	}
}

func (w *window) add(t time.Time) {
	w.ts = append(w.ts, t)
}

func (w *window) count() int {
	return len(w.ts)
}

// clientState holds all per-client limiter state. Mutation happens only
// while mu is held, which serializes a check/record sequence for one
// client against concurrent requests with the same identifier.
type clientState struct {
	mu sync.Mutex

	minute window
	hour   window
	day    window

	totalRequests      int
	flaggedContent     int
	suspiciousPatterns int
	violations         int

	cooldownUntil time.Time
	firstSeen     time.Time

	// lastSeen is read lock-free by the idle sweeper.
	lastSeen atomic.Int64 // unix nanoseconds
}

func newClientState(now time.Time) *clientState {
	st := &clientState{
		minute:    window{span: time.Minute},
		hour:      window{span: time.Hour},
		day:       window{span: 24 * time.Hour},
		firstSeen: now,
	}
	st.touch(now)
	return st
}

func (st *clientState) touch(now time.Time) {
	st.lastSeen.Store(now.UnixNano())
}

func (st *clientState) idleSince(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, st.lastSeen.Load()))
}

// trimWindows evicts expired timestamps from all three windows. Caller
// must hold st.mu.
func (st *clientState) trimWindows(now time.Time) {
	st.minute.trim(now)
	st.hour.trim(now)
	st.day.trim(now)
}

// burstDetected reports whether the most recent burstSize requests in
// the minute window all fall within burstWindow of now. Caller must
// hold st.mu and have trimmed the windows.
func (st *clientState) burstDetected(now time.Time, burstSize int, burstWindow time.Duration) bool {
	n := st.minute.count()
	if n < burstSize {
		return false
	}
	oldest := st.minute.ts[n-burstSize]
	return now.Sub(oldest) < burstWindow
}
