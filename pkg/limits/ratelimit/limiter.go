package ratelimit

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Limiter enforces per-client sliding-window limits, burst detection,
// cooldowns, and abuse auto-blocks. See the package documentation for
// the full state machine.
type Limiter struct {
	config Config

	// mu protects clients and blocked. Per-client mutation is further
	// serialized by each clientState's own mutex; mu is never acquired
	// while holding a client mutex except through block/unblock, which
	// only touch the blocked map.
	mu      sync.RWMutex
	clients map[string]*clientState
	blocked map[string]time.Time // client -> unblock time

	// now is the clock source, replaceable in tests.
	now func() time.Time

	sweeper *sweeper

	// onSweep, when set, is invoked after background sweeps that
	// evicted at least one client.
	onSweep atomic.Pointer[func(evicted int)]
}

// NewLimiter creates a limiter with the given configuration. Zero
// config fields take their defaults.
func NewLimiter(config Config) *Limiter {
	return &Limiter{
		config:  config.withDefaults(),
		clients: make(map[string]*clientState),
		blocked: make(map[string]time.Time),
		now:     time.Now,
	}
}

// client returns the state for an identifier, creating it lazily.
func (l *Limiter) client(clientID string, now time.Time) *clientState {
	l.mu.RLock()
	st, ok := l.clients[clientID]
	l.mu.RUnlock()
	if ok {
		return st
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if st, ok = l.clients[clientID]; ok {
		return st
	}
	st = newClientState(now)
	l.clients[clientID] = st
	return st
}

// CheckLimit reports whether the client may submit a request. It does
// not consume a window slot; callers record an allowed request's
// outcome with RecordRequest.
//
// A rejection is a final answer for this call, not a failure to retry.
func (l *Limiter) CheckLimit(clientID string) *CheckResult {
	now := l.now()
	st := l.client(clientID, now)

	st.mu.Lock()
	defer st.mu.Unlock()
	st.touch(now)

	// Cooldown overrides window counts entirely.
	if now.Before(st.cooldownUntil) {
		remaining := st.cooldownUntil.Sub(now)
		return &CheckResult{
			Code:       CodeCooldown,
			Reason:     fmt.Sprintf("Rate limit exceeded. Try again in %d seconds", int(remaining.Seconds())),
			RetryAfter: remaining,
		}
	}

	// Block check, with lazy expiry.
	if remaining, blocked := l.blockRemaining(clientID, now); blocked {
		return &CheckResult{
			Code:       CodeBlocked,
			Reason:     fmt.Sprintf("Client blocked for abuse. Unblocked in %d seconds", int(remaining.Seconds())),
			RetryAfter: remaining,
		}
	}

	st.trimWindows(now)

	if st.minute.count() >= l.config.RequestsPerMinute {
		l.applyCooldownLocked(st, now)
		return &CheckResult{
			Code:       CodeMinuteLimit,
			Reason:     fmt.Sprintf("Too many requests. Limit: %d/minute", l.config.RequestsPerMinute),
			RetryAfter: l.config.Cooldown,
		}
	}
	if st.hour.count() >= l.config.RequestsPerHour {
		l.applyCooldownLocked(st, now)
		return &CheckResult{
			Code:       CodeHourLimit,
			Reason:     fmt.Sprintf("Hourly limit exceeded. Limit: %d/hour", l.config.RequestsPerHour),
			RetryAfter: l.config.Cooldown,
		}
	}
	if st.day.count() >= l.config.RequestsPerDay {
		l.applyCooldownLocked(st, now)
		return &CheckResult{
			Code:       CodeDayLimit,
			Reason:     fmt.Sprintf("Daily limit exceeded. Limit: %d/day", l.config.RequestsPerDay),
			RetryAfter: l.config.Cooldown,
		}
	}

	if st.burstDetected(now, l.config.BurstSize, l.config.BurstWindow) {
		l.applyCooldownLocked(st, now)
		return &CheckResult{
			Code:       CodeBurst,
			Reason:     "Burst attack detected. Rate limit applied",
			RetryAfter: l.config.Cooldown,
		}
	}

	return &CheckResult{Allowed: true, Code: CodeOK, Reason: "OK"}
}

// RecordRequest records a request the caller allowed through CheckLimit,
// together with the content outcome. It is the only mutator of window
// queues and abuse counters, and it evaluates the auto-block thresholds.
func (l *Limiter) RecordRequest(clientID string, flagged, suspicious bool) {
	now := l.now()
	st := l.client(clientID, now)

	st.mu.Lock()
	defer st.mu.Unlock()
	st.touch(now)

	st.minute.add(now)
	st.hour.add(now)
	st.day.add(now)
	st.totalRequests++

	if flagged {
		st.flaggedContent++
	}
	if suspicious {
		st.suspiciousPatterns++
	}

	if st.flaggedContent > l.config.FlaggedBlockThreshold {
		l.block(clientID, now.Add(l.config.FlaggedBlockDuration))
	} else if st.suspiciousPatterns > l.config.SuspiciousBlockThreshold {
		l.block(clientID, now.Add(l.config.SuspiciousBlockDuration))
	}
}

// GetClientStats returns a usage snapshot for a client, creating its
// state lazily like any other operation.
func (l *Limiter) GetClientStats(clientID string) Stats {
	now := l.now()
	st := l.client(clientID, now)

	st.mu.Lock()
	defer st.mu.Unlock()
	st.trimWindows(now)

	_, blocked := l.blockRemaining(clientID, now)

	return Stats{
		TotalRequests:      st.totalRequests,
		FlaggedContent:     st.flaggedContent,
		SuspiciousPatterns: st.suspiciousPatterns,
		Violations:         st.violations,
		InCooldown:         now.Before(st.cooldownUntil),
		Blocked:            blocked,
		Minute:             Usage{Count: st.minute.count(), Limit: l.config.RequestsPerMinute},
		Hour:               Usage{Count: st.hour.count(), Limit: l.config.RequestsPerHour},
		Day:                Usage{Count: st.day.count(), Limit: l.config.RequestsPerDay},
		FirstSeen:          st.firstSeen,
	}
}

// UnblockClient lifts a client's block and clears any active cooldown.
func (l *Limiter) UnblockClient(clientID string) {
	l.mu.Lock()
	delete(l.blocked, clientID)
	st, ok := l.clients[clientID]
	l.mu.Unlock()

	if ok {
		st.mu.Lock()
		st.cooldownUntil = time.Time{}
		st.mu.Unlock()
	}
}

// ListBlocked returns the still-active blocks with their remaining
// durations. Expired entries are omitted (they are purged lazily on the
// blocked client's next check).
func (l *Limiter) ListBlocked() map[string]time.Duration {
	now := l.now()

	l.mu.RLock()
	defer l.mu.RUnlock()

	active := make(map[string]time.Duration)
	for clientID, until := range l.blocked {
		if until.After(now) {
			active[clientID] = until.Sub(now)
		}
	}
	return active
}

// ClientCount returns the number of tracked client identifiers.
func (l *Limiter) ClientCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.clients)
}

// applyCooldownLocked starts a cooldown and counts the violation.
// Caller must hold the client's mutex.
func (l *Limiter) applyCooldownLocked(st *clientState, now time.Time) {
	st.cooldownUntil = now.Add(l.config.Cooldown)
	st.violations++
}

// block records an unblock deadline for a client.
func (l *Limiter) block(clientID string, until time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.blocked[clientID] = until
}

// blockRemaining returns the remaining block duration for a client. An
// expired entry is removed and reported as not blocked.
func (l *Limiter) blockRemaining(clientID string, now time.Time) (time.Duration, bool) {
	l.mu.RLock()
	until, ok := l.blocked[clientID]
	l.mu.RUnlock()
	if !ok {
		return 0, false
	}

	if now.Before(until) {
		return until.Sub(now), true
	}

	l.mu.Lock()
	// Re-check: an admin or a concurrent check may have raced us here.
	if until, ok = l.blocked[clientID]; ok && !now.Before(until) {
		delete(l.blocked, clientID)
	}
	l.mu.Unlock()
	return 0, false
}
