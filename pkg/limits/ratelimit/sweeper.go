package ratelimit

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// sweeper periodically evicts idle client state so the limiter's memory
// stays proportional to the active client population.
type sweeper struct {
	cron *cron.Cron
}

// SweepIdle removes clients whose last activity is older than the idle
// retention window and returns how many were evicted. Blocked clients
// are kept until their block expires so the block survives idleness.
func (l *Limiter) SweepIdle(now time.Time) int {
	// Collect candidates from lastSeen without taking client mutexes;
	// the atomic read is enough for an eviction heuristic.
	l.mu.RLock()
	candidates := make([]string, 0)
	for clientID, st := range l.clients {
		if st.idleSince(now) > l.config.IdleRetention {
			candidates = append(candidates, clientID)
		}
	}
	l.mu.RUnlock()

	if len(candidates) == 0 {
		return 0
	}

	evicted := 0
	l.mu.Lock()
	for _, clientID := range candidates {
		st, ok := l.clients[clientID]
		if !ok || st.idleSince(now) <= l.config.IdleRetention {
			continue
		}
		if until, blocked := l.blocked[clientID]; blocked && until.After(now) {
			continue
		}
		delete(l.clients, clientID)
		delete(l.blocked, clientID)
		evicted++
	}
	l.mu.Unlock()
	return evicted
}

// StartSweeper begins the background idle sweep at the configured
// interval. It is a no-op if a sweeper is already running.
func (l *Limiter) StartSweeper() error {
	if l.sweeper != nil {
		return nil
	}

	c := cron.New()
	spec := fmt.Sprintf("@every %s", l.config.SweepInterval)
	if _, err := c.AddFunc(spec, func() {
		evicted := l.SweepIdle(l.now())
		if observer := l.onSweep.Load(); observer != nil && evicted > 0 {
			(*observer)(evicted)
		}
	}); err != nil {
		return fmt.Errorf("scheduling idle sweep: %w", err)
	}
	c.Start()
	l.sweeper = &sweeper{cron: c}
	return nil
}

// OnSweep registers an observer called with the eviction count after
// every background sweep that removed at least one client. Passing nil
// clears the observer.
func (l *Limiter) OnSweep(observer func(evicted int)) {
	if observer == nil {
		l.onSweep.Store(nil)
		return
	}
	l.onSweep.Store(&observer)
}

// StopSweeper stops the background sweep, waiting for an in-flight
// sweep to finish.
func (l *Limiter) StopSweeper() {
	if l.sweeper == nil {
		return
	}
	ctx := l.sweeper.cron.Stop()
	<-ctx.Done()
	l.sweeper = nil
}
