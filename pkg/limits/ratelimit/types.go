package ratelimit

import "time"

// Config configures the rate limiter. Zero fields take their defaults
// in NewLimiter.
type Config struct {
	// RequestsPerMinute is the minute-window ceiling. Default: 60.
	RequestsPerMinute int

	// RequestsPerHour is the hour-window ceiling. Default: 1000.
	RequestsPerHour int

	// RequestsPerDay is the day-window ceiling. Default: 10000.
	RequestsPerDay int

	// BurstSize is how many recent requests are inspected for burst
	// detection. Default: 10.
	BurstSize int

	// BurstWindow is the span within which BurstSize requests count as
	// an attack regardless of the minute ceiling. Default: 5s.
	BurstWindow time.Duration

	// Cooldown is the rejection period applied after any violation.
	// Default: 5m.
	Cooldown time.Duration

	// FlaggedBlockThreshold auto-blocks a client once its cumulative
	// flagged-content count exceeds this value. Default: 50.
	FlaggedBlockThreshold int

	// FlaggedBlockDuration is the block length for flagged-content
	// escalation. Default: 24h.
	FlaggedBlockDuration time.Duration

	// SuspiciousBlockThreshold auto-blocks a client once its cumulative
	// suspicious-pattern count exceeds this value. Default: 20.
	SuspiciousBlockThreshold int

	// SuspiciousBlockDuration is the block length for suspicious-pattern
	// escalation. Default: 1h.
	SuspiciousBlockDuration time.Duration

	// IdleRetention is how long an inactive, unblocked client's state is
	// kept before the sweeper may drop it. Default: 24h.
	IdleRetention time.Duration

	// SweepInterval is how often the sweeper runs when started.
	// Default: 1m.
	SweepInterval time.Duration
}

// DefaultConfig returns the limiter defaults.
func DefaultConfig() Config {
	return Config{
		RequestsPerMinute:        60,
		RequestsPerHour:          1000,
		RequestsPerDay:           10000,
		BurstSize:                10,
		BurstWindow:              5 * time.Second,
		Cooldown:                 5 * time.Minute,
		FlaggedBlockThreshold:    50,
		FlaggedBlockDuration:     24 * time.Hour,
		SuspiciousBlockThreshold: 20,
		SuspiciousBlockDuration:  time.Hour,
		IdleRetention:            24 * time.Hour,
		SweepInterval:            time.Minute,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.RequestsPerMinute <= 0 {
		c.RequestsPerMinute = d.RequestsPerMinute
	}
	if c.RequestsPerHour <= 0 {
		c.RequestsPerHour = d.RequestsPerHour
	}
	if c.RequestsPerDay <= 0 {
		c.RequestsPerDay = d.RequestsPerDay
	}
	if c.BurstSize <= 0 {
		c.BurstSize = d.BurstSize
	}
	if c.BurstWindow <= 0 {
		c.BurstWindow = d.BurstWindow
	}
	if c.Cooldown <= 0 {
		c.Cooldown = d.Cooldown
	}
	if c.FlaggedBlockThreshold <= 0 {
		c.FlaggedBlockThreshold = d.FlaggedBlockThreshold
	}
	if c.FlaggedBlockDuration <= 0 {
		c.FlaggedBlockDuration = d.FlaggedBlockDuration
	}
	if c.SuspiciousBlockThreshold <= 0 {
		c.SuspiciousBlockThreshold = d.SuspiciousBlockThreshold
	}
	if c.SuspiciousBlockDuration <= 0 {
		c.SuspiciousBlockDuration = d.SuspiciousBlockDuration
	}
	if c.IdleRetention <= 0 {
		c.IdleRetention = d.IdleRetention
	}
	if c.SweepInterval <= 0 {
		c.SweepInterval = d.SweepInterval
	}
	return c
}

// Reason codes for CheckResult. These are bounded and suitable as
// metric labels; Reason carries the human-readable detail.
const (
	CodeOK          = "ok"
	CodeCooldown    = "cooldown"
	CodeBlocked     = "blocked"
	CodeMinuteLimit = "minute_limit"
	CodeHourLimit   = "hour_limit"
	CodeDayLimit    = "day_limit"
	CodeBurst       = "burst"
)

// CheckResult is the typed outcome of a limit check. A rejection is a
// normal result, not an error.
type CheckResult struct {
	// Allowed indicates whether the client may submit the request.
	Allowed bool

	// Code is the machine-readable rejection class (CodeOK when allowed).
	Code string

	// Reason is a human-readable explanation suitable for a user-facing
	// response.
	Reason string

	// RetryAfter is how long until the client should try again, when
	// known.
	RetryAfter time.Duration
}

// Usage reports the occupancy of one sliding window.
type Usage struct {
	Count int
	Limit int
}

// Stats is a point-in-time usage snapshot for one client, for admin and
// observability tooling.
type Stats struct {
	TotalRequests      int
	FlaggedContent     int
	SuspiciousPatterns int
	Violations         int
	InCooldown         bool
	Blocked            bool
	Minute             Usage
	Hour               Usage
	Day                Usage
	FirstSeen          time.Time
}
