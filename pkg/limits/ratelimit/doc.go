// Package ratelimit provides per-client sliding-window rate limiting
// with burst detection and escalating abuse penalties.
//
// # Overview
//
// Each client identifier gets three independent sliding windows (minute,
// hour, day) backed by time-ordered timestamp queues, so eviction is a
// prefix trim rather than a scan. A request is allowed only when all
// three window counts are below their ceilings and no burst condition is
// detected:
//
//	limiter := ratelimit.NewLimiter(ratelimit.DefaultConfig())
//	if res := limiter.CheckLimit(clientID); res.Allowed {
//	    // handle the request, then record the outcome
//	    limiter.RecordRequest(clientID, flagged, suspicious)
//	}
//
// # Escalation
//
// Violating any ceiling or the burst condition puts the client in a
// cooldown during which every request is rejected. Cumulative abuse
// counters escalate further: too much flagged content earns a 24-hour
// block, too many suspicious patterns a 1-hour block. Blocks expire
// lazily on the next check and can be lifted early with UnblockClient.
//
// # Thread Safety
//
// CheckLimit and RecordRequest are safe to call concurrently across
// clients. Mutation of a single client's state is serialized by a
// per-client mutex, so two concurrent requests can never both consume
// the last remaining window slot.
//
// # Memory
//
// Client state is created lazily and never grows past the day window per
// client, but idle identifiers would otherwise accumulate for the life
// of the process. StartSweeper schedules a periodic sweep that drops
// clients idle past the retention period.
package ratelimit
