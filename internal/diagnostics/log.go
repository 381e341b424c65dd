package diagnostics

import "golang.org/x/time/rate"

// burstPerTick caps how many diagnostic events one tick can push into
// the ring before the limiter starts dropping them; a single
// pathological tick (e.g. a host spamming invalid ids) shouldn't be
// able to flush out every older, possibly more useful, event.
const burstPerTick = 32

// Log is Core's diagnostic sink: a rate-limited counter plus a bounded
// ring of recent events. Adapted from fight-club-go's EventLog — same
// global rate.Limiter guarding the ring from being overwhelmed — but
// without EventLog's async writer goroutine and per-player limiter.
// The core is single-threaded and synchronous within one Update call,
// so there is no producer/consumer race to guard against, and
// diagnostic events have no player identity to key a per-source limit
// by; counting is exact regardless of what the ring itself retains.
type Log struct {
	ring    Ring
	limiter *rate.Limiter
	counts  [numEventKinds]uint64
}

// NewLog constructs an empty diagnostic log.
func NewLog() *Log {
	return &Log{
		limiter: rate.NewLimiter(rate.Limit(burstPerTick*60), burstPerTick),
	}
}

// Record increments kind's exact counter and, unless the limiter is
// presently exhausted, appends an Event to the ring. The counter is
// never rate-limited — only how many events survive for inspection.
func (l *Log) Record(kind EventKind, tick uint64, detail uint32) {
	l.counts[kind]++
	if !l.limiter.Allow() {
		return
	}
	l.ring.Push(Event{Kind: kind, Tick: tick, Detail: detail})
}

// Drain returns every unread event, oldest first.
func (l *Log) Drain() []Event { return l.ring.Drain() }

// Count reports the exact, never-rate-limited occurrence count for
// kind since the log was created.
func (l *Log) Count(kind EventKind) uint64 {
	if int(kind) >= len(l.counts) {
		return 0
	}
	return l.counts[kind]
}

// DroppedCount reports events the ring overwrote before a drain could
// read them.
func (l *Log) DroppedCount() uint64 { return l.ring.DroppedCount() }
