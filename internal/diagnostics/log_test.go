package diagnostics

import "testing"

func TestLogRecordIncrementsExactCounterEvenWhenRateLimited(t *testing.T) {
	l := NewLog()
	for i := uint64(0); i < burstPerTick*3; i++ {
		l.Record(InvalidWolfID, i, uint32(i))
	}

	if got := l.Count(InvalidWolfID); got != burstPerTick*3 {
		t.Fatalf("expected exact count %d, got %d", burstPerTick*3, got)
	}
	if l.Count(InvalidPackID) != 0 {
		t.Fatalf("expected unrelated kind's count to stay 0")
	}
}

func TestLogDrainReflectsRecordedEvents(t *testing.T) {
	l := NewLog()
	l.Record(InvalidBodyID, 7, 99)

	events := l.Drain()
	if len(events) != 1 {
		t.Fatalf("expected 1 drained event, got %d", len(events))
	}
	if events[0].Kind != InvalidBodyID || events[0].Tick != 7 || events[0].Detail != 99 {
		t.Fatalf("unexpected event: %+v", events[0])
	}
}
