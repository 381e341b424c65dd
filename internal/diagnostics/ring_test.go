package diagnostics

import "testing"

func TestRingDrainReturnsPushedEventsInOrder(t *testing.T) {
	var r Ring
	for i := uint64(0); i < 5; i++ {
		r.Push(Event{Kind: InvalidWolfID, Tick: i, Detail: uint32(i)})
	}

	events := r.Drain()
	if len(events) != 5 {
		t.Fatalf("expected 5 events, got %d", len(events))
	}
	for i, e := range events {
		if e.Tick != uint64(i) {
			t.Fatalf("expected event %d to have tick %d, got %d", i, i, e.Tick)
		}
	}
}

func TestRingDrainIsEmptyAfterDraining(t *testing.T) {
	var r Ring
	r.Push(Event{Kind: InvalidPackID, Tick: 1})
	r.Drain()

	if events := r.Drain(); events != nil {
		t.Fatalf("expected nil on a second drain with nothing new, got %v", events)
	}
}

func TestRingOverwritesOldestWhenFull(t *testing.T) {
	var r Ring
	for i := uint64(0); i < ringSize+10; i++ {
		r.Push(Event{Kind: InvalidBodyID, Tick: i})
	}

	events := r.Drain()
	if len(events) != ringSize {
		t.Fatalf("expected exactly ringSize events retained, got %d", len(events))
	}
	if events[0].Tick != 10 {
		t.Fatalf("expected oldest surviving event to be tick 10, got %d", events[0].Tick)
	}
	if r.DroppedCount() != 10 {
		t.Fatalf("expected DroppedCount 10, got %d", r.DroppedCount())
	}
}
