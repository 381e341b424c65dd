package replaylog

import (
	"testing"

	"houndfall/internal/input"
)

func openMemStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndLoadFramesRoundTrip(t *testing.T) {
	s := openMemStore(t)

	rec, err := s.StartRun(42, 1, 1.0/60.0)
	if err != nil {
		t.Fatalf("StartRun: %v", err)
	}

	frames := []input.RawFrame{
		{MoveX: 1, MoveY: 0, Jumping: true},
		{MoveX: 0, MoveY: -1, Light: true, Blocking: true},
	}
	for i, f := range frames {
		if err := rec.Append(uint64(i), f); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	runID, err := rec.Finish("deadbeef")
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}

	info, err := s.LoadRun(runID)
	if err != nil {
		t.Fatalf("LoadRun: %v", err)
	}
	if info.Seed != 42 || info.StartWeapon != 1 {
		t.Errorf("unexpected run info: %+v", info)
	}
	if info.TickCount != 2 {
		t.Errorf("expected tick count 2, got %d", info.TickCount)
	}
	if info.FinalSnapshotHash != "deadbeef" {
		t.Errorf("expected hash deadbeef, got %q", info.FinalSnapshotHash)
	}

	loaded, err := s.LoadFrames(runID)
	if err != nil {
		t.Fatalf("LoadFrames: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(loaded))
	}
	if loaded[0].MoveX != 1 || !loaded[0].Jumping {
		t.Errorf("unexpected first frame: %+v", loaded[0])
	}
	if !loaded[1].Light || !loaded[1].Blocking {
		t.Errorf("unexpected second frame: %+v", loaded[1])
	}
}

func TestListRunsOrdersMostRecentFirst(t *testing.T) {
	s := openMemStore(t)

	rec1, _ := s.StartRun(1, 0, 1.0/60.0)
	rec1.Finish("h1")
	rec2, _ := s.StartRun(2, 0, 1.0/60.0)
	rec2.Finish("h2")

	runs, err := s.ListRuns()
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Seed != 2 || runs[1].Seed != 1 {
		t.Errorf("expected most-recent-first ordering, got seeds %d, %d", runs[0].Seed, runs[1].Seed)
	}
}

func TestAbortDiscardsBufferedFrames(t *testing.T) {
	s := openMemStore(t)

	rec, err := s.StartRun(7, 0, 1.0/60.0)
	if err != nil {
		t.Fatalf("StartRun: %v", err)
	}
	if err := rec.Append(0, input.RawFrame{MoveX: 1}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := rec.Abort(); err != nil {
		t.Fatalf("Abort: %v", err)
	}

	runs, err := s.ListRuns()
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	frames, err := s.LoadFrames(runs[0].ID)
	if err != nil {
		t.Fatalf("LoadFrames: %v", err)
	}
	if len(frames) != 0 {
		t.Errorf("expected no frames after abort, got %d", len(frames))
	}
}
