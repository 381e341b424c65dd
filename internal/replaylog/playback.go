package replaylog

import (
	"fmt"

	"houndfall/internal/input"
)

// RunInfo is one recorded run's bookkeeping row.
type RunInfo struct {
	ID                int64
	Seed              uint32
	StartWeapon       uint32
	DTSeconds         float64
	CreatedUnix       int64
	TickCount         uint64
	FinalSnapshotHash string
}

// ListRuns returns every recorded run, most recent first.
func (s *Store) ListRuns() ([]RunInfo, error) {
	rows, err := s.conn.Query(`
		SELECT id, seed, start_weapon, dt_seconds, created_unix, tick_count, final_snapshot_hash
		FROM runs ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("replaylog: list runs: %w", err)
	}
	defer rows.Close()

	var out []RunInfo
	for rows.Next() {
		var r RunInfo
		if err := rows.Scan(&r.ID, &r.Seed, &r.StartWeapon, &r.DTSeconds, &r.CreatedUnix, &r.TickCount, &r.FinalSnapshotHash); err != nil {
			return nil, fmt.Errorf("replaylog: scan run: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// LoadRun returns one run's bookkeeping by id.
func (s *Store) LoadRun(runID int64) (RunInfo, error) {
	var r RunInfo
	err := s.conn.QueryRow(`
		SELECT id, seed, start_weapon, dt_seconds, created_unix, tick_count, final_snapshot_hash
		FROM runs WHERE id = ?`, runID).
		Scan(&r.ID, &r.Seed, &r.StartWeapon, &r.DTSeconds, &r.CreatedUnix, &r.TickCount, &r.FinalSnapshotHash)
	if err != nil {
		return RunInfo{}, fmt.Errorf("replaylog: load run %d: %w", runID, err)
	}
	return r, nil
}

// LoadFrames returns every recorded input frame for a run, ordered by
// tick, ready to feed back through Core.SetPlayerInput/Update in
// lockstep for a deterministic replay.
func (s *Store) LoadFrames(runID int64) ([]input.RawFrame, error) {
	rows, err := s.conn.Query(`
		SELECT move_x, move_y, rolling, jumping, light, heavy, blocking, special
		FROM frames WHERE run_id = ? ORDER BY tick ASC`, runID)
	if err != nil {
		return nil, fmt.Errorf("replaylog: load frames for run %d: %w", runID, err)
	}
	defer rows.Close()

	var out []input.RawFrame
	for rows.Next() {
		var f input.RawFrame
		var rolling, jumping, light, heavy, blocking, special int
		if err := rows.Scan(&f.MoveX, &f.MoveY, &rolling, &jumping, &light, &heavy, &blocking, &special); err != nil {
			return nil, fmt.Errorf("replaylog: scan frame: %w", err)
		}
		f.Rolling, f.Jumping, f.Light, f.Heavy, f.Blocking, f.Special =
			rolling != 0, jumping != 0, light != 0, heavy != 0, blocking != 0, special != 0
		out = append(out, f)
	}
	return out, rows.Err()
}
