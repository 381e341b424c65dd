package replaylog

import (
	"fmt"
	"time"

	"database/sql"

	"houndfall/internal/input"
)

// Recorder buffers one run's input frames in an open transaction,
// grounded on pableeee-go-cs-metrics's InsertPlayerMatchStats
// (prepared statement inside a transaction, one Exec per row,
// committed in one batch rather than once per frame).
type Recorder struct {
	store *Store
	runID int64
	tx    *sql.Tx
	stmt  *sql.Stmt
	ticks uint64
}

// StartRun inserts a new run row and opens the frame-recording
// transaction. seed/startWeapon mirror the exact arguments Core.InitRun
// takes, and dtSeconds is the fixed per-tick delta the recorder drove
// Update with, so a replay can reconstruct the initial call and tick
// cadence precisely (spec.md §5's determinism budget covers dt values
// too, not just input frames).
func (s *Store) StartRun(seed, startWeapon uint32, dtSeconds float64) (*Recorder, error) {
	res, err := s.conn.Exec(
		`INSERT INTO runs(seed, start_weapon, dt_seconds, created_unix) VALUES (?, ?, ?, ?)`,
		seed, startWeapon, dtSeconds, time.Now().Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("replaylog: insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("replaylog: run id: %w", err)
	}

	tx, err := s.conn.Begin()
	if err != nil {
		return nil, fmt.Errorf("replaylog: begin tx: %w", err)
	}
	stmt, err := tx.Prepare(`
		INSERT INTO frames(run_id, tick, move_x, move_y, rolling, jumping, light, heavy, blocking, special)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("replaylog: prepare frame insert: %w", err)
	}

	return &Recorder{store: s, runID: runID, tx: tx, stmt: stmt}, nil
}

// Append records one tick's input frame.
func (r *Recorder) Append(tick uint64, frame input.RawFrame) error {
	_, err := r.stmt.Exec(
		r.runID, tick, frame.MoveX, frame.MoveY,
		boolInt(frame.Rolling), boolInt(frame.Jumping), boolInt(frame.Light),
		boolInt(frame.Heavy), boolInt(frame.Blocking), boolInt(frame.Special),
	)
	if err != nil {
		return fmt.Errorf("replaylog: append frame %d: %w", tick, err)
	}
	r.ticks++
	return nil
}

// Finish commits every buffered frame and records the final snapshot
// hash (spec.md §8 scenario 5 compares this across two replays of the
// same seed+input log).
func (r *Recorder) Finish(finalSnapshotHash string) (int64, error) {
	if err := r.stmt.Close(); err != nil {
		r.tx.Rollback()
		return 0, fmt.Errorf("replaylog: close frame statement: %w", err)
	}
	if err := r.tx.Commit(); err != nil {
		return 0, fmt.Errorf("replaylog: commit frames: %w", err)
	}
	_, err := r.store.conn.Exec(
		`UPDATE runs SET tick_count = ?, final_snapshot_hash = ? WHERE id = ?`,
		r.ticks, finalSnapshotHash, r.runID,
	)
	if err != nil {
		return 0, fmt.Errorf("replaylog: finalize run %d: %w", r.runID, err)
	}
	return r.runID, nil
}

// Abort rolls back the in-progress transaction, discarding the run's
// buffered frames without deleting the run row itself.
func (r *Recorder) Abort() error {
	r.stmt.Close()
	return r.tx.Rollback()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
