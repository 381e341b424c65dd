// Package replaylog persists recorded input-frame logs for regression
// replay (spec.md §8's "Determinism" testable property: same seed,
// same input sequence, same final state). This is a host concern, not
// THE CORE's: spec.md §6 states plainly "there is no persisted state
// format" for the core itself, so the core never imports this package
// — only cmd/replay does.
package replaylog

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Store wraps a sql.DB over one sqlite file of recorded runs.
type Store struct {
	conn *sql.DB
}

// Open opens (or creates) the sqlite database at path and applies the
// schema, grounded on pableeee-go-cs-metrics's storage.Open — same
// DSN shape, WAL journal mode for a single-writer recorder.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL", path)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("replaylog: open %s: %w", path, err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("replaylog: apply schema: %w", err)
	}
	return &Store{conn: conn}, nil
}

func (s *Store) Close() error { return s.conn.Close() }
