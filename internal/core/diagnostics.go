package core

import "houndfall/internal/diagnostics"

// DrainDiagnostics returns every diagnostic event recorded since the
// last drain (spec.md §7's "optional debug export"). Never consulted
// by gameplay logic; purely informational for a host.
func (c *Core) DrainDiagnostics() []diagnostics.Event { return c.diag.Drain() }

// GetInvalidWolfIDCount reports how many times an operation referenced
// a wolf id that no longer (or never did) resolve to a live wolf.
func (c *Core) GetInvalidWolfIDCount() uint64 { return c.diag.Count(diagnostics.InvalidWolfID) }

// GetInvalidPackIDCount reports the same for pack ids.
func (c *Core) GetInvalidPackIDCount() uint64 { return c.diag.Count(diagnostics.InvalidPackID) }

// GetInvalidBodyIDCount reports the same for physics body ids.
func (c *Core) GetInvalidBodyIDCount() uint64 { return c.diag.Count(diagnostics.InvalidBodyID) }

// GetDiagnosticsDroppedCount reports events overwritten in the ring
// before a host could drain them; the exact counters above are never
// affected by this.
func (c *Core) GetDiagnosticsDroppedCount() uint64 { return c.diag.DroppedCount() }
