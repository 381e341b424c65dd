package host

import (
	"context"
	"encoding/json"
	"time"
)

// runTickLoop drives Core.Update at HostConfig.TickRate until ctx is
// canceled, holding the same lock HTTP/WebSocket handlers take so no
// goroutine ever observes Core mid-tick (spec.md §5). Modeled on
// fight-club-go's fixed-step server loop in cmd/server/main.go, swapped
// to a single ticker since this core has no per-room fan-out.
func (s *Server) runTickLoop(ctx context.Context) error {
	interval := time.Second / time.Duration(s.cfg.TickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	dt := float32(interval.Seconds())

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.tickOnce(dt)
		}
	}
}

func (s *Server) tickOnce(dt float32) {
	start := time.Now()

	s.mu.Lock()
	s.core.Update(dt)
	s.tick++
	dto := buildSnapshotDTO(s.core, s.tick)
	s.mu.Unlock()

	s.metrics.recordTick(time.Since(start))

	if s.wsHub.clientCount() == 0 {
		return
	}
	if payload, err := json.Marshal(dto); err == nil {
		s.wsHub.send(payload)
	}
}

// snapshotForTest exposes a locked snapshot read for tests that need
// to observe tick progression without going through the HTTP handler.
func (s *Server) snapshotForTest() SnapshotDTO {
	s.mu.Lock()
	defer s.mu.Unlock()
	return buildSnapshotDTO(s.core, s.tick)
}
