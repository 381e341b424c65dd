package config

import (
	"houndfall/internal/physics"
	"houndfall/internal/wolf"
)

// SimConstants mirrors a handful of the determinism-critical tuning
// values enforced inside internal/physics and internal/wolf, purely so
// a host can display or log them (e.g. a status endpoint). Nothing in
// THE CORE reads this struct; the authoritative values stay the Go
// constants/vars in their owning packages, read here rather than
// duplicated so the two can never drift.
type SimConstants struct {
	MinDT                  float32 // physics.MinDT, as a float32 seconds value
	MaxDT                  float32 // physics.MaxDT
	MaxConcurrentAttackers int     // wolf.MaxConcurrentAttackers
}

// DescribeSimConstants returns the current mirrored values.
func DescribeSimConstants() SimConstants {
	return SimConstants{
		MinDT:                  physics.MinDT.ToFloat32(),
		MaxDT:                  physics.MaxDT.ToFloat32(),
		MaxConcurrentAttackers: wolf.MaxConcurrentAttackers,
	}
}
