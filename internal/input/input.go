// Package input implements InputGate (spec.md §4.9): sanitizing one
// raw per-tick input frame into the Fixed snapshot every other
// component reads for the remainder of the tick.
package input

import (
	"math"

	"houndfall/internal/fixedmath"
)

// RawFrame is the host-facing input frame, still in float32 (spec.md
// §3: floats only cross the boundary at input/snapshot time).
type RawFrame struct {
	MoveX, MoveY                                    float32
	Rolling, Jumping, Light, Heavy, Blocking, Special bool
}

// Frame is the sanitized, Fixed-valued frame every other component
// reads for the tick (spec.md §4.9 step 4: "the single authoritative
// input snapshot until the next tick").
type Frame struct {
	MoveX, MoveY                                    fixedmath.Fixed
	Rolling, Jumping, Light, Heavy, Blocking, Special bool
}

// Sanitize implements InputGate's four-step pipeline. stunned comes
// from CombatState.stunned (spec.md §4.10 step 2 runs before step 3,
// so the caller passes the freshly-advanced stun state).
func Sanitize(raw RawFrame, stunned bool) Frame {
	mx := clampAxis(raw.MoveX)
	my := clampAxis(raw.MoveY)

	if lenSq := mx.Mul(mx).Add(my.Mul(my)); lenSq.Gt(fixedmath.One) {
		length := lenSq.Sqrt()
		mx = mx.Div(length)
		my = my.Div(length)
	}

	f := Frame{
		MoveX:   mx,
		MoveY:   my,
		Rolling: raw.Rolling,
		Jumping: raw.Jumping,
		Light:   raw.Light,
		Heavy:   raw.Heavy,
		Blocking: raw.Blocking,
		Special: raw.Special,
	}

	if stunned {
		f = Frame{}
	}
	return f
}

// clampAxis rejects non-finite values as zero, then clamps to [-1, 1].
// fixedmath.FromFloat32 has no representation for NaN/Inf, so any
// non-finite input is screened before it ever reaches Fixed.
func clampAxis(v float32) fixedmath.Fixed {
	if isNonFinite(v) {
		return fixedmath.Zero
	}
	return fixedmath.FromFloat32(v).Clamp(fixedmath.One.Neg(), fixedmath.One)
}

func isNonFinite(v float32) bool {
	f := float64(v)
	return math.IsNaN(f) || math.IsInf(f, 0)
}
