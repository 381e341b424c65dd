package fixedmath

import "math"

// sinTable holds one period of sin(angle) sampled at trigTableSize evenly
// spaced points, built once at init time from math.Sin. The teacher's
// player.go converts an angle to a direction with a direct math.Cos/
// math.Sin call (internal/game/player.go: dodge direction, knockback
// angle); the core can't do that at tick time without reintroducing
// float64 into the determinism-critical path, so the table is filled
// once at init and every runtime lookup only indexes it.
const trigTableSize = 256

var sinTable [trigTableSize]Fixed

func init() {
	for i := 0; i < trigTableSize; i++ {
		theta := 2 * math.Pi * float64(i) / float64(trigTableSize)
		sinTable[i] = FromFloat32(float32(math.Sin(theta)))
	}
}

var twoPi = FromFloat32(2 * math.Pi)

// Sin returns an approximation of sin(angleRadians), looked up from a
// fixed table rather than computed, so that two machines evaluating the
// same angle always get the exact same bits.
func Sin(angleRadians Fixed) Fixed {
	return sinTable[tableIndex(angleRadians)]
}

// Cos returns an approximation of cos(angleRadians) via the same table,
// using the identity cos(x) = sin(x + pi/2).
func Cos(angleRadians Fixed) Fixed {
	quarter := twoPi.Div(FromInt(4))
	return sinTable[tableIndex(angleRadians.Add(quarter))]
}

func tableIndex(angle Fixed) int {
	for angle.Lt(Zero) {
		angle = angle.Add(twoPi)
	}
	for angle.Gte(twoPi) {
		angle = angle.Sub(twoPi)
	}
	idx := int(angle.Mul(FromInt(trigTableSize)).Div(twoPi).ToFloat32())
	if idx < 0 {
		idx = 0
	}
	if idx >= trigTableSize {
		idx = trigTableSize - 1
	}
	return idx
}

// AngleToDir returns the unit vector (cos, sin) for angleRadians, the
// table-backed counterpart of the teacher's math.Cos/math.Sin pair used
// to turn a stored angle into a movement direction.
func AngleToDir(angleRadians Fixed) Vec2 {
	return Vec2{X: Cos(angleRadians), Y: Sin(angleRadians)}
}
