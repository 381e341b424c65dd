package playerstate

import "houndfall/internal/fixedmath"

// ClassID selects one of the three playable characters (spec.md §6
// set_character_type(t: 0|1|2)).
type ClassID uint8

const (
	ClassWarden ClassID = iota
	ClassRaider
	ClassKensei
)

// movement tuning shared by all classes (spec.md §4.4). MOVE_SPEED is
// 0.3; SPEC_FULL.md resolves the alternate 0.8 value found in the
// source excerpts as dead code and does not carry it forward.
var (
	moveSpeedActive = fixedmath.FromFloat32(0.3)
	baseAccel       = fixedmath.FromFloat32(16.0)
	quickTurnMul    = fixedmath.FromFloat32(2.5)
	frictionIdle    = fixedmath.FromFloat32(8.0)
	frictionHeld    = fixedmath.FromFloat32(1.5)
	velocitySnap    = fixedmath.FromFloat32(0.0005)
	facingThreshold = fixedmath.FromFloat32(0.1)

	staminaRegenPerSec = fixedmath.FromFloat32(0.4)
	blockStaminaPerSec = fixedmath.FromFloat32(0.1)
	minActionStamina   = fixedmath.FromFloat32(0.01)
	jumpStaminaCost    = fixedmath.FromFloat32(0.15)
	jumpVelocity       = fixedmath.FromFloat32(0.55)
	groundedYThreshold = fixedmath.FromFloat32(0.3)
)

const maxJumpCount = 2
