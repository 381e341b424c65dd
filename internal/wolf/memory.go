package wolf

import "houndfall/internal/fixedmath"

var intelligenceCreepPerSec = fixedmath.FromFloat32(0.01)
var intelligenceCap = fixedmath.FromFloat32(0.9)
var cautionWindow = fixedmath.One // 1.0s
var cautionCooldown = fixedmath.FromFloat32(0.5)

// updateMemory implements spec.md §4.6's per-tick memory update: an
// EMA of player speed, timers since last seeing the player block/roll,
// and a slow intelligence creep gated on that speed estimate.
func (w *Wolf) updateMemory(dt fixedmath.Fixed, playerVelocity fixedmath.Vec2, playerBlocking, playerRolling bool) {
	w.PlayerSpeedEstimate = w.PlayerSpeedEstimate.Mul(fixedmath.FromFloat32(0.9)).
		Add(playerVelocity.Length().Mul(fixedmath.FromFloat32(0.1)))

	if playerBlocking {
		w.LastPlayerBlockTime = 0
	} else {
		w.LastPlayerBlockTime = w.LastPlayerBlockTime.Add(dt)
	}
	if playerRolling {
		w.LastPlayerRollTime = 0
	} else {
		w.LastPlayerRollTime = w.LastPlayerRollTime.Add(dt)
	}

	if w.LastPlayerBlockTime.Lt(cautionWindow) || w.LastPlayerRollTime.Lt(cautionWindow) {
		w.AttackCooldown = fixedmath.Max(w.AttackCooldown, cautionCooldown)
	}

	if w.PlayerSpeedEstimate.Gt(fixedmath.FromFloat32(0.4)) {
		w.Intelligence = fixedmath.Min(intelligenceCap, w.Intelligence.Add(intelligenceCreepPerSec.Mul(dt)))
	}
}

// selectAttackType returns the opaque attack-type tag per spec.md
// §4.6's priority table.
func (w *Wolf) selectAttackType(playerBlocksSeen int) AttackType {
	if w.Emotion == Desperate {
		return QuickJab
	}
	if w.Intelligence.Gt(fixedmath.FromFloat32(0.7)) && playerBlocksSeen > 2 {
		return Feint
	}
	if (w.Emotion == Confident || w.Emotion == Aggressive) && w.Aggression.Gt(fixedmath.FromFloat32(0.6)) {
		return PowerLunge
	}
	return StandardLunge
}
