// Package playerstate implements PlayerState (spec.md §4.4): movement
// integration, vitals, jumping, and the three per-class ability
// substates. Shape is adapted from fight-club-go's internal/game/player.go
// acceleration/friction/clamp pipeline, re-typed from float64 pixel
// space to fixedmath.Fixed [0,1]² world space.
package playerstate

import (
	"houndfall/internal/fixedmath"
	"houndfall/internal/physics"
)

// PlayerState is the single player's movement, vitals, and active
// ability. The core owns exactly one.
type PlayerState struct {
	Class ClassID

	Position fixedmath.Vec2
	Velocity fixedmath.Vec2
	Facing   fixedmath.Vec2

	HP        fixedmath.Fixed
	MaxHP     fixedmath.Fixed
	HealthInt int32
	Stamina   fixedmath.Fixed

	SpeedMultiplier fixedmath.Fixed
	HasHyperarmor   bool

	Grounded      bool
	JumpCount     int
	IsWallSliding bool

	// Ability is the tagged-variant active substate (spec.md §9: avoid
	// virtual dispatch, use one discriminant with one active substate).
	Ability AbilityState

	BodyID physics.BodyID
}

// New returns a fresh PlayerState spawned at (0.5, 0.5), per
// init_run's "spawns player at (0.5, 0.5)" (spec.md §6).
func New(class ClassID) *PlayerState {
	half := fixedmath.One.Div(fixedmath.FromInt(2))
	p := &PlayerState{
		Class:           class,
		Position:        fixedmath.Vec2{X: half, Y: half},
		Facing:          fixedmath.Vec2{X: fixedmath.Zero, Y: fixedmath.One},
		HP:              fixedmath.One,
		MaxHP:           fixedmath.One,
		HealthInt:       100,
		Stamina:         fixedmath.One,
		SpeedMultiplier: fixedmath.One,
	}
	return p
}

// Integrate applies one tick of movement given a normalized input
// vector, per spec.md §4.4. Ability updates run separately (ability.go).
func (p *PlayerState) Integrate(dt fixedmath.Fixed, input fixedmath.Vec2) {
	epsilon := fixedmath.FromFloat32(1e-4)
	magSq := input.LengthSq()

	abilityActive := p.Ability.Kind != AbilityNone
	if input.Length().Lt(epsilon) && !abilityActive {
		p.Velocity = fixedmath.ZeroVec2
	} else {
		if magSq.Gt(facingThreshold.Mul(facingThreshold)) {
			p.Facing = input.Normalize()
		}

		targetVel := input.Scale(moveSpeedActive.Mul(p.SpeedMultiplier))
		p.Velocity.X = integrateAxis(p.Velocity.X, targetVel.X, dt, magSq.Gt(0))
		p.Velocity.Y = integrateAxis(p.Velocity.Y, targetVel.Y, dt, magSq.Gt(0))
	}

	p.Position = p.Position.Add(p.Velocity.Scale(dt))
	p.clampToArena()

	p.regenStamina(dt)
}

// integrateAxis advances one velocity component toward target,
// boosting acceleration 2.5x on a quick-turn (target opposes current),
// then applies friction and the dead-zone snap.
func integrateAxis(current, target, dt fixedmath.Fixed, inputHeld bool) fixedmath.Fixed {
	accel := baseAccel
	if (current.Gt(0) && target.Lt(0)) || (current.Lt(0) && target.Gt(0)) {
		accel = accel.Mul(quickTurnMul)
	}

	delta := target.Sub(current)
	step := accel.Mul(dt)
	var next fixedmath.Fixed
	if delta.Abs().Lte(step) {
		next = target
	} else if delta.Gt(0) {
		next = current.Add(step)
	} else {
		next = current.Sub(step)
	}

	mu := frictionIdle
	if inputHeld {
		mu = frictionHeld
	}
	next = next.Div(fixedmath.One.Add(mu.Mul(dt)))

	if next.Abs().Lt(velocitySnap) {
		next = 0
	}
	return next
}

// clampToArena restricts position to [0,1]^2, zeroing only the
// boundary-normal velocity component on contact.
func (p *PlayerState) clampToArena() {
	if p.Position.X.Lt(fixedmath.Zero) {
		p.Position.X = fixedmath.Zero
		p.Velocity.X = fixedmath.Zero
	} else if p.Position.X.Gt(fixedmath.One) {
		p.Position.X = fixedmath.One
		p.Velocity.X = fixedmath.Zero
	}
	if p.Position.Y.Lt(fixedmath.Zero) {
		p.Position.Y = fixedmath.Zero
		p.Velocity.Y = fixedmath.Zero
	} else if p.Position.Y.Gt(fixedmath.One) {
		p.Position.Y = fixedmath.One
		p.Velocity.Y = fixedmath.Zero
	}

	if !p.isRising() && p.Position.Y.Lt(groundedYThreshold) {
		p.Grounded = true
		p.JumpCount = 0
	}
}

func (p *PlayerState) isRising() bool {
	return p.Velocity.Y.Gt(fixedmath.FromFloat32(0.01))
}

func (p *PlayerState) regenStamina(dt fixedmath.Fixed) {
	p.Stamina = fixedmath.Min(fixedmath.One, p.Stamina.Add(staminaRegenPerSec.Mul(dt)))
}

// TryJump applies an upward velocity delta if jump_count < 2 and
// stamina > 0.1 (spec.md §4.4).
func (p *PlayerState) TryJump() bool {
	if p.JumpCount >= maxJumpCount || p.Stamina.Lte(fixedmath.FromFloat32(0.1)) {
		return false
	}
	p.Velocity.Y = p.Velocity.Y.Add(jumpVelocity)
	p.JumpCount++
	p.Stamina = p.Stamina.Sub(jumpStaminaCost)
	p.Grounded = false
	return true
}

// SpendBlockStamina drains stamina while blocking and reports whether
// blocking must be forced off (stamina fell below 0.01).
func (p *PlayerState) SpendBlockStamina(dt fixedmath.Fixed) (forceOff bool) {
	p.Stamina = fixedmath.Max(fixedmath.Zero, p.Stamina.Sub(blockStaminaPerSec.Mul(dt)))
	return p.Stamina.Lt(minActionStamina)
}

// HasStamina reports whether at least cost stamina is available
// (satisfies combat.Stamina, keeping the combat package decoupled from
// this one).
func (p *PlayerState) HasStamina(cost fixedmath.Fixed) bool {
	return p.Stamina.Gte(cost)
}

// SpendStamina deducts cost unconditionally; callers check HasStamina
// first.
func (p *PlayerState) SpendStamina(cost fixedmath.Fixed) {
	p.Stamina = fixedmath.Max(fixedmath.Zero, p.Stamina.Sub(cost))
}

// ApplyDamage clamps hp into [0,1] and recomputes health_int as
// round(hp*max_health), where max_health is the absolute hit-point pool
// (default 100) the normalized HP/MaxHP pair represents.
func (p *PlayerState) ApplyDamage(amount fixedmath.Fixed) {
	p.HP = p.HP.Sub(amount).Clamp(fixedmath.Zero, fixedmath.One)
	maxHealthUnits := fixedmath.FromInt(100)
	scaled := p.HP.Mul(maxHealthUnits)
	p.HealthInt = int32(scaled.Add(fixedmath.FromFloat32(0.5)).ToFloat32())
}
