package playerstate

import (
	"houndfall/internal/fixedmath"
	"houndfall/internal/progression"
)

var (
	chargeMinStamina  = fixedmath.FromFloat32(0.3)
	chargeBaseForce   = fixedmath.FromFloat32(8.0)
	chargeImpulseMul  = fixedmath.FromFloat32(0.1)
	chargeSpeedMul    = fixedmath.FromFloat32(2.5)
	chargeDrainPerSec = fixedmath.FromFloat32(0.15)
	chargeBaseDur     = fixedmath.FromFloat32(2.0)
	chargeSustainForce = fixedmath.FromFloat32(100.0)
)

// ChargeState is the Raider's Berserker Charge ability substate
// (spec.md §4.4.2).
type ChargeState struct {
	Direction    fixedmath.Vec2
	Duration     fixedmath.Fixed
	HitCount     int
}

// StartCharge begins the charge if stamina allows and no ability is
// active.
func (p *PlayerState) StartCharge(hook progression.Hook) bool {
	if p.Class != ClassRaider || p.Ability.Kind != AbilityNone || p.Stamina.Lt(chargeMinStamina) {
		return false
	}
	p.Stamina = p.Stamina.Sub(chargeMinStamina)
	p.Velocity = p.Velocity.Add(p.Facing.Scale(chargeBaseForce.Mul(chargeImpulseMul)))

	speedBoost := hook.EffectScalar(uint32(ClassRaider), "raider.charge.speed", fixedmath.Zero)
	durationBonus := hook.EffectScalar(uint32(ClassRaider), "raider.charge.duration_s", fixedmath.Zero)

	p.SpeedMultiplier = chargeSpeedMul.Mul(fixedmath.One.Add(speedBoost))
	p.HasHyperarmor = true
	p.Ability = AbilityState{
		Kind: AbilityCharge,
		Charge: ChargeState{
			Direction: p.Facing,
			Duration:  chargeBaseDur.Add(durationBonus),
		},
	}
	return true
}

func (p *PlayerState) updateCharge(dt fixedmath.Fixed, hook progression.Hook) {
	c := &p.Ability.Charge
	p.Stamina = p.Stamina.Sub(chargeDrainPerSec.Mul(dt))
	c.Duration = c.Duration.Sub(dt)

	maxSpeed := moveSpeedActive.Mul(chargeSpeedMul)
	if p.Velocity.Length().Lt(maxSpeed) {
		p.Velocity = p.Velocity.Add(c.Direction.Scale(chargeSustainForce.Mul(dt)))
	}

	if p.Stamina.Lte(fixedmath.Zero) || c.Duration.Lte(fixedmath.Zero) {
		p.Stamina = fixedmath.Max(fixedmath.Zero, p.Stamina)
		p.HasHyperarmor = false
		p.SpeedMultiplier = fixedmath.One
		p.Ability = AbilityState{}
	}
}

// RegisterChargeHit increments the charge's hit counter; damage is the
// caller's responsibility (proportional to instantaneous speed, per
// spec.md §4.4.2), so only bookkeeping lives here.
func (p *PlayerState) RegisterChargeHit() {
	if p.Ability.Kind == AbilityCharge {
		p.Ability.Charge.HitCount++
	}
}
