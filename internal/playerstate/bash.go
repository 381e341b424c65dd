package playerstate

import (
	"houndfall/internal/fixedmath"
	"houndfall/internal/progression"
)

// BashPhase is the Warden Shoulder Bash FSM (spec.md §4.4.1).
type BashPhase uint8

const (
	BashIdle BashPhase = iota
	BashCharging
	BashActive
)

var (
	bashMaxCharge    = fixedmath.FromFloat32(1.0)
	bashMinCharge    = fixedmath.FromFloat32(0.3)
	bashChargeSpeed  = fixedmath.FromFloat32(0.5)
	bashActiveDur    = fixedmath.FromFloat32(0.6)
	bashExtendOnHit  = fixedmath.FromFloat32(0.1)
	bashBaseStamina  = fixedmath.FromFloat32(0.3)
	bashBaseForce    = fixedmath.FromFloat32(8.0)
	bashImpulseScale = fixedmath.FromFloat32(0.1)
	bashHitboxRadius = fixedmath.FromFloat32(0.05)
	bashHitboxOffset = fixedmath.FromFloat32(0.04)
	bashRefundBase   = fixedmath.FromFloat32(0.1)
)

// BashState is the Warden's ability substate.
type BashState struct {
	Phase       BashPhase
	ChargeTime  fixedmath.Fixed
	ActiveTimer fixedmath.Fixed
	TargetsHit  int
}

// StartBash begins charging. Idempotent: a no-op outside Idle.
func (p *PlayerState) StartBash() bool {
	if p.Class != ClassWarden || p.Ability.Kind != AbilityNone {
		return false
	}
	p.Ability = AbilityState{Kind: AbilityBash, Bash: BashState{Phase: BashCharging}}
	p.SpeedMultiplier = bashChargeSpeed
	return true
}

// ReleaseBash ends the charge. Below min_charge it cancels for free;
// otherwise it consumes stamina and launches the impulse/hitbox.
func (p *PlayerState) ReleaseBash(hook progression.Hook) bool {
	if p.Ability.Kind != AbilityBash || p.Ability.Bash.Phase != BashCharging {
		return false
	}
	b := &p.Ability.Bash
	if b.ChargeTime.Lt(bashMinCharge) {
		p.Ability = AbilityState{}
		p.SpeedMultiplier = fixedmath.One
		return true
	}

	forceMul := fixedmath.One.Add(b.ChargeTime)
	dmgMul := hook.EffectScalar(uint32(ClassWarden), "warden.bash.damage", fixedmath.One)
	cost := bashBaseStamina.Mul(forceMul)
	if p.Stamina.Lt(cost) {
		p.Ability = AbilityState{}
		p.SpeedMultiplier = fixedmath.One
		return false
	}
	p.Stamina = p.Stamina.Sub(cost)

	impulseMag := bashBaseForce.Mul(forceMul).Mul(bashImpulseScale).Mul(dmgMul)
	p.Velocity = p.Velocity.Add(p.Facing.Scale(impulseMag))

	b.Phase = BashActive
	b.ActiveTimer = bashActiveDur
	p.SpeedMultiplier = fixedmath.One
	return true
}

func (p *PlayerState) updateBash(dt fixedmath.Fixed, hook progression.Hook, overlaps func(fixedmath.Vec2, fixedmath.Fixed) []uint32) []BashHitEvent {
	b := &p.Ability.Bash
	switch b.Phase {
	case BashCharging:
		b.ChargeTime = fixedmath.Min(bashMaxCharge, b.ChargeTime.Add(dt))
		return nil
	case BashActive:
		b.ActiveTimer = b.ActiveTimer.Sub(dt)
		center := p.Position.Add(p.Facing.Scale(bashHitboxOffset))
		var events []BashHitEvent
		if overlaps != nil {
			refund := bashRefundBase.Add(hook.EffectScalar(uint32(ClassWarden), "warden.bash.stamina_refund", fixedmath.Zero))
			for _, id := range overlaps(center, bashHitboxRadius) {
				b.TargetsHit++
				b.ActiveTimer = b.ActiveTimer.Add(bashExtendOnHit)
				p.Stamina = fixedmath.Min(fixedmath.One, p.Stamina.Add(refund))
				events = append(events, BashHitEvent{TargetID: id})
			}
		}
		if b.ActiveTimer.Lte(fixedmath.Zero) {
			p.Ability = AbilityState{}
		}
		return events
	}
	return nil
}
