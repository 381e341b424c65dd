package playerstate

import (
	"houndfall/internal/fixedmath"
	"houndfall/internal/progression"
)

const maxDashCombo = 3

var (
	dashMinStamina  = fixedmath.FromFloat32(0.2)
	dashDistance    = fixedmath.FromFloat32(0.15)
	dashActiveDur   = fixedmath.FromFloat32(0.12)
	dashStaminaBase = fixedmath.FromFloat32(0.2)
	dashHitRefund   = fixedmath.FromFloat32(0.1)
	dashDamagePerLevel = fixedmath.FromFloat32(0.25)
)

// DashState is the Kensei Flow Dash ability substate (spec.md §4.4.3).
type DashState struct {
	Active       bool
	Elapsed      fixedmath.Fixed
	Duration     fixedmath.Fixed
	From, To     fixedmath.Vec2
	IFrameUntil  fixedmath.Fixed
	ComboLevel   int
	CanCancel    bool
	LastTargetID uint32
	HasLastTarget bool
}

// TryDash initiates a Flow Dash toward direction (or Facing if
// direction is zero), either fresh (stamina gate) or as a chain
// continuation when the previous dash hit and combo_level < max_combo.
func (p *PlayerState) TryDash(direction fixedmath.Vec2, hook progression.Hook) bool {
	if p.Class != ClassKensei {
		return false
	}
	chaining := p.Ability.Kind == AbilityDash && p.Ability.Dash.CanCancel && p.Ability.Dash.ComboLevel < maxDashCombo
	fresh := p.Ability.Kind == AbilityNone

	costReduction := hook.EffectScalar(uint32(ClassKensei), "kensei.dash.stamina_cost_reduction", fixedmath.Zero)
	cost := dashStaminaBase.Mul(fixedmath.One.Sub(costReduction))

	if !chaining && !fresh {
		return false
	}
	if !chaining && p.Stamina.Lt(dashMinStamina) {
		return false
	}
	if p.Stamina.Lt(cost) {
		return false
	}
	p.Stamina = p.Stamina.Sub(cost)

	dir := direction
	if dir.LengthSq().Lte(fixedmath.Zero) {
		dir = p.Facing
	} else {
		dir = dir.Normalize()
	}
	target := p.Position.Add(dir.Scale(dashDistance)).Clamp(fixedmath.Zero, fixedmath.One)

	comboLevel := 0
	if chaining {
		comboLevel = p.Ability.Dash.ComboLevel
	}

	iframeBonus := hook.EffectScalar(uint32(ClassKensei), "kensei.dash.iframes_ms", fixedmath.Zero)

	p.Ability = AbilityState{
		Kind: AbilityDash,
		Dash: DashState{
			Active:      true,
			Duration:    dashActiveDur,
			From:        p.Position,
			To:          target,
			IFrameUntil: dashActiveDur.Add(iframeBonus),
			ComboLevel:  comboLevel,
		},
	}
	p.Facing = dir
	return true
}

func (p *PlayerState) updateDash(dt fixedmath.Fixed, hook progression.Hook) {
	d := &p.Ability.Dash
	if !d.Active {
		p.Ability = AbilityState{}
		return
	}
	d.Elapsed = d.Elapsed.Add(dt)

	t := d.Elapsed.Div(d.Duration).Clamp(fixedmath.Zero, fixedmath.One)
	eased := cubicEaseOut(t)
	p.Position = lerpVec(d.From, d.To, eased)
	p.Velocity = fixedmath.ZeroVec2

	if d.Elapsed.Gte(d.Duration) {
		d.Active = false
		p.Ability = AbilityState{}
	}
}

// IsDashInvulnerable reports whether the active dash is still within
// its i-frame window.
func (p *PlayerState) IsDashInvulnerable() bool {
	if p.Ability.Kind != AbilityDash {
		return false
	}
	d := p.Ability.Dash
	return d.Active && d.Elapsed.Lt(d.IFrameUntil)
}

// RegisterDashHit applies the Flow Dash on-hit bookkeeping: stamina
// refund, last-target tracking, chain-cancel enablement, and combo
// reset at max_combo.
func (p *PlayerState) RegisterDashHit(targetID uint32) fixedmath.Fixed {
	if p.Ability.Kind != AbilityDash {
		return fixedmath.Zero
	}
	d := &p.Ability.Dash
	p.Stamina = fixedmath.Min(fixedmath.One, p.Stamina.Add(dashHitRefund))
	d.LastTargetID = targetID
	d.HasLastTarget = true
	d.CanCancel = true

	dmgMul := fixedmath.One.Add(fixedmath.FromInt(d.ComboLevel).Mul(dashDamagePerLevel))

	d.ComboLevel++
	if d.ComboLevel >= maxDashCombo {
		d.ComboLevel = 0
		d.CanCancel = false
	}
	return dmgMul
}

func cubicEaseOut(t fixedmath.Fixed) fixedmath.Fixed {
	inv := fixedmath.One.Sub(t)
	cube := inv.Mul(inv).Mul(inv)
	return fixedmath.One.Sub(cube)
}

func lerpVec(a, b fixedmath.Vec2, t fixedmath.Fixed) fixedmath.Vec2 {
	return a.Add(b.Sub(a).Scale(t))
}
