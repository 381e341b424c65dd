package core

import (
	"houndfall/internal/combat"
	"houndfall/internal/diagnostics"
	"houndfall/internal/fixedmath"
	"houndfall/internal/playerstate"
	"houndfall/internal/wolf"
)

var forwardConeCos = fixedmath.FromFloat32(0.3)
var knockbackSpeed = fixedmath.FromFloat32(4.0)
var chargeHitRadius = fixedmath.FromFloat32(0.08)
var dashHitRadius = fixedmath.FromFloat32(0.08)
var chargeMaxSpeed = fixedmath.FromFloat32(0.75) // MOVE_SPEED * berserker charge speed multiplier

// rollDamage draws a deterministic damage value uniformly between a
// weapon's min and max, consuming one rng sample. Neither spec.md §4.5
// nor §6 names a distribution for in-range weapon damage; resolved by
// reusing the same deterministic Rng every other gameplay-random
// decision already draws from (SPEC_FULL.md §E).
func (c *Core) rollDamage(w combat.WeaponStats) fixedmath.Fixed {
	span := w.MaxDamage.Sub(w.MinDamage)
	roll := fixedmath.FromFloat32(float32(c.rng.NextFloat()))
	return w.MinDamage.Add(span.Mul(roll))
}

func (c *Core) inFacingCone(targetPos fixedmath.Vec2) bool {
	toTarget := targetPos.Sub(c.player.Position)
	if toTarget.LengthSq().Lte(fixedmath.Zero) {
		return true
	}
	return c.player.Facing.Normalize().Dot(toTarget.Normalize()).Gte(forwardConeCos)
}

// resolvePlayerWeaponHit fires once, the tick a light/heavy/special
// attack's Windup ends, against every live wolf within weapon range
// and the forward facing cone (spec.md §4.5 describes the attack
// timing FSM but leaves overlap/target selection, explicitly, to the
// owning host — here, the Coordinator).
func (c *Core) resolvePlayerWeaponHit() {
	stats := combat.Weapon(c.weapon)
	for _, w := range c.wolves.Wolves() {
		body := c.world.Body(w.BodyID)
		if body == nil {
			c.diag.Record(diagnostics.InvalidBodyID, c.tick, w.BodyID.Index)
			continue
		}
		dist := body.Position.Sub(c.player.Position).Length()
		if dist.Gt(stats.Range) || !c.inFacingCone(body.Position) {
			continue
		}
		c.dealDamageToWolf(w, c.rollDamage(stats))
	}
}

// resolveBashHits applies Warden Bash's per-overlap hit events (spec.md
// §4.4.1): the ability package finds the overlaps and hands back target
// ids; this package turns each into damage, since "combat/physics owns
// hit resolution, not [the playerstate] package" (ability.go).
func (c *Core) resolveBashHits(hits []playerstate.BashHitEvent) {
	for _, h := range hits {
		w := c.wolves.Get(h.TargetID)
		if w == nil {
			c.diag.Record(diagnostics.InvalidWolfID, c.tick, h.TargetID)
			continue
		}
		c.dealDamageToWolf(w, c.rollDamage(combat.Weapon(c.weapon)))
	}
}

// abilityOverlaps is the overlap query Warden Bash's UpdateAbility
// calls to find live targets within its hitbox (ability.go's
// "overlaps func(center, radius) []uint32" callback).
func (c *Core) abilityOverlaps(center fixedmath.Vec2, radius fixedmath.Fixed) []uint32 {
	var ids []uint32
	for _, w := range c.wolves.Wolves() {
		body := c.world.Body(w.BodyID)
		if body == nil {
			continue
		}
		if body.Position.Sub(center).Length().Lte(radius) {
			ids = append(ids, w.ID)
		}
	}
	return ids
}

// resolveChargeAndDashHits detects overlaps for Raider Charge and
// Kensei Dash, which (unlike Bash) don't take an overlaps callback —
// updateCharge/updateDash only advance the substate timer, leaving hit
// detection to the caller (playerstate/charge.go, dash.go doc
// comments). Charge can hit each wolf once per activation; Dash hits
// at most one target per dash, per spec.md §4.4.3's single "last
// target" bookkeeping.
func (c *Core) resolveChargeAndDashHits() {
	switch c.player.Ability.Kind {
	case playerstate.AbilityCharge:
		for _, w := range c.wolves.Wolves() {
			if c.chargeHitIDs[w.ID] {
				continue
			}
			body := c.world.Body(w.BodyID)
			if body == nil || body.Position.Sub(c.player.Position).Length().Gt(chargeHitRadius) {
				continue
			}
			c.chargeHitIDs[w.ID] = true
			c.player.RegisterChargeHit()
			speedRatio := c.player.Velocity.Length().Div(chargeMaxSpeed).Clamp(fixedmath.Zero, fixedmath.One)
			c.dealDamageToWolf(w, c.rollDamage(combat.Weapon(c.weapon)).Mul(speedRatio))
		}
	case playerstate.AbilityDash:
		if c.dashHit {
			return
		}
		for _, w := range c.wolves.Wolves() {
			body := c.world.Body(w.BodyID)
			if body == nil || body.Position.Sub(c.player.Position).Length().Gt(dashHitRadius) {
				continue
			}
			c.dashHit = true
			mul := c.player.RegisterDashHit(w.ID)
			c.dealDamageToWolf(w, c.rollDamage(combat.Weapon(c.weapon)).Mul(mul))
			break
		}
	}
}

func (c *Core) dealDamageToWolf(w *wolf.Wolf, amount fixedmath.Fixed) {
	toWolf := fixedmath.ZeroVec2
	if body := c.world.Body(w.BodyID); body != nil {
		toWolf = body.Position.Sub(c.player.Position)
	}
	knockback := fixedmath.ZeroVec2
	if toWolf.LengthSq().Gt(fixedmath.Zero) {
		knockback = toWolf.Normalize().Scale(knockbackSpeed)
	}
	impulse, died := w.TakeDamage(amount, knockback)
	c.world.ApplyImpulse(w.BodyID, impulse)
	if died {
		c.tracker.RecordKill(c.timeSinceLastKill)
		c.timeSinceLastKill = fixedmath.Zero
	}
}

// resolveWolfAttack fires once, the tick a wolf enters Attack (spec.md
// §4.6's attack gate already verified range/angle/LOS before the
// transition), resolving the hit against the player's defenses and
// feeding AdaptiveDifficulty's dodge/block counters (spec.md §4.8).
// "Successful" from the wolf's perspective means the blow actually
// landed (Hit); a parried, blocked, or missed swing counts against it
// even though contact was made (SPEC_FULL.md §E resolution).
func (c *Core) resolveWolfAttack(w *wolf.Wolf) {
	outcome := c.combat.HandleIncomingAttack()

	switch outcome {
	case combat.Miss:
		c.tracker.RecordDodge(true)
	case combat.Block:
		c.tracker.RecordBlock(false)
	case combat.PerfectParry:
		c.tracker.RecordBlock(true)
	case combat.Hit:
		c.tracker.RecordDodge(false)
		c.player.ApplyDamage(w.Damage)
	}

	if outcome == combat.Hit {
		w.SuccessfulAttacks++
	} else {
		w.FailedAttacks++
	}
}
