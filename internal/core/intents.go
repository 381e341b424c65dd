package core

import (
	"houndfall/internal/fixedmath"
	"houndfall/internal/input"
	"houndfall/internal/playerstate"
)

// dispatchIntents implements spec.md §4.10 step 3: try_block,
// stop_blocking, try_roll, try_light_attack, try_heavy_attack,
// try_special, and class-ability starts/releases. Every intent is
// idempotent — CombatState/PlayerState reject unsatisfied
// preconditions as silent no-ops, so dispatching from a held button
// every tick is safe.
func (c *Core) dispatchIntents(frame input.Frame) {
	if frame.Blocking {
		c.combat.TryBlock()
	} else {
		c.combat.StopBlocking()
	}

	if edge(frame.Rolling, c.prevRaw.Rolling) {
		c.combat.TryRoll(c.player)
	}
	if edge(frame.Jumping, c.prevRaw.Jumping) {
		c.player.TryJump()
	}
	if edge(frame.Light, c.prevRaw.Light) {
		c.combat.TryLightAttack(c.player)
	}
	if edge(frame.Heavy, c.prevRaw.Heavy) {
		c.combat.TryHeavyAttack(c.player)
	}

	c.dispatchAbilityIntent(frame)
}

// edge reports a rising edge: held this tick, not held last tick. Roll/
// jump/attack/ability starts fire once per press rather than once per
// tick the button stays down.
func edge(cur, prev bool) bool {
	return cur && !prev
}

// dispatchAbilityIntent routes the Special bit to whichever class
// ability is active, per spec.md §4.4.1-3. Warden's Bash is a
// press-and-hold charge (pressed starts charging, released fires);
// Raider's Charge and Kensei's Dash are both single-press triggers.
func (c *Core) dispatchAbilityIntent(frame input.Frame) {
	pressed := edge(frame.Special, c.prevRaw.Special)
	released := !frame.Special && c.prevRaw.Special

	switch c.class {
	case playerstate.ClassWarden:
		if pressed {
			c.combat.FeintAttack()
			c.player.StartBash()
		}
		if released {
			c.player.ReleaseBash(c.hook)
		}
	case playerstate.ClassRaider:
		if pressed {
			c.player.StartCharge(c.hook)
			c.chargeHitIDs = make(map[uint32]bool)
		}
	case playerstate.ClassKensei:
		if pressed {
			dir := fixedmath.Vec2{X: frame.MoveX, Y: frame.MoveY}
			if c.player.TryDash(dir, c.hook) {
				c.dashHit = false
			}
		}
	}
}
