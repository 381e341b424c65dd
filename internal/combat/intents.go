package combat

import "houndfall/internal/fixedmath"

// Stamina decouples combat's stamina-gated intents from playerstate's
// concrete type (spec.md §9: components refer to siblings by a narrow
// interface, not a back-pointer into the whole struct).
type Stamina interface {
	HasStamina(cost fixedmath.Fixed) bool
	SpendStamina(cost fixedmath.Fixed)
}

// tryAttack is shared by Light/Heavy/Special: rejected outside Idle or
// on insufficient stamina (spec.md §4.5).
func (c *CombatState) tryAttack(kind AttackKind, stamina Stamina) bool {
	if c.Phase != PhaseIdle {
		return false
	}
	def := attackTable[kind]
	if !stamina.HasStamina(def.staminaCost) {
		return false
	}
	stamina.SpendStamina(def.staminaCost)
	c.Attack = kind
	c.Phase = PhaseWindup
	c.AttackTimer = def.windup
	return true
}

func (c *CombatState) TryLightAttack(stamina Stamina) bool  { return c.tryAttack(AttackLight, stamina) }
func (c *CombatState) TryHeavyAttack(stamina Stamina) bool  { return c.tryAttack(AttackHeavy, stamina) }
func (c *CombatState) TrySpecialAttack(stamina Stamina) bool {
	return c.tryAttack(AttackSpecial, stamina)
}

// FeintAttack cancels an in-progress Windup back to Idle. No-op
// outside Windup (spec.md §4.5: "a windup can be feinted at any point").
func (c *CombatState) FeintAttack() bool {
	if c.Phase != PhaseWindup {
		return false
	}
	c.Phase = PhaseIdle
	c.Attack = AttackNone
	c.AttackTimer = 0
	return true
}

// TryBlock enters Blocking and records the block start (tracked here
// as "elapsed time since block start", compared against PARRY_WINDOW).
func (c *CombatState) TryBlock() bool {
	if c.Blocking || c.Stunned {
		return false
	}
	c.Blocking = true
	c.BlockElapsed = 0
	return true
}

// StopBlocking exits Blocking. Idempotent.
func (c *CombatState) StopBlocking() {
	c.Blocking = false
}

// TryRoll enters the roll i-frame window from Idle only.
func (c *CombatState) TryRoll(stamina Stamina) bool {
	if c.Roll != RollIdle || !stamina.HasStamina(rollStaminaCost) {
		return false
	}
	stamina.SpendStamina(rollStaminaCost)
	c.Roll = RollActive
	c.RollTime = rollDuration
	return true
}

// Stun applies a stun of the given duration; InputGate zeroes
// movement/action bits for its duration (spec.md §4.9).
func (c *CombatState) Stun(duration fixedmath.Fixed) {
	c.Stunned = true
	c.StunRemaining = duration
}

// HandleIncomingAttack resolves an incoming hit against this defender's
// current state, by the priority order in spec.md §4.5.
func (c *CombatState) HandleIncomingAttack() DamageOutcome {
	if c.Invulnerable() {
		return Miss
	}
	if c.Blocking && c.BlockElapsed.Lte(parryWindow) {
		c.CounterWindow = counterWindow
		return PerfectParry
	}
	if c.Blocking {
		return Block
	}
	return Hit
}
