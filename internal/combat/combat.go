// Package combat implements CombatState (spec.md §4.5): the attack
// FSM shared by light/heavy/special attacks, the roll i-frame window,
// block/parry/counter, and stun handling. Timer-counting shape is
// adapted from fight-club-go's internal/game/combat.go (ComboWindow/
// DodgeTimer decrement-to-zero pattern), generalized from integer tick
// counts at a fixed 20 TPS to fixedmath.Fixed seconds, since the core's
// dt is variable (spec.md §4.10 clamps [1/240, 1/30]).
package combat

import "houndfall/internal/fixedmath"

// RollPhase is the roll/dodge FSM (spec.md §4.5).
type RollPhase uint8

const (
	RollIdle RollPhase = iota
	RollActive
	RollCooldown
)

var (
	rollDuration    = fixedmath.FromFloat32(0.6) // ROLL_DURATION
	rollCooldownDur = fixedmath.One               // ROLL_COOLDOWN
	rollStaminaCost = fixedmath.FromFloat32(0.2)

	parryWindow   = fixedmath.FromFloat32(0.2)
	counterWindow = fixedmath.FromFloat32(0.5)
)

// DamageOutcome is the tagged result of handle_incoming_attack
// (spec.md §4.5).
type DamageOutcome uint8

const (
	Miss DamageOutcome = iota
	Hit
	Block
	PerfectParry
)

// CombatState is the attack/roll/block/stun state machine, one per
// player.
type CombatState struct {
	Attack      AttackKind
	Phase       AttackPhase
	AttackTimer fixedmath.Fixed

	ComboCount  int
	ComboWindow fixedmath.Fixed
	MaxCombo    int

	Blocking      bool
	BlockElapsed  fixedmath.Fixed
	CounterWindow fixedmath.Fixed

	Roll     RollPhase
	RollTime fixedmath.Fixed

	Stunned       bool
	StunRemaining fixedmath.Fixed

	HyperarmorActive bool

	// JustBecameActive is set for the one tick an attack transitions
	// Windup → Active and consumed by the Coordinator to resolve the
	// weapon hit exactly once per attack.
	JustBecameActive bool
}

// New returns a CombatState in Idle with a default max_combo of 5.
func New() *CombatState {
	return &CombatState{MaxCombo: 5}
}

// Reset clears all transient state, mirroring the teacher's
// CombatState.Reset on respawn.
func (c *CombatState) Reset() {
	*c = CombatState{MaxCombo: c.MaxCombo}
}

// Invulnerable reports the testable invariant "invulnerable iff
// roll_state == Active" (spec.md §8 invariant 3).
func (c *CombatState) Invulnerable() bool {
	return c.Roll == RollActive
}

// UpdateTimers advances every timer by dt once per tick (spec.md §4.10
// step 2), before intents are dispatched.
func (c *CombatState) UpdateTimers(dt fixedmath.Fixed) {
	if c.Stunned {
		c.StunRemaining = c.StunRemaining.Sub(dt)
		if c.StunRemaining.Lte(fixedmath.Zero) {
			c.Stunned = false
			c.StunRemaining = 0
		}
	}

	c.updateAttackTimer(dt)
	c.updateComboWindow(dt)
	c.updateRoll(dt)

	if c.Blocking {
		c.BlockElapsed = c.BlockElapsed.Add(dt)
	}
	if c.CounterWindow.Gt(fixedmath.Zero) {
		c.CounterWindow = c.CounterWindow.Sub(dt)
		if c.CounterWindow.Lt(fixedmath.Zero) {
			c.CounterWindow = 0
		}
	}
}

func (c *CombatState) updateAttackTimer(dt fixedmath.Fixed) {
	if c.Phase == PhaseIdle {
		return
	}
	def := attackTable[c.Attack]
	c.AttackTimer = c.AttackTimer.Sub(dt)
	if c.AttackTimer.Gt(fixedmath.Zero) {
		return
	}
	switch c.Phase {
	case PhaseWindup:
		c.Phase = PhaseActive
		c.AttackTimer = def.active
		c.HyperarmorActive = def.grantsHyperarmor
		c.JustBecameActive = true
	case PhaseActive:
		c.Phase = PhaseRecovery
		c.AttackTimer = def.recovery
		c.HyperarmorActive = false
		if def.incrementsCombo {
			c.ComboCount = min(c.ComboCount+1, c.MaxCombo)
			c.ComboWindow = comboWindowDuration
		} else if def.resetsCombo {
			c.ComboCount = 0
			c.ComboWindow = 0
		}
	case PhaseRecovery:
		c.Phase = PhaseIdle
		c.Attack = AttackNone
		c.AttackTimer = 0
	}
}

func (c *CombatState) updateComboWindow(dt fixedmath.Fixed) {
	if c.ComboWindow.Lte(fixedmath.Zero) {
		return
	}
	c.ComboWindow = c.ComboWindow.Sub(dt)
	if c.ComboWindow.Lte(fixedmath.Zero) {
		c.ComboWindow = 0
		c.ComboCount = 0
	}
}

func (c *CombatState) updateRoll(dt fixedmath.Fixed) {
	switch c.Roll {
	case RollActive:
		c.RollTime = c.RollTime.Sub(dt)
		if c.RollTime.Lte(fixedmath.Zero) {
			c.Roll = RollCooldown
			c.RollTime = rollCooldownDur
		}
	case RollCooldown:
		c.RollTime = c.RollTime.Sub(dt)
		if c.RollTime.Lte(fixedmath.Zero) {
			c.Roll = RollIdle
			c.RollTime = 0
		}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
