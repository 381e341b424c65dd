package core

import (
	"houndfall/internal/combat"
	"houndfall/internal/playerstate"
	"houndfall/internal/wolf"
)

// EnemySnapshot is one wolf's read-only public state (spec.md §6's
// per-enemy accessors), gathered from both the wolf's own fields and
// its physics body.
type EnemySnapshot struct {
	ID          uint32
	X, Y        float32
	VX, VY      float32
	Anim        wolf.AnimationSignals
}

// Snapshot is the cached result of flattening every subsystem into the
// float32 values spec.md §6's Read API exposes. Built lazily on first
// access after a tick and invalidated by Update (spec.md §4.10 step
// 10: "invalidate Snapshot cache").
type Snapshot struct {
	X, Y           float32
	VelX, VelY     float32
	IsGrounded     bool
	JumpCount      int32
	IsWallSliding  bool

	HP, MaxHP, Stamina float32

	IsRolling    bool
	BlockState   bool
	AnimState    uint32

	Enemies []EnemySnapshot
}

// ensureSnapshot rebuilds the cache if the last Update invalidated it.
func (c *Core) ensureSnapshot() *Snapshot {
	if c.snapshotValid {
		return &c.snapshot
	}

	p := c.player
	enemies := make([]EnemySnapshot, 0, len(c.wolves.Wolves()))
	for _, w := range c.wolves.Wolves() {
		body := c.world.Body(w.BodyID)
		es := EnemySnapshot{ID: w.ID, Anim: w.Anim}
		if body != nil {
			es.X, es.Y = body.Position.X.ToFloat32(), body.Position.Y.ToFloat32()
			es.VX, es.VY = body.Velocity.X.ToFloat32(), body.Velocity.Y.ToFloat32()
		}
		enemies = append(enemies, es)
	}

	c.snapshot = Snapshot{
		X:             p.Position.X.ToFloat32(),
		Y:             p.Position.Y.ToFloat32(),
		VelX:          p.Velocity.X.ToFloat32(),
		VelY:          p.Velocity.Y.ToFloat32(),
		IsGrounded:    p.Grounded,
		JumpCount:     int32(p.JumpCount),
		IsWallSliding: p.IsWallSliding,

		HP:      p.HP.ToFloat32(),
		MaxHP:   p.MaxHP.ToFloat32(),
		Stamina: p.Stamina.ToFloat32(),

		IsRolling:  c.combat.Roll == combat.RollActive,
		BlockState: c.combat.Blocking,
		AnimState:  uint32(c.combat.Attack)<<8 | uint32(c.combat.Phase),

		Enemies: enemies,
	}
	c.snapshotValid = true
	return &c.snapshot
}

// Position/motion accessors (spec.md §6).
func (c *Core) GetX() float32             { return c.ensureSnapshot().X }
func (c *Core) GetY() float32             { return c.ensureSnapshot().Y }
func (c *Core) GetVelX() float32          { return c.ensureSnapshot().VelX }
func (c *Core) GetVelY() float32          { return c.ensureSnapshot().VelY }
func (c *Core) GetIsGrounded() bool       { return c.ensureSnapshot().IsGrounded }
func (c *Core) GetJumpCount() int32       { return c.ensureSnapshot().JumpCount }
func (c *Core) GetIsWallSliding() bool    { return c.ensureSnapshot().IsWallSliding }

// Vitals accessors.
func (c *Core) GetHP() float32      { return c.ensureSnapshot().HP }
func (c *Core) GetMaxHP() float32   { return c.ensureSnapshot().MaxHP }
func (c *Core) GetStamina() float32 { return c.ensureSnapshot().Stamina }

// GetPhase returns the shell-owned opaque phase value set by SetPhase.
func (c *Core) GetPhase() uint32 { return c.phase }

// GetTick and GetRNGState expose the two pieces of state spec.md §8
// scenario 5's determinism hash names alongside player/wolf position:
// "(tick, player.position, each wolf.position, rng_state)".
func (c *Core) GetTick() uint64     { return c.tick }
func (c *Core) GetRNGState() uint32 { return c.rng.State() }

// Combat accessors.
func (c *Core) GetIsRolling() bool     { return c.ensureSnapshot().IsRolling }
func (c *Core) GetBlockState() bool    { return c.ensureSnapshot().BlockState }
func (c *Core) GetPlayerAnimState() uint32 { return c.ensureSnapshot().AnimState }

// AbilityID enumerates the four dispatchable player actions for the
// generic can_use_ability/use_ability/get_ability_cooldown/
// get_ability_stamina_cost accessors (spec.md §6). Light/heavy/special
// share CombatState's attack FSM; Class is whichever special ability
// matches the active character.
type AbilityID uint32

const (
	AbilityLightAttack AbilityID = iota
	AbilityHeavyAttack
	AbilitySpecialAttack
	AbilityClassAbility
)

// CanUseAbility reports whether id is presently usable: CombatState
// must be Idle and stamina must cover the cost, except the class
// ability, which also requires no ability substate already active.
func (c *Core) CanUseAbility(id AbilityID) bool {
	switch id {
	case AbilityLightAttack:
		return c.combat.Phase == combat.PhaseIdle && c.player.HasStamina(combat.StaminaCost(combat.AttackLight))
	case AbilityHeavyAttack:
		return c.combat.Phase == combat.PhaseIdle && c.player.HasStamina(combat.StaminaCost(combat.AttackHeavy))
	case AbilitySpecialAttack:
		return c.combat.Phase == combat.PhaseIdle && c.player.HasStamina(combat.StaminaCost(combat.AttackSpecial))
	case AbilityClassAbility:
		return c.player.Ability.Kind == playerstate.AbilityNone && c.player.HasStamina(playerstate.ClassAbilityStaminaCost(c.class))
	}
	return false
}

// UseAbility fires id through the same intent entry points the rising-
// edge input dispatch uses, for host-driven direct invocation (spec.md
// §6 lists use_ability alongside the raw input frame as an alternate
// trigger path).
func (c *Core) UseAbility(id AbilityID) bool {
	switch id {
	case AbilityLightAttack:
		return c.combat.TryLightAttack(c.player)
	case AbilityHeavyAttack:
		return c.combat.TryHeavyAttack(c.player)
	case AbilitySpecialAttack:
		return c.combat.TrySpecialAttack(c.player)
	case AbilityClassAbility:
		switch c.class {
		case playerstate.ClassWarden:
			return c.player.StartBash()
		case playerstate.ClassRaider:
			ok := c.player.StartCharge(c.hook)
			if ok {
				c.chargeHitIDs = make(map[uint32]bool)
			}
			return ok
		case playerstate.ClassKensei:
			ok := c.player.TryDash(c.player.Facing, c.hook)
			if ok {
				c.dashHit = false
			}
			return ok
		}
	}
	return false
}

// GetAbilityCooldown reports remaining time before id can be used
// again: the attack FSM's remaining phase timer for the three weapon
// attacks (0 once Idle), or 0 for the class ability, which has no
// separate cooldown beyond its own substate duration.
func (c *Core) GetAbilityCooldown(id AbilityID) float32 {
	switch id {
	case AbilityLightAttack, AbilityHeavyAttack, AbilitySpecialAttack:
		if c.combat.Phase == combat.PhaseIdle {
			return 0
		}
		return c.combat.AttackTimer.ToFloat32()
	}
	return 0
}

// GetAbilityStaminaCost reports id's stamina cost.
func (c *Core) GetAbilityStaminaCost(id AbilityID) float32 {
	switch id {
	case AbilityLightAttack:
		return combat.StaminaCost(combat.AttackLight).ToFloat32()
	case AbilityHeavyAttack:
		return combat.StaminaCost(combat.AttackHeavy).ToFloat32()
	case AbilitySpecialAttack:
		return combat.StaminaCost(combat.AttackSpecial).ToFloat32()
	case AbilityClassAbility:
		return playerstate.ClassAbilityStaminaCost(c.class).ToFloat32()
	}
	return 0
}

// Bash-specific status (spec.md §6, Warden only).
func (c *Core) IsBashActive() bool {
	return c.player.Ability.Kind == playerstate.AbilityBash && c.player.Ability.Bash.Phase != playerstate.BashIdle
}

func (c *Core) GetBashChargeLevel() float32 {
	if c.player.Ability.Kind != playerstate.AbilityBash {
		return 0
	}
	return c.player.Ability.Bash.ChargeTime.ToFloat32()
}

func (c *Core) GetBashTargetsHit() int32 {
	if c.player.Ability.Kind != playerstate.AbilityBash {
		return 0
	}
	return int32(c.player.Ability.Bash.TargetsHit)
}

// Charge-specific status (Raider only).
func (c *Core) IsBerserkerChargeActive() bool {
	return c.player.Ability.Kind == playerstate.AbilityCharge
}

func (c *Core) GetBerserkerChargeDuration() float32 {
	if c.player.Ability.Kind != playerstate.AbilityCharge {
		return 0
	}
	return c.player.Ability.Charge.Duration.ToFloat32()
}

// Dash-specific status (Kensei only).
func (c *Core) IsFlowDashActive() bool {
	return c.player.Ability.Kind == playerstate.AbilityDash && c.player.Ability.Dash.Active
}

func (c *Core) GetFlowDashComboLevel() int32 {
	if c.player.Ability.Kind != playerstate.AbilityDash {
		return 0
	}
	return int32(c.player.Ability.Dash.ComboLevel)
}

func (c *Core) IsDashInvulnerable() bool { return c.player.IsDashInvulnerable() }

func (c *Core) CanDashCancel() bool {
	return c.player.Ability.Kind == playerstate.AbilityDash && c.player.Ability.Dash.CanCancel
}

// Enemy accessors.
func (c *Core) GetEnemyCount() int32 { return int32(len(c.ensureSnapshot().Enemies)) }

func (c *Core) GetEnemyX(i int) float32  { return c.ensureSnapshot().Enemies[i].X }
func (c *Core) GetEnemyY(i int) float32  { return c.ensureSnapshot().Enemies[i].Y }
func (c *Core) GetEnemyVX(i int) float32 { return c.ensureSnapshot().Enemies[i].VX }
func (c *Core) GetEnemyVY(i int) float32 { return c.ensureSnapshot().Enemies[i].VY }

func (c *Core) GetWolfLegX(i int) float32        { return c.ensureSnapshot().Enemies[i].Anim.LegX.ToFloat32() }
func (c *Core) GetWolfLegY(i int) float32        { return c.ensureSnapshot().Enemies[i].Anim.LegY.ToFloat32() }
func (c *Core) GetWolfBodyBob(i int) float32     { return c.ensureSnapshot().Enemies[i].Anim.BodyBob.ToFloat32() }
func (c *Core) GetWolfHeadPitch(i int) float32   { return c.ensureSnapshot().Enemies[i].Anim.HeadPitch.ToFloat32() }
func (c *Core) GetWolfHeadYaw(i int) float32     { return c.ensureSnapshot().Enemies[i].Anim.HeadYaw.ToFloat32() }
func (c *Core) GetWolfTailWag(i int) float32     { return c.ensureSnapshot().Enemies[i].Anim.TailWag.ToFloat32() }
func (c *Core) GetWolfEarRotation(i int) float32 { return c.ensureSnapshot().Enemies[i].Anim.EarRotation.ToFloat32() }
func (c *Core) GetWolfBodyStretch(i int) float32 { return c.ensureSnapshot().Enemies[i].Anim.BodyStretch.ToFloat32() }

// Optional physics accessors (spec.md §6: "an optional debug export").
// These read the player's kinematic body directly rather than
// PlayerState, letting a host sanity-check the two stay in sync.
func (c *Core) GetPhysicsPlayerX() float32 {
	if body := c.world.Body(c.player.BodyID); body != nil {
		return body.Position.X.ToFloat32()
	}
	return 0
}

func (c *Core) GetPhysicsPlayerY() float32 {
	if body := c.world.Body(c.player.BodyID); body != nil {
		return body.Position.Y.ToFloat32()
	}
	return 0
}

func (c *Core) GetPhysicsPlayerVelX() float32 {
	if body := c.world.Body(c.player.BodyID); body != nil {
		return body.Velocity.X.ToFloat32()
	}
	return 0
}

func (c *Core) GetPhysicsPlayerVelY() float32 {
	if body := c.world.Body(c.player.BodyID); body != nil {
		return body.Velocity.Y.ToFloat32()
	}
	return 0
}
