// Package core implements the Coordinator (spec.md §4.10): the single
// mutating entry point that advances every subsystem one tick in the
// fixed order the determinism contract requires, and the flat,
// C-callable external interface described in spec.md §6. Shape follows
// fight-club-go's GameEngine/GameState split (one owning struct,
// plain methods, no virtual dispatch) generalized from a 20 TPS
// integer-tick loop to a variable, clamped dt.
package core

import (
	"houndfall/internal/combat"
	"houndfall/internal/diagnostics"
	"houndfall/internal/difficulty"
	"houndfall/internal/fixedmath"
	"houndfall/internal/input"
	"houndfall/internal/pack"
	"houndfall/internal/physics"
	"houndfall/internal/playerstate"
	"houndfall/internal/progression"
	"houndfall/internal/rng"
	"houndfall/internal/skeleton"
	"houndfall/internal/wolf"
)

// maxBodies bounds the physics world's preallocation; the arena holds
// one player, its 11-segment skeleton, and a modest wolf population.
const maxBodies = 512

var playerRadius = fixedmath.FromFloat32(0.03)

// Core owns exactly one instance of every subsystem for one run. There
// is no persisted state format (spec.md §6): a run is reproduced from
// (seed, input log) alone.
type Core struct {
	rng        *rng.Rng
	world      *physics.PhysicsWorld
	player     *playerstate.PlayerState
	skel       *skeleton.PlayerSkeleton
	combat     *combat.CombatState
	wolves     *wolf.Sim
	packs      *pack.Sim
	difficulty *difficulty.AdaptiveDifficulty
	tracker    *difficulty.Tracker
	hook       progression.Hook
	diag       *diagnostics.Log

	class  playerstate.ClassID
	weapon combat.WeaponID
	seed   uint32
	tick   uint64
	phase  uint32 // shell-owned opaque value; core only stores and returns it

	raw     input.RawFrame
	prevRaw input.RawFrame

	runTime           fixedmath.Fixed
	timeSinceLastKill fixedmath.Fixed

	chargeHitIDs map[uint32]bool
	dashHit      bool

	snapshot      Snapshot
	snapshotValid bool
}

// NewCore wires every subsystem together and starts a deterministic
// run with seed 1 and bare fists, mirroring a host that hasn't yet
// called init_run explicitly. hook resolves upgrade effect scalars;
// a nil hook defaults to progression.NoopHook{} (spec.md §6: "lack a
// progression system, return the supplied default").
func NewCore(hook progression.Hook) *Core {
	if hook == nil {
		hook = progression.NoopHook{}
	}
	c := &Core{
		world:      physics.NewPhysicsWorld(maxBodies),
		wolves:     wolf.NewSim(),
		packs:      pack.NewSim(),
		difficulty: difficulty.New(),
		tracker:    &difficulty.Tracker{},
		hook:       hook,
		diag:       diagnostics.NewLog(),
	}
	c.InitRun(1, uint32(combat.WeaponFists))
	return c
}

// InitRun implements init_run(seed, start_weapon) (spec.md §6): resets
// RNG, clears the physics world, spawns the player at (0.5, 0.5), and
// empties the wolf and pack lists. Character class survives, as
// ResetRun's "preserving selected character class" requires of its
// own alias.
func (c *Core) InitRun(seed uint32, startWeapon uint32) {
	c.rng = rng.New(seed)
	c.seed = seed
	c.world.Reset()
	c.wolves.Reset()
	c.packs.Reset()
	c.difficulty.Reset()
	c.tracker = &difficulty.Tracker{}
	c.combat = combat.New()
	c.weapon = combat.WeaponID(startWeapon)

	c.player = playerstate.New(c.class)
	c.player.BodyID = c.world.CreateBody(physics.Kinematic, c.player.Position, fixedmath.Zero, playerRadius, physics.LayerPlayer, physics.LayerEnemy|physics.LayerEnvironment)
	c.skel = skeleton.New(c.world, c.player.Position)

	c.tick = 0
	c.runTime = fixedmath.Zero
	c.timeSinceLastKill = fixedmath.Zero
	c.raw = input.RawFrame{}
	c.prevRaw = input.RawFrame{}
	c.chargeHitIDs = nil
	c.dashHit = false
	c.snapshotValid = false
}

// ResetRun implements reset_run(new_seed): an alias for InitRun that
// preserves the selected character class (spec.md §6).
func (c *Core) ResetRun(newSeed uint32) {
	c.InitRun(newSeed, uint32(c.weapon))
}

// SetCharacterType implements set_character_type(t: 0|1|2). Unknown
// values are silent no-ops, per spec.md §7's "state precondition
// unmet" policy.
func (c *Core) SetCharacterType(t uint32) {
	switch t {
	case 0:
		c.class = playerstate.ClassWarden
	case 1:
		c.class = playerstate.ClassRaider
	case 2:
		c.class = playerstate.ClassKensei
	default:
		return
	}
	if c.player != nil {
		c.player.Class = c.class
	}
}

// GetCharacterType implements get_character_type().
func (c *Core) GetCharacterType() uint32 { return uint32(c.class) }

// SetPlayerInput implements set_player_input(...): stores the raw
// frame for the next Update call (spec.md §6: "called at most once
// per tick").
func (c *Core) SetPlayerInput(raw input.RawFrame) {
	c.raw = raw
}

// SetPhase stores the shell-owned phase value (spec.md §6: "external
// shell owns this; core exposes whatever shell wrote").
func (c *Core) SetPhase(phase uint32) { c.phase = phase }

// Update implements tick(dt) (spec.md §4.10): the only mutating entry
// point once a run is initialized. The ten steps below run in the
// fixed order the determinism contract requires.
func (c *Core) Update(dtSeconds float32) {
	// 1. Clamp dt to [1/240, 1/30].
	dt := fixedmath.FromFloat32(dtSeconds).Clamp(physics.MinDT, physics.MaxDT)

	// 2. Advance CombatState timers.
	c.combat.UpdateTimers(dt)
	if c.combat.JustBecameActive {
		c.combat.JustBecameActive = false
		c.resolvePlayerWeaponHit()
	}

	// 3. Dispatch action intents from the sanitized input frame.
	frame := input.Sanitize(c.raw, c.combat.Stunned)
	c.dispatchIntents(frame)
	c.prevRaw = c.raw

	// 4. Integrate PlayerState with movement input.
	moveInput := fixedmath.Vec2{X: frame.MoveX, Y: frame.MoveY}
	c.player.Integrate(dt, moveInput)
	if c.combat.Blocking {
		if c.player.SpendBlockStamina(dt) {
			c.combat.StopBlocking()
		}
	}
	bashHits := c.player.UpdateAbility(dt, c.hook, c.abilityOverlaps)
	c.resolveBashHits(bashHits)
	c.resolveChargeAndDashHits()

	c.skel.FollowPelvis(c.world, c.player.Position)
	c.world.SetKinematicPosition(c.player.BodyID, c.player.Position)

	// 5. Iterate all wolves: update_ai(dt).
	c.wolves.UpdateAI(dt, c.world, c.player.Position)
	for _, w := range c.wolves.Wolves() {
		if w.JustEnteredAttack {
			w.JustEnteredAttack = false
			c.resolveWolfAttack(w)
		}
	}

	// 6. Step PhysicsWorld (integrates skeletons too).
	c.world.Step(dt)
	c.skel.Recompute(c.world)

	// 7. Read back wolf positions/velocities; apply spatial-awareness
	// impulses.
	c.wolves.PostPhysics(dt, c.world, c.player.Position, c.player.Velocity, c.combat.Blocking, c.combat.Roll == combat.RollActive)

	// 8. Update PackSim.
	c.packs.Update(dt, c.wolves, c.world, c.player.Position)

	// 9. Maybe run AdaptiveDifficulty.
	c.runTime = c.runTime.Add(dt)
	c.timeSinceLastKill = c.timeSinceLastKill.Add(dt)
	c.difficulty.Update(dt, c.tracker, wolfInterfaces(c.wolves.Wolves()))

	// 10. Increment tick counter; invalidate Snapshot cache.
	c.tick++
	c.snapshotValid = false
}

func wolfInterfaces(ws []*wolf.Wolf) []difficulty.Wolf {
	out := make([]difficulty.Wolf, len(ws))
	for i, w := range ws {
		out[i] = w
	}
	return out
}

// DebugSpawnWolf places a new wolf directly, for host-side scenario
// setup and determinism tests (spec.md §8's scripted scenarios spawn
// wolves at exact positions before ticking). Not part of the flat API
// in spec.md §6; exposed the way §7 allows an "optional debug export".
func (c *Core) DebugSpawnWolf(kind wolf.Kind, x, y float32) uint32 {
	pos := fixedmath.Vec2{X: fixedmath.FromFloat32(x), Y: fixedmath.FromFloat32(y)}
	angle := fixedmath.FromFloat32(float32(c.rng.NextFloat()) * 6.2831853)
	w := c.wolves.Spawn(kind, pos, c.world, angle)
	return w.ID
}

// DebugFormPack groups existing wolf ids into one pack. Same debug-only
// status as DebugSpawnWolf.
func (c *Core) DebugFormPack(memberIDs []uint32) uint32 {
	for _, id := range memberIDs {
		if c.wolves.Get(id) == nil {
			c.diag.Record(diagnostics.InvalidWolfID, c.tick, id)
		}
	}
	p := c.packs.Form(memberIDs)
	return p.ID
}
