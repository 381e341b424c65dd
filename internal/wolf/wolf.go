package wolf

import (
	"houndfall/internal/fixedmath"
	"houndfall/internal/physics"
)

// Wolf is one enemy: AI state, stats (mutable, reset by emotion
// changes), memory, and animation signals. WolfSim owns a slice of
// these plus their physics bodies.
type Wolf struct {
	ID     uint32
	BodyID physics.BodyID
	Kind   Kind

	State      State
	StateTimer fixedmath.Fixed

	HP     fixedmath.Fixed
	MaxHP  fixedmath.Fixed

	Speed          fixedmath.Fixed
	AttackRange    fixedmath.Fixed
	AttackCooldown fixedmath.Fixed
	Damage         fixedmath.Fixed
	Detection      fixedmath.Fixed
	Aggression     fixedmath.Fixed
	Intelligence   fixedmath.Fixed
	Stamina        fixedmath.Fixed
	Morale         fixedmath.Fixed

	Emotion            Emotion
	HealthAtStateEnter fixedmath.Fixed

	PackCommandReceived bool
	CollisionCooldown   fixedmath.Fixed

	// Memory (spec.md §4.6).
	PlayerSpeedEstimate fixedmath.Fixed
	LastPlayerBlockTime fixedmath.Fixed
	LastPlayerRollTime  fixedmath.Fixed

	// Counters exercised directly by spec.md §8's testable properties.
	FailedAttacks          int
	SuccessfulAttacks      int
	GatingAngleRejects     int
	GatingLOSRejects       int
	ThreatBudgetDeferrals  int

	PreferredAttackAngle fixedmath.Fixed
	CurrentAttackType    AttackType

	// AdaptiveDifficulty's only write surface into a wolf (spec.md
	// §4.8): a speed multiplier on the kind's base speed, an absolute
	// aggression override, and the per-tick AI re-evaluation interval.
	// Reapplied by applyEmotion on every emotion change, instead of
	// the kind table's raw base, so difficulty scaling survives across
	// emotion rows without compounding.
	DifficultySpeedScale  fixedmath.Fixed
	DifficultyAggression  fixedmath.Fixed
	HasDifficultyOverride bool
	DecisionTimer         fixedmath.Fixed
	DecisionInterval      fixedmath.Fixed

	// AttackCooldownScale is the emotion table's multiplier on the
	// kind's base attack_cooldown (e.g. Confident's x0.8). It is reset
	// to One alongside the other modifiable stats in applyEmotion and
	// consulted only by transitionTo when it schedules the next
	// cooldown — the live, per-tick-decrementing AttackCooldown
	// countdown itself is never touched by an emotion change.
	AttackCooldownScale fixedmath.Fixed

	lastKnownDistance fixedmath.Fixed

	// Animation signals exported read-only (spec.md §6).
	Anim AnimationSignals

	MarkedForRemoval bool

	// JustEnteredAttack is set by transitionTo on the tick a wolf
	// enters Attack and consumed by the Coordinator to resolve the
	// hit exactly once per attack (same consumed-flag shape as
	// PackCommandReceived).
	JustEnteredAttack bool
}

// New spawns a wolf of the given kind at pos, registering its physics
// body in world.
func New(id uint32, kind Kind, pos fixedmath.Vec2, world *physics.PhysicsWorld, preferredAngle fixedmath.Fixed) *Wolf {
	base := Stats(kind)
	radius := fixedmath.FromFloat32(0.03)
	bodyID := world.CreateBody(physics.Dynamic, pos, fixedmath.One, radius, physics.LayerEnemy, physics.LayerPlayer|physics.LayerEnvironment|physics.LayerEnemy)

	return &Wolf{
		ID:                   id,
		BodyID:               bodyID,
		Kind:                 kind,
		State:                Idle,
		HP:                   base.MaxHP,
		MaxHP:                base.MaxHP,
		Speed:                base.Speed,
		AttackRange:          base.AttackRange,
		AttackCooldown:       0,
		Damage:               base.Damage,
		Detection:            base.Detection,
		Aggression:           base.Aggression,
		Intelligence:         base.Intelligence,
		Stamina:              fixedmath.One,
		Morale:                fixedmath.One,
		Emotion:              Calm,
		PreferredAttackAngle: preferredAngle,
		DifficultySpeedScale: fixedmath.One,
		DecisionTimer:        fixedmath.Zero,
		DecisionInterval:     defaultDecisionInterval,
		AttackCooldownScale:  fixedmath.One,
	}
}

// defaultDecisionInterval is decision_timer at the default skill
// estimate of 0.5 (spec.md §4.8: max(0.09, 0.22-0.13*skill)).
var defaultDecisionInterval = fixedmath.FromFloat32(0.155)

// ApplyDifficulty is AdaptiveDifficulty's sole write path into a wolf
// (spec.md §4.8). It takes effect immediately by reapplying the
// current emotion row on top of the new scale, rather than waiting
// for the next emotion change.
func (w *Wolf) ApplyDifficulty(speedScale, aggression, decisionInterval fixedmath.Fixed) {
	w.DifficultySpeedScale = speedScale
	w.DifficultyAggression = aggression
	w.HasDifficultyOverride = true
	w.DecisionInterval = decisionInterval
	w.applyEmotion(w.Emotion)
}

// AnimationSignals are the procedurally-derived, player-visible motion
// cues (spec.md §6 get_wolf_leg_x/y, get_wolf_body_bob, etc). They are
// deterministic functions of state_timer and speed, never of wall-clock
// time or a second RNG source.
type AnimationSignals struct {
	LegX, LegY   fixedmath.Fixed
	BodyBob      fixedmath.Fixed
	HeadPitch    fixedmath.Fixed
	HeadYaw      fixedmath.Fixed
	TailWag      fixedmath.Fixed
	EarRotation  fixedmath.Fixed
	BodyStretch  fixedmath.Fixed
}
