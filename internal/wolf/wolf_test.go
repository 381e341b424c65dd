package wolf

import (
	"testing"

	"houndfall/internal/fixedmath"
	"houndfall/internal/physics"
)

func pos(x, y float32) fixedmath.Vec2 {
	return fixedmath.Vec2{X: fixedmath.FromFloat32(x), Y: fixedmath.FromFloat32(y)}
}

func TestEmotionModifiersDoNotCompound(t *testing.T) {
	w := New(1, Grunt, pos(0.5, 0.5), physics.NewPhysicsWorld(8), fixedmath.Zero)
	base := Stats(Grunt)

	w.HP = base.MaxHP.Mul(fixedmath.FromFloat32(0.25)) // triggers Fearful
	w.updateEmotion()
	firstSpeed := w.Speed

	// Recompute emotion several more ticks without changing HP: speed
	// must remain exactly the single-application value, never drift.
	for i := 0; i < 5; i++ {
		w.updateEmotion()
	}
	if w.Speed != firstSpeed {
		t.Fatalf("emotion modifier compounded across ticks: got %v want %v", w.Speed, firstSpeed)
	}
	if w.Speed != base.Speed.Mul(fixedmath.FromFloat32(0.9)) {
		t.Fatalf("unexpected fearful speed modifier: got %v", w.Speed)
	}
}

func TestEmotionChangeDoesNotResetLiveAttackCooldown(t *testing.T) {
	w := New(1, Grunt, pos(0.5, 0.5), physics.NewPhysicsWorld(8), fixedmath.Zero)
	w.AttackCooldown = fixedmath.FromFloat32(0.5)

	// Force an emotion change (high success rate + morale -> Confident).
	w.SuccessfulAttacks = 10
	w.Morale = fixedmath.One
	w.updateEmotion()
	if w.Emotion != Confident {
		t.Fatalf("expected emotion to flip to Confident, got %v", w.Emotion)
	}
	if w.AttackCooldown != fixedmath.FromFloat32(0.5) {
		t.Fatalf("emotion change must not touch the live attack cooldown countdown: got %v", w.AttackCooldown)
	}
}

func TestConfidentCooldownScaleAppliesOnNextAttack(t *testing.T) {
	w := New(1, Grunt, pos(0.5, 0.5), physics.NewPhysicsWorld(8), fixedmath.Zero)
	w.SuccessfulAttacks = 10
	w.Morale = fixedmath.One
	w.updateEmotion()
	if w.AttackCooldownScale != fixedmath.FromFloat32(0.8) {
		t.Fatalf("expected Confident's cooldown scale of 0.8, got %v", w.AttackCooldownScale)
	}

	w.transitionTo(Attack)
	want := Stats(Grunt).AttackCooldown.Mul(fixedmath.FromFloat32(0.8))
	if w.AttackCooldown != want {
		t.Fatalf("expected next cooldown scaled by Confident's 0.8x, got %v want %v", w.AttackCooldown, want)
	}
}

func TestRetreatAtLowHP(t *testing.T) {
	w := New(1, Grunt, pos(0.5, 0.5), physics.NewPhysicsWorld(8), fixedmath.Zero)
	w.HP = w.MaxHP.Mul(fixedmath.FromFloat32(0.1))
	state := w.evaluateBestState(AIContext{DistanceToPlayer: fixedmath.One})
	if state != Retreat {
		t.Fatalf("expected Retreat below 15%% hp, got %v", state)
	}
}

func TestAttackGateRejectsOnAngleAndCountsIt(t *testing.T) {
	w := New(1, Grunt, pos(0.5, 0.5), physics.NewPhysicsWorld(8), fixedmath.Zero)
	ctx := AIContext{
		DistanceToPlayer:  w.AttackRange.Div(fixedmath.FromInt(2)),
		FacingDotToPlayer: fixedmath.Zero, // outside the facing cone
		LineOfSightClear:  true,
	}
	if w.canAttack(ctx) {
		t.Fatalf("expected attack gate to reject on facing angle")
	}
	if w.GatingAngleRejects != 1 {
		t.Fatalf("expected gating_angle_rejects incremented, got %d", w.GatingAngleRejects)
	}
}

func TestDamageMarksDeadAtZeroHP(t *testing.T) {
	w := New(1, Grunt, pos(0.5, 0.5), physics.NewPhysicsWorld(8), fixedmath.Zero)
	_, died := w.TakeDamage(w.MaxHP.Mul(fixedmath.FromInt(2)), fixedmath.ZeroVec2)
	if !died {
		t.Fatalf("expected wolf to die from lethal damage")
	}
	if !w.MarkedForRemoval {
		t.Fatalf("expected MarkedForRemoval set")
	}
}

func TestSeparationPushesOverlappingWolvesApart(t *testing.T) {
	a := pos(0.5, 0.5)
	b := pos(0.52, 0.5)
	accel := applySeparation(a, []fixedmath.Vec2{b}, fixedmath.FromFloat32(1.0/60))
	if accel.X.Gte(fixedmath.Zero) {
		t.Fatalf("expected separation to push wolf a away from b (negative X), got %v", accel.X)
	}
}

func TestLineOfSightBlockedByInterveningWolf(t *testing.T) {
	wolfPos := pos(0.4, 0.5)
	playerPos := pos(0.6, 0.5)
	blocker := pos(0.5, 0.5)
	if !lineOfSightBlocked(wolfPos, playerPos, []fixedmath.Vec2{blocker}) {
		t.Fatalf("expected line of sight to be blocked by intervening wolf")
	}
}
