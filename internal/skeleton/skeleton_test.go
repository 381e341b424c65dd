package skeleton

import (
	"testing"

	"houndfall/internal/fixedmath"
	"houndfall/internal/physics"
)

func TestNewSkeletonIsBalancedAtRest(t *testing.T) {
	w := physics.NewPhysicsWorld(32)
	pelvis := fixedmath.Vec2{X: fixedmath.One.Div(fixedmath.FromInt(2)), Y: fixedmath.One.Div(fixedmath.FromInt(2))}
	s := New(w, pelvis)

	dt := fixedmath.One.Div(fixedmath.FromInt(60))
	for i := 0; i < 30; i++ {
		s.FollowPelvis(w, pelvis)
		w.Step(dt)
		s.Recompute(w)
	}

	if s.BalanceQuality < fixedmath.One.Div(fixedmath.FromInt(2)) {
		t.Fatalf("expected a symmetric skeleton to stay roughly balanced, got %v", s.BalanceQuality)
	}
}

func TestFollowPelvisTracksPlayer(t *testing.T) {
	w := physics.NewPhysicsWorld(32)
	start := fixedmath.Vec2{X: fixedmath.One.Div(fixedmath.FromInt(2)), Y: fixedmath.One.Div(fixedmath.FromInt(2))}
	s := New(w, start)

	moved := start.Add(fixedmath.Vec2{X: fixedmath.One.Div(fixedmath.FromInt(10))})
	s.FollowPelvis(w, moved)

	pelvisBody := w.Body(s.bodies[segPelvis])
	if pelvisBody.Position != moved {
		t.Fatalf("pelvis did not track player position: got %v want %v", pelvisBody.Position, moved)
	}
}

func TestRecomputeHandlesDestroyedFoot(t *testing.T) {
	w := physics.NewPhysicsWorld(32)
	pelvis := fixedmath.Vec2{X: fixedmath.One.Div(fixedmath.FromInt(2)), Y: fixedmath.One.Div(fixedmath.FromInt(2))}
	s := New(w, pelvis)

	w.DestroyBody(s.bodies[segFootL])

	// Must not panic when a segment has been destroyed mid-run.
	s.Recompute(w)
}
