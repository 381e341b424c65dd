package physics

import (
	"testing"

	"houndfall/internal/fixedmath"
)

func half() fixedmath.Fixed { return fixedmath.One.Div(fixedmath.FromInt(2)) }

func TestCreateBodyIDsAreMonotonic(t *testing.T) {
	w := NewPhysicsWorld(8)
	a := w.CreateBody(Dynamic, fixedmath.Vec2{X: half(), Y: half()}, fixedmath.One, half(), LayerPlayer, LayerEnemy)
	b := w.CreateBody(Dynamic, fixedmath.Vec2{X: half(), Y: half()}, fixedmath.One, half(), LayerPlayer, LayerEnemy)

	if a.Index == b.Index {
		t.Fatalf("expected distinct ids, got %v and %v", a, b)
	}
	if b.Index <= a.Index {
		t.Fatalf("expected monotonic ids, got %v then %v", a, b)
	}
}

func TestDestroyedBodyIsSilentlyIgnored(t *testing.T) {
	w := NewPhysicsWorld(8)
	id := w.CreateBody(Dynamic, fixedmath.Vec2{X: half(), Y: half()}, fixedmath.One, half(), LayerPlayer, LayerEnemy)
	w.DestroyBody(id)

	if w.Body(id) != nil {
		t.Fatalf("expected destroyed body to be nil")
	}

	// Operations against a destroyed id must not panic.
	w.ApplyForce(id, fixedmath.Vec2{X: fixedmath.One})
	w.ApplyImpulse(id, fixedmath.Vec2{X: fixedmath.One})
}

func TestStaticBodyNeverMoves(t *testing.T) {
	w := NewPhysicsWorld(8)
	pos := fixedmath.Vec2{X: half(), Y: half()}
	id := w.CreateBody(Static, pos, 0, half(), LayerEnvironment, LayerPlayer)
	w.ApplyForce(id, fixedmath.Vec2{X: fixedmath.FromInt(100)})

	for i := 0; i < 10; i++ {
		w.Step(fixedmath.One.Div(fixedmath.FromInt(60)))
	}

	got := w.Body(id).Position
	if got != pos {
		t.Fatalf("static body moved: %v -> %v", pos, got)
	}
}

func TestOverlappingDynamicBodiesSeparate(t *testing.T) {
	w := NewPhysicsWorld(8)
	r := fixedmath.One.Div(fixedmath.FromInt(20))
	a := w.CreateBody(Dynamic, fixedmath.Vec2{X: fixedmath.FromInt(1) / 2, Y: half()}, fixedmath.One, r, LayerPlayer, LayerEnemy)
	b := w.CreateBody(Dynamic, fixedmath.Vec2{X: half().Add(r), Y: half()}, fixedmath.One, r, LayerEnemy, LayerPlayer)

	dt := fixedmath.One.Div(fixedmath.FromInt(60))
	for i := 0; i < 30; i++ {
		w.Step(dt)
	}

	pa := w.Body(a).Position
	pb := w.Body(b).Position
	dist := pb.Sub(pa).Length()
	minDist := r.Add(r)
	if dist < minDist.Sub(fixedmath.One.Div(fixedmath.FromInt(100))) {
		t.Fatalf("bodies still overlapping: dist=%v want>=%v", dist, minDist)
	}
}

func TestDistanceConstraintHoldsLength(t *testing.T) {
	w := NewPhysicsWorld(8)
	rest := fixedmath.One.Div(fixedmath.FromInt(10))
	a := w.CreateBody(Kinematic, fixedmath.Vec2{X: half(), Y: half()}, 0, fixedmath.One.Div(fixedmath.FromInt(50)), LayerPlayer, 0)
	b := w.CreateBody(Dynamic, fixedmath.Vec2{X: half().Add(rest).Add(rest), Y: half()}, fixedmath.One.Div(fixedmath.FromInt(10)), fixedmath.One.Div(fixedmath.FromInt(50)), LayerPlayer, 0)
	w.AddDistanceConstraint(a, b, rest, fixedmath.One)

	dt := fixedmath.One.Div(fixedmath.FromInt(60))
	for i := 0; i < 60; i++ {
		w.Step(dt)
	}

	length := w.Body(b).Position.Sub(w.Body(a).Position).Length()
	diff := length.Sub(rest).Abs()
	tolerance := fixedmath.One.Div(fixedmath.FromInt(50))
	if diff > tolerance {
		t.Fatalf("constraint length drifted: got %v want ~%v (diff %v)", length, rest, diff)
	}
}

func TestDynamicBodyClampedToWorldBounds(t *testing.T) {
	w := NewPhysicsWorld(8)
	id := w.CreateBody(Dynamic, fixedmath.Vec2{X: fixedmath.FromFloat32(0.02), Y: half()}, fixedmath.One, half().Div(fixedmath.FromInt(10)), LayerEnemy, LayerPlayer)
	w.SetVelocity(id, fixedmath.Vec2{X: fixedmath.FromInt(-10)})

	dt := fixedmath.One.Div(fixedmath.FromInt(60))
	for i := 0; i < 10; i++ {
		w.Step(dt)
	}

	b := w.Body(id)
	if b.Position.X.Lt(worldMin) || b.Position.X.Gt(worldMax) {
		t.Fatalf("position escaped world bounds: %v", b.Position)
	}
	if b.Position.X != worldMin {
		t.Fatalf("expected body pinned to worldMin, got %v", b.Position.X)
	}
	if b.Velocity.X != fixedmath.Zero {
		t.Fatalf("expected boundary-normal velocity zeroed, got %v", b.Velocity.X)
	}
}

func TestDtClampBounds(t *testing.T) {
	if MinDT >= MaxDT {
		t.Fatalf("MinDT (%v) must be < MaxDT (%v)", MinDT, MaxDT)
	}
}

func BenchmarkStepManyBodies(b *testing.B) {
	w := NewPhysicsWorld(64)
	for i := 0; i < 40; i++ {
		w.CreateBody(Dynamic, fixedmath.Vec2{X: half(), Y: half()}, fixedmath.One, fixedmath.One.Div(fixedmath.FromInt(40)), LayerEnemy, LayerPlayer|LayerEnemy)
	}
	dt := fixedmath.One.Div(fixedmath.FromInt(60))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Step(dt)
	}
}
