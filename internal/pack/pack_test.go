package pack

import (
	"testing"

	"houndfall/internal/fixedmath"
	"houndfall/internal/physics"
	"houndfall/internal/wolf"
)

func f(v float32) fixedmath.Fixed { return fixedmath.FromFloat32(v) }

func spawnPack(t *testing.T, n int) (*wolf.Sim, *physics.PhysicsWorld, []uint32) {
	t.Helper()
	world := physics.NewPhysicsWorld(32)
	wolves := wolf.NewSim()
	ids := make([]uint32, 0, n)
	for i := 0; i < n; i++ {
		pos := fixedmath.Vec2{X: f(0.5 + 0.01*float32(i)), Y: fixedmath.One.Mul(f(0.5))}
		w := wolves.Spawn(wolf.Grunt, pos, world, fixedmath.Zero)
		ids = append(ids, w.ID)
	}
	return wolves, world, ids
}

func TestLeaderMaximizesIntelligenceTimesMorale(t *testing.T) {
	wolves, world, ids := spawnPack(t, 3)
	_ = world
	wolves.Get(ids[1]).Intelligence = f(0.95)
	wolves.Get(ids[1]).Morale = fixedmath.One

	s := NewSim()
	p := s.Form(ids)
	members := liveMembers(p, wolves)
	roles := assignRoles(members)
	if roles[ids[1]] != Leader {
		t.Fatalf("expected wolf %d (highest intelligence*morale) to be Leader, got roles=%v", ids[1], roles)
	}
}

func TestCommitPlanGrantsPermissionToClosestAndStrafesRest(t *testing.T) {
	wolves, world, ids := spawnPack(t, 4)
	playerPos := fixedmath.Vec2{X: f(0.5), Y: f(0.5)}

	s := NewSim()
	p := s.Form(ids)
	p.planTimer = fixedmath.Zero
	for _, id := range ids {
		wl := wolves.Get(id)
		wl.AttackCooldown = fixedmath.Zero
		wl.Stamina = fixedmath.One
	}

	s.Update(f(1.0/60), wolves, world, playerPos)

	if p.Plan != PlanCommit {
		t.Fatalf("expected Commit plan with 4 ready wolves, got %v", p.Plan)
	}

	granted := 0
	strafing := 0
	for _, id := range ids {
		wl := wolves.Get(id)
		if wl.PackCommandReceived {
			granted++
		}
		if wl.State == wolf.Strafe {
			strafing++
		}
	}
	if granted != 2 {
		t.Fatalf("expected max_concurrent_attackers=2 wolves granted permission, got %d", granted)
	}
	if strafing != 2 {
		t.Fatalf("expected remaining 2 wolves Strafing, got %d", strafing)
	}
}

func TestRetreatPlanBelowAvgHealthThreshold(t *testing.T) {
	wolves, world, ids := spawnPack(t, 2)
	playerPos := fixedmath.Vec2{X: f(0.9), Y: f(0.9)}

	for _, id := range ids {
		wl := wolves.Get(id)
		wl.HP = wl.MaxHP.Mul(f(0.1))
	}

	s := NewSim()
	p := s.Form(ids)
	p.planTimer = fixedmath.Zero
	s.Update(f(1.0/60), wolves, world, playerPos)

	if p.Plan != PlanRetreat {
		t.Fatalf("expected Retreat plan at low avg health, got %v", p.Plan)
	}
	for _, id := range ids {
		if wolves.Get(id).State != wolf.Retreat {
			t.Fatalf("expected wolf %d in Retreat state", id)
		}
	}
}

func TestPincerSplitsPackIntoTwoAngles(t *testing.T) {
	wolves, world, ids := spawnPack(t, 4)
	playerPos := fixedmath.Vec2{X: f(0.5), Y: f(0.5)}

	s := NewSim()
	p := s.Form(ids)
	p.Plan = PlanPincer
	p.planTimer = planTimerPeriod

	members := liveMembers(p, wolves)
	roles := assignRoles(members)
	execute(p, members, roles, world, playerPos)

	for _, id := range ids {
		if wolves.Get(id).State != wolf.Pincer {
			t.Fatalf("expected wolf %d in Pincer state", id)
		}
	}
}

func TestPlanTimerGatesReselection(t *testing.T) {
	wolves, world, ids := spawnPack(t, 2)
	playerPos := fixedmath.Vec2{X: f(0.9), Y: f(0.9)}

	s := NewSim()
	p := s.Form(ids)
	p.Plan = PlanFlank
	p.planTimer = planTimerPeriod

	s.Update(f(1.0/60), wolves, world, playerPos)
	if p.Plan != PlanFlank {
		t.Fatalf("expected plan to stay Flank before plan_timer expires, got %v", p.Plan)
	}
}
