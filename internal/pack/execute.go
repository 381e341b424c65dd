package pack

import (
	"houndfall/internal/fixedmath"
	"houndfall/internal/physics"
	"houndfall/internal/wolf"
)

var pincerRadius = fixedmath.FromFloat32(0.15)
var pi = fixedmath.FromFloat32(3.14159265)

// execute runs one tick of plan execution for p against its live
// member wolves (spec.md §4.7's "Plan execution" list). Members not
// mentioned by a plan's rule keep their AI-driven state from this
// tick's earlier update_ai pass.
func execute(p *Pack, members []*wolf.Wolf, roles map[uint32]Role, world *physics.PhysicsWorld, playerPos fixedmath.Vec2) {
	switch p.Plan {
	case PlanAmbush:
		executeAmbush(members, roles, world, playerPos)
	case PlanPincer:
		executePincer(members, world, playerPos)
	case PlanCommit:
		executeCommit(members, world, playerPos)
	case PlanFlank:
		executeFlank(members, roles, world, playerPos)
	case PlanDistract:
		executeDistract(members, roles, world, playerPos)
	case PlanRetreat:
		executeRetreat(members)
	case PlanRegroup:
		executeRegroup(members, world)
	}
}

func executeAmbush(members []*wolf.Wolf, roles map[uint32]Role, world *physics.PhysicsWorld, playerPos fixedmath.Vec2) {
	nonScouts := 0
	for _, w := range members {
		if roles[w.ID] == Scout {
			w.State = wolf.Approach
			continue
		}
		w.State = wolf.Ambush
		angle := w.PreferredAttackAngle.Add(fixedmath.FromInt(nonScouts).Mul(pi).Div(fixedmath.FromInt(4)))
		target := playerPos.Add(fixedmath.AngleToDir(angle).Scale(pincerRadius))
		w.SteerToward(world, target, fixedmath.One)
		nonScouts++
	}
}

func executePincer(members []*wolf.Wolf, world *physics.PhysicsWorld, playerPos fixedmath.Vec2) {
	for i, w := range members {
		angle := fixedmath.Zero
		if uint32(i)%2 == 1 {
			angle = pi
		}
		w.State = wolf.Pincer
		target := playerPos.Add(fixedmath.AngleToDir(angle).Scale(pincerRadius))
		w.SteerToward(world, target, fixedmath.One)
	}
}

func executeCommit(members []*wolf.Wolf, world *physics.PhysicsWorld, playerPos fixedmath.Vec2) {
	closest := rankByDistance(attackerDistances(members, world, playerPos))
	granted := wolf.MaxConcurrentAttackers
	if granted > len(closest) {
		granted = len(closest)
	}
	grantedSet := make(map[uint32]bool, granted)
	for i := 0; i < granted; i++ {
		grantedSet[closest[i]] = true
	}
	for _, w := range members {
		if grantedSet[w.ID] {
			w.PackCommandReceived = true
			continue
		}
		w.State = wolf.Strafe
	}
}

// attackerDistances computes each member's distance to the player, the
// key the Commit plan ranks by.
func attackerDistances(members []*wolf.Wolf, world *physics.PhysicsWorld, playerPos fixedmath.Vec2) map[uint32]float64 {
	out := make(map[uint32]float64, len(members))
	for _, w := range members {
		body := world.Body(w.BodyID)
		if body == nil {
			continue
		}
		out[w.ID] = float64(body.Position.Sub(playerPos).Length().ToFloat32())
	}
	return out
}

func executeFlank(members []*wolf.Wolf, roles map[uint32]Role, world *physics.PhysicsWorld, playerPos fixedmath.Vec2) {
	for _, w := range members {
		if roles[w.ID] == Bruiser {
			w.State = wolf.Approach
			continue
		}
		w.State = wolf.Strafe
	}
}

func executeDistract(members []*wolf.Wolf, roles map[uint32]Role, world *physics.PhysicsWorld, playerPos fixedmath.Vec2) {
	firstSupportUsed := false
	for _, w := range members {
		if !firstSupportUsed && roles[w.ID] == Support {
			w.State = wolf.Approach
			firstSupportUsed = true
			continue
		}
		w.State = wolf.Strafe
		if w.AttackCooldown.Lte(fixedmath.Zero) {
			w.PackCommandReceived = true
		}
	}
}

func executeRetreat(members []*wolf.Wolf) {
	for _, w := range members {
		w.State = wolf.Retreat
	}
}

func executeRegroup(members []*wolf.Wolf, world *physics.PhysicsWorld) {
	var centroid fixedmath.Vec2
	n := 0
	for _, w := range members {
		if body := world.Body(w.BodyID); body != nil {
			centroid = centroid.Add(body.Position)
			n++
		}
	}
	if n == 0 {
		return
	}
	centroid = centroid.Scale(fixedmath.One.Div(fixedmath.FromInt(n)))
	for _, w := range members {
		w.State = wolf.Regroup
		w.SteerToward(world, centroid, fixedmath.One)
	}
}
