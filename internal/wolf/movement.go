package wolf

import (
	"houndfall/internal/fixedmath"
	"houndfall/internal/physics"
)

// steer implements spec.md §4.6's movement-toward-player rules for
// Approach and the circle-strafe for Strafe. Called after the state is
// decided, before PhysicsWorld.Step integrates the resulting velocity.
func (w *Wolf) steer(world *physics.PhysicsWorld, playerPos fixedmath.Vec2) {
	body := world.Body(w.BodyID)
	if body == nil {
		return
	}
	toPlayer := playerPos.Sub(body.Position)
	dist := toPlayer.Length()

	switch w.State {
	case Approach:
		if w.CollisionCooldown.Gt(fixedmath.Zero) {
			world.SetVelocity(w.BodyID, body.Velocity.Scale(fixedmath.FromFloat32(0.9)))
			return
		}
		if dist.Lt(w.AttackRange.Mul(fixedmath.FromFloat32(0.9))) {
			world.SetVelocity(w.BodyID, fixedmath.ZeroVec2)
			return
		}
		facing := toPlayer.Normalize()
		world.SetVelocity(w.BodyID, facing.Scale(w.Speed))
	case Strafe:
		facing := toPlayer.Normalize()
		perp := facing.Perp()
		if w.ID%2 == 1 {
			perp = perp.Scale(fixedmath.One.Neg())
		}
		world.SetVelocity(w.BodyID, perp.Scale(w.Speed.Mul(fixedmath.FromFloat32(0.7))))
	case Retreat:
		away := body.Position.Sub(playerPos).Normalize()
		world.SetVelocity(w.BodyID, away.Scale(w.Speed))
	case Regroup:
		// Movement toward the pack centroid is set by PackSim's Regroup
		// plan execution, which calls SteerToward.
	default:
		// Idle/Patrol/Attack/Recover/Ambush/Pincer/Distract/Flank hold
		// their current velocity or are driven by PackSim's plan
		// execution, which calls SteerToward directly.
	}
}

// SteerToward sets velocity directly at the given target position,
// used by PackSim plan execution (Pincer/Regroup/Ambush) where
// the movement target isn't simply "the player".
func (w *Wolf) SteerToward(world *physics.PhysicsWorld, target fixedmath.Vec2, speedScale fixedmath.Fixed) {
	body := world.Body(w.BodyID)
	if body == nil {
		return
	}
	delta := target.Sub(body.Position)
	if delta.LengthSq().Lte(fixedmath.FromFloat32(0.0004)) {
		world.SetVelocity(w.BodyID, fixedmath.ZeroVec2)
		return
	}
	dir := delta.Normalize()
	world.SetVelocity(w.BodyID, dir.Scale(w.Speed.Mul(speedScale)))
}
