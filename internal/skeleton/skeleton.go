// Package skeleton implements the per-player jointed chain described in
// spec.md §4.3: position-based dynamics solved by the same
// physics.PhysicsWorld that services the rest of the world — "do not
// write a separate skeleton integrator; reuse the same constraint
// solver" (spec.md §9). The skeleton contributes DistanceConstraint and
// DistanceRangeConstraint entries to the world and, after each step,
// derives two player-visible signals: foot-grounded flags and a single
// balance-quality scalar.
package skeleton

import (
	"houndfall/internal/fixedmath"
	"houndfall/internal/physics"
)

// groundPlane is the y-plane segments are considered "on the ground" at
// or below. The arena has no terrain, so this is a fixed constant.
var groundPlane = fixedmath.One.Div(fixedmath.FromInt(20))
var groundEpsilon = fixedmath.One.Div(fixedmath.FromInt(200))

// segment names, rooted at the pelvis.
const (
	segPelvis = iota
	segSpine
	segHead
	segHipL
	segKneeL
	segFootL
	segHipR
	segKneeR
	segFootR
	segHandL
	segHandR
	segCount
)

var segmentMass = [segCount]fixedmath.Fixed{
	segPelvis: 0, // kinematic
	segSpine:  fixedmath.One.Div(fixedmath.FromInt(10)),
	segHead:   fixedmath.One.Div(fixedmath.FromInt(20)),
	segHipL:   fixedmath.One.Div(fixedmath.FromInt(8)),
	segKneeL:  fixedmath.One.Div(fixedmath.FromInt(10)),
	segFootL:  fixedmath.One.Div(fixedmath.FromInt(12)),
	segHipR:   fixedmath.One.Div(fixedmath.FromInt(8)),
	segKneeR:  fixedmath.One.Div(fixedmath.FromInt(10)),
	segFootR:  fixedmath.One.Div(fixedmath.FromInt(12)),
	segHandL:  fixedmath.One.Div(fixedmath.FromInt(15)),
	segHandR:  fixedmath.One.Div(fixedmath.FromInt(15)),
}

var segmentRadius = fixedmath.One.Div(fixedmath.FromInt(200))

// boneLength is the rest length of every joint in the chain, expressed
// as a fraction of the [0,1] world.
var boneLength = fixedmath.One.Div(fixedmath.FromInt(15))

// PlayerSkeleton is a tree of segments attached by joint constraints,
// rooted at a kinematic pelvis that follows the owning player.
type PlayerSkeleton struct {
	bodies [segCount]physics.BodyID

	LeftFootGrounded  bool
	RightFootGrounded bool
	ComOffset         fixedmath.Fixed
	BalanceQuality    fixedmath.Fixed
}

// New creates all segments and joint constraints in world, anchored at
// pelvisPos. Arm segments collide on physics.LayerPlayerArm, masked to
// exclude the owning player's own body (spec.md §4.2: "an arm does not
// collide with the player it belongs to").
func New(world *physics.PhysicsWorld, pelvisPos fixedmath.Vec2) *PlayerSkeleton {
	s := &PlayerSkeleton{}

	s.bodies[segPelvis] = world.CreateBody(physics.Kinematic, pelvisPos, 0, segmentRadius, physics.LayerPlayer, physics.LayerEnvironment)

	spawn := func(seg int, offset fixedmath.Vec2, layer, mask physics.Layer) {
		pos := pelvisPos.Add(offset)
		s.bodies[seg] = world.CreateBody(physics.Dynamic, pos, segmentMass[seg], segmentRadius, layer, mask)
	}

	up := fixedmath.Vec2{Y: boneLength}
	down := fixedmath.Vec2{Y: boneLength.Neg()}
	left := fixedmath.Vec2{X: boneLength.Neg().Div(fixedmath.FromInt(2))}
	right := fixedmath.Vec2{X: boneLength.Div(fixedmath.FromInt(2))}

	spawn(segSpine, up, physics.LayerPlayer, physics.LayerEnvironment)
	spawn(segHead, up.Add(up), physics.LayerPlayer, physics.LayerEnvironment)
	spawn(segHipL, left, physics.LayerPlayer, physics.LayerEnvironment)
	spawn(segKneeL, left.Add(down), physics.LayerPlayer, physics.LayerEnvironment)
	spawn(segFootL, left.Add(down).Add(down), physics.LayerPlayer, physics.LayerEnvironment)
	spawn(segHipR, right, physics.LayerPlayer, physics.LayerEnvironment)
	spawn(segKneeR, right.Add(down), physics.LayerPlayer, physics.LayerEnvironment)
	spawn(segFootR, right.Add(down).Add(down), physics.LayerPlayer, physics.LayerEnvironment)
	spawn(segHandL, left.Add(up), physics.LayerPlayerArm, physics.LayerEnemy)
	spawn(segHandR, right.Add(up), physics.LayerPlayerArm, physics.LayerEnemy)

	stiff := fixedmath.One
	world.AddDistanceConstraint(s.bodies[segPelvis], s.bodies[segSpine], boneLength, stiff)
	world.AddDistanceConstraint(s.bodies[segSpine], s.bodies[segHead], boneLength, stiff)
	world.AddDistanceConstraint(s.bodies[segPelvis], s.bodies[segHipL], boneLength.Div(fixedmath.FromInt(2)), stiff)
	world.AddDistanceConstraint(s.bodies[segHipL], s.bodies[segKneeL], boneLength, stiff)
	world.AddDistanceRangeConstraint(s.bodies[segKneeL], s.bodies[segFootL], boneLength.Div(fixedmath.FromInt(2)), boneLength, stiff)
	world.AddDistanceConstraint(s.bodies[segPelvis], s.bodies[segHipR], boneLength.Div(fixedmath.FromInt(2)), stiff)
	world.AddDistanceConstraint(s.bodies[segHipR], s.bodies[segKneeR], boneLength, stiff)
	world.AddDistanceRangeConstraint(s.bodies[segKneeR], s.bodies[segFootR], boneLength.Div(fixedmath.FromInt(2)), boneLength, stiff)
	world.AddDistanceRangeConstraint(s.bodies[segSpine], s.bodies[segHandL], boneLength, boneLength.Mul(fixedmath.FromInt(2)), stiff)
	world.AddDistanceRangeConstraint(s.bodies[segSpine], s.bodies[segHandR], boneLength, boneLength.Mul(fixedmath.FromInt(2)), stiff)

	return s
}

// FollowPelvis moves the kinematic pelvis to track the owning player's
// position every tick, before PhysicsWorld.Step runs the constraint
// pass (spec.md §4.3: "the pelvis is kinematic and follows the player").
func (s *PlayerSkeleton) FollowPelvis(world *physics.PhysicsWorld, playerPos fixedmath.Vec2) {
	world.SetKinematicPosition(s.bodies[segPelvis], playerPos)
}

// Recompute derives com_offset, foot-grounded flags, and balance
// quality from current body positions, after the constraint pass has
// run (spec.md §4.3: "physics does the work, gameplay reads a scalar").
func (s *PlayerSkeleton) Recompute(world *physics.PhysicsWorld) {
	pelvis := world.Body(s.bodies[segPelvis])
	if pelvis == nil {
		return
	}

	var weightedX, totalMass fixedmath.Fixed
	for i := 0; i < segCount; i++ {
		b := world.Body(s.bodies[i])
		if b == nil {
			continue
		}
		mass := segmentMass[i]
		if mass == 0 {
			continue
		}
		weightedX = weightedX.Add(b.Position.X.Mul(mass))
		totalMass = totalMass.Add(mass)
	}

	com := fixedmath.Zero
	if totalMass > 0 {
		com = weightedX.Div(totalMass)
	}
	s.ComOffset = com.Sub(pelvis.Position.X)

	if footL := world.Body(s.bodies[segFootL]); footL != nil {
		s.LeftFootGrounded = footL.Position.Y.Lte(groundPlane.Add(groundEpsilon))
	}
	if footR := world.Body(s.bodies[segFootR]); footR != nil {
		s.RightFootGrounded = footR.Position.Y.Lte(groundPlane.Add(groundEpsilon))
	}

	tolerance := fixedmath.One.Div(fixedmath.FromInt(10)) // 0.1
	ratio := s.ComOffset.Abs().Div(tolerance)
	s.BalanceQuality = fixedmath.One.Sub(ratio).Clamp(fixedmath.Zero, fixedmath.One)
}
