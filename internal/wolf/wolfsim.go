package wolf

import (
	"houndfall/internal/fixedmath"
	"houndfall/internal/physics"
)

// Sim owns the live wolf sequence. The per-wolf pipeline is split
// across two Coordinator steps (spec.md §4.10 steps 5 and 7): AI
// decisions happen before PhysicsWorld.Step, emotion/memory/spatial/
// animation happen after, once positions are authoritative again.
type Sim struct {
	wolves  []*Wolf
	byID    map[uint32]*Wolf
	nextID  uint32

	GatingAngleRejects    int
	GatingLOSRejects      int
	ThreatBudgetDeferrals int
}

// NewSim returns an empty Sim.
func NewSim() *Sim {
	return &Sim{byID: make(map[uint32]*Wolf)}
}

// Reset clears all wolves, for init_run.
func (s *Sim) Reset() {
	s.wolves = nil
	s.byID = make(map[uint32]*Wolf)
	s.nextID = 0
}

// Spawn creates a new wolf with a physics body in world.
func (s *Sim) Spawn(kind Kind, pos fixedmath.Vec2, world *physics.PhysicsWorld, preferredAngle fixedmath.Fixed) *Wolf {
	s.nextID++
	w := New(s.nextID, kind, pos, world, preferredAngle)
	s.wolves = append(s.wolves, w)
	s.byID[w.ID] = w
	return w
}

// Wolves returns the live wolf slice for read access (pack role
// assignment, snapshot export).
func (s *Sim) Wolves() []*Wolf { return s.wolves }

// Get looks up a wolf by id.
func (s *Sim) Get(id uint32) *Wolf { return s.byID[id] }

// countAttackers returns how many wolves currently hold the Attack
// state, for the global threat-budget gate.
func (s *Sim) countAttackers() int {
	n := 0
	for _, w := range s.wolves {
		if w.State == Attack {
			n++
		}
	}
	return n
}

// UpdateAI runs update_ai for every wolf (spec.md §4.10 step 5),
// before PhysicsWorld.Step.
func (s *Sim) UpdateAI(dt fixedmath.Fixed, world *physics.PhysicsWorld, playerPos fixedmath.Vec2) {
	attackers := s.countAttackers()
	packAngles := make([]fixedmath.Fixed, 0, len(s.wolves))
	positions := make([]fixedmath.Vec2, 0, len(s.wolves))
	for _, w := range s.wolves {
		if body := world.Body(w.BodyID); body != nil {
			positions = append(positions, body.Position)
		}
	}

	for _, w := range s.wolves {
		body := world.Body(w.BodyID)
		if body == nil {
			continue
		}
		toPlayer := playerPos.Sub(body.Position)
		dist := toPlayer.Length()
		facingDot := fixedmath.One
		if dist.Gt(fixedmath.Zero) {
			facingDot = body.Velocity.Normalize().Dot(toPlayer.Normalize())
			if body.Velocity.LengthSq().Lte(fixedmath.Zero) {
				facingDot = fixedmath.One
			}
		}

		others := othersExcept(positions, body.Position)
		los := !lineOfSightBlocked(body.Position, playerPos, others)

		ctx := AIContext{
			DistanceToPlayer:  dist,
			FacingDotToPlayer: facingDot,
			LineOfSightClear:  los,
			CurrentAttackers:  attackers,
		}

		beforeAngle, beforeLOS, beforeBudget := w.GatingAngleRejects, w.GatingLOSRejects, w.ThreatBudgetDeferrals
		w.UpdateAI(dt, world, playerPos, ctx)
		s.GatingAngleRejects += w.GatingAngleRejects - beforeAngle
		s.GatingLOSRejects += w.GatingLOSRejects - beforeLOS
		s.ThreatBudgetDeferrals += w.ThreatBudgetDeferrals - beforeBudget

		if w.State == Attack && attackers < MaxConcurrentAttackers {
			attackers++
		}
		_ = packAngles
	}
}

// PostPhysics runs update_emotion → update_memory →
// update_spatial_awareness → update_animation for every wolf (spec.md
// §4.10 step 7), then removes any wolf marked for death.
func (s *Sim) PostPhysics(dt fixedmath.Fixed, world *physics.PhysicsWorld, playerPos, playerVelocity fixedmath.Vec2, playerBlocking, playerRolling bool) {
	positions := make([]fixedmath.Vec2, 0, len(s.wolves))
	for _, w := range s.wolves {
		if body := world.Body(w.BodyID); body != nil {
			positions = append(positions, body.Position)
		}
	}

	for _, w := range s.wolves {
		body := world.Body(w.BodyID)
		if body == nil {
			continue
		}

		w.updateEmotion()
		w.updateMemory(dt, playerVelocity, playerBlocking, playerRolling)

		others := othersExcept(positions, body.Position)
		accel := applySeparation(body.Position, others, dt)
		if accel.LengthSq().Gt(fixedmath.Zero) {
			world.ApplyImpulse(w.BodyID, accel)
		}

		w.updateAnimation(defaultStateTimer.Sub(w.StateTimer).Abs())
	}

	s.removeDead(world)
}

func (s *Sim) removeDead(world *physics.PhysicsWorld) {
	kept := s.wolves[:0]
	for _, w := range s.wolves {
		if w.MarkedForRemoval {
			world.DestroyBody(w.BodyID)
			delete(s.byID, w.ID)
			continue
		}
		kept = append(kept, w)
	}
	s.wolves = kept
}

func othersExcept(all []fixedmath.Vec2, self fixedmath.Vec2) []fixedmath.Vec2 {
	out := make([]fixedmath.Vec2, 0, len(all))
	skipped := false
	for _, p := range all {
		if !skipped && p == self {
			skipped = true
			continue
		}
		out = append(out, p)
	}
	return out
}
