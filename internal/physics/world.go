package physics

import "houndfall/internal/fixedmath"

var (
	// MinDT and MaxDT bound the per-tick timestep (spec.md §4.2).
	MinDT = fixedmath.One.Div(fixedmath.FromInt(240))
	MaxDT = fixedmath.One.Div(fixedmath.FromInt(30))

	sleepThreshold = fixedmath.One.Div(fixedmath.FromInt(2000)) // |v| below this is "at rest"
	sleepTime      = fixedmath.One.Div(fixedmath.FromInt(2))    // seconds of rest before sleeping

	worldMin = fixedmath.Zero
	worldMax = fixedmath.One
)

// PhysicsWorld owns all rigid bodies and constraints and steps them in
// the fixed order mandated by spec.md §4.2. Reordering the step pipeline
// changes observable state and is forbidden by the determinism contract.
type PhysicsWorld struct {
	bodies      []*RigidBody
	byIndex     map[uint32]*RigidBody
	nextIndex   uint32
	generations map[uint32]uint32

	distance      []*DistanceConstraint
	distanceRange []*DistanceRangeConstraint

	grid *bodyGrid
	sap  *sweepAndPrune

	// pairSeen avoids reallocating the narrow-phase candidate set
	// every step.
	pairSeen map[bodyPair]struct{}
}

// NewPhysicsWorld creates an empty world sized for maxBodies entities.
func NewPhysicsWorld(maxBodies int) *PhysicsWorld {
	return &PhysicsWorld{
		bodies:      make([]*RigidBody, 0, maxBodies),
		byIndex:     make(map[uint32]*RigidBody, maxBodies),
		generations: make(map[uint32]uint32, maxBodies),
		grid:        newBodyGrid(fixedmath.One.Div(fixedmath.FromInt(10)), maxBodies),
		sap:         newSweepAndPrune(maxBodies),
		pairSeen:    make(map[bodyPair]struct{}, maxBodies),
	}
}

// Reset clears all bodies and constraints, as required by init_run.
func (w *PhysicsWorld) Reset() {
	w.bodies = w.bodies[:0]
	w.byIndex = make(map[uint32]*RigidBody, cap(w.bodies))
	w.nextIndex = 0
	w.generations = make(map[uint32]uint32)
	w.distance = w.distance[:0]
	w.distanceRange = w.distanceRange[:0]
}

// CreateBody allocates a new rigid body with a dense, monotonic id
// (never reused within a run — spec.md §3).
func (w *PhysicsWorld) CreateBody(kind BodyKind, pos fixedmath.Vec2, mass, radius fixedmath.Fixed, layer, mask Layer) BodyID {
	w.nextIndex++
	idx := w.nextIndex
	id := BodyID{Index: idx, Generation: 1}
	w.generations[idx] = 1

	b := &RigidBody{
		ID:               id,
		Kind:             kind,
		Layer:            layer,
		Mask:             mask,
		Position:         pos,
		PreviousPosition: pos,
		Radius:           radius,
		Drag:             fixedmath.Zero,
		Restitution:      fixedmath.Zero,
		Friction:         fixedmath.One.Div(fixedmath.FromInt(2)),
	}
	b.setMass(mass)

	w.bodies = append(w.bodies, b)
	w.byIndex[idx] = b
	return id
}

// DestroyBody removes a body; ids referencing it become invalid and are
// silently ignored thereafter (spec.md §4.2 "Failure model"). Any
// constraint referencing it is dropped on the next Step.
func (w *PhysicsWorld) DestroyBody(id BodyID) {
	b, ok := w.byIndex[id.Index]
	if !ok || b.ID.Generation != id.Generation {
		return
	}
	b.destroyed = true
	delete(w.byIndex, id.Index)
	w.generations[id.Index]++

	for i, bb := range w.bodies {
		if bb == b {
			w.bodies[i] = w.bodies[len(w.bodies)-1]
			w.bodies = w.bodies[:len(w.bodies)-1]
			break
		}
	}
}

// lookup returns the live body for id, or (nil, false) if it was
// destroyed or never existed.
func (w *PhysicsWorld) lookup(id BodyID) (*RigidBody, bool) {
	if id.IsZero() {
		return nil, false
	}
	b, ok := w.byIndex[id.Index]
	if !ok || b.ID.Generation != id.Generation || b.destroyed {
		return nil, false
	}
	return b, true
}

// Body returns the body for id, or nil if destroyed/unknown. Exposed
// for sibling components (CombatState hit tests, WolfSim separation)
// that need read access within the scope of a single tick, per
// spec.md §9's "components receive references to sibling components
// only for the scope of the tick" guidance.
func (w *PhysicsWorld) Body(id BodyID) *RigidBody {
	b, ok := w.lookup(id)
	if !ok {
		return nil
	}
	return b
}

// ApplyForce adds to a body's accumulated force, consumed on the next
// Step. Invalid ids are silently ignored.
func (w *PhysicsWorld) ApplyForce(id BodyID, f fixedmath.Vec2) {
	b, ok := w.lookup(id)
	if !ok || b.Kind != Dynamic {
		return
	}
	b.AccumulatedForce = b.AccumulatedForce.Add(f)
	b.Wake()
}

// ApplyImpulse applies an instantaneous velocity change: v += j*invMass.
func (w *PhysicsWorld) ApplyImpulse(id BodyID, j fixedmath.Vec2) {
	b, ok := w.lookup(id)
	if !ok || b.Kind != Dynamic {
		return
	}
	b.Velocity = b.Velocity.Add(j.Scale(b.InverseMass))
	b.Wake()
}

// SetKinematicPosition moves a kinematic body externally (e.g. the
// skeleton's pelvis following the player). No-op on other kinds.
func (w *PhysicsWorld) SetKinematicPosition(id BodyID, pos fixedmath.Vec2) {
	b, ok := w.lookup(id)
	if !ok || b.Kind != Kinematic {
		return
	}
	b.PreviousPosition = b.Position
	b.Position = pos
}

// SetVelocity directly assigns a dynamic body's velocity, bypassing
// force accumulation. Used by steering behaviors (e.g. WolfSim's
// Approach/Strafe movement) that compute a target velocity outright
// rather than an acceleration (spec.md §4.6: "set v = facing · speed").
func (w *PhysicsWorld) SetVelocity(id BodyID, v fixedmath.Vec2) {
	b, ok := w.lookup(id)
	if !ok || b.Kind != Dynamic {
		return
	}
	b.Velocity = v
	b.Wake()
}

// AddDistanceConstraint registers an equality-length constraint.
func (w *PhysicsWorld) AddDistanceConstraint(a, b BodyID, restLength, stiffness fixedmath.Fixed) {
	w.distance = append(w.distance, &DistanceConstraint{BodyA: a, BodyB: b, RestLength: restLength, Stiffness: stiffness})
}

// AddDistanceRangeConstraint registers a min/max length envelope.
func (w *PhysicsWorld) AddDistanceRangeConstraint(a, b BodyID, minLen, maxLen, stiffness fixedmath.Fixed) {
	w.distanceRange = append(w.distanceRange, &DistanceRangeConstraint{BodyA: a, BodyB: b, MinLength: minLen, MaxLength: maxLen, Stiffness: stiffness})
}

// Step advances the simulation by dt, already clamped by the caller
// (Coordinator) to [MinDT, MaxDT]. The six-stage order below is part
// of the determinism contract (spec.md §4.2, §5): reordering changes
// observable state.
func (w *PhysicsWorld) Step(dt fixedmath.Fixed) {
	w.integrateForces(dt)
	w.resolveConstraints()
	w.resolveContacts()
	w.recomputeVelocities(dt)
	w.clampToWorldBounds()
	w.manageSleep(dt)
}

// clampToWorldBounds restricts every dynamic body's position to
// [worldMin, worldMax]^2, zeroing only the boundary-normal velocity
// component on contact — the same rule playerstate.clampToArena
// applies to the player, generalized here so wolves (and any other
// dynamic body) also satisfy spec.md §3's "position always within
// [0,1]^2" invariant.
func (w *PhysicsWorld) clampToWorldBounds() {
	for _, b := range w.bodies {
		if b.Kind != Dynamic {
			continue
		}
		if b.Position.X.Lt(worldMin) {
			b.Position.X = worldMin
			b.Velocity.X = fixedmath.Zero
		} else if b.Position.X.Gt(worldMax) {
			b.Position.X = worldMax
			b.Velocity.X = fixedmath.Zero
		}
		if b.Position.Y.Lt(worldMin) {
			b.Position.Y = worldMin
			b.Velocity.Y = fixedmath.Zero
		} else if b.Position.Y.Gt(worldMax) {
			b.Position.Y = worldMax
			b.Velocity.Y = fixedmath.Zero
		}
	}
}

func (w *PhysicsWorld) integrateForces(dt fixedmath.Fixed) {
	for _, b := range w.bodies {
		if b.Kind != Dynamic || b.Sleeping {
			b.AccumulatedForce = fixedmath.ZeroVec2
			continue
		}
		accel := b.AccumulatedForce.Scale(b.InverseMass)
		b.Velocity = b.Velocity.Add(accel.Scale(dt))

		dragFactor := fixedmath.One.Sub(b.Drag.Mul(dt))
		b.Velocity = b.Velocity.Scale(dragFactor)

		b.PreviousPosition = b.Position
		b.Position = b.Position.Add(b.Velocity.Scale(dt))
		b.AccumulatedForce = fixedmath.ZeroVec2
	}
}

func (w *PhysicsWorld) resolveConstraints() {
	// Two passes over distance constraints, then two over range
	// constraints — sufficient for the chain depths used (arms, legs,
	// spine <= 8 joints), per spec.md §4.2 step 2.
	for pass := 0; pass < 2; pass++ {
		kept := w.distance[:0]
		for _, c := range w.distance {
			if w.resolveDistance(c) {
				kept = append(kept, c)
			}
		}
		w.distance = kept
	}
	for pass := 0; pass < 2; pass++ {
		kept := w.distanceRange[:0]
		for _, c := range w.distanceRange {
			if w.resolveDistanceRange(c) {
				kept = append(kept, c)
			}
		}
		w.distanceRange = kept
	}
}

func (w *PhysicsWorld) recomputeVelocities(dt fixedmath.Fixed) {
	if dt == 0 {
		return
	}
	invDT := fixedmath.One.Div(dt)
	for _, b := range w.bodies {
		if b.Kind != Dynamic {
			continue
		}
		b.Velocity = b.Position.Sub(b.PreviousPosition).Scale(invDT)
	}
}

func (w *PhysicsWorld) manageSleep(dt fixedmath.Fixed) {
	for _, b := range w.bodies {
		if b.Kind != Dynamic {
			continue
		}
		if b.Velocity.Length() < sleepThreshold {
			b.AwakeTimer = b.AwakeTimer.Add(dt)
			if b.AwakeTimer >= sleepTime {
				b.Sleeping = true
				b.Velocity = fixedmath.ZeroVec2
			}
		} else {
			b.AwakeTimer = 0
			b.Sleeping = false
		}
	}
}

// Bodies returns a read-only view of all live bodies, for snapshot
// export and sibling read access within the current tick.
func (w *PhysicsWorld) Bodies() []*RigidBody {
	return w.bodies
}
