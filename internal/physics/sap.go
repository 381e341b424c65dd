// Sweep-and-prune broad phase, adapted from fight-club-go's
// internal/game/spatial/sap.go (itself credited there to Baraff & Witkin
// 1992 / Bullet Physics): 1-axis sweep over interval endpoints with an
// insertion sort that degrades to near-O(n) under temporal coherence.
// Re-typed from float32/uint32 to Fixed/BodyID. The broad phase only
// narrows the candidate set; PhysicsWorld.resolveContacts still performs
// the exact circle-overlap check spec.md §4.2 step 3 requires, so the
// set of resolved contacts is identical to a literal O(n²) scan over
// layer-intersecting pairs — the sweep is purely an optimization, never
// a behavior change.
package physics

import "houndfall/internal/fixedmath"

type sapEndpoint struct {
	value fixedmath.Fixed
	id    BodyID
	isMin bool
}

type bodyPair struct {
	A, B BodyID
}

type sweepAndPrune struct {
	endpoints []sapEndpoint
	pairs     []bodyPair
	active    []BodyID
}

func newSweepAndPrune(maxEntities int) *sweepAndPrune {
	return &sweepAndPrune{
		endpoints: make([]sapEndpoint, 0, maxEntities*2),
		pairs:     make([]bodyPair, 0, maxEntities),
		active:    make([]BodyID, 0, maxEntities/4+1),
	}
}

// update rebuilds endpoints from the given bodies and returns all pairs
// whose AABB intervals (position.X +/- radius) overlap on the x-axis.
func (s *sweepAndPrune) update(bodies []*RigidBody) []bodyPair {
	s.pairs = s.pairs[:0]
	s.endpoints = s.endpoints[:0]

	for _, b := range bodies {
		s.endpoints = append(s.endpoints,
			sapEndpoint{b.Position.X.Sub(b.Radius), b.ID, true},
			sapEndpoint{b.Position.X.Add(b.Radius), b.ID, false},
		)
	}

	insertionSortEndpoints(s.endpoints)

	s.active = s.active[:0]
	for _, ep := range s.endpoints {
		if ep.isMin {
			for _, other := range s.active {
				s.pairs = append(s.pairs, bodyPair{ep.id, other})
			}
			s.active = append(s.active, ep.id)
		} else {
			for i, id := range s.active {
				if id == ep.id {
					s.active[i] = s.active[len(s.active)-1]
					s.active = s.active[:len(s.active)-1]
					break
				}
			}
		}
	}
	return s.pairs
}

// insertionSortEndpoints sorts in place; O(n) for nearly-sorted input,
// which holds frame-to-frame since bodies move a bounded distance per
// tick (temporal coherence).
func insertionSortEndpoints(eps []sapEndpoint) {
	for i := 1; i < len(eps); i++ {
		key := eps[i]
		j := i - 1
		for j >= 0 && eps[j].value > key.value {
			eps[j+1] = eps[j]
			j--
		}
		eps[j+1] = key
	}
}
