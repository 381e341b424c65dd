// Package pack implements PackSim (spec.md §4.7): grouping wolves into
// packs, assigning roles, picking a plan every plan_timer period, and
// executing that plan against member wolves.
package pack

import (
	"houndfall/internal/fixedmath"
	"houndfall/internal/physics"
	"houndfall/internal/wolf"
)

// Pack is a disjoint set of wolf ids sharing one plan.
type Pack struct {
	ID      uint32
	Members []uint32
	Roles   map[uint32]Role
	Leader  uint32
	Plan    Plan
	Morale  fixedmath.Fixed

	planTimer fixedmath.Fixed
}

// Sim owns the live pack list, mirroring wolf.Sim's shape.
type Sim struct {
	packs  []*Pack
	nextID uint32
}

// NewSim returns an empty Sim.
func NewSim() *Sim {
	return &Sim{}
}

// Reset clears all packs, for init_run.
func (s *Sim) Reset() {
	s.packs = nil
	s.nextID = 0
}

// Packs returns the live pack slice for snapshot export.
func (s *Sim) Packs() []*Pack { return s.packs }

// Form creates a new pack from the given wolf ids. A wolf belongs to
// at most one pack; callers are responsible for disjointness.
func (s *Sim) Form(members []uint32) *Pack {
	s.nextID++
	p := &Pack{ID: s.nextID, Members: members, planTimer: planTimerPeriod}
	s.packs = append(s.packs, p)
	return p
}

// Update runs one tick of PackSim for every pack (spec.md §4.10 step
// 8): re-assign roles, advance plan_timer, maybe re-select the plan,
// then execute the current plan against member wolves.
func (s *Sim) Update(dt fixedmath.Fixed, wolves *wolf.Sim, world *physics.PhysicsWorld, playerPos fixedmath.Vec2) {
	for _, p := range s.packs {
		members := liveMembers(p, wolves)
		if len(members) == 0 {
			continue
		}

		p.Roles = assignRoles(members)
		for _, w := range members {
			if p.Roles[w.ID] == Leader {
				p.Leader = w.ID
				break
			}
		}

		agg := computeAggregates(members, world, playerPos)
		p.Morale = agg.avgHealth.Mul(fixedmath.FromFloat32(0.7)).Add(fixedmath.FromFloat32(0.3))

		p.planTimer = p.planTimer.Sub(dt)
		if p.planTimer.Lte(fixedmath.Zero) {
			p.Plan = selectPlan(agg)
			p.planTimer = planTimerPeriod
		}

		execute(p, members, p.Roles, world, playerPos)
	}
}

func liveMembers(p *Pack, wolves *wolf.Sim) []*wolf.Wolf {
	out := make([]*wolf.Wolf, 0, len(p.Members))
	kept := p.Members[:0]
	for _, id := range p.Members {
		if w := wolves.Get(id); w != nil {
			out = append(out, w)
			kept = append(kept, id)
		}
	}
	p.Members = kept
	return out
}

func computeAggregates(members []*wolf.Wolf, world *physics.PhysicsWorld, playerPos fixedmath.Vec2) aggregates {
	var agg aggregates
	var healthSum fixedmath.Fixed
	for _, w := range members {
		agg.alive++
		healthSum = healthSum.Add(w.HP.Div(w.MaxHP))

		if w.AttackCooldown.Lte(fixedmath.Zero) && w.Stamina.Gt(readyStaminaThresh) {
			agg.readyToAttack++
		}

		body := world.Body(w.BodyID)
		if body != nil && body.Position.Sub(playerPos).Length().Lt(nearPlayerDistance) {
			agg.nearPlayer++
		}
	}
	if agg.alive > 0 {
		agg.avgHealth = healthSum.Div(fixedmath.FromInt(agg.alive))
	}
	return agg
}
