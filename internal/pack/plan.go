package pack

import "houndfall/internal/fixedmath"

// Plan is a pack-level intent that biases member state selection for
// planTimerPeriod seconds (spec.md §4.7). Ambush, Distract and Regroup
// have defined execution behavior but are not reachable from the
// literal aggregate rules below; they stay available for a host (or a
// future rule) to select explicitly, and are exercised directly by
// this package's tests.
type Plan uint8

const (
	PlanNone Plan = iota
	PlanRetreat
	PlanCommit
	PlanFlank
	PlanPincer
	PlanAmbush
	PlanDistract
	PlanRegroup
)

var planTimerPeriod = fixedmath.FromFloat32(3.0)

// nearPlayerDistance is the "near_player" aggregate's threshold,
// unspecified numerically by spec.md; a pack-wide absolute distance,
// wider than the proximity band used for a wolf's own Patrol→Strafe
// interrupt (internal/wolf/state.go: 0.7*attack_range, at most 0.063),
// since packs can mix wolf kinds with different attack ranges.
var nearPlayerDistance = fixedmath.FromFloat32(0.2)

var readyStaminaThresh = fixedmath.FromFloat32(0.3)

// aggregates summarizes the per-tick pack-wide stats plan selection
// needs, gathered once by Sim.Update.
type aggregates struct {
	avgHealth     fixedmath.Fixed
	readyToAttack int
	nearPlayer    int
	alive         int
}

// selectPlan implements spec.md §4.7's plan-selection rule list, in
// priority order.
func selectPlan(agg aggregates) Plan {
	switch {
	case agg.avgHealth.Lt(fixedmath.FromFloat32(0.3)):
		return PlanRetreat
	case agg.readyToAttack >= 3:
		return PlanCommit
	case agg.nearPlayer >= 2 && agg.nearPlayer < agg.alive:
		return PlanFlank
	case agg.alive >= 3:
		return PlanPincer
	default:
		return PlanNone
	}
}
