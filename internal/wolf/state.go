package wolf

import "houndfall/internal/fixedmath"

// State is one of the 12 FSM states driving a wolf's behavior
// (spec.md §4.6).
type State uint8

const (
	Idle State = iota
	Patrol
	Approach
	Strafe
	Attack
	Recover
	Retreat
	Flank
	Ambush
	Pincer
	Regroup
	Distract
)

// AttackType is the opaque 8-bit tag returned to the caller selecting
// among attack animations/behaviors (spec.md §4.6).
type AttackType uint8

const (
	StandardLunge AttackType = iota
	QuickJab
	Feint
	PowerLunge
)

// AIContext is everything evaluate_best_state needs from the tick's
// wider world, gathered once per wolf per tick by WolfSim.Update.
type AIContext struct {
	DistanceToPlayer  fixedmath.Fixed
	FacingDotToPlayer fixedmath.Fixed
	LineOfSightClear  bool
	CurrentAttackers  int
	PlayerWithinRange fixedmath.Fixed // 0.7*attack_range proximity check input
}

// evaluateBestState implements the dispatcher of spec.md §4.6: Retreat
// gates first, then the global Attack gate (facing-angle, line-of-sight
// and threat-budget rejections each increment their own counter), then
// a kind-specific preference, then a
// state-specific default.
func (w *Wolf) evaluateBestState(ctx AIContext) State {
	hpRatio := w.HP.Div(w.MaxHP)

	if hpRatio.Lt(fixedmath.FromFloat32(0.15)) {
		return Retreat
	}
	if hpRatio.Lt(fixedmath.FromFloat32(0.3)) && w.Morale.Lt(fixedmath.FromFloat32(0.4)) {
		return Retreat
	}

	if w.canAttack(ctx) {
		return Attack
	}

	if pref, ok := w.kindPreferredState(ctx, hpRatio); ok {
		return pref
	}

	return w.defaultTransition()
}

// canAttack evaluates the Attack gate. When the first failing condition
// is the facing angle, line of sight or the threat budget, its own
// counter is incremented; range, cooldown and stamina rejections are
// not counted.
func (w *Wolf) canAttack(ctx AIContext) bool {
	if ctx.DistanceToPlayer.Gte(w.AttackRange) {
		return false
	}
	if w.AttackCooldown.Gt(fixedmath.Zero) {
		return false
	}
	if w.Stamina.Lte(fixedmath.FromFloat32(0.3)) {
		return false
	}
	if ctx.FacingDotToPlayer.Lt(fixedmath.FromFloat32(attackFacingCosThresh)) {
		w.GatingAngleRejects++
		return false
	}
	if !ctx.LineOfSightClear {
		w.GatingLOSRejects++
		return false
	}
	if ctx.CurrentAttackers >= MaxConcurrentAttackers {
		w.ThreatBudgetDeferrals++
		return false
	}
	return true
}

func (w *Wolf) kindPreferredState(ctx AIContext, hpRatio fixedmath.Fixed) (State, bool) {
	nearRange := ctx.DistanceToPlayer.Lt(w.AttackRange.Mul(fixedmath.FromFloat32(1.5)))
	switch w.Kind {
	case Alpha:
		if nearRange {
			return Approach, true
		}
		return Attack, true
	case Scout:
		if hpRatio.Lt(fixedmath.FromFloat32(0.5)) {
			return Retreat, true
		}
		if nearRange {
			return Strafe, true
		}
		return Approach, true
	case Hunter:
		if w.PackCommandReceived {
			return Approach, true
		}
		return Strafe, true
	}
	return Idle, false
}

// defaultTransition applies state-specific default transitions driven
// by state_timer, for states with no overriding condition above.
func (w *Wolf) defaultTransition() State {
	switch w.State {
	case Idle:
		if w.StateTimer.Lte(fixedmath.Zero) {
			return Patrol
		}
	case Patrol:
		if w.StateTimer.Lte(fixedmath.Zero) {
			return Approach
		}
	case Recover:
		if w.StateTimer.Lte(fixedmath.Zero) {
			return Strafe
		}
	case Retreat:
		if w.StateTimer.Lte(fixedmath.Zero) {
			return Idle
		}
	case Attack:
		if w.StateTimer.Lte(fixedmath.Zero) {
			return Recover
		}
	}
	return w.State
}

// applyInterrupts checks the higher-priority interrupt conditions
// before the timer-driven transition each tick (spec.md §4.6).
func (w *Wolf) applyInterrupts(ctx AIContext) (State, bool) {
	hpRatio := w.HP.Div(w.MaxHP)

	if hpRatio.Lt(fixedmath.FromFloat32(0.2)) && w.State != Retreat {
		return Retreat, true
	}
	if w.PackCommandReceived && w.AttackCooldown.Lte(fixedmath.Zero) {
		w.PackCommandReceived = false
		return Attack, true
	}
	if w.State == Patrol && ctx.DistanceToPlayer.Lt(w.AttackRange.Mul(fixedmath.FromFloat32(0.7))) {
		return Strafe, true
	}
	if w.State == Attack && w.HealthAtStateEnter.Sub(w.HP).Gte(fixedmath.FromFloat32(damageInterruptThreshold)) {
		return Recover, true
	}
	return w.State, false
}

const damageInterruptThreshold = 0.15 // SPEC_FULL.md §E resolution, expressed as a fraction of max_health
