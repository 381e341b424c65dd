package wolf

import (
	"houndfall/internal/fixedmath"
	"houndfall/internal/physics"
)

var defaultStateTimer = fixedmath.FromFloat32(1.5)

// UpdateAI runs the state-decision half of the per-wolf pipeline
// (spec.md §4.6): decrement timers, check interrupts, otherwise
// dispatch evaluate_best_state, then steer. update_physics happens
// implicitly via PhysicsWorld.Step, driven by the velocity steer sets
// here.
func (w *Wolf) UpdateAI(dt fixedmath.Fixed, world *physics.PhysicsWorld, playerPos fixedmath.Vec2, ctx AIContext) {
	w.lastKnownDistance = ctx.DistanceToPlayer

	if w.AttackCooldown.Gt(fixedmath.Zero) {
		w.AttackCooldown = fixedmath.Max(fixedmath.Zero, w.AttackCooldown.Sub(dt))
	}
	if w.CollisionCooldown.Gt(fixedmath.Zero) {
		w.CollisionCooldown = fixedmath.Max(fixedmath.Zero, w.CollisionCooldown.Sub(dt))
	}
	if w.StateTimer.Gt(fixedmath.Zero) {
		w.StateTimer = w.StateTimer.Sub(dt)
	}
	if w.DecisionTimer.Gt(fixedmath.Zero) {
		w.DecisionTimer = fixedmath.Max(fixedmath.Zero, w.DecisionTimer.Sub(dt))
	}

	next, interrupted := w.applyInterrupts(ctx)
	if !interrupted {
		next = w.State
		if w.DecisionTimer.Lte(fixedmath.Zero) {
			next = w.evaluateBestState(ctx)
			w.DecisionTimer = w.DecisionInterval
		}
	}

	if next != w.State {
		w.transitionTo(next)
	}

	if w.State == Attack {
		w.CurrentAttackType = w.selectAttackType(0)
	}

	w.steer(world, playerPos)
}

func (w *Wolf) transitionTo(next State) {
	w.State = next
	w.StateTimer = defaultStateTimer
	if next == Attack {
		w.HealthAtStateEnter = w.HP
		w.AttackCooldown = w.AttackCooldown.Add(Stats(w.Kind).AttackCooldown.Mul(w.AttackCooldownScale))
		w.JustEnteredAttack = true
	}
}
