package wolf

import "houndfall/internal/fixedmath"

// Emotion is recomputed every tick from signals and applied only when
// it changes, by resetting modifiable stats to base_* first — this is
// what guarantees modifiers never compound across ticks (spec.md §4.6,
// §9, §8 invariant 6).
type Emotion uint8

const (
	Calm Emotion = iota
	Fearful
	Confident
	Frustrated
	Desperate
	Aggressive
)

// evaluateEmotion picks the table row per spec.md §4.6, checking
// Desperate (which overrides Fearful) before the weaker Fearful
// condition.
func (w *Wolf) evaluateEmotion() Emotion {
	hpRatio := w.HP.Div(w.MaxHP)
	successRate := w.successRate()

	if hpRatio.Lt(fixedmath.FromFloat32(0.2)) {
		return Desperate
	}
	if hpRatio.Lt(fixedmath.FromFloat32(0.3)) {
		return Fearful
	}
	if successRate.Gt(fixedmath.FromFloat32(0.7)) && w.Morale.Gt(fixedmath.FromFloat32(0.7)) {
		return Confident
	}
	if w.FailedAttacks > 5 && successRate.Lt(fixedmath.FromFloat32(0.3)) {
		return Frustrated
	}
	if w.Aggression.Gt(fixedmath.FromFloat32(0.6)) && w.attackRangeThreatDistance() {
		return Aggressive
	}
	return Calm
}

func (w *Wolf) attackRangeThreatDistance() bool {
	return w.lastKnownDistance.Lt(w.AttackRange.Mul(fixedmath.FromFloat32(1.5)))
}

func (w *Wolf) successRate() fixedmath.Fixed {
	total := w.SuccessfulAttacks + w.FailedAttacks
	if total == 0 {
		return fixedmath.Zero
	}
	return fixedmath.FromInt(w.SuccessfulAttacks).Div(fixedmath.FromInt(total))
}

// applyEmotion resets every modifiable stat to its base_* value, then
// applies the one row matching the new emotion exactly once.
func (w *Wolf) applyEmotion(e Emotion) {
	base := Stats(w.Kind)
	w.Speed = base.Speed.Mul(w.DifficultySpeedScale)
	w.AttackRange = base.AttackRange
	w.AttackCooldownScale = fixedmath.One
	w.Damage = base.Damage
	w.Detection = base.Detection
	w.Aggression = base.Aggression
	if w.HasDifficultyOverride {
		w.Aggression = w.DifficultyAggression
	}

	f := fixedmath.FromFloat32
	switch e {
	case Fearful:
		w.Detection = w.Detection.Mul(f(1.3))
		w.AttackRange = w.AttackRange.Mul(f(0.7))
		w.Speed = w.Speed.Mul(f(0.9))
	case Confident:
		w.Speed = w.Speed.Mul(f(1.1))
		w.AttackCooldownScale = f(0.8)
	case Frustrated:
		w.Aggression = w.Aggression.Add(f(0.2))
		w.Damage = w.Damage.Mul(f(1.1))
	case Desperate:
		w.Damage = w.Damage.Mul(f(1.3))
		w.Speed = w.Speed.Mul(f(1.15))
	case Aggressive:
		w.AttackRange = w.AttackRange.Mul(f(1.2))
		w.Speed = w.Speed.Mul(f(1.05))
	case Calm:
		// identity: base values already restored above.
	}
	w.Emotion = e
}

// updateEmotion recomputes the emotion and applies it only on change,
// per the tick-5 step of the per-wolf pipeline.
func (w *Wolf) updateEmotion() {
	next := w.evaluateEmotion()
	if next != w.Emotion {
		w.applyEmotion(next)
	}
}
