package wolf

import "houndfall/internal/fixedmath"

// updateAnimation derives player-visible motion cues from state_timer
// and speed. These are procedural stand-ins for a bone/blend-tree
// system: a triangle wave (cheap, exact under Fixed, no trig table
// needed) replaces sine for gait cycling, since the only requirement is
// a bounded, deterministic, continuous signal — not visual fidelity.
func (w *Wolf) updateAnimation(elapsed fixedmath.Fixed) {
	speedFactor := fixedmath.One.Add(w.Speed.Mul(fixedmath.FromFloat32(2.0)))
	gaitPeriod := fixedmath.FromFloat32(0.8).Div(speedFactor)

	phase := triangleWave(elapsed, gaitPeriod)
	w.Anim.LegX = phase.Mul(fixedmath.FromFloat32(0.05))
	w.Anim.LegY = phase.Abs().Mul(fixedmath.FromFloat32(0.03))
	w.Anim.BodyBob = phase.Abs().Mul(fixedmath.FromFloat32(0.02))
	w.Anim.TailWag = triangleWave(elapsed, fixedmath.FromFloat32(0.5)).Mul(fixedmath.FromFloat32(0.3))
	w.Anim.EarRotation = triangleWave(elapsed, fixedmath.FromFloat32(1.2)).Mul(fixedmath.FromFloat32(0.15))

	switch w.State {
	case Attack:
		w.Anim.HeadPitch = fixedmath.FromFloat32(-0.2)
		w.Anim.BodyStretch = fixedmath.FromFloat32(0.1)
	case Retreat:
		w.Anim.HeadPitch = fixedmath.FromFloat32(0.1)
		w.Anim.BodyStretch = fixedmath.FromFloat32(-0.05)
	default:
		w.Anim.HeadPitch = fixedmath.Zero
		w.Anim.BodyStretch = fixedmath.Zero
	}
	w.Anim.HeadYaw = phase.Mul(fixedmath.FromFloat32(0.1))
}

// triangleWave returns a deterministic periodic signal in [-1, 1] with
// the given period, advancing with t.
func triangleWave(t, period fixedmath.Fixed) fixedmath.Fixed {
	if period.Lte(fixedmath.Zero) {
		return fixedmath.Zero
	}
	quotient := t.Div(period)
	frac := quotient.Sub(fixedmath.FromInt(int(quotient.ToFloat32())))
	if frac.Lt(fixedmath.Zero) {
		frac = frac.Add(fixedmath.One)
	}
	// frac in [0,1): map to a triangle in [-1,1].
	if frac.Lt(fixedmath.FromFloat32(0.5)) {
		return frac.Mul(fixedmath.FromFloat32(4.0)).Sub(fixedmath.One)
	}
	return fixedmath.FromFloat32(3.0).Sub(frac.Mul(fixedmath.FromFloat32(4.0)))
}
