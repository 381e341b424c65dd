package physics

import "houndfall/internal/fixedmath"

// DistanceConstraint is an equality length constraint resolved by
// position-based correction proportional to stiffness and inverse-mass
// weighting (spec.md §4.2 step 2).
type DistanceConstraint struct {
	BodyA, BodyB BodyID
	RestLength   fixedmath.Fixed
	Stiffness    fixedmath.Fixed // in [0,1]

	broken bool
}

// DistanceRangeConstraint only corrects when length leaves
// [MinLength, MaxLength]; used for joint-angle limits via length
// envelopes (spec.md §4.2).
type DistanceRangeConstraint struct {
	BodyA, BodyB         BodyID
	MinLength, MaxLength fixedmath.Fixed
	Stiffness            fixedmath.Fixed

	broken bool
}

// resolveDistance applies one positional-correction pass for a single
// distance constraint. Returns false if either body has been destroyed
// (the constraint is then dropped by the world on the next step, per
// spec.md §4.2 "Failure model").
func (w *PhysicsWorld) resolveDistance(c *DistanceConstraint) bool {
	a, okA := w.lookup(c.BodyA)
	b, okB := w.lookup(c.BodyB)
	if !okA || !okB {
		c.broken = true
		return false
	}
	applyLengthCorrection(a, b, fixedmath.Zero, c.RestLength, c.Stiffness)
	return true
}

func (w *PhysicsWorld) resolveDistanceRange(c *DistanceRangeConstraint) bool {
	a, okA := w.lookup(c.BodyA)
	b, okB := w.lookup(c.BodyB)
	if !okA || !okB {
		c.broken = true
		return false
	}

	delta := b.Position.Sub(a.Position)
	length := delta.Length()

	switch {
	case length < c.MinLength:
		applyLengthCorrection(a, b, length, c.MinLength, c.Stiffness)
	case length > c.MaxLength:
		applyLengthCorrection(a, b, length, c.MaxLength, c.Stiffness)
	}
	return true
}

// applyLengthCorrection pushes a and b apart or together so that the
// distance between them moves toward `target`, split by inverse-mass
// weight and scaled by stiffness. currentLength may be passed in when
// already known (avoids a repeated Sqrt); pass fixedmath.Zero to force
// recomputation.
func applyLengthCorrection(a, b *RigidBody, currentLength, target, stiffness fixedmath.Fixed) {
	delta := b.Position.Sub(a.Position)
	length := currentLength
	if length == 0 {
		length = delta.Length()
	}
	if length == 0 {
		return
	}

	errAmt := length.Sub(target)
	totalInvMass := a.InverseMass.Add(b.InverseMass)
	if totalInvMass == 0 {
		return
	}

	dir := delta.Scale(fixedmath.One.Div(length))
	correction := errAmt.Mul(stiffness).Div(totalInvMass)

	if a.Kind == Dynamic {
		a.Position = a.Position.Add(dir.Scale(correction.Mul(a.InverseMass)))
	}
	if b.Kind == Dynamic {
		b.Position = b.Position.Sub(dir.Scale(correction.Mul(b.InverseMass)))
	}
}
