package physics

import "houndfall/internal/fixedmath"

// resolveContacts implements spec.md §4.2 step 3: O(n²)-equivalent
// sphere contact resolution over pairs whose (layer & mask) intersect.
// The sweep-and-prune broad phase (sap.go) narrows candidates first;
// every candidate still gets the exact circle-overlap test below, so
// the resolved contact set is identical to a literal exhaustive scan.
func (w *PhysicsWorld) resolveContacts() {
	candidates := w.sap.update(w.bodies)

	for k := range w.pairSeen {
		delete(w.pairSeen, k)
	}

	for _, pair := range candidates {
		a, okA := w.lookup(pair.A)
		b, okB := w.lookup(pair.B)
		if !okA || !okB {
			continue
		}
		if a.ID.Index > b.ID.Index {
			a, b = b, a
		}
		key := bodyPair{a.ID, b.ID}
		if _, seen := w.pairSeen[key]; seen {
			continue
		}
		w.pairSeen[key] = struct{}{}

		if a.Layer&b.Mask == 0 || b.Layer&a.Mask == 0 {
			continue
		}
		resolveContactPair(a, b)
	}
}

func resolveContactPair(a, b *RigidBody) {
	delta := b.Position.Sub(a.Position)
	distSq := delta.LengthSq()
	minDist := a.Radius.Add(b.Radius)
	minDistSq := minDist.Mul(minDist)

	if distSq >= minDistSq {
		return
	}

	dist := distSq.Sqrt()
	var normal fixedmath.Vec2
	if dist == 0 {
		normal = fixedmath.Vec2{X: fixedmath.One}
	} else {
		normal = delta.Scale(fixedmath.One.Div(dist))
	}
	penetration := minDist.Sub(dist)

	totalInvMass := a.InverseMass.Add(b.InverseMass)
	if totalInvMass == 0 {
		return
	}

	// Positional separation, weighted by inverse mass.
	correction := normal.Scale(penetration.Div(totalInvMass))
	if a.Kind == Dynamic {
		a.Position = a.Position.Sub(correction.Scale(a.InverseMass))
	}
	if b.Kind == Dynamic {
		b.Position = b.Position.Add(correction.Scale(b.InverseMass))
	}

	// Impulse resolution along the contact normal.
	relVel := b.Velocity.Sub(a.Velocity)
	velAlongNormal := relVel.Dot(normal)
	if velAlongNormal > 0 {
		a.Wake()
		b.Wake()
		return
	}

	restitution := fixedmath.Min(a.Restitution, b.Restitution)
	j := velAlongNormal.Neg().Mul(fixedmath.One.Add(restitution))
	j = j.Div(totalInvMass)
	impulse := normal.Scale(j)

	if a.Kind == Dynamic {
		a.Velocity = a.Velocity.Sub(impulse.Scale(a.InverseMass))
	}
	if b.Kind == Dynamic {
		b.Velocity = b.Velocity.Add(impulse.Scale(b.InverseMass))
	}

	// Tangential (Coulomb) friction, clamped to mu*|normal impulse|.
	relVel = b.Velocity.Sub(a.Velocity)
	tangent := relVel.Sub(normal.Scale(relVel.Dot(normal)))
	tangentLen := tangent.Length()
	if tangentLen > 0 {
		tangent = tangent.Scale(fixedmath.One.Div(tangentLen))
		jt := relVel.Dot(tangent).Neg().Div(totalInvMass)

		mu := (a.Friction.Add(b.Friction)).Div(fixedmath.FromInt(2))
		maxFriction := mu.Mul(j.Abs())
		jt = jt.Clamp(maxFriction.Neg(), maxFriction)

		frictionImpulse := tangent.Scale(jt)
		if a.Kind == Dynamic {
			a.Velocity = a.Velocity.Sub(frictionImpulse.Scale(a.InverseMass))
		}
		if b.Kind == Dynamic {
			b.Velocity = b.Velocity.Add(frictionImpulse.Scale(b.InverseMass))
		}
	}

	a.Wake()
	b.Wake()
}
