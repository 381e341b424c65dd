package wolf

import "houndfall/internal/fixedmath"

// separationForce computes the pairwise separation impulse magnitude
// for a wolf at dist from another wolf, per spec.md §4.6: the sole
// mechanism preventing wolves from stacking on the player.
func separationForce(dist fixedmath.Fixed) fixedmath.Fixed {
	sep := fixedmath.FromFloat32(separationDistance)
	if dist.Gte(sep) || dist.Lte(fixedmath.Zero) {
		return fixedmath.Zero
	}
	ratio := sep.Sub(dist).Div(sep)
	return ratio.Mul(ratio).Mul(fixedmath.FromFloat32(separationStrength))
}

// applySeparation pushes w away from every other position closer than
// SEPARATION_DISTANCE, integrating the resulting force into velocity.
func applySeparation(pos fixedmath.Vec2, others []fixedmath.Vec2, dt fixedmath.Fixed) fixedmath.Vec2 {
	var accel fixedmath.Vec2
	for _, o := range others {
		delta := pos.Sub(o)
		dist := delta.Length()
		mag := separationForce(dist)
		if mag.Lte(fixedmath.Zero) {
			continue
		}
		dir := delta.Normalize()
		accel = accel.Add(dir.Scale(mag))
	}
	return accel.Scale(dt)
}

// lineOfSightBlocked implements spec.md §4.6: the segment from wolf to
// player is blocked if any other wolf lies within perpendicular
// distance 0.05 of that segment, on the player-side half-plane.
func lineOfSightBlocked(wolfPos, playerPos fixedmath.Vec2, others []fixedmath.Vec2) bool {
	const corridorWidth = 0.05
	seg := playerPos.Sub(wolfPos)
	segLenSq := seg.LengthSq()
	if segLenSq.Lte(fixedmath.Zero) {
		return false
	}

	for _, o := range others {
		toOther := o.Sub(wolfPos)
		t := toOther.Dot(seg).Div(segLenSq)
		if t.Lte(fixedmath.Zero) || t.Gte(fixedmath.One) {
			continue // not between wolf and player
		}
		closest := wolfPos.Add(seg.Scale(t))
		perpDist := o.Sub(closest).Length()
		if perpDist.Lt(fixedmath.FromFloat32(corridorWidth)) {
			return true
		}
	}
	return false
}

// pickAttackSector scans the 8 sectors around the player occupied by
// pack-mates and returns the angle of the first unoccupied one,
// defaulting to preferred if all are taken (spec.md §4.6).
func pickAttackSector(preferred fixedmath.Fixed, packAngles []fixedmath.Fixed) fixedmath.Fixed {
	const sectors = 8
	occupied := make([]bool, sectors)
	two := fixedmath.FromInt(2)
	pi := fixedmath.FromFloat32(3.14159265)
	sectorSize := two.Mul(pi).Div(fixedmath.FromInt(sectors))

	sectorOf := func(angle fixedmath.Fixed) int {
		normalized := angle
		for normalized.Lt(fixedmath.Zero) {
			normalized = normalized.Add(two.Mul(pi))
		}
		idx := int(normalized.Div(sectorSize).ToFloat32())
		if idx < 0 {
			idx = 0
		}
		if idx >= sectors {
			idx = sectors - 1
		}
		return idx
	}

	for _, a := range packAngles {
		occupied[sectorOf(a)] = true
	}

	for i := 0; i < sectors; i++ {
		if !occupied[i] {
			return fixedmath.FromInt(i).Mul(sectorSize)
		}
	}
	return preferred
}
