package wolf

import "houndfall/internal/fixedmath"

var recoverOnDamageDur = fixedmath.FromFloat32(0.5)

// TakeDamage implements damage_wolf(id, amount, knockback_xy) (spec.md
// §4.6): decrements hp, applies knockback to velocity (the caller owns
// the physics body and applies the returned impulse), reduces morale,
// and forces Recover if the wolf was Attacking. Returns the knockback
// impulse to apply and whether the wolf died this call. Named
// TakeDamage rather than Damage to avoid colliding with the Damage
// stat field.
func (w *Wolf) TakeDamage(amount fixedmath.Fixed, knockback fixedmath.Vec2) (impulse fixedmath.Vec2, died bool) {
	w.HP = w.HP.Sub(amount)
	w.Morale = fixedmath.Max(fixedmath.Zero, w.Morale.Sub(fixedmath.FromFloat32(0.05)))

	if w.State == Attack {
		w.State = Recover
		w.StateTimer = recoverOnDamageDur
	}

	if w.HP.Lte(fixedmath.Zero) {
		w.HP = fixedmath.Zero
		w.MarkedForRemoval = true
		died = true
	}

	return knockback.Scale(fixedmath.FromFloat32(0.3)), died
}
