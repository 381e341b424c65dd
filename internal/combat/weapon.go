package combat

import "houndfall/internal/fixedmath"

// WeaponID selects a weapon's stat row (spec.md §6 init_run(seed,
// start_weapon)). Generalized from fight-club-go's weapons.go
// string-keyed data table to a dense id with a Fixed-typed stat block;
// shop pricing/cosmetic fields (Color, Emoji, Price) stay with the
// external shell (spec.md §6: shop events are shell-owned), so only
// combat-relevant stats are kept here.
type WeaponID uint32

const (
	WeaponFists WeaponID = iota
	WeaponKnife
	WeaponSword
	WeaponAxe
	WeaponKatana
	WeaponHammer
	WeaponScythe
)

// WeaponStats is one row of the weapon table.
type WeaponStats struct {
	MinDamage fixedmath.Fixed
	MaxDamage fixedmath.Fixed
	Range     fixedmath.Fixed
}

var weaponTable map[WeaponID]WeaponStats

func init() {
	f := fixedmath.FromFloat32
	weaponTable = map[WeaponID]WeaponStats{
		WeaponFists:  {MinDamage: f(0.08), MaxDamage: f(0.15), Range: f(0.08)},
		WeaponKnife:  {MinDamage: f(0.12), MaxDamage: f(0.22), Range: f(0.09)},
		WeaponSword:  {MinDamage: f(0.18), MaxDamage: f(0.35), Range: f(0.10)},
		WeaponAxe:    {MinDamage: f(0.30), MaxDamage: f(0.50), Range: f(0.095)},
		WeaponKatana: {MinDamage: f(0.25), MaxDamage: f(0.40), Range: f(0.12)},
		WeaponHammer: {MinDamage: f(0.45), MaxDamage: f(0.75), Range: f(0.09)},
		WeaponScythe: {MinDamage: f(0.40), MaxDamage: f(0.65), Range: f(0.14)},
	}
}

// Weapon returns the stats for id, defaulting to fists for unknown ids
// (mirrors the teacher's GetWeapon default-to-fists fallback).
func Weapon(id WeaponID) WeaponStats {
	if w, ok := weaponTable[id]; ok {
		return w
	}
	return weaponTable[WeaponFists]
}
