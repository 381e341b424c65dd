package playerstate

import "houndfall/internal/fixedmath"

// ClassAbilityStaminaCost reports the stamina a class's special ability
// costs to start, for the read-only get_ability_stamina_cost accessor
// (spec.md §6). Each class has exactly one special ability, so this
// takes a ClassID rather than an AbilityKind.
func ClassAbilityStaminaCost(class ClassID) fixedmath.Fixed {
	switch class {
	case ClassWarden:
		return bashBaseStamina
	case ClassRaider:
		return chargeMinStamina
	case ClassKensei:
		return dashMinStamina
	}
	return fixedmath.Zero
}
