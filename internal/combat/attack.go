package combat

import "houndfall/internal/fixedmath"

// AttackKind selects which row of the attack-timing table an attack
// in progress is using (spec.md §4.5).
type AttackKind uint8

const (
	AttackNone AttackKind = iota
	AttackLight
	AttackHeavy
	AttackSpecial
)

// AttackPhase is the shared FSM driving light/heavy/special attacks:
// identical shape, parameterised timing per AttackKind.
type AttackPhase uint8

const (
	PhaseIdle AttackPhase = iota
	PhaseWindup
	PhaseActive
	PhaseRecovery
)

// attackDef is one row of the attack-timing table (spec.md §4.5), the
// generalization of fight-club-go's animation.go per-weapon phase
// table from a single fixed timing set to a parameterised row per
// attack kind.
type attackDef struct {
	staminaCost       fixedmath.Fixed
	windup            fixedmath.Fixed
	active            fixedmath.Fixed
	recovery          fixedmath.Fixed
	incrementsCombo   bool
	resetsCombo       bool
	grantsHyperarmor  bool
}

var attackTable map[AttackKind]attackDef

func init() {
	windup := fixedmath.FromFloat32(0.3)
	active := fixedmath.FromFloat32(0.2)
	recovery := fixedmath.FromFloat32(0.4)

	attackTable = map[AttackKind]attackDef{
		AttackLight: {
			staminaCost:     fixedmath.FromFloat32(0.15),
			windup:          windup,
			active:          active,
			recovery:        recovery,
			incrementsCombo: true,
		},
		AttackHeavy: {
			staminaCost: fixedmath.FromFloat32(0.25),
			windup:      windup,
			active:      active,
			recovery:    recovery,
			resetsCombo: true,
		},
		AttackSpecial: {
			staminaCost:      fixedmath.FromFloat32(0.40),
			windup:           windup,
			active:           active,
			recovery:         recovery,
			resetsCombo:      true,
			grantsHyperarmor: true,
		},
	}
}

var comboWindowDuration = fixedmath.One // 1.0s

// StaminaCost reports the stamina an attack of kind costs to start,
// for the read-only get_ability_stamina_cost accessor (spec.md §6).
// AttackNone costs nothing.
func StaminaCost(kind AttackKind) fixedmath.Fixed {
	return attackTable[kind].staminaCost
}
