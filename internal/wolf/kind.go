// Package wolf implements WolfSim (spec.md §4.6): per-wolf AI state
// machine, emotion modulation, memory, spatial awareness, and the
// animation signals exported to a renderer. Structural shape (small
// struct + free functions + tick-driven Update) follows fight-club-go's
// internal/game package; the wolf-kind stat table generalizes
// weapons.go's data-table-of-structs pattern (see DESIGN.md).
package wolf

import "houndfall/internal/fixedmath"

// Kind selects a base stat row. Alpha/Scout/Hunter have
// type-preferred transitions (spec.md §4.6); Grunt falls through to
// the generic default transitions only.
type Kind uint8

const (
	Grunt Kind = iota
	Alpha
	Scout
	Hunter
)

// BaseStats is one row of the wolf-kind table: the values `base_*`
// reset targets in the emotion system restore after a change (spec.md
// §4.6 "reset to base_* then apply once").
type BaseStats struct {
	MaxHP         fixedmath.Fixed
	Speed         fixedmath.Fixed
	AttackRange   fixedmath.Fixed
	AttackCooldown fixedmath.Fixed
	Damage        fixedmath.Fixed
	Detection     fixedmath.Fixed
	Aggression    fixedmath.Fixed
	Intelligence  fixedmath.Fixed
}

var kindTable map[Kind]BaseStats

func init() {
	f := fixedmath.FromFloat32
	kindTable = map[Kind]BaseStats{
		Grunt: {
			MaxHP: f(1.0), Speed: f(0.22), AttackRange: f(0.08), AttackCooldown: f(1.2),
			Damage: f(0.08), Detection: f(0.35), Aggression: f(0.4), Intelligence: f(0.3),
		},
		Alpha: {
			MaxHP: f(1.6), Speed: f(0.25), AttackRange: f(0.09), AttackCooldown: f(1.0),
			Damage: f(0.14), Detection: f(0.45), Aggression: f(0.6), Intelligence: f(0.5),
		},
		Scout: {
			MaxHP: f(0.7), Speed: f(0.30), AttackRange: f(0.07), AttackCooldown: f(1.4),
			Damage: f(0.06), Detection: f(0.55), Aggression: f(0.35), Intelligence: f(0.45),
		},
		Hunter: {
			MaxHP: f(1.1), Speed: f(0.28), AttackRange: f(0.085), AttackCooldown: f(1.1),
			Damage: f(0.10), Detection: f(0.40), Aggression: f(0.5), Intelligence: f(0.4),
		},
	}
}

// Stats returns the base row for kind, defaulting to Grunt for unknown
// values.
func Stats(k Kind) BaseStats {
	if s, ok := kindTable[k]; ok {
		return s
	}
	return kindTable[Grunt]
}

const (
	// Global tuning shared by the whole pack (spec.md §4.6, §4.7).
	MaxConcurrentAttackers = 2
	attackFacingCosThresh  = 0.5 // cos(60deg); SPEC_FULL.md §E resolution
	separationDistance     = 0.1
	separationStrength     = 0.8
)
