// Package difficulty implements AdaptiveDifficulty (spec.md §4.8): a
// run-long estimate of player skill, recomputed every 10 simulated
// seconds and applied uniformly to every live wolf's speed,
// aggression, and AI decision cadence.
package difficulty

import "houndfall/internal/fixedmath"

var updatePeriod = fixedmath.FromFloat32(10.0)
var defaultSkill = fixedmath.FromFloat32(0.5)

// Tracker accumulates the run-long counters player_skill is estimated
// from. The Coordinator increments these as intents resolve; this
// package only reads them.
type Tracker struct {
	DodgeAttempts  int
	DodgeSuccesses int
	BlockAttempts  int
	BlockSuccesses int
	KillCount      int
	KillTimeSum    fixedmath.Fixed
}

// RecordDodge counts one roll attempt against an incoming attack.
func (t *Tracker) RecordDodge(success bool) {
	t.DodgeAttempts++
	if success {
		t.DodgeSuccesses++
	}
}

// RecordBlock counts one block attempt against an incoming attack.
func (t *Tracker) RecordBlock(success bool) {
	t.BlockAttempts++
	if success {
		t.BlockSuccesses++
	}
}

// RecordKill adds one wolf kill and the simulated time (since the
// previous kill, or since run start for the first) it took.
func (t *Tracker) RecordKill(timeSinceLastKill fixedmath.Fixed) {
	t.KillCount++
	t.KillTimeSum = t.KillTimeSum.Add(timeSinceLastKill)
}

func (t *Tracker) dodgeRate() fixedmath.Fixed {
	if t.DodgeAttempts == 0 {
		return fixedmath.Zero
	}
	return fixedmath.FromInt(t.DodgeSuccesses).Div(fixedmath.FromInt(t.DodgeAttempts))
}

func (t *Tracker) blockRate() fixedmath.Fixed {
	if t.BlockAttempts == 0 {
		return fixedmath.Zero
	}
	return fixedmath.FromInt(t.BlockSuccesses).Div(fixedmath.FromInt(t.BlockAttempts))
}

func (t *Tracker) avgKillTime() fixedmath.Fixed {
	if t.KillCount == 0 {
		return fixedmath.One
	}
	return t.KillTimeSum.Div(fixedmath.FromInt(t.KillCount))
}

// Wolf is the narrow sibling interface AdaptiveDifficulty scales
// through, satisfied by *wolf.Wolf (spec.md §9: components refer to
// siblings by narrow interface, not concrete type).
type Wolf interface {
	ApplyDifficulty(speedScale, aggression, decisionInterval fixedmath.Fixed)
}

// AdaptiveDifficulty holds the 10s re-evaluation timer and the current
// skill estimate, defaulting to 0.5 before any attack has resolved.
type AdaptiveDifficulty struct {
	Timer fixedmath.Fixed
	Skill fixedmath.Fixed
}

// New returns an AdaptiveDifficulty primed to run its first estimate
// after one full update period.
func New() *AdaptiveDifficulty {
	return &AdaptiveDifficulty{Timer: updatePeriod, Skill: defaultSkill}
}

// Reset restores initial state, for init_run.
func (a *AdaptiveDifficulty) Reset() {
	a.Timer = updatePeriod
	a.Skill = defaultSkill
}

// Update advances the timer by dt and, once it elapses, recomputes
// skill from t and applies the resulting speed/aggression/decision
// scaling to every wolf in wolves (spec.md §4.10 step 9: "maybe run
// AdaptiveDifficulty"). Returns true if an update ran this tick.
func (a *AdaptiveDifficulty) Update(dt fixedmath.Fixed, t *Tracker, wolves []Wolf) bool {
	a.Timer = a.Timer.Sub(dt)
	if a.Timer.Gt(fixedmath.Zero) {
		return false
	}
	a.Timer = a.Timer.Add(updatePeriod)

	a.Skill = estimateSkill(t)
	speedScale := fixedmath.FromFloat32(0.85).Add(fixedmath.FromFloat32(0.3).Mul(a.Skill))
	aggression := fixedmath.FromFloat32(0.3).Add(fixedmath.FromFloat32(0.55).Mul(a.Skill))
	decisionInterval := fixedmath.Max(
		fixedmath.FromFloat32(0.09),
		fixedmath.FromFloat32(0.22).Sub(fixedmath.FromFloat32(0.13).Mul(a.Skill)),
	)

	for _, w := range wolves {
		w.ApplyDifficulty(speedScale, aggression, decisionInterval)
	}
	return true
}

func estimateSkill(t *Tracker) fixedmath.Fixed {
	if t.DodgeAttempts == 0 && t.BlockAttempts == 0 && t.KillCount == 0 {
		return defaultSkill
	}
	killTimeTerm := fixedmath.One.Div(fixedmath.Max(fixedmath.One, t.avgKillTime()))
	skill := fixedmath.FromFloat32(0.4).Mul(t.dodgeRate()).
		Add(fixedmath.FromFloat32(0.3).Mul(t.blockRate())).
		Add(fixedmath.FromFloat32(0.3).Mul(killTimeTerm))
	return skill.Clamp(fixedmath.Zero, fixedmath.One)
}
