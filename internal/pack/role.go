package pack

import (
	"houndfall/internal/fixedmath"
	"houndfall/internal/wolf"
)

// Role is a wolf's position within its pack (spec.md §4.7). Support is
// a pure tag outside the Distract plan (spec.md §9 open question).
type Role uint8

const (
	Scout Role = iota
	Bruiser
	Skirmisher
	Support
	Leader
)

var (
	bruiserAggressionThresh  = fixedmath.FromFloat32(0.6)
	skirmisherSpeedThresh    = fixedmath.FromFloat32(0.28)
	supportIntelligenceThresh = fixedmath.FromFloat32(0.7)
)

// assignRoles selects a leader (maximizing intelligence*morale) and
// assigns the rest by threshold, re-evaluated every call since morale
// and stats drift tick to tick.
func assignRoles(members []*wolf.Wolf) map[uint32]Role {
	roles := make(map[uint32]Role, len(members))
	if len(members) == 0 {
		return roles
	}

	leaderID := members[0].ID
	bestScore := members[0].Intelligence.Mul(members[0].Morale)
	for _, w := range members[1:] {
		score := w.Intelligence.Mul(w.Morale)
		if score.Gt(bestScore) {
			bestScore = score
			leaderID = w.ID
		}
	}

	for _, w := range members {
		if w.ID == leaderID {
			roles[w.ID] = Leader
			continue
		}
		switch {
		case w.Aggression.Gt(bruiserAggressionThresh):
			roles[w.ID] = Bruiser
		case w.Speed.Gt(skirmisherSpeedThresh):
			roles[w.ID] = Skirmisher
		case w.Intelligence.Gt(supportIntelligenceThresh):
			roles[w.ID] = Support
		default:
			roles[w.ID] = Scout
		}
	}
	return roles
}
