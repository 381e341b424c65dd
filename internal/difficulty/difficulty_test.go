package difficulty

import (
	"testing"

	"houndfall/internal/fixedmath"
)

type fakeWolf struct {
	speedScale, aggression, decisionInterval fixedmath.Fixed
	applied                                  bool
}

func (w *fakeWolf) ApplyDifficulty(speedScale, aggression, decisionInterval fixedmath.Fixed) {
	w.speedScale = speedScale
	w.aggression = aggression
	w.decisionInterval = decisionInterval
	w.applied = true
}

func f(v float32) fixedmath.Fixed { return fixedmath.FromFloat32(v) }

func TestDefaultSkillBeforeAnyAttacks(t *testing.T) {
	a := New()
	got := estimateSkill(&Tracker{})
	if got != f(0.5) {
		t.Fatalf("expected default skill 0.5, got %v", got)
	}
	_ = a
}

func TestUpdateWaitsForFullPeriod(t *testing.T) {
	a := New()
	w := &fakeWolf{}
	ran := a.Update(f(5.0), &Tracker{}, []Wolf{w})
	if ran {
		t.Fatalf("expected no update before 10s elapsed")
	}
	if w.applied {
		t.Fatalf("expected wolf untouched before update period elapses")
	}
}

func TestUpdateAppliesScalingAfterPeriod(t *testing.T) {
	a := New()
	w := &fakeWolf{}
	tracker := &Tracker{}
	tracker.RecordDodge(true)
	tracker.RecordDodge(true)
	tracker.RecordBlock(false)

	ran := a.Update(f(10.0), tracker, []Wolf{w})
	if !ran {
		t.Fatalf("expected update to run at exactly 10s")
	}
	if !w.applied {
		t.Fatalf("expected wolf to receive ApplyDifficulty")
	}
	// skill = 0.4*1.0 + 0.3*0.0 + 0.3*1.0 = 0.7
	wantSkill := f(0.7)
	if a.Skill != wantSkill {
		t.Fatalf("expected skill %v, got %v", wantSkill, a.Skill)
	}
	wantSpeedScale := f(0.85).Add(f(0.3).Mul(wantSkill))
	if w.speedScale != wantSpeedScale {
		t.Fatalf("expected speed scale %v, got %v", wantSpeedScale, w.speedScale)
	}
}

func TestDecisionIntervalClampsAtMinimum(t *testing.T) {
	a := New()
	w := &fakeWolf{}
	tracker := &Tracker{}
	tracker.RecordDodge(true)
	tracker.RecordBlock(true)
	tracker.RecordKill(f(0.5))

	a.Update(f(10.0), tracker, []Wolf{w})
	if w.decisionInterval.Lt(f(0.09)) {
		t.Fatalf("expected decision interval floor of 0.09, got %v", w.decisionInterval)
	}
}
