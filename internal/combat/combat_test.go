package combat

import (
	"testing"

	"houndfall/internal/fixedmath"
)

type fakeStamina struct{ s fixedmath.Fixed }

func (f *fakeStamina) HasStamina(cost fixedmath.Fixed) bool { return f.s.Gte(cost) }
func (f *fakeStamina) SpendStamina(cost fixedmath.Fixed)    { f.s = f.s.Sub(cost) }

func dt60() fixedmath.Fixed { return fixedmath.One.Div(fixedmath.FromInt(60)) }

func TestLightAttackRejectedDuringWindup(t *testing.T) {
	c := New()
	st := &fakeStamina{s: fixedmath.One}
	if !c.TryLightAttack(st) {
		t.Fatalf("expected first light attack to succeed")
	}
	if c.TryLightAttack(st) {
		t.Fatalf("expected second light attack during Windup to be rejected")
	}
}

func TestLightAttackIncrementsComboAfterActivePhase(t *testing.T) {
	c := New()
	st := &fakeStamina{s: fixedmath.One}
	c.TryLightAttack(st)

	def := attackTable[AttackLight]
	totalTicks := def.windup.Add(def.active).Div(dt60())
	ticks := int(totalTicks.ToFloat32()) + 2
	for i := 0; i < ticks; i++ {
		c.UpdateTimers(dt60())
	}

	if c.ComboCount != 1 {
		t.Fatalf("expected combo count 1 after active phase completes, got %d", c.ComboCount)
	}
	if c.ComboWindow.Lte(fixedmath.Zero) {
		t.Fatalf("expected a live combo window, got %v", c.ComboWindow)
	}
}

func TestFeintCancelsWindupOnly(t *testing.T) {
	c := New()
	st := &fakeStamina{s: fixedmath.One}
	c.TryLightAttack(st)
	if !c.FeintAttack() {
		t.Fatalf("expected feint to succeed during Windup")
	}
	if c.Phase != PhaseIdle {
		t.Fatalf("expected Idle after feint, got %v", c.Phase)
	}
	if c.FeintAttack() {
		t.Fatalf("expected feint outside Windup to fail")
	}
}

func TestHandleIncomingAttackPriority(t *testing.T) {
	c := New()
	if c.HandleIncomingAttack() != Hit {
		t.Fatalf("expected Hit with no defenses up")
	}

	c.Roll = RollActive
	if c.HandleIncomingAttack() != Miss {
		t.Fatalf("expected Miss while rolling")
	}
	c.Roll = RollIdle

	c.TryBlock()
	if c.HandleIncomingAttack() != PerfectParry {
		t.Fatalf("expected PerfectParry within parry window")
	}
	if c.CounterWindow.Lte(fixedmath.Zero) {
		t.Fatalf("expected counter window armed after parry")
	}

	c.BlockElapsed = parryWindow.Add(fixedmath.One)
	if c.HandleIncomingAttack() != Block {
		t.Fatalf("expected Block outside parry window")
	}
}

func TestRollGrantsInvulnerableDuringActiveOnly(t *testing.T) {
	c := New()
	st := &fakeStamina{s: fixedmath.One}
	if !c.TryRoll(st) {
		t.Fatalf("expected roll to start")
	}
	if !c.Invulnerable() {
		t.Fatalf("expected invulnerable during roll Active")
	}
	for i := 0; i < 200; i++ {
		c.UpdateTimers(dt60())
	}
	if c.Invulnerable() {
		t.Fatalf("expected invulnerability to lapse after roll ends")
	}
}

func TestStunClearsAfterDuration(t *testing.T) {
	c := New()
	c.Stun(fixedmath.FromFloat32(0.1))
	if !c.Stunned {
		t.Fatalf("expected stunned immediately")
	}
	for i := 0; i < 10; i++ {
		c.UpdateTimers(dt60())
	}
	if c.Stunned {
		t.Fatalf("expected stun to clear after duration")
	}
}
