package input

import (
	"math"
	"testing"

	"houndfall/internal/fixedmath"
)

func TestClampAxisToUnitRange(t *testing.T) {
	f := Sanitize(RawFrame{MoveX: 5.0}, false)
	if f.MoveX != fixedmath.One {
		t.Fatalf("expected MoveX clamped to 1, got %v", f.MoveX)
	}
	f = Sanitize(RawFrame{MoveY: -5.0}, false)
	if f.MoveY != fixedmath.One.Neg() {
		t.Fatalf("expected MoveY clamped to -1, got %v", f.MoveY)
	}
}

func TestNonFiniteRejectedAsZero(t *testing.T) {
	f := Sanitize(RawFrame{MoveX: float32(math.NaN()), MoveY: float32(math.Inf(1))}, false)
	if f.MoveX != fixedmath.Zero || f.MoveY != fixedmath.Zero {
		t.Fatalf("expected non-finite input sanitized to zero, got (%v, %v)", f.MoveX, f.MoveY)
	}
}

func TestDiagonalMovementNormalized(t *testing.T) {
	f := Sanitize(RawFrame{MoveX: 1.0, MoveY: 1.0}, false)
	lenSq := f.MoveX.Mul(f.MoveX).Add(f.MoveY.Mul(f.MoveY))
	if lenSq.Gt(fixedmath.One.Add(fixedmath.FromFloat32(0.01))) {
		t.Fatalf("expected diagonal input normalized to unit length, got lenSq=%v", lenSq)
	}
}

func TestSmallVectorNotAmplified(t *testing.T) {
	f := Sanitize(RawFrame{MoveX: 0.2, MoveY: 0.0}, false)
	if f.MoveX != fixedmath.FromFloat32(0.2) {
		t.Fatalf("expected small vector preserved exactly, got %v", f.MoveX)
	}
}

func TestStunnedZeroesEverything(t *testing.T) {
	f := Sanitize(RawFrame{MoveX: 1.0, Light: true, Blocking: true}, true)
	if f != (Frame{}) {
		t.Fatalf("expected stunned frame to be entirely zeroed, got %+v", f)
	}
}
