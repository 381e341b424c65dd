package fixedmath

import "testing"

func TestFromIntRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   int
	}{
		{"zero", 0},
		{"one", 1},
		{"negative", -5},
		{"large", 30000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FromInt(tt.in)
			if got := int(f >> shift); got != tt.in {
				t.Fatalf("FromInt(%d) round-trip = %d", tt.in, got)
			}
		})
	}
}

func TestMulDiv(t *testing.T) {
	half := FromInt(1).Div(FromInt(2))
	quarter := half.Mul(half)
	want := FromInt(1).Div(FromInt(4))
	if quarter != want {
		t.Fatalf("0.5*0.5 = %v, want %v", quarter, want)
	}
}

func TestDivByZeroSaturates(t *testing.T) {
	got := FromInt(5).Div(0)
	if got != maxFixed {
		t.Fatalf("5/0 = %v, want saturated max", got)
	}
	got = FromInt(-5).Div(0)
	if got != minFixed {
		t.Fatalf("-5/0 = %v, want saturated min", got)
	}
}

func TestSqrtExactSquares(t *testing.T) {
	for _, n := range []int{0, 1, 4, 9, 16, 100} {
		f := FromInt(n)
		got := f.Sqrt()
		want := FromInt(isqrt(n))
		diff := got.Sub(want).Abs()
		if diff > FromInt(1).Div(FromInt(100)) {
			t.Fatalf("Sqrt(%d) = %v, want ~%v", n, got, want)
		}
	}
}

func isqrt(n int) int {
	r := 0
	for r*r <= n {
		r++
	}
	return r - 1
}

func TestSqrtNegativeIsZero(t *testing.T) {
	if got := FromInt(-4).Sqrt(); got != 0 {
		t.Fatalf("Sqrt(-4) = %v, want 0", got)
	}
}

func TestClampSaturatesOverflow(t *testing.T) {
	got := Fixed(maxFixed).Add(FromInt(1))
	if got != maxFixed {
		t.Fatalf("overflow add = %v, want saturated max", got)
	}
}

func TestVec2NormalizeZeroIsZero(t *testing.T) {
	v := Vec2{}
	n := v.Normalize()
	if n != (Vec2{}) {
		t.Fatalf("Normalize(zero) = %v, want zero", n)
	}
}

func TestVec2NormalizeUnitLength(t *testing.T) {
	v := Vec2{FromInt(3), FromInt(4)}
	n := v.Normalize()
	length := n.Length()
	diff := length.Sub(One).Abs()
	if diff > FromInt(1).Div(FromInt(1000)) {
		t.Fatalf("normalized length = %v, want ~1", length)
	}
}

func BenchmarkFixedMul(b *testing.B) {
	x := FromInt(3)
	y := FromInt(7)
	for i := 0; i < b.N; i++ {
		x = x.Mul(y)
	}
}
