package fixedmath

// Vec2 is a two-component Fixed vector: position, velocity, and facing
// all live in the xy-plane (spec.md §3 reserves z, currently always 0).
type Vec2 struct {
	X, Y Fixed
}

// Vec3 is the three-component form required by the data model for
// forward compatibility; Z is always Zero in this implementation.
type Vec3 struct {
	X, Y, Z Fixed
}

// ZeroVec2 is the additive identity.
var ZeroVec2 = Vec2{}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X.Add(o.X), v.Y.Add(o.Y)} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X.Sub(o.X), v.Y.Sub(o.Y)} }
func (v Vec2) Scale(s Fixed) Vec2 {
	return Vec2{v.X.Mul(s), v.Y.Mul(s)}
}

// Dot returns the dot product.
func (v Vec2) Dot(o Vec2) Fixed {
	return v.X.Mul(o.X).Add(v.Y.Mul(o.Y))
}

// LengthSq returns the squared length, avoiding a Sqrt call.
func (v Vec2) LengthSq() Fixed {
	return v.Dot(v)
}

// Length returns the Euclidean length.
func (v Vec2) Length() Fixed {
	return v.LengthSq().Sqrt()
}

// Normalize returns a unit vector in the direction of v, or the zero
// vector if v has zero length (spec.md §4.1: "no NaN").
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length == 0 {
		return ZeroVec2
	}
	return Vec2{v.X.Div(length), v.Y.Div(length)}
}

// Clamp restricts both components independently to [lo, hi].
func (v Vec2) Clamp(lo, hi Fixed) Vec2 {
	return Vec2{v.X.Clamp(lo, hi), v.Y.Clamp(lo, hi)}
}

// Perp returns the vector rotated 90 degrees counter-clockwise.
func (v Vec2) Perp() Vec2 {
	return Vec2{v.Y.Neg(), v.X}
}

// To3 lifts a Vec2 into Vec3 with Z reserved at zero.
func (v Vec2) To3() Vec3 {
	return Vec3{v.X, v.Y, 0}
}

// V2 is a terse constructor used throughout the core to keep tables
// readable: V2(FromInt(0), FromInt(1)) reads as a unit vector literal.
func V2(x, y Fixed) Vec2 { return Vec2{x, y} }
