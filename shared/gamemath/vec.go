package gamemath

import "math"

// Vec3 is a point or direction in arena space. Y is height; X and Z span the
// ground plane.
type Vec3 struct {
	X, Y, Z float64
}

var Up = Vec3{Y: 1}

const HalfPi = math.Pi / 2

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Len() float64       { return math.Sqrt(v.Dot(v)) }

// Flat drops the height component.
func (v Vec3) Flat() Vec3 { return Vec3{X: v.X, Z: v.Z} }

// FlatLen is the length of v projected onto the ground plane.
func (v Vec3) FlatLen() float64 { return math.Hypot(v.X, v.Z) }

// Normalized returns v scaled to unit length, or the zero vector.
func (v Vec3) Normalized() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Distance returns the full 3D distance between a and b.
func Distance(a, b Vec3) float64 { return b.Sub(a).Len() }

// FlatDistance returns the ground-plane distance between a and b.
func FlatDistance(a, b Vec3) float64 { return b.Sub(a).FlatLen() }

// Lerp interpolates from a to b; t is clamped to [0, 1].
func Lerp(a, b Vec3, t float64) Vec3 {
	t = Clamp01(t)
	return a.Add(b.Sub(a).Scale(t))
}

func Clamp01(t float64) float64 {
	return Clamp(t, 0, 1)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FromAngle returns the unit ground-plane direction for an angle in radians.
func FromAngle(rad float64) Vec3 {
	return Vec3{X: math.Cos(rad), Z: math.Sin(rad)}
}

// Heading returns the ground-plane angle of v in radians.
func (v Vec3) Heading() float64 {
	return math.Atan2(v.Z, v.X)
}

// LerpAngle eases heading a toward b by t along the shortest arc.
func LerpAngle(a, b, t float64) float64 {
	d := math.Mod(b-a, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d < -math.Pi {
		d += 2 * math.Pi
	}
	return a + d*Clamp01(t)
}
