package gamemath

import "math"

// ThrowVelocity returns the launch velocity for a thrown item: the flat aim
// direction scaled by force plus an upward lift.
func ThrowVelocity(aim Vec3, force, lift float64) Vec3 {
	return aim.Flat().Normalized().Scale(force).Add(Up.Scale(lift))
}

// AimFromInput converts a stick/keys vector (x, y screen axes) into a flat
// aim direction. ok is false when the input is within the deadzone.
func AimFromInput(x, y, deadzone float64) (Vec3, float64, bool) {
	mag := math.Hypot(x, y)
	if mag <= deadzone {
		return Vec3{}, mag, false
	}
	return Vec3{X: x / mag, Z: y / mag}, mag, true
}

// PathDropPoint places the i-th of count items back along the walked segment
// start->end. The point trails pos by (i+1)*spread/count along the path; the
// height is taken from pos.
func PathDropPoint(start, end, pos Vec3, i, count int, spread float64) Vec3 {
	total := FlatDistance(start, end)
	if total == 0 || count <= 0 {
		return pos
	}
	progress := FlatDistance(start, pos) / total
	back := float64(i+1) * (spread / float64(count))
	p := Lerp(start, end, progress-back/total)
	p.Y = pos.Y
	return p
}
