package gamemath

// Circle is a disk on the ground plane. Height is ignored by every query.
type Circle struct {
	Center Vec3
	Radius float64
}

// rimTolerance absorbs rounding so a clamped point always reads as inside.
const rimTolerance = 1e-9

// Contains reports whether p lies within the disk, edge included.
func (c Circle) Contains(p Vec3) bool {
	return FlatDistance(c.Center, p) <= c.Radius+rimTolerance
}

// Clamp returns p unchanged when it is inside. Otherwise p is projected
// radially onto the rim, keeping its height and its direction from the center.
func (c Circle) Clamp(p Vec3) Vec3 {
	offset := p.Sub(c.Center).Flat()
	dist := offset.FlatLen()
	if dist <= c.Radius {
		return p
	}
	rim := c.Center.Add(offset.Scale(c.Radius / dist))
	rim.Y = p.Y
	return rim
}

// PushBack moves an out-of-bounds pos toward its clamped point and removes the
// outward radial part of vel. With smooth unset the position snaps.
func (c Circle) PushBack(pos, vel Vec3, strength, dt float64, smooth bool) (Vec3, Vec3) {
	if c.Contains(pos) {
		return pos, vel
	}
	target := c.Clamp(pos)
	if smooth {
		pos = Lerp(pos, target, strength*dt)
	} else {
		pos = target
	}

	outward := pos.Sub(c.Center).Flat().Normalized()
	if radial := vel.Dot(outward); radial > 0 {
		vel = vel.Sub(outward.Scale(radial))
	}
	return pos, vel
}

// Overlaps reports whether two ground-plane circles touch.
func Overlaps(a Vec3, ra float64, b Vec3, rb float64) bool {
	return FlatDistance(a, b) <= ra+rb
}
