package gamemath

import "math"

// ApplyGravity integrates vertical velocity and position for one step. The
// ground plane is at height zero; grounded is true once the body rests on it.
func ApplyGravity(pos, vel Vec3, gravity, dt float64) (Vec3, Vec3, bool) {
	vel.Y -= gravity * dt
	pos = pos.Add(vel.Scale(dt))
	if pos.Y <= 0 {
		pos.Y = 0
		vel = Vec3{}
		return pos, vel, true
	}
	return pos, vel, false
}

// CancelAlong removes the part of vel that points along dir, if any.
func CancelAlong(vel, dir Vec3) Vec3 {
	dir = dir.Normalized()
	if d := vel.Dot(dir); d > 0 {
		return vel.Sub(dir.Scale(d))
	}
	return vel
}

// StepToward advances pos toward target on the ground plane by speed*dt and
// returns the new position with the unit direction of travel.
func StepToward(pos, target Vec3, speed, dt float64) (Vec3, Vec3) {
	dir := target.Sub(pos).Flat().Normalized()
	return pos.Add(dir.Scale(speed * dt)), dir
}

// Bob is a sine hover offset at time t.
func Bob(t, height, speed float64) float64 {
	return math.Sin(t*speed) * height
}
