package components

import (
	"math"

	"github.com/nhawngkun/Chirpy-Winged/config"
	"github.com/nhawngkun/Chirpy-Winged/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ChefData is a path walker crossing the arena from Origin to Target.
type ChefData struct {
	State  config.StateID
	Origin gamemath.Vec3
	Target gamemath.Vec3

	// HasDropped latches after the first drop roll of the trip.
	HasDropped bool
	WasInside  bool
	DropTimer  float64
}

// NewChefData returns a walker at origin heading for target. It counts as
// outside until its first sample.
func NewChefData(origin, target gamemath.Vec3) ChefData {
	return ChefData{
		State:  config.Walking,
		Origin: origin,
		Target: target,
	}
}

// Step moves pos toward the target and returns the new position and heading.
func (c *ChefData) Step(dt float64, pos gamemath.Vec3, heading float64, cfg config.ChefConfig) (gamemath.Vec3, float64) {
	next, dir := gamemath.StepToward(pos, c.Target, cfg.MoveSpeed, dt)
	if dir == (gamemath.Vec3{}) {
		return pos, heading
	}
	return next, gamemath.LerpAngle(heading, dir.Heading(), cfg.RotateSpeed*dt)
}

// Arrived reports whether pos is within reach of the target.
func (c *ChefData) Arrived(pos gamemath.Vec3, reach float64) bool {
	return gamemath.FlatDistance(pos, c.Target) <= reach
}

// SampleCrossing advances the drop check timer. It returns true only on the
// sample where the walker is first seen inside the boundary, and at most once
// per trip.
func (c *ChefData) SampleCrossing(dt, interval float64, inside bool) bool {
	c.DropTimer += dt
	if c.DropTimer < interval {
		return false
	}
	c.DropTimer = 0

	entered := inside && !c.WasInside && !c.HasDropped
	if entered {
		c.HasDropped = true
	}
	c.WasInside = inside
	return entered
}

// RollDrop returns the number of items to drop, or zero when the roll fails.
func RollDrop(rng Rand, cfg config.ChefConfig) int {
	if rng.Float64() > cfg.DropChance {
		return 0
	}
	return cfg.MinDrop + rng.Intn(cfg.MaxDrop-cfg.MinDrop+1)
}

// DropPoints computes where count items land around a walker at pos. Every
// point is clamped into b; if it is still invalid it falls back to pos.
func (c *ChefData) DropPoints(pos gamemath.Vec3, count int, b gamemath.Circle, rng Rand, cfg config.ChefConfig) []gamemath.Vec3 {
	lift := gamemath.Vec3{Y: cfg.DropHeight}
	points := make([]gamemath.Vec3, 0, count)
	for i := 0; i < count; i++ {
		var p gamemath.Vec3
		if cfg.DropOnPath {
			p = gamemath.PathDropPoint(c.Origin, c.Target, pos, i, count, cfg.DropSpreadRadius)
			p = p.Add(insideUnitCircle(rng).Scale(cfg.PathJitter))
		} else {
			p = pos.Add(insideUnitCircle(rng).Scale(cfg.DropSpreadRadius))
		}
		p = b.Clamp(p.Add(lift))
		if !b.Contains(p) {
			p = pos.Add(lift)
		}
		points = append(points, p)
	}
	return points
}

// insideUnitCircle returns a uniform point in the unit disk on the ground plane.
func insideUnitCircle(rng Rand) gamemath.Vec3 {
	r := math.Sqrt(rng.Float64())
	a := rng.Float64() * 2 * math.Pi
	return gamemath.FromAngle(a).Scale(r)
}

var Chef = donburi.NewComponentType[ChefData]()
