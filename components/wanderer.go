package components

import (
	"log/slog"
	"math"

	"github.com/nhawngkun/Chirpy-Winged/config"
	"github.com/nhawngkun/Chirpy-Winged/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// WandererData drives a cake box: it idles, then glides to a random point
// inside the boundary.
type WandererData struct {
	State  config.StateID
	Timer  float64
	Paused bool

	Interval          float64
	MinDistance       float64
	MaxDistance       float64
	MoveDuration      float64
	MinTargetDistance float64
	RetryLead         float64
	RotateDuration    float64

	Start  gamemath.Vec3
	Target gamemath.Vec3

	move   *gween.Tween
	rotate *gween.Tween
	bounce *gween.Sequence

	headingFrom float64
	headingTo   float64

	// BounceOffset is the visual hop height while moving.
	BounceOffset float64
}

// NewWandererData returns an idle wanderer whose first attempt fires on the
// first update.
func NewWandererData(c config.WandererConfig) WandererData {
	return WandererData{
		State:             config.Idle,
		Timer:             c.MoveInterval,
		Interval:          c.MoveInterval,
		MinDistance:       c.MinDistance,
		MaxDistance:       c.MaxDistance,
		MoveDuration:      c.MoveDuration,
		MinTargetDistance: c.MinTargetDistance,
		RetryLead:         c.RetryLead,
		RotateDuration:    c.RotateDuration,
		bounce: gween.NewSequence(
			gween.New(0, float32(c.BounceHeight), float32(c.BounceDuration), ease.OutQuad),
			gween.New(float32(c.BounceHeight), 0, float32(c.BounceDuration), ease.InQuad),
		),
	}
}

// Update advances the wanderer by dt and returns its new position and heading.
func (w *WandererData) Update(dt float64, pos gamemath.Vec3, heading float64, b gamemath.Circle, rng Rand) (gamemath.Vec3, float64) {
	if w.Paused {
		return pos, heading
	}

	w.Timer += dt
	if w.State == config.Moving {
		return w.advance(dt, pos, heading)
	}

	if w.Timer >= w.Interval {
		w.Timer = 0
		if target, ok := w.PickTarget(pos, b, rng); ok {
			w.begin(pos, target, heading)
		}
	}
	return pos, heading
}

// PickTarget draws a candidate point and clamps it into b. A clamped target
// closer than MinTargetDistance is rejected and the timer is re-armed to
// retry early.
func (w *WandererData) PickTarget(pos gamemath.Vec3, b gamemath.Circle, rng Rand) (gamemath.Vec3, bool) {
	dist := RangeInclusive(rng, w.MinDistance, w.MaxDistance)
	angle := rng.Float64() * 2 * math.Pi

	candidate := pos.Add(gamemath.FromAngle(angle).Scale(dist))
	candidate.Y = pos.Y
	target := b.Clamp(candidate)

	if gamemath.FlatDistance(pos, target) < w.MinTargetDistance {
		w.Timer = w.Interval - w.RetryLead
		slog.Debug("wanderer target too close, retrying", "distance", gamemath.FlatDistance(pos, target))
		return pos, false
	}
	return target, true
}

func (w *WandererData) begin(pos, target gamemath.Vec3, heading float64) {
	w.State = config.Moving
	w.Start = pos
	w.Target = target
	w.move = gween.New(0, 1, float32(w.MoveDuration), ease.InOutQuad)
	w.headingFrom = heading
	w.headingTo = target.Sub(pos).Heading()
	w.rotate = gween.New(0, 1, float32(w.RotateDuration), ease.OutQuad)
	w.bounce.Reset()
}

func (w *WandererData) advance(dt float64, pos gamemath.Vec3, heading float64) (gamemath.Vec3, float64) {
	t, done := w.move.Update(float32(dt))
	pos = gamemath.Lerp(w.Start, w.Target, float64(t))
	pos.Y = w.Start.Y

	if w.rotate != nil {
		r, _ := w.rotate.Update(float32(dt))
		heading = gamemath.LerpAngle(w.headingFrom, w.headingTo, float64(r))
	}

	hop, _, loopDone := w.bounce.Update(float32(dt))
	w.BounceOffset = float64(hop)
	if loopDone {
		w.bounce.Reset()
	}

	if done {
		w.State = config.Idle
		w.BounceOffset = 0
		pos = w.Target
	}
	return pos, heading
}

// Stop halts any move in progress and suspends the wanderer.
func (w *WandererData) Stop() {
	w.Paused = true
	w.State = config.Idle
	w.move = nil
	w.BounceOffset = 0
}

// Resume re-enables the wanderer with its next attempt due immediately.
func (w *WandererData) Resume() {
	w.Paused = false
	w.Timer = w.Interval
}

// SetMoveInterval sets the idle time between moves, floored at minInterval.
func (w *WandererData) SetMoveInterval(v, minInterval float64) {
	w.Interval = math.Max(minInterval, v)
}

// SetMoveRange sets the travel distance range. lo is at least 1 and hi at
// least lo+1.
func (w *WandererData) SetMoveRange(lo, hi float64) {
	w.MinDistance = math.Max(1, lo)
	w.MaxDistance = math.Max(w.MinDistance+1, hi)
}

var Wanderer = donburi.NewComponentType[WandererData]()
