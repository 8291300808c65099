package components

import (
	"math/rand"
	"testing"

	"github.com/nhawngkun/Chirpy-Winged/config"
	"github.com/nhawngkun/Chirpy-Winged/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const step = 1.0 / 60

func newTestWanderer() WandererData {
	return NewWandererData(config.WandererConfig{
		MoveInterval:      2,
		MinInterval:       0.5,
		MinDistance:       3,
		MaxDistance:       8,
		MoveDuration:      1.5,
		MinTargetDistance: 1,
		RetryLead:         0.5,
		RotateDuration:    0.3,
		BounceHeight:      0.3,
		BounceDuration:    0.3,
	})
}

func TestWanderer_FirstUpdatePicksTarget(t *testing.T) {
	w := newTestWanderer()
	rng := &scriptedRand{floats: []float64{0}} // min distance, angle 0

	pos, _ := w.Update(step, gamemath.Vec3{}, 0, gamemath.Circle{Radius: 10}, rng)

	assert.Equal(t, config.Moving, w.State)
	assert.Equal(t, gamemath.Vec3{}, pos, "the pick tick does not move")
	assert.InDelta(t, 3, w.Target.X, 1e-9)
	assert.InDelta(t, 0, w.Target.Z, 1e-9)
}

func TestWanderer_TooCloseTargetRetriesEarly(t *testing.T) {
	w := newTestWanderer()
	rng := &scriptedRand{floats: []float64{0, 0}}
	start := gamemath.Vec3{X: 9.5}

	pos, _ := w.Update(step, start, 0, gamemath.Circle{Radius: 10}, rng)

	assert.Equal(t, config.Idle, w.State)
	assert.Equal(t, start, pos)
	assert.InDelta(t, w.Interval-w.RetryLead, w.Timer, 1e-9)

	// The next attempt re-arms the timer again; it must come RetryLead
	// seconds later, not a full interval.
	prev, fired := w.Timer, 0
	for i := 1; i <= 300; i++ {
		w.Update(step, start, 0, gamemath.Circle{Radius: 10}, rng)
		if w.Timer < prev {
			fired = i
			break
		}
		prev = w.Timer
	}
	require.NotZero(t, fired, "no retry")
	assert.InDelta(t, w.RetryLead, float64(fired)*step, 2*step)
	assert.Less(t, float64(fired)*step, w.Interval)
}

func TestWanderer_ArrivesAndIdles(t *testing.T) {
	w := newTestWanderer()
	rng := &scriptedRand{floats: []float64{0.25}} // 3 units toward +Z
	circle := gamemath.Circle{Radius: 10}

	pos, heading := gamemath.Vec3{}, 0.0
	for i := 0; i < 100; i++ {
		pos, heading = w.Update(step, pos, heading, circle, rng)
	}

	assert.Equal(t, config.Idle, w.State)
	assert.InDelta(t, 0, pos.X, 1e-6)
	assert.InDelta(t, 3, pos.Z, 1e-6)
	assert.InDelta(t, gamemath.HalfPi, heading, 1e-6)
	assert.Zero(t, w.BounceOffset)
}

func TestWanderer_TargetsStayInsideBoundary(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	circle := gamemath.Circle{Radius: 10}

	for i := 0; i < 500; i++ {
		w := newTestWanderer()
		pos := circle.Clamp(gamemath.Vec3{X: rng.Float64()*24 - 12, Z: rng.Float64()*24 - 12})
		target, ok := w.PickTarget(pos, circle, rng)
		if !ok {
			assert.InDelta(t, w.Interval-w.RetryLead, w.Timer, 1e-9)
			continue
		}
		assert.True(t, circle.Contains(target), "target %v outside", target)
		assert.GreaterOrEqual(t, gamemath.FlatDistance(pos, target), w.MinTargetDistance)
	}
}

func TestWanderer_UnclampedDistanceInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	wide := gamemath.Circle{Radius: 1000}

	for i := 0; i < 500; i++ {
		w := newTestWanderer()
		target, ok := w.PickTarget(gamemath.Vec3{}, wide, rng)
		require.True(t, ok)
		d := gamemath.FlatDistance(gamemath.Vec3{}, target)
		assert.GreaterOrEqual(t, d, 3.0)
		assert.LessOrEqual(t, d, 8.0)
	}
}

func TestWanderer_MaxDistanceIsReachable(t *testing.T) {
	w := newTestWanderer()
	wide := gamemath.Circle{Radius: 1000}
	rng := &scriptedRand{ints: []int{inclusiveSteps}}

	target, ok := w.PickTarget(gamemath.Vec3{}, wide, rng)
	require.True(t, ok)
	assert.InDelta(t, w.MaxDistance, gamemath.FlatDistance(gamemath.Vec3{}, target), 1e-9)
}

func TestRangeInclusive_Ends(t *testing.T) {
	assert.Equal(t, 3.0, RangeInclusive(&scriptedRand{ints: []int{0}}, 3, 8))
	assert.Equal(t, 8.0, RangeInclusive(&scriptedRand{ints: []int{inclusiveSteps}}, 3, 8))
	assert.Equal(t, 5.5, RangeInclusive(&scriptedRand{ints: []int{inclusiveSteps / 2}}, 3, 8))
}

func TestWanderer_StopAndResume(t *testing.T) {
	w := newTestWanderer()
	rng := &scriptedRand{floats: []float64{0, 0}}
	circle := gamemath.Circle{Radius: 10}

	w.Stop()
	pos, _ := w.Update(step, gamemath.Vec3{}, 0, circle, rng)
	assert.Equal(t, config.Idle, w.State)
	assert.Equal(t, gamemath.Vec3{}, pos)

	w.Resume()
	assert.Equal(t, w.Interval, w.Timer)
	w.Update(step, gamemath.Vec3{}, 0, circle, rng)
	assert.Equal(t, config.Moving, w.State)
}

func TestWanderer_Setters(t *testing.T) {
	w := newTestWanderer()

	w.SetMoveInterval(0.1, 0.5)
	assert.Equal(t, 0.5, w.Interval)
	w.SetMoveInterval(3, 0.5)
	assert.Equal(t, 3.0, w.Interval)

	w.SetMoveRange(0.2, 0.5)
	assert.Equal(t, 1.0, w.MinDistance)
	assert.Equal(t, 2.0, w.MaxDistance)
	w.SetMoveRange(2, 6)
	assert.Equal(t, 2.0, w.MinDistance)
	assert.Equal(t, 6.0, w.MaxDistance)
}
