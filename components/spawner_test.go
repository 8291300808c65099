package components

import (
	"math/rand"
	"testing"

	"github.com/nhawngkun/Chirpy-Winged/assets"
	"github.com/nhawngkun/Chirpy-Winged/config"
	"github.com/nhawngkun/Chirpy-Winged/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSpawner() SpawnerData {
	s := NewSpawnerData(config.SpawnerConfig{
		InitialInterval:    3,
		MinInterval:        0.5,
		IntervalDecrease:   0.1,
		InitialMaxEntities: 2,
		MaxMaxEntities:     10,
		RampInterval:       10,
	})
	s.Enabled = true
	return s
}

func TestSpawner_DisabledNeverSpawns(t *testing.T) {
	s := newTestSpawner()
	s.Enabled = false

	for i := 0; i < 600; i++ {
		require.False(t, s.Tick(step))
	}
	assert.Equal(t, 2, s.Cap, "ramp is frozen while disabled")
}

func TestSpawner_FirstSpawnIsImmediate(t *testing.T) {
	s := newTestSpawner()

	assert.True(t, s.Tick(step))
	s.OnSpawned()
	assert.Equal(t, 1, s.Active)
	assert.InDelta(t, 2.9, s.Interval, 1e-9)
	assert.False(t, s.Tick(step))
}

func TestSpawner_IntervalFloorsAtMinimum(t *testing.T) {
	s := newTestSpawner()

	for i := 0; i < 26; i++ {
		s.OnSpawned()
	}
	assert.InDelta(t, 0.5, s.Interval, 1e-9)
}

func TestSpawner_RespectsCap(t *testing.T) {
	s := newTestSpawner()
	s.Active = s.Cap
	s.SpawnTimer = 100

	assert.False(t, s.Tick(step))

	s.OnDespawned()
	assert.True(t, s.Tick(step))
}

func TestSpawner_RampRaisesCapToCeiling(t *testing.T) {
	s := newTestSpawner()
	s.Active = 100 // keep spawns out of the way

	for i := 0; i < 3; i++ {
		s.Tick(10)
	}
	assert.Equal(t, 5, s.Cap)

	for i := 0; i < 20; i++ {
		s.Tick(10)
	}
	assert.Equal(t, 10, s.Cap)
}

func TestSpawner_OnDespawnedFloorsAtZero(t *testing.T) {
	s := newTestSpawner()
	s.OnDespawned()
	assert.Zero(t, s.Active)
}

func TestSpawner_ResetAndSetDifficulty(t *testing.T) {
	s := newTestSpawner()
	s.Active = 3
	s.Cap = 7
	s.Interval = 1
	s.DifficultyTimer = 4

	s.ResetDifficulty()
	assert.Equal(t, 3.0, s.Interval)
	assert.Equal(t, 2, s.Cap)
	assert.Zero(t, s.DifficultyTimer)
	assert.Equal(t, 3, s.Active, "live walkers are untouched")

	s.SetDifficulty(0.1, 50)
	assert.Equal(t, 0.5, s.Interval)
	assert.Equal(t, 10, s.Cap)

	s.SetDifficulty(2, 0)
	assert.Equal(t, 2.0, s.Interval)
	assert.Equal(t, 1, s.Cap)
}

func TestSpawner_Invariants(t *testing.T) {
	s := newTestSpawner()
	rng := rand.New(rand.NewSource(42))

	prevInterval, prevCap := s.Interval, s.Cap
	for i := 0; i < 60*120; i++ {
		if s.Tick(step) {
			s.OnSpawned()
		}
		if rng.Float64() < 0.01 {
			s.OnDespawned()
		}

		require.LessOrEqual(t, s.Interval, prevInterval)
		require.GreaterOrEqual(t, s.Interval, s.MinInterval)
		require.GreaterOrEqual(t, s.Cap, prevCap)
		require.LessOrEqual(t, s.Cap, s.MaxMax)
		require.GreaterOrEqual(t, s.Active, 0)
		prevInterval, prevCap = s.Interval, s.Cap
	}
}

func TestPickRoute_BidirectionalSplit(t *testing.T) {
	a, b := gamemath.Vec3{X: -20}, gamemath.Vec3{X: 20}
	routes := []assets.Route{{Name: "west_east", Start: a, End: b, Bidirectional: true}}
	rng := rand.New(rand.NewSource(9))

	reversed := 0
	const n = 10000
	for i := 0; i < n; i++ {
		origin, target, name := PickRoute(routes, rng)
		assert.Equal(t, "west_east", name)
		if origin == b {
			assert.Equal(t, a, target)
			reversed++
		}
	}
	assert.InDelta(t, 0.5, float64(reversed)/n, 0.03)
}

func TestPickRoute_OneWayKeepsDirection(t *testing.T) {
	a, b := gamemath.Vec3{X: -20}, gamemath.Vec3{Z: 20}
	routes := []assets.Route{{Name: "diagonal", Start: a, End: b}}
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		origin, target, _ := PickRoute(routes, rng)
		assert.Equal(t, a, origin)
		assert.Equal(t, b, target)
	}
}
