package components

import (
	"math"

	"github.com/nhawngkun/Chirpy-Winged/assets"
	"github.com/nhawngkun/Chirpy-Winged/config"
	"github.com/nhawngkun/Chirpy-Winged/shared/gamemath"
	"github.com/yohamta/donburi"
)

// SpawnerData is the chef spawner with its difficulty ramp.
type SpawnerData struct {
	Enabled bool

	InitialInterval  float64
	MinInterval      float64
	IntervalDecrease float64
	InitialMax       int
	MaxMax           int
	RampInterval     float64

	Interval        float64
	Cap             int
	Active          int
	SpawnTimer      float64
	DifficultyTimer float64
}

// NewSpawnerData returns a disabled spawner whose first spawn is due as soon
// as it is enabled.
func NewSpawnerData(c config.SpawnerConfig) SpawnerData {
	return SpawnerData{
		InitialInterval:  c.InitialInterval,
		MinInterval:      c.MinInterval,
		IntervalDecrease: c.IntervalDecrease,
		InitialMax:       c.InitialMaxEntities,
		MaxMax:           c.MaxMaxEntities,
		RampInterval:     c.RampInterval,
		Interval:         c.InitialInterval,
		Cap:              c.InitialMaxEntities,
		SpawnTimer:       c.InitialInterval,
	}
}

// Tick advances the ramp and spawn timers and reports whether one entity
// should be spawned now.
func (s *SpawnerData) Tick(dt float64) bool {
	if !s.Enabled {
		return false
	}

	s.DifficultyTimer += dt
	if s.DifficultyTimer >= s.RampInterval {
		s.DifficultyTimer = 0
		if s.Cap < s.MaxMax {
			s.Cap++
		}
	}

	s.SpawnTimer += dt
	if s.SpawnTimer >= s.Interval && s.Active < s.Cap {
		s.SpawnTimer = 0
		return true
	}
	return false
}

// OnSpawned records a successful spawn and shortens the interval.
func (s *SpawnerData) OnSpawned() {
	s.Active++
	s.Interval = math.Max(s.MinInterval, s.Interval-s.IntervalDecrease)
}

// OnDespawned records that a spawned entity is gone.
func (s *SpawnerData) OnDespawned() {
	if s.Active > 0 {
		s.Active--
	}
}

// ResetDifficulty restores the initial interval and cap. Live entities are
// left alone.
func (s *SpawnerData) ResetDifficulty() {
	s.Interval = s.InitialInterval
	s.Cap = s.InitialMax
	s.DifficultyTimer = 0
}

// SetDifficulty overrides the interval (floored at the minimum) and the cap
// (clamped to [1, MaxMax]).
func (s *SpawnerData) SetDifficulty(interval float64, maxEntities int) {
	s.Interval = math.Max(s.MinInterval, interval)
	s.Cap = max(1, min(maxEntities, s.MaxMax))
}

// PickRoute selects a route uniformly and, for bidirectional routes, flips a
// fair coin for the direction of travel.
func PickRoute(routes []assets.Route, rng Rand) (origin, target gamemath.Vec3, name string) {
	r := routes[rng.Intn(len(routes))]
	if r.Bidirectional && rng.Float64() > 0.5 {
		return r.End, r.Start, r.Name
	}
	return r.Start, r.End, r.Name
}

var Spawner = donburi.NewComponentType[SpawnerData]()
