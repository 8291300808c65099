package systems

import (
	"testing"

	"github.com/nhawngkun/Chirpy-Winged/assets"
	"github.com/nhawngkun/Chirpy-Winged/components"
	cfg "github.com/nhawngkun/Chirpy-Winged/config"
	"github.com/nhawngkun/Chirpy-Winged/shared/gamemath"
	"github.com/nhawngkun/Chirpy-Winged/systems/factory"
	"github.com/nhawngkun/Chirpy-Winged/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

func newTestWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	SetStore(nil)

	w := ecs.NewECS(donburi.NewWorld())
	layout := assets.MustLoadArena(cfg.Arena.MapPath, cfg.Arena.PixelsPerUnit)
	require.NoError(t, SetupWorld(w, layout, 1, 0))
	AddGameplaySystems(w)
	return w
}

func tick(w *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		w.Update()
	}
}

func count(w *ecs.ECS, tag donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(tag)).Count(w.World)
}

func player(w *ecs.ECS) *donburi.Entry {
	return tags.Player.MustFirst(w.World)
}

func TestSetupWorld_StartsOnHome(t *testing.T) {
	w := newTestWorld(t)

	state, score, best := SessionSummary(w.World)
	assert.Equal(t, cfg.SessionHome, state)
	assert.Zero(t, score)
	assert.Zero(t, best)
	assert.Equal(t, 1, count(w, tags.Player))
	assert.Equal(t, 2, count(w, tags.CakeBox))

	tick(w, 120)
	assert.Zero(t, count(w, tags.Chef), "nothing spawns before a round starts")
}

func TestSetupWorld_BoundaryFromMap(t *testing.T) {
	w := newTestWorld(t)

	boundary, err := factory.GetBoundary(w.World)
	require.NoError(t, err)
	assert.InDelta(t, 10, boundary.Radius, 1e-9)
}

func TestSetupWorld_BoundaryRadiusOverride(t *testing.T) {
	saved := cfg.Boundary
	t.Cleanup(func() { cfg.Boundary = saved })
	require.NoError(t, cfg.ApplyOverrides([]byte("boundary:\n  radius: 14\n")))

	w := newTestWorld(t)
	boundary, err := factory.GetBoundary(w.World)
	require.NoError(t, err)
	assert.Equal(t, 14.0, boundary.Radius)
	assert.True(t, boundary.IsValid(gamemath.Vec3{X: 12}))
}

func TestSetupWorld_NeedsRoutes(t *testing.T) {
	w := ecs.NewECS(donburi.NewWorld())
	layout := *assets.MustLoadArena(cfg.Arena.MapPath, cfg.Arena.PixelsPerUnit)
	layout.Routes = nil

	err := SetupWorld(w, &layout, 1, 0)
	assert.ErrorIs(t, err, assets.ErrNoRoutes)
}

func TestSpawner_FirstChefOnFirstTick(t *testing.T) {
	w := newTestWorld(t)
	StartSession(w)

	tick(w, 1)
	assert.Equal(t, 1, count(w, tags.Chef))
	stats := GetSpawnerStats(w.World)
	assert.Equal(t, 1, stats.Active)
	assert.InDelta(t, 2.9, stats.Interval, 1e-9)
}

func TestSpawner_DespawnFreesSlot(t *testing.T) {
	w := newTestWorld(t)
	StartSession(w)
	tick(w, 1)

	chef := tags.Chef.MustFirst(w.World)
	DestroyChef(w, chef)
	assert.Equal(t, cfg.Destroyed, components.Chef.Get(chef).State)

	tick(w, 30)
	assert.Zero(t, count(w, tags.Chef))
	assert.Zero(t, GetSpawnerStats(w.World).Active)
}

func TestPickup_ThrowOnRelease(t *testing.T) {
	w := newTestWorld(t)
	StartSession(w)
	carrier := components.Carrier.Get(player(w))
	carrier.Pickup()

	SetAxes(w, 0, 0, 1, 0)
	tick(w, 1)
	assert.True(t, carrier.Holding)
	assert.Zero(t, count(w, tags.ThrownCake))

	SetAxes(w, 0, 0, 0, 0)
	tick(w, 1)
	assert.False(t, carrier.Holding)
	assert.Equal(t, 1, count(w, tags.ThrownCake))
	assert.Equal(t, gamemath.Vec3{X: 1}, carrier.Aim)
}

func TestPickup_CollectsNearbyCake(t *testing.T) {
	w := newTestWorld(t)
	StartSession(w)
	pos := components.Transform.Get(player(w)).Position
	factory.CreateCake(w, pos.Add(gamemath.Vec3{X: 1}))

	UpdatePickup(w)
	assert.True(t, components.Carrier.Get(player(w)).Holding)
	assert.Zero(t, count(w, tags.Cake))
}

func TestContacts_ThrownCakeDestroysChef(t *testing.T) {
	w := newTestWorld(t)
	at := gamemath.Vec3{X: 2, Z: -2}
	chef, err := factory.CreateChef(w, at, gamemath.Vec3{X: 20, Z: -2})
	require.NoError(t, err)
	cake := factory.CreateThrownCake(w, at.Add(gamemath.Vec3{Y: 1}), gamemath.Vec3{})

	UpdateContacts(w)
	assert.Equal(t, cfg.Destroyed, components.Chef.Get(chef).State)
	assert.True(t, components.ThrownCake.Get(cake).Spent)
	assert.Zero(t, Score(w.World), "hitting a chef does not score")

	tick(w, 30)
	assert.Zero(t, count(w, tags.Chef))
	assert.Zero(t, count(w, tags.ThrownCake))
}

func TestContacts_ThrownCakeScoresOnBox(t *testing.T) {
	w := newTestWorld(t)
	box := tags.CakeBox.MustFirst(w.World)
	cake := factory.CreateThrownCake(w, components.Transform.Get(box).Position, gamemath.Vec3{})

	UpdateContacts(w)
	UpdateContacts(w)
	assert.Equal(t, 1, Score(w.World), "a cake scores once")
	assert.True(t, components.ThrownCake.Get(cake).Spent)
	assert.True(t, box.HasComponent(components.Highlight))
}

func TestContacts_DepositScores(t *testing.T) {
	w := newTestWorld(t)
	p := player(w)
	box := tags.CakeBox.MustFirst(w.World)
	components.Transform.Get(p).Position = components.Transform.Get(box).Position
	factory.SyncObject(w.World, p)
	carrier := components.Carrier.Get(p)
	carrier.Pickup()

	UpdateContacts(w)
	assert.Equal(t, 1, Score(w.World))
	assert.False(t, carrier.Holding)
	assert.True(t, carrier.CanPickup(cfg.Pickup.Cooldown))
	assert.Equal(t, 1, components.CakeBox.Get(box).Deposits)

	UpdateContacts(w)
	assert.Equal(t, 1, Score(w.World), "empty hands do not score")
}

func TestDamagePlayer_Invincibility(t *testing.T) {
	w := newTestWorld(t)
	StartSession(w)
	p := player(w)
	carrier := components.Carrier.Get(p)
	carrier.Pickup()

	DamagePlayer(w, p, 1)
	health := components.Health.Get(p)
	assert.Equal(t, 2, health.Current)
	assert.True(t, health.Invincible)
	assert.False(t, carrier.Holding, "a hit knocks the cake away")
	assert.False(t, carrier.Enabled)

	DamagePlayer(w, p, 1)
	assert.Equal(t, 2, health.Current)

	dx, dy := ScreenShakeOffset(w.World)
	assert.False(t, dx == 0 && dy == 0)
}

func TestDamagePlayer_DefeatEndsSession(t *testing.T) {
	w := newTestWorld(t)
	StartSession(w)
	p := player(w)
	health := components.Health.Get(p)

	for i := 0; i < cfg.Health.Max; i++ {
		health.Invincible = false
		DamagePlayer(w, p, 1)
	}
	assert.True(t, health.Defeated)
	assert.False(t, components.Player.Get(p).CanMove)

	state, _, _ := SessionSummary(w.World)
	assert.Equal(t, cfg.SessionPlaying, state, "game over waits for the shrink")

	tick(w, 60)
	state, _, _ = SessionSummary(w.World)
	assert.Equal(t, cfg.SessionGameOver, state)
	assert.False(t, components.Spawner.Get(components.Spawner.MustFirst(w.World)).Enabled)
}

func TestResetSession_ClearsArena(t *testing.T) {
	w := newTestWorld(t)
	StartSession(w)
	tick(w, 1)
	factory.CreateCake(w, gamemath.Vec3{X: -1, Z: -1})
	AddScore(w, nil)
	components.Health.Get(player(w)).ApplyDamage(1, cfg.Health.InvincibilityDuration)
	require.Equal(t, 1, count(w, tags.Chef))

	ResetSession(w)
	assert.Zero(t, count(w, tags.Chef))
	assert.Zero(t, count(w, tags.Cake))
	assert.Zero(t, count(w, tags.ThrownCake))
	assert.Zero(t, GetSpawnerStats(w.World).Active)
	assert.Equal(t, cfg.Spawner.InitialInterval, GetSpawnerStats(w.World).Interval)

	state, score, _ := SessionSummary(w.World)
	assert.Equal(t, cfg.SessionPlaying, state)
	assert.Zero(t, score)
	assert.Equal(t, cfg.Health.Max, components.Health.Get(player(w)).Current)

	tick(w, 1)
	assert.Equal(t, 1, count(w, tags.Chef), "the new round spawns right away")
}

func TestGoHome_StopsRound(t *testing.T) {
	w := newTestWorld(t)
	StartSession(w)
	tick(w, 1)

	GoHome(w)
	state, _, _ := SessionSummary(w.World)
	assert.Equal(t, cfg.SessionHome, state)
	assert.Zero(t, count(w, tags.Chef))

	tick(w, 240)
	assert.Zero(t, count(w, tags.Chef))
}

func TestPause_FreezesGameplay(t *testing.T) {
	w := newTestWorld(t)
	StartSession(w)
	tick(w, 1)
	session := components.Session.Get(components.Session.MustFirst(w.World))
	elapsed := session.Elapsed

	SetPaused(w, true)
	tick(w, 30)
	assert.Equal(t, elapsed, session.Elapsed)

	SelectPauseOption(w, components.MenuResume)
	tick(w, 1)
	assert.Greater(t, session.Elapsed, elapsed)
}

func TestPause_HomeOption(t *testing.T) {
	w := newTestWorld(t)
	StartSession(w)
	SetPaused(w, true)

	SelectPauseOption(w, components.MenuHome)
	state, _, _ := SessionSummary(w.World)
	assert.Equal(t, cfg.SessionHome, state)
	assert.False(t, GetOrCreatePause(w).IsPaused)
}

func TestWanderers_OnlyMoveDuringRound(t *testing.T) {
	w := newTestWorld(t)
	box := tags.CakeBox.MustFirst(w.World)
	start := components.Transform.Get(box).Position

	tick(w, 300)
	assert.Equal(t, start, components.Transform.Get(box).Position)

	StartSession(w)
	tick(w, 300)
	assert.NotEqual(t, start, components.Transform.Get(box).Position)
}
