// Package sim runs the arena without a window, driving the player with a
// simple autopilot, and reports what happened.
package sim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/nhawngkun/Chirpy-Winged/assets"
	"github.com/nhawngkun/Chirpy-Winged/components"
	cfg "github.com/nhawngkun/Chirpy-Winged/config"
	"github.com/nhawngkun/Chirpy-Winged/shared/gamemath"
	"github.com/nhawngkun/Chirpy-Winged/systems"
	"github.com/nhawngkun/Chirpy-Winged/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var ErrInvalidDuration = errors.New("duration must be positive")

type Options struct {
	Seconds   float64
	Seed      int64
	Autopilot bool
	// StopOnGameOver ends the run when the player is defeated.
	StopOnGameOver bool
}

// Report summarizes a headless run.
type Report struct {
	Ticks          int
	Elapsed        float64
	State          cfg.SessionState
	Score          int
	BestScore      int
	ChefsSpawned   int
	ChefsDestroyed int
	CakesDropped   int
	CakesPicked    int
	CakesThrown    int
	PlayerHits     int
	Spawner        systems.SpawnerStats
}

// Run plays one session on layout for opts.Seconds of simulated time.
func Run(ctx context.Context, layout *assets.Arena, opts Options) (Report, error) {
	if opts.Seconds <= 0 {
		return Report{}, ErrInvalidDuration
	}

	world := ecs.NewECS(donburi.NewWorld())
	systems.AddGameplaySystems(world)
	if err := systems.SetupWorld(world, layout, opts.Seed, 0); err != nil {
		return Report{}, fmt.Errorf("running simulation: %w", err)
	}

	var report Report
	components.GameEvents.Subscribe(world.World, func(_ donburi.World, e components.GameEvent) {
		report.count(e.Kind)
	})

	pilot := &autopilot{}
	systems.StartSession(world)

	ticks := int(math.Ceil(opts.Seconds * float64(cfg.C.TPS)))
	for i := 0; i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if opts.Autopilot {
			pilot.steer(world)
		}
		world.Update()
		report.Ticks++

		if opts.StopOnGameOver && !systems.IsPlaying(world) {
			break
		}
	}

	report.State, report.Score, report.BestScore = systems.SessionSummary(world.World)
	report.Elapsed = float64(report.Ticks) * cfg.C.DeltaTime()
	report.Spawner = systems.GetSpawnerStats(world.World)
	slog.Info("simulation finished", "ticks", report.Ticks, "score", report.Score, "state", report.State)
	return report, nil
}

func (r *Report) count(kind components.GameEventKind) {
	switch kind {
	case components.EventChefSpawned:
		r.ChefsSpawned++
	case components.EventChefDestroyed:
		r.ChefsDestroyed++
	case components.EventCakeDropped:
		r.CakesDropped++
	case components.EventCakePicked:
		r.CakesPicked++
	case components.EventCakeThrown:
		r.CakesThrown++
	case components.EventPlayerHit:
		r.PlayerHits++
	}
}

// autopilot walks to the nearest cake, then aims at the nearest box for a
// few ticks and lets go of the aim to throw.
type autopilot struct {
	aimTicks int
}

const aimHoldTicks = 10

func (a *autopilot) steer(world *ecs.ECS) {
	player, ok := tags.Player.First(world.World)
	if !ok {
		return
	}
	pos := components.Transform.Get(player).Position
	carrier := components.Carrier.Get(player)

	if carrier.Holding {
		target, found := nearest(world.World, tags.CakeBox, pos)
		if !found || a.aimTicks >= aimHoldTicks {
			a.aimTicks = 0
			systems.SetAxes(world, 0, 0, 0, 0)
			return
		}
		a.aimTicks++
		dir := target.Sub(pos).Flat().Normalized()
		systems.SetAxes(world, 0, 0, dir.X, dir.Z)
		return
	}

	a.aimTicks = 0
	target, found := nearest(world.World, tags.Cake, pos)
	if !found {
		// Drift back toward the middle while waiting for cakes.
		target = gamemath.Vec3{}
		if pos.FlatLen() < 1 {
			systems.SetAxes(world, 0, 0, 0, 0)
			return
		}
	}
	dir := target.Sub(pos).Flat().Normalized()
	systems.SetAxes(world, dir.X, dir.Z, 0, 0)
}

func nearest(w donburi.World, tag donburi.IComponentType, from gamemath.Vec3) (gamemath.Vec3, bool) {
	best := math.Inf(1)
	var at gamemath.Vec3
	found := false
	donburi.NewQuery(filter.Contains(tag)).Each(w, func(e *donburi.Entry) {
		if e.HasComponent(components.Despawn) {
			return
		}
		p := components.Transform.Get(e).Position
		if d := gamemath.FlatDistance(from, p); d < best {
			best, at, found = d, p, true
		}
	})
	return at, found
}
