package systems

import (
	"log/slog"

	"github.com/nhawngkun/Chirpy-Winged/components"
	"github.com/nhawngkun/Chirpy-Winged/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner advances the spawner's ramp and spawn timers and creates a
// chef on a random route when one is due.
func UpdateSpawner(ecs *ecs.ECS) {
	spawner, ok := getSpawner(ecs.World)
	if !ok {
		return
	}
	if !spawner.Tick(dt()) {
		return
	}

	arenaEntry, ok := components.Arena.First(ecs.World)
	if !ok {
		return
	}
	routes := components.Arena.Get(arenaEntry).Layout.Routes
	origin, target, route := components.PickRoute(routes, getRand(ecs.World))

	if _, err := factory.CreateChef(ecs, origin, target); err != nil {
		slog.Error("spawning chef", "route", route, "error", err)
		return
	}
	spawner.OnSpawned()
	publishGameEvent(ecs.World, components.EventChefSpawned, origin)
	slog.Debug("spawner state", "active", spawner.Active, "cap", spawner.Cap, "interval", spawner.Interval)
}

// onChefDespawned keeps the spawner's live count in step with the world.
func onChefDespawned(w donburi.World, _ components.ChefDespawned) {
	if spawner, ok := getSpawner(w); ok {
		spawner.OnDespawned()
	}
}

// SpawnerStats exposes the spawner counters for diagnostics.
type SpawnerStats struct {
	Active   int
	Cap      int
	Interval float64
}

func GetSpawnerStats(w donburi.World) SpawnerStats {
	spawner, ok := getSpawner(w)
	if !ok {
		return SpawnerStats{}
	}
	return SpawnerStats{Active: spawner.Active, Cap: spawner.Cap, Interval: spawner.Interval}
}

// SetDifficulty overrides the spawner's interval and cap.
func SetDifficulty(w donburi.World, interval float64, maxEntities int) {
	if spawner, ok := getSpawner(w); ok {
		spawner.SetDifficulty(interval, maxEntities)
	}
}
