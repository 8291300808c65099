package systems

import (
	"log/slog"

	"github.com/nhawngkun/Chirpy-Winged/components"
	cfg "github.com/nhawngkun/Chirpy-Winged/config"
	"github.com/nhawngkun/Chirpy-Winged/systems/factory"
	"github.com/nhawngkun/Chirpy-Winged/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateChefs walks every chef toward its target, samples its boundary
// crossing for a cake drop, and despawns it on arrival.
func UpdateChefs(ecs *ecs.ECS) {
	boundaryEntry, ok := components.Boundary.First(ecs.World)
	if !ok {
		return
	}
	boundary := components.Boundary.Get(boundaryEntry)
	rng := getRand(ecs.World)
	step := dt()

	var arrived []*donburi.Entry
	var drops []*donburi.Entry

	tags.Chef.Each(ecs.World, func(e *donburi.Entry) {
		chef := components.Chef.Get(e)
		if chef.State != cfg.Walking {
			return
		}
		transform := components.Transform.Get(e)
		transform.Position, transform.Heading = chef.Step(step, transform.Position, transform.Heading, cfg.Chef)

		if chef.SampleCrossing(step, cfg.Chef.DropCheckInterval, boundary.IsValid(transform.Position)) {
			drops = append(drops, e)
		}
		if chef.Arrived(transform.Position, cfg.Chef.ReachDistance) {
			arrived = append(arrived, e)
		}
	})

	for _, e := range drops {
		dropCakes(ecs, e, boundary, rng)
	}
	for _, e := range arrived {
		DestroyChef(ecs, e)
	}
}

func dropCakes(ecs *ecs.ECS, e *donburi.Entry, boundary *components.BoundaryData, rng components.Rand) {
	count := components.RollDrop(rng, cfg.Chef)
	slog.Debug("chef drop roll", "entity", e.Entity(), "count", count)
	if count == 0 {
		return
	}

	chef := components.Chef.Get(e)
	pos := components.Transform.Get(e).Position
	for _, p := range chef.DropPoints(pos, count, boundary.Circle, rng, cfg.Chef) {
		factory.CreateCake(ecs, p)
		publishGameEvent(ecs.World, components.EventCakeDropped, p)
	}
}

// DestroyChef stops a walking chef, disables its contacts and shrinks it
// out. Calling it on a chef that is already going is a no-op.
func DestroyChef(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	chef := components.Chef.Get(e)
	if chef.State == cfg.Destroyed {
		return
	}
	chef.State = cfg.Destroyed
	factory.StartDespawn(e, cfg.Chef.DestroyDuration)
}
