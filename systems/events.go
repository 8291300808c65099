package systems

import (
	"github.com/nhawngkun/Chirpy-Winged/components"
	"github.com/nhawngkun/Chirpy-Winged/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// RegisterEventHandlers wires the world's event subscribers. Call once per
// world before the first update.
func RegisterEventHandlers(w donburi.World) {
	components.ChefDespawnedEvent.Subscribe(w, onChefDespawned)
	components.GameEvents.Subscribe(w, onGameEvent)
}

// ProcessEvents delivers every event queued this tick. Runs last.
func ProcessEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}

func publishGameEvent(w donburi.World, kind components.GameEventKind, pos gamemath.Vec3) {
	components.GameEvents.Publish(w, components.GameEvent{Kind: kind, Position: pos})
}
