package systems

import (
	"fmt"

	"github.com/nhawngkun/Chirpy-Winged/assets"
	"github.com/nhawngkun/Chirpy-Winged/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// SetupWorld creates every persistent entity of a round: the arena with its
// boundary and collision space, the session, the player, the cake boxes and
// the chef spawner. The world starts on the home screen.
func SetupWorld(ecs *ecs.ECS, layout *assets.Arena, seed int64, bestScore int) error {
	factory.CreateRNG(ecs, seed)
	factory.CreateArena(ecs, layout)
	factory.CreateSession(ecs, bestScore)

	if _, err := factory.CreatePlayer(ecs, layout.PlayerSpawn); err != nil {
		return fmt.Errorf("setting up world: %w", err)
	}
	for _, pos := range layout.CakeBoxes {
		if _, err := factory.CreateCakeBox(ecs, pos); err != nil {
			return fmt.Errorf("setting up world: %w", err)
		}
	}
	if _, err := factory.CreateSpawner(ecs, layout.Routes); err != nil {
		return fmt.Errorf("setting up world: %w", err)
	}

	RegisterEventHandlers(ecs.World)
	GetOrCreatePause(ecs)
	getOrCreateInput(ecs)
	StopWanderers(ecs)
	return nil
}

// AddGameplaySystems registers the simulation systems in tick order. Device
// polling and the pause menu are added by the caller so headless runs can
// drive input themselves.
func AddGameplaySystems(ecs *ecs.ECS) {
	ecs.AddSystem(WithGameplayChecks(UpdateSession))
	ecs.AddSystem(WithGameplayChecks(UpdateSpawner))
	ecs.AddSystem(WithGameplayChecks(UpdatePlayer))
	ecs.AddSystem(WithGameplayChecks(UpdateBoundary))
	ecs.AddSystem(WithGameplayChecks(UpdateWanderers))
	ecs.AddSystem(WithGameplayChecks(UpdateChefs))
	ecs.AddSystem(WithGameplayChecks(UpdateThrownCakes))
	ecs.AddSystem(WithGameplayChecks(UpdateCakes))
	ecs.AddSystem(WithGameplayChecks(UpdateObjects))
	ecs.AddSystem(WithGameplayChecks(UpdatePickup))
	ecs.AddSystem(WithGameplayChecks(UpdateContacts))
	ecs.AddSystem(WithGameplayChecks(UpdateHealth))

	// Shrink-outs and popups finish even after the round ends.
	ecs.AddSystem(WithPauseCheck(UpdateEffects))
	ecs.AddSystem(WithPauseCheck(UpdatePopups))

	ecs.AddSystem(ProcessEvents)
}
