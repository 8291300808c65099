package factory

import (
	"fmt"

	"github.com/nhawngkun/Chirpy-Winged/archetypes"
	"github.com/nhawngkun/Chirpy-Winged/assets"
	"github.com/nhawngkun/Chirpy-Winged/components"
	cfg "github.com/nhawngkun/Chirpy-Winged/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpawner adds the chef spawner. It requires a boundary and at least
// one route.
func CreateSpawner(ecs *ecs.ECS, routes []assets.Route) (*donburi.Entry, error) {
	if _, err := GetBoundary(ecs.World); err != nil {
		return nil, fmt.Errorf("creating spawner: %w", err)
	}
	if len(routes) == 0 {
		return nil, fmt.Errorf("creating spawner: %w", assets.ErrNoRoutes)
	}

	spawner := archetypes.Spawner.Spawn(ecs)
	components.Spawner.SetValue(spawner, components.NewSpawnerData(cfg.Spawner))
	return spawner, nil
}
