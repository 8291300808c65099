package factory

import (
	"fmt"
	"log/slog"

	"github.com/nhawngkun/Chirpy-Winged/archetypes"
	"github.com/nhawngkun/Chirpy-Winged/components"
	cfg "github.com/nhawngkun/Chirpy-Winged/config"
	"github.com/nhawngkun/Chirpy-Winged/shared/gamemath"
	"github.com/nhawngkun/Chirpy-Winged/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateChef spawns a path walker at origin walking to target.
func CreateChef(ecs *ecs.ECS, origin, target gamemath.Vec3) (*donburi.Entry, error) {
	if _, err := GetBoundary(ecs.World); err != nil {
		return nil, fmt.Errorf("creating chef: %w", err)
	}

	chef := archetypes.Chef.Spawn(ecs)
	components.Chef.SetValue(chef, components.NewChefData(origin, target))
	components.Transform.SetValue(chef, components.TransformData{
		Position: origin,
		Heading:  target.Sub(origin).Heading(),
		Scale:    1,
	})
	newObject(ecs.World, chef, origin, cfg.Chef.Radius, tags.ResolvChef)

	slog.Debug("chef spawned", "entity", chef.Entity(), "origin", origin, "target", target)
	return chef, nil
}
