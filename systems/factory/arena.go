package factory

import (
	"errors"

	"github.com/nhawngkun/Chirpy-Winged/archetypes"
	"github.com/nhawngkun/Chirpy-Winged/assets"
	"github.com/nhawngkun/Chirpy-Winged/components"
	cfg "github.com/nhawngkun/Chirpy-Winged/config"
	"github.com/nhawngkun/Chirpy-Winged/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrNoBoundary is returned when an entity that needs the play area is
// created before the boundary exists.
var ErrNoBoundary = errors.New("no boundary in world")

// CreateArena registers the static layout, the collision space covering it,
// and the boundary. The boundary takes the map's radius unless the tuning
// sets one.
func CreateArena(ecs *ecs.ECS, layout *assets.Arena) *donburi.Entry {
	arena := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(arena, components.ArenaData{Layout: layout})

	radius := layout.Radius
	if cfg.Boundary.Radius > 0 {
		radius = cfg.Boundary.Radius
	}
	CreateSpace(ecs, layout.PixelWidth, layout.PixelHeight, cfg.Arena.CellSize, cfg.Arena.CellSize)
	CreateBoundary(ecs, gamemath.Circle{Radius: radius})
	return arena
}

func CreateBoundary(ecs *ecs.ECS, circle gamemath.Circle) *donburi.Entry {
	boundary := archetypes.Boundary.Spawn(ecs)
	components.Boundary.SetValue(boundary, components.BoundaryData{
		Circle:           circle,
		PushBackStrength: cfg.Boundary.PushBackStrength,
		SmoothPushBack:   cfg.Boundary.SmoothPushBack,
	})
	return boundary
}

// GetBoundary returns the world's boundary or ErrNoBoundary.
func GetBoundary(w donburi.World) (*components.BoundaryData, error) {
	entry, ok := components.Boundary.First(w)
	if !ok {
		return nil, ErrNoBoundary
	}
	return components.Boundary.Get(entry), nil
}
