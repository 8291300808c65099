package systems

import (
	"github.com/nhawngkun/Chirpy-Winged/components"
	"github.com/nhawngkun/Chirpy-Winged/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBoundary pushes a player that has strayed outside the arena back in
// and strips the outward part of its velocity. Runs after movement.
func UpdateBoundary(ecs *ecs.ECS) {
	entry, ok := components.Boundary.First(ecs.World)
	if !ok {
		return
	}
	boundary := components.Boundary.Get(entry)
	step := dt()

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		transform := components.Transform.Get(e)
		physics := components.Physics.Get(e)
		transform.Position, physics.Velocity = boundary.PushBack(transform.Position, physics.Velocity, step)
	})
}
