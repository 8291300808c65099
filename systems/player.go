package systems

import (
	"github.com/nhawngkun/Chirpy-Winged/components"
	cfg "github.com/nhawngkun/Chirpy-Winged/config"
	"github.com/nhawngkun/Chirpy-Winged/shared/gamemath"
	"github.com/nhawngkun/Chirpy-Winged/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns move input into velocity and heading, then integrates
// the player's position.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	step := dt()

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		transform := components.Transform.Get(e)
		physics := components.Physics.Get(e)

		if !player.CanMove {
			physics.Velocity = gamemath.Vec3{}
			return
		}

		dir, _, ok := gamemath.AimFromInput(input.MoveX, input.MoveY, cfg.Player.Deadzone)
		if ok {
			physics.Velocity.X = dir.X * cfg.Player.MoveSpeed
			physics.Velocity.Z = dir.Z * cfg.Player.MoveSpeed
			transform.Heading = gamemath.LerpAngle(transform.Heading, dir.Heading(), cfg.Player.RotateSpeed*step)
		} else {
			physics.Velocity.X = 0
			physics.Velocity.Z = 0
		}

		transform.Position = transform.Position.Add(physics.Velocity.Flat().Scale(step))
	})
}

// resetPlayer puts the player back at its spawn with full health and an
// empty, enabled carrier.
func resetPlayer(e *donburi.Entry) {
	player := components.Player.Get(e)
	player.CanMove = true
	player.Shrink = nil

	transform := components.Transform.Get(e)
	transform.Position = gamemath.Vec3{X: player.SpawnX, Z: player.SpawnZ}
	transform.Heading = -gamemath.HalfPi
	transform.Scale = 1

	components.Physics.Get(e).Velocity = gamemath.Vec3{}
	components.Health.Get(e).Reset()
	components.Carrier.Get(e).Reset()
}
