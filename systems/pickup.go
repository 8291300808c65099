package systems

import (
	"log/slog"
	"math"

	"github.com/nhawngkun/Chirpy-Winged/components"
	cfg "github.com/nhawngkun/Chirpy-Winged/config"
	"github.com/nhawngkun/Chirpy-Winged/shared/gamemath"
	"github.com/nhawngkun/Chirpy-Winged/systems/factory"
	"github.com/nhawngkun/Chirpy-Winged/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePickup runs the carry loop: grab the nearest free cake when allowed,
// then steer the aim while holding and throw when the aim input is let go.
func UpdatePickup(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	step := dt()

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		carrier := components.Carrier.Get(e)
		carrier.Tick(step)
		if !carrier.Enabled {
			return
		}

		pos := components.Transform.Get(e).Position
		if !carrier.Holding && carrier.CanPickup(cfg.Pickup.Cooldown) {
			if cake := nearestCake(ecs.World, pos, cfg.Pickup.PickupRadius); cake != nil {
				cakePos := components.Transform.Get(cake).Position
				destroyEntity(ecs.World, cake)
				carrier.Pickup()
				publishGameEvent(ecs.World, components.EventCakePicked, cakePos)
				slog.Debug("cake picked up")
			}
		}

		if carrier.Holding && carrier.UpdateAim(input.AimX, input.AimY, cfg.Pickup.AimDeadzone, cfg.Pickup.ThrowThreshold) {
			throwCake(ecs, e)
		}
	})
}

// nearestCake returns the closest ground cake within radius on the ground
// plane, skipping cakes that are already on their way out.
func nearestCake(w donburi.World, pos gamemath.Vec3, radius float64) *donburi.Entry {
	var best *donburi.Entry
	bestDist := math.Inf(1)
	tags.Cake.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(components.Despawn) {
			return
		}
		d := gamemath.FlatDistance(pos, components.Transform.Get(e).Position)
		if d <= radius && d < bestDist {
			best, bestDist = e, d
		}
	})
	return best
}

// ThrowPoint is where a held cake leaves the player: above and slightly in
// front along the heading.
func ThrowPoint(pos gamemath.Vec3, heading float64) gamemath.Vec3 {
	forward := gamemath.FromAngle(heading).Scale(cfg.Pickup.ReleaseForward)
	return pos.Add(gamemath.Up.Scale(cfg.Pickup.ReleaseHeight)).Add(forward)
}

func throwCake(ecs *ecs.ECS, e *donburi.Entry) {
	carrier := components.Carrier.Get(e)
	transform := components.Transform.Get(e)

	start := ThrowPoint(transform.Position, transform.Heading)
	vel := gamemath.ThrowVelocity(carrier.Aim, cfg.Pickup.ThrowForce, cfg.Pickup.ThrowHeight)
	factory.CreateThrownCake(ecs, start, vel)
	carrier.Release()

	publishGameEvent(ecs.World, components.EventCakeThrown, start)
	slog.Debug("cake thrown", "aim", carrier.Aim)
}

// ForceDrop makes every player lose a carried cake and locks pickup briefly.
func ForceDrop(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		components.Carrier.Get(e).ForceDrop(cfg.Pickup.ForceDropLockout)
	})
}
