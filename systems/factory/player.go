package factory

import (
	"fmt"

	"github.com/nhawngkun/Chirpy-Winged/archetypes"
	"github.com/nhawngkun/Chirpy-Winged/components"
	cfg "github.com/nhawngkun/Chirpy-Winged/config"
	"github.com/nhawngkun/Chirpy-Winged/shared/gamemath"
	"github.com/nhawngkun/Chirpy-Winged/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, spawn gamemath.Vec3) (*donburi.Entry, error) {
	boundary, err := GetBoundary(ecs.World)
	if err != nil {
		return nil, fmt.Errorf("creating player: %w", err)
	}
	spawn = boundary.Clamp(spawn)

	player := archetypes.Player.Spawn(ecs)
	components.Player.SetValue(player, components.PlayerData{
		SpawnX:  spawn.X,
		SpawnZ:  spawn.Z,
		CanMove: true,
	})
	components.Transform.SetValue(player, components.TransformData{
		Position: spawn,
		Heading:  -gamemath.HalfPi,
		Scale:    1,
	})
	components.Health.SetValue(player, components.NewHealthData(cfg.Health.Max))
	components.Carrier.SetValue(player, components.NewCarrierData())
	components.Pulse.SetValue(player, components.PulseData{
		Tween: NewPulseSequence(),
		Scale: 1,
	})
	newObject(ecs.World, player, spawn, cfg.Player.Radius, tags.ResolvPlayer)

	return player, nil
}

// NewPulseSequence is the invincibility scale loop.
func NewPulseSequence() *gween.Sequence {
	return gween.NewSequence(
		gween.New(float32(cfg.Health.PulseMin), float32(cfg.Health.PulseMax), float32(cfg.Health.PulseDuration), ease.InOutSine),
		gween.New(float32(cfg.Health.PulseMax), float32(cfg.Health.PulseMin), float32(cfg.Health.PulseDuration), ease.InOutSine),
	)
}
