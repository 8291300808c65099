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

// CreateCakeBox places a roaming scoring target. A start outside the
// boundary is clamped in.
func CreateCakeBox(ecs *ecs.ECS, pos gamemath.Vec3) (*donburi.Entry, error) {
	boundary, err := GetBoundary(ecs.World)
	if err != nil {
		return nil, fmt.Errorf("creating cake box: %w", err)
	}
	pos = boundary.Clamp(pos)

	box := archetypes.CakeBox.Spawn(ecs)
	components.CakeBox.SetValue(box, components.CakeBoxData{})
	components.Wanderer.SetValue(box, components.NewWandererData(cfg.Wanderer))
	components.Transform.SetValue(box, components.TransformData{
		Position: pos,
		Scale:    1,
	})
	newObject(ecs.World, box, pos, cfg.CakeBox.Radius, tags.ResolvCakeBox)
	return box, nil
}

// NewPunchSequence is the score pulse: grow to PunchScale and settle back.
func NewPunchSequence() *gween.Sequence {
	half := float32(cfg.CakeBox.PunchDuration / 2)
	return gween.NewSequence(
		gween.New(1, float32(cfg.CakeBox.PunchScale), half, ease.OutQuad),
		gween.New(float32(cfg.CakeBox.PunchScale), 1, half, ease.OutBounce),
	)
}
