package components

import (
	"github.com/nhawngkun/Chirpy-Winged/shared/gamemath"
	"github.com/yohamta/donburi"
)

// TransformData is the arena-space pose of an entity.
type TransformData struct {
	Position gamemath.Vec3
	Heading  float64 // radians on the ground plane
	Scale    float64
}

var Transform = donburi.NewComponentType[TransformData]()
