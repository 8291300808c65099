package components

import (
	"github.com/nhawngkun/Chirpy-Winged/shared/gamemath"
	"github.com/yohamta/donburi"
)

// BoundaryData is the disk every ground entity must stay inside.
type BoundaryData struct {
	gamemath.Circle
	PushBackStrength float64
	SmoothPushBack   bool
}

// IsValid reports whether p is inside the play area; height is ignored.
func (b *BoundaryData) IsValid(p gamemath.Vec3) bool {
	return b.Contains(p)
}

// PushBack applies one tick of the boundary correction to a free body.
func (b *BoundaryData) PushBack(pos, vel gamemath.Vec3, dt float64) (gamemath.Vec3, gamemath.Vec3) {
	return b.Circle.PushBack(pos, vel, b.PushBackStrength, dt, b.SmoothPushBack)
}

var Boundary = donburi.NewComponentType[BoundaryData]()
