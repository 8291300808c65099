package components

import (
	"github.com/nhawngkun/Chirpy-Winged/shared/gamemath"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	Velocity gamemath.Vec3
	Gravity  float64
	Grounded bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
