package components

import (
	"github.com/nhawngkun/Chirpy-Winged/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PopupData is a short floating label over the arena, such as "+1" on a
// score.
type PopupData struct {
	Text     string
	Position gamemath.Vec3
	Rise     *gween.Tween
	Offset   float64 // pixels above Position
}

var Popup = donburi.NewComponentType[PopupData]()
