package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks active screen shake
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  float64 // seconds remaining
	Elapsed   float64
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// PulseData scales an entity back and forth while it is invincible.
type PulseData struct {
	Tween *gween.Sequence
	Scale float64
}

var Pulse = donburi.NewComponentType[PulseData]()

// HighlightData is a short colour flash, counted down in seconds.
type HighlightData struct {
	Remaining float64
}

var Highlight = donburi.NewComponentType[HighlightData]()
