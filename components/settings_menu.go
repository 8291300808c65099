package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData stores the user adjustable settings
type SettingsData struct {
	MusicVolume     float64
	SFXVolume       float64
	Fullscreen      bool
	ResolutionIndex int
}

var Settings = donburi.NewComponentType[SettingsData]()
