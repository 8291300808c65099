package systems

import (
	"encoding/json"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nhawngkun/Chirpy-Winged/components"
	cfg "github.com/nhawngkun/Chirpy-Winged/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const (
	settingsKey = "settings"
	scoreKey    = "best_score"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume     float64 `json:"musicVolume"`
	SFXVolume       float64 `json:"sfxVolume"`
	Fullscreen      bool    `json:"fullscreen"`
	ResolutionIndex int     `json:"resolutionIndex"`
}

// SavedScore is the persisted best round.
type SavedScore struct {
	Best int `json:"best"`
}

// ItemStore is the subset of the save-data manager the game uses.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store ItemStore

// InitPersistence opens the platform save-data location.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "chirpy_winged",
	})
	if err != nil {
		slog.Warn("could not initialize persistence", "error", err)
		return err
	}
	store = m
	return nil
}

// SetStore replaces the save-data backend; nil disables persistence.
func SetStore(s ItemStore) {
	store = s
}

func loadItem(key string, v any) bool {
	if store == nil {
		return false
	}
	data, err := store.LoadItem(key)
	if err != nil {
		slog.Warn("could not load item", "key", key, "error", err)
		return false
	}
	if len(data) == 0 {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		slog.Warn("could not parse saved item", "key", key, "error", err)
		return false
	}
	return true
}

func saveItem(key string, v any) {
	if store == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("could not serialize item", "key", key, "error", err)
		return
	}
	if err := store.SaveItem(key, data); err != nil {
		slog.Warn("could not save item", "key", key, "error", err)
	}
}

// LoadBestScore returns the stored best score, or 0 when there is none.
func LoadBestScore() int {
	var saved SavedScore
	if !loadItem(scoreKey, &saved) {
		return 0
	}
	return saved.Best
}

func SaveBestScore(best int) {
	saveItem(scoreKey, SavedScore{Best: best})
}

// LoadSettings loads settings from disk; nil when nothing is stored.
func LoadSettings() *SavedSettings {
	var saved SavedSettings
	if !loadItem(settingsKey, &saved) {
		return nil
	}
	return &saved
}

func SaveSettings(s *SavedSettings) {
	saveItem(settingsKey, s)
}

// SaveCurrentSettings saves the world's Settings component.
func SaveCurrentSettings(s *components.SettingsData) {
	SaveSettings(&SavedSettings{
		MusicVolume:     s.MusicVolume,
		SFXVolume:       s.SFXVolume,
		Fullscreen:      s.Fullscreen,
		ResolutionIndex: s.ResolutionIndex,
	})
}

// GetOrCreateSettings returns the singleton Settings component, seeded with
// defaults on first use.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			MusicVolume:     1,
			SFXVolume:       1,
			ResolutionIndex: cfg.SettingsMenu.DefaultResolutionIndex,
		})
	}
	return components.Settings.Get(entry)
}

// ApplySavedSettings copies stored settings into the world and the window.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	settings := GetOrCreateSettings(e)
	settings.MusicVolume = saved.MusicVolume
	settings.SFXVolume = saved.SFXVolume
	settings.Fullscreen = saved.Fullscreen
	if saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		settings.ResolutionIndex = saved.ResolutionIndex
	}
	ApplyWindowSettings(settings)
}

// ApplyWindowSettings pushes fullscreen and resolution to the window.
func ApplyWindowSettings(s *components.SettingsData) {
	ebiten.SetFullscreen(s.Fullscreen)
	if !s.Fullscreen {
		res := cfg.SettingsMenu.Resolutions[s.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}
