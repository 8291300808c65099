package scenes

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nhawngkun/Chirpy-Winged/assets"
	cfg "github.com/nhawngkun/Chirpy-Winged/config"
	"github.com/nhawngkun/Chirpy-Winged/systems"
	"github.com/nhawngkun/Chirpy-Winged/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene is the whole game: the arena simulation with the home, loss,
// settings and in-round overlays drawn on top.
type ArenaScene struct {
	ecs     *ecs.ECS
	screens *ui.Screens
	layout  *assets.Arena
	seed    int64
	once    sync.Once
	err     error
	quit    bool
}

func NewArenaScene(layout *assets.Arena, seed int64) *ArenaScene {
	return &ArenaScene{layout: layout, seed: seed}
}

func (s *ArenaScene) Update() error {
	s.once.Do(s.configure)
	if s.err != nil {
		return s.err
	}
	if s.quit {
		return ebiten.Termination
	}

	if !s.ready() {
		return nil
	}
	s.ecs.Update()
	s.syncScreen()
	s.screens.Update()
	return nil
}

func (s *ArenaScene) Draw(screen *ebiten.Image) {
	if !s.ready() {
		screen.Fill(cfg.Palette.Background)
		return
	}
	s.ecs.Draw(screen)
	s.screens.Draw(screen)
}

// ready reports whether configure finished building the world and screens.
func (s *ArenaScene) ready() bool {
	return s.ecs != nil && s.screens != nil
}

// syncScreen follows the session state: home and loss overlays come up when
// the round is not running, the button bar while it is. The settings
// overlay stays until closed.
func (s *ArenaScene) syncScreen() {
	if s.screens.Active() == ui.ScreenSettings {
		return
	}
	state, score, best := systems.SessionSummary(s.ecs.World)
	want := ui.ScreenHome
	switch state {
	case cfg.SessionPlaying:
		want = ui.ScreenGameplay
	case cfg.SessionGameOver:
		want = ui.ScreenLoss
	}
	if want != s.screens.Active() {
		s.screens.SetScores(score, best)
		s.screens.Show(want)
	}
}

func (s *ArenaScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)
	systems.AddGameplaySystems(e)

	// Add renderers
	e.AddRenderer(cfg.Default, systems.DrawArena)
	e.AddRenderer(cfg.Default, systems.DrawEntities)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Overlay, systems.DrawPause)

	if err := systems.SetupWorld(e, s.layout, s.seed, systems.LoadBestScore()); err != nil {
		s.err = fmt.Errorf("configuring arena scene: %w", err)
		return
	}
	systems.ApplySavedSettings(e, systems.LoadSettings())

	screens, err := ui.NewScreens(ui.Actions{
		Play:    func() { systems.StartSession(s.ecs) },
		Restart: func() { systems.ResetSession(s.ecs) },
		Home:    func() { systems.GoHome(s.ecs) },
		Quit:    func() { s.quit = true },
		Settings: func() *ui.SettingsValues {
			st := systems.GetOrCreateSettings(s.ecs)
			return &ui.SettingsValues{
				MusicVolume:     st.MusicVolume,
				SFXVolume:       st.SFXVolume,
				Fullscreen:      st.Fullscreen,
				ResolutionIndex: st.ResolutionIndex,
			}
		},
		Apply: func(v ui.SettingsValues) {
			st := systems.GetOrCreateSettings(s.ecs)
			st.MusicVolume = v.MusicVolume
			st.SFXVolume = v.SFXVolume
			st.Fullscreen = v.Fullscreen
			st.ResolutionIndex = v.ResolutionIndex
			systems.ApplyWindowSettings(st)
			systems.SaveCurrentSettings(st)
		},
	})
	if err != nil {
		s.err = fmt.Errorf("configuring arena scene: %w", err)
		return
	}
	// Publish the world only once both halves exist; Draw checks ready().
	s.ecs = e
	s.screens = screens

	if cfg.Debug.SkipMenu {
		systems.StartSession(s.ecs)
	}
	slog.Info("arena ready", "arena", s.layout.Name, "routes", len(s.layout.Routes), "boxes", len(s.layout.CakeBoxes))
}
