package ui

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/nhawngkun/Chirpy-Winged/config"
)

// Screen identifies which overlay is active.
type Screen int

const (
	ScreenNone Screen = iota
	ScreenHome
	ScreenGameplay
	ScreenLoss
	ScreenSettings
)

// Actions are the game operations the screens can trigger.
type Actions struct {
	Play     func()
	Restart  func()
	Home     func()
	Quit     func()
	Settings func() *SettingsValues
	Apply    func(SettingsValues)
}

// SettingsValues mirrors the user-editable settings.
type SettingsValues struct {
	MusicVolume     float64
	SFXVolume       float64
	Fullscreen      bool
	ResolutionIndex int
}

// Screens owns one ebitenui tree per overlay and switches between them.
type Screens struct {
	actions Actions
	theme   *theme
	active  Screen
	// back is the screen the settings overlay returns to.
	back Screen

	home     *ebitenui.UI
	gameplay *ebitenui.UI
	loss     *ebitenui.UI
	settings *ebitenui.UI

	homeBest  *widget.Label
	lossScore *widget.Label
	lossBest  *widget.Label

	musicButton      *widget.Button
	sfxButton        *widget.Button
	fullscreenButton *widget.Button
	resolutionButton *widget.Button
	values           SettingsValues
}

func NewScreens(actions Actions) (*Screens, error) {
	t, err := newTheme()
	if err != nil {
		return nil, err
	}
	s := &Screens{actions: actions, theme: t, active: ScreenHome}
	s.home = s.buildHome()
	s.gameplay = s.buildGameplay()
	s.loss = s.buildLoss()
	s.settings = s.buildSettings()
	return s, nil
}

func (s *Screens) Active() Screen { return s.active }

// Show switches overlays. Settings remembers where it was opened from.
func (s *Screens) Show(screen Screen) {
	if screen == ScreenSettings && s.active != ScreenSettings {
		s.back = s.active
		if s.actions.Settings != nil {
			if v := s.actions.Settings(); v != nil {
				s.values = *v
			}
		}
		s.refreshSettings()
	}
	s.active = screen
}

// SetScores refreshes the score labels on the home and loss screens.
func (s *Screens) SetScores(score, best int) {
	s.homeBest.Label = fmt.Sprintf("Best: %d", best)
	s.lossScore.Label = fmt.Sprintf("Cakes: %d", score)
	s.lossBest.Label = fmt.Sprintf("Best: %d", best)
}

func (s *Screens) current() *ebitenui.UI {
	switch s.active {
	case ScreenHome:
		return s.home
	case ScreenGameplay:
		return s.gameplay
	case ScreenLoss:
		return s.loss
	case ScreenSettings:
		return s.settings
	}
	return nil
}

func (s *Screens) Update() {
	if ui := s.current(); ui != nil {
		ui.Update()
	}
}

func (s *Screens) Draw(screen *ebiten.Image) {
	if ui := s.current(); ui != nil {
		ui.Draw(screen)
	}
}

func (s *Screens) call(f func()) func() {
	return func() {
		if f != nil {
			f()
		}
	}
}

func (s *Screens) buildHome() *ebitenui.UI {
	t := s.theme
	root := anchoredRoot()
	column := centeredColumn(true)

	column.AddChild(t.label("Chirpy Winged", &t.titleFace, accentColor))
	s.homeBest = t.label("Best: 0", &t.normalFace, subtleColor)
	column.AddChild(s.homeBest)
	column.AddChild(t.button("Play", 160, s.call(s.actions.Play)))
	column.AddChild(t.button("Settings", 160, func() { s.Show(ScreenSettings) }))
	column.AddChild(t.button("Quit", 160, s.call(s.actions.Quit)))
	column.AddChild(t.label("WASD move   Arrows aim, release to throw", &t.smallFace, subtleColor))

	root.AddChild(column)
	return &ebitenui.UI{Container: root}
}

// buildGameplay is a small button bar in the bottom-right corner.
func (s *Screens) buildGameplay() *ebitenui.UI {
	t := s.theme
	root := anchoredRoot()
	bar := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(int(cfg.HUD.Margin))),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	bar.AddChild(t.button("Reset", 70, s.call(s.actions.Restart)))
	bar.AddChild(t.button("Home", 70, s.call(s.actions.Home)))
	root.AddChild(bar)
	return &ebitenui.UI{Container: root}
}

func (s *Screens) buildLoss() *ebitenui.UI {
	t := s.theme
	root := anchoredRoot()
	column := centeredColumn(true)

	column.AddChild(t.label("Game Over", &t.titleFace, accentColor))
	s.lossScore = t.label("Cakes: 0", &t.normalFace, textColor)
	column.AddChild(s.lossScore)
	s.lossBest = t.label("Best: 0", &t.normalFace, subtleColor)
	column.AddChild(s.lossBest)
	column.AddChild(t.button("Retry", 160, s.call(s.actions.Restart)))
	column.AddChild(t.button("Home", 160, s.call(s.actions.Home)))

	root.AddChild(column)
	return &ebitenui.UI{Container: root}
}

func (s *Screens) buildSettings() *ebitenui.UI {
	t := s.theme
	root := anchoredRoot()
	column := centeredColumn(true)

	column.AddChild(t.label("Settings", &t.titleFace, accentColor))

	s.musicButton = t.button("", 220, func() {
		s.values.MusicVolume = nextVolume(s.values.MusicVolume)
		s.applySettings()
	})
	s.sfxButton = t.button("", 220, func() {
		s.values.SFXVolume = nextVolume(s.values.SFXVolume)
		s.applySettings()
	})
	s.fullscreenButton = t.button("", 220, func() {
		s.values.Fullscreen = !s.values.Fullscreen
		s.applySettings()
	})
	s.resolutionButton = t.button("", 220, func() {
		s.values.ResolutionIndex = (s.values.ResolutionIndex + 1) % len(cfg.SettingsMenu.Resolutions)
		s.applySettings()
	})
	column.AddChild(s.musicButton)
	column.AddChild(s.sfxButton)
	column.AddChild(s.fullscreenButton)
	column.AddChild(s.resolutionButton)
	column.AddChild(t.button("Back", 220, func() { s.Show(s.back) }))

	root.AddChild(column)
	return &ebitenui.UI{Container: root}
}

func (s *Screens) applySettings() {
	s.refreshSettings()
	if s.actions.Apply != nil {
		s.actions.Apply(s.values)
	}
}

func (s *Screens) refreshSettings() {
	s.musicButton.Text().Label = fmt.Sprintf("Music: %d%%", int(s.values.MusicVolume*100))
	s.sfxButton.Text().Label = fmt.Sprintf("Sound: %d%%", int(s.values.SFXVolume*100))
	mode := "Windowed"
	if s.values.Fullscreen {
		mode = "Fullscreen"
	}
	s.fullscreenButton.Text().Label = "Display: " + mode
	idx := s.values.ResolutionIndex
	if idx < 0 || idx >= len(cfg.SettingsMenu.Resolutions) {
		idx = cfg.SettingsMenu.DefaultResolutionIndex
	}
	s.resolutionButton.Text().Label = "Resolution: " + cfg.SettingsMenu.Resolutions[idx].Label
}

// nextVolume steps through the configured volume levels, wrapping to the
// first after the loudest.
func nextVolume(v float64) float64 {
	steps := cfg.SettingsMenu.VolumeSteps
	for _, step := range steps {
		if step > v+1e-9 {
			return step
		}
	}
	return steps[0]
}
