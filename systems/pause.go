package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/nhawngkun/Chirpy-Winged/components"
	cfg "github.com/nhawngkun/Chirpy-Winged/config"
	"github.com/nhawngkun/Chirpy-Winged/fonts"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles pause toggle and menu navigation.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	// Pausing only makes sense mid-round.
	if !IsPlaying(ecs) {
		pause.IsPaused = false
		return
	}

	if GetAction(input, cfg.ActionPause).JustPressed {
		SetPaused(ecs, !pause.IsPaused)
	}

	if !pause.IsPaused {
		return
	}

	// Navigate menu with wrap-around using modulo arithmetic
	numOptions := int(components.MenuHome) + 1
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
		)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) + 1) % numOptions,
		)
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		SelectPauseOption(ecs, pause.SelectedOption)
	}
}

// SetPaused freezes or resumes gameplay. Opening the menu always lands on
// Resume.
func SetPaused(ecs *ecs.ECS, paused bool) {
	pause := GetOrCreatePause(ecs)
	pause.IsPaused = paused
	if paused {
		pause.SelectedOption = components.MenuResume
	}
}

// SelectPauseOption runs a pause menu entry.
func SelectPauseOption(ecs *ecs.ECS, option components.PauseMenuOption) {
	pause := GetOrCreatePause(ecs)
	pause.IsPaused = false
	switch option {
	case components.MenuRestart:
		ResetSession(ecs)
	case components.MenuHome:
		GoHome(ecs)
	}
}

// DrawPause renders the pause overlay and menu.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)

	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	menuOptions := cfg.Pause.MenuOptions
	totalMenuHeight := float64(len(menuOptions)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height - totalMenuHeight) / 2

	fontFace := fonts.Bold.Get()

	for i, option := range menuOptions {
		y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

		textColor := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}

		// Center text horizontally (approximate width calculation for 20pt font)
		textWidth := len(option) * 12
		x := int((width - float64(textWidth)) / 2)

		text.Draw(screen, option, fontFace, x, int(y)+int(cfg.Pause.MenuItemHeight), textColor)
	}

	input := getOrCreateInput(ecs)
	hint := getPauseHint(input.LastInputMethod)
	hintFont := fonts.Small.Get()
	hintWidth := len(hint) * 7
	hintX := int((width - float64(hintWidth)) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(height)-12, cfg.Pause.TextColorNormal)
}

func getPauseHint(method components.InputMethod) string {
	if method == components.InputGamepad {
		return "D-Pad: Navigate   A: Select   Start: Resume"
	}
	return "Arrows: Navigate   Enter: Select   Esc: Resume"
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			IsPaused:       false,
			SelectedOption: components.MenuResume,
		})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
