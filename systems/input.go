package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nhawngkun/Chirpy-Winged/components"
	cfg "github.com/nhawngkun/Chirpy-Winged/config"
	"github.com/yohamta/donburi/ecs"
)

// InputBinding maps an action to keyboard keys and standard gamepad buttons.
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings is the action map polled every frame. Movement and aim on the
// keyboard are digital; on a gamepad the sticks feed the analog axes.
var Bindings = map[cfg.ActionID]InputBinding{
	cfg.ActionMoveLeft:  {Keys: []ebiten.Key{ebiten.KeyA}},
	cfg.ActionMoveRight: {Keys: []ebiten.Key{ebiten.KeyD}},
	cfg.ActionMoveUp:    {Keys: []ebiten.Key{ebiten.KeyW}},
	cfg.ActionMoveDown:  {Keys: []ebiten.Key{ebiten.KeyS}},
	cfg.ActionAimLeft:   {Keys: []ebiten.Key{ebiten.KeyArrowLeft}},
	cfg.ActionAimRight:  {Keys: []ebiten.Key{ebiten.KeyArrowRight}},
	cfg.ActionAimUp:     {Keys: []ebiten.Key{ebiten.KeyArrowUp}},
	cfg.ActionAimDown:   {Keys: []ebiten.Key{ebiten.KeyArrowDown}},
	cfg.ActionPause: {
		Keys:                   []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	cfg.ActionMenuUp: {
		Keys:                   []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	cfg.ActionMenuDown: {
		Keys:                   []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	cfg.ActionMenuSelect: {
		Keys:                   []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input into the Input singleton.
// Must run BEFORE UpdatePlayer and UpdatePickup in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	input.MoveX = axis(input, cfg.ActionMoveLeft, cfg.ActionMoveRight)
	input.MoveY = axis(input, cfg.ActionMoveUp, cfg.ActionMoveDown)
	input.AimX = axis(input, cfg.ActionAimLeft, cfg.ActionAimRight)
	input.AimY = axis(input, cfg.ActionAimUp, cfg.ActionAimDown)

	if readSticks(input, gamepadIDs) {
		gamepadUsed = true
	}

	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// axis folds two digital actions into -1, 0 or 1.
func axis(input *components.InputData, negative, positive cfg.ActionID) float64 {
	v := 0.0
	if input.Current[negative] {
		v--
	}
	if input.Current[positive] {
		v++
	}
	return v
}

// readSticks overrides the digital axes with the first gamepad whose stick is
// outside the deadzone. Reports whether any stick was used.
func readSticks(input *components.InputData, gamepads []ebiten.GamepadID) bool {
	deadzone := cfg.Input.AnalogDeadzone
	used := false
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		lx := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > deadzone {
			input.MoveX, input.MoveY = lx, ly
			used = true
		}

		rx := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(rx, ry) > deadzone {
			input.AimX, input.AimY = rx, ry
			used = true
		}

		// Sticks double as menu navigation.
		if ly < -0.5 {
			input.Current[cfg.ActionMenuUp] = true
		}
		if ly > 0.5 {
			input.Current[cfg.ActionMenuDown] = true
		}
		if used {
			return true
		}
	}
	return used
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// SetAxes writes analog movement and aim directly, bypassing device polling.
// Used by headless runs that script the player.
func SetAxes(ecs *ecs.ECS, moveX, moveY, aimX, aimY float64) {
	input := getOrCreateInput(ecs)
	input.MoveX, input.MoveY = moveX, moveY
	input.AimX, input.AimY = aimX, aimY
}

// GetAction returns the full ActionState for an action ID.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	return input.Action(id)
}
