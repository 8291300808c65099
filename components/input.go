package components

import (
	cfg "github.com/nhawngkun/Chirpy-Winged/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions plus the two analog sticks. Stick axes follow the screen: +X is
// right and +Y is down.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	MoveX, MoveY    float64
	AimX, AimY      float64
	LastInputMethod InputMethod
}

// Action returns the temporal state of an action.
func (i *InputData) Action(a cfg.ActionID) ActionState {
	return ActionState{
		Pressed:      i.Current[a],
		JustPressed:  i.Current[a] && !i.Previous[a],
		JustReleased: !i.Current[a] && i.Previous[a],
	}
}

var Input = donburi.NewComponentType[InputData]()
