package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionAimLeft
	ActionAimRight
	ActionAimUp
	ActionAimDown
	ActionPause
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionCount // Must be last - used for array sizing
)

// InputConfig holds analog stick tuning. Key and button bindings live with
// the input system.
type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.1,
	}
}
