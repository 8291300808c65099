package config

// Render layers, drawn in ascending order.
const (
	Default = iota
	Overlay
)
