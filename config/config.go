package config

import "image/color"

// Config holds the logical screen size.
type Config struct {
	Width  int
	Height int
	// TPS is the fixed simulation rate; every system advances by 1/TPS seconds.
	TPS int
}

// DeltaTime is the fixed step in seconds.
func (c *Config) DeltaTime() float64 {
	return 1 / float64(c.TPS)
}

// ArenaConfig maps arena units to the screen and the collision space.
type ArenaConfig struct {
	MapPath       string  `yaml:"map_path"`
	PixelsPerUnit float64 `yaml:"pixels_per_unit"`
	CellSize      int     `yaml:"cell_size"` // resolv cell size in pixels
}

// BoundaryConfig contains the circular play area settings.
type BoundaryConfig struct {
	// Radius replaces the arena map's boundary radius when positive.
	Radius           float64 `yaml:"radius"`
	PushBackStrength float64 `yaml:"push_back_strength"`
	SmoothPushBack   bool    `yaml:"smooth_push_back"`
}

// PlayerConfig contains player movement values.
type PlayerConfig struct {
	MoveSpeed   float64 `yaml:"move_speed"`
	RotateSpeed float64 `yaml:"rotate_speed"`
	Deadzone    float64 `yaml:"deadzone"`
	Radius      float64 `yaml:"radius"`
}

// WandererConfig contains the cake box roaming behaviour.
type WandererConfig struct {
	MoveInterval      float64 `yaml:"move_interval"`
	MinInterval       float64 `yaml:"min_interval"`
	MinDistance       float64 `yaml:"min_distance"`
	MaxDistance       float64 `yaml:"max_distance"`
	MoveDuration      float64 `yaml:"move_duration"`
	MinTargetDistance float64 `yaml:"min_target_distance"` // shorter candidates are rejected
	RetryLead         float64 `yaml:"retry_lead"`          // a rejected attempt retries this much earlier
	RotateDuration    float64 `yaml:"rotate_duration"`
	BounceHeight      float64 `yaml:"bounce_height"`
	BounceDuration    float64 `yaml:"bounce_duration"`
}

// ChefConfig contains path walker values.
type ChefConfig struct {
	MoveSpeed         float64 `yaml:"move_speed"`
	RotateSpeed       float64 `yaml:"rotate_speed"`
	ReachDistance     float64 `yaml:"reach_distance"`
	DropChance        float64 `yaml:"drop_chance"`
	DropHeight        float64 `yaml:"drop_height"`
	MinDrop           int     `yaml:"min_drop"`
	MaxDrop           int     `yaml:"max_drop"`
	DropCheckInterval float64 `yaml:"drop_check_interval"`
	DropSpreadRadius  float64 `yaml:"drop_spread_radius"`
	DropOnPath        bool    `yaml:"drop_on_path"`
	PathJitter        float64 `yaml:"path_jitter"`
	Radius            float64 `yaml:"radius"`
	DestroyDuration   float64 `yaml:"destroy_duration"`
}

// SpawnerConfig contains the chef spawn timing and difficulty ramp.
type SpawnerConfig struct {
	InitialInterval    float64 `yaml:"initial_interval"`
	MinInterval        float64 `yaml:"min_interval"`
	IntervalDecrease   float64 `yaml:"interval_decrease"`
	InitialMaxEntities int     `yaml:"initial_max_entities"`
	MaxMaxEntities     int     `yaml:"max_max_entities"`
	RampInterval       float64 `yaml:"ramp_interval"`
}

// PickupConfig contains the carry and throw values.
type PickupConfig struct {
	PickupRadius     float64 `yaml:"pickup_radius"`
	ThrowForce       float64 `yaml:"throw_force"`
	ThrowHeight      float64 `yaml:"throw_height"`
	ThrowThreshold   float64 `yaml:"throw_threshold"`
	AimDeadzone      float64 `yaml:"aim_deadzone"`
	Cooldown         float64 `yaml:"cooldown"`
	ForceDropLockout float64 `yaml:"force_drop_lockout"`
	ReleaseHeight    float64 `yaml:"release_height"`
	ReleaseForward   float64 `yaml:"release_forward"`
	ArrowDistance    float64 `yaml:"arrow_distance"`
	LineLength       float64 `yaml:"line_length"`
}

// CakeConfig contains ground and thrown cake values.
type CakeConfig struct {
	Radius          float64 `yaml:"radius"`
	Lifetime        float64 `yaml:"lifetime"`
	ScaleInDuration float64 `yaml:"scale_in_duration"`
	BobHeight       float64 `yaml:"bob_height"`
	BobSpeed        float64 `yaml:"bob_speed"`
	ThrownLifetime  float64 `yaml:"thrown_lifetime"`
	Gravity         float64 `yaml:"gravity"`
}

// HealthConfig contains player health values.
type HealthConfig struct {
	Max                   int     `yaml:"max"`
	InvincibilityDuration float64 `yaml:"invincibility_duration"`
	PulseMin              float64 `yaml:"pulse_min"`
	PulseMax              float64 `yaml:"pulse_max"`
	PulseDuration         float64 `yaml:"pulse_duration"`
	DefeatDuration        float64 `yaml:"defeat_duration"`
}

// CakeBoxConfig contains scoring target values.
type CakeBoxConfig struct {
	Radius                 float64 `yaml:"radius"`
	HighlightDuration      float64 `yaml:"highlight_duration"`
	PunchScale             float64 `yaml:"punch_scale"`
	PunchDuration          float64 `yaml:"punch_duration"`
	AllowPlayerWalkThrough bool    `yaml:"allow_player_walk_through"`
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	DamageIntensity float64 // pixels
	DamageDuration  float64 // seconds
}

// HUDConfig contains gameplay overlay values.
type HUDConfig struct {
	CakeTextFormat   string
	HealthTextFormat string
	TextColor        color.RGBA
	HealthColor      color.RGBA
	HealthLostColor  color.RGBA
	Margin           float64
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// PaletteConfig holds the arena draw colors.
type PaletteConfig struct {
	Background color.RGBA
	Floor      color.RGBA
	Rim        color.RGBA
	Player     color.RGBA
	Chef       color.RGBA
	Cake       color.RGBA
	CakeBox    color.RGBA
	Highlight  color.RGBA
	Aim        color.RGBA
	Route      color.RGBA
}

// DebugConfig contains debug/development settings
type DebugConfig struct {
	SkipMenu   bool
	DrawRoutes bool
	// Overlay draws broadphase boxes and spawner counters.
	Overlay bool
}

var (
	C           *Config
	Arena       ArenaConfig
	Boundary    BoundaryConfig
	Player      PlayerConfig
	Wanderer    WandererConfig
	Chef        ChefConfig
	Spawner     SpawnerConfig
	Pickup      PickupConfig
	Cake        CakeConfig
	Health      HealthConfig
	CakeBox     CakeBoxConfig
	ScreenShake ScreenShakeConfig
	HUD         HUDConfig
	Pause       PauseConfig
	Palette     PaletteConfig
	Debug       DebugConfig
)

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	Pink         = color.RGBA{R: 255, G: 150, B: 190, A: 255}
	Cream        = color.RGBA{R: 250, G: 230, B: 190, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Arena = ArenaConfig{
		MapPath:       "arena/arena.tmx",
		PixelsPerUnit: 16,
		CellSize:      16,
	}

	Boundary = BoundaryConfig{
		Radius:           0,
		PushBackStrength: 2,
		SmoothPushBack:   true,
	}

	Player = PlayerConfig{
		MoveSpeed:   8,
		RotateSpeed: 15,
		Deadzone:    0.1,
		Radius:      0.5,
	}

	Wanderer = WandererConfig{
		MoveInterval:      2,
		MinInterval:       0.5,
		MinDistance:       3,
		MaxDistance:       8,
		MoveDuration:      1.5,
		MinTargetDistance: 1,
		RetryLead:         0.5,
		RotateDuration:    0.3,
		BounceHeight:      0.3,
		BounceDuration:    0.3,
	}

	Chef = ChefConfig{
		MoveSpeed:         5,
		RotateSpeed:       10,
		ReachDistance:     1,
		DropChance:        0.8,
		DropHeight:        1,
		MinDrop:           2,
		MaxDrop:           4,
		DropCheckInterval: 0.3,
		DropSpreadRadius:  1.5,
		DropOnPath:        true,
		PathJitter:        0.3,
		Radius:            0.5,
		DestroyDuration:   0.3,
	}

	Spawner = SpawnerConfig{
		InitialInterval:    3,
		MinInterval:        0.5,
		IntervalDecrease:   0.1,
		InitialMaxEntities: 2,
		MaxMaxEntities:     10,
		RampInterval:       10,
	}

	Pickup = PickupConfig{
		PickupRadius:     1.5,
		ThrowForce:       15,
		ThrowHeight:      3,
		ThrowThreshold:   0.3,
		AimDeadzone:      0.1,
		Cooldown:         0.5,
		ForceDropLockout: 0.5,
		ReleaseHeight:    2,
		ReleaseForward:   0.5,
		ArrowDistance:    2,
		LineLength:       5,
	}

	Cake = CakeConfig{
		Radius:          0.3,
		Lifetime:        7,
		ScaleInDuration: 0.3,
		BobHeight:       0.25,
		BobSpeed:        2,
		ThrownLifetime:  10,
		Gravity:         9.81,
	}

	Health = HealthConfig{
		Max:                   3,
		InvincibilityDuration: 1.5,
		PulseMin:              0.85,
		PulseMax:              1.15,
		PulseDuration:         0.2,
		DefeatDuration:        0.5,
	}

	CakeBox = CakeBoxConfig{
		Radius:                 0.8,
		HighlightDuration:      0.3,
		PunchScale:             1.3,
		PunchDuration:          0.4,
		AllowPlayerWalkThrough: true,
	}

	ScreenShake = ScreenShakeConfig{
		DamageIntensity: 4.0,
		DamageDuration:  0.15,
	}

	HUD = HUDConfig{
		CakeTextFormat:   "%d",
		HealthTextFormat: "HP: %d/%d",
		TextColor:        White,
		HealthColor:      LightRed,
		HealthLostColor:  DarkGray,
		Margin:           10,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Restart", "Home"},
	}

	Palette = PaletteConfig{
		Background: color.RGBA{R: 30, G: 45, B: 60, A: 255},
		Floor:      color.RGBA{R: 120, G: 190, B: 120, A: 255},
		Rim:        Cream,
		Player:     color.RGBA{R: 250, G: 210, B: 60, A: 255},
		Chef:       White,
		Cake:       Pink,
		CakeBox:    color.RGBA{R: 170, G: 110, B: 60, A: 255},
		Highlight:  BrightGreen,
		Aim:        Orange,
		Route:      color.RGBA{R: 255, G: 255, B: 255, A: 60},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
	}
}
