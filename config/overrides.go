package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning groups every gameplay value that can be overridden from a YAML file.
type Tuning struct {
	Arena    ArenaConfig    `yaml:"arena"`
	Boundary BoundaryConfig `yaml:"boundary"`
	Player   PlayerConfig   `yaml:"player"`
	Wanderer WandererConfig `yaml:"wanderer"`
	Chef     ChefConfig     `yaml:"chef"`
	Spawner  SpawnerConfig  `yaml:"spawner"`
	Pickup   PickupConfig   `yaml:"pickup"`
	Cake     CakeConfig     `yaml:"cake"`
	Health   HealthConfig   `yaml:"health"`
	CakeBox  CakeBoxConfig  `yaml:"cake_box"`
}

// CurrentTuning snapshots the active global values.
func CurrentTuning() Tuning {
	return Tuning{
		Arena:    Arena,
		Boundary: Boundary,
		Player:   Player,
		Wanderer: Wanderer,
		Chef:     Chef,
		Spawner:  Spawner,
		Pickup:   Pickup,
		Cake:     Cake,
		Health:   Health,
		CakeBox:  CakeBox,
	}
}

// Apply replaces the active global values.
func (t Tuning) Apply() {
	Arena = t.Arena
	Boundary = t.Boundary
	Player = t.Player
	Wanderer = t.Wanderer
	Chef = t.Chef
	Spawner = t.Spawner
	Pickup = t.Pickup
	Cake = t.Cake
	Health = t.Health
	CakeBox = t.CakeBox
}

// Validate checks the ranges the simulation relies on.
func (t Tuning) Validate() error {
	switch {
	case t.Boundary.Radius < 0:
		return fmt.Errorf("%w: boundary radius must not be negative", ErrInvalidTuning)
	case t.Wanderer.MinDistance > t.Wanderer.MaxDistance:
		return fmt.Errorf("%w: wanderer min_distance exceeds max_distance", ErrInvalidTuning)
	case t.Chef.MinDrop > t.Chef.MaxDrop:
		return fmt.Errorf("%w: chef min_drop exceeds max_drop", ErrInvalidTuning)
	case t.Chef.DropCheckInterval <= 0:
		return fmt.Errorf("%w: chef drop_check_interval must be positive", ErrInvalidTuning)
	case t.Spawner.MinInterval > t.Spawner.InitialInterval:
		return fmt.Errorf("%w: spawner min_interval exceeds initial_interval", ErrInvalidTuning)
	case t.Spawner.InitialMaxEntities > t.Spawner.MaxMaxEntities:
		return fmt.Errorf("%w: spawner initial_max_entities exceeds max_max_entities", ErrInvalidTuning)
	case t.Health.Max <= 0:
		return fmt.Errorf("%w: health max must be positive", ErrInvalidTuning)
	}
	return nil
}

// LoadOverrides reads a YAML file on top of the current values and applies
// the result. Keys absent from the file keep their defaults.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading tuning %s: %w", path, err)
	}
	return ApplyOverrides(data)
}

// ApplyOverrides is LoadOverrides for an in-memory document.
func ApplyOverrides(data []byte) error {
	t := CurrentTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("parsing tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return err
	}
	t.Apply()
	return nil
}
