package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreTuning(t *testing.T) {
	t.Helper()
	saved := CurrentTuning()
	t.Cleanup(saved.Apply)
}

func TestApplyOverrides_PartialDocument(t *testing.T) {
	restoreTuning(t)

	err := ApplyOverrides([]byte("boundary:\n  radius: 14\nspawner:\n  min_interval: 1.5\n"))
	require.NoError(t, err)

	assert.Equal(t, 14.0, Boundary.Radius)
	assert.Equal(t, 2.0, Boundary.PushBackStrength, "unset keys keep defaults")
	assert.Equal(t, 1.5, Spawner.MinInterval)
	assert.Equal(t, 3.0, Spawner.InitialInterval)
}

func TestApplyOverrides_RejectsInvalid(t *testing.T) {
	restoreTuning(t)

	err := ApplyOverrides([]byte("boundary:\n  radius: -1\n"))
	require.ErrorIs(t, err, ErrInvalidTuning)
	assert.Zero(t, Boundary.Radius, "failed load leaves values untouched")
}

func TestApplyOverrides_BadYAML(t *testing.T) {
	restoreTuning(t)

	err := ApplyOverrides([]byte("boundary: [radius"))
	assert.Error(t, err)
}

func TestLoadOverrides_File(t *testing.T) {
	restoreTuning(t)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chef:\n  drop_chance: 0.25\n"), 0o600))

	require.NoError(t, LoadOverrides(path))
	assert.Equal(t, 0.25, Chef.DropChance)
}

func TestLoadOverrides_MissingFile(t *testing.T) {
	err := LoadOverrides(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
