package assets

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadArena_Embedded(t *testing.T) {
	a, err := LoadArena(assetFS, "arena/arena.tmx", 16)
	require.NoError(t, err)

	assert.InDelta(t, 10, a.Radius, 1e-9)
	assert.Equal(t, 320.0, a.Center.X)
	assert.Equal(t, 176.0, a.Center.Y)
	require.Len(t, a.Routes, 4)
	assert.Len(t, a.CakeBoxes, 2)

	westEast := a.Routes[0]
	assert.Equal(t, "west_east", westEast.Name)
	assert.True(t, westEast.Bidirectional)
	assert.InDelta(t, -18.5, westEast.Start.X, 1e-9)
	assert.InDelta(t, 18.5, westEast.End.X, 1e-9)
	assert.InDelta(t, 0, westEast.Start.Z, 1e-9)

	assert.False(t, a.Routes[2].Bidirectional)
	assert.InDelta(t, 4, a.PlayerSpawn.Z, 1e-9)
}

func TestLoadArena_RoutesStartOutsideBoundary(t *testing.T) {
	a := MustLoadArena("arena/arena.tmx", 16)
	for _, r := range a.Routes {
		assert.Greater(t, r.Start.FlatLen(), a.Radius, r.Name)
		assert.Greater(t, r.End.FlatLen(), a.Radius, r.Name)
	}
}

func TestLoadArena_MissingBoundary(t *testing.T) {
	fsys := fstest.MapFS{
		"empty.tmx": &fstest.MapFile{Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="PlayerSpawn">
  <object id="1" x="8" y="8"><point/></object>
 </objectgroup>
</map>`)},
	}

	_, err := LoadArena(fsys, "empty.tmx", 16)
	assert.ErrorIs(t, err, ErrNoBoundary)
}

func TestToPixels(t *testing.T) {
	a := MustLoadArena("arena/arena.tmx", 16)
	x, y := a.ToPixels(a.PlayerSpawn)
	assert.Equal(t, 320.0, x)
	assert.Equal(t, 240.0, y)
}
