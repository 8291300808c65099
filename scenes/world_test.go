package scenes

import (
	"testing"

	"github.com/nhawngkun/Chirpy-Winged/assets"
	cfg "github.com/nhawngkun/Chirpy-Winged/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestArenaScene_SetupFailureLeavesSceneUnready(t *testing.T) {
	layout := *assets.MustLoadArena(cfg.Arena.MapPath, cfg.Arena.PixelsPerUnit)
	layout.Routes = nil
	s := NewArenaScene(&layout, 1)

	err := s.Update()
	require.ErrorIs(t, err, assets.ErrNoRoutes)
	assert.False(t, s.ready())
	assert.Nil(t, s.ecs, "a failed setup publishes no world")

	assert.ErrorIs(t, s.Update(), assets.ErrNoRoutes, "the error sticks")
}

func TestArenaScene_WorldWithoutScreensIsNotReady(t *testing.T) {
	s := &ArenaScene{ecs: ecs.NewECS(donburi.NewWorld())}

	assert.False(t, s.ready(), "screens are still missing")
}
