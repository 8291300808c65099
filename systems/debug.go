package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/nhawngkun/Chirpy-Winged/components"
	cfg "github.com/nhawngkun/Chirpy-Winged/config"
	"github.com/nhawngkun/Chirpy-Winged/tags"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	v, ok := newView(ecs.World, screen)
	if !ok {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)

		for _, obj := range space.Objects() {
			x := float32(obj.X + v.offX)
			y := float32(obj.Y + v.offY)

			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else if obj.HasTags(tags.ResolvChef) {
				c = color.RGBA{255, 0, 0, 255} // Red
			} else if obj.HasTags(tags.ResolvThrownCake) {
				c = color.RGBA{0, 255, 0, 255} // Green
			}

			vector.StrokeRect(screen, x, y, float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	stats := GetSpawnerStats(ecs.World)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  chefs %d/%d  interval %.2fs",
		ebiten.ActualTPS(), stats.Active, stats.Cap, stats.Interval), 4, screen.Bounds().Dy()-16)
}
