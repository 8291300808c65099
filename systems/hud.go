package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/nhawngkun/Chirpy-Winged/components"
	cfg "github.com/nhawngkun/Chirpy-Winged/config"
	"github.com/nhawngkun/Chirpy-Winged/fonts"
	"github.com/nhawngkun/Chirpy-Winged/tags"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const (
	hudPipSize = 12
	hudPipGap  = 4
)

// DrawHUD renders health pips in the top-left corner and the cake count in
// the top-right while a round is running.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !IsPlaying(ecs) {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)
	margin := float32(cfg.HUD.Margin)

	for i := 0; i < hp.Max; i++ {
		clr := cfg.HUD.HealthLostColor
		if i < hp.Current {
			clr = cfg.HUD.HealthColor
		}
		x := margin + float32(i*(hudPipSize+hudPipGap))
		vector.FillRect(screen, x, margin, hudPipSize, hudPipSize, clr, false)
	}

	face := fonts.Bold.Get()
	label := fmt.Sprintf(cfg.HUD.CakeTextFormat, Score(ecs.World))
	width := font.MeasureString(face, label).Ceil()
	x := screen.Bounds().Dx() - int(margin) - width
	text.Draw(screen, label, face, x, int(margin)+face.Metrics().Ascent.Ceil(), cfg.HUD.TextColor)

	small := fonts.Small.Get()
	hpLabel := fmt.Sprintf(cfg.HUD.HealthTextFormat, hp.Current, hp.Max)
	text.Draw(screen, hpLabel, small, int(margin), int(margin)+hudPipSize+small.Metrics().Ascent.Ceil()+hudPipGap, cfg.HUD.TextColor)
}
