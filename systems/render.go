package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/nhawngkun/Chirpy-Winged/assets"
	"github.com/nhawngkun/Chirpy-Winged/components"
	cfg "github.com/nhawngkun/Chirpy-Winged/config"
	"github.com/nhawngkun/Chirpy-Winged/fonts"
	"github.com/nhawngkun/Chirpy-Winged/shared/gamemath"
	"github.com/nhawngkun/Chirpy-Winged/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// view maps arena positions to screen pixels: the map is centered on the
// screen and shifted by any running screen shake. Height lifts a point
// toward the top of the screen.
type view struct {
	layout *assets.Arena
	offX   float64
	offY   float64
}

func newView(w donburi.World, screen *ebiten.Image) (view, bool) {
	entry, ok := components.Arena.First(w)
	if !ok {
		return view{}, false
	}
	layout := components.Arena.Get(entry).Layout
	shakeX, shakeY := ScreenShakeOffset(w)
	return view{
		layout: layout,
		offX:   float64(screen.Bounds().Dx()-layout.PixelWidth)/2 + shakeX,
		offY:   float64(screen.Bounds().Dy()-layout.PixelHeight)/2 + shakeY,
	}, true
}

func (v view) point(p gamemath.Vec3) (float32, float32) {
	x, y := v.layout.ToPixels(p)
	return float32(x + v.offX), float32(y + v.offY - p.Y*v.layout.PixelsPerUnit)
}

func (v view) shadow(p gamemath.Vec3) (float32, float32) {
	return v.point(p.Flat())
}

func (v view) units(u float64) float32 {
	return float32(u * v.layout.PixelsPerUnit)
}

// DrawArena renders the floor disk, its rim and, in debug mode, the chef
// routes.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Palette.Background)

	v, ok := newView(ecs.World, screen)
	if !ok {
		return
	}
	radius := v.layout.Radius
	if entry, ok := components.Boundary.First(ecs.World); ok {
		radius = components.Boundary.Get(entry).Radius
	}
	cx, cy := v.point(gamemath.Vec3{})
	r := v.units(radius)
	vector.FillCircle(screen, cx, cy, r, cfg.Palette.Floor, true)
	vector.StrokeCircle(screen, cx, cy, r, 3, cfg.Palette.Rim, true)

	if cfg.Debug.DrawRoutes {
		for _, route := range v.layout.Routes {
			x0, y0 := v.point(route.Start)
			x1, y1 := v.point(route.End)
			vector.StrokeLine(screen, x0, y0, x1, y1, 1, cfg.Palette.Route, false)
		}
	}
}

// DrawEntities renders every gameplay entity back to front: boxes, ground
// cakes, chefs, the player, then cakes in flight.
func DrawEntities(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs.World, screen)
	if !ok {
		return
	}

	tags.CakeBox.Each(ecs.World, func(e *donburi.Entry) {
		drawCakeBox(v, screen, e)
	})

	tags.Cake.Each(ecs.World, func(e *donburi.Entry) {
		transform := components.Transform.Get(e)
		p := transform.Position
		p.Y += CakeBob(components.Cake.Get(e))
		drawDisc(v, screen, transform.Position, p, cfg.Cake.Radius*transform.Scale, cfg.Palette.Cake)
	})

	tags.Chef.Each(ecs.World, func(e *donburi.Entry) {
		transform := components.Transform.Get(e)
		drawDisc(v, screen, transform.Position, transform.Position, cfg.Chef.Radius*transform.Scale, cfg.Palette.Chef)
		drawHeading(v, screen, transform, cfg.Chef.Radius, cfg.Palette.Background)
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		drawPlayer(v, screen, e)
	})

	tags.ThrownCake.Each(ecs.World, func(e *donburi.Entry) {
		transform := components.Transform.Get(e)
		drawDisc(v, screen, transform.Position, transform.Position, cfg.Cake.Radius*transform.Scale, cfg.Palette.Cake)
	})

	drawPopups(ecs, v, screen)
}

func drawCakeBox(v view, screen *ebiten.Image, e *donburi.Entry) {
	transform := components.Transform.Get(e)
	wanderer := components.Wanderer.Get(e)

	p := transform.Position
	p.Y += wanderer.BounceOffset
	half := v.units(cfg.CakeBox.Radius * transform.Scale)
	sx, sy := v.shadow(transform.Position)
	vector.FillCircle(screen, sx, sy, half, shadowColor, true)

	x, y := v.point(p)
	clr := cfg.Palette.CakeBox
	if e.HasComponent(components.Highlight) {
		clr = cfg.Palette.Highlight
	}
	vector.FillRect(screen, x-half, y-half, half*2, half*2, clr, false)
}

var shadowColor = color.RGBA{A: 60}

func drawDisc(v view, screen *ebiten.Image, ground, p gamemath.Vec3, radius float64, clr color.Color) {
	if radius <= 0 {
		return
	}
	r := v.units(radius)
	sx, sy := v.shadow(ground)
	vector.FillCircle(screen, sx, sy, r, shadowColor, true)
	x, y := v.point(p)
	vector.FillCircle(screen, x, y, r, clr, true)
}

func drawHeading(v view, screen *ebiten.Image, transform *components.TransformData, radius float64, clr color.Color) {
	x, y := v.point(transform.Position)
	tip := transform.Position.Add(gamemath.FromAngle(transform.Heading).Scale(radius * transform.Scale))
	tx, ty := v.point(tip)
	vector.StrokeLine(screen, x, y, tx, ty, 2, clr, true)
}

func drawPlayer(v view, screen *ebiten.Image, e *donburi.Entry) {
	transform := components.Transform.Get(e)
	health := components.Health.Get(e)
	carrier := components.Carrier.Get(e)

	scale := transform.Scale
	if health.Invincible {
		scale *= components.Pulse.Get(e).Scale
		// Blink at 10Hz while invincible.
		if int(health.InvincibleTimer*10)%2 == 1 {
			return
		}
	}

	drawDisc(v, screen, transform.Position, transform.Position, cfg.Player.Radius*scale, cfg.Palette.Player)
	drawHeading(v, screen, transform, cfg.Player.Radius, cfg.Palette.Background)

	if !carrier.Holding {
		return
	}
	held := ThrowPoint(transform.Position, transform.Heading)
	x, y := v.point(held)
	vector.FillCircle(screen, x, y, v.units(cfg.Cake.Radius), cfg.Palette.Cake, true)

	if carrier.AimVisible {
		drawAim(v, screen, transform.Position, carrier.Aim)
	}
}

// drawAim draws the aim line with an arrow head at ArrowDistance.
func drawAim(v view, screen *ebiten.Image, from, aim gamemath.Vec3) {
	x0, y0 := v.point(from)
	end := from.Add(aim.Scale(cfg.Pickup.LineLength))
	x1, y1 := v.point(end)
	vector.StrokeLine(screen, x0, y0, x1, y1, 1, cfg.Palette.Aim, true)

	head := from.Add(aim.Scale(cfg.Pickup.ArrowDistance))
	hx, hy := v.point(head)
	heading := aim.Heading()
	for _, side := range []float64{-1, 1} {
		wing := head.Add(gamemath.FromAngle(heading + math.Pi - side*0.5).Scale(0.4))
		wx, wy := v.point(wing)
		vector.StrokeLine(screen, hx, hy, wx, wy, 2, cfg.Palette.Aim, true)
	}
}

func drawPopups(ecs *ecs.ECS, v view, screen *ebiten.Image) {
	if !fonts.Loaded(fonts.Bold) {
		return
	}
	face := fonts.Bold.Get()
	components.Popup.Each(ecs.World, func(e *donburi.Entry) {
		popup := components.Popup.Get(e)
		x, y := v.point(popup.Position)
		text.Draw(screen, popup.Text, face, int(x)-8, int(float64(y)-popup.Offset), cfg.HUD.TextColor)
	})
}
