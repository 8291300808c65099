package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/lafriks/go-tiled"
	"github.com/nhawngkun/Chirpy-Winged/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

var (
	//go:embed all:arena
	assetFS embed.FS
)

var (
	ErrNoBoundary = errors.New("arena has no boundary")
	ErrNoRoutes   = errors.New("arena has no chef routes")
)

// Route is a straight chef path between two points in arena units.
type Route struct {
	Name          string
	Start         gamemath.Vec3
	End           gamemath.Vec3
	Bidirectional bool
}

// Arena is the static layout of the play area, converted to arena units with
// the boundary center at the origin.
type Arena struct {
	Name          string
	Radius        float64
	Routes        []Route
	CakeBoxes     []gamemath.Vec3
	PlayerSpawn   gamemath.Vec3
	PixelWidth    int
	PixelHeight   int
	PixelsPerUnit float64
	// Center is the boundary center in map pixels.
	Center math.Vec2
}

// LoadEmbeddedArena loads an arena map bundled with the binary.
func LoadEmbeddedArena(path string, pixelsPerUnit float64) (*Arena, error) {
	return LoadArena(assetFS, path, pixelsPerUnit)
}

// MustLoadArena loads an embedded arena map or panics.
func MustLoadArena(path string, pixelsPerUnit float64) *Arena {
	a, err := LoadEmbeddedArena(path, pixelsPerUnit)
	if err != nil {
		panic(err)
	}
	return a
}

// LoadArena parses a Tiled map from fsys. The map needs an object group named
// "Boundary" holding an ellipse; "ChefRoutes", "CakeBoxes" and "PlayerSpawn"
// are read when present.
func LoadArena(fsys fs.FS, path string, pixelsPerUnit float64) (*Arena, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("loading arena %s: %w", path, err)
	}

	arena := &Arena{
		Name:          path,
		PixelWidth:    levelMap.Width * levelMap.TileWidth,
		PixelHeight:   levelMap.Height * levelMap.TileHeight,
		PixelsPerUnit: pixelsPerUnit,
	}

	// Boundary first: every other position is relative to its center.
	foundBoundary := false
	for _, og := range levelMap.ObjectGroups {
		if og.Name != "Boundary" || len(og.Objects) == 0 {
			continue
		}
		o := og.Objects[0]
		arena.Center = math.Vec2{X: o.X + o.Width/2, Y: o.Y + o.Height/2}
		arena.Radius = o.Width / 2 / pixelsPerUnit
		foundBoundary = arena.Radius > 0
	}
	if !foundBoundary {
		return nil, fmt.Errorf("loading arena %s: %w", path, ErrNoBoundary)
	}

	toArena := func(x, y float64) gamemath.Vec3 {
		return gamemath.Vec3{
			X: (x - arena.Center.X) / pixelsPerUnit,
			Z: (y - arena.Center.Y) / pixelsPerUnit,
		}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "ChefRoutes":
			for _, o := range og.Objects {
				if len(o.PolyLines) == 0 {
					continue
				}
				polyline := o.PolyLines[0]
				if polyline.Points == nil || len(*polyline.Points) < 2 {
					slog.Warn("skipping route with fewer than two points", "route", o.Name)
					continue
				}
				points := *polyline.Points
				first, last := points[0], points[len(points)-1]
				arena.Routes = append(arena.Routes, Route{
					Name:          o.Name,
					Start:         toArena(o.X+first.X, o.Y+first.Y),
					End:           toArena(o.X+last.X, o.Y+last.Y),
					Bidirectional: o.Properties.GetBool("bidirectional"),
				})
			}
		case "CakeBoxes":
			for _, o := range og.Objects {
				arena.CakeBoxes = append(arena.CakeBoxes, toArena(o.X, o.Y))
			}
		case "PlayerSpawn":
			if len(og.Objects) > 0 {
				arena.PlayerSpawn = toArena(og.Objects[0].X, og.Objects[0].Y)
			}
		}
	}

	return arena, nil
}

// ToPixels converts an arena position to map pixel coordinates.
func (a *Arena) ToPixels(p gamemath.Vec3) (x, y float64) {
	return a.Center.X + p.X*a.PixelsPerUnit, a.Center.Y + p.Z*a.PixelsPerUnit
}
