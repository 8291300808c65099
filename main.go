package main

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nhawngkun/Chirpy-Winged/assets"
	"github.com/nhawngkun/Chirpy-Winged/config"
	"github.com/nhawngkun/Chirpy-Winged/fonts"
	"github.com/nhawngkun/Chirpy-Winged/scenes"
	"github.com/nhawngkun/Chirpy-Winged/shared/logging"
	"github.com/nhawngkun/Chirpy-Winged/systems"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	seed       int64
	skipMenu   bool
	debugDraw  bool
)

var rootCmd = &cobra.Command{
	Use:   "chirpy",
	Short: "Chirpy Winged arcade game",
	Long:  `Collect the cakes the chefs drop and throw them into the wandering boxes. Chefs hurt.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup(os.Stderr, logLevel)
		if configPath != "" {
			if err := config.LoadOverrides(configPath); err != nil {
				return err
			}
			slog.Info("tuning overrides loaded", "path", configPath)
		}
		if !cmd.Flags().Changed("seed") {
			seed = time.Now().UnixNano()
		}
		return nil
	},
	RunE:         runGame,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file overriding the default tuning")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", os.Getenv("LOG_LEVEL"), "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (default: time based)")
	rootCmd.Flags().BoolVar(&skipMenu, "skip-menu", false, "start a round immediately")
	rootCmd.Flags().BoolVar(&debugDraw, "debug", false, "draw collision boxes, routes and spawner counters")

	rootCmd.AddCommand(simCmd)
}

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(layout *assets.Arena) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewArenaScene(layout, seed),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func runGame(cmd *cobra.Command, args []string) error {
	config.Debug.SkipMenu = skipMenu
	config.Debug.Overlay = debugDraw
	config.Debug.DrawRoutes = debugDraw

	if err := fonts.LoadDefaults(); err != nil {
		return err
	}
	layout, err := assets.LoadEmbeddedArena(config.Arena.MapPath, config.Arena.PixelsPerUnit)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle("Chirpy Winged")
	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Persistence is optional: without it the game runs with defaults.
	if err := systems.InitPersistence(); err != nil {
		slog.Warn("running without persistence", "error", err)
	}

	slog.Info("starting game", "seed", seed)
	return ebiten.RunGame(NewGame(layout))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
