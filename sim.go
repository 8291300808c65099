package main

import (
	"fmt"

	"github.com/nhawngkun/Chirpy-Winged/assets"
	"github.com/nhawngkun/Chirpy-Winged/config"
	"github.com/nhawngkun/Chirpy-Winged/sim"
	"github.com/spf13/cobra"
)

var (
	simSeconds   float64
	simAutopilot bool
	simUntilLoss bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a round headless and print statistics",
	Long:  `Run the arena without a window for a fixed amount of simulated time and report spawner, score and event counts.`,
	RunE:  runSim,
}

func init() {
	simCmd.Flags().Float64Var(&simSeconds, "seconds", 60, "simulated seconds to run")
	simCmd.Flags().BoolVar(&simAutopilot, "autopilot", true, "drive the player with the built-in autopilot")
	simCmd.Flags().BoolVar(&simUntilLoss, "until-loss", false, "stop as soon as the player is defeated")
}

func runSim(cmd *cobra.Command, args []string) error {
	layout, err := assets.LoadEmbeddedArena(config.Arena.MapPath, config.Arena.PixelsPerUnit)
	if err != nil {
		return err
	}

	report, err := sim.Run(cmd.Context(), layout, sim.Options{
		Seconds:        simSeconds,
		Seed:           seed,
		Autopilot:      simAutopilot,
		StopOnGameOver: simUntilLoss,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed           %d\n", seed)
	fmt.Fprintf(out, "elapsed        %.1fs (%d ticks)\n", report.Elapsed, report.Ticks)
	fmt.Fprintf(out, "state          %s\n", report.State)
	fmt.Fprintf(out, "score          %d\n", report.Score)
	fmt.Fprintf(out, "chefs          spawned %d, destroyed %d\n", report.ChefsSpawned, report.ChefsDestroyed)
	fmt.Fprintf(out, "cakes          dropped %d, picked %d, thrown %d\n", report.CakesDropped, report.CakesPicked, report.CakesThrown)
	fmt.Fprintf(out, "player hits    %d\n", report.PlayerHits)
	fmt.Fprintf(out, "spawner        active %d, cap %d, interval %.2fs\n", report.Spawner.Active, report.Spawner.Cap, report.Spawner.Interval)
	return nil
}
