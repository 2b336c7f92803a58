// slither is a terminal snake game with a fixed-timestep simulation and a
// particle-based death animation.
//
// Usage:
//
//	slither                  - Play
//	slither play             - Same thing, spelled out
//	slither version          - Show version
//
// Flags:
//
//	--config <path>  - Path to custom gameplay config YAML
//	--assets <dir>   - Directory with music/sound files (default: ./assets)
//	--fps <rate>     - Render tick rate (default: 60)
//	--seed <value>   - RNG seed for reproducible gameplay (0 = time-based)
//	--mute           - Start with sound off
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig string
	flagAssets string
	flagFPS    int
	flagSeed   int64
	flagMute   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slither",
	Short: "Snake in your terminal",
	Long: `Slither is a terminal snake game.

Controls:
  Arrows/WASD  - Steer
  Enter/Space  - Start / resume
  P            - Pause
  R            - Restart
  +/-          - Adjust speed (menu and pause)
  M            - Toggle sound
  Q/Esc        - Quit

Examples:
  slither
  slither --fps 30
  slither --seed 42
  slither --config ./my-slither.yaml`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "assets", "Directory with music and sound files")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Render tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with sound off")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(versionCmd)
}
