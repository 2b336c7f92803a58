package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadeclub/slither/internal/audio"
	"github.com/arcadeclub/slither/internal/config"
	"github.com/arcadeclub/slither/internal/core"
	"github.com/arcadeclub/slither/internal/game"
	"github.com/arcadeclub/slither/internal/platform/tui"
	"github.com/arcadeclub/slither/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play (same as running slither with no arguments)",
	Run:   runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "slither",
	})

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		logger.Fatal("stdout is not a terminal")
	}

	// Terminal size for the initial screen; resizes arrive as messages later.
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("could not load config", "error", err)
	}

	player := audio.New(flagAssets, logger)
	if flagMute {
		player.SetEnabled(false)
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store := storage.NewStore()
	g := game.New(cfg)

	runErr := tui.Run(g, player, store, rc)
	player.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
