package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/thumbstick/config"
	"github.com/oliverbestmann/thumbstick/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.GetDebug())

	region, err := cfg.Region()
	if err != nil {
		log.Error("failed to set up stick", "err", err)
		os.Exit(1)
	}

	stickOpts, err := cfg.StickOptions()
	if err != nil {
		log.Error("failed to set up stick", "err", err)
		os.Exit(1)
	}

	if cfg.GetProfile() {
		defer ProfileStart()()
	}

	game := NewGame(region, GameOptions{
		ScreenWidth:  cfg.GetWindowWidth(),
		ScreenHeight: cfg.GetWindowHeight(),
		GroundSeed:   cfg.GetGroundSeed(),
		Debug:        cfg.GetDebug(),
	}, log, stickOpts...)

	ebiten.SetWindowSize(cfg.GetWindowWidth(), cfg.GetWindowHeight())
	ebiten.SetWindowTitle(cfg.GetWindowTitle())
	ebiten.SetTPS(cfg.GetTPS())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	// Call ebiten.RunGame to start your game loop.
	if err := ebiten.RunGame(game); err != nil {
		slog.Error("error running game", "err", err)
		os.Exit(1)
	}
}
