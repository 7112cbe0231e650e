// Command viewer shows one skirmish in a window. WASD moves the player,
// the arrow keys turn and look, space fires.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	arenaName := flag.String("arena", "arena.yaml", "arena prefab in prefabs/")
	seed := flag.Uint64("seed", 1, "simulation seed")
	watch := flag.Bool("watch", true, "hot reload agent prefabs from prefabs/")
	level := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	lvl, err := log.ParseLevel(*level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: lvl, ReportTimestamp: true, Prefix: "viewer"})

	game, err := NewGame(*arenaName, *seed, *watch, logger)
	if err != nil {
		logger.Fatal("start", "err", err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("skirmish")

	if err := ebiten.RunGame(game); err != nil {
		logger.Error("viewer stopped", "err", err)
	}
}
