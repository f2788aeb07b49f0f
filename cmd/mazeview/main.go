//go:build ebiten

package main

import (
	"errors"
	"flag"

	"github.com/VHN27/Pacman/internal/catalog"
	"github.com/VHN27/Pacman/internal/maze"
	"github.com/VHN27/Pacman/internal/viewer"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := maze.NewConfig()
	cfg.Bind(flag.CommandLine)
	height := flag.Int("height", 31, "maze height without margins")
	width := flag.Int("width", 28, "maze width")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one")
	scale := flag.Int("scale", 16, "pixels per cell")
	flag.Parse()

	cat, err := catalog.LoadDefault()
	if err != nil {
		log.Fatal("Failed to load piece catalog", "error", err)
	}
	gen, err := maze.NewGenerator(cat, cfg, log.Default())
	if err != nil {
		log.Fatal("Failed to create generator", "error", err)
	}
	game, err := viewer.New(gen, *height, *width, *seed, *scale)
	if err != nil {
		log.Fatal("Failed to generate maze", "error", err)
	}

	ebiten.SetWindowTitle("mazeview")
	ebiten.SetWindowSize(game.Size())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
