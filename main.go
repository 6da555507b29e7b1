package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"rogue-dungeon/config"
)

func main() {
	cfg, err := config.LoadPreviewConfig()
	if err != nil {
		log.Fatal(err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Check for command-line flags
	if len(os.Args) > 1 && os.Args[1] == "--dump" {
		// Print a single level and exit, no window needed
		game, err := NewGame(cfg, seed, nil)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(game.Dump())
		fmt.Printf("Seed %d\n", seed)
		return
	}

	game, err := NewGame(cfg, seed, func(msg string) { log.Println(msg) })
	if err != nil {
		log.Fatal(err)
	}

	windowWidth, windowHeight := config.GetWindowSize(cfg.Generator.Width, cfg.Generator.Height)
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetWindowTitle("Rogue Dungeon - Level Preview")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
