package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"golang.org/x/exp/rand"

	"github.com/mikenye/wrapsnake/internal/game"
	"github.com/mikenye/wrapsnake/internal/terminal"
	"github.com/mikenye/wrapsnake/internal/window"
)

// main function
func main() {
	log.SetFlags(0)
	log.SetPrefix("snake: ")

	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	// create new game object
	seed := cfg.seed(time.Now())
	g := game.New(rand.New(rand.NewSource(seed)))

	if cfg.Terminal {
		log.Printf("starting in terminal, seed %d", seed)
		err = terminal.Run(g, terminal.Options{Speed: cfg.Speed, HUD: cfg.HUD})
	} else {
		log.Printf("starting in window, seed %d", seed)
		err = window.Run(g, window.Options{Speed: cfg.Speed, Scale: cfg.Scale, HUD: cfg.HUD})
	}
	if err != nil {
		log.Fatal(err)
	}
}
