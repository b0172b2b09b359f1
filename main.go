package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/circuit/pkg/config"
	"github.com/golangdaddy/circuit/pkg/game"
)

func main() {
	cfg := config.Default()

	g, err := game.NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TPS)

	// RunGame returns nil once the game reports ebiten.Termination
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
