package main

import (
	"flag"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Tank-Duel/internal/config"
	"github.com/Garsondee/Tank-Duel/internal/game"
)

func main() {
	envFile := flag.String("env", ".env", "optional .env file with TANKDUEL_* settings")
	flag.Parse()

	settings, err := config.Load(*envFile)
	if err != nil {
		log.Fatal("config", "err", err)
	}
	logger := settings.Logger()
	settings.Report(logger)

	g := game.New(settings, logger)
	w, h := g.Size()
	ebiten.SetWindowTitle("Tank Duel")
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("game loop exited", "err", err)
	}
}
