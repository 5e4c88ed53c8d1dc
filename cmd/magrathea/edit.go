//go:build ebiten

package main

import (
	"errors"

	"magrathea/internal/app"
	"magrathea/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

func edit(cfg *config.Config) error {
	s, err := app.Open(cfg)
	if err != nil {
		return err
	}
	game := app.New(s, cfg.Scale)

	ebiten.SetWindowTitle("magrathea: " + cfg.Preset)
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
