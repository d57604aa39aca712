//go:build ebiten

package main

import (
	"errors"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sheikhrachel/cluster-gol/utils"
	"github.com/sheikhrachel/cluster-gol/viewer"
)

func main() {
	cfg, err := utils.ResolveConfig("lifeview", os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	settings := viewer.SettingsFromConfig(cfg)
	game, err := viewer.New(settings)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("cluster-gol")
	ebiten.SetTPS(settings.TPS)
	ebiten.SetWindowSize(settings.Width*settings.Scale, settings.Height*settings.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
