//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/HanzPo/gameoflife/internal/app"
	"github.com/HanzPo/gameoflife/internal/sim"
	"github.com/HanzPo/gameoflife/internal/storage"
	"github.com/HanzPo/gameoflife/pkg/life"
	"github.com/HanzPo/gameoflife/pkg/token"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ctrl := sim.New()
	ctrl.SetDelay(time.Duration(cfg.DelayMS) * time.Millisecond)
	loadInitial(ctrl, cfg)

	game := app.New(ctrl, cfg)

	ebiten.SetWindowTitle("gameoflife")
	ebiten.SetWindowSize(1024, 768)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// loadInitial picks the starting board: an explicit share token wins, then an
// import file, then a requested random soup, then the persisted seed. Every
// source fails quietly into an empty board.
func loadInitial(ctrl *sim.Controller, cfg *app.Config) {
	if cfg.Token != "" {
		if cells, ok := token.Decode(cfg.Token); ok {
			ctrl.Load(cells)
			persistSeed(ctrl, cfg)
		} else {
			log.Printf("share token did not decode, starting empty")
		}
		return
	}
	if cfg.Import != "" {
		if cells, ok := storage.Import(cfg.Import); ok {
			ctrl.Load(cells)
			persistSeed(ctrl, cfg)
		} else {
			log.Printf("import of %s failed, starting empty", cfg.Import)
		}
		return
	}
	if cfg.Soup {
		ctrl.Load(life.RandomSoup(cfg.Seed, -20, -30, 40, 60, 0.3).Cells())
		return
	}
	if cells, ok := storage.LoadSeed(cfg.StatePath); ok {
		ctrl.Load(cells)
	}
}

func persistSeed(ctrl *sim.Controller, cfg *app.Config) {
	if err := storage.SaveSeed(cfg.StatePath, ctrl.Seed()); err != nil {
		log.Printf("seed save: %v", err)
	}
}
