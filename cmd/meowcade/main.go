// Command meowcade runs the cat minigame collection.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/hubastard/meowcade/engine/core"
	"github.com/hubastard/meowcade/engine/gfx"
	glbackend "github.com/hubastard/meowcade/engine/gfx/gl"
	"github.com/hubastard/meowcade/engine/platform"
	"github.com/hubastard/meowcade/engine/profiler"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config")
	flag.Parse()

	cfg, err := core.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	profiler.Init(1 << 18)

	game := NewGame(cfg, OpenProgress(cfg.SaveName), nil)
	newRenderer := func(_ core.Window, cfg core.Config) (core.Renderer, error) {
		dev := gfx.NewDevice(glbackend.New(), gfx.Options{
			Assets:     os.DirFS(cfg.AssetsDir),
			Width:      cfg.Width,
			Height:     cfg.Height,
			ClearColor: cfg.ClearColor,
		})
		game.UseDevice(dev)
		return dev, nil
	}

	if err := core.Run(game, cfg, platform.Open, newRenderer); err != nil {
		log.Fatal(err)
	}

	if profiler.Enabled {
		path := filepath.Join(os.TempDir(), "meowcade.speedscope.json")
		if err := profiler.Dump(path); err != nil {
			log.Printf("[profiler] %v", err)
			return
		}
		log.Printf("[profiler] wrote %s", path)
	}
}
