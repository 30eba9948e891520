package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/devin-hart/route-maps/internal/config"
	"github.com/devin-hart/route-maps/internal/logging"
	"github.com/devin-hart/route-maps/internal/maps"
	"github.com/devin-hart/route-maps/internal/route"
	"github.com/devin-hart/route-maps/internal/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", config.GetConfigPath(), "JSON config file")
	overlayPath := flag.String("overlay", "", "GeoJSON overlay (overrides map.overlay)")
	flag.Parse()

	cfg := config.LoadFrom(*configPath)
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	// first run: write the defaults so there is something to edit
	if _, err := os.Stat(cfg.Path()); os.IsNotExist(err) {
		if err := cfg.Save(); err != nil {
			slog.Warn("could not write default config", "path", cfg.Path(), "err", err)
		}
	}

	fmt.Println("🗺️ Route Maps Starting...")

	if *overlayPath != "" {
		cfg.Map.Overlay = *overlayPath
	}
	var overlay *maps.Overlay
	if cfg.Map.Overlay != "" {
		o, err := maps.LoadOverlay(cfg.Map.Overlay)
		if err != nil {
			slog.Warn("overlay not loaded", "err", err)
		} else {
			fmt.Printf("📄 Loaded overlay with %d paths, %d labels.\n", len(o.Paths), len(o.Labels))
			overlay = o
		}
	}

	window := ui.NewWindow(cfg, overlay)
	window.OnRoute = func(req route.Request) {
		slog.Info("route requested", "start", req.Start.String(), "end", req.End.String())
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("Route Maps")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(window); err != nil {
		log.Fatal(err)
	}
}
