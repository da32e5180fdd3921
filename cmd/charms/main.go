// Command charms opens a window of hanging charms that can be dragged,
// flung and shaken by scrolling.
package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"charms/internal/game"
	"charms/internal/pendulum"
	"charms/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	scenePath := flag.String("scene", "assets/scenes/charms.json", "scene file to load and save")
	preset := flag.String("preset", pendulum.DefaultPreset, "size preset for the fallback charm when no scene file exists")
	width := flag.Int("width", 960, "window width")
	height := flag.Int("height", 640, "window height")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	w := world.New()
	if err := w.LoadScene(*scenePath); err != nil {
		if !world.IsNotExist(err) {
			slog.Error("failed to load scene", "path", *scenePath, "error", err)
			os.Exit(1)
		}
		slog.Info("no scene file, spawning a single charm", "path", *scenePath, "preset", *preset)
		if _, err := w.SpawnCharm(*preset, rl.Vector2{X: float32(*width) / 2, Y: 40}); err != nil {
			slog.Error("failed to spawn charm", "error", err)
			os.Exit(1)
		}
	}

	g := game.New(w, *scenePath)
	g.Width, g.Height = int32(*width), int32(*height)
	g.Run()
}
