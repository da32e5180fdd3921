// Command charms-tui runs the charm world in a terminal. Drag with the
// mouse, scroll with the wheel, n spawns a charm, q quits.
package main

import (
	"flag"
	"log/slog"
	"os"

	"charms/internal/pendulum"
	"charms/internal/tui"
	"charms/internal/world"

	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	scenePath := flag.String("scene", "", "optional scene file")
	preset := flag.String("preset", pendulum.DefaultPreset, "size preset for the starting charm")
	logPath := flag.String("log", "charms-tui.log", "log file; the terminal is busy drawing")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		slog.Error("failed to open log file", "path", *logPath, "error", err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	screen, err := tcell.NewScreen()
	if err != nil {
		slog.Error("failed to create screen", "error", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		slog.Error("failed to init screen", "error", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()

	w := world.New()
	if *scenePath != "" {
		if err := w.LoadScene(*scenePath); err != nil {
			screen.Fini()
			slog.Error("failed to load scene", "path", *scenePath, "error", err)
			os.Exit(1)
		}
	} else {
		cols, _ := screen.Size()
		anchor := rl.Vector2{X: float32(cols*tui.CellWidth) / 2, Y: tui.CellHeight}
		if _, err := w.SpawnCharm(*preset, anchor); err != nil {
			screen.Fini()
			slog.Error("failed to spawn charm", "error", err)
			os.Exit(1)
		}
	}

	tui.New(screen, w).Run()
	slog.Info("terminal closed")
}
