package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/VoidMesh/noise/cmd/explorer/models"
	"github.com/VoidMesh/noise/internal/logging"
	"github.com/VoidMesh/noise/internal/presets"
)

func main() {
	startPreset := flag.String("preset", "", "Preset to open on start (empty shows the menu)")
	seed := flag.Uint64("seed", presets.DefaultSeed, "Initial seed")
	logLevel := flag.String("log", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	// The alternate screen owns the terminal, so logs are discarded unless
	// DEBUG routes them to a file
	opts := logging.Options{Level: logging.ParseLevel(*logLevel), Prefix: "explorer", Output: io.Discard}
	if len(os.Getenv("DEBUG")) > 0 {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			fmt.Println("fatal:", err)
			os.Exit(1)
		}
		defer f.Close()
		opts.Output = f
	}
	logging.Configure(opts)

	app := models.NewApp(*seed, *startPreset)

	program := tea.NewProgram(app, tea.WithAltScreen())

	log.Info("Starting noise explorer", "seed", *seed, "preset", *startPreset)

	if _, err := program.Run(); err != nil {
		log.Error("Error running noise explorer", "error", err)
		fmt.Println("fatal:", err)
		os.Exit(1)
	}
}
