package main

import (
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pdxmph/todo-tui/internal/app"
	"github.com/pdxmph/todo-tui/internal/config"
	"github.com/pdxmph/todo-tui/internal/logging"
	"github.com/pdxmph/todo-tui/internal/storage"
	_ "github.com/pdxmph/todo-tui/internal/storage/jsonfile"
	_ "github.com/pdxmph/todo-tui/internal/storage/sqlite"
	"github.com/pdxmph/todo-tui/internal/todo"
	"github.com/pdxmph/todo-tui/internal/tui"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, logFile, err := logging.New(logging.Options{
		Path:  cfg.Log.Path,
		Level: cfg.Log.Level,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()

	// Open storage
	backend, err := storage.Open(cfg.Storage, logger)
	if err != nil {
		log.Fatal(err)
	}
	logger.Debug("storage opened", "backend", backend.Name(), "available", storage.ListBackends())
	defer backend.Close()

	// A missing or unreadable list starts empty
	tasks := storage.LoadOrEmpty(backend, logger)
	logger.Info("starting", "backend", backend.Name(), "tasks", len(tasks))

	store := todo.NewStore(tasks,
		todo.WithSaver(backend),
		todo.WithLogger(logger),
	)
	state := app.New(store, time.Now(),
		app.WithPresets(cfg.Timer.Presets),
		app.WithLogger(logger),
	)

	// Start the program
	p := tea.NewProgram(tui.New(state), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
