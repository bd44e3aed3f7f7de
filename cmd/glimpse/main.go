package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"glimpse/internal/api"
	"glimpse/internal/config"
	"glimpse/internal/eventbus"
	"glimpse/internal/state"
	"glimpse/internal/ui"
)

func main() {
	serverFlag := flag.String("server", "", "search backend base URL (overrides config)")
	configFlag := flag.String("config", "", "path to config file")
	flag.Parse()

	// Load configuration
	configSvc := config.NewService()
	var cfg *config.Config
	var err error
	if *configFlag != "" {
		cfg, err = configSvc.LoadFromPath(*configFlag)
	} else {
		cfg, err = configSvc.Load()
	}
	if err != nil {
		cfg = config.Default()
	}
	if *serverFlag != "" {
		cfg.ServerURL = *serverFlag
	}

	// Set up logging. Stdout belongs to the TUI, so logs go to a file.
	logger, err := newFileLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not open log file: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar()

	log.Infow("starting", "server", cfg.ServerURL)

	// Create event bus
	bus := eventbus.New(log)
	bus.Publish(eventbus.ConfigLoadedEvent{ServerURL: cfg.ServerURL})

	// Open persisted state and the API client
	store := state.OpenDefault()
	client := api.New(cfg.ServerURL, log)

	// Create UI model and program
	uiModel := ui.NewModel(bus, cfg, store, client, log)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Forward bus events to the UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Warnw("event channel full, dropping event", "type", e.Type())
		}
	}
	bus.Subscribe(eventbus.EventError, forward)
	bus.Subscribe(eventbus.EventHistoryCleared, forward)
	bus.Subscribe(eventbus.EventSettingsChanged, forward)

	// Record completed searches in the backend history.
	bus.Subscribe(eventbus.EventSearchSubmitted, func(e eventbus.DomainEvent) {
		ev, ok := e.(eventbus.SearchSubmittedEvent)
		if !ok {
			return
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := client.RecordHistory(ctx, ev.Query, ev.Results); err != nil {
				log.Warnw("recording history failed", "query", ev.Query, "error", err)
			}
		}()
	})

	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running program: %v\n", err)
		os.Exit(1)
	}

	// Stop dispatch before tearing down the forwarding channel, so no
	// forwarder can send on it after the close.
	bus.Close()
	close(eventChan)
}

// newFileLogger builds a zap logger writing to path.
func newFileLogger(path string) (*zap.Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.AddSync(f),
		zapcore.InfoLevel,
	)
	return zap.New(core), nil
}
