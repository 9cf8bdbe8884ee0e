package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"showcase/internal/catalog"
	"showcase/internal/config"
	"showcase/internal/domain"
	"showcase/internal/eventbus"
	"showcase/internal/ui"
	uilogic "showcase/internal/ui/logic"
	"showcase/internal/ui/views"
)

var version = "dev"

func main() {
	var (
		sourceFlag  string
		configFlag  string
		noCache     bool
		showVersion bool
	)
	flag.StringVar(&sourceFlag, "source", "", "Product list: http(s) URL, s3://bucket/key or a .json/.yaml file")
	flag.StringVar(&configFlag, "config", "", "Path to the config file")
	flag.BoolVar(&noCache, "no-cache", false, "Do not read or write the offline product cache")
	flag.BoolVar(&showVersion, "version", false, "Print the version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("showcase %s\n", version)
		return
	}

	// Set up logging
	logDir := config.DefaultConfigDir()
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
	} else if logFile, err := os.OpenFile(filepath.Join(logDir, "showcase.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err != nil {
		log.SetOutput(io.Discard)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus, configFlag)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}
	if sourceFlag != "" {
		cfg.Source.URL = sourceFlag
	}
	if noCache {
		cfg.Cache.Enabled = false
	}

	source, err := catalog.NewSource(cfg.Source.URL, cfg.Timeout())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Set [source] url in %s or pass -source\n", configSvc.Path())
		os.Exit(1)
	}

	if cfg.Cache.Enabled {
		cache, err := catalog.OpenCache(cfg.Cache.Path)
		if err != nil {
			log.Printf("Product cache disabled: %v", err)
		} else {
			defer cache.Close()
			source = catalog.NewCachedSource(source, cache)
		}
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		if err := printPlain(ctx, os.Stdout, source); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	loader := catalog.NewLoader(bus, source)
	defer loader.Stop()

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, configSvc)
	defer uiModel.Close()

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	)
	uiModel.SetProgram(p)

	// Set up event forwarding to UI. Slide and drag events stay on the
	// UI goroutine; only events raised by background work are forwarded.
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	for _, eventType := range []eventbus.EventType{
		eventbus.EventLoadStarted,
		eventbus.EventItemsLoaded,
		eventbus.EventLoadFailed,
		eventbus.EventConfigSaved,
		eventbus.EventError,
	} {
		bus.Subscribe(eventType, forward)
	}

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Start the initial load
	if err := loader.Load(ctx); err != nil {
		log.Printf("Initial load not started: %v", err)
	}

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	// Cleanup
	cancel()
	loader.Stop()
	close(eventChan)
}

// printPlain writes one line per product for non-interactive output
func printPlain(ctx context.Context, w io.Writer, source catalog.Source) error {
	products, err := source.Fetch(ctx)
	if err != nil {
		return err
	}
	for _, p := range products {
		fmt.Fprintf(w, "%-32s %12s  %.1f/5  %s\n",
			p.Name,
			views.FormatPrice(p.Price),
			uilogic.StarRating(p.PopularityScore),
			p.ImageFor(domain.ColorYellow))
	}
	return nil
}
