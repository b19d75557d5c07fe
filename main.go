package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/huntgame/internal/app"
	"github.com/kmacinski/huntgame/internal/config"
	"github.com/kmacinski/huntgame/internal/deferred"
	"github.com/kmacinski/huntgame/internal/game"
	"github.com/kmacinski/huntgame/internal/surface"
	"github.com/kmacinski/huntgame/internal/ui"
	"golang.org/x/term"
)

var (
	version = "dev"
)

func main() {
	// Parse flags
	var (
		showVersion bool
		showHelp    bool
		configPath  string
		delay       time.Duration
	)

	flag.BoolVar(&showVersion, "v", false, "Show version")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showHelp, "h", false, "Show help")
	flag.BoolVar(&showHelp, "help", false, "Show help")
	flag.StringVar(&configPath, "c", "", "Config file")
	flag.StringVar(&configPath, "config", "", "Config file")
	flag.DurationVar(&delay, "d", 0, "Delay before the first screen is built")
	flag.DurationVar(&delay, "delay", 0, "Delay before the first screen is built")
	flag.Parse()

	if showVersion {
		fmt.Printf("huntgame %s\n", version)
		os.Exit(0)
	}

	if showHelp {
		printHelp()
		os.Exit(0)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: huntgame needs an interactive terminal")
		os.Exit(1)
	}

	if configPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		configPath = p
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if delay < 0 {
		fmt.Fprintln(os.Stderr, "Error: delay must not be negative")
		os.Exit(2)
	}
	if delay == 0 {
		delay = cfg.ReadyDelay.Std()
	}

	logger, closeLog, err := openLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	styles := ui.NewStyles(ui.ColorsFrom(cfg.Colors))
	application := app.New(app.WithLogger(logger), app.WithStyles(styles))
	defer application.Cleanup()

	g := game.New(styles, cfg.RevealRate.Std())
	s := surface.New(application,
		surface.WithBaseView(g.MainMenu()),
		surface.WithReadyDelay(delay),
		surface.WithLogger(logger),
		surface.WithTracer(deferred.NewSlogTracer(logger)),
	)
	application.SetSurface(s)

	p := tea.NewProgram(
		application,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	application.SetProgram(p)

	if err := application.WatchConfig(configPath); err != nil {
		logger.Warn("config reload disabled", slog.Any("err", err))
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openLogger writes to the configured file, or nowhere when none is set
func openLogger(c config.LogConfig) (*slog.Logger, func(), error) {
	level, err := c.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.File == "" {
		return slog.New(slog.NewTextHandler(io.Discard, opts)), func() {}, nil
	}
	f, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, opts)), func() { f.Close() }, nil
}

func printHelp() {
	fmt.Println(`huntgame - a small text adventure for the terminal

Usage:
  huntgame [flags]

Flags:
  -c, --config      Config file (default: $XDG_CONFIG_HOME/huntgame/config.yaml)
  -d, --delay       Delay before the first screen is built (default: 100ms)
  -h, --help        Show help
  -v, --version     Show version

Keybindings:
  h/l, Tab          Move between choices
  Enter/Space       Pick a choice, or finish the passage
  j/k               Scroll the passage
  Esc               Go back
  y                 Copy passage text
  ?                 Toggle help
  Ctrl+c            Quit

The mouse can click choices too. The config file is reloaded when it changes.`)
}
