package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/bcacic/joyful-playroom-manager/internal/config"
	"github.com/bcacic/joyful-playroom-manager/internal/tui"
	"github.com/bcacic/joyful-playroom-manager/pkg/client"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version", "-v":
			fmt.Println("playroom " + version)
			return nil
		case "help", "--help", "-h":
			printHelp()
			return nil
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	log.WithFields(logrus.Fields{
		"version":  version,
		"base_url": cfg.BaseURL,
	}).Info("starting")

	c := client.New(cfg.BaseURL, log)
	app := tui.NewApp(c, cfg.Theme, version)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

// newLogger writes JSON logs to the configured file. The TUI owns the
// terminal, so nothing may log to stdout or stderr while it runs.
func newLogger(path string) (*logrus.Logger, func() error, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if os.Getenv("PLAYROOM_DEBUG") != "" {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		// No log file is not fatal; run silent instead.
		log.SetOutput(io.Discard)
		return log, func() error { return nil }, nil
	}
	log.SetOutput(f)
	return log, f.Close, nil
}

func printHelp() {
	fmt.Print(`playroom — booking console for the Joyful Playroom

Usage:
  playroom             open the console
  playroom --version   show version
  playroom help        show this help

Configuration:
  Settings live in <user config dir>/playroom/config.yaml. Environment
  variables PLAYROOM_BASE_URL, PLAYROOM_THEME and PLAYROOM_LOG_FILE
  override the file. PLAYROOM_DEBUG=1 enables request logging.
`)
}
