package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// DisplayMode selects how the menu renders: with ANSI color, plain text,
// or auto-detected from the terminal. It is chosen once at startup.
type DisplayMode string

const (
	DisplayAuto  DisplayMode = "auto"
	DisplayPlain DisplayMode = "plain"
	DisplayRich  DisplayMode = "rich"
)

type Config struct {
	SnapshotPath string
	Environment  string
	Display      DisplayMode
}

// Load reads configuration from a .env file (if present) and the
// environment, filling in defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err == nil {
		log.Println("Loaded configuration from .env file")
	}

	cfg := &Config{
		SnapshotPath: os.Getenv("SNAPSHOT_PATH"),
		Environment:  os.Getenv("ENV"),
		Display:      DisplayMode(os.Getenv("DISPLAY_MODE")),
	}

	if cfg.SnapshotPath == "" {
		cfg.SnapshotPath = "data/tutormatch.json"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.Display == "" {
		cfg.Display = DisplayAuto
	}

	switch cfg.Display {
	case DisplayAuto, DisplayPlain, DisplayRich:
	default:
		return nil, fmt.Errorf("DISPLAY_MODE must be auto, plain or rich, got %q", cfg.Display)
	}

	return cfg, nil
}
