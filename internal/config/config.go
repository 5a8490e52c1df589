package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Config represents the player configuration structure. It defines
// playback defaults, frame discovery settings, and status bar theming.
type Config struct {
	Playback struct {
		FPS  int    `yaml:"fps"`  // Starting playback rate
		Loop string `yaml:"loop"` // Loop policy: loop or once
	} `yaml:"playback"`
	Frames struct {
		Directory string `yaml:"directory"` // Default frame directory
		Pattern   string `yaml:"pattern"`   // Glob applied to text frame stems
		Watch     bool   `yaml:"watch"`     // Reload when the directory changes
	} `yaml:"frames"`
	Theme struct {
		StatusFg      string `yaml:"status_fg"`      // Status bar text color
		Accent        string `yaml:"accent"`         // Status bar emphasis color
		ProgressStart string `yaml:"progress_start"` // Progress gradient start color
		ProgressEnd   string `yaml:"progress_end"`   // Progress gradient end color
	} `yaml:"theme"`
	Log struct {
		File  string `yaml:"file"`  // Log file path (TUI owns the terminal)
		Debug bool   `yaml:"debug"` // Enable debug-level logging
	} `yaml:"log"`
}

// LoadConfig loads configuration from the default location
// (~/.config/cascii/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "cascii", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if tempCfg.Playback.FPS > 0 {
		cfg.Playback.FPS = tempCfg.Playback.FPS
	}
	if tempCfg.Playback.Loop != "" {
		cfg.Playback.Loop = tempCfg.Playback.Loop
	}
	if tempCfg.Frames.Directory != "" {
		cfg.Frames.Directory = tempCfg.Frames.Directory
	}
	if tempCfg.Frames.Pattern != "" {
		cfg.Frames.Pattern = tempCfg.Frames.Pattern
	}
	cfg.Frames.Watch = tempCfg.Frames.Watch

	if tempCfg.Theme.StatusFg != "" {
		cfg.Theme.StatusFg = tempCfg.Theme.StatusFg
	}
	if tempCfg.Theme.Accent != "" {
		cfg.Theme.Accent = tempCfg.Theme.Accent
	}
	if tempCfg.Theme.ProgressStart != "" {
		cfg.Theme.ProgressStart = tempCfg.Theme.ProgressStart
	}
	if tempCfg.Theme.ProgressEnd != "" {
		cfg.Theme.ProgressEnd = tempCfg.Theme.ProgressEnd
	}

	if tempCfg.Log.File != "" {
		cfg.Log.File = tempCfg.Log.File
	}
	cfg.Log.Debug = tempCfg.Log.Debug

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// New returns the default configuration.
func New() *Config {
	cfg := &Config{}

	cfg.Playback.FPS = 24
	cfg.Playback.Loop = "loop"

	cfg.Frames.Directory = "."
	cfg.Frames.Pattern = "frame_*"
	cfg.Frames.Watch = false

	cfg.Theme.StatusFg = "#959595"
	cfg.Theme.Accent = "#FFFFFF"
	cfg.Theme.ProgressStart = "#4F4FB7"
	cfg.Theme.ProgressEnd = "#81A1C1"

	cfg.Log.File = defaultLogFile()
	cfg.Log.Debug = false

	return cfg
}

// Validate checks the configuration for values that cannot be used.
func (c *Config) Validate() error {
	if c.Playback.FPS < 1 {
		return fmt.Errorf("playback fps must be at least 1, got %d", c.Playback.FPS)
	}
	if c.Playback.Loop != "loop" && c.Playback.Loop != "once" {
		return fmt.Errorf("playback loop must be %q or %q, got %q", "loop", "once", c.Playback.Loop)
	}
	if _, err := glob.Compile(c.Frames.Pattern); err != nil {
		return fmt.Errorf("invalid frame pattern %q: %w", c.Frames.Pattern, err)
	}
	return nil
}

// PlayOnce reports whether the configured loop policy is play-once.
func (c *Config) PlayOnce() bool {
	return c.Playback.Loop == "once"
}

func defaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", "cascii", "player.log")
}
