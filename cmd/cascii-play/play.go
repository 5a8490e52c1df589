package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/cascii/cascii-terminal-decorator/internal/config"
	"github.com/cascii/cascii-terminal-decorator/internal/errors"
	"github.com/cascii/cascii-terminal-decorator/internal/log"
	"github.com/cascii/cascii-terminal-decorator/internal/player"
	"github.com/cascii/cascii-terminal-decorator/internal/scan"
	"github.com/cascii/cascii-terminal-decorator/internal/tui"
	"github.com/cascii/cascii-terminal-decorator/internal/watch"
)

var (
	cfgFile   string
	fpsFlag   int
	onceFlag  bool
	watchFlag bool
	debugFlag bool
)

func runPlay(cmd *cobra.Command, args []string) error {
	var cfg *config.Config
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadConfigFile(cfgFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		fmt.Printf("Warning: %v\n", err)
		fmt.Println("Using default settings.")
		cfg = config.New()
	}

	if cfg.Log.File != "" {
		log.Configure(log.WithFile(cfg.Log.File))
	}
	log.SetDebug(debugFlag || cfg.Log.Debug)

	dir := cfg.Frames.Directory
	if len(args) > 0 {
		dir = args[0]
	}

	frames, err := scan.Load(dir, cfg.Frames.Pattern)
	if err != nil {
		if errors.IsNoFrames(err) {
			return fmt.Errorf("%v\nAuthor frames first, or point cascii-play at a frame directory", err)
		}
		return err
	}
	log.With(log.F("dir", dir), log.F("frames", len(frames)), log.F("color", scan.HasColor(frames))).
		Info("frame sequence loaded")

	fps := cfg.Playback.FPS
	if fpsFlag > 0 {
		fps = fpsFlag
	}
	ctrl := player.New(fps)
	ctrl.SetFrameCount(len(frames))
	if onceFlag || cfg.PlayOnce() {
		ctrl.SetLoopMode(player.Once)
	}
	ctrl.Play()

	var watcher *watch.Watcher
	if watchFlag || cfg.Frames.Watch {
		watcher, err = watch.New(dir)
		if err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		watcher.Start()
		defer watcher.Stop()
	}

	model := tui.New(frames, ctrl, cfg, dir, watcher)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running player: %w", err)
	}
	return nil
}
