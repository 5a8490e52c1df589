package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

// Entry point for the player
func main() {
	rootCmd := &cobra.Command{
		Use:   "cascii-play [directory]",
		Short: "Terminal player for cascii .cframe/.txt animation frames",
		Long: `cascii-play renders authored ASCII-art animations in the terminal.

Point it at a directory of frame files (frame_*.cframe or frame_*.txt)
and it plays them back with per-cell RGB color, adjustable fps, and
loop/once playback.`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runPlay,
	}

	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/cascii/config.yaml)")
	rootCmd.Flags().IntVar(&fpsFlag, "fps", 0, "starting playback fps (default from config, 24)")
	rootCmd.Flags().BoolVar(&onceFlag, "once", false, "play once instead of looping")
	rootCmd.Flags().BoolVar(&watchFlag, "watch", false, "reload frames when the directory changes")
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
