package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the playback keybindings.
type KeyMap struct {
	PlayPause    key.Binding
	StepForward  key.Binding
	StepBackward key.Binding
	JumpStart    key.Binding
	JumpEnd      key.Binding
	FasterFPS    key.Binding
	SlowerFPS    key.Binding
	ToggleLoop   key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the player's standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PlayPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play/pause"),
		),
		StepForward: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "step forward"),
		),
		StepBackward: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "step back"),
		),
		JumpStart: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first frame"),
		),
		JumpEnd: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last frame"),
		),
		FasterFPS: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		SlowerFPS: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "slower"),
		),
		ToggleLoop: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "loop/once"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PlayPause, k.StepBackward, k.StepForward, k.FasterFPS, k.SlowerFPS, k.ToggleLoop, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PlayPause, k.StepForward, k.StepBackward},
		{k.JumpStart, k.JumpEnd, k.ToggleLoop},
		{k.FasterFPS, k.SlowerFPS},
		{k.Help, k.Quit},
	}
}
