// Package tui implements the fullscreen playback interface: a bubbletea
// model owning the frame sequence and the animation controller, driven by
// key events, resize events, timer ticks, and frame-directory reloads.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cascii/cascii-terminal-decorator/internal/config"
	"github.com/cascii/cascii-terminal-decorator/internal/log"
	"github.com/cascii/cascii-terminal-decorator/internal/player"
	"github.com/cascii/cascii-terminal-decorator/internal/scan"
	"github.com/cascii/cascii-terminal-decorator/internal/watch"
	"github.com/cascii/cascii-terminal-decorator/pkg/cframe"
)

// TickMsg is one elapsed frame interval. The generation stamps the
// schedule it belongs to; ticks from an abandoned schedule (after a
// pause, a toggle, or an fps change) are discarded so two schedules never
// drive the controller at once.
type TickMsg struct {
	Gen int
}

// ReloadRequestMsg signals that the watched frame directory changed.
type ReloadRequestMsg struct{}

// FramesReloadedMsg carries the result of re-scanning the frame directory.
type FramesReloadedMsg struct {
	Frames []cframe.Frame
	Err    error
}

// Model is the playback TUI state.
type Model struct {
	frames   []cframe.Frame
	ctrl     *player.Controller
	hasColor bool

	dir     string
	pattern string
	watcher *watch.Watcher

	keys   KeyMap
	help   help.Model
	styles Styles

	width    int
	height   int
	tickGen  int
	showHelp bool
	notice   string
}

// New builds the playback model. watcher may be nil when live reload is
// disabled.
func New(frames []cframe.Frame, ctrl *player.Controller, cfg *config.Config, dir string, watcher *watch.Watcher) Model {
	return Model{
		frames:   frames,
		ctrl:     ctrl,
		hasColor: scan.HasColor(frames),
		dir:      dir,
		pattern:  cfg.Frames.Pattern,
		watcher:  watcher,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		styles:   NewStyles(cfg),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.scheduleTick(), m.awaitReload())
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Resize triggers a redraw only; playback state is untouched.
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Gen != m.tickGen {
			return m, nil
		}
		m.ctrl.Tick()
		return m, m.scheduleTick()

	case ReloadRequestMsg:
		return m, tea.Batch(m.reloadFrames(), m.awaitReload())

	case FramesReloadedMsg:
		if msg.Err != nil {
			log.Error("reloading frames: %v", msg.Err)
			m.notice = "reload failed: " + msg.Err.Error()
			return m, nil
		}
		m.frames = msg.Frames
		m.hasColor = scan.HasColor(msg.Frames)
		m.ctrl.SetFrameCount(len(msg.Frames))
		m.notice = ""
		log.With(log.F("frames", len(msg.Frames))).Info("frame sequence reloaded")
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.PlayPause):
		m.ctrl.Toggle()
		cmd := m.restartTick()
		return m, cmd

	case key.Matches(msg, m.keys.StepForward):
		m.ctrl.StepForward()
		return m, nil

	case key.Matches(msg, m.keys.StepBackward):
		m.ctrl.StepBackward()
		return m, nil

	case key.Matches(msg, m.keys.JumpStart):
		m.ctrl.SetCurrentFrame(0)
		return m, nil

	case key.Matches(msg, m.keys.JumpEnd):
		m.ctrl.SetCurrentFrame(m.ctrl.FrameCount() - 1)
		return m, nil

	case key.Matches(msg, m.keys.FasterFPS):
		m.ctrl.SetFPS(m.ctrl.FPS() + 1)
		cmd := m.restartTick()
		return m, cmd

	case key.Matches(msg, m.keys.SlowerFPS):
		m.ctrl.SetFPS(m.ctrl.FPS() - 1)
		cmd := m.restartTick()
		return m, cmd

	case key.Matches(msg, m.keys.ToggleLoop):
		if m.ctrl.LoopMode() == player.Loop {
			m.ctrl.SetLoopMode(player.Once)
		} else {
			m.ctrl.SetLoopMode(player.Loop)
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}

	return m, nil
}

// scheduleTick arms the next frame tick under the current generation. The
// interval restarts from now regardless of when the previous tick fired,
// so stalls are absorbed instead of compensated by frame skipping.
func (m Model) scheduleTick() tea.Cmd {
	if !m.ctrl.IsPlaying() {
		return nil
	}
	gen := m.tickGen
	return tea.Tick(m.ctrl.Interval(), func(time.Time) tea.Msg {
		return TickMsg{Gen: gen}
	})
}

// restartTick abandons any in-flight tick and starts a fresh interval.
func (m *Model) restartTick() tea.Cmd {
	m.tickGen++
	return m.scheduleTick()
}

// awaitReload blocks on the watcher channel until the next change burst.
func (m Model) awaitReload() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	ch := m.watcher.ReloadChannel()
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return ReloadRequestMsg{}
	}
}

func (m Model) reloadFrames() tea.Cmd {
	dir, pattern := m.dir, m.pattern
	return func() tea.Msg {
		frames, err := scan.Load(dir, pattern)
		return FramesReloadedMsg{Frames: frames, Err: err}
	}
}
