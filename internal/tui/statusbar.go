package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// statusBar renders the one-line playback summary shown under the frame:
// position, state, fps, loop mode, color availability, and key hints. The
// position segment is tinted along the theme gradient as playback
// progresses.
func (m Model) statusBar() string {
	total := m.ctrl.FrameCount()
	index := m.ctrl.CurrentFrame()

	t := 0.0
	if total > 1 {
		t = float64(index) / float64(total-1)
	}
	position := lipgloss.NewStyle().
		Foreground(m.styles.ProgressColor(t)).
		Bold(true).
		Render(fmt.Sprintf("frame %d/%d", index+1, total))

	colorTag := "color:off"
	if m.hasColor {
		colorTag = "color:on"
	}

	status := fmt.Sprintf(" | %s | %d fps | %s | %s",
		m.ctrl.State(), m.ctrl.FPS(), m.ctrl.LoopMode(), colorTag)

	line := position + m.styles.Status.Render(status)
	if m.notice != "" {
		line += " " + m.styles.Error.Render(m.notice)
	} else {
		line += m.styles.Status.Render(" | ") + m.help.ShortHelpView(m.keys.ShortHelp())
	}

	return ansi.Truncate(line, m.width, "")
}
