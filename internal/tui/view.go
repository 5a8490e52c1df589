package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cascii/cascii-terminal-decorator/pkg/cframe"
)

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	drawableHeight := m.height - 1
	if drawableHeight < 1 {
		drawableHeight = 1
	}

	var body string
	if len(m.frames) == 0 {
		body = m.styles.Status.Render("no frames loaded")
	} else {
		frame := m.frames[m.ctrl.CurrentFrame()]
		if frame.HasColor() {
			body = m.renderColorFrame(frame.Grid, m.width, drawableHeight)
		} else {
			body = m.renderTextFrame(frame.Content, m.width, drawableHeight)
		}
	}

	canvas := lipgloss.Place(m.width, drawableHeight, lipgloss.Center, lipgloss.Center, body)

	var bottom string
	if m.showHelp {
		bottom = m.help.View(m.keys)
	} else {
		bottom = m.statusBar()
	}

	return canvas + "\n" + bottom
}

// renderColorFrame draws the grid row by row, coalescing horizontally
// adjacent cells that share a color into a single styled run. Skip cells
// become plain spaces so the surrounding layout stays aligned.
func (m Model) renderColorFrame(grid *cframe.CFrame, maxWidth, maxHeight int) string {
	drawWidth := min(grid.Width(), maxWidth)
	drawHeight := min(grid.Height(), maxHeight)

	styleCache := make(map[uint32]lipgloss.Style)
	styleFor := func(r, g, b uint8) lipgloss.Style {
		packed := uint32(r)<<16 | uint32(g)<<8 | uint32(b)
		style, ok := styleCache[packed]
		if !ok {
			style = RGBStyle(r, g, b)
			styleCache[packed] = style
		}
		return style
	}

	rows := make([]string, 0, drawHeight)
	for row := 0; row < drawHeight; row++ {
		var sb strings.Builder
		col := 0
		for col < drawWidth {
			if grid.ShouldSkip(row, col) {
				sb.WriteByte(' ')
				col++
				continue
			}

			r, g, b, _ := grid.RGBAt(row, col)
			var run strings.Builder
			for col < drawWidth && !grid.ShouldSkip(row, col) {
				nr, ng, nb, _ := grid.RGBAt(row, col)
				if nr != r || ng != g || nb != b {
					break
				}
				ch, _ := grid.CharAt(row, col)
				run.WriteByte(ch)
				col++
			}
			sb.WriteString(styleFor(r, g, b).Render(run.String()))
		}
		rows = append(rows, sb.String())
	}

	return strings.Join(rows, "\n")
}

// renderTextFrame draws a plain-text frame, cropped to the drawable area.
func (m Model) renderTextFrame(content string, maxWidth, maxHeight int) string {
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	if len(lines) > maxHeight {
		lines = lines[:maxHeight]
	}
	for i, line := range lines {
		if len(line) > maxWidth {
			lines[i] = line[:maxWidth]
		}
	}
	return m.styles.Text.Render(strings.Join(lines, "\n"))
}
