package cframe

import "strings"

// Frame is one unit of playback: the plain-text rendition is always
// present, the color grid only when a binary frame file backed it.
type Frame struct {
	Content string
	Grid    *CFrame
}

// NewTextFrame builds a frame from plain text with no color data.
func NewTextFrame(content string) Frame {
	return Frame{Content: content}
}

// NewColorFrame builds a frame whose text view is backed by a color grid.
func NewColorFrame(content string, grid *CFrame) Frame {
	return Frame{Content: content, Grid: grid}
}

// HasColor reports whether the frame carries a color grid.
func (f Frame) HasColor() bool {
	return f.Grid != nil
}

// NormalizeText ensures text-sourced frame content ends with exactly one
// trailing newline. No other transformation is applied.
func NormalizeText(content string) string {
	trimmed := strings.TrimRight(content, "\n")
	return trimmed + "\n"
}
