package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cascii/cascii-terminal-decorator/pkg/cframe"
)

// CreateFrameFiles creates frame files with specific raw content
func CreateFrameFiles(t *testing.T, dir string, files map[string][]byte) {
	t.Helper()
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), content, 0644)
		require.NoError(t, err)
	}
}

// EncodeMarkerFrame builds an encoded 1xN white frame whose characters
// spell marker, so loaded sequences can be identified by their text.
func EncodeMarkerFrame(t *testing.T, marker string) []byte {
	t.Helper()
	cells := make([]cframe.Cell, len(marker))
	for i := range marker {
		cells[i] = cframe.Cell{Char: marker[i], R: 255, G: 255, B: 255}
	}
	grid, ok := cframe.FromCells(len(marker), 1, cells)
	require.True(t, ok)
	return cframe.Encode(grid)
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(str string) string {
	// Simple ANSI escape sequence stripping
	// This is a basic implementation - you might want to use a more robust solution
	var result []rune
	inEscape := false
	for _, r := range str {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
			}
			continue
		}
		result = append(result, r)
	}
	return string(result)
}
