package cframe_test

import (
	"testing"

	"github.com/cascii/cascii-terminal-decorator/pkg/cframe"

	"github.com/stretchr/testify/assert"
)

func TestExtractIndex(t *testing.T) {
	cases := []struct {
		name     string
		stem     string
		fallback int
		want     int
	}{
		{"plain numeric suffix", "frame_7", 99, 7},
		{"leading zeros", "frame_007", 99, 7},
		{"multi digit", "frame_1234", 99, 1234},
		{"digits only", "42", 99, 42},
		{"no digits", "intro", 3, 3},
		{"digits not trailing", "frame_10_final", 5, 5},
		{"empty stem", "", 8, 8},
		{"numeric order beats lexicographic", "frame_10", 0, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cframe.ExtractIndex(tc.stem, tc.fallback))
		})
	}
}
