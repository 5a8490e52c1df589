package cframe

import "strconv"

// ExtractIndex derives a sort index from a frame filename stem. A trailing
// run of decimal digits (frame_007 -> 7) wins; otherwise the fallback
// ordinal keeps the ordering total for unnumbered files.
func ExtractIndex(stem string, fallback int) int {
	start := len(stem)
	for start > 0 && stem[start-1] >= '0' && stem[start-1] <= '9' {
		start--
	}
	if start == len(stem) {
		return fallback
	}
	index, err := strconv.Atoi(stem[start:])
	if err != nil {
		// Digit run too long to represent; ordering still has to be total.
		return fallback
	}
	return index
}
