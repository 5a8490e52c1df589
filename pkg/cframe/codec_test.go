package cframe_test

import (
	"encoding/binary"
	"testing"

	"github.com/cascii/cascii-terminal-decorator/internal/errors"
	"github.com/cascii/cascii-terminal-decorator/pkg/cframe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Buffer builders so tests spell out the byte grammar independently of
// the Encode implementation.

func header(width, height int) []byte {
	buf := []byte("CFRA")
	buf = append(buf, 0x01)
	buf = binary.BigEndian.AppendUint16(buf, uint16(width))
	buf = binary.BigEndian.AppendUint16(buf, uint16(height))
	return buf
}

func colorRun(r, g, b byte, chars string) []byte {
	buf := []byte{0x01}
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(chars)))
	buf = append(buf, r, g, b)
	return append(buf, chars...)
}

func skipRun(length int) []byte {
	buf := []byte{0x00}
	return binary.BigEndian.AppendUint16(buf, uint16(length))
}

func concat(parts ...[]byte) []byte {
	var buf []byte
	for _, part := range parts {
		buf = append(buf, part...)
	}
	return buf
}

func TestDecode(t *testing.T) {
	// 3x2 grid: red "ab", one transparent cell, blue "xyz"
	data := concat(
		header(3, 2),
		colorRun(255, 0, 0, "ab"),
		skipRun(1),
		colorRun(0, 0, 255, "xyz"),
	)

	frame, err := cframe.Decode(data)
	require.NoError(t, err)

	assert.Equal(t, 3, frame.Width())
	assert.Equal(t, 2, frame.Height())

	ch, ok := frame.CharAt(0, 0)
	require.True(t, ok)
	assert.Equal(t, byte('a'), ch)

	r, g, b, ok := frame.RGBAt(0, 1)
	require.True(t, ok)
	assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})

	assert.True(t, frame.ShouldSkip(0, 2))
	assert.False(t, frame.ShouldSkip(1, 0))

	// Skip cells still answer direct queries
	ch, ok = frame.CharAt(0, 2)
	require.True(t, ok)
	assert.Equal(t, byte(' '), ch)

	// The color run crossed the row boundary
	ch, ok = frame.CharAt(1, 2)
	require.True(t, ok)
	assert.Equal(t, byte('z'), ch)
	r, g, b, ok = frame.RGBAt(1, 0)
	require.True(t, ok)
	assert.Equal(t, [3]uint8{0, 0, 255}, [3]uint8{r, g, b})
}

func TestDecodeOutOfRangeQueries(t *testing.T) {
	frame, err := cframe.Decode(concat(header(2, 1), colorRun(1, 2, 3, "hi")))
	require.NoError(t, err)

	_, ok := frame.CharAt(0, 2)
	assert.False(t, ok)
	_, ok = frame.CharAt(1, 0)
	assert.False(t, ok)
	_, _, _, ok = frame.RGBAt(-1, 0)
	assert.False(t, ok)
	assert.True(t, frame.ShouldSkip(5, 5))
}

func TestDecodeDeterministic(t *testing.T) {
	data := concat(header(4, 1), colorRun(9, 9, 9, "ok"), skipRun(2))

	first, err := cframe.Decode(data)
	require.NoError(t, err)
	second, err := cframe.Decode(data)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"empty buffer", nil},
		{"short header", []byte("CFRA")},
		{"bad magic", concat([]byte("XFRA\x01\x00\x01\x00\x01"), colorRun(0, 0, 0, "a"))},
		{"bad version", concat([]byte("CFRA\x02\x00\x01\x00\x01"), colorRun(0, 0, 0, "a"))},
		{"zero width", concat(header(0, 3), colorRun(0, 0, 0, "a"))},
		{"zero height", concat(header(3, 0), colorRun(0, 0, 0, "a"))},
		{"zero-length run", concat(header(1, 1), []byte{0x00, 0x00, 0x00})},
		{"unknown run tag", concat(header(1, 1), []byte{0x07, 0x00, 0x01})},
		{"missing cells", concat(header(4, 1), colorRun(0, 0, 0, "ab"))},
		{"run overflows grid", concat(header(2, 1), colorRun(0, 0, 0, "abc"))},
		{"truncated run header", concat(header(2, 1), []byte{0x01, 0x00})},
		{"truncated run color", concat(header(2, 1), []byte{0x01, 0x00, 0x02, 0xFF})},
		{"truncated run characters", concat(header(2, 1), []byte{0x01, 0x00, 0x02, 1, 2, 3, 'a'})},
		{"trailing bytes", concat(header(1, 1), colorRun(0, 0, 0, "a"), []byte{0xAA})},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cframe.Decode(tc.data)
			require.Error(t, err)
			assert.True(t, errors.IsFormatError(err), "expected a FormatError, got %v", err)

			_, err = cframe.ExtractText(tc.data)
			require.Error(t, err)
			assert.True(t, errors.IsFormatError(err))
		})
	}
}

func TestExtractTextMatchesGrid(t *testing.T) {
	data := concat(
		header(3, 2),
		colorRun(10, 20, 30, "ab"),
		skipRun(2),
		colorRun(40, 50, 60, "cd"),
	)

	frame, err := cframe.Decode(data)
	require.NoError(t, err)
	text, err := cframe.ExtractText(data)
	require.NoError(t, err)

	assert.Equal(t, "ab \n cd\n", text)

	lines := []string{"ab ", " cd"}
	for row := 0; row < frame.Height(); row++ {
		for col := 0; col < frame.Width(); col++ {
			ch, ok := frame.CharAt(row, col)
			require.True(t, ok)
			assert.Equal(t, lines[row][col], ch, "mismatch at (%d,%d)", row, col)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cells := []cframe.Cell{
		{Char: '#', R: 200, G: 100, B: 50},
		{Char: '#', R: 200, G: 100, B: 50},
		{Char: ' ', Skip: true},
		{Char: '@', R: 1, G: 2, B: 3},
		{Char: ' ', Skip: true},
		{Char: ' ', Skip: true},
	}
	original, ok := cframe.FromCells(3, 2, cells)
	require.True(t, ok)

	decoded, err := cframe.Decode(cframe.Encode(original))
	require.NoError(t, err)
	assert.Equal(t, original, decoded)

	// Re-encoding the decoded grid is stable
	assert.Equal(t, cframe.Encode(original), cframe.Encode(decoded))
}

func TestFromCellsRejectsBadShapes(t *testing.T) {
	_, ok := cframe.FromCells(2, 2, make([]cframe.Cell, 3))
	assert.False(t, ok)
	_, ok = cframe.FromCells(0, 2, nil)
	assert.False(t, ok)
}
