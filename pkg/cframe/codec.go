package cframe

import (
	"bytes"
	"encoding/binary"

	"github.com/cascii/cascii-terminal-decorator/internal/errors"
)

// On-disk layout (all multi-byte fields big-endian):
//
//	magic "CFRA" | version 0x01 | width uint16 | height uint16
//	then runs until width*height cells are produced, row-major:
//	  0x00 len           — len transparent cells
//	  0x01 len r g b c[] — len visible cells sharing one color, one
//	                       character byte per cell
//
// Runs may cross row boundaries; the grouping is an encoding detail and
// never visible through the accessors.
var formatMagic = []byte("CFRA")

const (
	formatVersion = 0x01
	headerSize    = 9

	runSkip  = 0x00
	runColor = 0x01

	maxRunLength = 0xFFFF
)

// Decode parses a raw cframe buffer into a CFrame. It is stateless:
// decoding the same bytes always yields the same grid.
func Decode(data []byte) (*CFrame, error) {
	if len(data) < headerSize {
		return nil, errors.NewFormatError("header truncated", len(data), errors.TruncatedInput)
	}
	if !bytes.Equal(data[:4], formatMagic) {
		return nil, errors.NewFormatError("bad magic, not a cframe file", 0, errors.BadMagic)
	}
	if data[4] != formatVersion {
		return nil, errors.NewFormatError("unsupported format version", 4, errors.BadVersion)
	}

	width := int(binary.BigEndian.Uint16(data[5:7]))
	height := int(binary.BigEndian.Uint16(data[7:9]))
	if width == 0 || height == 0 {
		return nil, errors.NewFormatError("zero frame dimension", 5, errors.BadDimensions)
	}

	total := width * height
	cells := make([]Cell, 0, total)
	off := headerSize

	for len(cells) < total {
		if off+3 > len(data) {
			return nil, errors.NewFormatError("truncated before grid was complete", off, errors.TruncatedInput)
		}
		tag := data[off]
		length := int(binary.BigEndian.Uint16(data[off+1 : off+3]))
		if length == 0 {
			return nil, errors.NewFormatError("zero-length run", off, errors.BadRun)
		}
		if len(cells)+length > total {
			return nil, errors.NewFormatError("run overflows declared grid", off, errors.CellCountMismatch)
		}

		switch tag {
		case runSkip:
			off += 3
			for i := 0; i < length; i++ {
				cells = append(cells, Cell{Char: ' ', Skip: true})
			}
		case runColor:
			if off+6 > len(data) {
				return nil, errors.NewFormatError("truncated run color", off, errors.TruncatedInput)
			}
			r, g, b := data[off+3], data[off+4], data[off+5]
			off += 6
			if off+length > len(data) {
				return nil, errors.NewFormatError("truncated run characters", off, errors.TruncatedInput)
			}
			for i := 0; i < length; i++ {
				cells = append(cells, Cell{Char: data[off+i], R: r, G: g, B: b})
			}
			off += length
		default:
			return nil, errors.NewFormatError("unknown run tag", off, errors.BadRun)
		}
	}

	if off != len(data) {
		return nil, errors.NewFormatError("trailing bytes after final run", off, errors.CellCountMismatch)
	}

	return &CFrame{width: width, height: height, cells: cells}, nil
}

// ExtractText parses the same buffer Decode accepts and returns the
// newline-delimited character layer, independent of color.
func ExtractText(data []byte) (string, error) {
	frame, err := Decode(data)
	if err != nil {
		return "", err
	}
	return frame.Text(), nil
}

// Encode serializes a grid back to the cframe byte layout, grouping
// horizontally adjacent cells that share a color (or share transparency)
// into maximal runs.
func Encode(f *CFrame) []byte {
	var buf bytes.Buffer
	buf.Write(formatMagic)
	buf.WriteByte(formatVersion)

	var dims [4]byte
	binary.BigEndian.PutUint16(dims[0:2], uint16(f.width))
	binary.BigEndian.PutUint16(dims[2:4], uint16(f.height))
	buf.Write(dims[:])

	total := len(f.cells)
	for start := 0; start < total; {
		first := f.cells[start]
		end := start + 1
		for end < total && end-start < maxRunLength && sameRun(first, f.cells[end]) {
			end++
		}

		var lenBytes [2]byte
		binary.BigEndian.PutUint16(lenBytes[:], uint16(end-start))
		if first.Skip {
			buf.WriteByte(runSkip)
			buf.Write(lenBytes[:])
		} else {
			buf.WriteByte(runColor)
			buf.Write(lenBytes[:])
			buf.Write([]byte{first.R, first.G, first.B})
			for i := start; i < end; i++ {
				buf.WriteByte(f.cells[i].Char)
			}
		}
		start = end
	}

	return buf.Bytes()
}

func sameRun(a, b Cell) bool {
	if a.Skip || b.Skip {
		return a.Skip == b.Skip
	}
	return a.R == b.R && a.G == b.G && a.B == b.B
}
