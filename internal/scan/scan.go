// Package scan discovers frame files in a directory and assembles them
// into the ordered playback sequence. Binary .cframe files take precedence
// for the whole sequence; a text-only sequence may still pair per-stem
// sibling .cframe files for color.
package scan

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"golang.org/x/sync/errgroup"

	"github.com/cascii/cascii-terminal-decorator/internal/errors"
	"github.com/cascii/cascii-terminal-decorator/internal/log"
	"github.com/cascii/cascii-terminal-decorator/pkg/cframe"
)

type candidate struct {
	index int
	name  string
	path  string
}

// Load reads a frame directory and returns the ordered frame sequence.
// pattern is a glob matched against text frame stems (binary frames are
// taken unfiltered, matching how authored sets are laid out). Any
// unreadable or malformed file aborts the whole load: a partially loaded
// sequence would misrepresent the authored animation.
func Load(dir, pattern string) ([]cframe.Frame, error) {
	stemGlob, err := glob.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid frame pattern %q", pattern)
	}

	binaries, err := collectCandidates(dir, ".cframe", nil)
	if err != nil {
		return nil, err
	}
	if len(binaries) > 0 {
		log.With(log.F("dir", dir), log.F("count", len(binaries))).Debug("loading binary frame sequence")
		return loadBinary(binaries)
	}

	texts, err := collectCandidates(dir, ".txt", stemGlob)
	if err != nil {
		return nil, err
	}
	if len(texts) == 0 {
		return nil, errors.NewNoFramesError(dir)
	}

	log.With(log.F("dir", dir), log.F("count", len(texts))).Debug("loading text frame sequence")
	return loadText(texts)
}

// collectCandidates lists files with the given extension, ordered by the
// numeric index embedded in their stem with the discovery position as
// fallback and the filename as tiebreak.
func collectCandidates(dir, ext string, stemGlob glob.Glob) ([]candidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewFileError("reading frame directory", dir, errors.FileUnreadable, err)
	}

	var found []candidate
	for position, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.EqualFold(filepath.Ext(name), ext) {
			continue
		}
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		if stemGlob != nil && !stemGlob.Match(stem) {
			continue
		}
		found = append(found, candidate{
			index: cframe.ExtractIndex(stem, position),
			name:  name,
			path:  filepath.Join(dir, name),
		})
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].index != found[j].index {
			return found[i].index < found[j].index
		}
		return found[i].name < found[j].name
	})
	return found, nil
}

// loadBinary decodes the whole .cframe sequence, reading files
// concurrently and reassembling by position.
func loadBinary(candidates []candidate) ([]cframe.Frame, error) {
	frames := make([]cframe.Frame, len(candidates))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, cand := range candidates {
		i, cand := i, cand
		g.Go(func() error {
			frame, err := readBinaryFrame(cand.path)
			if err != nil {
				return err
			}
			frames[i] = frame
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return frames, nil
}

func readBinaryFrame(path string) (cframe.Frame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cframe.Frame{}, errors.NewFileError("reading frame file", path, errors.FileUnreadable, err)
	}
	grid, err := cframe.Decode(data)
	if err != nil {
		return cframe.Frame{}, errors.Wrapf(err, "parsing %s", path)
	}

	// A same-stem .txt sibling overrides the text extracted from the grid.
	siblingPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".txt"
	raw, err := os.ReadFile(siblingPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return cframe.Frame{}, errors.NewFileError("reading frame file", siblingPath, errors.FileUnreadable, err)
		}
		return cframe.NewColorFrame(grid.Text(), grid), nil
	}
	return cframe.NewColorFrame(cframe.NormalizeText(string(raw)), grid), nil
}

// loadText builds the sequence from text files, pairing each with a
// same-stem .cframe sibling when one exists. Paired frames take their text
// from the text file, not from the binary.
func loadText(candidates []candidate) ([]cframe.Frame, error) {
	frames := make([]cframe.Frame, 0, len(candidates))
	for _, cand := range candidates {
		raw, err := os.ReadFile(cand.path)
		if err != nil {
			return nil, errors.NewFileError("reading frame file", cand.path, errors.FileUnreadable, err)
		}
		content := cframe.NormalizeText(string(raw))

		siblingPath := strings.TrimSuffix(cand.path, filepath.Ext(cand.path)) + ".cframe"
		data, err := os.ReadFile(siblingPath)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, errors.NewFileError("reading frame file", siblingPath, errors.FileUnreadable, err)
			}
			frames = append(frames, cframe.NewTextFrame(content))
			continue
		}

		grid, err := cframe.Decode(data)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %s", siblingPath)
		}
		frames = append(frames, cframe.NewColorFrame(content, grid))
	}
	return frames, nil
}

// HasColor reports whether any frame in the sequence carries a color grid.
func HasColor(frames []cframe.Frame) bool {
	for _, frame := range frames {
		if frame.HasColor() {
			return true
		}
	}
	return false
}
