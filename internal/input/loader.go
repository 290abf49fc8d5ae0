// Package input reads the static text blob that a puzzle is solved against.
package input

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/puzzlegrid/internal/ctxlog"
)

// ErrNotFound is returned when a puzzle's input file does not exist.
var ErrNotFound = errors.New("input file not found")

// Loader reads puzzle inputs from a directory.
type Loader struct {
	Dir string
}

// NewLoader creates a Loader rooted at dir.
func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir}
}

// Path returns the file path for a puzzle. An empty file name falls back to
// "<puzzle>.txt"; relative names are resolved against the loader directory.
func (l *Loader) Path(puzzleName, fileName string) string {
	if fileName == "" {
		fileName = puzzleName + ".txt"
	}
	if filepath.IsAbs(fileName) {
		return fileName
	}
	return filepath.Join(l.Dir, fileName)
}

// Read returns the normalised contents of a puzzle's input: line endings are
// converted to "\n" and trailing newlines are removed.
func (l *Loader) Read(ctx context.Context, puzzleName, fileName string) (string, error) {
	path := l.Path(puzzleName, fileName)
	ctxlog.FromContext(ctx).Debug("Reading puzzle input.", "puzzle", puzzleName, "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("failed to read input %s: %w", path, err)
	}
	return Normalize(string(data)), nil
}

// Normalize converts CRLF line endings to LF and trims trailing newlines.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.TrimRight(text, "\n")
}
