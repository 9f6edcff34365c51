// Package output handles file naming and writing for habrmd.
// Files are named after the article title with path-reserved characters removed.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// reservedChars may not appear in file names on common filesystems.
const reservedChars = `\/*?:"<>|`

// Writer writes rendered articles to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting outputDir, which defaults to ".".
// The directory is created on the first write, not here.
func New(outputDir string) *Writer {
	if outputDir == "" {
		outputDir = "."
	}
	return &Writer{OutputDir: outputDir}
}

// Write stores data as <sanitized title><ext> under OutputDir, creating the
// directory tree when missing. An existing file is overwritten.
func (w *Writer) Write(title string, data []byte, ext string) (string, error) {
	if err := os.MkdirAll(w.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(w.OutputDir, Filename(title, ext))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// Filename returns the sanitized title with ext appended.
func Filename(title, ext string) string {
	return Sanitize(title) + ext
}

// Sanitize removes every reserved path character from s. Everything else,
// including non-ASCII text, is kept. The result may be empty.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(reservedChars, r) {
			return -1
		}
		return r
	}, s)
}
