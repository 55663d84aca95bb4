// Package staging manages the short-lived files around an optimization run:
// uploaded resumes waiting for extraction and rendered PDFs waiting for
// download. Files are uuid-named and reaped by age.
package staging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store holds the staging directories. Both are created on construction.
type Store struct {
	uploadDir string
	outputDir string
}

const outputPrefix = "optimized_"

// New creates the staging directories if needed and returns the store.
func New(uploadDir, outputDir string) (*Store, error) {
	for _, dir := range []string{uploadDir, outputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create staging directory %s: %w", dir, err)
		}
	}
	return &Store{uploadDir: uploadDir, outputDir: outputDir}, nil
}

// AllowedExtension returns the lowercase extension of an upload filename and
// whether it names a supported resume format.
func AllowedExtension(filename string) (string, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch ext {
	case "pdf", "docx", "doc":
		return ext, true
	default:
		return ext, false
	}
}

// SaveUpload writes an uploaded resume under a uuid-prefixed, sanitized name
// and returns its path.
func (s *Store) SaveUpload(filename string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%s_%s", uuid.New(), sanitizeFilename(filename))
	path := filepath.Join(s.uploadDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create staged upload: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write staged upload: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to close staged upload: %w", err)
	}
	return path, nil
}

// NewOutput reserves a fresh output name and returns both the bare filename
// (for the download URL) and its full path.
func (s *Store) NewOutput() (filename, path string) {
	filename = fmt.Sprintf("%s%s.pdf", outputPrefix, uuid.New())
	return filename, filepath.Join(s.outputDir, filename)
}

// OutputPath maps a download filename back to its staged path. Only names the
// store itself issued are accepted, which also blocks path traversal.
func (s *Store) OutputPath(filename string) (string, error) {
	if filename != filepath.Base(filename) || !strings.HasPrefix(filename, outputPrefix) || filepath.Ext(filename) != ".pdf" {
		return "", fmt.Errorf("invalid output filename: %s", filename)
	}
	path := filepath.Join(s.outputDir, filename)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("output file not found: %s", filename)
	}
	return path, nil
}

// Remove deletes a staged file, ignoring files already gone.
func (s *Store) Remove(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("Error removing staged file %s: %v", path, err)
	}
}

// Cleanup removes regular staged files older than maxAge from both
// directories and reports how many were deleted.
func (s *Store) Cleanup(maxAge time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxAge)
	removed := 0

	for _, dir := range []string{s.uploadDir, s.outputDir} {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return removed, fmt.Errorf("failed to read staging directory %s: %w", dir, err)
		}
		for _, entry := range entries {
			if !entry.Type().IsRegular() {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				continue
			}
			if info.ModTime().Before(cutoff) {
				if err := os.Remove(filepath.Join(dir, entry.Name())); err == nil {
					removed++
				}
			}
		}
	}
	return removed, nil
}

// sanitizeFilename strips directory components and any character outside
// [A-Za-z0-9._-] from a client-supplied filename.
func sanitizeFilename(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))

	var sb strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == '.', r == '_', r == '-':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}

	if sb.Len() == 0 || strings.Trim(sb.String(), "._") == "" {
		return "upload"
	}
	return sb.String()
}
