// Package writer exposes sinks for encoded header sections.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileWriter writes section bytes to a filesystem path atomically.
type FileWriter struct {
	Path string
}

// WriteSection writes buf to the configured path atomically via temp file + rename.
func (w *FileWriter) WriteSection(buf []byte) error {
	// Temp file lives in the target directory so the rename stays atomic
	dir := filepath.Dir(w.Path)
	tmpFile, err := os.CreateTemp(dir, ".psdkit-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.Write(buf); writeErr != nil {
		return fmt.Errorf("write temp file: %w", writeErr)
	}
	if syncErr := tmpFile.Sync(); syncErr != nil {
		return fmt.Errorf("sync temp file: %w", syncErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil // Don't clean up in defer

	if renameErr := os.Rename(tmpPath, w.Path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}

	return nil
}
