package utils

import (
	"os"
	"path/filepath"
)

// WriteFile writes content to a file, creating parent directories.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	// Security: Use 0600 permissions to restrict access to the file owner
	return os.WriteFile(path, data, 0600)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
