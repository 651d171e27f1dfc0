// Package fsutil provides the small file helpers shared by the commands.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReadText returns the content of path as a string.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteText writes content to path, creating parent directories as needed.
// An existing file is overwritten.
func WriteText(path, content string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	return os.WriteFile(path, []byte(content), 0644)
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
