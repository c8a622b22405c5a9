//go:build windows

package xdg

import (
	"fmt"
	"os"
	"path/filepath"
)

// getMountPoints returns nothing on Windows; only the home trash is used
func getMountPoints() ([]string, error) {
	return nil, nil
}

func isValidExternalTrash(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.IsDir()
}

func createTrashDir(path string) error {
	for _, dir := range []string{path, filepath.Join(path, "files"), filepath.Join(path, "info")} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create trash directory %s: %w", dir, err)
		}
	}
	return nil
}
