package trash

import (
	"fmt"
	"path/filepath"
)

// Config selects and tunes the system trash
type Config struct {
	// TrashDir overrides the platform trash location: the XDG trash root
	// (containing files/ and info/) or the macOS ~/.Trash
	TrashDir string

	// HomeFallback lets files from devices without their own trash be
	// copied into the home trash, and lets undo copy them back
	HomeFallback bool

	// ForceHomeTrash ignores $topdir/.Trash-$uid directories
	ForceHomeTrash bool
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	if c.TrashDir != "" && !filepath.IsAbs(c.TrashDir) {
		return fmt.Errorf("trash directory must be an absolute path: %s", c.TrashDir)
	}
	return nil
}
