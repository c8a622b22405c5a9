// Package finder moves files to the macOS Trash through Finder, so the
// Trash gets Finder's own collision names ("name 2.png") and "Put Back".
package finder

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const script = `
on run argv
  tell application "Finder"
    repeat with f in argv
      move (f as POSIX file) to trash
    end repeat
  end tell
end run
`

// ErrUnsupported is returned when osascript is not available
var ErrUnsupported = errors.New("finder trash is only supported on macOS")

// Trasher asks Finder to move files to the Trash
type Trasher struct {
	bin      string
	trashDir string
}

// New locates osascript and the Trash directory. trashDir overrides ~/.Trash.
func New(trashDir string) (*Trasher, error) {
	bin, err := exec.LookPath("osascript")
	if err != nil {
		return nil, ErrUnsupported
	}

	if trashDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		trashDir = filepath.Join(home, ".Trash")
	}

	return &Trasher{
		bin:      bin,
		trashDir: trashDir,
	}, nil
}

// Dir returns the Trash directory
func (t *Trasher) Dir(string) string {
	return t.trashDir
}

// Trash moves path to the Trash
func (t *Trasher) Trash(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := os.Lstat(abs); err != nil {
		return err
	}

	var stderr strings.Builder
	cmd := exec.Command(t.bin, "-e", script, abs)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		slog.Debug("osascript failed", "path", abs, "stderr", msg, "error", err)
		if msg != "" {
			return fmt.Errorf("finder: %s: %w", msg, err)
		}
		return fmt.Errorf("finder: %w", err)
	}
	return nil
}
