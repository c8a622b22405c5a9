package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shotsweep/shotsweep/internal/fs"
	"github.com/shotsweep/shotsweep/internal/shell"
	"github.com/shotsweep/shotsweep/internal/trash"
)

// Dispose moves the given files to the trash in one batch
func (c CLI) Dispose(args []string) error {
	slog.Debug("cli.dispose started")
	defer slog.Debug("cli.dispose finished")

	if len(args) == 0 {
		return errors.New("too few arguments")
	}

	paths := make([]string, 0, len(args))
	for _, arg := range args {
		path, err := validatePath(arg)
		if err != nil {
			return err
		}
		paths = append(paths, path)
	}

	entries, err := c.disposer.DisposeBatch(paths)
	if perr := c.printEntries(entries); perr != nil {
		return perr
	}
	return err
}

func (c CLI) printEntries(entries []trash.UndoEntry) error {
	if c.option.JSON {
		if entries == nil {
			entries = []trash.UndoEntry{}
		}
		enc := json.NewEncoder(c.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if !c.config.Core.Verbose {
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(c.stdout, "trashed %s -> %s\n", shell.Quote(e.OriginalPath), shell.Quote(e.TrashedPath))
	}
	return nil
}

// validatePath rejects paths that must never be trashed and returns the
// absolute form of the rest
func validatePath(path string) (string, error) {
	unsafe, err := fs.IsUnsafePath(path)
	if err != nil {
		return "", err
	}
	if unsafe {
		return "", fmt.Errorf("refusing to trash unsafe path %q", path)
	}

	if _, err := os.Lstat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s: no such file or directory", path)
		}
		return "", err
	}

	return filepath.Abs(path)
}
