package fs

import (
	"log/slog"
	"os"
	"path/filepath"

	cp "github.com/otiai10/copy"
)

// MoveOptions specifies options for move operations
type MoveOptions struct {
	AllowCrossDev bool // Fall back to copy and delete across devices
	NoClobber     bool // Fail with ErrDestinationExists instead of replacing dst
}

// Move renames src to dst. When the two live on different devices and
// AllowCrossDev is set, the content is copied (times preserved) and the
// source removed afterwards.
func Move(src, dst string, opts MoveOptions) error {
	if src == "" || dst == "" {
		return ErrInvalidPath
	}

	if _, err := os.Lstat(src); err != nil {
		if os.IsNotExist(err) {
			return &MoveError{Op: "stat", Src: src, Dst: dst, Err: ErrSourceNotFound}
		}
		return &MoveError{Op: "stat", Src: src, Dst: dst, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return &MoveError{Op: "create_parent", Src: src, Dst: dst, Err: err}
	}

	if opts.NoClobber {
		if _, err := os.Lstat(dst); err == nil {
			return &MoveError{Op: "check_destination", Src: src, Dst: dst, Err: ErrDestinationExists}
		}
	}

	samePartition, err := isSamePartition(src, dst)
	if err != nil {
		slog.Debug("failed to compare partitions, trying rename", "error", err)
		samePartition = true
	}

	if samePartition {
		if err := os.Rename(src, dst); err != nil {
			return &MoveError{Op: "rename", Src: src, Dst: dst, Err: err}
		}
		return nil
	}

	if !opts.AllowCrossDev {
		return &MoveError{Op: "rename", Src: src, Dst: dst, Err: ErrCrossDevice}
	}

	slog.Debug("different partitions detected, falling back to copy and delete", "from", src, "to", dst)
	return copyAndDelete(src, dst)
}

// copyAndDelete copies a file or directory and then deletes the original
func copyAndDelete(src, dst string) error {
	opts := cp.Options{
		OnSymlink: func(src string) cp.SymlinkAction {
			return cp.Shallow
		},
		PreserveTimes: true,
		Sync:          true,
	}

	if err := cp.Copy(src, dst, opts); err != nil {
		return &MoveError{Op: "copy", Src: src, Dst: dst, Err: err}
	}

	if err := os.RemoveAll(src); err != nil {
		if rmErr := os.RemoveAll(dst); rmErr != nil {
			slog.Error("failed to clean up copied destination", "path", dst, "error", rmErr)
		}
		return &MoveError{Op: "remove_source", Src: src, Dst: dst, Err: err}
	}

	return nil
}

// Exists reports whether anything (including a dangling symlink) is at path
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
