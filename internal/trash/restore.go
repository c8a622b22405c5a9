package trash

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"path/filepath"

	"github.com/shotsweep/shotsweep/internal/fs"
)

const restoredSuffix = " (restored)"

// Restorer undoes disposals recorded on a ledger
type Restorer struct {
	trasher       Trasher
	ledger        *Ledger
	allowCrossDev bool
}

// RestorerOption configures a Restorer
type RestorerOption func(*Restorer)

// WithCrossDevice lets a restore copy the file back when the trash and the
// original location are on different devices
func WithCrossDevice(allow bool) RestorerOption {
	return func(r *Restorer) {
		r.allowCrossDev = allow
	}
}

// NewRestorer returns a Restorer popping entries from ledger
func NewRestorer(t Trasher, ledger *Ledger, opts ...RestorerOption) *Restorer {
	r := &Restorer{
		trasher: t,
		ledger:  ledger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Undo restores the count most recent disposals, newest first. A count of
// zero or less means one. Every popped entry is consumed even when nothing
// could be moved; such entries come back with StatusUnresolved.
//
// A failed move stops the call. The returned slice then holds the entries
// processed before the failure, and a permission failure is reported as a
// *PermissionError.
func (r *Restorer) Undo(count int) ([]Restored, error) {
	slog.Debug("undo started", "count", count)
	defer slog.Debug("undo finished")

	if count <= 0 {
		count = 1
	}
	n := min(count, r.ledger.Len())

	restored := make([]Restored, 0, n)
	for i := 0; i < n; i++ {
		entry, ok := r.ledger.Pop()
		if !ok {
			break
		}
		result, err := r.restore(entry)
		if err != nil {
			return restored, err
		}
		restored = append(restored, result)
	}
	return restored, nil
}

func (r *Restorer) restore(entry UndoEntry) (Restored, error) {
	target, status := restoreTarget(entry.OriginalPath)

	src := entry.TrashedPath
	if !fs.Exists(src) {
		trashDir := r.trasher.Dir(entry.OriginalPath)
		found, ok := FindCandidate(trashDir, entry.FileName, entry.DeletedAt)
		if !ok || !fs.Exists(found) {
			slog.Warn("nothing to restore in trash", "file", entry.FileName, "trashDir", trashDir)
			return Restored{UndoEntry: entry, Status: StatusUnresolved}, nil
		}
		slog.Debug("recorded trash path is stale", "recorded", src, "found", found)
		src = found
	}

	err := fs.Move(src, target, fs.MoveOptions{
		AllowCrossDev: r.allowCrossDev,
		NoClobber:     true,
	})
	if err != nil {
		if errors.Is(err, iofs.ErrPermission) {
			return Restored{}, &PermissionError{
				Entry:  entry,
				Target: target,
				Err:    err,
				Hint:   permissionHint,
			}
		}
		return Restored{}, fmt.Errorf("restore %s: %w", entry.OriginalPath, err)
	}

	if rel, ok := r.trasher.(Releaser); ok {
		if err := rel.Release(src); err != nil {
			slog.Warn("failed to release trash metadata", "path", src, "error", err)
		}
	}

	slog.Info("restored from trash", "from", src, "to", target, "status", status)
	return Restored{UndoEntry: entry, Status: status, RestoredTo: target}, nil
}

// restoreTarget returns where a file should go back to. When the original
// path is occupied, " (restored)" is added to the stem; if that is taken as
// well a counter is appended inside the parentheses.
func restoreTarget(original string) (string, Status) {
	if !fs.Exists(original) {
		return original, StatusRestored
	}

	dir := filepath.Dir(original)
	stem, ext := fs.SplitName(filepath.Base(original))

	target := filepath.Join(dir, stem+restoredSuffix+ext)
	for i := 2; fs.Exists(target); i++ {
		target = filepath.Join(dir, fmt.Sprintf("%s (restored %d)%s", stem, i, ext))
	}
	return target, StatusRenamed
}
