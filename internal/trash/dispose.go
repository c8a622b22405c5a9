package trash

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/shotsweep/shotsweep/internal/fs"
)

// Disposer moves files to the trash and records how to undo it
type Disposer struct {
	trasher Trasher
	ledger  *Ledger
	now     func() time.Time
}

// NewDisposer returns a Disposer that pushes its entries onto ledger
func NewDisposer(t Trasher, ledger *Ledger) *Disposer {
	return &Disposer{
		trasher: t,
		ledger:  ledger,
		now:     time.Now,
	}
}

// DisposeBatch trashes paths in order. Paths without a final name component
// are skipped. The first trash failure stops the batch; entries recorded
// before it stay on the ledger.
func (d *Disposer) DisposeBatch(paths []string) ([]UndoEntry, error) {
	slog.Debug("dispose batch started", "count", len(paths))
	defer slog.Debug("dispose batch finished")

	var entries []UndoEntry
	for _, path := range paths {
		name := fs.BaseName(path)
		if name == "" {
			slog.Debug("skip path without file name", "path", path)
			continue
		}

		trashDir := d.trasher.Dir(path)
		deletedAt := time.UnixMilli(d.now().UnixMilli())

		if err := d.trasher.Trash(path); err != nil {
			slog.Error("failed to move file to trash", "path", path, "error", err)
			return entries, &DisposalError{Path: path, Err: err}
		}

		trashedPath, ok := FindCandidate(trashDir, name, deletedAt)
		if !ok {
			trashedPath = filepath.Join(trashDir, name)
			slog.Warn("trashed file not found, recording a guess", "path", path, "guess", trashedPath)
		}

		entry := UndoEntry{
			OriginalPath: path,
			TrashedPath:  trashedPath,
			FileName:     name,
			DeletedAt:    deletedAt,
		}
		d.ledger.Push(entry)
		entries = append(entries, entry)

		slog.Info("moved to trash", "from", path, "to", trashedPath)
	}

	return entries, nil
}
