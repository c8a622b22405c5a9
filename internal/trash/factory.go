package trash

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/shotsweep/shotsweep/internal/trash/finder"
	"github.com/shotsweep/shotsweep/internal/trash/xdg"
)

// NewTrasher returns the trash primitive for the running platform: Finder
// on macOS, the XDG trash everywhere else
func NewTrasher(cfg Config) (Trasher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		t, err := finder.New(cfg.TrashDir)
		if err != nil {
			return nil, fmt.Errorf("failed to create finder trash: %w", err)
		}
		slog.Info("trash selected", "type", "finder", "dir", t.Dir(""))
		return t, nil
	default:
		t, err := xdg.New(xdg.Options{
			HomeTrashDir:   cfg.TrashDir,
			HomeFallback:   cfg.HomeFallback,
			ForceHomeTrash: cfg.ForceHomeTrash,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create XDG trash: %w", err)
		}
		slog.Info("trash selected", "type", "xdg")
		return t, nil
	}
}
