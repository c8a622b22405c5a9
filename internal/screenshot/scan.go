package screenshot

import (
	"cmp"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Options controls what Scan returns
type Options struct {
	// Extensions overrides DefaultExtensions
	Extensions []string

	Filter FilterOptions

	// SortBy is one of the SortBy* keys. Empty keeps directory order.
	SortBy     string
	Descending bool
}

// Scan lists the screenshots directly inside dir. Subdirectories are not
// walked and only regular files are returned.
func Scan(dir string, opts Options) ([]Item, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	entries = lo.Filter(entries, func(e fs.DirEntry, _ int) bool {
		return e.Type().IsRegular() && IsScreenshotName(e.Name(), opts.Extensions)
	})
	slog.Debug("scan", "dir", dir, "candidates", len(entries))

	found := make([]*Item, len(entries))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, entry := range entries {
		i, entry := i, entry
		g.Go(func() error {
			item, err := newItem(dir, entry)
			if err != nil {
				// removed while scanning
				slog.Debug("skip entry", "name", entry.Name(), "error", err)
				return nil
			}
			found[i] = item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := lo.Map(lo.Compact(found), func(item *Item, _ int) Item {
		return *item
	})
	items = Filter(items, opts.Filter)

	if err := Sort(items, opts.SortBy, opts.Descending); err != nil {
		return nil, err
	}
	return items, nil
}

func newItem(dir string, entry fs.DirEntry) (*Item, error) {
	info, err := entry.Info()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, entry.Name())
	modified := info.ModTime()

	return &Item{
		Path:       path,
		FileName:   entry.Name(),
		CreatedAt:  birthTime(path, info),
		ModifiedAt: &modified,
		Size:       info.Size(),
	}, nil
}

// Sort keys
const (
	SortByName       = "name"
	SortByCreatedAt  = "created_at"
	SortByModifiedAt = "modified_at"
	SortBySize       = "size"
)

// Sort orders items in place. Items without a timestamp come first when
// sorting by time in ascending order. The sort is stable.
func Sort(items []Item, by string, descending bool) error {
	var order func(a, b Item) int
	switch by {
	case "":
		return nil
	case SortByName:
		order = func(a, b Item) int { return strings.Compare(a.FileName, b.FileName) }
	case SortByCreatedAt:
		order = func(a, b Item) int { return compareTime(a.CreatedAt, b.CreatedAt) }
	case SortByModifiedAt:
		order = func(a, b Item) int { return compareTime(a.ModifiedAt, b.ModifiedAt) }
	case SortBySize:
		order = func(a, b Item) int { return cmp.Compare(a.Size, b.Size) }
	default:
		return fmt.Errorf("unknown sort key %q", by)
	}

	slices.SortStableFunc(items, order)
	if descending {
		slices.Reverse(items)
	}
	return nil
}

func compareTime(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return a.Compare(*b)
}
