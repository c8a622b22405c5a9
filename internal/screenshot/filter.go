package screenshot

import (
	"log/slog"
	"strings"
	"time"

	"github.com/docker/go-units"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gobwas/glob"
	"github.com/k1LoW/duration"
	"github.com/samber/lo"
)

// FilterOptions narrows down scanned items
type FilterOptions struct {
	// ExcludeGlobs are matched against the file name
	ExcludeGlobs []string

	// MinSize and MaxSize are human sizes such as "10KB" or "1GB".
	// Empty means no bound.
	MinSize string
	MaxSize string

	// Within keeps only items modified in this period, e.g. "30 days"
	Within string

	// VerifyContent sniffs the file content and drops anything that is
	// not an image
	VerifyContent bool
}

// Filter applies filtering rules to a slice of items
func Filter(items []Item, opts FilterOptions) []Item {
	items = rejectByGlobs(items, opts.ExcludeGlobs)
	items = rejectBySize(items, opts.MinSize, opts.MaxSize)
	items = filterByPeriod(items, opts.Within, time.Now())
	if opts.VerifyContent {
		items = filterByContent(items)
	}
	return items
}

func rejectByGlobs(items []Item, patterns []string) []Item {
	if len(patterns) == 0 {
		return items
	}

	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			slog.Warn("ignoring invalid glob", "glob", p, "error", err)
			continue
		}
		globs = append(globs, g)
	}

	return lo.Reject(items, func(item Item, _ int) bool {
		return lo.SomeBy(globs, func(g glob.Glob) bool {
			return g.Match(item.FileName)
		})
	})
}

func rejectBySize(items []Item, minSize, maxSize string) []Item {
	lower, hasMin := parseSize(minSize)
	upper, hasMax := parseSize(maxSize)
	if !hasMin && !hasMax {
		return items
	}

	return lo.Filter(items, func(item Item, _ int) bool {
		if hasMin && item.Size < lower {
			return false
		}
		if hasMax && item.Size > upper {
			return false
		}
		return true
	})
}

func parseSize(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	n, err := units.FromHumanSize(s)
	if err != nil {
		slog.Warn("ignoring invalid size", "size", s, "error", err)
		return 0, false
	}
	return n, true
}

func filterByPeriod(items []Item, within string, now time.Time) []Item {
	if within == "" {
		return items
	}

	d, err := duration.Parse(within)
	if err != nil {
		slog.Error("failed to parse duration", "within", within, "error", err)
		return items
	}

	return lo.Filter(items, func(item Item, _ int) bool {
		return item.ModifiedAt != nil && now.Sub(*item.ModifiedAt) < d
	})
}

func filterByContent(items []Item) []Item {
	return lo.FilterMap(items, func(item Item, _ int) (Item, bool) {
		mime, err := mimetype.DetectFile(item.Path)
		if err != nil {
			slog.Debug("failed to detect content type", "path", item.Path, "error", err)
			return item, false
		}
		item.MIME = mime.String()
		return item, strings.HasPrefix(item.MIME, "image/")
	})
}
