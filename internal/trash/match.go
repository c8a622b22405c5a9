package trash

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shotsweep/shotsweep/internal/fs"
)

// LooksLikeSameFile reports whether entryName could be originalName after
// the trash renamed it to avoid a collision ("name 2.png", "name copy.png").
// Extensions must match exactly.
func LooksLikeSameFile(entryName, originalName string) bool {
	estem, eext := fs.SplitName(entryName)
	ostem, oext := fs.SplitName(originalName)
	if eext != oext {
		return false
	}
	return estem == ostem ||
		strings.HasPrefix(estem, ostem+" ") ||
		strings.HasPrefix(estem, ostem+" copy")
}

// FindCandidate looks in dir for the entry most likely to be originalName.
//
// With a non-zero anchor, the match whose modification time is closest to
// the anchor wins. Without one, the most recently modified match wins.
// A missing or unreadable dir, or no match at all, returns false.
func FindCandidate(dir, originalName string, anchor time.Time) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		slog.Debug("cannot read trash dir", "dir", dir, "error", err)
		return "", false
	}

	var (
		closest     string
		closestDiff int64 = -1
		newest      string
		newestTime  time.Time
		found       bool
	)

	for _, entry := range entries {
		if !LooksLikeSameFile(entry.Name(), originalName) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		mtime := info.ModTime()

		if !anchor.IsZero() {
			diff := mtime.UnixMilli() - anchor.UnixMilli()
			if diff < 0 {
				diff = -diff
			}
			if closestDiff < 0 || diff < closestDiff {
				closest, closestDiff = path, diff
			}
		}
		if !found || mtime.After(newestTime) {
			newest, newestTime = path, mtime
			found = true
		}
	}

	if closestDiff >= 0 {
		return closest, true
	}
	return newest, found
}
