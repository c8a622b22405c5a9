// Package screenshot finds screenshot files in a directory
package screenshot

import (
	"encoding/json"
	"strings"
	"time"
)

// DefaultExtensions are the image types a screenshot tool writes
var DefaultExtensions = []string{".png", ".jpg", ".jpeg", ".heic", ".tiff", ".gif", ".bmp"}

// Item is a screenshot found on disk
type Item struct {
	Path     string
	FileName string

	// CreatedAt is the birth time, nil when the platform or filesystem
	// does not record it
	CreatedAt  *time.Time
	ModifiedAt *time.Time

	Size int64

	// MIME is only set when content verification is enabled
	MIME string
}

type itemJSON struct {
	Path       string  `json:"path"`
	FileName   string  `json:"file_name"`
	CreatedAt  *string `json:"created_at"`
	ModifiedAt *string `json:"modified_at"`
	SizeBytes  int64   `json:"size_bytes"`
	MIME       string  `json:"mime,omitempty"`
}

// MarshalJSON writes timestamps as RFC 3339 strings, null when unknown
func (i Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(itemJSON{
		Path:       i.Path,
		FileName:   i.FileName,
		CreatedAt:  formatTime(i.CreatedAt),
		ModifiedAt: formatTime(i.ModifiedAt),
		SizeBytes:  i.Size,
		MIME:       i.MIME,
	})
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

// IsScreenshotName reports whether name looks like a screenshot written by
// macOS or a similar tool, with one of the given extensions. Matching is
// case-insensitive. A nil extension list means DefaultExtensions.
func IsScreenshotName(name string, extensions []string) bool {
	lower := strings.ToLower(name)

	looksLike := strings.HasPrefix(lower, "screen shot ") ||
		strings.HasPrefix(lower, "screen‑shot ") ||
		strings.Contains(lower, "screenshot")
	if !looksLike {
		return false
	}

	if extensions == nil {
		extensions = DefaultExtensions
	}
	for _, ext := range extensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}
