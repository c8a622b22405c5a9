package xdg

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shotsweep/shotsweep/internal/fs"
)

const (
	trashInfoHeader = "[Trash Info]"
	timeFormat      = "2006-01-02T15:04:05"
)

// TrashInfo represents the contents of a .trashinfo file
type TrashInfo struct {
	// Path is the absolute original path of the file
	Path string

	// DeletionDate is when the file was moved to trash
	DeletionDate time.Time

	// MountRoot is the top directory of the device for external trashes.
	// Paths are stored relative to it.
	MountRoot string
}

// relativePath returns the path relative to the mount root
func (i *TrashInfo) relativePath() string {
	if i.MountRoot == "" || !filepath.IsAbs(i.Path) {
		return i.Path
	}
	rel, err := filepath.Rel(i.MountRoot, i.Path)
	if err != nil {
		return i.Path
	}
	return rel
}

func (i *TrashInfo) content() string {
	var b strings.Builder
	fmt.Fprintln(&b, trashInfoHeader)
	fmt.Fprintf(&b, "Path=%s\n", encodeTrashPath(i.relativePath()))
	fmt.Fprintf(&b, "DeletionDate=%s\n", i.DeletionDate.Format(timeFormat))
	return b.String()
}

// Save writes the info file without ever replacing an existing one. The
// content goes to a temporary file first and is then hard-linked into
// place, so a reader never sees a half-written file. When the filesystem
// does not support links, the file is created with O_EXCL instead.
// An existing path yields an error matching os.ErrExist.
func (i *TrashInfo) Save(path string) error {
	tmp := filepath.Join(filepath.Dir(path), "."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, []byte(i.content()), 0600); err != nil {
		return saveExclusive(path, i.content())
	}
	defer os.Remove(tmp)

	if err := os.Link(tmp, path); err != nil {
		if os.IsExist(err) {
			return err
		}
		return saveExclusive(path, i.content())
	}
	return nil
}

func saveExclusive(path, content string) error {
	f, err := fs.CreateExclusive(path, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write info file: %w", err)
	}
	return nil
}

// encodeTrashPath percent-encodes each path segment, keeping slashes and
// writing spaces as %20
func encodeTrashPath(path string) string {
	parts := strings.Split(path, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}
