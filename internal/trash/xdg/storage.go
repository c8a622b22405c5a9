// Package xdg implements the freedesktop.org trash specification
package xdg

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shotsweep/shotsweep/internal/fs"
)

// Options configures a Trasher
type Options struct {
	// HomeTrashDir overrides the home trash root ($XDG_DATA_HOME/Trash)
	HomeTrashDir string

	// HomeFallback lets files from devices without a usable trash be copied
	// into the home trash
	HomeFallback bool

	// ForceHomeTrash skips discovery of $topdir/.Trash-$uid directories
	ForceHomeTrash bool
}

// Trasher moves files into an XDG trash. Name collisions inside files/ are
// resolved the way Finder does it: "name 2.png", "name 3.png", ...
type Trasher struct {
	homeTrash       *trashLocation
	externalTrashes []*trashLocation
	opts            Options
}

// trashLocation represents a single trash directory
type trashLocation struct {
	root     string // e.g. ~/.local/share/Trash or /media/disk/.Trash-1000
	filesDir string // root/files
	infoDir  string // root/info
	topdir   string // mount point for external trashes, empty for home
}

func newLocation(root, topdir string) *trashLocation {
	return &trashLocation{
		root:     root,
		filesDir: filepath.Join(root, "files"),
		infoDir:  filepath.Join(root, "info"),
		topdir:   topdir,
	}
}

func (l *trashLocation) isHome() bool {
	return l.topdir == ""
}

// New creates a Trasher, creating the home trash when it does not exist
func New(opts Options) (*Trasher, error) {
	t := &Trasher{opts: opts}

	home, err := initHomeTrash(opts.HomeTrashDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize home trash: %w", err)
	}
	t.homeTrash = home

	if !opts.ForceHomeTrash {
		if err := t.scanExternalTrashes(); err != nil {
			// home trash is still usable
			slog.Warn("failed to scan external trashes", "error", err)
		}
	}

	slog.Debug("xdg trash initialized", "home", home.root, "external", len(t.externalTrashes))
	return t, nil
}

// Dir returns the files/ directory of the trash that would receive path
func (t *Trasher) Dir(path string) string {
	return t.selectTrashLocation(path).filesDir
}

// Trash moves path into the trash and writes its .trashinfo
func (t *Trasher) Trash(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := os.Lstat(abs); err != nil {
		return err
	}

	loc := t.selectTrashLocation(abs)
	if err := createTrashDir(loc.root); err != nil {
		return err
	}

	info := &TrashInfo{
		Path:         abs,
		DeletionDate: time.Now(),
		MountRoot:    loc.topdir,
	}

	trashName, infoPath, err := reserveName(loc, filepath.Base(abs), info)
	if err != nil {
		return err
	}

	dst := filepath.Join(loc.filesDir, trashName)
	if err := fs.Move(abs, dst, fs.MoveOptions{
		AllowCrossDev: loc.isHome() && t.opts.HomeFallback,
		NoClobber:     true,
	}); err != nil {
		// the reservation is useless without the file
		os.Remove(infoPath)
		return fmt.Errorf("failed to move file to trash: %w", err)
	}

	slog.Debug("trashed", "from", abs, "to", dst)
	return nil
}

// Release removes the .trashinfo belonging to a file that left the trash
func (t *Trasher) Release(trashedPath string) error {
	infoPath := filepath.Join(
		filepath.Dir(filepath.Dir(trashedPath)), // up past files/
		"info",
		filepath.Base(trashedPath)+".trashinfo",
	)
	if err := os.Remove(infoPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// reserveName claims a free name in loc by creating its .trashinfo
// exclusively. The first candidate is the original name, followed by
// "stem 2.ext", "stem 3.ext" and so on.
func reserveName(loc *trashLocation, base string, info *TrashInfo) (string, string, error) {
	stem, ext := fs.SplitName(base)
	for i := 1; ; i++ {
		name := base
		if i > 1 {
			name = stem + " " + strconv.Itoa(i) + ext
		}
		if fs.Exists(filepath.Join(loc.filesDir, name)) {
			continue
		}
		infoPath := filepath.Join(loc.infoDir, name+".trashinfo")
		err := info.Save(infoPath)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", "", fmt.Errorf("failed to save trash info: %w", err)
		}
		return name, infoPath, nil
	}
}

func initHomeTrash(override string) (*trashLocation, error) {
	root := override
	if root == "" {
		dataDir := os.Getenv("XDG_DATA_HOME")
		if dataDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("failed to get home directory: %w", err)
			}
			dataDir = filepath.Join(home, ".local", "share")
		}
		root = filepath.Join(dataDir, "Trash")
	}
	slog.Debug("initHomeTrash", "root", root)

	if err := createTrashDir(root); err != nil {
		return nil, err
	}
	return newLocation(root, ""), nil
}

func (t *Trasher) scanExternalTrashes() error {
	mounts, err := getMountPoints()
	if err != nil {
		return fmt.Errorf("failed to get mount points: %w", err)
	}

	uid := strconv.Itoa(os.Getuid())
	for _, mount := range mounts {
		// $topdir/.Trash/$uid takes precedence over $topdir/.Trash-$uid
		for _, root := range []string{
			filepath.Join(mount, ".Trash", uid),
			filepath.Join(mount, ".Trash-"+uid),
		} {
			if isValidExternalTrash(root) {
				t.externalTrashes = append(t.externalTrashes, newLocation(root, mount))
				break
			}
		}
	}
	return nil
}

// selectTrashLocation picks the trash on the same device as path, falling
// back to the home trash
func (t *Trasher) selectTrashLocation(path string) *trashLocation {
	if t.opts.HomeTrashDir != "" {
		return t.homeTrash
	}

	anchor := existingAncestor(path)
	if same, err := fs.SameDevice(anchor, t.homeTrash.root); err == nil && same {
		return t.homeTrash
	}
	for _, ext := range t.externalTrashes {
		if same, err := fs.SameDevice(anchor, ext.root); err == nil && same {
			return ext
		}
	}
	return t.homeTrash
}

// existingAncestor returns path or its closest existing parent. Undo asks
// for the trash of a path that is, by then, usually gone.
func existingAncestor(path string) string {
	for {
		if fs.Exists(path) {
			return path
		}
		parent := filepath.Dir(path)
		if parent == path {
			return path
		}
		path = parent
	}
}
