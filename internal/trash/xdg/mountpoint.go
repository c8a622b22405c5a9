//go:build !windows

package xdg

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/moby/sys/mountinfo"
)

// Skip file systems that can't have trash directories
var skipFSTypes = map[string]bool{
	"proc":        true,
	"sysfs":       true,
	"devtmpfs":    true,
	"devpts":      true,
	"cgroup":      true,
	"cgroup2":     true,
	"pstore":      true,
	"securityfs":  true,
	"debugfs":     true,
	"configfs":    true,
	"fusectl":     true,
	"bpf":         true,
	"nsfs":        true,
	"efivarfs":    true,
	"hugetlbfs":   true,
	"mqueue":      true,
	"binfmt_misc": true,
}

// getMountPoints returns writable mount points that may hold a trash
func getMountPoints() ([]string, error) {
	mounts, err := mountinfo.GetMounts(func(info *mountinfo.Info) (skip, stop bool) {
		if skipFSTypes[info.FSType] {
			return true, false
		}
		if slices.Contains(strings.Split(info.Options, ","), "ro") {
			return true, false
		}
		return false, false
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get mount info: %w", err)
	}

	seen := make(map[string]bool)
	var points []string
	for _, m := range mounts {
		if !seen[m.Mountpoint] {
			seen[m.Mountpoint] = true
			points = append(points, m.Mountpoint)
		}
	}
	return points, nil
}

// isValidExternalTrash checks a $topdir trash against the XDG rules
func isValidExternalTrash(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}

	if !info.IsDir() || info.Mode()&os.ModeSymlink != 0 {
		slog.Debug("not a usable trash directory", "path", path)
		return false
	}

	// $topdir/.Trash must carry the sticky bit
	if filepath.Base(filepath.Dir(path)) == ".Trash" {
		parent, err := os.Lstat(filepath.Dir(path))
		if err != nil || parent.Mode()&os.ModeSticky == 0 {
			slog.Debug("missing sticky bit", "path", filepath.Dir(path))
			return false
		}
	}

	return true
}

// createTrashDir creates a trash directory with proper permissions
func createTrashDir(path string) error {
	for _, dir := range []string{path, filepath.Join(path, "files"), filepath.Join(path, "info")} {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create trash directory %s: %w", dir, err)
		}
	}
	return nil
}
