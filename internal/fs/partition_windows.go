//go:build windows

package fs

import (
	"path/filepath"
	"strings"
)

// isSamePartition compares volume names on Windows
func isSamePartition(src, dst string) (bool, error) {
	return SameDevice(src, filepath.Dir(dst))
}

// SameDevice reports whether two paths share a volume
func SameDevice(path1, path2 string) (bool, error) {
	abs1, err := filepath.Abs(path1)
	if err != nil {
		return false, err
	}
	abs2, err := filepath.Abs(path2)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(filepath.VolumeName(abs1), filepath.VolumeName(abs2)), nil
}
