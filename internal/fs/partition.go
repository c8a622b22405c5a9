//go:build !windows

package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// isSamePartition checks if src and the parent directory of dst reside on
// the same filesystem partition.
func isSamePartition(src, dst string) (bool, error) {
	srcInfo, err := os.Lstat(src)
	if err != nil {
		return false, fmt.Errorf("failed to get source file stats: %w", err)
	}

	dstInfo, err := os.Stat(filepath.Dir(dst))
	if err != nil {
		return false, fmt.Errorf("failed to get destination parent directory stats: %w", err)
	}

	srcSys, ok := srcInfo.Sys().(*syscall.Stat_t)
	if !ok {
		return false, fmt.Errorf("failed to get source system info")
	}

	dstSys, ok := dstInfo.Sys().(*syscall.Stat_t)
	if !ok {
		return false, fmt.Errorf("failed to get destination system info")
	}

	return srcSys.Dev == dstSys.Dev, nil
}

// SameDevice reports whether two existing paths live on the same device
func SameDevice(path1, path2 string) (bool, error) {
	real1, err := filepath.EvalSymlinks(path1)
	if err != nil {
		return false, fmt.Errorf("failed to resolve path %s: %w", path1, err)
	}
	real2, err := filepath.EvalSymlinks(path2)
	if err != nil {
		return false, fmt.Errorf("failed to resolve path %s: %w", path2, err)
	}

	info1, err := os.Stat(real1)
	if err != nil {
		return false, err
	}
	info2, err := os.Stat(real2)
	if err != nil {
		return false, err
	}

	stat1, ok1 := info1.Sys().(*syscall.Stat_t)
	stat2, ok2 := info2.Sys().(*syscall.Stat_t)
	if !ok1 || !ok2 {
		return false, fmt.Errorf("failed to get device information")
	}
	return stat1.Dev == stat2.Dev, nil
}
