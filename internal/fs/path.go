package fs

import (
	"os"
	"path/filepath"
	"strings"
)

// IsUnsafePath checks if the given path is unsafe to remove
func IsUnsafePath(path string) (bool, error) {
	// Check the original input first so "." and ".." are caught before Clean
	originalBase := filepath.Base(path)
	if originalBase == "." || originalBase == ".." {
		return true, nil
	}

	cleaned := filepath.Clean(path)
	if cleaned == "/" {
		return true, nil
	}

	if strings.HasPrefix(path, "//") {
		return true, nil
	}

	return false, nil
}

// SplitName splits a base name into its stem and extension. The extension
// keeps its leading dot. A name without a dot, or whose only dot is the
// leading one (".bashrc"), has no extension.
func SplitName(name string) (stem, ext string) {
	i := strings.LastIndex(name, ".")
	if i <= 0 {
		return name, ""
	}
	return name[:i], name[i:]
}

// BaseName returns the final component of path, or "" when there is none
func BaseName(path string) string {
	if path == "" {
		return ""
	}
	base := filepath.Base(path)
	switch base {
	case ".", "..", string(filepath.Separator):
		return ""
	}
	return base
}

// CreateExclusive creates a new file with O_EXCL so an existing file is never
// truncated.
func CreateExclusive(path string, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
}
