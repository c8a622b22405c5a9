// Package shell handles paths the way a user types them in a shell
package shell

import (
	"os"
	"path/filepath"
	"strings"

	"al.essio.dev/pkg/shellescape"
)

// ExpandHome expands a leading "~" and $VAR or ${VAR} references.
// Unset variables expand to the empty string.
func ExpandHome(input string) (string, error) {
	result := input
	if result == "~" || strings.HasPrefix(result, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		result = filepath.Join(home, strings.TrimPrefix(result, "~"))
	}
	return os.ExpandEnv(result), nil
}

// Quote returns path quoted for pasting into a shell
func Quote(path string) string {
	return shellescape.Quote(path)
}

// QuoteAll quotes each path and joins them with spaces
func QuoteAll(paths []string) string {
	return shellescape.QuoteCommand(paths)
}
