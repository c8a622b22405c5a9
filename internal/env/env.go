package env

import (
	"os"
	"path/filepath"
)

const (
	defaultXDGConfigDirname = ".config"
	defaultXDGDataDirname   = ".local/share"
)

var (
	SHOTSWEEP_CONFIG_PATH string

	SHOTSWEEP_LOG_PATH string

	// SHOTSWEEP_TRASH_DIR overrides the trash directory from the config file
	SHOTSWEEP_TRASH_DIR string
)

func init() {
	// https://github.com/charmbracelet/log/issues/35
	os.Setenv("CLICOLOR_FORCE", "1")
	Load()
}

// Load resolves the paths from the environment, following
// https://specifications.freedesktop.org/basedir-spec/latest/
func Load() {
	SHOTSWEEP_CONFIG_PATH = os.Getenv("SHOTSWEEP_CONFIG_PATH")
	if SHOTSWEEP_CONFIG_PATH == "" {
		configDir := xdgDir("XDG_CONFIG_HOME", defaultXDGConfigDirname)
		SHOTSWEEP_CONFIG_PATH = filepath.Join(configDir, "shotsweep", "config.yaml")
	}

	SHOTSWEEP_LOG_PATH = os.Getenv("SHOTSWEEP_LOG_PATH")
	if SHOTSWEEP_LOG_PATH == "" {
		dataDir := xdgDir("XDG_DATA_HOME", defaultXDGDataDirname)
		SHOTSWEEP_LOG_PATH = filepath.Join(dataDir, "shotsweep", "debug.log")
	}

	SHOTSWEEP_TRASH_DIR = os.Getenv("SHOTSWEEP_TRASH_DIR")
}

func xdgDir(key, fallback string) string {
	if dir := os.Getenv(key); dir != "" {
		return dir
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return filepath.Join(homeDir, fallback)
}

// DesktopDir returns the directory screenshots are saved to by default
func DesktopDir() (string, error) {
	if dir := os.Getenv("XDG_DESKTOP_DIR"); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, "Desktop"), nil
}
