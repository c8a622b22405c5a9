package env

import (
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		env        map[string]string
		wantConfig string
		wantLog    string
		wantTrash  string
	}{
		{
			name: "explicit paths",
			env: map[string]string{
				"SHOTSWEEP_CONFIG_PATH": "/etc/shotsweep.yaml",
				"SHOTSWEEP_LOG_PATH":    "/var/log/shotsweep.log",
				"SHOTSWEEP_TRASH_DIR":   "/trash",
			},
			wantConfig: "/etc/shotsweep.yaml",
			wantLog:    "/var/log/shotsweep.log",
			wantTrash:  "/trash",
		},
		{
			name: "xdg directories",
			env: map[string]string{
				"XDG_CONFIG_HOME": "/cfg",
				"XDG_DATA_HOME":   "/data",
			},
			wantConfig: filepath.Join("/cfg", "shotsweep", "config.yaml"),
			wantLog:    filepath.Join("/data", "shotsweep", "debug.log"),
		},
		{
			name:       "home fallback",
			env:        map[string]string{"HOME": "/home/u"},
			wantConfig: filepath.Join("/home/u", ".config", "shotsweep", "config.yaml"),
			wantLog:    filepath.Join("/home/u", ".local/share", "shotsweep", "debug.log"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// runs after the variables are restored
			t.Cleanup(Load)
			for _, key := range []string{
				"SHOTSWEEP_CONFIG_PATH", "SHOTSWEEP_LOG_PATH", "SHOTSWEEP_TRASH_DIR",
				"XDG_CONFIG_HOME", "XDG_DATA_HOME",
			} {
				t.Setenv(key, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			Load()

			if SHOTSWEEP_CONFIG_PATH != tt.wantConfig {
				t.Errorf("SHOTSWEEP_CONFIG_PATH = %q, want %q", SHOTSWEEP_CONFIG_PATH, tt.wantConfig)
			}
			if SHOTSWEEP_LOG_PATH != tt.wantLog {
				t.Errorf("SHOTSWEEP_LOG_PATH = %q, want %q", SHOTSWEEP_LOG_PATH, tt.wantLog)
			}
			if SHOTSWEEP_TRASH_DIR != tt.wantTrash {
				t.Errorf("SHOTSWEEP_TRASH_DIR = %q, want %q", SHOTSWEEP_TRASH_DIR, tt.wantTrash)
			}
		})
	}
}
