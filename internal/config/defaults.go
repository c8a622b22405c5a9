package config

import "github.com/shotsweep/shotsweep/internal/screenshot"

// NewDefaultConfig creates a new Config with default values
func NewDefaultConfig() *Config {
	return &Config{
		Core: Core{
			HomeFallback: false,
			Verbose:      true,
		},
		Scan: Scan{
			SortBy:     "modified_at",
			Descending: true,
			Extensions: append([]string(nil), screenshot.DefaultExtensions...),
			Exclude: Exclude{
				Globs: []string{},
				Size: Size{
					Min: "",
					Max: "",
				},
			},
		},
		UI: UI{
			Density:     "spacious", // or compact
			Paginator:   "dots",     // or arabic
			ExitMessage: "bye!",
			Style: Style{
				Cursor:   "#AD58B4", // Purple
				Selected: "#5FB458", // Green
				Warning:  "#FF007F",
			},
		},
		Logging: Logging{
			Level: "info",
			Rotation: Rotation{
				MaxSize:  "10MB",
				MaxFiles: 3,
			},
		},
	}
}
