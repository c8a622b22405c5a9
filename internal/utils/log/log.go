// Package log builds the slog logger backed by charmbracelet/log
package log

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	charmlog "github.com/charmbracelet/log"
)

var (
	defaultStylesOnce sync.Once
	defaultStyles     *Styles
)

func initializeStyles() *Styles {
	styles := charmlog.DefaultStyles()
	for _, ls := range levelStyles {
		levelStr := fmt.Sprintf("%-*s", levelWidth, strings.ToUpper(ls.level.String()))
		styles.Levels[ls.level] = ls.style.SetString(levelStr)
	}
	return styles
}

// DefaultStyles returns the level styles shared by every logger
func DefaultStyles() *Styles {
	defaultStylesOnce.Do(func() {
		defaultStyles = initializeStyles()
	})
	return defaultStyles
}

// New creates a new logger with the given options
func New(opts ...Option) *slog.Logger {
	o := DefaultOptions()
	o.Apply(opts...)

	handler := charmlog.NewWithOptions(o.Writer, o.Options)
	handler.SetStyles(o.Styles)

	logger := slog.New(handler)
	if len(o.Attrs) > 0 {
		logger = logger.With(o.Attrs...)
	}

	if o.Default {
		charmlog.SetDefault(handler)
		slog.SetDefault(logger)
	}
	return logger
}

// SetLevel changes the level of a logger created by New
func SetLevel(l *slog.Logger, level Level) {
	if h, ok := l.Handler().(*charmlog.Logger); ok {
		h.SetLevel(level)
	}
}
