// Package ui implements the interactive sweep session
package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shotsweep/shotsweep/internal/config"
	"github.com/shotsweep/shotsweep/internal/screenshot"
	"github.com/shotsweep/shotsweep/internal/trash"
)

const (
	CompactDensityVal  = "compact"
	SpaciousDensityVal = "spacious"
)

const (
	bullet   = "•"
	ellipsis = "…"

	defaultWidth  = 66
	defaultHeight = 26
)

// Session is what a sweep works on. Disposer and Restorer must share
// Ledger, which lives as long as the session.
type Session struct {
	Dir      string
	Options  screenshot.Options
	Disposer *trash.Disposer
	Restorer *trash.Restorer
	Ledger   *trash.Ledger
}

// Run starts the sweep and blocks until the user quits
func Run(s Session, cfg config.UI) error {
	result, err := tea.NewProgram(NewModel(s, cfg)).Run()
	if err != nil {
		return err
	}
	if m, ok := result.(Model); ok && m.err != nil {
		return m.err
	}
	if msg := cfg.ExitMessage; msg != "" {
		fmt.Println(msg)
	}
	return nil
}
