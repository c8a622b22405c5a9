package ui

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize/english"
	"github.com/samber/lo"
	"github.com/shotsweep/shotsweep/internal/trash"
)

// Update handles all UI state updates based on incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		slog.Debug("key pressed", "key", msg.String())
		return m.updateKeys(msg)

	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case scannedMsg:
		if msg.err != nil {
			// the directory is required to start; later rescans keep the old list
			if !m.scanned {
				m.err = msg.err
				return m, tea.Quit
			}
			m.warning = msg.err.Error()
			return m, nil
		}
		m.scanned = true
		cmd := m.list.SetItems(toListItems(msg.items))
		m.selection.Retain(m.items())
		return m, tea.Batch(cmd, m.syncPreview())

	case previewMsg:
		// drop renders that finished after the cursor moved on
		if item, ok := m.list.SelectedItem().(Item); ok && item.Path == msg.path {
			m.preview = preview(msg)
		}
		return m, nil

	case disposedMsg:
		m.busy = false
		m.status, m.warning = "", ""
		for _, e := range msg.entries {
			m.selection.Remove(e.OriginalPath)
		}
		if n := len(msg.entries); n > 0 {
			m.status = "trashed " + english.Plural(n, "screenshot", "")
		}
		if msg.err != nil {
			slog.Error("dispose failed", "error", msg.err)
			m.warning = msg.err.Error()
		}
		return m, m.scanCmd()

	case undoneMsg:
		m.busy = false
		m.status, m.warning = undoSummary(msg.restored)
		if msg.err != nil {
			slog.Error("undo failed", "error", msg.err)
			m.warning = undoError(msg.err)
		}
		return m, m.scanCmd()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Preview):
		m.previewing = !m.previewing
		m.preview = preview{}
		return m, m.syncPreview()

	case key.Matches(msg, m.keys.Select):
		if item, ok := m.list.SelectedItem().(Item); ok {
			if m.selection.Contains(item.Path) {
				m.selection.Remove(item.Path)
			} else {
				m.selection.Add(item.Path)
			}
			m.list.CursorDown()
		}
		return m, m.syncPreview()

	case key.Matches(msg, m.keys.DeSelect):
		if item, ok := m.list.SelectedItem().(Item); ok {
			m.selection.Remove(item.Path)
			m.list.CursorUp()
		}
		return m, m.syncPreview()

	case key.Matches(msg, m.keys.Esc):
		if m.selection.Len() > 0 {
			m.selection.Clear()
			return m, nil
		}

	case key.Matches(msg, m.keys.Dispose):
		if m.busy {
			return m, nil
		}
		paths := m.targets()
		if len(paths) == 0 {
			return m, nil
		}
		m.busy = true
		return m, m.disposeCmd(paths)

	case key.Matches(msg, m.keys.Undo, m.keys.UndoAll):
		if m.busy {
			return m, nil
		}
		count := 1
		if key.Matches(msg, m.keys.UndoAll) {
			count = m.session.Ledger.Len()
		}
		if m.session.Ledger.Len() == 0 {
			m.status, m.warning = "nothing to undo", ""
			return m, nil
		}
		m.busy = true
		return m, m.undoCmd(count)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, tea.Batch(cmd, m.syncPreview())
}

// undoSummary describes what an undo did, warning about entries that
// could not be found in the trash
func undoSummary(restored []trash.Restored) (status, warning string) {
	moved := lo.Filter(restored, func(r trash.Restored, _ int) bool {
		return r.Status != trash.StatusUnresolved
	})
	unresolved := len(restored) - len(moved)

	if n := len(moved); n > 0 {
		status = "restored " + english.Plural(n, "screenshot", "")
		if renamed := lo.CountBy(moved, func(r trash.Restored) bool {
			return r.Status == trash.StatusRenamed
		}); renamed > 0 {
			status += fmt.Sprintf(" (%d renamed)", renamed)
		}
	}
	if unresolved > 0 {
		warning = fmt.Sprintf("%s not found in the trash", english.Plural(unresolved, "screenshot", ""))
	}
	return status, warning
}

func undoError(err error) string {
	var perr *trash.PermissionError
	if errors.As(err, &perr) {
		return fmt.Sprintf("cannot restore %s: %s", perr.Entry.FileName, perr.Hint)
	}
	return err.Error()
}
