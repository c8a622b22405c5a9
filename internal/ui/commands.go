package ui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shotsweep/shotsweep/internal/screenshot"
)

func (m Model) scanCmd() tea.Cmd {
	dir, opts := m.session.Dir, m.session.Options
	return func() tea.Msg {
		items, err := screenshot.Scan(dir, opts)
		slog.Debug("scanned", "dir", dir, "count", len(items), "error", err)
		return scannedMsg{items: items, err: err}
	}
}

func (m Model) disposeCmd(paths []string) tea.Cmd {
	disposer := m.session.Disposer
	return func() tea.Msg {
		entries, err := disposer.DisposeBatch(paths)
		return disposedMsg{entries: entries, err: err}
	}
}

func (m Model) undoCmd(count int) tea.Cmd {
	restorer := m.session.Restorer
	return func() tea.Msg {
		restored, err := restorer.Undo(count)
		return undoneMsg{restored: restored, err: err}
	}
}

func (m Model) previewCmd(path string) tea.Cmd {
	width := max(m.list.Width()-4, 1)
	return func() tea.Msg {
		content, err := renderPreview(path, width)
		if err != nil {
			slog.Debug("cannot preview", "path", path, "error", err)
		}
		return previewMsg{path: path, content: content, err: err}
	}
}

// syncPreview renders the screenshot under the cursor when the preview is
// open and shows another file
func (m Model) syncPreview() tea.Cmd {
	if !m.previewing {
		return nil
	}
	item, ok := m.list.SelectedItem().(Item)
	if !ok || item.Path == m.preview.path {
		return nil
	}
	return m.previewCmd(item.Path)
}
