package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/fatih/color"
)

// View renders the list, the outcome of the last action and the help
func (m Model) View() string {
	defer color.Unset()

	if m.quitting {
		return ""
	}
	if m.err != nil {
		slog.Error("rendering of the view has stopped", "error", m.err)
		return m.err.Error()
	}

	var b strings.Builder
	if len(m.list.Items()) == 0 && m.scanned {
		b.WriteString(m.styles.Empty.Render("no screenshots in " + m.session.Dir))
	} else {
		b.WriteString(m.list.View())
	}
	b.WriteString("\n")

	if m.previewing {
		b.WriteString("\n" + m.previewView())
	}
	if line := m.statusLine(); line != "" {
		b.WriteString("\n" + line)
	}
	b.WriteString("\n" + m.styles.Help.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) statusLine() string {
	var parts []string
	if n := m.selection.Len(); n > 0 {
		parts = append(parts, m.styles.Status.Render(fmt.Sprintf("%d selected", n)))
	}
	if m.status != "" {
		parts = append(parts, m.styles.Status.Render(m.status))
	}
	if m.warning != "" {
		parts = append(parts, m.styles.Warning.Render(m.warning))
	}
	return strings.Join(parts, "\n")
}

func (m Model) previewView() string {
	switch {
	case m.preview.err != nil:
		return m.styles.Empty.Render("no preview: " + m.preview.err.Error())
	case m.preview.content == "":
		return m.styles.Empty.Render("loading preview...")
	}
	return m.styles.Preview.Render(m.preview.content)
}
