package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shotsweep/shotsweep/internal/config"
	"github.com/shotsweep/shotsweep/internal/ui/keys"
	"github.com/shotsweep/shotsweep/internal/ui/styles"
)

// Model is the Bubble Tea model of a sweep session
type Model struct {
	session Session
	config  config.UI

	keys      *keys.KeyMap
	help      help.Model
	list      list.Model
	styles    *styles.Styles
	selection *selection

	// status and warning are the outcome of the last dispose or undo
	status  string
	warning string

	previewing bool
	preview    preview

	// busy is set while a dispose or undo runs
	busy     bool
	scanned  bool
	quitting bool
	err      error
}

// NewModel creates the model. Items are loaded by Init.
func NewModel(s Session, cfg config.UI) Model {
	sel := newSelection()
	km := keys.NewKeyMap()

	l := list.New(nil, NewListDelegate(cfg, sel), defaultWidth, defaultHeight)
	switch cfg.Paginator {
	case "arabic":
		l.Paginator.Type = paginator.Arabic
	default:
		l.Paginator.Type = paginator.Dots
	}
	l.DisableQuitKeybindings()
	l.SetShowStatusBar(false)
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	return Model{
		session:   s,
		config:    cfg,
		keys:      km,
		help:      help.New(),
		list:      l,
		styles:    styles.New(cfg),
		selection: sel,
	}
}

func (m Model) Init() tea.Cmd {
	return m.scanCmd()
}

// items returns what the list currently holds
func (m Model) items() []Item {
	var items []Item
	for _, li := range m.list.Items() {
		if item, ok := li.(Item); ok {
			items = append(items, item)
		}
	}
	return items
}

// targets returns the selected paths, or the path under the cursor when
// nothing is selected
func (m Model) targets() []string {
	if m.selection.Len() > 0 {
		return m.selection.Paths()
	}
	if item, ok := m.list.SelectedItem().(Item); ok {
		return []string{item.Path}
	}
	return nil
}
