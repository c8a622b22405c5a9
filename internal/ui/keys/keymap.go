package keys

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
)

// KeyMap holds the bindings of the sweep view
type KeyMap struct {
	Quit     key.Binding
	Help     key.Binding
	Preview  key.Binding
	Select   key.Binding
	DeSelect key.Binding
	Dispose  key.Binding
	Undo     key.Binding
	UndoAll  key.Binding
	Esc      key.Binding
}

var (
	DefaultKeyMapListCursorUp      = list.DefaultKeyMap().CursorUp
	DefaultKeyMapListCursorDown    = list.DefaultKeyMap().CursorDown
	DefaultKeyMapListNextPage      = list.DefaultKeyMap().NextPage
	DefaultKeyMapListPrevPage      = list.DefaultKeyMap().PrevPage
	DefaultKeyMapListGoToStart     = list.DefaultKeyMap().GoToStart
	DefaultKeyMapListGoToEnd       = list.DefaultKeyMap().GoToEnd
	DefaultKeyMapListFilter        = list.DefaultKeyMap().Filter
	DefaultKeyMapListShowFullHelp  = list.DefaultKeyMap().ShowFullHelp
	DefaultKeyMapListCloseFullHelp = list.DefaultKeyMap().CloseFullHelp
)

func NewKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
		),
		Preview: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "preview"),
		),
		Select: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "select"),
		),
		DeSelect: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("s+tab", "de-select"),
		),
		Dispose: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "trash"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo"),
		),
		UndoAll: key.NewBinding(
			key.WithKeys("U"),
			key.WithHelp("U", "undo all"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "reset"),
		),
	}
}

// ShortHelp returns condensed help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		DefaultKeyMapListCursorUp,
		DefaultKeyMapListCursorDown,
		k.Select,
		k.Dispose,
		k.Undo,
		k.Preview,
		DefaultKeyMapListShowFullHelp,
	}
}

// FullHelp returns complete help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			DefaultKeyMapListCursorUp,
			DefaultKeyMapListCursorDown,
			DefaultKeyMapListNextPage,
			DefaultKeyMapListPrevPage,
			DefaultKeyMapListGoToStart,
			DefaultKeyMapListGoToEnd,
		},
		{k.Select, k.DeSelect, k.Esc, k.Preview, DefaultKeyMapListFilter},
		{k.Dispose, k.Undo, k.UndoAll},
		{k.Quit, DefaultKeyMapListCloseFullHelp},
	}
}
