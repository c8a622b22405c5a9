package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/shotsweep/shotsweep/internal/config"
	"github.com/shotsweep/shotsweep/internal/ui/styles"
)

// ListDelegate renders screenshots and marks the selected ones
type ListDelegate struct {
	showDescription bool
	height          int
	spacing         int
	styles          *DelegateStyles
	selection       *selection
}

// DelegateStyles holds all the styles used for list item rendering.
type DelegateStyles struct {
	NormalTitle         lipgloss.Style
	NormalDesc          lipgloss.Style
	SelectedTitle       lipgloss.Style
	SelectedDesc        lipgloss.Style
	DimmedTitle         lipgloss.Style
	DimmedDesc          lipgloss.Style
	CursorTitle         lipgloss.Style
	CursorDesc          lipgloss.Style
	SelectedCursorTitle lipgloss.Style
	SelectedCursorDesc  lipgloss.Style
	FilterMatch         lipgloss.Style
}

func NewListDelegate(cfg config.UI, sel *selection) *ListDelegate {
	height, spacing := 2, 1
	showDescription := true
	switch cfg.Density {
	case CompactDensityVal:
		showDescription = false
		height, spacing = 1, 0
	case SpaciousDensityVal:
		showDescription = true
	}

	cursor := lipgloss.Color(cfg.Style.Cursor)
	selected := lipgloss.Color(cfg.Style.Selected)
	pad := lipgloss.NewStyle().Padding(0, 0, 0, 2)
	bar := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(cursor).
		Padding(0, 0, 0, 1)

	return &ListDelegate{
		showDescription: showDescription,
		height:          height,
		spacing:         spacing,
		selection:       sel,
		styles: &DelegateStyles{
			NormalTitle:         pad,
			NormalDesc:          pad.Foreground(styles.DimColor),
			SelectedTitle:       pad.Foreground(selected),
			SelectedDesc:        pad.Foreground(selected),
			DimmedTitle:         pad.Foreground(styles.DimColor),
			DimmedDesc:          pad.Foreground(styles.AccentColor),
			CursorTitle:         bar.Foreground(cursor),
			CursorDesc:          bar.Foreground(cursor),
			SelectedCursorTitle: bar.Foreground(selected),
			SelectedCursorDesc:  bar.Foreground(selected),
			FilterMatch:         lipgloss.NewStyle().Underline(true),
		},
	}
}

func (d *ListDelegate) Height() int {
	return d.height
}

func (d *ListDelegate) Spacing() int {
	return d.spacing
}

func (d *ListDelegate) Update(tea.Msg, *list.Model) tea.Cmd {
	return nil
}

// Render renders a list item.
func (d *ListDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(Item)
	if !ok || m.Width() <= 0 {
		return
	}

	styles := d.styles
	title := item.Title()
	desc := item.Description()

	textWidth := m.Width() - styles.NormalTitle.GetPaddingLeft() - styles.NormalTitle.GetPaddingRight()
	title = ansi.Truncate(title, textWidth, ellipsis)
	if d.showDescription {
		var lines []string
		for i, line := range strings.Split(desc, "\n") {
			if i >= d.height-1 {
				break
			}
			lines = append(lines, ansi.Truncate(line, textWidth, ellipsis))
		}
		desc = strings.Join(lines, "\n")
	}

	var (
		isSelected  = d.selection != nil && d.selection.Contains(item.Path)
		onCursor    = index == m.Index()
		emptyFilter = m.FilterState() == list.Filtering && m.FilterValue() == ""
		isFiltered  = m.FilterState() == list.Filtering || m.FilterState() == list.FilterApplied
	)

	switch {
	case emptyFilter:
		title = styles.DimmedTitle.Render(title)
		desc = styles.DimmedDesc.Render(desc)

	case onCursor && isSelected:
		title = styles.SelectedCursorTitle.Render(title)
		desc = styles.SelectedCursorDesc.Render(desc)

	case onCursor:
		title = styles.CursorTitle.Render(title)
		desc = styles.CursorDesc.Render(desc)

	case isSelected:
		title = styles.SelectedTitle.Render(title)
		desc = styles.SelectedDesc.Render(desc)

	default:
		if isFiltered {
			unmatched := styles.NormalTitle.Inline(true)
			matched := unmatched.Inherit(styles.FilterMatch)
			title = lipgloss.StyleRunes(title, m.MatchesForItem(index), matched, unmatched)
		}
		title = styles.NormalTitle.Render(title)
		desc = styles.NormalDesc.Render(desc)
	}

	if d.showDescription {
		fmt.Fprintf(w, "%s\n%s", title, desc)
		return
	}
	fmt.Fprint(w, title)
}
