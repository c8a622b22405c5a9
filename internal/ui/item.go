package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/dustin/go-humanize"
	"github.com/shotsweep/shotsweep/internal/screenshot"
)

var _ list.DefaultItem = Item{}

// Item is a screenshot shown in the sweep list
type Item struct {
	screenshot.Item
}

func (i Item) Title() string {
	return i.FileName
}

// Description returns the size and the relative modification time
func (i Item) Description() string {
	desc := humanize.Bytes(uint64(max(i.Size, 0)))
	if i.ModifiedAt != nil {
		desc += " " + bullet + " " + humanize.Time(*i.ModifiedAt)
	}
	return desc
}

func (i Item) FilterValue() string {
	return i.FileName
}

func toListItems(items []screenshot.Item) []list.Item {
	out := make([]list.Item, len(items))
	for i, item := range items {
		out[i] = Item{Item: item}
	}
	return out
}
