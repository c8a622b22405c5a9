// Package table prints screenshots as a plain colored table
package table

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/shotsweep/shotsweep/internal/screenshot"
)

const (
	timeFormat = "2006-01-02 15:04:05"
)

type PrintOptions struct {
	ShowRelativeTime bool
}

// PrintItems writes items in the order given
func PrintItems(w io.Writer, items []screenshot.Item, opts PrintOptions) {
	green := color.New(color.FgHiGreen).SprintfFunc()
	white := color.New(color.FgWhite).SprintfFunc()

	fmt.Fprintf(w, "%s %s %s %s\n",
		green("%-20s", "Modified At"),
		green("%-16s", ""),
		green("%9s", "Size"),
		green("%s", "Name"),
	)

	for _, item := range items {
		var middleColumn string
		if opts.ShowRelativeTime && item.ModifiedAt != nil {
			middleColumn = "(" + humanize.Time(*item.ModifiedAt) + ")"
		}

		fmt.Fprintf(w, "%s %s %s %s\n",
			white("%-20s", formatTime(item.ModifiedAt)),
			white("%-16s", middleColumn),
			white("%9s", humanize.Bytes(uint64(item.Size))),
			white("%s", item.FileName),
		)
	}
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(timeFormat)
}
