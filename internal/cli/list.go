package cli

import (
	"encoding/json"
	"log/slog"

	"github.com/shotsweep/shotsweep/internal/screenshot"
	"github.com/shotsweep/shotsweep/internal/ui/table"
)

func (c CLI) List() error {
	slog.Debug("cli.list started")
	defer slog.Debug("cli.list finished")

	items, err := screenshot.Scan(c.config.Scan.Dir, c.scanOptions())
	if err != nil {
		return err
	}
	slog.Info("screenshots found", "dir", c.config.Scan.Dir, "count", len(items))

	if c.option.JSON {
		if items == nil {
			items = []screenshot.Item{}
		}
		enc := json.NewEncoder(c.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	table.PrintItems(c.stdout, items, table.PrintOptions{ShowRelativeTime: true})
	return nil
}
