package ui

import (
	"github.com/shotsweep/shotsweep/internal/screenshot"
	"github.com/shotsweep/shotsweep/internal/trash"
)

// scannedMsg carries a fresh listing of the scan directory
type scannedMsg struct {
	items []screenshot.Item
	err   error
}

// disposedMsg is sent once a dispose batch has finished
type disposedMsg struct {
	entries []trash.UndoEntry
	err     error
}

// undoneMsg is sent once an undo has finished
type undoneMsg struct {
	restored []trash.Restored
	err      error
}

// previewMsg carries a rendered screenshot
type previewMsg preview
