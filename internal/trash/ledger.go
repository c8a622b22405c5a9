package trash

import (
	"slices"
	"sync"
)

// Ledger is the in-memory undo stack shared by a Disposer and a Restorer.
// Its lifetime is the lifetime of the process; nothing is persisted.
type Ledger struct {
	mu      sync.Mutex
	entries []UndoEntry
}

// NewLedger returns an empty ledger
func NewLedger() *Ledger {
	return &Ledger{}
}

// Push appends an entry at the tail
func (l *Ledger) Push(e UndoEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, e)
}

// Pop removes and returns the most recently pushed entry
func (l *Ledger) Pop() (UndoEntry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.entries) == 0 {
		return UndoEntry{}, false
	}
	last := len(l.entries) - 1
	e := l.entries[last]
	l.entries[last] = UndoEntry{}
	l.entries = l.entries[:last]
	return e, true
}

// Len returns the number of entries
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Entries returns a copy of the stack, oldest first
func (l *Ledger) Entries() []UndoEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.entries)
}
