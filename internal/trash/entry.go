package trash

import (
	"encoding/json"
	"time"
)

// UndoEntry records one file moved to the trash by a Disposer
type UndoEntry struct {
	// OriginalPath is the absolute path the file occupied before disposal
	OriginalPath string

	// TrashedPath is the best-effort location of the file inside the trash.
	// It may be stale or a guess that never existed.
	TrashedPath string

	// FileName is the base name of the file at disposal time
	FileName string

	// DeletedAt is captured right before the trash call, in millisecond resolution
	DeletedAt time.Time
}

type undoEntryJSON struct {
	OriginalPath string `json:"original_path"`
	TrashedPath  string `json:"trashed_path"`
	FileName     string `json:"file_name"`
	DeletedAtMs  int64  `json:"deleted_at_ms"`
}

func (e UndoEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(undoEntryJSON{
		OriginalPath: e.OriginalPath,
		TrashedPath:  e.TrashedPath,
		FileName:     e.FileName,
		DeletedAtMs:  e.DeletedAt.UnixMilli(),
	})
}

func (e *UndoEntry) UnmarshalJSON(data []byte) error {
	var v undoEntryJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*e = UndoEntry{
		OriginalPath: v.OriginalPath,
		TrashedPath:  v.TrashedPath,
		FileName:     v.FileName,
		DeletedAt:    time.UnixMilli(v.DeletedAtMs),
	}
	return nil
}

// Status describes what happened to an entry during undo
type Status int

const (
	// StatusRestored means the file was moved back to its original path
	StatusRestored Status = iota

	// StatusRenamed means the original path was occupied and the file was
	// restored next to it under a "(restored)" name
	StatusRenamed

	// StatusUnresolved means neither the recorded trashed path nor any
	// matching trash entry existed, so nothing was moved
	StatusUnresolved
)

func (s Status) String() string {
	switch s {
	case StatusRestored:
		return "restored"
	case StatusRenamed:
		return "renamed"
	case StatusUnresolved:
		return "unresolved"
	}
	return "unknown"
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Restored is an entry consumed by Restorer.Undo
type Restored struct {
	UndoEntry

	Status Status `json:"status"`

	// RestoredTo is where the file now lives; empty when unresolved
	RestoredTo string `json:"restored_to,omitempty"`
}

func (r Restored) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		undoEntryJSON
		Status     Status `json:"status"`
		RestoredTo string `json:"restored_to,omitempty"`
	}{
		undoEntryJSON: undoEntryJSON{
			OriginalPath: r.OriginalPath,
			TrashedPath:  r.TrashedPath,
			FileName:     r.FileName,
			DeletedAtMs:  r.DeletedAt.UnixMilli(),
		},
		Status:     r.Status,
		RestoredTo: r.RestoredTo,
	})
}
