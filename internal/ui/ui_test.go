package ui

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shotsweep/shotsweep/internal/config"
	"github.com/shotsweep/shotsweep/internal/fs"
	"github.com/shotsweep/shotsweep/internal/screenshot"
	"github.com/shotsweep/shotsweep/internal/trash"
	"github.com/shotsweep/shotsweep/internal/trash/xdg"
)

var (
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// newTestModel sets up a desktop with the given files and a scanned model
func newTestModel(t *testing.T, names ...string) (Model, string) {
	t.Helper()
	root := t.TempDir()
	desktop := filepath.Join(root, "Desktop")
	if err := os.MkdirAll(desktop, 0755); err != nil {
		t.Fatal(err)
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(desktop, name), []byte(name), 0644); err != nil {
			t.Fatal(err)
		}
	}

	trasher, err := xdg.New(xdg.Options{
		HomeTrashDir:   filepath.Join(root, "Trash"),
		ForceHomeTrash: true,
	})
	if err != nil {
		t.Fatalf("Failed to create trasher: %v", err)
	}
	ledger := trash.NewLedger()
	s := Session{
		Dir:      desktop,
		Options:  screenshot.Options{SortBy: screenshot.SortByName},
		Disposer: trash.NewDisposer(trasher, ledger),
		Restorer: trash.NewRestorer(trasher, ledger),
		Ledger:   ledger,
	}

	m := NewModel(s, config.NewDefaultConfig().UI)
	m = drain(t, m, m.Init())
	return m, desktop
}

func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// drain runs cmd and feeds session messages back into the model until
// nothing is left to do
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			m = drain(t, m, c)
		}
	case scannedMsg, disposedMsg, undoneMsg, previewMsg:
		var next tea.Cmd
		m, next = press(t, m, msg)
		m = drain(t, m, next)
	}
	return m
}

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 32), G: uint8(y * 32), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
}

func fileNames(m Model) []string {
	var names []string
	for _, item := range m.items() {
		names = append(names, item.FileName)
	}
	return names
}

func TestInitListsScreenshotsOnly(t *testing.T) {
	m, _ := newTestModel(t, "Screenshot b.png", "notes.txt", "Screenshot a.png")

	got := fileNames(m)
	want := []string{"Screenshot a.png", "Screenshot b.png"}
	if len(got) != len(want) {
		t.Fatalf("items = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("items[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestInitMissingDirQuits(t *testing.T) {
	m := NewModel(Session{Dir: filepath.Join(t.TempDir(), "missing")}, config.NewDefaultConfig().UI)

	m, cmd := press(t, m, m.Init()())
	if m.err == nil {
		t.Fatal("Expected scan error, got nil")
	}
	if cmd == nil {
		t.Error("Expected quit command")
	}
}

func TestSelection(t *testing.T) {
	m, _ := newTestModel(t, "Screenshot a.png", "Screenshot b.png", "Screenshot c.png")

	m, _ = press(t, m, keyTab)
	m, _ = press(t, m, keyTab)
	if n := m.selection.Len(); n != 2 {
		t.Fatalf("selected = %d, want 2", n)
	}
	if m.list.Index() != 2 {
		t.Errorf("cursor = %d, want 2", m.list.Index())
	}

	// cursor sits on c, which is not selected
	m, _ = press(t, m, keyShiftTab)
	m, _ = press(t, m, keyShiftTab)
	if n := m.selection.Len(); n != 1 {
		t.Fatalf("selected after deselect = %d, want 1", n)
	}
	if m.selection.Contains(m.items()[1].Path) {
		t.Error("Screenshot b.png should have been deselected")
	}

	m, _ = press(t, m, keyEsc)
	if n := m.selection.Len(); n != 0 {
		t.Errorf("selected after esc = %d, want 0", n)
	}
}

func TestDisposeCurrent(t *testing.T) {
	m, desktop := newTestModel(t, "Screenshot a.png", "Screenshot b.png")

	m, cmd := press(t, m, runes("D"))
	if !m.busy {
		t.Error("Expected model to be busy while disposing")
	}
	m = drain(t, m, cmd)

	if fs.Exists(filepath.Join(desktop, "Screenshot a.png")) {
		t.Error("Screenshot a.png should have been trashed")
	}
	if m.status != "trashed 1 screenshot" {
		t.Errorf("status = %q", m.status)
	}
	if got := fileNames(m); len(got) != 1 || got[0] != "Screenshot b.png" {
		t.Errorf("items after dispose = %v", got)
	}
	if m.session.Ledger.Len() != 1 {
		t.Errorf("ledger length = %d, want 1", m.session.Ledger.Len())
	}
}

func TestDisposeSelectedAndUndoAll(t *testing.T) {
	m, desktop := newTestModel(t, "Screenshot a.png", "Screenshot b.png", "Screenshot c.png")

	m, _ = press(t, m, keyTab)
	m, _ = press(t, m, keyTab)
	m, cmd := press(t, m, runes("D"))
	m = drain(t, m, cmd)

	if m.status != "trashed 2 screenshots" {
		t.Errorf("status = %q", m.status)
	}
	if m.selection.Len() != 0 {
		t.Errorf("selection should be empty after dispose, has %d", m.selection.Len())
	}
	if got := fileNames(m); len(got) != 1 {
		t.Fatalf("items after dispose = %v", got)
	}

	m, cmd = press(t, m, runes("U"))
	m = drain(t, m, cmd)

	if m.status != "restored 2 screenshots" {
		t.Errorf("status = %q", m.status)
	}
	if m.warning != "" {
		t.Errorf("unexpected warning %q", m.warning)
	}
	for _, name := range []string{"Screenshot a.png", "Screenshot b.png"} {
		if !fs.Exists(filepath.Join(desktop, name)) {
			t.Errorf("%s was not restored", name)
		}
	}
	if got := fileNames(m); len(got) != 3 {
		t.Errorf("items after undo = %v", got)
	}
}

func TestUndoLast(t *testing.T) {
	m, desktop := newTestModel(t, "Screenshot a.png", "Screenshot b.png")

	m, cmd := press(t, m, runes("D"))
	m = drain(t, m, cmd)
	m, cmd = press(t, m, runes("D"))
	m = drain(t, m, cmd)
	if len(m.items()) != 0 {
		t.Fatalf("items = %v, want none", fileNames(m))
	}

	m, cmd = press(t, m, runes("u"))
	m = drain(t, m, cmd)

	if !fs.Exists(filepath.Join(desktop, "Screenshot b.png")) {
		t.Error("the most recent disposal should have been restored")
	}
	if fs.Exists(filepath.Join(desktop, "Screenshot a.png")) {
		t.Error("the older disposal should still be in the trash")
	}
	if m.session.Ledger.Len() != 1 {
		t.Errorf("ledger length = %d, want 1", m.session.Ledger.Len())
	}
}

func TestUndoEmptyLedger(t *testing.T) {
	m, _ := newTestModel(t, "Screenshot a.png")

	m, cmd := press(t, m, runes("u"))
	if cmd != nil {
		t.Error("Expected no command for an empty ledger")
	}
	if m.status != "nothing to undo" {
		t.Errorf("status = %q", m.status)
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, "Screenshot a.png")

	m, cmd := press(t, m, runes("q"))
	if !m.quitting || cmd == nil {
		t.Fatal("Expected model to quit")
	}
	if v := m.View(); v != "" {
		t.Errorf("View() after quit = %q, want empty", v)
	}
}

func TestPreview(t *testing.T) {
	m, desktop := newTestModel(t, "Screenshot b.png")
	writePNG(t, filepath.Join(desktop, "Screenshot a.png"))
	m = drain(t, m, m.scanCmd())

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if !m.previewing {
		t.Fatal("Expected preview to be open")
	}
	m = drain(t, m, cmd)
	if m.preview.err != nil {
		t.Fatalf("preview of a PNG failed: %v", m.preview.err)
	}
	if m.preview.path != filepath.Join(desktop, "Screenshot a.png") || m.preview.content == "" {
		t.Errorf("preview = {%q, %d bytes}", m.preview.path, len(m.preview.content))
	}

	// not an image
	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = drain(t, m, cmd)
	if m.preview.err == nil {
		t.Error("Expected preview error for a file that is not an image")
	}
	if !strings.Contains(m.View(), "no preview") {
		t.Error("View() should report the missing preview")
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.previewing || m.preview.path != "" {
		t.Error("Expected preview to be closed and reset")
	}
}

func TestUndoSummary(t *testing.T) {
	tests := []struct {
		name        string
		statuses    []trash.Status
		wantStatus  string
		wantWarning string
	}{
		{
			name:       "all restored",
			statuses:   []trash.Status{trash.StatusRestored, trash.StatusRestored},
			wantStatus: "restored 2 screenshots",
		},
		{
			name:       "with renamed",
			statuses:   []trash.Status{trash.StatusRestored, trash.StatusRenamed},
			wantStatus: "restored 2 screenshots (1 renamed)",
		},
		{
			name:        "with unresolved",
			statuses:    []trash.Status{trash.StatusRestored, trash.StatusUnresolved},
			wantStatus:  "restored 1 screenshot",
			wantWarning: "1 screenshot not found in the trash",
		},
		{
			name:        "only unresolved",
			statuses:    []trash.Status{trash.StatusUnresolved, trash.StatusUnresolved},
			wantWarning: "2 screenshots not found in the trash",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var restored []trash.Restored
			for _, s := range tt.statuses {
				restored = append(restored, trash.Restored{Status: s})
			}
			status, warning := undoSummary(restored)
			if status != tt.wantStatus {
				t.Errorf("status = %q, want %q", status, tt.wantStatus)
			}
			if warning != tt.wantWarning {
				t.Errorf("warning = %q, want %q", warning, tt.wantWarning)
			}
		})
	}
}

func TestUndoError(t *testing.T) {
	perr := &trash.PermissionError{
		Entry: trash.UndoEntry{FileName: "shot.png"},
		Err:   os.ErrPermission,
		Hint:  "grant write access to the folder",
	}
	if got, want := undoError(perr), "cannot restore shot.png: grant write access to the folder"; got != want {
		t.Errorf("undoError() = %q, want %q", got, want)
	}

	plain := errors.New("boom")
	if got := undoError(plain); got != "boom" {
		t.Errorf("undoError() = %q, want %q", got, "boom")
	}
}
