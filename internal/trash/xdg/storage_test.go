package xdg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestTrasher(t *testing.T) (*Trasher, string) {
	t.Helper()
	root := t.TempDir()
	tr, err := New(Options{
		HomeTrashDir:   filepath.Join(root, "Trash"),
		ForceHomeTrash: true,
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return tr, root
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestNewCreatesLayout(t *testing.T) {
	_, root := newTestTrasher(t)

	for _, dir := range []string{"files", "info"} {
		info, err := os.Stat(filepath.Join(root, "Trash", dir))
		if err != nil {
			t.Fatalf("%s directory missing: %v", dir, err)
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", dir)
		}
	}
}

func TestTrashWritesInfoFile(t *testing.T) {
	tr, root := newTestTrasher(t)
	src := filepath.Join(root, "Desktop", "Screen Shot 2025-01-01 at 10.00.00.png")
	writeFile(t, src, "png")

	before := time.Now().Add(-time.Second)
	if err := tr.Trash(src); err != nil {
		t.Fatalf("Trash() failed: %v", err)
	}

	trashed := filepath.Join(tr.Dir(src), filepath.Base(src))
	if got, err := os.ReadFile(trashed); err != nil || string(got) != "png" {
		t.Fatalf("Trashed file = %q (%v), want png", got, err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Error("Source should be gone")
	}

	raw, err := os.ReadFile(filepath.Join(root, "Trash", "info", filepath.Base(src)+".trashinfo"))
	if err != nil {
		t.Fatalf("Info file missing: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 3 || lines[0] != "[Trash Info]" {
		t.Fatalf("Unexpected info file:\n%s", raw)
	}

	wantPath := "Path=" + strings.ReplaceAll(src, " ", "%20")
	if lines[1] != wantPath {
		t.Errorf("Path line = %q, want %q", lines[1], wantPath)
	}

	date, err := time.ParseInLocation(timeFormat, strings.TrimPrefix(lines[2], "DeletionDate="), time.Local)
	if err != nil {
		t.Fatalf("Bad DeletionDate line %q: %v", lines[2], err)
	}
	if date.Before(before.Truncate(time.Second)) || date.After(time.Now()) {
		t.Errorf("DeletionDate %v out of range", date)
	}
}

func TestTrashNameCollisions(t *testing.T) {
	tr, root := newTestTrasher(t)

	var srcs []string
	for _, dir := range []string{"a", "b", "c"} {
		src := filepath.Join(root, dir, "shot.png")
		writeFile(t, src, dir)
		srcs = append(srcs, src)
	}
	noExt := filepath.Join(root, "d", "shot")
	writeFile(t, noExt, "d")

	for _, src := range append(srcs, noExt) {
		if err := tr.Trash(src); err != nil {
			t.Fatalf("Trash(%s) failed: %v", src, err)
		}
	}

	filesDir := tr.Dir(srcs[0])
	want := map[string]string{
		"shot.png":   "a",
		"shot 2.png": "b",
		"shot 3.png": "c",
		"shot":       "d",
	}
	for name, content := range want {
		got, err := os.ReadFile(filepath.Join(filesDir, name))
		if err != nil || string(got) != content {
			t.Errorf("%s = %q (%v), want %q", name, got, err, content)
		}
		if _, err := os.Stat(filepath.Join(root, "Trash", "info", name+".trashinfo")); err != nil {
			t.Errorf("info for %s missing: %v", name, err)
		}
	}
}

func TestTrashMissingSource(t *testing.T) {
	tr, root := newTestTrasher(t)

	if err := tr.Trash(filepath.Join(root, "nope.png")); err == nil {
		t.Fatal("Expected error for missing source")
	}
	entries, _ := os.ReadDir(filepath.Join(root, "Trash", "info"))
	if len(entries) != 0 {
		t.Errorf("No info file should be left behind, found %d", len(entries))
	}
}

func TestRelease(t *testing.T) {
	tr, root := newTestTrasher(t)
	src := filepath.Join(root, "shot.png")
	writeFile(t, src, "x")

	if err := tr.Trash(src); err != nil {
		t.Fatalf("Trash() failed: %v", err)
	}
	trashed := filepath.Join(tr.Dir(src), "shot.png")
	infoPath := filepath.Join(root, "Trash", "info", "shot.png.trashinfo")

	if err := tr.Release(trashed); err != nil {
		t.Fatalf("Release() failed: %v", err)
	}
	if _, err := os.Stat(infoPath); !os.IsNotExist(err) {
		t.Error("Info file should be removed")
	}
	// releasing twice is fine
	if err := tr.Release(trashed); err != nil {
		t.Errorf("second Release() failed: %v", err)
	}
}

func TestEncodeTrashPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/home/u/shot.png", "/home/u/shot.png"},
		{"/home/u/Screen Shot 1.png", "/home/u/Screen%20Shot%201.png"},
		{"/tmp/100%.png", "/tmp/100%25.png"},
		{"rel/a b", "rel/a%20b"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := encodeTrashPath(tt.in); got != tt.want {
				t.Errorf("encodeTrashPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTrashInfoRelativePath(t *testing.T) {
	tests := []struct {
		name string
		info TrashInfo
		want string
	}{
		{"home", TrashInfo{Path: "/home/u/a.png"}, "/home/u/a.png"},
		{"external", TrashInfo{Path: "/media/usb/pics/a.png", MountRoot: "/media/usb"}, "pics/a.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.relativePath(); got != tt.want {
				t.Errorf("relativePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExistingAncestor(t *testing.T) {
	root := t.TempDir()
	if got := existingAncestor(filepath.Join(root, "gone", "deeper", "x.png")); got != root {
		t.Errorf("existingAncestor() = %q, want %q", got, root)
	}
}
