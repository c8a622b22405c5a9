package fs

import "testing"

func TestIsUnsafePath(t *testing.T) {
	tests := []struct {
		path    string
		unsafe  bool
		wantErr bool
	}{
		{".", true, false},
		{"..", true, false},
		{"./", true, false},
		{"./.", true, false},
		{"./../../foo/../..", true, false},
		{"/", true, false},
		{"//", true, false},
		{"//foo", true, false},
		{"/foo", false, false},
		{"foo", false, false},
		{"foo/bar", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			unsafe, err := IsUnsafePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("IsUnsafePath() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if unsafe != tt.unsafe {
				t.Errorf("IsUnsafePath() = %v, want %v", unsafe, tt.unsafe)
			}
		})
	}
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		name string
		stem string
		ext  string
	}{
		{"shot.png", "shot", ".png"},
		{"Screenshot 2025-01-01 at 1.23.45 AM.png", "Screenshot 2025-01-01 at 1.23.45 AM", ".png"},
		{"archive.tar.gz", "archive.tar", ".gz"},
		{"README", "README", ""},
		{".bashrc", ".bashrc", ""},
		{"trailing.", "trailing", "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stem, ext := SplitName(tt.name)
			if stem != tt.stem || ext != tt.ext {
				t.Errorf("SplitName(%q) = (%q, %q), want (%q, %q)", tt.name, stem, ext, tt.stem, tt.ext)
			}
		})
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/home/user/Desktop/shot.png", "shot.png"},
		{"shot.png", "shot.png"},
		{"/home/user/Desktop/", "Desktop"},
		{"/", ""},
		{"", ""},
		{"..", ""},
		{"/foo/..", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := BaseName(tt.path); got != tt.want {
				t.Errorf("BaseName(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
