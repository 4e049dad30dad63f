package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-docfmt/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestFileExists - Path existence checks
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "spec.yaml")
	if err := os.WriteFile(file, []byte("name: test"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{
			name: "existing regular file",
			path: file,
			want: true,
		},
		{
			name: "directory is not a file",
			path: dir,
			want: false,
		},
		{
			name: "missing path",
			path: filepath.Join(dir, "nope.yaml"),
			want: false,
		},
		{
			name: "empty path",
			path: "",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath - Name vs path detection
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "bare name", input: "academic-cn", want: false},
		{name: "hyphenated name", input: "my-spec", want: false},
		{name: "relative path", input: "./custom.yaml", want: true},
		{name: "parent path", input: "../shared/spec.yaml", want: true},
		{name: "absolute path", input: "/etc/docfmt/spec.yaml", want: true},
		{name: "windows path", input: `C:\specs\academic.yaml`, want: true},
		{name: "subdirectory", input: "sub/dir", want: true},
		{name: "empty string", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsFilePath(tt.input); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
