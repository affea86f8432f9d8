package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if !FileExists(file) {
		t.Error("FileExists(file) = false, want true")
	}
	if FileExists(dir) {
		t.Error("FileExists(dir) = true, want false")
	}
	if FileExists(filepath.Join(dir, "missing")) {
		t.Error("FileExists(missing) = true, want false")
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"myconfig", false},
		{"./myconfig.yaml", true},
		{"/etc/md2wp/site.yaml", true},
		{`configs\site.yaml`, true},
	}

	for _, tt := range tests {
		if got := IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"https://example.com/a.png", true},
		{"http://example.com", true},
		{"img/a.png", false},
		{"ftp://example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsURL(tt.input); got != tt.want {
			t.Errorf("IsURL(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsImagePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"a.png", true},
		{"a.JPG", true},
		{"dir/photo.webp", true},
		{"diagram.svg", true},
		{"report.pdf", false},
		{"noext", false},
	}

	for _, tt := range tests {
		if got := IsImagePath(tt.input); got != tt.want {
			t.Errorf("IsImagePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestDetectMIMEType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"a.png", "image/png"},
		{"a.jpg", "image/jpeg"},
		{"a.gif", "image/gif"},
		{"a.pdf", "application/pdf"},
		{"a.unknownext", DefaultMIMEType},
		{"noext", DefaultMIMEType},
	}

	for _, tt := range tests {
		if got := DetectMIMEType(tt.input); got != tt.want {
			t.Errorf("DetectMIMEType(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
