// Package fileutil provides file, path, and MIME type helpers.
package fileutil

import (
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMIMEType is used when the extension is unknown.
const DefaultMIMEType = "application/octet-stream"

// imageExtensions lists extensions treated as images for cover validation.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsURL returns true if the string looks like an HTTP(S) URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// IsImagePath returns true if the path has a known image extension.
func IsImagePath(path string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(path))]
}

// DetectMIMEType resolves the MIME type from the file extension.
// Parameters such as "; charset=utf-8" are stripped since the WordPress
// media endpoint expects a bare type. Unknown extensions fall back to
// application/octet-stream.
func DetectMIMEType(path string) string {
	t := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if t == "" {
		return DefaultMIMEType
	}
	if i := strings.IndexByte(t, ';'); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	return t
}
