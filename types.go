package md2wp

import (
	"fmt"
	"strings"
	"time"
)

// Post status constants accepted by WordPress.
const (
	StatusDraft   = "draft"
	StatusPublish = "publish"
	StatusPending = "pending"
)

// DefaultStatus is used when no status is specified.
// Draft avoids publishing by accident.
const DefaultStatus = StatusDraft

// Input contains publish parameters.
type Input struct {
	Path       string   // Markdown file path (required)
	Title      string   // Post title (optional, falls back to front matter, then filename)
	Categories []string // Category names (optional)
	Tags       []string // Tag names (optional)
	Status     string   // "draft", "publish", "pending" (optional, default: draft)
	Prefix     string   // Upload filename prefix (optional, default: document stem + "_")
	CoverPath  string   // Cover image path, overrides the in-document marker (optional)
	RenderHTML bool     // Render the body to HTML before publishing
}

// Validate checks that required fields are present and valid.
func (in *Input) Validate() error {
	if in.Path == "" {
		return ErrEmptyPath
	}
	if !isValidStatus(in.Status) {
		return fmt.Errorf("%w: %q (must be draft, publish, or pending)", ErrInvalidStatus, in.Status)
	}
	if strings.ContainsAny(in.Prefix, "/\\\x00") {
		return fmt.Errorf("%w: %q contains path separator or null byte", ErrInvalidPrefix, in.Prefix)
	}
	return nil
}

// isValidStatus checks if status is a known post status. Empty means default.
func isValidStatus(status string) bool {
	switch status {
	case "", StatusDraft, StatusPublish, StatusPending:
		return true
	}
	return false
}

// Media describes a file uploaded to the media library.
type Media struct {
	LocalPath string // Path as written in the Markdown source
	Filename  string // Remote filename (prefix applied)
	URL       string // Public URL of the uploaded file
	ID        string // Attachment ID assigned by WordPress
}

// Result holds the outcome of a publish run.
type Result struct {
	PostID  string  // Remote post identifier
	PostURL string  // Canonical post URL (<site>/?p=<id>)
	Media   []Media // Every uploaded resource, in document order
}

// ProgressFunc receives upload progress notifications.
// done is the number of completed uploads, total the overall count.
type ProgressFunc func(done, total int, filename string)

// Option configures a Publisher.
type Option func(*Publisher)

// publisherConfig holds internal configuration for Publisher.
type publisherConfig struct {
	timeout        time.Duration
	highlightStyle string
	progress       ProgressFunc
	blogID         int
}

// defaultTimeout bounds a whole publish run when no timeout is specified.
const defaultTimeout = 2 * time.Minute

// WithTimeout sets the overall publish timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("md2wp: WithTimeout duration must be positive")
	}
	return func(p *Publisher) {
		p.cfg.timeout = d
	}
}

// WithUploadProgress registers a callback invoked after each upload.
func WithUploadProgress(fn ProgressFunc) Option {
	return func(p *Publisher) {
		p.cfg.progress = fn
	}
}

// WithBlogID targets a specific blog on multi-blog installs.
// Single-blog installs use blog ID 0.
func WithBlogID(id int) Option {
	return func(p *Publisher) {
		p.cfg.blogID = id
	}
}

// WithHighlightStyle sets the chroma style used when rendering HTML.
// Unknown names fall back to the default style.
func WithHighlightStyle(name string) Option {
	return func(p *Publisher) {
		p.cfg.highlightStyle = name
	}
}
