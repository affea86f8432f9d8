package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// DefaultHighlightStyle is the chroma style used when none is configured.
// Inline styles survive WordPress themes that strip class-based CSS.
const DefaultHighlightStyle = "github"

// HTMLRenderer abstracts Markdown to HTML conversion.
type HTMLRenderer interface {
	Render(ctx context.Context, content string) (string, error)
}

// GoldmarkRenderer converts Markdown to an HTML fragment using goldmark.
// The output is a fragment, not a full document: WordPress wraps post
// content in its own page template.
type GoldmarkRenderer struct {
	md goldmark.Markdown
}

// NewGoldmarkRenderer creates a GoldmarkRenderer with GFM extensions and
// syntax highlighting in the given chroma style. Unknown style names fall
// back to DefaultHighlightStyle.
func NewGoldmarkRenderer(style string) *GoldmarkRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithStyle(ResolveHighlightStyle(style)),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(), // Self-closing tags
			// Note: WithUnsafe() intentionally NOT used. Raw HTML in the
			// source is dropped; WordPress sanitizes on its side anyway.
		),
	)
	return &GoldmarkRenderer{md: md}
}

// ResolveHighlightStyle validates a chroma style name.
// Empty or unknown names resolve to DefaultHighlightStyle.
func ResolveHighlightStyle(name string) string {
	if name == "" {
		return DefaultHighlightStyle
	}
	if _, ok := styles.Registry[name]; !ok {
		return DefaultHighlightStyle
	}
	return name
}

// Render converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select since goldmark
// doesn't natively support context.
func (r *GoldmarkRenderer) Render(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}
