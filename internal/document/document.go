// Package document parses local Markdown files into structured input for
// the publish pipeline: body text, referenced local resources, the cover
// marker, and YAML front matter.
package document

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/Flying-Doggy/go-md2wp/internal/fileutil"
	"github.com/Flying-Doggy/go-md2wp/internal/yamlutil"
)

// Sentinel errors for document parsing.
var (
	ErrNotFound = errors.New("markdown document not found")
	ErrRead     = errors.New("failed to read markdown document")
)

// Precompiled patterns.
var (
	// Cover marker convention: <!-- cover: path/to/image.png -->
	coverPattern = regexp.MustCompile(`<!--\s*cover:\s*(.*?)\s*-->`)

	// YAML front matter delimited by --- lines at the start of the file.
	frontMatterPattern = regexp.MustCompile(`(?s)\A---\s*\n(.*?)\n---\s*\n?`)
)

// Asset is a local resource referenced from the document.
type Asset struct {
	OriginalPath string // Path exactly as written in the Markdown source
	AbsolutePath string // Resolved against the document directory
	FileName     string // Base filename including extension
	IsImage      bool   // True for image syntax (![...](...))
}

// Document is the structured result of parsing a Markdown file.
type Document struct {
	Path          string            // Absolute path of the source file
	Dir           string            // Directory containing the source file
	Raw           string            // File content as read
	Body          string            // Content with front matter stripped
	Assets        []Asset           // Local resources in document order
	CoverPath     string            // Cover marker path, empty if absent
	FrontMatter   map[string]string // Lowercased front matter keys
	ExternalLinks []string          // http(s) links, never uploaded
}

// Stem returns the source filename without its extension.
func (d *Document) Stem() string {
	base := filepath.Base(d.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Parser extracts resource references using the goldmark AST, so links
// inside code blocks or escaped text are not picked up by accident.
type Parser struct {
	md goldmark.Markdown
}

// NewParser creates a Parser with GFM extensions enabled.
func NewParser() *Parser {
	return &Parser{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Parse reads and parses the Markdown file at path.
// Returns ErrNotFound if the file does not exist.
func (p *Parser) Parse(path string) (*Document, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving document path: %w", err)
	}

	raw := string(data)
	frontMatter, body := splitFrontMatter(raw)

	doc := &Document{
		Path:        abs,
		Dir:         filepath.Dir(abs),
		Raw:         raw,
		Body:        body,
		FrontMatter: frontMatter,
	}

	p.extractAssets(doc)
	extractCover(doc)

	return doc, nil
}

// splitFrontMatter separates a leading YAML front matter block from the body.
// Malformed front matter is left in the body untouched.
func splitFrontMatter(raw string) (map[string]string, string) {
	m := frontMatterPattern.FindStringSubmatch(raw)
	if m == nil {
		return nil, raw
	}

	var node map[string]any
	if err := yamlutil.Unmarshal([]byte(m[1]), &node); err != nil {
		return nil, raw
	}

	fm := make(map[string]string, len(node))
	for k, v := range node {
		key := strings.ToLower(strings.TrimSpace(k))
		switch val := v.(type) {
		case string:
			fm[key] = strings.TrimSpace(val)
		case []any:
			parts := make([]string, 0, len(val))
			for _, item := range val {
				parts = append(parts, strings.TrimSpace(fmt.Sprintf("%v", item)))
			}
			fm[key] = strings.Join(parts, ", ")
		default:
			fm[key] = fmt.Sprintf("%v", val)
		}
	}

	return fm, raw[len(m[0]):]
}

// extractAssets walks the Markdown AST and records every image and link
// destination, classified as external URL or local resource.
func (p *Parser) extractAssets(doc *Document) {
	src := []byte(doc.Body)
	root := p.md.Parser().Parse(text.NewReader(src))

	seen := make(map[string]bool)
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		var dest string
		var isImage bool
		switch v := n.(type) {
		case *ast.Image:
			dest = string(v.Destination)
			isImage = true
		case *ast.Link:
			dest = string(v.Destination)
		default:
			return ast.WalkContinue, nil
		}

		dest = strings.TrimSpace(dest)
		if dest == "" || !isLocalReference(dest) {
			if isExternalURL(dest) {
				doc.ExternalLinks = append(doc.ExternalLinks, dest)
			}
			return ast.WalkContinue, nil
		}

		if seen[dest] {
			return ast.WalkContinue, nil
		}
		seen[dest] = true

		doc.Assets = append(doc.Assets, NewAsset(dest, doc.Dir, isImage))
		return ast.WalkContinue, nil
	})
}

// extractCover records the first cover marker found in the body.
// Empty markers, URLs, and non-image paths are ignored.
func extractCover(doc *Document) {
	m := coverPattern.FindStringSubmatch(doc.Body)
	if m == nil {
		return
	}
	cover := strings.TrimSpace(m[1])
	if cover == "" || fileutil.IsURL(cover) || !fileutil.IsImagePath(cover) {
		return
	}
	doc.CoverPath = cover
}

// NewAsset resolves a reference against the document directory.
// Relative paths are joined onto dir; absolute paths pass through.
func NewAsset(original, dir string, isImage bool) Asset {
	abs := original
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(dir, original)
	}
	return Asset{
		OriginalPath: original,
		AbsolutePath: abs,
		FileName:     filepath.Base(abs),
		IsImage:      isImage,
	}
}

// isExternalURL returns true for http(s) destinations.
func isExternalURL(dest string) bool {
	u, err := url.Parse(dest)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// isLocalReference returns true if the destination points at the local
// filesystem. Anchors, mailto links, data URIs, and URLs are not local.
func isLocalReference(dest string) bool {
	if dest == "" {
		return false
	}
	if strings.HasPrefix(dest, "#") ||
		strings.HasPrefix(dest, "mailto:") ||
		strings.HasPrefix(dest, "data:") ||
		strings.HasPrefix(dest, "//") {
		return false
	}
	return !isExternalURL(dest)
}
