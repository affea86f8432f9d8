// Package pipeline contains the pure text stages of the publish pipeline:
// preprocessing, link rewriting, and Markdown to HTML rendering.
package pipeline

import "regexp"

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress multiple blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)

	// Cover marker lines are pipeline directives, not content
	coverMarkerLine = regexp.MustCompile(`(?m)^[ \t]*<!--\s*cover:\s*.*?-->[ \t]*\n?`)
)

// Normalize prepares a Markdown body for publishing.
// Order matters: line endings first, then marker removal, then spacing.
func Normalize(content string) string {
	content = NormalizeLineEndings(content)
	content = StripCoverMarkers(content)
	content = CompressBlankLines(content)
	return content
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// CompressBlankLines limits consecutive blank lines to 2 maximum.
func CompressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// StripCoverMarkers removes cover marker comments from the body.
func StripCoverMarkers(content string) string {
	return coverMarkerLine.ReplaceAllString(content, "")
}
