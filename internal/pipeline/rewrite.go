package pipeline

import (
	"regexp"
	"strings"
)

// A destination can appear in three places: inline syntax with a bare
// destination, inline syntax with an angle-bracket destination, and
// reference definition lines. Reference uses ([ref], ![a][ref], [ref][])
// resolve through their definition, so rewriting the definition line
// covers every reference-style shape.
var (
	// inlineLinkPattern matches Markdown image and link syntax:
	//
	//	group 1: "!" for images, empty for links
	//	group 2: label text
	//	group 3: angle-bracket destination (may contain spaces)
	//	group 4: bare destination
	//	group 5: optional title, e.g. "caption"
	inlineLinkPattern = regexp.MustCompile(`(!?)\[([^\]]*)\]\(\s*(?:<([^>]*)>|([^)\s]+))([ \t]+"[^"]*")?\s*\)`)

	// refDefPattern matches reference definition lines:
	//
	//	group 1: label prefix up to the destination
	//	group 2: angle-bracket destination
	//	group 3: bare destination
	//	group 4: trailing title or whitespace
	refDefPattern = regexp.MustCompile(`(?m)^([ \t]*\[[^\]]+\]:[ \t]*)(?:<([^>]*)>|(\S+))(.*)$`)
)

// RewriteLinks substitutes every mapped destination in image and link
// syntax with its replacement, including angle-bracket destinations and
// reference definition lines. Destinations not present in links (external
// URLs, anchors) are left untouched. Deterministic, no side effects.
func RewriteLinks(content string, links map[string]string) string {
	if len(links) == 0 {
		return content
	}

	content = inlineLinkPattern.ReplaceAllStringFunc(content, func(match string) string {
		sub := inlineLinkPattern.FindStringSubmatch(match)
		replacement, ok := links[destination(sub[3], sub[4])]
		if !ok {
			return match
		}
		return sub[1] + "[" + sub[2] + "](" + replacement + sub[5] + ")"
	})

	return refDefPattern.ReplaceAllStringFunc(content, func(match string) string {
		sub := refDefPattern.FindStringSubmatch(match)
		replacement, ok := links[destination(sub[2], sub[3])]
		if !ok {
			return match
		}
		return sub[1] + replacement + sub[4]
	})
}

// destination picks whichever capture matched: the angle-bracket form
// wins since the two are mutually exclusive in one match.
func destination(bracketed, bare string) string {
	if bracketed != "" {
		return strings.TrimSpace(bracketed)
	}
	return strings.TrimSpace(bare)
}
