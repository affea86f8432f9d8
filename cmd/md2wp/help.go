package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2wp <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  publish    Publish a markdown file to WordPress")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2wp help publish' for details on the publish command.")
}

// printPublishUsage prints usage for the publish command.
func printPublishUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2wp publish <file.md> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Publish a markdown file to WordPress. Local images and attachments")
	fmt.Fprintln(w, "are uploaded to the media library and their references rewritten to")
	fmt.Fprintln(w, "the returned URLs before the post is created.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Site:")
	fmt.Fprintln(w, "  -u, --url <url>           WordPress site URL (https://example.com)")
	fmt.Fprintln(w, "      --username <s>        WordPress username")
	fmt.Fprintln(w, "      --password <s>        WordPress password or application password")
	fmt.Fprintln(w, "      --blog-id <n>         Blog ID for multi-blog installs (default 0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Post:")
	fmt.Fprintln(w, "  -t, --title <s>           Post title (\"\" = front matter, then filename)")
	fmt.Fprintln(w, "  -s, --status <s>          Post status: draft, publish, pending (default: draft)")
	fmt.Fprintln(w, "      --category <s>        Category name (repeatable, comma-separated)")
	fmt.Fprintln(w, "      --tag <s>             Tag name (repeatable, comma-separated)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Upload:")
	fmt.Fprintln(w, "  -p, --prefix <s>          Upload filename prefix (\"\" = document name)")
	fmt.Fprintln(w, "      --cover <path>        Cover image path, overrides the in-document marker")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --html                Render the body to HTML before publishing")
	fmt.Fprintln(w, "      --no-html             Publish markdown text even if config enables html")
	fmt.Fprintln(w, "      --highlight-style <s> Chroma style for code blocks (default: github)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --timeout <d>         Overall publish timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "  -q, --quiet               Only print the post URL")
	fmt.Fprintln(w, "  -v, --verbose             Show per-step detail")
}
