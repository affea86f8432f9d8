package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// siteFlags holds WordPress site and credential flags.
type siteFlags struct {
	url      string
	username string
	password string
	blogID   int
}

// postFlags holds post metadata flags.
type postFlags struct {
	title      string
	status     string
	categories []string
	tags       []string
}

// uploadFlags holds media upload flags.
type uploadFlags struct {
	prefix string
	cover  string
}

// renderFlags holds HTML rendering flags.
type renderFlags struct {
	html           bool
	noHTML         bool
	highlightStyle string
}

// publishFlags holds all flags for the publish command.
type publishFlags struct {
	common  commonFlags
	timeout string
	site    siteFlags
	post    postFlags
	upload  uploadFlags
	render  renderFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-step detail")
}

// addSiteFlags adds site flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVarP(&f.url, "url", "u", "", "WordPress site URL (https://example.com)")
	fs.StringVar(&f.username, "username", "", "WordPress username")
	fs.StringVar(&f.password, "password", "", "WordPress password or application password")
	fs.IntVar(&f.blogID, "blog-id", 0, "blog ID for multi-blog installs (default 0)")
}

// addPostFlags adds post metadata flags to a FlagSet.
func addPostFlags(fs *flag.FlagSet, f *postFlags) {
	fs.StringVarP(&f.title, "title", "t", "", "post title (\"\" = front matter, then filename)")
	fs.StringVarP(&f.status, "status", "s", "", "post status: draft, publish, pending")
	fs.StringSliceVar(&f.categories, "category", nil, "category name (repeatable, comma-separated)")
	fs.StringSliceVar(&f.tags, "tag", nil, "tag name (repeatable, comma-separated)")
}

// addUploadFlags adds media upload flags to a FlagSet.
func addUploadFlags(fs *flag.FlagSet, f *uploadFlags) {
	fs.StringVarP(&f.prefix, "prefix", "p", "", "upload filename prefix (\"\" = document name)")
	fs.StringVar(&f.cover, "cover", "", "cover image path, overrides the in-document marker")
}

// addRenderFlags adds HTML rendering flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.BoolVar(&f.html, "html", false, "render the body to HTML before publishing")
	fs.BoolVar(&f.noHTML, "no-html", false, "publish markdown text even if config enables html")
	fs.StringVar(&f.highlightStyle, "highlight-style", "", "chroma style for code blocks (default: github)")
}

// parsePublishFlags parses publish command flags and returns positional args.
func parsePublishFlags(args []string) (*publishFlags, []string, error) {
	fs := flag.NewFlagSet("publish", flag.ContinueOnError)
	f := &publishFlags{}

	fs.StringVar(&f.timeout, "timeout", "", "overall publish timeout (e.g., 30s, 2m)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)
	addPostFlags(fs, &f.post)
	addUploadFlags(fs, &f.upload)
	addRenderFlags(fs, &f.render)

	fs.Usage = func() { printPublishUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
