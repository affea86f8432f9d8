package md2wp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Flying-Doggy/go-md2wp/internal/document"
	"github.com/Flying-Doggy/go-md2wp/internal/fileutil"
	"github.com/Flying-Doggy/go-md2wp/internal/pipeline"
	"github.com/Flying-Doggy/go-md2wp/internal/wordpress"
)

// documentParser abstracts Markdown parsing.
type documentParser interface {
	Parse(path string) (*document.Document, error)
}

// remoteGateway abstracts the WordPress XML-RPC operations the pipeline needs.
type remoteGateway interface {
	Ping(ctx context.Context) error
	UploadFile(ctx context.Context, name, mimeType string, data []byte) (*wordpress.Media, error)
	CreatePost(ctx context.Context, post wordpress.Post) (string, error)
}

// Compile-time interface implementation checks.
var (
	_ documentParser        = (*document.Parser)(nil)
	_ remoteGateway         = (*wordpress.Client)(nil)
	_ pipeline.HTMLRenderer = (*pipeline.GoldmarkRenderer)(nil)
)

// Publisher orchestrates the Markdown-to-WordPress pipeline.
// Create with New, publish with Publish. Safe for sequential reuse across
// documents; each run is independent.
type Publisher struct {
	cfg      publisherConfig
	site     string
	parser   documentParser
	renderer pipeline.HTMLRenderer
	remote   remoteGateway
}

// New creates a Publisher for the given WordPress site.
// The site URL must include the http or https scheme; credentials need the
// upload_files and publish_posts capabilities. No network traffic happens
// until Publish is called.
func New(site, username, password string, opts ...Option) (*Publisher, error) {
	p := &Publisher{
		cfg:    publisherConfig{timeout: defaultTimeout},
		parser: document.NewParser(),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.renderer == nil {
		p.renderer = pipeline.NewGoldmarkRenderer(p.cfg.highlightStyle)
	}

	// Create the XML-RPC client if not injected (e.g., by tests)
	if p.remote == nil {
		client, err := wordpress.NewClient(site, username, password, wordpress.WithBlogID(p.cfg.blogID))
		if err != nil {
			return nil, err
		}
		p.remote = client
		p.site = client.Site()
	} else if p.site == "" {
		normalized, err := wordpress.NormalizeSiteURL(site)
		if err != nil {
			return nil, err
		}
		p.site = normalized
	}

	return p, nil
}

// Publish runs the full pipeline: parse, upload, rewrite, render, create.
// It fails before any remote post call if a referenced local file is
// missing, so a broken document never produces a half-published post.
func (p *Publisher) Publish(ctx context.Context, input Input) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.timeout)
	defer cancel()

	doc, err := p.parser.Parse(input.Path)
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, input.Path)
		}
		return nil, err
	}

	if err := p.remote.Ping(ctx); err != nil {
		return nil, err
	}

	assets, coverIndex := collectAssets(doc, input.CoverPath)

	prefix := input.Prefix
	if prefix == "" {
		prefix = doc.Stem() + "_"
	}

	uploaded, err := p.uploadAssets(ctx, assets, prefix)
	if err != nil {
		return nil, err
	}

	links := make(map[string]string, len(uploaded))
	for _, m := range uploaded {
		links[m.LocalPath] = m.URL
	}

	body := pipeline.Normalize(doc.Body)
	body = pipeline.RewriteLinks(body, links)

	if input.RenderHTML {
		body, err = p.renderer.Render(ctx, body)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrHTMLRender, err)
		}
	}

	post := wordpress.Post{
		Title:      resolveTitle(input.Title, doc),
		Content:    body,
		Status:     resolveStatus(input.Status),
		Categories: resolveTerms(input.Categories, doc.FrontMatter["categories"]),
		Tags:       resolveTerms(input.Tags, doc.FrontMatter["tags"]),
	}

	if coverIndex >= 0 {
		id, err := strconv.Atoi(uploaded[coverIndex].ID)
		if err != nil {
			return nil, fmt.Errorf("%w: cover media ID %q is not numeric", ErrPublishFailed, uploaded[coverIndex].ID)
		}
		post.ThumbnailID = id
	}

	postID, err := p.remote.CreatePost(ctx, post)
	if err != nil {
		if errors.Is(err, wordpress.ErrAuthRejected) {
			return nil, fmt.Errorf("%w: %v", ErrAuthRejected, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrPublishFailed, err)
	}

	return &Result{
		PostID:  postID,
		PostURL: fmt.Sprintf("%s/?p=%s", p.site, postID),
		Media:   uploaded,
	}, nil
}

// collectAssets returns the upload list and the index of the cover asset
// within it (-1 when no cover applies). An explicit override wins over the
// in-document marker. The cover is appended only when the document does
// not already reference it, so it is never uploaded twice.
func collectAssets(doc *document.Document, coverOverride string) ([]document.Asset, int) {
	assets := make([]document.Asset, len(doc.Assets))
	copy(assets, doc.Assets)

	cover := coverOverride
	if cover == "" {
		cover = doc.CoverPath
	}
	if cover == "" {
		return assets, -1
	}

	for i, a := range assets {
		if a.OriginalPath == cover {
			return assets, i
		}
	}

	assets = append(assets, document.NewAsset(cover, doc.Dir, true))
	return assets, len(assets) - 1
}

// uploadAssets uploads every asset, aborting on the first failure.
// A missing local file fails the run before any post is created.
func (p *Publisher) uploadAssets(ctx context.Context, assets []document.Asset, prefix string) ([]Media, error) {
	if len(assets) == 0 {
		return nil, nil
	}

	uploaded := make([]Media, 0, len(assets))
	for i, asset := range assets {
		data, err := os.ReadFile(asset.AbsolutePath) // #nosec G304 -- path comes from the user's document
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s (referenced as %q)", ErrAssetNotFound, asset.AbsolutePath, asset.OriginalPath)
			}
			return nil, fmt.Errorf("reading %s: %w", asset.AbsolutePath, err)
		}

		name := prefix + asset.FileName
		mimeType := fileutil.DetectMIMEType(asset.AbsolutePath)

		media, err := p.remote.UploadFile(ctx, name, mimeType, data)
		if err != nil {
			if errors.Is(err, wordpress.ErrAuthRejected) {
				return nil, fmt.Errorf("%w: %v", ErrAuthRejected, err)
			}
			return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
		}

		uploaded = append(uploaded, Media{
			LocalPath: asset.OriginalPath,
			Filename:  name,
			URL:       media.URL,
			ID:        media.ID,
		})

		if p.cfg.progress != nil {
			p.cfg.progress(i+1, len(assets), name)
		}
	}

	return uploaded, nil
}

// resolveTitle picks the post title: explicit input, then front matter,
// then the document filename stem.
func resolveTitle(title string, doc *document.Document) string {
	if title != "" {
		return title
	}
	if fm := doc.FrontMatter["title"]; fm != "" {
		return fm
	}
	return doc.Stem()
}

// resolveTerms picks explicit terms over the front matter value, which
// is a comma-separated list (YAML sequences are flattened by the parser).
func resolveTerms(explicit []string, fromFrontMatter string) []string {
	if len(explicit) > 0 {
		return explicit
	}
	if fromFrontMatter == "" {
		return nil
	}
	var terms []string
	for _, part := range strings.Split(fromFrontMatter, ",") {
		if t := strings.TrimSpace(part); t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

// resolveStatus applies the draft default.
func resolveStatus(status string) string {
	if status == "" {
		return DefaultStatus
	}
	return status
}
