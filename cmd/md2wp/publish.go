package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	md2wp "github.com/Flying-Doggy/go-md2wp"
	"github.com/Flying-Doggy/go-md2wp/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no markdown file specified")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidTimeout     = errors.New("invalid timeout")
	ErrMissingSiteURL     = errors.New("site URL is required (--url or config site.url)")
	ErrMissingCredentials = errors.New("username and password are required (--username/--password or config)")
)

// PostPublisher is the interface for the publish pipeline.
type PostPublisher interface {
	Publish(ctx context.Context, input md2wp.Input) (*md2wp.Result, error)
}

// Compile-time interface implementation check.
var _ PostPublisher = (*md2wp.Publisher)(nil)

// publisherFactory creates a PostPublisher; swapped out in tests.
type publisherFactory func(site, username, password string, opts ...md2wp.Option) (PostPublisher, error)

// defaultPublisherFactory builds the real publisher.
func defaultPublisherFactory(site, username, password string, opts ...md2wp.Option) (PostPublisher, error) {
	return md2wp.New(site, username, password, opts...)
}

// runPublish orchestrates the publish process.
func runPublish(ctx context.Context, positionalArgs []string, flags *publishFlags, factory publisherFactory, env *Environment) error {
	inputPath, err := resolveInputPath(positionalArgs)
	if err != nil {
		return err
	}

	// Load configuration
	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	if cfg.Site.URL == "" {
		return ErrMissingSiteURL
	}
	if cfg.Site.Username == "" || cfg.Site.Password == "" {
		return ErrMissingCredentials
	}

	opts, err := buildOptions(flags, cfg, env)
	if err != nil {
		return err
	}

	publisher, err := factory(cfg.Site.URL, cfg.Site.Username, cfg.Site.Password, opts...)
	if err != nil {
		return err
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Publishing %s to %s\n", inputPath, cfg.Site.URL)
	}

	start := time.Now()
	result, err := publisher.Publish(ctx, md2wp.Input{
		Path:       inputPath,
		Title:      flags.post.title,
		Categories: cfg.Post.Categories,
		Tags:       cfg.Post.Tags,
		Status:     cfg.Post.Status,
		Prefix:     cfg.Upload.Prefix,
		CoverPath:  flags.upload.cover,
		RenderHTML: cfg.Render.HTML,
	})
	if err != nil {
		color.New(color.FgRed).Fprintf(env.Stderr, "FAILED %s\n", inputPath)
		return err
	}

	printResult(result, flags, env, time.Since(start))
	return nil
}

// resolveInputPath validates the positional argument.
func resolveInputPath(args []string) (string, error) {
	if len(args) == 0 {
		return "", ErrNoInput
	}
	path := args[0]
	ext := filepath.Ext(path)
	if ext != ".md" && ext != ".markdown" {
		return "", fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return path, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *publishFlags, cfg *config.Config) {
	// Site flags
	if flags.site.url != "" {
		cfg.Site.URL = flags.site.url
	}
	if flags.site.username != "" {
		cfg.Site.Username = flags.site.username
	}
	if flags.site.password != "" {
		cfg.Site.Password = flags.site.password
	}
	if flags.site.blogID > 0 {
		cfg.Site.BlogID = flags.site.blogID
	}

	// Post flags
	if flags.post.status != "" {
		cfg.Post.Status = flags.post.status
	}
	if len(flags.post.categories) > 0 {
		cfg.Post.Categories = flags.post.categories
	}
	if len(flags.post.tags) > 0 {
		cfg.Post.Tags = flags.post.tags
	}

	// Upload flags
	if flags.upload.prefix != "" {
		cfg.Upload.Prefix = flags.upload.prefix
	}

	// Render flags
	if flags.render.html {
		cfg.Render.HTML = true
	}
	if flags.render.noHTML {
		cfg.Render.HTML = false
	}
	if flags.render.highlightStyle != "" {
		cfg.Render.HighlightStyle = flags.render.highlightStyle
	}
}

// buildOptions translates merged config into publisher options.
// Progress reporting goes to stderr so stdout stays parseable.
func buildOptions(flags *publishFlags, cfg *config.Config, env *Environment) ([]md2wp.Option, error) {
	var opts []md2wp.Option

	if flags.timeout != "" {
		d, err := time.ParseDuration(flags.timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimeout, flags.timeout)
		}
		opts = append(opts, md2wp.WithTimeout(d))
	}

	if cfg.Site.BlogID > 0 {
		opts = append(opts, md2wp.WithBlogID(cfg.Site.BlogID))
	}

	if cfg.Render.HighlightStyle != "" {
		opts = append(opts, md2wp.WithHighlightStyle(cfg.Render.HighlightStyle))
	}

	if !flags.common.quiet {
		opts = append(opts, md2wp.WithUploadProgress(uploadProgress(env)))
	}

	return opts, nil
}

// uploadProgress returns a callback that drives a progress bar on stderr.
// The bar is created lazily on the first upload so documents without
// local resources print nothing.
func uploadProgress(env *Environment) md2wp.ProgressFunc {
	var bar *progressbar.ProgressBar
	return func(done, total int, filename string) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(env.Stderr),
				progressbar.OptionSetDescription("uploading"),
				progressbar.OptionShowCount(),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(env.Stderr)
				}),
			)
		}
		bar.Describe("uploading " + filename)
		_ = bar.Add(1)
	}
}

// printResult reports the created post and uploaded media.
func printResult(result *md2wp.Result, flags *publishFlags, env *Environment, elapsed time.Duration) {
	if flags.common.quiet {
		fmt.Fprintln(env.Stdout, result.PostURL)
		return
	}

	if flags.common.verbose {
		for _, m := range result.Media {
			fmt.Fprintf(env.Stdout, "%s -> %s\n", m.LocalPath, m.URL)
		}
		fmt.Fprintf(env.Stdout, "Done in %v\n", elapsed.Round(time.Millisecond))
	}

	color.New(color.FgGreen).Fprintf(env.Stdout, "Created post %s\n", result.PostID)
	fmt.Fprintln(env.Stdout, result.PostURL)
}
