// Package config loads and validates YAML configuration for md2wp.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Flying-Doggy/go-md2wp/internal/fileutil"
	"github.com/Flying-Doggy/go-md2wp/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidStatus   = errors.New("invalid post status in config")
	ErrInvalidSiteURL  = errors.New("site.url must start with http:// or https://")
)

// Field length limits. Credentials and prefixes have no legitimate reason
// to approach these sizes; exceeding them is almost always a paste error.
const (
	MaxURLLength      = 2048 // Browser limit
	MaxUsernameLength = 100
	MaxPasswordLength = 256 // Application passwords are 24 chars; leave headroom
	MaxPrefixLength   = 100
	MaxTermLength     = 100 // Category or tag name
	MaxStyleLength    = 50  // Chroma style name
)

// configDirName is the subdirectory searched under os.UserConfigDir().
const configDirName = "go-md2wp"

// Config holds all configuration for publishing.
type Config struct {
	Site   SiteConfig   `yaml:"site"`
	Post   PostConfig   `yaml:"post"`
	Upload UploadConfig `yaml:"upload"`
	Render RenderConfig `yaml:"render"`
}

// SiteConfig identifies the WordPress site and credentials.
type SiteConfig struct {
	URL      string `yaml:"url"`      // Site root URL (https://example.com)
	Username string `yaml:"username"` // Needs publish_posts and upload_files capabilities
	Password string `yaml:"password"` // Login password or application password
	BlogID   int    `yaml:"blogId"`   // 0 for single-blog installs
}

// PostConfig defines post defaults.
type PostConfig struct {
	Status     string   `yaml:"status"`     // "draft", "publish", "pending" (default: draft)
	Categories []string `yaml:"categories"` // Default categories
	Tags       []string `yaml:"tags"`       // Default tags
}

// UploadConfig defines media upload options.
type UploadConfig struct {
	Prefix string `yaml:"prefix"` // Filename prefix (empty = derive from document name)
}

// RenderConfig defines HTML rendering options.
type RenderConfig struct {
	HTML           bool   `yaml:"html"`           // Render body to HTML before publishing
	HighlightStyle string `yaml:"highlightStyle"` // Chroma style name (default: github)
}

// DefaultConfig returns a configuration with safe defaults: no site,
// draft status, no rendering.
func DefaultConfig() *Config {
	return &Config{
		Post: PostConfig{Status: "draft"},
	}
}

// Validate checks field lengths and enum values.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("site.url", c.Site.URL, MaxURLLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.username", c.Site.Username, MaxUsernameLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.password", c.Site.Password, MaxPasswordLength); err != nil {
		return err
	}
	if err := validateFieldLength("upload.prefix", c.Upload.Prefix, MaxPrefixLength); err != nil {
		return err
	}
	if err := validateFieldLength("render.highlightStyle", c.Render.HighlightStyle, MaxStyleLength); err != nil {
		return err
	}

	if c.Site.URL != "" &&
		!strings.HasPrefix(c.Site.URL, "http://") &&
		!strings.HasPrefix(c.Site.URL, "https://") {
		return fmt.Errorf("%w: %q", ErrInvalidSiteURL, c.Site.URL)
	}

	switch c.Post.Status {
	case "", "draft", "publish", "pending":
		// valid
	default:
		return fmt.Errorf("%w: %q (must be draft, publish, or pending)", ErrInvalidStatus, c.Post.Status)
	}

	for i, cat := range c.Post.Categories {
		if err := validateFieldLength(fmt.Sprintf("post.categories[%d]", i), cat, MaxTermLength); err != nil {
			return err
		}
	}
	for i, tag := range c.Post.Tags {
		if err := validateFieldLength(fmt.Sprintf("post.tags[%d]", i), tag, MaxTermLength); err != nil {
			return err
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-md2wp/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, configDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
