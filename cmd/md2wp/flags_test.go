package main

import (
	"reflect"
	"testing"
)

func TestParsePublishFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		check      func(t *testing.T, f *publishFlags)
		positional []string
		wantErr    bool
	}{
		{
			name: "site flags",
			args: []string{"post.md", "--url", "https://example.com", "--username", "admin", "--password", "secret"},
			check: func(t *testing.T, f *publishFlags) {
				if f.site.url != "https://example.com" {
					t.Errorf("url = %q", f.site.url)
				}
				if f.site.username != "admin" || f.site.password != "secret" {
					t.Errorf("credentials = %q/%q", f.site.username, f.site.password)
				}
			},
			positional: []string{"post.md"},
		},
		{
			name: "short flags",
			args: []string{"-u", "https://example.com", "-t", "My Title", "-s", "publish", "-p", "pre_", "post.md"},
			check: func(t *testing.T, f *publishFlags) {
				if f.post.title != "My Title" || f.post.status != "publish" {
					t.Errorf("post = %+v", f.post)
				}
				if f.upload.prefix != "pre_" {
					t.Errorf("prefix = %q", f.upload.prefix)
				}
			},
			positional: []string{"post.md"},
		},
		{
			name: "repeatable and comma-separated terms",
			args: []string{"post.md", "--category", "dev,tooling", "--tag", "go", "--tag", "wordpress"},
			check: func(t *testing.T, f *publishFlags) {
				if !reflect.DeepEqual(f.post.categories, []string{"dev", "tooling"}) {
					t.Errorf("categories = %v", f.post.categories)
				}
				if !reflect.DeepEqual(f.post.tags, []string{"go", "wordpress"}) {
					t.Errorf("tags = %v", f.post.tags)
				}
			},
			positional: []string{"post.md"},
		},
		{
			name: "render and common flags",
			args: []string{"--html", "--highlight-style", "monokai", "-q", "-c", "site", "post.md"},
			check: func(t *testing.T, f *publishFlags) {
				if !f.render.html || f.render.highlightStyle != "monokai" {
					t.Errorf("render = %+v", f.render)
				}
				if !f.common.quiet || f.common.config != "site" {
					t.Errorf("common = %+v", f.common)
				}
			},
			positional: []string{"post.md"},
		},
		{
			name: "no-html flag",
			args: []string{"--no-html", "post.md"},
			check: func(t *testing.T, f *publishFlags) {
				if !f.render.noHTML {
					t.Error("noHTML = false, want true")
				}
			},
			positional: []string{"post.md"},
		},
		{
			name:    "unknown flag rejected",
			args:    []string{"--bogus"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, positional, err := parsePublishFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Error("parsePublishFlags() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parsePublishFlags() error = %v", err)
			}
			if !reflect.DeepEqual(positional, tt.positional) {
				t.Errorf("positional = %v, want %v", positional, tt.positional)
			}
			if tt.check != nil {
				tt.check(t, f)
			}
		})
	}
}
