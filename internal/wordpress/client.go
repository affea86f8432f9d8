// Package wordpress implements the XML-RPC transport for WordPress media
// and post operations (wp.uploadFile, wp.newPost).
package wordpress

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/kolo/xmlrpc"
)

// Sentinel errors for remote operations.
var (
	ErrInvalidSiteURL = errors.New("site URL must start with http:// or https://")
	ErrConnect        = errors.New("cannot reach WordPress XML-RPC endpoint")
	ErrAuthRejected   = errors.New("WordPress rejected the credentials")
)

// DefaultBlogID is the blog identifier for single-blog installs.
const DefaultBlogID = 0

// xmlrpcPath is appended to the site URL to form the endpoint.
const xmlrpcPath = "/xmlrpc.php"

// Media is the media library record returned by wp.uploadFile.
type Media struct {
	ID       string // Attachment ID (WordPress returns it as a string)
	URL      string // Public URL of the uploaded file
	Filename string // Filename as stored remotely
	Type     string // MIME type echoed by the server
}

// Post is the payload for wp.newPost.
type Post struct {
	Title       string
	Content     string
	Status      string
	Categories  []string
	Tags        []string
	ThumbnailID int // Featured image attachment ID, 0 means none
}

// caller abstracts the underlying XML-RPC client for testability.
type caller interface {
	Call(serviceMethod string, args any, reply any) error
}

// Client talks to a single WordPress site over XML-RPC.
type Client struct {
	site      string
	username  string
	password  string
	blogID    int
	transport http.RoundTripper
	rpc       caller
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBlogID sets the blog ID for multi-blog installs.
func WithBlogID(id int) ClientOption {
	return func(c *Client) {
		c.blogID = id
	}
}

// WithTransport sets the HTTP transport used for XML-RPC calls.
func WithTransport(t http.RoundTripper) ClientOption {
	return func(c *Client) {
		c.transport = t
	}
}

// NormalizeSiteURL validates the site URL scheme and strips trailing
// slashes so the endpoint path joins cleanly.
func NormalizeSiteURL(site string) (string, error) {
	if !strings.HasPrefix(site, "http://") && !strings.HasPrefix(site, "https://") {
		return "", fmt.Errorf("%w: %q", ErrInvalidSiteURL, site)
	}
	return strings.TrimRight(site, "/"), nil
}

// NewClient creates a Client for the given site. No network traffic
// happens until the first call.
func NewClient(site, username, password string, opts ...ClientOption) (*Client, error) {
	normalized, err := NormalizeSiteURL(site)
	if err != nil {
		return nil, err
	}

	c := &Client{
		site:     normalized,
		username: username,
		password: password,
		blogID:   DefaultBlogID,
	}
	for _, opt := range opts {
		opt(c)
	}

	rpc, err := xmlrpc.NewClient(normalized+xmlrpcPath, c.transport)
	if err != nil {
		return nil, fmt.Errorf("creating XML-RPC client: %w", err)
	}
	c.rpc = rpc

	return c, nil
}

// Site returns the normalized site URL.
func (c *Client) Site() string {
	return c.site
}

// Ping verifies the endpoint answers XML-RPC requests.
// system.listMethods requires no credentials.
func (c *Client) Ping(ctx context.Context) error {
	var methods []string
	if err := c.call(ctx, "system.listMethods", nil, &methods); err != nil {
		return fmt.Errorf("%w: %s%s: %v", ErrConnect, c.site, xmlrpcPath, err)
	}
	return nil
}

// UploadFile uploads data to the media library under the given filename.
// overwrite is always false: a name collision makes WordPress derive a
// fresh filename instead of replacing the existing file.
func (c *Client) UploadFile(ctx context.Context, name, mimeType string, data []byte) (*Media, error) {
	payload := map[string]any{
		"name":      name,
		"type":      mimeType,
		"bits":      data,
		"overwrite": false,
	}

	var resp struct {
		ID   string `xmlrpc:"id"`
		File string `xmlrpc:"file"`
		URL  string `xmlrpc:"url"`
		Type string `xmlrpc:"type"`
	}

	args := []any{c.blogID, c.username, c.password, payload}
	if err := c.call(ctx, "wp.uploadFile", args, &resp); err != nil {
		return nil, fmt.Errorf("uploading %q: %w", name, err)
	}

	return &Media{
		ID:       resp.ID,
		URL:      resp.URL,
		Filename: resp.File,
		Type:     resp.Type,
	}, nil
}

// CreatePost creates a post via wp.newPost and returns the post ID.
func (c *Client) CreatePost(ctx context.Context, post Post) (string, error) {
	content := map[string]any{
		"post_title":   post.Title,
		"post_content": post.Content,
		"post_status":  post.Status,
		"post_type":    "post",
	}

	terms := map[string]any{}
	if len(post.Categories) > 0 {
		terms["category"] = post.Categories
	}
	if len(post.Tags) > 0 {
		terms["post_tag"] = post.Tags
	}
	if len(terms) > 0 {
		content["terms_names"] = terms
	}

	if post.ThumbnailID > 0 {
		content["post_thumbnail"] = post.ThumbnailID
	}

	var postID string
	args := []any{c.blogID, c.username, c.password, content}
	if err := c.call(ctx, "wp.newPost", args, &postID); err != nil {
		return "", fmt.Errorf("creating post %q: %w", post.Title, err)
	}

	return postID, nil
}

// call runs a blocking XML-RPC call with context cancellation via
// goroutine + select, since the underlying client has no context support.
func (c *Client) call(ctx context.Context, method string, args any, reply any) error {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- c.rpc.Call(method, args, reply)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return classifyFault(err)
	}
}

// classifyFault maps XML-RPC fault responses to sentinel errors.
// WordPress signals bad credentials with fault code 403.
func classifyFault(err error) error {
	if err == nil {
		return nil
	}
	var fault xmlrpc.FaultError
	if errors.As(err, &fault) {
		switch fault.Code {
		case 401, 403:
			return fmt.Errorf("%w: %s", ErrAuthRejected, fault.String)
		}
	}
	return err
}
