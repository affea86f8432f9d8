package wordpress

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kolo/xmlrpc"
)

// rpcHandler serves canned XML-RPC responses keyed by method name and
// records request bodies for assertions.
type rpcHandler struct {
	responses map[string]string
	requests  []string
}

func (h *rpcHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	h.requests = append(h.requests, string(body))

	for method, resp := range h.responses {
		if bytes.Contains(body, []byte("<methodName>"+method+"</methodName>")) {
			w.Header().Set("Content-Type", "text/xml")
			fmt.Fprint(w, resp)
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

const listMethodsResponse = `<?xml version="1.0"?>
<methodResponse><params><param><value><array><data>
<value><string>wp.uploadFile</string></value>
<value><string>wp.newPost</string></value>
</data></array></value></param></params></methodResponse>`

const uploadFileResponse = `<?xml version="1.0"?>
<methodResponse><params><param><value><struct>
<member><name>id</name><value><string>42</string></value></member>
<member><name>file</name><value><string>post_chart.png</string></value></member>
<member><name>url</name><value><string>https://example.com/wp-content/uploads/post_chart.png</string></value></member>
<member><name>type</name><value><string>image/png</string></value></member>
</struct></value></param></params></methodResponse>`

const newPostResponse = `<?xml version="1.0"?>
<methodResponse><params><param><value><string>317</string></value></param></params></methodResponse>`

const authFaultResponse = `<?xml version="1.0"?>
<methodResponse><fault><value><struct>
<member><name>faultCode</name><value><int>403</int></value></member>
<member><name>faultString</name><value><string>Incorrect username or password.</string></value></member>
</struct></value></fault></methodResponse>`

// newTestClient spins up a fake endpoint and a Client pointed at it.
func newTestClient(t *testing.T, h *rpcHandler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL, "admin", "secret")
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return c
}

func TestNormalizeSiteURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "https kept",
			input: "https://example.com",
			want:  "https://example.com",
		},
		{
			name:  "trailing slash stripped",
			input: "https://example.com/",
			want:  "https://example.com",
		},
		{
			name:  "http allowed",
			input: "http://localhost:8080",
			want:  "http://localhost:8080",
		},
		{
			name:    "missing scheme rejected",
			input:   "example.com",
			wantErr: true,
		},
		{
			name:    "empty rejected",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NormalizeSiteURL(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSiteURL) {
					t.Errorf("NormalizeSiteURL(%q) error = %v, want ErrInvalidSiteURL", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeSiteURL(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeSiteURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPing(t *testing.T) {
	t.Parallel()

	h := &rpcHandler{responses: map[string]string{"system.listMethods": listMethodsResponse}}
	c := newTestClient(t, h)

	if err := c.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}

func TestPingUnreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewClient(url, "admin", "secret")
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if err := c.Ping(context.Background()); !errors.Is(err, ErrConnect) {
		t.Errorf("Ping() error = %v, want ErrConnect", err)
	}
}

func TestUploadFile(t *testing.T) {
	t.Parallel()

	h := &rpcHandler{responses: map[string]string{"wp.uploadFile": uploadFileResponse}}
	c := newTestClient(t, h)

	media, err := c.UploadFile(context.Background(), "post_chart.png", "image/png", []byte{1, 2, 3})
	if err != nil {
		t.Fatalf("UploadFile() error = %v", err)
	}

	if media.ID != "42" {
		t.Errorf("ID = %q, want %q", media.ID, "42")
	}
	if media.URL != "https://example.com/wp-content/uploads/post_chart.png" {
		t.Errorf("URL = %q", media.URL)
	}
	if media.Filename != "post_chart.png" {
		t.Errorf("Filename = %q", media.Filename)
	}

	if len(h.requests) != 1 {
		t.Fatalf("got %d requests, want 1", len(h.requests))
	}
	for _, want := range []string{"<name>name</name>", "<name>type</name>", "<name>bits</name>", "<name>overwrite</name>"} {
		if !strings.Contains(h.requests[0], want) {
			t.Errorf("request missing %q", want)
		}
	}
}

func TestUploadFileAuthFault(t *testing.T) {
	t.Parallel()

	h := &rpcHandler{responses: map[string]string{"wp.uploadFile": authFaultResponse}}
	c := newTestClient(t, h)

	_, err := c.UploadFile(context.Background(), "a.png", "image/png", []byte{1})
	if !errors.Is(err, ErrAuthRejected) {
		t.Errorf("UploadFile() error = %v, want ErrAuthRejected", err)
	}
}

func TestCreatePost(t *testing.T) {
	t.Parallel()

	h := &rpcHandler{responses: map[string]string{"wp.newPost": newPostResponse}}
	c := newTestClient(t, h)

	id, err := c.CreatePost(context.Background(), Post{
		Title:       "Hello",
		Content:     "body",
		Status:      "draft",
		Categories:  []string{"dev"},
		Tags:        []string{"go"},
		ThumbnailID: 42,
	})
	if err != nil {
		t.Fatalf("CreatePost() error = %v", err)
	}
	if id != "317" {
		t.Errorf("CreatePost() = %q, want %q", id, "317")
	}

	req := h.requests[0]
	for _, want := range []string{
		"<name>post_title</name>",
		"<name>post_status</name>",
		"<name>terms_names</name>",
		"<name>post_thumbnail</name>",
	} {
		if !strings.Contains(req, want) {
			t.Errorf("request missing %q", want)
		}
	}
}

func TestCreatePostOmitsEmptyFields(t *testing.T) {
	t.Parallel()

	h := &rpcHandler{responses: map[string]string{"wp.newPost": newPostResponse}}
	c := newTestClient(t, h)

	if _, err := c.CreatePost(context.Background(), Post{Title: "t", Content: "c", Status: "draft"}); err != nil {
		t.Fatalf("CreatePost() error = %v", err)
	}

	req := h.requests[0]
	if strings.Contains(req, "terms_names") {
		t.Error("request contains terms_names, want omitted")
	}
	if strings.Contains(req, "post_thumbnail") {
		t.Error("request contains post_thumbnail, want omitted")
	}
}

func TestCreatePostAuthFault(t *testing.T) {
	t.Parallel()

	h := &rpcHandler{responses: map[string]string{"wp.newPost": authFaultResponse}}
	c := newTestClient(t, h)

	_, err := c.CreatePost(context.Background(), Post{Title: "t", Content: "c", Status: "draft"})
	if !errors.Is(err, ErrAuthRejected) {
		t.Errorf("CreatePost() error = %v, want ErrAuthRejected", err)
	}
}

func TestCallCancelledContext(t *testing.T) {
	t.Parallel()

	h := &rpcHandler{responses: map[string]string{"system.listMethods": listMethodsResponse}}
	c := newTestClient(t, h)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := c.Ping(ctx); err == nil {
		t.Error("Ping() with cancelled context, want error")
	}
}

func TestClassifyFault(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantAuth bool
	}{
		{
			name: "nil stays nil",
			err:  nil,
		},
		{
			name:     "fault 403 mapped",
			err:      xmlrpc.FaultError{Code: 403, String: "bad credentials"},
			wantAuth: true,
		},
		{
			name:     "fault 401 mapped",
			err:      xmlrpc.FaultError{Code: 401, String: "unauthorized"},
			wantAuth: true,
		},
		{
			name: "other fault passed through",
			err:  xmlrpc.FaultError{Code: 500, String: "server error"},
		},
		{
			name: "plain error passed through",
			err:  errors.New("boom"),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := classifyFault(tt.err)
			if tt.err == nil {
				if got != nil {
					t.Errorf("classifyFault(nil) = %v", got)
				}
				return
			}
			if tt.wantAuth != errors.Is(got, ErrAuthRejected) {
				t.Errorf("classifyFault(%v) = %v, wantAuth=%v", tt.err, got, tt.wantAuth)
			}
		})
	}
}
