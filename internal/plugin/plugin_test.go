package plugin

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/shortreel/douyin-resolver/internal/apperrors"
	"github.com/shortreel/douyin-resolver/internal/config"
	"github.com/shortreel/douyin-resolver/internal/models"
)

// rewriteTransport routes every request to the test server regardless of the
// host, so the default source endpoints and the short domain can all be
// simulated by one handler dispatching on path.
type rewriteTransport struct {
	target *url.URL
}

func (t rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.URL.Scheme = t.target.Scheme
	clone.URL.Host = t.target.Host
	resp, err := http.DefaultTransport.RoundTrip(clone)
	if resp != nil {
		// Keep the pre-rewrite request so redirect targets report their
		// real URL, as they would against the live hosts.
		resp.Request = req
	}
	return resp, err
}

func newTestPlugin(server *httptest.Server) *Plugin {
	target, _ := url.Parse(server.URL)
	return New(&http.Client{Transport: rewriteTransport{target: target}}, nil)
}

func TestPlugin_ShortLinkVideoWithCover(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/abcd1234/":
			// The short domain's redirect hop
			http.Redirect(w, r, "https://www.douyin.com/video/123", http.StatusFound)
		case r.URL.Path == "/video/123":
			w.WriteHeader(http.StatusOK)
		case r.URL.Path == "/api":
			// Primary source
			if got := r.URL.Query().Get("url"); got != "https://www.douyin.com/video/123" {
				t.Errorf("Expected resolved URL passed to source, got %q", got)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"nwm_video_url":"https://cdn/x.mp4","cover_url":"https://cdn/x.jpg","desc":"Test"}`))
		default:
			t.Errorf("Unexpected request path %q", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	p := newTestPlugin(server)

	result, err := p.Resolve(context.Background(), Invocation{
		Request:  RequestInfo{URL: "https://v.douyin.com/abcd1234/"},
		Settings: &models.Settings{DownloadType: models.DownloadBoth},
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(result.Files) != 2 {
		t.Fatalf("Expected 2 files (video then cover), got %d", len(result.Files))
	}
	if result.Files[0].Request.URL != "https://cdn/x.mp4" {
		t.Errorf("Expected video first, got %q", result.Files[0].Request.URL)
	}
	if result.Files[1].Request.URL != "https://cdn/x.jpg" {
		t.Errorf("Expected cover second, got %q", result.Files[1].Request.URL)
	}
	if result.Extra.Type != models.ContentTypeVideo {
		t.Errorf("Expected extra.type video, got %q", result.Extra.Type)
	}
	if result.Extra.Platform != "douyin" {
		t.Errorf("Expected platform douyin, got %q", result.Extra.Platform)
	}
	if result.Name != "Test" {
		t.Errorf("Expected manifest named from desc, got %q", result.Name)
	}
}

func TestPlugin_FallbackToLastSource(t *testing.T) {
	var tenapiCalls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api", "/douyin/api.php":
			// Primary and first backup both fail
			w.WriteHeader(http.StatusInternalServerError)
		case "/v2/video":
			atomic.AddInt32(&tenapiCalls, 1)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"code":200,"url":"https://cdn/y.mp4","title":"From last source"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	p := newTestPlugin(server)

	result, err := p.Resolve(context.Background(), Invocation{
		Request: RequestInfo{URL: "https://www.douyin.com/video/456"},
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(result.Files) != 1 {
		t.Fatalf("Expected exactly 1 video file, got %d", len(result.Files))
	}
	if result.Files[0].Request.URL != "https://cdn/y.mp4" {
		t.Errorf("Expected file from last source, got %q", result.Files[0].Request.URL)
	}
	if atomic.LoadInt32(&tenapiCalls) != 1 {
		t.Errorf("Expected last source called once, got %d", tenapiCalls)
	}
}

func TestPlugin_UserLinkFailsWithoutNetworkCall(t *testing.T) {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	p := newTestPlugin(server)

	_, err := p.Resolve(context.Background(), Invocation{
		Request: RequestInfo{URL: "https://www.douyin.com/user/MS4wLjABAAAA"},
	})
	if err == nil {
		t.Fatal("Expected error for user profile link")
	}
	if !errors.Is(err, &apperrors.ErrUnsupportedLink{}) {
		t.Errorf("Expected ErrUnsupportedLink, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "douyin resolver:") {
		t.Errorf("Expected pipeline prefix on error, got %q", err.Error())
	}
	if atomic.LoadInt32(&requests) != 0 {
		t.Errorf("Expected no network call for user link, got %d requests", requests)
	}
}

func TestPlugin_NoteGalleryDefaultMode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"desc":"Gallery","images":["https://cdn/a.jpg","https://cdn/b.jpg","https://cdn/c.jpg"]}`))
	}))
	defer server.Close()

	p := newTestPlugin(server)

	result, err := p.Resolve(context.Background(), Invocation{
		Request: RequestInfo{URL: "https://www.douyin.com/note/777"},
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if result.Extra.Type != models.ContentTypeNote {
		t.Errorf("Expected note type, got %q", result.Extra.Type)
	}
	if len(result.Files) != 3 {
		t.Fatalf("Expected 3 image descriptors, got %d", len(result.Files))
	}
	for i, want := range []string{"https://cdn/a.jpg", "https://cdn/b.jpg", "https://cdn/c.jpg"} {
		if result.Files[i].Request.URL != want {
			t.Errorf("Expected image %d to be %q, got %q", i, want, result.Files[i].Request.URL)
		}
	}
	if !strings.HasSuffix(result.Files[0].Name, "_1.jpeg") {
		t.Errorf("Expected 1-based index in first name, got %q", result.Files[0].Name)
	}
}

func TestPlugin_ConfiguredDownloadTypeIsDefault(t *testing.T) {
	cfg := config.GetConfig()
	previous := cfg.DownloadType
	cfg.DownloadType = "both"
	defer func() { cfg.DownloadType = previous }()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"nwm_video_url":"https://cdn/x.mp4","cover_url":"https://cdn/x.jpg","desc":"Configured"}`))
	}))
	defer server.Close()

	p := newTestPlugin(server)

	// No per-invocation settings: the configured mode must apply
	result, err := p.Resolve(context.Background(), Invocation{
		Request: RequestInfo{URL: "https://www.douyin.com/video/11"},
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(result.Files) != 2 {
		t.Fatalf("Expected configured mode both to emit video and cover, got %d files", len(result.Files))
	}

	// An invocation-level override still wins over the configured mode
	result, err = p.Resolve(context.Background(), Invocation{
		Request:  RequestInfo{URL: "https://www.douyin.com/video/11"},
		Settings: &models.Settings{DownloadType: models.DownloadVideo},
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(result.Files) != 1 {
		t.Fatalf("Expected override mode video to emit 1 file, got %d", len(result.Files))
	}
}

func TestPlugin_EmptyResultSurfacesError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		// Video resolves, but the requested cover does not exist
		_, _ = w.Write([]byte(`{"nwm_video_url":"https://cdn/x.mp4","desc":"No cover"}`))
	}))
	defer server.Close()

	p := newTestPlugin(server)

	_, err := p.Resolve(context.Background(), Invocation{
		Request:  RequestInfo{URL: "https://www.douyin.com/video/9"},
		Settings: &models.Settings{DownloadType: models.DownloadCover},
	})
	if err == nil {
		t.Fatal("Expected empty-result error")
	}
	if !errors.Is(err, &apperrors.ErrEmptyResult{}) {
		t.Errorf("Expected ErrEmptyResult, got %v", err)
	}
}

func TestPlugin_MissingURL(t *testing.T) {
	p := New(http.DefaultClient, nil)

	_, err := p.Resolve(context.Background(), Invocation{})
	if err == nil {
		t.Fatal("Expected error for missing URL")
	}
	if !strings.HasPrefix(err.Error(), "douyin resolver:") {
		t.Errorf("Expected pipeline prefix, got %q", err.Error())
	}
}
