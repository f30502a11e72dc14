package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"searchportal/internal/config"
	"searchportal/internal/fetcher"
	"searchportal/internal/search"
	"searchportal/internal/store"
	"searchportal/internal/testutil"
)

func testConfig() *config.Config {
	return &config.Config{
		Env:             "test",
		ServerAddr:      ":0",
		BaseURL:         "http://localhost:5000",
		SiteTitle:       "खोज",
		SiteTagline:     "टैगलाइन",
		SiteFooter:      "फुटर",
		DefaultPageSize: 10,
		MetricsEnabled:  true,
		RateLimitWindow: time.Minute,
	}
}

func newTestServer(t *testing.T, cfg *config.Config) (*Server, *store.Store) {
	t.Helper()

	srv, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	st := testutil.SeededStore(t, store.DefaultSeed()...)
	f := fetcher.New(fetcher.Config{Timeout: time.Second})
	srv.RegisterRoutes(st, search.NewService(st), f)
	return srv, st
}

func get(t *testing.T, srv *Server, target string) (*http.Response, string) {
	t.Helper()
	return send(t, srv, httptest.NewRequest(http.MethodGet, target, nil))
}

func send(t *testing.T, srv *Server, req *http.Request) (*http.Response, string) {
	t.Helper()

	resp, err := srv.App.Test(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", req.Method, req.URL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	return resp, string(body)
}

func TestPages(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	tests := []struct {
		name       string
		target     string
		wantStatus int
		contains   []string
	}{
		{"home", "/", 200, []string{"खोज", "टैगलाइन", `action="/search"`, "/static/css/style.css"}},
		{"results", "/search?q=" + url.QueryEscape("जयपुर"), 200, []string{"परिणाम", "सेकंड", `<article class="result`}},
		{"no results", "/search?q=xyzzy", 200, []string{"कोई परिणाम नहीं मिला", "xyzzy"}},
		{"mangled page falls back", "/search?q=" + url.QueryEscape("जयपुर") + "&page=abc", 200, []string{"परिणाम"}},
		{"query too long", "/search?q=" + strings.Repeat("a", 101), 400, []string{"between 1 and 100"}},
		{"crawler", "/crawler", 200, []string{"नया वेबपेज जोड़ें", "इंडेक्सड वेबपेज (10)", `value="fetch"`}},
		{"stylesheet", "/static/css/style.css", 200, []string{".result"}},
		{"unknown page", "/does-not-exist", 404, []string{"404", "फुटर"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, srv, tt.target)
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			for _, want := range tt.contains {
				if !strings.Contains(body, want) {
					t.Errorf("body does not contain %q", want)
				}
			}
		})
	}
}

func TestEmptySearchRedirectsHome(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	for _, target := range []string{"/search", "/search?q=", "/search?q=%20%20"} {
		resp, _ := get(t, srv, target)
		if resp.StatusCode < 300 || resp.StatusCode >= 400 {
			t.Errorf("%s: status = %d, want a redirect", target, resp.StatusCode)
		}
		if loc := resp.Header.Get("Location"); loc != "/" {
			t.Errorf("%s: Location = %q, want /", target, loc)
		}
	}
}

func TestSearchPagination(t *testing.T) {
	cfg := testConfig()
	cfg.DefaultPageSize = 3
	srv, _ := newTestServer(t, cfg)

	// All ten seeded pages mention राजस्थान.
	q := url.QueryEscape("राजस्थान")

	_, body := get(t, srv, "/search?q="+q)
	for _, want := range []string{`class="pagination"`, `<span class="current">1</span>`, "page=2", "अगला"} {
		if !strings.Contains(body, want) {
			t.Errorf("first page does not contain %q", want)
		}
	}
	if strings.Contains(body, "पिछला") {
		t.Error("first page should not link to a previous page")
	}

	_, body = get(t, srv, "/search?q="+q+"&page=2")
	for _, want := range []string{"page=1", "page=3", "अगला", "पिछला"} {
		if !strings.Contains(body, want) {
			t.Errorf("middle page does not contain %q", want)
		}
	}

	_, body = get(t, srv, "/search?q="+q+"&page=4")
	if !strings.Contains(body, `<span class="current">4</span>`) || strings.Contains(body, "अगला") {
		t.Error("last page should be current without a next link")
	}
	if got := strings.Count(body, `<article class="result`); got != 1 {
		t.Errorf("last page shows %d results, want 1", got)
	}

	_, body = get(t, srv, "/search?q="+url.QueryEscape("जयपुर")+"&page=1")
	if !strings.Contains(body, `class="pagination"`) {
		t.Error("nine results over pages of three should paginate")
	}
}

func TestCrawlerForm(t *testing.T) {
	srv, st := newTestServer(t, testConfig())

	form := url.Values{
		"url":         {"https://example.com/bikaner"},
		"title":       {"बीकानेर"},
		"description": {"ऊंटों का शहर"},
		"content":     {"जूनागढ़ किला"},
		"action":      {"add"},
	}
	post := func() (*http.Response, string) {
		req := httptest.NewRequest(http.MethodPost, "/crawler", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return send(t, srv, req)
	}

	resp, body := post()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	if !strings.Contains(body, "सफलतापूर्वक") || !strings.Contains(body, "इंडेक्सड वेबपेज (11)") {
		t.Error("success page should confirm the new webpage")
	}

	resp, _ = post()
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate status = %d, want 409", resp.StatusCode)
	}

	form.Set("url", "https://example.com/empty")
	form.Set("content", "")
	resp, body = post()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid status = %d, want 400", resp.StatusCode)
	}
	if !strings.Contains(body, "content is required") {
		t.Error("validation message should be shown")
	}

	if n := st.Stats(t.Context()).Webpages; n != 11 {
		t.Errorf("store has %d webpages, want 11", n)
	}
}

func TestCrawlerFetchBlocksPrivateAddress(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	form := url.Values{"url": {"http://127.0.0.1:9/"}, "action": {"fetch"}}
	req := httptest.NewRequest(http.MethodPost, "/crawler", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, body := send(t, srv, req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if !strings.Contains(body, "private or reserved") {
		t.Error("blocked message should be shown")
	}
}

func TestAPIRoutes(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	tests := []struct {
		method     string
		target     string
		wantStatus int
	}{
		{http.MethodGet, "/api/search?q=" + url.QueryEscape("जयपुर"), 200},
		{http.MethodGet, "/api/search?q=", 400},
		{http.MethodGet, "/api/webpages", 200},
		{http.MethodGet, "/api/webpages/3", 200},
		{http.MethodGet, "/api/webpages/99", 404},
		{http.MethodDelete, "/api/webpages", 405},
		{http.MethodGet, "/api/unknown", 404},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			resp, body := send(t, srv, httptest.NewRequest(tt.method, tt.target, nil))
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", resp.StatusCode, tt.wantStatus, body)
			}
			if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
				t.Errorf("Content-Type = %q, want JSON", ct)
			}
		})
	}
}

func TestRequestIDHeader(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	resp, _ := get(t, srv, "/api/webpages")
	if id := resp.Header.Get("X-Request-ID"); len(id) != 36 {
		t.Errorf("X-Request-ID = %q, want a uuid", id)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	get(t, srv, "/api/search?q=jaipur")
	resp, body := get(t, srv, "/metrics")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	for _, want := range []string{"searchportal_webpages", "searchportal_search_queries_total", "searchportal_search_duration_seconds"} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output does not contain %s", want)
		}
	}
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitMax = 2
	srv, _ := newTestServer(t, cfg)

	for i := 0; i < 2; i++ {
		if resp, _ := get(t, srv, "/api/webpages"); resp.StatusCode != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, resp.StatusCode)
		}
	}
	resp, body := get(t, srv, "/api/webpages")
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", resp.StatusCode)
	}
	if !strings.Contains(body, "Rate limit exceeded") {
		t.Errorf("unexpected body %s", body)
	}
}

func TestNoRateLimitByDefault(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	for i := 0; i < 150; i++ {
		if resp, _ := get(t, srv, "/api/webpages"); resp.StatusCode != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, resp.StatusCode)
		}
	}
}
