package fetcher

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestFetcher() *Fetcher {
	return New(Config{UserAgent: "test-agent", Timeout: 5 * time.Second, AllowPrivate: true})
}

func TestFetcher_ExtractsFields(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.UserAgent()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`
			<html>
			<head>
				<title>  जैसलमेर
				 पर्यटन </title>
				<meta name="description" content="स्वर्ण नगरी">
				<style>body { color: red; }</style>
			</head>
			<body>
				<h1>सोनार किला</h1>
				<script>var hidden = "secret";</script>
				<p>जैसलमेर   थार मरुस्थल में है।</p>
			</body>
			</html>
		`))
	}))
	defer server.Close()

	input, err := newTestFetcher().Fetch(t.Context(), server.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if gotAgent != "test-agent" {
		t.Errorf("User-Agent = %q, want test-agent", gotAgent)
	}
	if input.URL != server.URL {
		t.Errorf("URL = %q, want %q", input.URL, server.URL)
	}
	if input.Title != "जैसलमेर पर्यटन" {
		t.Errorf("Title = %q", input.Title)
	}
	if input.Description != "स्वर्ण नगरी" {
		t.Errorf("Description = %q", input.Description)
	}
	if input.Content != "सोनार किला जैसलमेर थार मरुस्थल में है।" {
		t.Errorf("Content = %q", input.Content)
	}
	if strings.Contains(input.Content, "secret") {
		t.Error("Content should not include script text")
	}
}

func TestFetcher_DescriptionFallbacks(t *testing.T) {
	long := strings.Repeat("रेत ", 100)
	pages := map[string]string{
		"/og":       `<html><head><title>OG</title><meta property="og:description" content="from og"></head><body>text</body></html>`,
		"/content":  `<html><head><title>Plain</title></head><body><p>` + long + `</p></body></html>`,
		"/untitled": `<html><body>only body</body></html>`,
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(pages[r.URL.Path]))
	}))
	defer server.Close()

	f := newTestFetcher()

	og, err := f.Fetch(t.Context(), server.URL+"/og")
	if err != nil {
		t.Fatalf("Fetch(/og) error = %v", err)
	}
	if og.Description != "from og" {
		t.Errorf("og Description = %q, want %q", og.Description, "from og")
	}

	content, err := f.Fetch(t.Context(), server.URL+"/content")
	if err != nil {
		t.Fatalf("Fetch(/content) error = %v", err)
	}
	if n := len([]rune(content.Description)); n != DescriptionLength {
		t.Errorf("fallback description has %d characters, want %d", n, DescriptionLength)
	}
	if !strings.HasPrefix(content.Content, content.Description) {
		t.Error("fallback description should be a prefix of the content")
	}

	untitled, err := f.Fetch(t.Context(), server.URL+"/untitled")
	if err != nil {
		t.Fatalf("Fetch(/untitled) error = %v", err)
	}
	if untitled.Title != server.URL+"/untitled" {
		t.Errorf("untitled Title = %q, want the url", untitled.Title)
	}
}

func TestFetcher_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := newTestFetcher().Fetch(t.Context(), server.URL)
	if !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("Fetch() error = %v, want ErrFetchFailed", err)
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("error %q should mention the status", err)
	}
}

func TestFetcher_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := newTestFetcher().Fetch(t.Context(), url)
	if !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("Fetch() error = %v, want ErrFetchFailed", err)
	}
}

func TestFetcher_BlocksPrivateAddresses(t *testing.T) {
	f := New(Config{})

	tests := []string{
		"http://127.0.0.1:8080/",
		"http://localhost/",
		"http://169.254.169.254/latest/meta-data/",
		"javascript:alert(1)",
	}
	for _, url := range tests {
		t.Run(url, func(t *testing.T) {
			if _, err := f.Fetch(t.Context(), url); !errors.Is(err, ErrBlockedURL) {
				t.Errorf("Fetch(%q) error = %v, want ErrBlockedURL", url, err)
			}
		})
	}
}

func TestGuardDial(t *testing.T) {
	tests := []struct {
		address string
		blocked bool
	}{
		{"127.0.0.1:80", true},
		{"[::1]:443", true},
		{"10.1.2.3:8080", true},
		{"169.254.169.254:80", true},
		{"8.8.8.8:443", false},
		{"[2001:4860:4860::8888]:443", false},
		{"not-an-address", true},
	}
	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			err := guardDial("tcp", tt.address, nil)
			if tt.blocked && !errors.Is(err, ErrBlockedURL) {
				t.Errorf("guardDial(%q) error = %v, want ErrBlockedURL", tt.address, err)
			}
			if !tt.blocked && err != nil {
				t.Errorf("guardDial(%q) unexpected error: %v", tt.address, err)
			}
		})
	}
}

func TestTransportRefusesPrivateDial(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>secret</body></html>"))
	}))
	defer server.Close()

	// The url passes no pre-check here, so only the dialer stands between
	// the client and the loopback server.
	guarded := &http.Client{Transport: New(Config{}).transport()}
	if _, err := guarded.Get(server.URL); !errors.Is(err, ErrBlockedURL) {
		t.Fatalf("Get(%q) error = %v, want ErrBlockedURL", server.URL, err)
	}

	open := &http.Client{Transport: newTestFetcher().transport()}
	resp, err := open.Get(server.URL)
	if err != nil {
		t.Fatalf("Get(%q) with private addresses allowed: %v", server.URL, err)
	}
	resp.Body.Close()
}
