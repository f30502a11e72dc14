// Package fetcher downloads a single remote page and extracts the fields
// needed to index it.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"

	"github.com/gocolly/colly/v2"

	"searchportal/internal/models"
	"searchportal/internal/validation"
)

// DescriptionLength is the number of content characters used when a page has
// no meta description.
const DescriptionLength = 200

var (
	ErrFetchFailed = errors.New("failed to fetch page")
	ErrBlockedURL  = errors.New("url is not allowed")
)

// Config holds fetcher configuration.
type Config struct {
	UserAgent string
	Timeout   time.Duration
	// AllowPrivate disables the private address guard. Only for tests and
	// trusted deployments.
	AllowPrivate bool
}

// Fetcher fetches web pages and turns them into webpage inputs.
type Fetcher struct {
	config Config
}

// New creates a new Fetcher with the given configuration.
func New(config Config) *Fetcher {
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}
	if config.UserAgent == "" {
		config.UserAgent = "searchportal-fetcher/1.0"
	}
	return &Fetcher{config: config}
}

type page struct {
	title         string
	description   string
	ogDescription string
	content       string
}

// Fetch downloads pageURL without following links and extracts its title,
// description and visible text.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (*models.WebpageInput, error) {
	if err := f.checkURL(pageURL); err != nil {
		return nil, err
	}

	c := colly.NewCollector(
		colly.MaxDepth(1),
		colly.UserAgent(f.config.UserAgent),
		colly.StdlibContext(ctx),
	)
	c.SetRequestTimeout(f.config.Timeout)
	c.WithTransport(f.transport())
	c.SetRedirectHandler(func(req *http.Request, via []*http.Request) error {
		if len(via) >= 5 {
			return errors.New("stopped after 5 redirects")
		}
		return f.checkURL(req.URL.String())
	})

	var p page
	c.OnHTML("head > title", func(e *colly.HTMLElement) {
		if p.title == "" {
			p.title = collapse(e.Text)
		}
	})
	c.OnHTML(`meta[name="description"]`, func(e *colly.HTMLElement) {
		p.description = collapse(e.Attr("content"))
	})
	c.OnHTML(`meta[property="og:description"]`, func(e *colly.HTMLElement) {
		p.ogDescription = collapse(e.Attr("content"))
	})
	c.OnHTML("body", func(e *colly.HTMLElement) {
		body := e.DOM.Clone()
		body.Find("script, style, noscript, template").Remove()
		p.content = collapse(body.Text())
	})

	var fetchErr error
	c.OnError(func(r *colly.Response, err error) {
		if errors.Is(err, ErrBlockedURL) {
			fetchErr = err
			return
		}
		if r != nil && r.StatusCode >= http.StatusBadRequest {
			fetchErr = fmt.Errorf("%w: %s returned status %d", ErrFetchFailed, pageURL, r.StatusCode)
			return
		}
		fetchErr = fmt.Errorf("%w: %w", ErrFetchFailed, err)
	})

	slog.Debug("fetching page", "url", pageURL)
	if err := c.Visit(pageURL); err != nil && fetchErr == nil {
		fetchErr = fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	if fetchErr != nil {
		slog.Warn("page fetch failed", "url", pageURL, "error", fetchErr)
		return nil, fetchErr
	}

	input := &models.WebpageInput{
		URL:         pageURL,
		Title:       p.title,
		Description: p.description,
		Content:     p.content,
	}
	if input.Title == "" {
		input.Title = pageURL
	}
	if input.Description == "" {
		input.Description = p.ogDescription
	}
	if input.Description == "" {
		input.Description = truncate(input.Content, DescriptionLength)
	}

	slog.Debug("fetched page", "url", pageURL, "title", input.Title, "content_chars", len([]rune(input.Content)))
	return input, nil
}

func (f *Fetcher) checkURL(pageURL string) error {
	check := validation.ValidateFetchURL
	if f.config.AllowPrivate {
		check = validation.ValidateURL
	}
	if ok, msg := check(pageURL); !ok {
		return fmt.Errorf("%w: %s", ErrBlockedURL, msg)
	}
	return nil
}

// transport dials with the private address guard applied to the resolved
// address, so a host that resolves differently after checkURL is still refused.
func (f *Fetcher) transport() *http.Transport {
	dialer := &net.Dialer{Timeout: f.config.Timeout, KeepAlive: 30 * time.Second}
	if !f.config.AllowPrivate {
		dialer.Control = guardDial
	}
	return &http.Transport{
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: time.Second,
	}
}

func guardDial(network, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBlockedURL, err)
	}
	if validation.IsPrivateIP(net.ParseIP(host)) {
		return fmt.Errorf("%w: %s is a private or reserved address", ErrBlockedURL, host)
	}
	return nil
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
