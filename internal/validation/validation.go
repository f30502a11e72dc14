package validation

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"

	"searchportal/internal/models"
)

// Search parameter bounds.
const (
	MinQueryLength  = 1
	MaxQueryLength  = 100
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

var (
	// ErrInvalidSearchParams wraps every search parameter validation failure.
	ErrInvalidSearchParams = errors.New("invalid search parameters")
	// ErrInvalidWebpage wraps every webpage validation failure.
	ErrInvalidWebpage = errors.New("invalid webpage data")
)

// SearchParams holds validated search request parameters.
type SearchParams struct {
	// Query is kept exactly as submitted.
	Query    string
	Page     int
	PageSize int
}

// ParseSearchParams validates raw query-string values. Empty page and
// pageSize fall back to their defaults.
func ParseSearchParams(query, page, pageSize string) (SearchParams, error) {
	params := SearchParams{Query: query, Page: DefaultPage, PageSize: DefaultPageSize}

	if strings.TrimSpace(query) == "" {
		return params, fmt.Errorf("%w: search query is required", ErrInvalidSearchParams)
	}
	if n := utf8.RuneCountInString(query); n < MinQueryLength || n > MaxQueryLength {
		return params, fmt.Errorf("%w: search query must be between %d and %d characters",
			ErrInvalidSearchParams, MinQueryLength, MaxQueryLength)
	}

	var err error
	if params.Page, err = parsePositive(page, DefaultPage); err != nil {
		return params, fmt.Errorf("%w: page %w", ErrInvalidSearchParams, err)
	}
	if params.PageSize, err = parsePositive(pageSize, DefaultPageSize); err != nil {
		return params, fmt.Errorf("%w: pageSize %w", ErrInvalidSearchParams, err)
	}
	params.PageSize = min(params.PageSize, MaxPageSize)

	return params, nil
}

var errNotPositive = errors.New("must be a positive integer")

func parsePositive(raw string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, errNotPositive
	}
	return n, nil
}

// ValidateWebpageInput checks every field of a submitted webpage and reports
// all problems at once.
func ValidateWebpageInput(input models.WebpageInput) error {
	var result *multierror.Error

	if valid, msg := ValidateURL(input.URL); !valid {
		result = multierror.Append(result, errors.New(msg))
	}
	if strings.TrimSpace(input.Title) == "" {
		result = multierror.Append(result, errors.New("title is required"))
	}
	if strings.TrimSpace(input.Description) == "" {
		result = multierror.Append(result, errors.New("description is required"))
	}
	if strings.TrimSpace(input.Content) == "" {
		result = multierror.Append(result, errors.New("content is required"))
	}

	if result == nil {
		return nil
	}
	result.ErrorFormat = joinErrors
	return fmt.Errorf("%w: %w", ErrInvalidWebpage, result)
}

func joinErrors(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https only).
// This prevents javascript:, data:, vbscript:, and other dangerous URL schemes.
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}

// IsPrivateIP checks if an IP address is in a private/reserved range.
func IsPrivateIP(ip net.IP) bool {
	if ip == nil {
		return false
	}

	if ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() {
		return true
	}
	if ip.IsPrivate() || ip.IsUnspecified() {
		return true
	}

	// Cloud metadata endpoints (AWS/GCP, Azure)
	for _, metadata := range []string{"169.254.169.254", "168.63.129.16"} {
		if ip.Equal(net.ParseIP(metadata)) {
			return true
		}
	}

	return false
}

// IsPrivateHost checks if a hostname resolves to a private IP address.
// Returns true if the host is private/blocked, false if it's safe to access.
func IsPrivateHost(host string) (bool, error) {
	hostname := host
	if h, _, err := net.SplitHostPort(host); err == nil {
		hostname = h
	}

	ips, err := net.LookupIP(hostname)
	if err != nil {
		// Unresolvable hosts are treated as blocked.
		return true, err
	}

	for _, ip := range ips {
		if IsPrivateIP(ip) {
			return true, nil
		}
	}

	return false, nil
}

// ValidateFetchURL validates a URL is safe for the server to fetch.
// Blocks private IPs, localhost, and cloud metadata endpoints.
func ValidateFetchURL(urlStr string) (bool, string) {
	valid, msg := ValidateURL(urlStr)
	if !valid {
		return false, msg
	}

	u, _ := url.Parse(urlStr)

	isPrivate, err := IsPrivateHost(u.Host)
	if err != nil {
		return false, "Cannot resolve hostname"
	}
	if isPrivate {
		return false, "URL points to a private or reserved IP address"
	}

	return true, ""
}
