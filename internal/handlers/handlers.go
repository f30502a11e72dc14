package handlers

import (
	"net/url"
	"strconv"
	"strings"
)

// Flash is a one-off status message shown above a form.
type Flash struct {
	Kind    string // "success" or "error"
	Message string
}

func successFlash(message string) *Flash {
	return &Flash{Kind: "success", Message: message}
}

func errorFlash(message string) *Flash {
	return &Flash{Kind: "error", Message: message}
}

// displayURL renders a url as host without "www." followed by the path.
func displayURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return strings.TrimPrefix(u.Hostname(), "www.") + u.Path
}

// lenientPage returns raw if it is a positive integer and "" otherwise, so a
// mangled page link falls back to the first page instead of an error.
func lenientPage(raw string) string {
	if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && n > 0 {
		return raw
	}
	return ""
}
