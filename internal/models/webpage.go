package models

import "time"

// Webpage is a stored page eligible for search matching.
type Webpage struct {
	ID          int64     `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	LastIndexed time.Time `json:"lastIndexed"`
}

// WebpageInput is the candidate record submitted for insertion.
// ID and LastIndexed are assigned by the store.
type WebpageInput struct {
	URL         string `json:"url" yaml:"url"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Content     string `json:"content" yaml:"content"`
}
