package store

import "errors"

// Domain-level store error sentinels.
var (
	// Webpage errors
	ErrWebpageNotFound = errors.New("webpage not found")
	ErrDuplicateURL    = errors.New("a webpage with this url already exists")

	// Query log errors
	ErrInvalidResultsCount = errors.New("results count cannot be negative")
)
