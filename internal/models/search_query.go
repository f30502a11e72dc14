package models

import "time"

// SearchQuery is one entry of the query log. Query is stored exactly as
// submitted.
type SearchQuery struct {
	ID           int64
	Query        string
	ResultsCount int
	Timestamp    time.Time
}
