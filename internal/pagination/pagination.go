// Package pagination slices ranked results into pages and builds the
// page-number strip shown under search results.
package pagination

// MaxPagesShown is the largest number of entries in a page strip before
// ellipses are introduced.
const MaxPagesShown = 10

// Page describes one page of a result sequence.
type Page struct {
	TotalResults int
	PageSize     int
	TotalPages   int
	CurrentPage  int
	// Start and End are the slice bounds of the current page.
	Start int
	End   int
}

// New computes the page for the requested page number. The number of pages
// is at least one and the current page is clamped into [1, TotalPages].
func New(totalResults, requestedPage, pageSize int) Page {
	if pageSize < 1 {
		pageSize = 1
	}
	totalResults = max(0, totalResults)

	totalPages := max(1, (totalResults+pageSize-1)/pageSize)
	current := min(max(1, requestedPage), totalPages)
	start := min((current-1)*pageSize, totalResults)
	end := min(start+pageSize, totalResults)

	return Page{
		TotalResults: totalResults,
		PageSize:     pageSize,
		TotalPages:   totalPages,
		CurrentPage:  current,
		Start:        start,
		End:          end,
	}
}

// HasNext reports whether a page follows the current one.
func (p Page) HasNext() bool {
	return p.CurrentPage < p.TotalPages
}

// Slice returns the items that fall on page p.
func Slice[T any](items []T, p Page) []T {
	start := min(p.Start, len(items))
	end := min(p.End, len(items))
	return items[start:end]
}

// Item is a single entry of a page strip: a page number or an ellipsis.
type Item struct {
	Number   int
	Ellipsis bool
	Current  bool
}

// Window returns the page strip for the current page. Every page is listed
// when there are at most MaxPagesShown; otherwise the first and last pages
// are always present, with the pages around current in between.
func Window(current, totalPages int) []Item {
	if totalPages < 1 {
		return nil
	}

	item := func(n int) Item {
		return Item{Number: n, Current: n == current}
	}

	items := make([]Item, 0, MaxPagesShown+2)
	if totalPages <= MaxPagesShown {
		for n := 1; n <= totalPages; n++ {
			items = append(items, item(n))
		}
		return items
	}

	items = append(items, item(1))

	start := max(2, current-2)
	end := min(totalPages-1, current+2)
	if current < 4 {
		end = min(totalPages-1, MaxPagesShown-2)
	}
	if current > totalPages-4 {
		start = max(2, totalPages-MaxPagesShown+2)
	}

	if start > 2 {
		items = append(items, Item{Ellipsis: true})
	}
	for n := start; n <= end; n++ {
		items = append(items, item(n))
	}
	if end < totalPages-1 {
		items = append(items, Item{Ellipsis: true})
	}

	return append(items, item(totalPages))
}
