package pagination

import (
	"reflect"
	"strconv"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		page      int
		pageSize  int
		wantPages int
		wantPage  int
		wantStart int
		wantEnd   int
	}{
		{"no results", 0, 1, 10, 1, 1, 0, 0},
		{"no results past end", 0, 5, 10, 1, 1, 0, 0},
		{"exact fit", 20, 2, 10, 2, 2, 10, 20},
		{"partial last page", 25, 3, 10, 3, 3, 20, 25},
		{"clamped high", 25, 99, 10, 3, 3, 20, 25},
		{"clamped low", 25, 0, 10, 3, 1, 0, 10},
		{"negative page", 25, -4, 10, 3, 1, 0, 10},
		{"single result", 1, 1, 10, 1, 1, 0, 1},
		{"zero page size treated as one", 3, 2, 0, 3, 2, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.total, tt.page, tt.pageSize)
			if p.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantPages)
			}
			if p.CurrentPage != tt.wantPage {
				t.Errorf("CurrentPage = %d, want %d", p.CurrentPage, tt.wantPage)
			}
			if p.Start != tt.wantStart || p.End != tt.wantEnd {
				t.Errorf("bounds = [%d:%d], want [%d:%d]", p.Start, p.End, tt.wantStart, tt.wantEnd)
			}
			if p.CurrentPage < 1 || p.CurrentPage > p.TotalPages {
				t.Errorf("CurrentPage %d outside [1, %d]", p.CurrentPage, p.TotalPages)
			}
		})
	}
}

func TestHasNext(t *testing.T) {
	if !New(25, 1, 10).HasNext() {
		t.Error("page 1 of 3 should have a next page")
	}
	if New(25, 3, 10).HasNext() {
		t.Error("page 3 of 3 should not have a next page")
	}
	if New(0, 1, 10).HasNext() {
		t.Error("empty result set should not have a next page")
	}
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name string
		page Page
		want []int
	}{
		{"first page", New(len(items), 1, 3), []int{1, 2, 3}},
		{"last page", New(len(items), 3, 3), []int{7}},
		{"everything", New(len(items), 1, 10), items},
		{"bounds beyond items", Page{Start: 5, End: 20}, []int{6, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slice(items, tt.page); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Slice() = %v, want %v", got, tt.want)
			}
		})
	}
}

// strip renders a window as e.g. "1 [2] 3 … 9" for compact comparisons.
func strip(items []Item) string {
	s := ""
	for i, it := range items {
		if i > 0 {
			s += " "
		}
		switch {
		case it.Ellipsis:
			s += "…"
		case it.Current:
			s += "[" + strconv.Itoa(it.Number) + "]"
		default:
			s += strconv.Itoa(it.Number)
		}
	}
	return s
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    string
	}{
		{"single page", 1, 1, "[1]"},
		{"all pages shown", 4, 10, "1 2 3 [4] 5 6 7 8 9 10"},
		{"near start", 1, 20, "[1] 2 3 4 5 6 7 8 … 20"},
		{"start boundary", 3, 20, "1 2 [3] 4 5 6 7 8 … 20"},
		{"middle", 10, 20, "1 … 8 9 [10] 11 12 … 20"},
		{"near end", 20, 20, "1 … 12 13 14 15 16 17 18 19 [20]"},
		{"end boundary", 17, 20, "1 … 12 13 14 15 16 [17] 18 19 20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := strip(Window(tt.current, tt.total)); got != tt.want {
				t.Errorf("Window(%d, %d) = %q, want %q", tt.current, tt.total, got, tt.want)
			}
		})
	}
}

func TestWindowEmpty(t *testing.T) {
	if got := Window(1, 0); got != nil {
		t.Errorf("Window(1, 0) = %v, want nil", got)
	}
}
