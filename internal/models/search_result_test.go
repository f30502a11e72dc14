package models

import "testing"

func TestSearchResult_IsFeatured(t *testing.T) {
	tests := []struct {
		score int
		want  bool
	}{
		{0, false},
		{15, false},
		{16, true},
		{23, true},
	}

	for _, tt := range tests {
		r := SearchResult{RelevanceScore: tt.score}
		if got := r.IsFeatured(); got != tt.want {
			t.Errorf("IsFeatured() with score %d = %v, want %v", tt.score, got, tt.want)
		}
	}
}
