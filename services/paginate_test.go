package services

import (
	"reflect"
	"testing"
)

func TestPaginate_RoundTrip(t *testing.T) {
	for _, n := range []int{1, 11, 12, 13, 24, 25, 100} {
		for _, capacity := range []int{1, 5, 8, 12} {
			rows := make([]int, n)
			for i := range rows {
				rows[i] = i
			}

			pages := Paginate(rows, capacity)

			var joined []int
			for i, p := range pages {
				if len(p) > capacity {
					t.Fatalf("n=%d cap=%d: page %d has %d rows", n, capacity, i, len(p))
				}
				if i < len(pages)-1 && len(p) != capacity {
					t.Errorf("n=%d cap=%d: non-last page %d has %d rows, want %d", n, capacity, i, len(p), capacity)
				}
				joined = append(joined, p...)
			}
			if !reflect.DeepEqual(joined, rows) {
				t.Errorf("n=%d cap=%d: concatenated pages differ from input", n, capacity)
			}
		}
	}
}

func TestPaginate_Empty(t *testing.T) {
	if pages := Paginate([]string{}, 12); len(pages) != 0 {
		t.Errorf("Paginate(empty) = %v, want no pages", pages)
	}
}

func TestPaginate_DefaultCapacity(t *testing.T) {
	pages := Paginate(make([]int, 25), 0)
	if len(pages) != 3 {
		t.Fatalf("expected 3 pages at default capacity, got %d", len(pages))
	}
	if len(pages[0]) != DefaultRowsPerPage {
		t.Errorf("first page has %d rows, want %d", len(pages[0]), DefaultRowsPerPage)
	}
}

func TestPaginate_PagesDoNotAlias(t *testing.T) {
	rows := []int{1, 2, 3, 4}
	pages := Paginate(rows, 2)
	pages[0] = append(pages[0], 99)
	if rows[2] != 3 {
		t.Errorf("appending to page 0 overwrote page 1: rows = %v", rows)
	}
}

func TestParseEmptyPolicy(t *testing.T) {
	tests := []struct {
		input  string
		expect EmptyPolicy
	}{
		{"no_pages", EmptyNoPages},
		{" NO_PAGES ", EmptyNoPages},
		{"blank_page", EmptyBlankPage},
		{"", EmptyBlankPage},
		{"whatever", EmptyBlankPage},
	}
	for _, tt := range tests {
		if got := ParseEmptyPolicy(tt.input); got != tt.expect {
			t.Errorf("ParseEmptyPolicy(%q) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}
