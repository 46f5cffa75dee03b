package paging

import (
	"net/http/httptest"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "/employees", 1, DefaultLimit},
		{"explicit", "/employees?page=3&limit=25", 3, 25},
		{"zero page", "/employees?page=0", 1, DefaultLimit},
		{"negative limit", "/employees?limit=-5", 1, DefaultLimit},
		{"garbage", "/employees?page=abc&limit=xyz", 1, DefaultLimit},
		{"limit one", "/employees?limit=1", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			p := Parse(r)
			if p.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", p.Page, tt.wantPage)
			}
			if p.Limit != tt.wantLimit {
				t.Errorf("Limit = %d, want %d", p.Limit, tt.wantLimit)
			}
		})
	}
}

func TestWindow(t *testing.T) {
	rows := []string{"Anderson", "Brown", "Chen", "Diaz", "Evans"}

	tests := []struct {
		name string
		p    Params
		want []string
	}{
		{"first page of two", Params{Page: 1, Limit: 2}, []string{"Anderson", "Brown"}},
		{"second page of two", Params{Page: 2, Limit: 2}, []string{"Chen", "Diaz"}},
		{"last partial page", Params{Page: 3, Limit: 2}, []string{"Evans"}},
		{"page past the end", Params{Page: 9, Limit: 2}, []string{}},
		{"limit covers all", Params{Page: 1, Limit: 10}, rows},
		{"limit clamped to one", Params{Page: 2, Limit: 0}, []string{"Brown"}},
		{"page clamped to one", Params{Page: 0, Limit: 3}, []string{"Anderson", "Brown", "Chen"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Window(rows, tt.p)
			if len(got) != len(tt.want) {
				t.Fatalf("Window() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Window()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestWindowEmptyNotNil(t *testing.T) {
	got := Window([]int{1, 2}, Params{Page: 5, Limit: 10})
	if got == nil {
		t.Fatal("Window() past the end returned nil, want empty slice")
	}
}

func TestPages(t *testing.T) {
	tests := []struct {
		total, limit, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{5, 2, 3},
		{100, 10, 10},
		{7, 0, 7}, // limit clamped to 1
	}

	for _, tt := range tests {
		if got := Pages(tt.total, tt.limit); got != tt.want {
			t.Errorf("Pages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}
