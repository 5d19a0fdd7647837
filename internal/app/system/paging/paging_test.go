package paging_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/traininghub/internal/app/system/paging"
)

func rows(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPage_FirstPageOfMany(t *testing.T) {
	got, res := paging.Page(rows(paging.PageSize*2+3), 1)

	if len(got) != paging.PageSize {
		t.Fatalf("len = %d, want %d", len(got), paging.PageSize)
	}
	if got[0] != 1 {
		t.Errorf("first row = %d, want 1", got[0])
	}
	if res.HasPrev {
		t.Errorf("HasPrev = true, want false")
	}
	if !res.HasNext {
		t.Errorf("HasNext = false, want true")
	}
}

func TestPage_LastPageIsShort(t *testing.T) {
	got, res := paging.Page(rows(paging.PageSize+3), 2)

	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if !res.HasPrev {
		t.Errorf("HasPrev = false, want true")
	}
	if res.HasNext {
		t.Errorf("HasNext = true, want false")
	}
}

func TestPage_PastEndFallsBackToLastPage(t *testing.T) {
	got, res := paging.Page(rows(paging.PageSize+1), 99)

	if res.Page != 2 {
		t.Errorf("Page = %d, want 2", res.Page)
	}
	if len(got) != 1 {
		t.Errorf("len = %d, want 1", len(got))
	}
}

func TestPage_EmptySlice(t *testing.T) {
	got, res := paging.Page(rows(0), 1)

	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
	if res.HasPrev || res.HasNext {
		t.Errorf("HasPrev/HasNext = %v/%v, want false/false", res.HasPrev, res.HasNext)
	}
}

func TestParsePage(t *testing.T) {
	cases := []struct {
		url  string
		want int
	}{
		{"/users", 1},
		{"/users?page=3", 3},
		{"/users?page=0", 1},
		{"/users?page=abc", 1},
	}
	for _, tc := range cases {
		r := httptest.NewRequest("GET", tc.url, nil)
		if got := paging.ParsePage(r); got != tc.want {
			t.Errorf("ParsePage(%q) = %d, want %d", tc.url, got, tc.want)
		}
	}
}
