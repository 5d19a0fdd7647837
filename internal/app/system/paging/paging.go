// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// PageSize is the default number of rows shown in paged lists.
const PageSize = 25

// Result describes the page that was cut from a larger slice, with the
// neighboring page numbers the template needs for prev/next links.
type Result struct {
	Page     int
	HasPrev  bool
	HasNext  bool
	PrevPage int
	NextPage int
}

// ParsePage extracts the 1-based "page" query parameter.
// Returns 1 if not present or invalid.
func ParsePage(r *http.Request) int {
	s := query.Get(r, "page")
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Page cuts the given page out of rows. A page number past the end falls
// back to the last page that has rows, so stale links still land somewhere
// sensible.
func Page[T any](rows []T, page int) ([]T, Result) {
	return pageWithSize(rows, page, PageSize)
}

func pageWithSize[T any](rows []T, page, size int) ([]T, Result) {
	if page < 1 {
		page = 1
	}

	last := (len(rows) + size - 1) / size
	if last < 1 {
		last = 1
	}
	if page > last {
		page = last
	}

	start := (page - 1) * size
	end := start + size
	if start > len(rows) {
		start = len(rows)
	}
	if end > len(rows) {
		end = len(rows)
	}

	res := Result{
		Page:     page,
		HasPrev:  page > 1,
		HasNext:  page < last,
		PrevPage: page - 1,
		NextPage: page + 1,
	}
	return rows[start:end], res
}
